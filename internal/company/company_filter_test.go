package company

import (
	"testing"

	"github.com/stretchr/testify/assert"

	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
)

func boolPtr(v bool) *bool { return &v }

func int64Ptr(v int64) *int64 { return &v }

func TestFilterValidate(t *testing.T) {
	t.Run("empty filter passes", func(t *testing.T) {
		assert.NoError(t, Filter{}.Validate())
	})

	t.Run("known status passes", func(t *testing.T) {
		assert.NoError(t, Filter{Status: StatusStruckOff}.Validate())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		assert.ErrorIs(t, Filter{Status: "activ"}.Validate(), companyerrors.ErrInvalidStatus)
	})

	t.Run("date window must be complete", func(t *testing.T) {
		assert.ErrorIs(t, Filter{DateFrom: "2024-01-01"}.Validate(), companyerrors.ErrInvalidDateWindow)
	})

	t.Run("date window must parse", func(t *testing.T) {
		f := Filter{DateFrom: "01.02.2024", DateTo: "2024-03-01"}
		assert.ErrorIs(t, f.Validate(), companyerrors.ErrInvalidDateWindow)
	})

	t.Run("date window must be ordered", func(t *testing.T) {
		f := Filter{DateFrom: "2024-03-01", DateTo: "2024-01-01"}
		assert.ErrorIs(t, f.Validate(), companyerrors.ErrInvalidDateWindow)
	})

	t.Run("ordered window passes", func(t *testing.T) {
		assert.NoError(t, Filter{DateFrom: "2024-01-01", DateTo: "2024-03-01"}.Validate())
	})
}

func TestBuildPredicate(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		p := Filter{}.BuildPredicate()
		assert.True(t, p.Empty())
		where, args := p.SQL()
		assert.Equal(t, "TRUE", where)
		assert.Empty(t, args)
	})

	t.Run("conditions are AND-combined", func(t *testing.T) {
		f := Filter{
			CAENCodes:  []string{"6201", "6202"},
			HasWebsite: boolPtr(true),
			MinRevenue: int64Ptr(100000),
		}
		where, args := f.BuildPredicate().SQL()
		assert.Contains(t, where, "cod_caen IN ?")
		assert.Contains(t, where, ") AND (")
		assert.Contains(t, where, "website")
		assert.Len(t, args, 2)
	})

	t.Run("contact flag ORs the three channels", func(t *testing.T) {
		where, _ := Filter{HasContact: boolPtr(true)}.BuildPredicate().SQL()
		assert.Contains(t, where, "telefon")
		assert.Contains(t, where, "email")
		assert.Contains(t, where, "website")
		assert.Contains(t, where, " OR ")
	})

	t.Run("negative contact flag requires all channels empty", func(t *testing.T) {
		where, _ := Filter{HasContact: boolPtr(false)}.BuildPredicate().SQL()
		assert.Contains(t, where, " AND ")
		assert.NotContains(t, where, "<> ''")
	})

	t.Run("county pattern hits all three address shapes", func(t *testing.T) {
		where, args := Filter{JudetPattern: "Cluj"}.BuildPredicate().SQL()
		assert.Contains(t, where, "adresa->>'judet'")
		assert.Contains(t, where, "sdenumire_Judet")
		assert.Contains(t, where, "ddenumire_Judet")
		assert.Len(t, args, 3)
	})

	t.Run("status filter reuses the classifier predicate", func(t *testing.T) {
		where, _ := Filter{Status: StatusStruckOff}.BuildPredicate().SQL()
		assert.Contains(t, where, "RADIERE")
		assert.Contains(t, where, "NOT")
	})
}

func TestPredicateKey(t *testing.T) {
	t.Run("same filter same key", func(t *testing.T) {
		a := Filter{Query: "dacia", CAENCodes: []string{"6201"}}.BuildPredicate()
		b := Filter{Query: "dacia", CAENCodes: []string{"6201"}}.BuildPredicate()
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("CAEN order does not change the key", func(t *testing.T) {
		a := Filter{CAENCodes: []string{"6202", "6201"}}.BuildPredicate()
		b := Filter{CAENCodes: []string{"6201", "6202"}}.BuildPredicate()
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("different filters differ", func(t *testing.T) {
		a := Filter{Query: "dacia"}.BuildPredicate()
		b := Filter{Query: "dacia auto"}.BuildPredicate()
		assert.NotEqual(t, a.Key(), b.Key())
	})
}

func TestClamping(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0))
	assert.Equal(t, 10, ClampLimit(-5))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 100, ClampLimit(100))
	assert.Equal(t, 100, ClampLimit(5000))

	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-3))
	assert.Equal(t, 7, ClampPage(7))
}
