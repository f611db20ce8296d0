package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		stare   string
		inactiv bool
		want    string
	}{
		{"suspended", "SUSPENDARE ACTIVITATE din data 01.02.2023", true, StatusSuspended},
		{"suspension text without flag is functional", "SUSPENDARE ACTIVITATE din data 01.02.2023", false, StatusFunctional},
		{"suspension beats the inactive classification", "INREGISTRAT din data 10.05.2001, SUSPENDARE ACTIVITATE", true, StatusSuspended},
		{"inactive registered", "INREGISTRAT din data 10.05.2001", true, StatusInactive},
		{"inactive transfer", "TRANSFER", true, StatusInactive},
		{"registered without flag is functional", "INREGISTRAT din data 10.05.2001", false, StatusFunctional},
		{"struck off", "RADIERE din data 20.12.2019", false, StatusStruckOff},
		{"struck off with flag still struck off", "RADIERE", true, StatusStruckOff},
		{"dissolved", "DIZOLVARE cu lichidare", false, StatusDissolved},
		{"lowercase input", "radiere", false, StatusStruckOff},
		{"empty state", "", false, StatusFunctional},
		{"unrecognized state", "ALTCEVA", true, StatusFunctional},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.stare, tc.inactiv))
		})
	}
}

func TestStatusPredicate(t *testing.T) {
	t.Run("every label has a predicate", func(t *testing.T) {
		for _, status := range AllStatuses {
			assert.NotEmpty(t, statusPredicate(status), status)
		}
	})

	t.Run("unknown label has none", func(t *testing.T) {
		assert.Empty(t, statusPredicate("Necunoscut"))
	})

	t.Run("suspension requires the inactivity flag", func(t *testing.T) {
		assert.Contains(t, statusPredicate(StatusSuspended), inactivExpr+" AND ")
	})

	t.Run("lower precedence arms negate higher ones", func(t *testing.T) {
		assert.NotContains(t, statusPredicate(StatusSuspended), "NOT")
		assert.Contains(t, statusPredicate(StatusInactive), "NOT ("+suspendedCond+")")
		assert.Contains(t, statusPredicate(StatusFunctional), "NOT ("+dissolvedCond+")")
	})
}

func TestIsKnownStatus(t *testing.T) {
	assert.True(t, IsKnownStatus(StatusFunctional))
	assert.False(t, IsKnownStatus("functional"))
}
