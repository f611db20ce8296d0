package company_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/company"
	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
	companyMock "github.com/TirlaP/lista-firme-backend/internal/company/mock"
)

type serviceDeps struct {
	service company.Service
	repo    *companyMock.MockRepository
	cache   cache.Cache
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := companyMock.NewMockRepository(ctrl)
	c := cache.NewMemory()
	return &serviceDeps{
		service: company.NewService(repo, nil, nil, c),
		repo:    repo,
		cache:   c,
	}
}

func sampleCompanies(n int) []company.Company {
	out := make([]company.Company, n)
	for i := range out {
		out[i] = company.Company{
			CUI:      int64(1000 + i),
			Denumire: "FIRMA",
			DateGenerale: company.DateGenerale{
				DataInregistrare: "2024-01-15",
			},
		}
	}
	return out
}

func TestCompanyService_Search(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("query under two characters fails before any store access", func(t *testing.T) {
		_, err := deps.service.Search(ctx, " a ", company.PageOptions{})
		assert.ErrorIs(t, err, companyerrors.ErrQueryTooShort)
	})

	t.Run("two characters pass", func(t *testing.T) {
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(sampleCompanies(1), nil)
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		result, err := deps.service.Search(ctx, "ab", company.PageOptions{Limit: 10})
		assert.NoError(t, err)
		assert.Len(t, result.Results, 1)
		assert.False(t, result.CountIsEstimate)
	})
}

func TestCompanyService_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status filter rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Query(ctx, company.Filter{Status: "activ"}, company.PageOptions{})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidStatus)
	})

	t.Run("unfiltered total comes from planner estimate", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(sampleCompanies(2), nil)
		deps.repo.EXPECT().
			EstimatedCount(gomock.Any()).
			Return(int64(1500000), nil)

		result, err := deps.service.Query(ctx, company.Filter{}, company.PageOptions{Limit: 2})
		assert.NoError(t, err)
		assert.True(t, result.CountIsEstimate)
		assert.Equal(t, int64(1500000), result.TotalResults)
	})

	t.Run("filtered count is cached across calls", func(t *testing.T) {
		deps := setupServiceTest(t)
		f := company.Filter{Query: "dacia"}

		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(sampleCompanies(1), nil).
			Times(2)
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(42), nil).
			Times(1)

		for i := 0; i < 2; i++ {
			result, err := deps.service.Query(ctx, f, company.PageOptions{Limit: 5})
			assert.NoError(t, err)
			assert.Equal(t, int64(42), result.TotalResults)
		}
	})

	t.Run("page and limit are clamped", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts company.ListOptions) ([]company.Company, error) {
				assert.Equal(t, 0, opts.Offset)
				assert.Equal(t, 100, opts.Limit)
				return nil, nil
			})
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		result, err := deps.service.Query(ctx, company.Filter{Query: "x y"}, company.PageOptions{Page: -4, Limit: 9999})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Page.Page)
		assert.Equal(t, 100, result.Limit)
		assert.NotNil(t, result.Results)
	})
}

func TestCompanyService_Connection(t *testing.T) {
	ctx := context.Background()

	t.Run("lookahead trims the extra row and flags a next page", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts company.ListOptions) ([]company.Company, error) {
				assert.Equal(t, 3, opts.Limit)
				return sampleCompanies(3), nil
			})
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(10), nil)

		conn, err := deps.service.Connection(ctx, company.Filter{Query: "ab"}, company.ConnectionOptions{First: 2})
		assert.NoError(t, err)
		assert.Len(t, conn.Edges, 2)
		assert.True(t, conn.PageInfo.HasNextPage)
		assert.Equal(t, conn.Edges[1].Cursor, conn.PageInfo.EndCursor)
	})

	t.Run("short page means no next page", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(sampleCompanies(1), nil)
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		conn, err := deps.service.Connection(ctx, company.Filter{Query: "ab"}, company.ConnectionOptions{First: 2})
		assert.NoError(t, err)
		assert.Len(t, conn.Edges, 1)
		assert.False(t, conn.PageInfo.HasNextPage)
	})

	t.Run("cursor minted under another sort field is ignored", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := company.EncodeCursor(company.Cursor{Field: company.SortName, Value: "FIRMA", CUI: 1})

		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts company.ListOptions) ([]company.Company, error) {
				assert.Nil(t, opts.Cursor)
				return nil, nil
			})
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := deps.service.Connection(ctx, company.Filter{Query: "ab"}, company.ConnectionOptions{
			First:  5,
			After:  token,
			SortBy: "cui_asc",
		})
		assert.NoError(t, err)
	})

	t.Run("matching cursor resumes", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := company.EncodeCursor(company.Cursor{Field: company.SortCUI, Value: "1000", CUI: 1000})

		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts company.ListOptions) ([]company.Company, error) {
				if assert.NotNil(t, opts.Cursor) {
					assert.Equal(t, company.SortCUI, opts.Cursor.Field)
					assert.Equal(t, int64(1000), opts.Cursor.CUI)
				}
				return nil, nil
			})
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := deps.service.Connection(ctx, company.Filter{Query: "ab"}, company.ConnectionOptions{
			First:  5,
			After:  token,
			SortBy: "cui_asc",
		})
		assert.NoError(t, err)
	})
}

func TestCompanyService_GetByCUI(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive cui rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByCUI(ctx, 0)
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCUI)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByCUI(gomock.Any(), int64(123)).
			Return(&company.Company{CUI: 123, Denumire: "FIRMA"}, nil).
			Times(1)

		for i := 0; i < 2; i++ {
			view, err := deps.service.GetByCUI(ctx, 123)
			assert.NoError(t, err)
			assert.Equal(t, "FIRMA", view.Denumire)
		}
	})

	t.Run("missing company propagates not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindByCUI(gomock.Any(), int64(404)).
			Return(nil, companyerrors.ErrCompanyNotFound)

		_, err := deps.service.GetByCUI(ctx, 404)
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestCompanyService_Latest(t *testing.T) {
	ctx := context.Background()

	t.Run("time range and custom window conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Latest(ctx, "today", "2024-01-01", "2024-01-31", company.PageOptions{})
		assert.ErrorIs(t, err, companyerrors.ErrConflictingWindow)
	})

	t.Run("custom window needs both bounds", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Latest(ctx, "", "2024-01-01", "", company.PageOptions{})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidDateWindow)
	})

	t.Run("inverted custom window rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Latest(ctx, "", "2024-02-01", "2024-01-01", company.PageOptions{})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidDateWindow)
	})

	t.Run("unknown time range rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Latest(ctx, "lastYear", "", "", company.PageOptions{})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidTimeRange)
	})

	t.Run("valid window produces a dated page", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(sampleCompanies(1), nil)
		deps.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		page, err := deps.service.Latest(ctx, "", "2024-01-01", "2024-01-31", company.PageOptions{Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", page.DateRange.From)
		assert.Equal(t, "2024-01-31", page.DateRange.To)
		assert.Len(t, page.Results, 1)
	})
}

func TestCompanyService_InvalidateCompany(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		FindByCUI(gomock.Any(), int64(55)).
		Return(&company.Company{CUI: 55, Denumire: "VECHI"}, nil)

	_, err := deps.service.GetByCUI(ctx, 55)
	assert.NoError(t, err)

	assert.NoError(t, deps.service.InvalidateCompany(ctx, 55))

	// Next read misses the cache and hits the store again.
	deps.repo.EXPECT().
		FindByCUI(gomock.Any(), int64(55)).
		Return(&company.Company{CUI: 55, Denumire: "NOU"}, nil)

	view, err := deps.service.GetByCUI(ctx, 55)
	assert.NoError(t, err)
	assert.Equal(t, "NOU", view.Denumire)
}
