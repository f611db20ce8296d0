package export_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	companyMock "github.com/TirlaP/lista-firme-backend/internal/company/mock"
	"github.com/TirlaP/lista-firme-backend/internal/export"
	"github.com/TirlaP/lista-firme-backend/internal/shared/contextutil"
)

func setupExportHandler(t *testing.T, quota *export.Quota) (*gin.Engine, *companyMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	companies := companyMock.NewMockService(ctrl)

	if quota == nil {
		quota = export.NewQuota(nil, 0)
	}
	h := export.NewHandler(export.NewService(companies), quota, export.Limits{
		BatchSize: 1000,
		MaxRows:   50000,
		PlanRows:  map[string]int{"free": 100},
	})

	router := gin.New()
	v1 := router.Group("/v1")
	export.RegisterRoutes(v1, h)
	return router, companies
}

func TestExportHandler_CSV(t *testing.T) {
	router, companies := setupExportHandler(t, nil)
	companies.EXPECT().
		StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(feedRows(2))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/export/companies?format=csv", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.MimeCSV, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "FIRMA")
}

func TestExportHandler_BadFormat(t *testing.T) {
	router, _ := setupExportHandler(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/export/companies?format=pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestExportHandler_InvalidStatusFilter(t *testing.T) {
	router, _ := setupExportHandler(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/export/companies?format=csv&stare=activ", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.NotEqual(t, export.MimeCSV, w.Header().Get("Content-Type"))
}

func TestExportHandler_InvalidDateWindow(t *testing.T) {
	router, _ := setupExportHandler(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/export/companies/latest?format=xlsx&customStartDate=01.02.2024&customEndDate=2024-03-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestExportHandler_PlanRowCap(t *testing.T) {
	router, companies := setupExportHandler(t, nil)
	companies.EXPECT().
		StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), 100, gomock.Any()).
		DoAndReturn(feedRows(2))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/export/companies", nil)
	req = req.WithContext(contextutil.WithPlan(req.Context(), "free"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportHandler_QuotaExceeded(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectIncr(`export:quota:user-1:.*`).SetVal(3)

	router, _ := setupExportHandler(t, export.NewQuota(rdb, 2))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/export/companies", nil)
	req = req.WithContext(contextutil.WithUserID(req.Context(), "user-1"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "QUOTA_EXCEEDED")
	assert.NoError(t, mock.ExpectationsWereMet())
}
