package export

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/company"
	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
	"github.com/TirlaP/lista-firme-backend/internal/shared/contextutil"
	"github.com/TirlaP/lista-firme-backend/internal/shared/response"
)

// Limits carries the configured bounds for streamed exports.
type Limits struct {
	BatchSize int
	MaxRows   int
	PlanRows  map[string]int
}

type Handler struct {
	service Service
	quota   *Quota
	limits  Limits
	log     *zap.Logger
}

func NewHandler(service Service, quota *Quota, limits Limits) *Handler {
	return &Handler{
		service: service,
		quota:   quota,
		limits:  limits,
		log:     zap.L().Named("export.handler"),
	}
}

func (h *Handler) ExportCompanies(c *gin.Context) {
	h.run(c, company.ParseFilter(c))
}

// ExportLatest reuses the registration-date window semantics of the latest
// listing for the exported set.
func (h *Handler) ExportLatest(c *gin.Context) {
	f := company.ParseFilter(c)
	from, to := c.Query("customStartDate"), c.Query("customEndDate")
	if from != "" && to != "" {
		f.DateFrom, f.DateTo = from, to
	}
	h.run(c, f)
}

func (h *Handler) run(c *gin.Context, f company.Filter) {
	format := c.DefaultQuery("format", FormatCSV)
	if format != FormatCSV && format != FormatXLSX {
		writeServiceError(c, ErrUnsupportedFormat)
		return
	}

	if err := f.Validate(); err != nil {
		writeServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.quota.Allow(ctx, contextutil.GetUserID(ctx)); err != nil {
		writeServiceError(c, err)
		return
	}

	// Attachment headers only after every upfront check has passed; from
	// here on a failure means the stream was already cut.
	mime := MimeCSV
	if format == FormatXLSX {
		mime = MimeXLSX
	}
	c.Header("Content-Type", mime)
	c.Header("Content-Disposition", `attachment; filename="`+FileName(format)+`"`)

	opts := Options{
		Format:    format,
		SortBy:    c.Query("sortBy"),
		BatchSize: h.limits.BatchSize,
		MaxRows:   h.rowCap(ctx),
	}

	err := h.service.Export(ctx, f, opts, c.Writer, func() { c.Writer.Flush() })
	if err != nil {
		// Once bytes are on the wire the status line is gone; all we can
		// do is cut the stream and log.
		if c.Writer.Written() {
			h.log.Warn("export aborted mid-stream", zap.Error(err))
			c.Abort()
			return
		}
		writeServiceError(c, err)
	}
}

// rowCap resolves the plan-specific row allowance, defaulting to the
// global cap.
func (h *Handler) rowCap(ctx context.Context) int {
	plan := contextutil.GetPlan(ctx)
	if cap, ok := h.limits.PlanRows[plan]; ok && cap > 0 {
		return cap
	}
	return h.limits.MaxRows
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
