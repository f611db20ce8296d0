package company

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
	"github.com/TirlaP/lista-firme-backend/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// writePartialHeaders marks responses whose total came from planner
// statistics rather than an exact count.
func writePartialHeaders(c *gin.Context, total int64) {
	c.Header("X-Results-Type", "partial")
	c.Header("X-Results-Count", strconv.FormatInt(total, 10))
}

func (h *Handler) List(c *gin.Context) {
	filter := ParseFilter(c)
	opts := parsePageOptions(c)

	result, err := h.service.Query(c.Request.Context(), filter, opts)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if result.CountIsEstimate {
		writePartialHeaders(c, result.TotalResults)
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Search(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("q"), parsePageOptions(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if result.CountIsEstimate {
		writePartialHeaders(c, result.TotalResults)
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Latest(c *gin.Context) {
	page, err := h.service.Latest(
		c.Request.Context(),
		c.Query("timeRange"),
		c.Query("customStartDate"),
		c.Query("customEndDate"),
		parsePageOptions(c),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) LatestStats(c *gin.Context) {
	stats, err := h.service.LatestStats(
		c.Request.Context(),
		c.Query("timeRange"),
		c.Query("customStartDate"),
		c.Query("customEndDate"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetByCUI(c *gin.Context) {
	cui, err := strconv.ParseInt(c.Param("cui"), 10, 64)
	if err != nil {
		writeServiceError(c, companyerrors.ErrInvalidCUI)
		return
	}
	view, svcErr := h.service.GetByCUI(c.Request.Context(), cui)
	if svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// ParseFilter reads the structured filter parameters. Unknown values for
// numeric parameters are dropped silently; clamping happens downstream.
func ParseFilter(c *gin.Context) Filter {
	f := Filter{
		Query:  strings.TrimSpace(c.Query("q")),
		Status: strings.TrimSpace(c.Query("stare")),
		Judet:  strings.TrimSpace(c.Query("judet")),
		Oras:   strings.TrimSpace(c.Query("oras")),
	}

	if raw := c.Query("cod_CAEN"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				f.CAENCodes = append(f.CAENCodes, code)
			}
		}
	}

	f.HasWebsite = parseBoolPtr(c.Query("hasWebsite"))
	f.HasContact = parseBoolPtr(c.Query("hasContact"))
	f.HasEmail = parseBoolPtr(c.Query("hasEmail"))
	f.HasPhone = parseBoolPtr(c.Query("hasPhone"))
	f.HasAdministrator = parseBoolPtr(c.Query("hasAdministrator"))

	f.MinRevenue = parseInt64Ptr(c.Query("minRevenue"))
	f.MaxRevenue = parseInt64Ptr(c.Query("maxRevenue"))
	f.MinProfit = parseInt64Ptr(c.Query("minProfit"))
	f.MaxProfit = parseInt64Ptr(c.Query("maxProfit"))
	f.MinEmployees = parseIntPtr(c.Query("minEmployees"))
	f.MaxEmployees = parseIntPtr(c.Query("maxEmployees"))
	f.YearFrom = parseIntPtr(c.Query("yearFrom"))
	f.YearTo = parseIntPtr(c.Query("yearTo"))

	return f
}

func parsePageOptions(c *gin.Context) PageOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return PageOptions{
		Page:   page,
		Limit:  limit,
		SortBy: c.Query("sortBy"),
	}
}

func parseBoolPtr(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt64Ptr(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
