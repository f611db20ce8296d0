package location

import (
	"net/http"

	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
	"github.com/TirlaP/lista-firme-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
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

func (h *Handler) GetCounties(c *gin.Context) {
	opts, err := h.service.Counties(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts)
}

func (h *Handler) SearchCounties(c *gin.Context) {
	opts, err := h.service.SearchCounties(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts)
}

func (h *Handler) GetCitiesByCounty(c *gin.Context) {
	opts, err := h.service.CitiesByCounty(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts)
}

func (h *Handler) SearchCities(c *gin.Context) {
	opts, err := h.service.SearchCities(c.Request.Context(), c.Query("q"), c.Query("county"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts)
}
