package export

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, middleware ...gin.HandlerFunc) {
	group := rg.Group("/export", middleware...)
	{
		group.GET("/companies", h.ExportCompanies)
		group.GET("/companies/latest", h.ExportLatest)
	}
}
