package company

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/search", h.Search)
		companies.GET("/latest", h.Latest)
		companies.GET("/latest/stats", h.LatestStats)
		companies.GET("/stats", h.Stats)
		companies.GET("/:cui", h.GetByCUI)
	}
}
