package location

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	locations := r.Group("/locations")
	{
		locations.GET("/counties", h.GetCounties)
		locations.GET("/counties/search", h.SearchCounties)
		locations.GET("/counties/:code/cities", h.GetCitiesByCounty)
		locations.GET("/cities/search", h.SearchCities)
	}
}
