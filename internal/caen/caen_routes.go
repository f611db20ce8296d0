package caen

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	caen := r.Group("/caen")
	{
		caen.GET("", h.List)
		caen.GET("/search", h.Search)
		caen.GET("/:code", h.Get)
	}
}
