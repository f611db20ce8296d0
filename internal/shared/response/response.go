package response

import (
	"github.com/gin-gonic/gin"
)

// Page is the fixed list shape every paginated endpoint returns. Zero
// matches still produce a well-formed page (empty Results, TotalResults 0).
type Page[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

func NewPage[T any](results []T, page, limit int, total int64) Page[T] {
	if results == nil {
		results = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Page[T]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
