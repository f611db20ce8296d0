package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/TirlaP/lista-firme-backend/internal/shared/contextutil"
	"github.com/TirlaP/lista-firme-backend/internal/shared/response"
)

// Auth validates the bearer token and propagates the user and plan claims.
// The listing surface stays public; this guards the export group, where the
// plan decides row allowances and quotas.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				message = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User ID not found in token", nil)
			c.Abort()
			return
		}

		plan, _ := claims["plan"].(string)
		if plan == "" {
			plan = "free"
		}

		c.Set("user_id", userID)
		c.Set("plan", plan)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithPlan(ctx, plan)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
