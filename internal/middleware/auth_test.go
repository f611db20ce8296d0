package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TirlaP/lista-firme-backend/internal/middleware"
	"github.com/TirlaP/lista-firme-backend/internal/shared/contextutil"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter() (*gin.Engine, *struct{ userID, plan string }) {
	gin.SetMode(gin.TestMode)
	seen := &struct{ userID, plan string }{}
	r := gin.New()
	r.GET("/protected", middleware.Auth(testSecret), func(c *gin.Context) {
		seen.userID = contextutil.GetUserID(c.Request.Context())
		seen.plan = contextutil.GetPlan(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		r, _ := authRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		r, _ := authRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		r, _ := authRouter()
		token := signToken(t, "other-secret", jwt.MapClaims{"user_id": "u1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		r, _ := authRouter()
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": "u1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("token without user id", func(t *testing.T) {
		r, _ := authRouter()
		token := signToken(t, testSecret, jwt.MapClaims{"plan": "premium"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token propagates user and plan", func(t *testing.T) {
		r, seen := authRouter()
		token := signToken(t, testSecret, jwt.MapClaims{"user_id": "u1", "plan": "premium"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", seen.userID)
		assert.Equal(t, "premium", seen.plan)
	})

	t.Run("missing plan claim defaults to free", func(t *testing.T) {
		r, seen := authRouter()
		token := signToken(t, testSecret, jwt.MapClaims{"user_id": "u1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "free", seen.plan)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r, seen := authRouter()
		token := signToken(t, testSecret, jwt.MapClaims{"user_id": "u2"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u2", seen.userID)
	})
}
