package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TirlaP/lista-firme-backend/internal/middleware"
	"github.com/TirlaP/lista-firme-backend/internal/shared/contextutil"
)

const planModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := model.NewModelFromString(planModel)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)

	_, err = e.AddPolicies([][]string{
		{"premium", "export", "run"},
		{"premium", "export", "bulk"},
		{"basic", "export", "run"},
	})
	require.NoError(t, err)
	_, err = e.AddGroupingPolicies([][]string{
		{"basic", "free"},
		{"premium", "basic"},
	})
	require.NoError(t, err)
	return e
}

func planGateRouter(t *testing.T, resource, action string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/feature",
		func(c *gin.Context) {
			if plan := c.Query("plan"); plan != "" {
				c.Request = c.Request.WithContext(contextutil.WithPlan(c.Request.Context(), plan))
			}
			c.Next()
		},
		middleware.PlanGate(newTestEnforcer(t), resource, action),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestPlanGate(t *testing.T) {
	t.Run("allowed plan passes", func(t *testing.T) {
		r := planGateRouter(t, "export", "run")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feature?plan=basic", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("plan without the feature is forbidden", func(t *testing.T) {
		r := planGateRouter(t, "export", "bulk")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feature?plan=basic", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "export:bulk")
	})

	t.Run("higher plan inherits lower grants", func(t *testing.T) {
		r := planGateRouter(t, "export", "run")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feature?plan=premium", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty plan falls back to free", func(t *testing.T) {
		r := planGateRouter(t, "export", "bulk")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feature", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
