package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/TirlaP/lista-firme-backend/internal/shared/contextutil"
	"github.com/TirlaP/lista-firme-backend/internal/shared/response"
)

// PlanGate enforces plan-level feature access through casbin: the
// subscription plan is the subject, the feature the object.
func PlanGate(enforcer *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan := contextutil.GetPlan(c.Request.Context())
		if plan == "" {
			plan = "free"
		}

		allowed, err := enforcer.Enforce(plan, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"Your plan does not include this feature", gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewEnforcer loads the plan model and policy from the configured paths.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
