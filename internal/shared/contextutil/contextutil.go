package contextutil

import "context"

// Unexported key type so context keys cannot collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	planKey      contextKey = "plan"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

func WithPlan(ctx context.Context, plan string) context.Context {
	return context.WithValue(ctx, planKey, plan)
}

func GetPlan(ctx context.Context) string {
	if p, ok := ctx.Value(planKey).(string); ok {
		return p
	}
	return ""
}
