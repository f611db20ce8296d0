package export

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Quota enforces the per-user daily export allowance with a Redis counter
// keyed by day. The key expires on its own, so there is no reset job.
type Quota struct {
	rdb   *redis.Client
	limit int
}

func NewQuota(rdb *redis.Client, limit int) *Quota {
	return &Quota{rdb: rdb, limit: limit}
}

// Allow consumes one export from the user's daily allowance. A Redis
// outage fails open.
func (q *Quota) Allow(ctx context.Context, userID string) error {
	if q.rdb == nil || q.limit <= 0 || userID == "" {
		return nil
	}
	key := fmt.Sprintf("export:quota:%s:%s", userID, time.Now().Format("2006-01-02"))

	count, err := q.rdb.Incr(ctx, key).Result()
	if err != nil {
		return nil
	}
	if count == 1 {
		q.rdb.Expire(ctx, key, 24*time.Hour)
	}
	if count > int64(q.limit) {
		return ErrQuotaExceeded
	}
	return nil
}
