package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tier TTLs. Reference data is long-lived and pre-warmed at startup, counts
// go stale quickly relative to read traffic, single entities sit in between.
const (
	TTLReference = time.Hour
	TTLStats     = time.Hour
	TTLSearch    = 15 * time.Minute
	TTLEntity    = 5 * time.Minute
	TTLCount     = time.Minute
)

// Cache is the read-through cache in front of count queries, reference data
// and hot entities. Both backends store JSON-encoded values so call sites
// never depend on which one is configured.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether the key
	// was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePattern removes every key with the given prefix.
	DeletePattern(ctx context.Context, prefix string) error
}

// New selects the backend by configuration without changing call sites.
func New(backend string, rdb *redis.Client) Cache {
	if backend == "redis" && rdb != nil {
		return NewRedis(rdb)
	}
	return NewMemory()
}
