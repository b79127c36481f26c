package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/database"
)

// DistanceCache caches resolved distances in Redis so repeat quotes for the
// same postal-code pair do not hit the provider. Cache failures are treated
// as misses; the cache never fails a quote.
type DistanceCache struct {
	redis *database.Redis
	ttl   time.Duration
}

// NewDistanceCache creates a new distance cache
func NewDistanceCache(redis *database.Redis, ttl time.Duration) *DistanceCache {
	return &DistanceCache{redis: redis, ttl: ttl}
}

func (c *DistanceCache) key(origin, destination string) string {
	return fmt.Sprintf("distance:%s:%s", origin, destination)
}

// Get returns a cached distance result, if present
func (c *DistanceCache) Get(ctx context.Context, origin, destination string) (*domain.DistanceResult, bool) {
	raw, err := c.redis.Client.Get(ctx, c.key(origin, destination)).Result()
	if err != nil {
		return nil, false
	}

	var result domain.DistanceResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}

	return &result, true
}

// Set stores a resolved distance result
func (c *DistanceCache) Set(ctx context.Context, origin, destination string, result *domain.DistanceResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	_ = c.redis.Client.Set(ctx, c.key(origin, destination), raw, c.ttl).Err()
}
