package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/database"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimiter is a sliding-window-log limiter over a Redis sorted set.
// Each request is a set member scored by its unix timestamp; members
// older than the window are pruned before counting.
type RateLimiter struct {
	redis *database.Redis
}

func NewRateLimiter(redis *database.Redis) *RateLimiter {
	return &RateLimiter{redis: redis}
}

// prune drops entries that fell out of the window and returns how many remain.
func (r *RateLimiter) prune(ctx context.Context, redisKey string, windowStart time.Time) (int64, error) {
	cutoff := strconv.FormatInt(windowStart.Unix(), 10)
	if err := r.redis.Client.ZRemRangeByScore(ctx, redisKey, "0", cutoff).Err(); err != nil {
		return 0, fmt.Errorf("failed to clean old entries: %w", err)
	}

	count, err := r.redis.Client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// Allow records the request and reports whether it fits in the window.
// When the limit is hit it returns false and an error that tells the
// caller when to retry.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	redisKey := rateLimitKeyPrefix + key

	count, err := r.prune(ctx, redisKey, now.Add(-window))
	if err != nil {
		return false, err
	}

	if count >= int64(limit) {
		// The oldest surviving entry decides when capacity frees up
		oldest, err := r.redis.Client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			retryIn := window - time.Since(time.Unix(int64(oldest[0].Score), 0))
			return false, fmt.Errorf("rate limit exceeded, try again in %v", retryIn.Round(time.Second))
		}
		return false, fmt.Errorf("rate limit exceeded")
	}

	member := strconv.FormatInt(now.UnixNano(), 10)
	if err := r.redis.Client.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: member,
	}).Err(); err != nil {
		return false, fmt.Errorf("failed to add entry: %w", err)
	}

	// Idle keys expire shortly after the window closes
	_ = r.redis.Client.Expire(ctx, redisKey, window+time.Minute).Err()

	return true, nil
}

// GetRemainingRequests reports how many requests the key has left in the
// current window.
func (r *RateLimiter) GetRemainingRequests(ctx context.Context, key string, limit int, window time.Duration) (int, error) {
	count, err := r.prune(ctx, rateLimitKeyPrefix+key, time.Now().Add(-window))
	if err != nil {
		return 0, err
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
