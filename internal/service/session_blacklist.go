package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/database"
)

// SessionBlacklistService invalidates session tokens in Redis. Session
// tokens are self-contained, so logout alone cannot revoke them; the
// blacklist is consulted by the auth middleware until natural expiry.
type SessionBlacklistService struct {
	redis *database.Redis
}

// NewSessionBlacklistService creates a new session blacklist service
func NewSessionBlacklistService(redis *database.Redis) *SessionBlacklistService {
	return &SessionBlacklistService{redis: redis}
}

// AddToken adds a token to the blacklist
func (s *SessionBlacklistService) AddToken(ctx context.Context, token string, expiry time.Duration) error {
	key := fmt.Sprintf("blacklist:session:%s", token)
	err := s.redis.Client.Set(ctx, key, "1", expiry).Err()
	if err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsTokenBlacklisted checks if a token is in the blacklist
func (s *SessionBlacklistService) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:session:%s", token)
	exists, err := s.redis.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}
