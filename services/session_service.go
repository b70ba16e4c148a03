package services

import (
	"GrowthGo/utils"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenPrefix = "growth:revoked:"

// SessionService 用 Redis 记录已注销的令牌，client 为 nil 时不启用注销
type SessionService struct {
	client *redis.Client
}

func NewSessionService(client *redis.Client) *SessionService {
	return &SessionService{client: client}
}

func (s *SessionService) Enabled() bool {
	return s.client != nil
}

// Revoke 把令牌 jti 写入注销列表，保留到令牌自然过期
func (s *SessionService) Revoke(ctx context.Context, claims *utils.Claims) error {
	if !s.Enabled() || claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenPrefix+claims.ID, claims.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("注销会话失败: %w", err)
	}
	return nil
}

func (s *SessionService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if !s.Enabled() || jti == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedTokenPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
