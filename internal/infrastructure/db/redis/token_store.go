package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps short-lived token state in Redis:
//
//	revoked:<jti> — session tokens denylisted at logout, expiring when the
//	                token itself would have expired
//	reset:<jti>   — outstanding single-use password-reset tokens
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke denylists a session token for the remainder of its lifetime.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a session token has been denylisted.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// SaveResetToken records an outstanding reset token.
func (s *TokenStore) SaveResetToken(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, resetKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken removes the token and reports whether it was still
// outstanding. GETDEL makes the check-and-remove atomic, so a reset link can
// be used at most once even under concurrent submissions.
func (s *TokenStore) ConsumeResetToken(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.GetDel(ctx, resetKey(jti)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume reset token: %w", err)
	}
	return true, nil
}

func revokedKey(jti string) string { return "revoked:" + jti }
func resetKey(jti string) string   { return "reset:" + jti }
