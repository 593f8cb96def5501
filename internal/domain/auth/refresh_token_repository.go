package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "auth:refresh:"

// RefreshTokenStore keeps hashed refresh tokens in Redis so they can be
// revoked. With a nil client the store degrades to signature-only validation.
type RefreshTokenStore struct {
	redis *redis.Client
}

// NewRefreshTokenStore creates a refresh token store
func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{redis: client}
}

// Save stores a token hash keyed by its JTI until expiry
func (s *RefreshTokenStore) Save(ctx context.Context, jti string, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	if s.redis == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, refreshTokenKeyPrefix+jti, userID.String()+":"+tokenHash, ttl).Err()
}

// Validate checks that the token hash is still stored for the given JTI
func (s *RefreshTokenStore) Validate(ctx context.Context, jti string, userID uuid.UUID, tokenHash string) (bool, error) {
	if s.redis == nil {
		return true, nil
	}
	stored, err := s.redis.Get(ctx, refreshTokenKeyPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == userID.String()+":"+tokenHash, nil
}

// Revoke removes a stored token, ending its session
func (s *RefreshTokenStore) Revoke(ctx context.Context, jti string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, refreshTokenKeyPrefix+jti).Err()
}
