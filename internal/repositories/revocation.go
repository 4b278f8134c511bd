package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
)

// TokenRevocationRepository keeps logged-out tokens in Redis until they
// would have expired anyway. Only a token digest is stored.
type TokenRevocationRepository struct {
	rdb *redis.Client
}

func NewTokenRevocationRepository(rdb *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{rdb: rdb}
}

func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}

// Revoke marks the token as logged out for its remaining lifetime.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to store
		return nil
	}

	err := r.rdb.Set(ctx, revocationKey(token), "1", ttl).Err()

	logger.Log.Infow(
		"op", "revoke token",
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token was revoked by a logout.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := r.rdb.Get(ctx, revocationKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
