package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/campus/internal/errors"
)

const revokedKeyPrefix = "campus:session:revoked:"

// redisRevocationList stores revoked token ids as expiring Redis keys.
type redisRevocationList struct {
	client *redis.Client
	now    func() time.Time
}

// Revoke marks id revoked until expiresAt. Already expired tokens are skipped.
func (r *redisRevocationList) Revoke(ctx context.Context, id string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 || id == "" {
		return nil
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+id, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to revoke session")
	}
	return nil
}

// IsRevoked reports whether id has a live denylist entry.
func (r *redisRevocationList) IsRevoked(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedKeyPrefix+id).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check session revocation")
	}
	return n > 0, nil
}

// NewRedisRevocationList creates a RevocationList backed by client.
func NewRedisRevocationList(client *redis.Client) RevocationList {
	return &redisRevocationList{client: client, now: time.Now}
}

// OpenRedis parses a redis:// URL and verifies the server answers.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrap(err, "failed to ping redis")
	}
	return client, nil
}
