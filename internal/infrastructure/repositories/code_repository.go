package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// CodeRepositoryImpl implements domain.CodeRepository using Redis. One key
// per email, so issuing a new code atomically replaces any prior one, and
// the advertised validity window is enforced by the key TTL.
type CodeRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCodeRepository creates a new one-time-code repository
func NewCodeRepository(client *redis.Client, ttl time.Duration) domain.CodeRepository {
	return &CodeRepositoryImpl{
		client: client,
		prefix: "otp:",
		ttl:    ttl,
	}
}

// Put implements domain.CodeRepository
func (r *CodeRepositoryImpl) Put(ctx context.Context, email, code string) error {
	return r.client.Set(ctx, r.prefix+email, code, r.ttl).Err()
}

// Find implements domain.CodeRepository
func (r *CodeRepositoryImpl) Find(ctx context.Context, email string) (string, error) {
	code, err := r.client.Get(ctx, r.prefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCodeInvalidOrExpired
		}
		return "", err
	}
	return code, nil
}

// Delete implements domain.CodeRepository
func (r *CodeRepositoryImpl) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.prefix+email).Err()
}
