package implementation

import (
	"context"
	"time"

	"ai-topiclist-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "topiclist:revoked:"

type RedisRevocationRepositoryImpl struct {
	client *redis.Client
}

func NewRedisRevocationRepository(client *redis.Client) contract.TokenRevocationRepository {
	return &RedisRevocationRepositoryImpl{client: client}
}

func (r *RedisRevocationRepositoryImpl) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedTokenKeyPrefix+tokenHash, "1", ttl).Err()
}

func (r *RedisRevocationRepositoryImpl) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenKeyPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
