package memory

import (
	"context"
	"time"

	"ai-topiclist-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type RevocationRepository struct {
	cache *cache.Cache
}

// NewRevocationRepository keeps revoked token hashes in process memory.
// Entries expire with the token, and expired ones are purged every 10 minutes.
func NewRevocationRepository() contract.TokenRevocationRepository {
	return &RevocationRepository{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (r *RevocationRepository) Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.cache.Set(tokenHash, struct{}{}, ttl)
	return nil
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	_, found := r.cache.Get(tokenHash)
	return found, nil
}
