package contract

import (
	"context"
	"time"
)

// TokenRevocationRepository remembers revoked access tokens until they would have expired anyway.
type TokenRevocationRepository interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
