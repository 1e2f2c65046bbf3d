package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"ai-topiclist-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ITokenService interface {
	Issue(userId uuid.UUID) (string, error)
	Verify(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) error
}

type tokenClaims struct {
	UserId string `json:"userId"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret      []byte
	ttl         time.Duration
	revocations contract.TokenRevocationRepository
	now         func() time.Time
}

func NewTokenService(secret string, ttl time.Duration, revocations contract.TokenRevocationRepository) ITokenService {
	return &tokenService{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
		now:         time.Now,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *tokenService) Issue(userId uuid.UUID) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserId: userId.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) parse(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *tokenService) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.parse(token)
	if err != nil {
		return uuid.Nil, err
	}
	userId, err := uuid.Parse(claims.UserId)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	revoked, err := s.revocations.IsRevoked(ctx, hashToken(token))
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, fmt.Errorf("%w: revoked", ErrInvalidToken)
	}
	return userId, nil
}

// Revoke keeps the token blocked until the moment it would have expired.
func (s *tokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	return s.revocations.Revoke(ctx, hashToken(token), ttl)
}
