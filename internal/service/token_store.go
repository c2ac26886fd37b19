package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps an allowlist of issued token ids in redis so that
// logout revokes a token before its expiry. A nil *TokenStore is valid
// and degrades validation to signature and expiry checks only.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) key(tokenID string) string {
	return fmt.Sprintf("auth:token:%s", tokenID)
}

// Save records an issued token id for the lifetime of the token.
func (s *TokenStore) Save(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(tokenID), userID.String(), ttl).Err()
}

// Valid reports whether the token id is still on the allowlist.
func (s *TokenStore) Valid(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke removes the token id, terminating the session.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, s.key(tokenID)).Err()
}
