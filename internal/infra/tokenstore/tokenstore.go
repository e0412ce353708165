// Package tokenstore keeps one-shot account tokens (email verification,
// password reset) in Redis with a TTL. Tokens are opaque UUIDs; consuming a
// token deletes it, so each value works exactly once.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Purpose namespaces tokens so a verification token cannot reset a password
type Purpose string

const (
	PurposeEmailVerification Purpose = "verify"
	PurposePasswordReset     Purpose = "reset"
)

var (
	// ErrTokenNotFound is returned for unknown, expired or already used tokens
	ErrTokenNotFound = errors.New("tokenstore: token not found or expired")

	// ErrStore is returned when Redis fails
	ErrStore = errors.New("tokenstore: store error")
)

// Store issues and consumes one-shot tokens
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a token store on top of an existing Redis client
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(purpose Purpose, token string) string {
	return fmt.Sprintf("token:%s:%s", purpose, token)
}

// Issue creates a token bound to the user id and returns its value
func (s *Store) Issue(ctx context.Context, purpose Purpose, userID int64) (string, error) {
	token := uuid.NewString()

	err := s.client.Set(ctx, key(purpose, token), strconv.FormatInt(userID, 10), s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("%w: issue %s token: %v", ErrStore, purpose, err)
	}

	return token, nil
}

// Consume resolves the token to its user id and deletes it
func (s *Store) Consume(ctx context.Context, purpose Purpose, token string) (int64, error) {
	k := key(purpose, token)

	value, err := s.client.Get(ctx, k).Result()
	if err == redis.Nil {
		return 0, ErrTokenNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get %s token: %v", ErrStore, purpose, err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed token payload: %v", ErrStore, err)
	}

	if err := s.client.Del(ctx, k).Err(); err != nil {
		return 0, fmt.Errorf("%w: delete %s token: %v", ErrStore, purpose, err)
	}

	return userID, nil
}
