package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
)

// SessionRepository stores the server-side session token per user in
// Redis. One live session per user: login overwrites, logout deletes,
// and the TTL matches the JWT lifetime so both expire together.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{client: client, exp: expiration}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("session:%s", userID)
}

// Save records token as the live session for userID.
func (r *SessionRepository) Save(ctx context.Context, userID uuid.UUID, token string) error {
	key := sessionKey(userID)
	err := r.client.Set(ctx, key, token, r.exp).Err()

	logger.Log.Infow("session set",
		"key", key,
		"error", err,
	)

	return err
}

// Get returns the live session token for userID, or "" when no session
// exists.
func (r *SessionRepository) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	key := sessionKey(userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("session get",
		"key", key,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

// Delete drops the live session for userID. Deleting an absent session
// is not an error.
func (r *SessionRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := sessionKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
