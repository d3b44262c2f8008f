package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNil is returned when a key does not exist.
var ErrNil = goredis.Nil

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	TakeSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteUserSessions(ctx context.Context, userID uint64) error
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", ErrNil
	}
	return r.client.Get(ctx, key).Result()
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes keys from Redis
func (r *redis) Delete(ctx context.Context, keys ...string) error {
	if r.client == nil || len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// SetSession stores a session with userID and TTL and indexes it under the user.
// The index expires with the last session written to it.
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(sessionID), userID, ttl)
		pipe.SAdd(ctx, userSessionsKey(userID), sessionID)
		pipe.Expire(ctx, userSessionsKey(userID), ttl)
		return nil
	})
	return err
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	if r.client == nil {
		return 0, ErrNil
	}
	return r.client.Get(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

// TakeSession reads and removes a session in one step, so only one caller can use it.
func (r *redis) TakeSession(ctx context.Context, sessionID string) (uint64, error) {
	if r.client == nil {
		return 0, ErrNil
	}
	return r.client.GetDel(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteUserSessions drops every session indexed under userID.
func (r *redis) DeleteUserSessions(ctx context.Context, userID uint64) error {
	if r.client == nil {
		return nil
	}
	ids, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))
	return r.client.Del(ctx, keys...).Err()
}

// IncrWindow counts hits on key inside a fixed window that starts at the first hit.
// It returns the count so far and the time left in the window.
func (r *redis) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if r.client == nil {
		return 0, 0, nil
	}
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	left, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	// first hit, or a key that lost its expiry
	if count == 1 || left < 0 {
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		left = window
	}
	return count, left, nil
}

// IsNil reports whether err means the key was missing.
func IsNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userSessionsKey(userID uint64) string {
	return "user_sessions:" + strconv.FormatUint(userID, 10)
}
