package popup

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
)

// DefaultKeyPrefix namespaces popup keys in a shared Redis.
const DefaultKeyPrefix = "filemyrti:popup:"

// RedisStore keeps one key per visitor: <prefix><visitor>:<FlagName>.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a store backed by a new Redis client.
func NewRedisStore(addr, password string, db int, prefix string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreWithClient(rdb, prefix)
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

// Backend implements Store.
func (s *RedisStore) Backend() string { return "redis" }

// Key returns the Redis key for visitor.
func (s *RedisStore) Key(visitor string) string {
	return s.prefix + visitor + ":" + FlagName
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(errors.EPersistFailed, "redis is unreachable", err)
	}
	return nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Seen implements Store.
func (s *RedisStore) Seen(ctx context.Context, visitor string) (bool, error) {
	if err := ValidateVisitor(visitor); err != nil {
		return false, err
	}
	n, err := s.client.Exists(ctx, s.Key(visitor)).Result()
	if err != nil {
		return false, errors.WrapWithDetails(errors.EPersistFailed, "failed to read popup flag", err, map[string]string{
			"visitor": visitor,
		})
	}
	return n > 0, nil
}

// MarkSeen implements Store. The first write wins; later calls keep the
// original timestamp.
func (s *RedisStore) MarkSeen(ctx context.Context, visitor string) error {
	if err := ValidateVisitor(visitor); err != nil {
		return err
	}
	stamp := s.now().UTC().Format(time.RFC3339)
	if err := s.client.SetNX(ctx, s.Key(visitor), stamp, 0).Err(); err != nil {
		return errors.WrapWithDetails(errors.EPersistFailed, "failed to write popup flag", err, map[string]string{
			"visitor": visitor,
		})
	}
	return nil
}
