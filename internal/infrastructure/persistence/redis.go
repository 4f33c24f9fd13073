package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensedesk/backend/internal/store"
	"github.com/redis/go-redis/v9"
)

// RedisSnapshotter keeps the whole snapshot under a single versioned key.
// SET replaces the value atomically, so readers always see a complete
// snapshot. Suitable when the service should survive host restarts without
// a local disk.
type RedisSnapshotter struct {
	client *redis.Client
	key    string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSnapshotter connects to Redis and verifies the connection
func NewRedisSnapshotter(cfg RedisConfig, key string) (*RedisSnapshotter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if key == "" {
		key = store.SnapshotKey
	}
	return &RedisSnapshotter{client: client, key: key}, nil
}

// NewRedisSnapshotterWithClient wraps an existing client, useful in tests
func NewRedisSnapshotterWithClient(client *redis.Client, key string) *RedisSnapshotter {
	if key == "" {
		key = store.SnapshotKey
	}
	return &RedisSnapshotter{client: client, key: key}
}

// Read returns the snapshot bytes, or store.ErrNoSnapshot when the key is absent
func (r *RedisSnapshotter) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Write replaces the snapshot value. No expiry: the snapshot is the system
// of record, not a cache.
func (r *RedisSnapshotter) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (r *RedisSnapshotter) Close() error {
	return r.client.Close()
}

// Ensure RedisSnapshotter implements store.Snapshotter
var _ store.Snapshotter = (*RedisSnapshotter)(nil)
