package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"studio/internal/observability"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each slot in a Redis string key. Keys are prefixed so
// a shared Redis instance can host other workloads.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.StorageErrorRate.WithLabelValues("redis", cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.StorageErrorRate.WithLabelValues("redis", "pipeline").Inc()
		}
		return err
	}
}

// NewRedisStore connects to Redis at addr (host:port or redis:// URL)
// and verifies the connection before returning.
func NewRedisStore(addr string) (*RedisStore, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL %q: %w", addr, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Println("Redis connected successfully")

	return &RedisStore{client: client, prefix: "studio:slot:"}, nil
}

// NewRedisStoreWithClient wraps an existing client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "studio:slot:"}
}

// Read returns the slot's value, reporting ok=false for a missing key.
func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Write overwrites the slot's value. Slots never expire.
func (s *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return err
	}
	observability.SlotWritesTotal.WithLabelValues(key).Inc()
	return nil
}

// Client exposes the underlying connection for consumers that need raw
// Redis commands, such as the rate limiter.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
