package storage

import (
	"fmt"

	"studio/internal/config"
)

// NewFromConfig builds the slot store named by STORAGE_BACKEND.
func NewFromConfig(cfg *config.Config) (SlotStore, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		store, err := NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		return store, nil
	case config.BackendPostgres:
		store, err := NewGormStore(cfg)
		if err != nil {
			return nil, fmt.Errorf("postgres store: %w", err)
		}
		return store, nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
