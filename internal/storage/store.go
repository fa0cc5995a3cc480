// Package storage maps content collections to and from named durable
// slots. A slot holds one JSON-encoded collection (or a single record);
// every write replaces the slot's full value.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Slot key names. One slot per collection, plus the singleton about
// record and the admin credential table.
const (
	PostsSlot    = "blogPosts"
	ProjectsSlot = "projectsData"
	AboutSlot    = "aboutData"
	UsersSlot    = "adminUsers"
)

// ErrCorruptSlot indicates a slot's stored value could not be decoded.
// The value is left in place; callers decide how to recover.
var ErrCorruptSlot = errors.New("storage: slot contains invalid data")

// SlotStore is a named key/value store for serialized collections.
// Read reports ok=false when the slot has never been written.
type SlotStore interface {
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)
	Write(ctx context.Context, key string, data []byte) error
}

// LoadSlice decodes the collection held in key. An absent slot is seeded:
// the seed collection is written back and returned. A present but
// undecodable value yields ErrCorruptSlot without overwriting the slot.
func LoadSlice[T any](ctx context.Context, store SlotStore, key string, seed []T) ([]T, error) {
	data, ok, err := store.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	if !ok {
		if err := SaveSlice(ctx, store, key, seed); err != nil {
			return nil, err
		}
		return append([]T(nil), seed...), nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w: %w", key, ErrCorruptSlot, err)
	}
	return items, nil
}

// SaveSlice encodes the collection and overwrites the slot.
func SaveSlice[T any](ctx context.Context, store SlotStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := store.Write(ctx, key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// LoadOne decodes the single record held in key, seeding an absent slot
// with the provided default record.
func LoadOne[T any](ctx context.Context, store SlotStore, key string, seed T) (T, error) {
	var zero T
	data, ok, err := store.Read(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("read slot %s: %w", key, err)
	}
	if !ok {
		if err := SaveOne(ctx, store, key, seed); err != nil {
			return zero, err
		}
		return seed, nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return zero, fmt.Errorf("decode slot %s: %w: %w", key, ErrCorruptSlot, err)
	}
	return item, nil
}

// SaveOne encodes the record and overwrites the slot.
func SaveOne[T any](ctx context.Context, store SlotStore, key string, item T) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := store.Write(ctx, key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
