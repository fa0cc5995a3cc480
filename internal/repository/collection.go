// Package repository provides data access over the storage codec's slots.
// The three content repositories share one generic collection so the
// CRUD shape is written once.
package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"studio/internal/observability"
	"studio/internal/storage"
)

// ErrSlugTaken is returned when a create or update would give two
// entities in the same collection the same slug.
var ErrSlugTaken = errors.New("repository: slug already in use")

// Entity is any record that lives in a slot-backed collection.
type Entity interface {
	EntityID() string
	EntitySlug() string
}

// collection implements slot-backed CRUD for one entity type. Every
// mutation re-encodes and rewrites the whole collection; collections are
// small and there is no concurrent writer, so this stays O(n) and simple.
type collection[T Entity] struct {
	store storage.SlotStore
	key   string
	seed  []T
	log   *observability.RepoLogger
}

func newCollection[T Entity](store storage.SlotStore, key string, seed []T) *collection[T] {
	return &collection[T]{
		store: store,
		key:   key,
		seed:  seed,
		log:   observability.NewRepoLogger(key),
	}
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	items, err := storage.LoadSlice(ctx, c.store, c.key, c.seed)
	if err != nil {
		c.log.LogError(ctx, err, "load")
		return nil, err
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if err := storage.SaveSlice(ctx, c.store, c.key, items); err != nil {
		c.log.LogError(ctx, err, "save")
		return err
	}
	return nil
}

// getAll returns the full collection in insertion order.
func (c *collection[T]) getAll(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// getByID scans for the entity with the given id. Absent ids yield
// (nil, nil); not-found is the caller's decision, not an error here.
func (c *collection[T]) getByID(ctx context.Context, id string) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].EntityID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// getBySlug returns the first entity carrying the slug. Duplicate slugs
// cannot arise through this package (create/update reject them), but a
// hand-edited slot still resolves to the first match.
func (c *collection[T]) getBySlug(ctx context.Context, slug string) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].EntitySlug() == slug {
			return &items[i], nil
		}
	}
	return nil, nil
}

// create appends the entity after checking its slug is free.
func (c *collection[T]) create(ctx context.Context, item T) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].EntitySlug() == item.EntitySlug() {
			return ErrSlugTaken
		}
	}
	items = append(items, item)
	if err := c.save(ctx, items); err != nil {
		return err
	}
	c.log.LogWrite(ctx, "create", item.EntityID())
	return nil
}

// update locates the entity by id and applies the mutation in place.
// Returns (nil, nil) when the id is unknown; the collection is then left
// untouched. The mutation must not change the entity's id.
func (c *collection[T]) update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range items {
		if items[i].EntityID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	apply(&items[idx])

	for i := range items {
		if i != idx && items[i].EntitySlug() == items[idx].EntitySlug() {
			return nil, ErrSlugTaken
		}
	}

	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	c.log.LogWrite(ctx, "update", id)
	return &items[idx], nil
}

// delete filters the id out of the collection. Deleting an unknown id is
// not an error; the bool reports whether anything was removed.
func (c *collection[T]) delete(ctx context.Context, id string) (bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	kept := items[:0]
	for _, item := range items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := c.save(ctx, kept); err != nil {
		return false, err
	}
	c.log.LogWrite(ctx, "delete", id)
	return true, nil
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a time-based id string. The guard keeps ids strictly
// increasing within the process so rapid creates never collide.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixNano()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

// today returns the creation date stamp in YYYY-MM-DD form.
func today() string {
	return time.Now().Format("2006-01-02")
}
