package storage

import (
	"context"
	"testing"

	"studio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSlice_SeedsAbsentSlot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seed := []models.Post{
		{ID: "1", Slug: "first", Title: "First"},
		{ID: "2", Slug: "second", Title: "Second"},
	}

	posts, err := LoadSlice(ctx, store, PostsSlot, seed)
	require.NoError(t, err)
	assert.Equal(t, seed, posts)

	// The seed must now be durably stored, not just returned.
	data, ok, err := store.Read(ctx, PostsSlot)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, data)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []models.Post{
		{ID: "10", Slug: "a", Title: "A", Category: "ai-news", Published: true, Date: "2024-07-28", Tags: []string{"x", "y"}},
		{ID: "11", Slug: "b", Title: "B", Category: "tutorials", Date: "2024-07-29", Tags: []string{}},
	}

	require.NoError(t, SaveSlice(ctx, store, PostsSlot, original))

	decoded, err := LoadSlice[models.Post](ctx, store, PostsSlot, nil)
	require.NoError(t, err)
	assert.Equal(t, original, decoded, "encode then decode must preserve values and order")
}

func TestLoadSlice_CorruptSlotSurfacesError(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, PostsSlot, []byte("{not json")))

	_, err := LoadSlice[models.Post](ctx, store, PostsSlot, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptSlot)

	// The corrupted value must be left in place for recovery.
	data, ok, readErr := store.Read(ctx, PostsSlot)
	require.NoError(t, readErr)
	assert.True(t, ok)
	assert.Equal(t, []byte("{not json"), data)
}

func TestSaveSlice_NilBecomesEmptyCollection(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, SaveSlice[models.Post](ctx, store, PostsSlot, nil))

	data, ok, err := store.Read(ctx, PostsSlot)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, "[]", string(data))
}

func TestLoadOne_SeedsAndRoundTrips(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seed := models.AboutContent{
		ID:       models.AboutContentID,
		MainText: "<p>Hello</p>",
		Achievements: []models.Achievement{
			{ID: "ach-1", IconName: "Award", Text: "Did a thing"},
		},
	}

	got, err := LoadOne(ctx, store, AboutSlot, seed)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	got.MainText = "<p>Updated</p>"
	require.NoError(t, SaveOne(ctx, store, AboutSlot, got))

	reloaded, err := LoadOne(ctx, store, AboutSlot, models.AboutContent{})
	require.NoError(t, err)
	assert.Equal(t, "<p>Updated</p>", reloaded.MainText)
	assert.Len(t, reloaded.Achievements, 1)
}

func TestLoadOne_CorruptSlot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, AboutSlot, []byte("42garbage")))

	_, err := LoadOne(ctx, store, AboutSlot, models.AboutContent{})
	assert.ErrorIs(t, err, ErrCorruptSlot)
}
