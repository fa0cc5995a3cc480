package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStoreWithClient(client)
}

func TestRedisStore_ReadMissingSlot(t *testing.T) {
	store := setupRedisStore(t)

	data, ok, err := store.Read(context.Background(), PostsSlot)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestRedisStore_WriteThenRead(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, ProjectsSlot, []byte(`[{"id":"proj-1"}]`)))

	data, ok, err := store.Read(ctx, ProjectsSlot)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"proj-1"}]`, string(data))
}

func TestRedisStore_OverwriteReplacesValue(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, AboutSlot, []byte(`{"id":"old"}`)))
	require.NoError(t, store.Write(ctx, AboutSlot, []byte(`{"id":"new"}`)))

	data, _, err := store.Read(ctx, AboutSlot)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"new"}`, string(data))
}

func TestRedisStore_KeysArePrefixed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewRedisStoreWithClient(client)

	require.NoError(t, store.Write(context.Background(), PostsSlot, []byte("[]")))
	assert.True(t, mr.Exists("studio:slot:"+PostsSlot))
}
