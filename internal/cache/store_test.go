package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSQLiteStore_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is a miss", func(t *testing.T) {
		store := newTestStore(t, time.Hour)

		body, ok, err := store.Get(ctx, "en/avatar")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, body)
	})

	t.Run("set then get returns the identical body", func(t *testing.T) {
		store := newTestStore(t, time.Hour)
		stored := []byte(`{"response":200,"data":{"items":{}}}`)

		require.NoError(t, store.Set(ctx, "en/avatar", stored))

		body, ok, err := store.Get(ctx, "en/avatar")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, stored, body)
	})

	t.Run("set overwrites an existing entry", func(t *testing.T) {
		store := newTestStore(t, time.Hour)

		require.NoError(t, store.Set(ctx, "en/avatar", []byte("old")))
		require.NoError(t, store.Set(ctx, "en/avatar", []byte("new")))

		body, ok, err := store.Get(ctx, "en/avatar")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("new"), body)
	})

	t.Run("keys are independent per language", func(t *testing.T) {
		store := newTestStore(t, time.Hour)

		require.NoError(t, store.Set(ctx, "en/avatar", []byte("english")))
		require.NoError(t, store.Set(ctx, "jp/avatar", []byte("japanese")))

		body, ok, err := store.Get(ctx, "jp/avatar")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("japanese"), body)
	})
}

func TestSQLiteStore_Expiry(t *testing.T) {
	ctx := context.Background()

	t.Run("entry expires after the ttl", func(t *testing.T) {
		store := newTestStore(t, time.Hour)
		now := time.Now()
		store.now = func() time.Time { return now }

		require.NoError(t, store.Set(ctx, "en/weapon", []byte("body")))

		store.now = func() time.Time { return now.Add(time.Hour + time.Second) }
		body, ok, err := store.Get(ctx, "en/weapon")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, body)
	})

	t.Run("entry stays fresh within the ttl", func(t *testing.T) {
		store := newTestStore(t, time.Hour)
		now := time.Now()
		store.now = func() time.Time { return now }

		require.NoError(t, store.Set(ctx, "en/weapon", []byte("body")))

		store.now = func() time.Time { return now.Add(59 * time.Minute) }
		_, ok, err := store.Get(ctx, "en/weapon")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("zero ttl never serves from cache", func(t *testing.T) {
		store := newTestStore(t, 0)

		require.NoError(t, store.Set(ctx, "en/weapon", []byte("body")))

		_, ok, err := store.Get(ctx, "en/weapon")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Hour)

	require.NoError(t, store.Set(ctx, "en/avatar", []byte("a")))
	require.NoError(t, store.Set(ctx, "en/weapon", []byte("b")))

	require.NoError(t, store.Clear(ctx))

	_, ok, err := store.Get(ctx, "en/avatar")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Get(ctx, "en/weapon")
	require.NoError(t, err)
	assert.False(t, ok)
}
