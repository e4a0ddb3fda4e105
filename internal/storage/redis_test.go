package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), mr
}

func TestRedisStore(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	t.Run("get of a missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, KeyProjects)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyProjects, []byte(`[{"id":"a"}]`)))

		data, err := store.Get(ctx, KeyProjects)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"a"}]`, string(data))
	})

	t.Run("keys are namespaced", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyCurrency, []byte(`"GBP"`)))
		assert.True(t, mr.Exists("cc:currency"))
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyLeads, []byte(`[]`)))
		require.NoError(t, store.Delete(ctx, KeyLeads))

		_, err := store.Get(ctx, KeyLeads)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMonthlyTargetKey(t *testing.T) {
	assert.Equal(t, "goal_2024_01", MonthlyTargetKey(2024, 1))
	assert.Equal(t, "goal_2026_12", MonthlyTargetKey(2026, 12))
}
