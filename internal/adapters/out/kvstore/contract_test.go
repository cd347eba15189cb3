package kvstore_test

import (
	"context"
	"testing"

	"pos/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every ports.KeyValueStore must share.
func runStoreContract(t *testing.T, ctx context.Context, store ports.KeyValueStore) {
	t.Helper()

	t.Run("missing key reports absence without error", func(t *testing.T) {
		value, ok, err := store.Get(ctx, "orders:missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("set then get returns the value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "orders:b1", []byte(`[{"id":1}]`)))

		value, ok, err := store.Get(ctx, "orders:b1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":1}]`, string(value))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "orders:b2", []byte(`[]`)))
		require.NoError(t, store.Set(ctx, "orders:b2", []byte(`[{"id":2}]`)))

		value, _, err := store.Get(ctx, "orders:b2")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":2}]`, string(value))
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "orders", []byte(`[]`)))
		require.NoError(t, store.Delete(ctx, "orders"))
		require.NoError(t, store.Delete(ctx, "orders"))

		_, ok, err := store.Get(ctx, "orders")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "orders:x", []byte(`"x"`)))
		require.NoError(t, store.Set(ctx, "orders:y", []byte(`"y"`)))
		require.NoError(t, store.Delete(ctx, "orders:x"))

		value, ok, err := store.Get(ctx, "orders:y")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `"y"`, string(value))
	})
}
