package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormicadei/sessionbind/pkg/domain"
)

// RunSessionStoreContract runs a suite of tests to verify that a
// SessionStore implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + ":"

	t.Run("Set and Get", func(t *testing.T) {
		key := prefix + "profile.name"

		err := store.Set(ctx, key, "Ada")
		require.NoError(t, err, "Set should not return error")

		val, err := store.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, "Ada", val)

		// Overwrite wins
		err = store.Set(ctx, key, "Grace")
		require.NoError(t, err)
		val, err = store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Grace", val)
	})

	t.Run("Get Uninitialized", func(t *testing.T) {
		_, err := store.Get(ctx, prefix+"never-written")
		assert.ErrorIs(t, err, domain.ErrSlotNotInitialized)
	})

	t.Run("Contains", func(t *testing.T) {
		key := prefix + "profile.counter"

		ok, err := store.Contains(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "absent key should not be contained")

		require.NoError(t, store.Set(ctx, key, 42))

		ok, err = store.Contains(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Numeric round-trip", func(t *testing.T) {
		key := prefix + "profile.ratio"
		require.NoError(t, store.Set(ctx, key, 42))

		val, err := store.Get(ctx, key)
		require.NoError(t, err)
		// JSON-based adapters widen ints to float64; both are acceptable.
		switch v := val.(type) {
		case int:
			assert.Equal(t, 42, v)
		case float64:
			assert.Equal(t, float64(42), v)
		default:
			t.Errorf("unexpected numeric type %T", val)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		key := prefix + "profile.tmp"
		require.NoError(t, store.Set(ctx, key, true))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSlotNotInitialized, "Get after Delete should report uninitialized")

		// Idempotent
		assert.NoError(t, store.Delete(ctx, key))
	})

	t.Run("List", func(t *testing.T) {
		k1 := prefix + "list.a"
		k2 := prefix + "list.b"
		other := prefix + "other.c"
		require.NoError(t, store.Set(ctx, k1, 1))
		require.NoError(t, store.Set(ctx, k2, 2))
		require.NoError(t, store.Set(ctx, other, 3))

		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
			_ = store.Delete(ctx, other)
		}()

		keys, err := store.List(ctx, prefix+"list.")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{k1, k2}, keys)
	})
}
