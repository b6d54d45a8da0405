package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormicadei/sessionbind/pkg/adapters/memory"
	"github.com/igormicadei/sessionbind/pkg/ports"
)

var _ ports.SessionStore = (*memory.Store)(nil)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}

func TestMemoryStore_TypePreservation(t *testing.T) {
	// Unlike serializing adapters, the memory store must hand back the exact
	// value it was given.
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "slot.int", 7))
	require.NoError(t, store.Set(ctx, "slot.slice", []string{"a", "b"}))

	v, err := store.Get(ctx, "slot.int")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = store.Get(ctx, "slot.slice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = store.Set(ctx, "shared", n)
				_, _ = store.Get(ctx, "shared")
				_, _ = store.Contains(ctx, "shared")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Equal(t, 1, store.Len())
}
