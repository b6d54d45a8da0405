package sessionbind_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormicadei/sessionbind"
	redisstore "github.com/igormicadei/sessionbind/pkg/adapters/redis"
)

// Redis round-trips values through JSON, so this exercises the full path the
// typed accessors are designed for: ints widen to float64 at rest and narrow
// back on read.
func TestRerun_RedisBackend(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisstore.NewFromClient(client)
	ctx := context.Background()
	schema := profileSchema(t)

	mgr, err := sessionbind.New(store)
	require.NoError(t, err)

	b, err := mgr.Bind(ctx, schema, "a")
	require.NoError(t, err)

	counter, err := sessionbind.VarOf[int](b, "counter")
	require.NoError(t, err)
	require.NoError(t, counter.Set(ctx, 41))
	require.NoError(t, counter.Update(ctx, func(n int) int { return n + 1 }))

	// Rerun against the same Redis: a brand new manager and binding.
	rerun, err := sessionbind.New(store)
	require.NoError(t, err)
	b2, err := rerun.Bind(ctx, schema, "a")
	require.NoError(t, err)

	counter2, err := sessionbind.VarOf[int](b2, "counter")
	require.NoError(t, err)
	n, err := counter2.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	// Raw reads show the JSON widening the typed accessor hides.
	raw, err := b2.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, float64(42), raw)

	// Struct hydration narrows as well.
	var p Profile
	require.NoError(t, b2.Load(ctx, &p))
	assert.Equal(t, 42, p.Counter)
	assert.Equal(t, "anonymous", p.Name, "default applied at first bind survives the rerun")
}
