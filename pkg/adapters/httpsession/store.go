package httpsession

import (
	"context"

	"github.com/igormicadei/sessionbind/pkg/ports"
)

// namespacedStore is a prefixed view of a shared backing store. It is itself
// a ports.SessionStore, so the binding layer cannot tell it apart from a
// dedicated store.
type namespacedStore struct {
	backend ports.SessionStore
	prefix  string
}

var _ ports.SessionStore = (*namespacedStore)(nil)

func (n *namespacedStore) Get(ctx context.Context, key string) (any, error) {
	return n.backend.Get(ctx, n.prefix+key)
}

func (n *namespacedStore) Set(ctx context.Context, key string, value any) error {
	return n.backend.Set(ctx, n.prefix+key, value)
}

func (n *namespacedStore) Contains(ctx context.Context, key string) (bool, error) {
	return n.backend.Contains(ctx, n.prefix+key)
}

func (n *namespacedStore) Delete(ctx context.Context, key string) error {
	return n.backend.Delete(ctx, n.prefix+key)
}

func (n *namespacedStore) List(ctx context.Context, prefix string) ([]string, error) {
	keys, err := n.backend.List(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k[len(n.prefix):]
	}
	return out, nil
}
