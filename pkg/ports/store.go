package ports

import "context"

// SessionStore is the external session mapping sessionbind delegates to.
// The store is injected by the caller and its lifetime is owned by the host
// (created per user session, torn down when the session ends); sessionbind
// never destroys slots on its own.
//
// Implementations must treat keys as opaque strings. Values are arbitrary;
// adapters that serialize (e.g. Redis) may round-trip values through JSON,
// which callers should expect to widen ints to float64 when reading raw.
type SessionStore interface {
	// Get retrieves the value stored under key.
	// Returns domain.ErrSlotNotInitialized if the key has never been written.
	Get(ctx context.Context, key string) (any, error)

	// Set stores a value under key, creating the slot on first write.
	Set(ctx context.Context, key string, value any) error

	// Contains reports whether key exists in the store.
	Contains(ctx context.Context, key string) (bool, error)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all keys with the given prefix. An empty prefix lists
	// every key.
	List(ctx context.Context, prefix string) ([]string, error)
}
