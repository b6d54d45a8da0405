package sessionbind

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/igormicadei/sessionbind/internal/logging"
	"github.com/igormicadei/sessionbind/pkg/domain"
	"github.com/igormicadei/sessionbind/pkg/ports"
)

// Manager is the high-level entry point for the sessionbind library.
// It owns the in-process registry of bindings and constructs new ones
// against the injected session store.
type Manager struct {
	store  ports.SessionStore
	logger *slog.Logger

	mu       sync.Mutex
	bindings map[string]*Binding
}

// Option defines a functional option for configuring the Manager.
type Option func(*Manager)

// WithLogger sets a custom structured logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a Manager backed by the given session store. The store is a
// required collaborator; its lifetime (typically one per user session) is
// owned by the caller, never by the manager.
func New(store ports.SessionStore, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}

	m := &Manager{
		store:    store,
		logger:   logging.NewNop(),
		bindings: make(map[string]*Binding),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Bind constructs or resumes the logical instance identified by
// (schema.Class(), key).
//
// An empty key generates a fresh one, producing an instance that can only be
// resumed through the returned binding. A non-empty key re-associates the
// binding with whatever was previously stored under it: if the store already
// carries the instance's marker, existing slot values win and no defaults
// are written; otherwise every schema default is written through the slots
// and the marker is set.
//
// Within one process run, binding the same (class, key) twice returns the
// same *Binding.
func (m *Manager) Bind(ctx context.Context, schema *domain.Schema, key string) (*Binding, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is required")
	}
	if key == "" {
		key = uuid.NewString()
	} else if err := domain.ValidateName(key); err != nil {
		return nil, fmt.Errorf("instance key: %w", err)
	}

	instanceKey := domain.InstanceKey(schema.Class(), key)

	m.mu.Lock()
	if b, ok := m.bindings[instanceKey]; ok {
		m.mu.Unlock()
		return b, nil
	}
	m.mu.Unlock()

	marker := domain.MarkerKey(instanceKey)
	bound, err := m.store.Contains(ctx, marker)
	if err != nil {
		return nil, fmt.Errorf("failed to check instance marker: %w", err)
	}

	if bound {
		raw, err := m.store.Get(ctx, marker)
		if err != nil {
			return nil, fmt.Errorf("failed to read instance marker: %w", err)
		}
		if class, ok := raw.(string); !ok || class != schema.Class() {
			return nil, fmt.Errorf("%w: instance %q carries marker %v", domain.ErrClassMismatch, instanceKey, raw)
		}
		m.logger.Debug("resumed instance", "instance_key", instanceKey)
	} else {
		if err := m.initialize(ctx, schema, instanceKey); err != nil {
			return nil, err
		}
		m.logger.Debug("initialized instance", "instance_key", instanceKey, "fields", len(schema.Fields()))
	}

	b := &Binding{
		store:       m.store,
		schema:      schema,
		instanceKey: instanceKey,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have bound the same key meanwhile; the first
	// registration wins so both callers see the same logical instance.
	if existing, ok := m.bindings[instanceKey]; ok {
		return existing, nil
	}
	m.bindings[instanceKey] = b
	return b, nil
}

// initialize writes the schema defaults through the slots and sets the
// marker last, so a partially initialized instance is retried on rebind.
func (m *Manager) initialize(ctx context.Context, schema *domain.Schema, instanceKey string) error {
	for _, f := range schema.Fields() {
		if f.Default == nil {
			continue
		}
		slot := domain.SlotKey(instanceKey, f.Name)
		if err := m.store.Set(ctx, slot, f.Default); err != nil {
			return fmt.Errorf("failed to write default for %q: %w", slot, err)
		}
	}
	if err := m.store.Set(ctx, domain.MarkerKey(instanceKey), schema.Class()); err != nil {
		return fmt.Errorf("failed to set instance marker: %w", err)
	}
	return nil
}

// Forget drops a binding from the in-process registry. The store is left
// untouched: slot cleanup belongs to the host's session lifecycle, and a
// later Bind with the same key resumes the stored instance.
func (m *Manager) Forget(b *Binding) {
	if b == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bindings, b.instanceKey)
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}
