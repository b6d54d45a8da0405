package sessionbind

import (
	"context"
	"errors"
	"fmt"

	"github.com/igormicadei/sessionbind/pkg/domain"
)

// Var is a typed view over one field of a binding. It is the ergonomic way
// to work with a single slot: reads decode the stored value into T, writes
// go straight through to the store.
type Var[T any] struct {
	binding *Binding
	field   string
	key     string
}

// VarOf creates a typed accessor for a declared field.
func VarOf[T any](b *Binding, field string) (*Var[T], error) {
	key, err := b.Key(field)
	if err != nil {
		return nil, err
	}
	return &Var[T]{binding: b, field: field, key: key}, nil
}

// Key returns the raw store key of the underlying slot, for sharing with UI
// widgets bound to the same store.
func (v *Var[T]) Key() string {
	return v.key
}

// Get reads and decodes the slot value. JSON-backed stores widen numbers;
// the decode step narrows them back into T.
func (v *Var[T]) Get(ctx context.Context) (T, error) {
	var out T
	raw, err := v.binding.Get(ctx, v.field)
	if err != nil {
		return out, err
	}
	if err := decodeInto(raw, &out); err != nil {
		return out, fmt.Errorf("field %q: %w", v.field, err)
	}
	return out, nil
}

// Set writes the slot value.
func (v *Var[T]) Set(ctx context.Context, value T) error {
	return v.binding.Set(ctx, v.field, value)
}

// Update applies fn to the current value and writes the result back.
// Reading an uninitialized slot starts from T's zero value.
func (v *Var[T]) Update(ctx context.Context, fn func(T) T) error {
	current, err := v.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrSlotNotInitialized) {
		return err
	}
	return v.Set(ctx, fn(current))
}
