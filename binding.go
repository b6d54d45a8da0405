package sessionbind

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/igormicadei/sessionbind/pkg/domain"
	"github.com/igormicadei/sessionbind/pkg/ports"
)

// Binding is a handle on one logical instance. Every field access routes
// through the session store, so values written here are visible to anything
// else reading the same slot keys (UI widgets included) and survive host
// reruns.
type Binding struct {
	store       ports.SessionStore
	schema      *domain.Schema
	instanceKey string
}

// Class returns the class name of the binding's schema.
func (b *Binding) Class() string {
	return b.schema.Class()
}

// InstanceKey returns the fully namespaced instance key ("<class>:<key>").
func (b *Binding) InstanceKey() string {
	return b.instanceKey
}

// Fields returns the names of the managed fields.
func (b *Binding) Fields() []string {
	return b.schema.FieldNames()
}

// Key returns the raw store key of a field's slot. Hosts can hand this key
// to a UI widget so the widget and the binding share the same slot.
func (b *Binding) Key(field string) (string, error) {
	if _, ok := b.schema.Field(field); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	return domain.SlotKey(b.instanceKey, field), nil
}

// Get reads a field's slot from the store.
// Reading a slot that has never been written returns
// domain.ErrSlotNotInitialized; fields declared with defaults are written at
// bind time and therefore always readable.
func (b *Binding) Get(ctx context.Context, field string) (any, error) {
	key, err := b.Key(field)
	if err != nil {
		return nil, err
	}
	return b.store.Get(ctx, key)
}

// Set writes a field's slot, validating the value against the field's
// declared type when one exists.
func (b *Binding) Set(ctx context.Context, field string, value any) error {
	key, err := b.Key(field)
	if err != nil {
		return err
	}
	if err := b.schema.Validate(field, value); err != nil {
		return err
	}
	return b.store.Set(ctx, key, value)
}

// Load hydrates a struct from the store in one pass. Fields tagged
// `session:"name"` receive the current slot values; slots that were never
// written are skipped, leaving the struct field untouched. Untagged fields
// are never modified.
func (b *Binding) Load(ctx context.Context, target any) error {
	values := make(map[string]any)
	for _, name := range b.schema.FieldNames() {
		val, err := b.Get(ctx, name)
		if errors.Is(err, domain.ErrSlotNotInitialized) {
			continue
		}
		if err != nil {
			return err
		}
		values[name] = val
	}
	return decodeInto(values, target)
}

// Flush writes a struct's tagged fields back to the store in one pass.
// Tagged fields that are not part of the schema are rejected with
// domain.ErrUnknownField.
func (b *Binding) Flush(ctx context.Context, src any) error {
	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("nil source")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("source must be a struct, got %T", src)
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag, ok := sf.Tag.Lookup(domain.StructTag)
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}
		if err := b.Set(ctx, tag, rv.Field(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

// decodeInto decodes raw store values into a typed destination. Weak typing
// absorbs the int/float64 widening of JSON-backed stores.
func decodeInto(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          domain.StructTag,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode slot value: %w", err)
	}
	return nil
}
