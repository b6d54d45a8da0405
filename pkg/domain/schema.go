package domain

import (
	"fmt"
	"reflect"

	"github.com/igormicadei/sessionbind/pkg/schema"
)

// Field declares one persistent field of a logical class.
type Field struct {
	// Name is the field name within the class. Becomes part of the slot key.
	Name string

	// Type optionally constrains values written to the field.
	// A nil Type means no validation.
	Type schema.Type

	// Default is written through the slot on first initialization of an
	// instance. A nil Default means the slot starts uninitialized.
	Default any
}

// Schema is the declared set of persistent fields of one logical class.
// Only declared fields are routed through the session store; anything else
// on the caller's objects remains ordinary in-memory state.
type Schema struct {
	class  string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema for the given class name.
// Field names must be unique and must not contain key separators.
func NewSchema(class string, fields ...Field) (*Schema, error) {
	if err := ValidateName(class); err != nil {
		return nil, fmt.Errorf("class: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("class %q: schema needs at least one field", class)
	}

	s := &Schema{
		class:  class,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := ValidateName(f.Name); err != nil {
			return nil, fmt.Errorf("class %q: field: %w", class, err)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("class %q: duplicate field %q", class, f.Name)
		}
		if f.Type != nil && f.Default != nil {
			if err := f.Type.Validate(f.Default); err != nil {
				return nil, fmt.Errorf("class %q: field %q: default: %w", class, f.Name, err)
			}
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// Class returns the class name.
func (s *Schema) Class() string {
	return s.class
}

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Validate checks a value against the declared type of a field.
// Fields without a type accept anything.
func (s *Schema) Validate(field string, value any) error {
	f, ok := s.Field(field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if f.Type == nil {
		return nil
	}
	if err := f.Type.Validate(value); err != nil {
		return &schema.ValidationError{Key: field, Reason: err.Error(), Value: value}
	}
	return nil
}

// StructTag is the struct tag consulted by SchemaFromStruct, Load and Flush.
const StructTag = "session"

// SchemaFromStruct derives a schema from the tagged fields of a struct.
// Only exported fields carrying a `session:"name"` tag participate; untagged
// fields are left alone and never reach the store. The prototype's field
// values become the schema defaults, and field types are inferred from the
// Go types where a validator exists (string, ints, floats, bool and slices
// of those).
func SchemaFromStruct(class string, prototype any) (*Schema, error) {
	rv := reflect.ValueOf(prototype)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("class %q: nil prototype", class)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("class %q: prototype must be a struct, got %T", class, prototype)
	}

	rt := rv.Type()
	var fields []Field
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag, ok := sf.Tag.Lookup(StructTag)
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}
		fields = append(fields, Field{
			Name:    tag,
			Type:    typeFor(sf.Type),
			Default: rv.Field(i).Interface(),
		})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("class %q: no fields tagged %q on %s", class, StructTag, rt)
	}
	return NewSchema(class, fields...)
}

// typeFor maps a Go type to a schema validator, or nil when no built-in
// validator applies.
func typeFor(t reflect.Type) schema.Type {
	switch t.Kind() {
	case reflect.String:
		return schema.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return schema.Int()
	case reflect.Float32, reflect.Float64:
		return schema.Float()
	case reflect.Bool:
		return schema.Bool()
	case reflect.Slice:
		if elem := typeFor(t.Elem()); elem != nil {
			return schema.Slice(elem)
		}
	}
	return nil
}
