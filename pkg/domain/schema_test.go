package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormicadei/sessionbind/pkg/domain"
	"github.com/igormicadei/sessionbind/pkg/schema"
)

func TestNewSchema_Validation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := domain.NewSchema("profile",
			domain.Field{Name: "name", Type: schema.String(), Default: "anon"},
			domain.Field{Name: "counter", Type: schema.Int(), Default: 0},
		)
		require.NoError(t, err)
		assert.Equal(t, "profile", s.Class())
		assert.Equal(t, []string{"name", "counter"}, s.FieldNames())
	})

	t.Run("empty class", func(t *testing.T) {
		_, err := domain.NewSchema("", domain.Field{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := domain.NewSchema("profile")
		assert.Error(t, err)
	})

	t.Run("duplicate field", func(t *testing.T) {
		_, err := domain.NewSchema("profile",
			domain.Field{Name: "x"},
			domain.Field{Name: "x"},
		)
		assert.Error(t, err)
	})

	t.Run("reserved field name", func(t *testing.T) {
		_, err := domain.NewSchema("profile", domain.Field{Name: "__bound__"})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("default must match declared type", func(t *testing.T) {
		_, err := domain.NewSchema("profile",
			domain.Field{Name: "counter", Type: schema.Int(), Default: "zero"},
		)
		assert.Error(t, err)
	})
}

func TestSchema_Validate(t *testing.T) {
	s, err := domain.NewSchema("profile",
		domain.Field{Name: "counter", Type: schema.Int()},
		domain.Field{Name: "anything"}, // untyped
	)
	require.NoError(t, err)

	assert.NoError(t, s.Validate("counter", 1))
	assert.NoError(t, s.Validate("counter", float64(2)), "whole floats pass for JSON compatibility")
	assert.Error(t, s.Validate("counter", "nope"))
	assert.NoError(t, s.Validate("anything", struct{}{}))
	assert.ErrorIs(t, s.Validate("ghost", 1), domain.ErrUnknownField)
}

func TestSchemaFromStruct(t *testing.T) {
	type widget struct {
		Label  string   `session:"label"`
		Clicks int      `session:"clicks"`
		Tags   []string `session:"tags"`
		Hidden string   `session:"-"`
		Plain  string
	}

	s, err := domain.SchemaFromStruct("widget", widget{Label: "ok", Clicks: 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"label", "clicks", "tags"}, s.FieldNames())

	label, ok := s.Field("label")
	require.True(t, ok)
	assert.Equal(t, "ok", label.Default)
	assert.Equal(t, "string", label.Type.Name())

	clicks, ok := s.Field("clicks")
	require.True(t, ok)
	assert.Equal(t, 0, clicks.Default)
	assert.Equal(t, "int", clicks.Type.Name())

	tags, ok := s.Field("tags")
	require.True(t, ok)
	assert.Equal(t, "[string]", tags.Type.Name())

	_, ok = s.Field("Plain")
	assert.False(t, ok, "untagged fields are not part of the schema")
}

func TestSchemaFromStruct_Errors(t *testing.T) {
	_, err := domain.SchemaFromStruct("x", 42)
	assert.Error(t, err, "non-struct prototype")

	type bare struct{ A int }
	_, err = domain.SchemaFromStruct("x", bare{})
	assert.Error(t, err, "no tagged fields")

	var nilProto *bare
	_, err = domain.SchemaFromStruct("x", nilProto)
	assert.Error(t, err)
}

func TestSchemaFromStruct_PointerPrototype(t *testing.T) {
	type p struct {
		N int `session:"n"`
	}
	s, err := domain.SchemaFromStruct("p", &p{N: 5})
	require.NoError(t, err)
	f, ok := s.Field("n")
	require.True(t, ok)
	assert.Equal(t, 5, f.Default)
}
