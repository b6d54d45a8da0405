package schema_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormicadei/sessionbind/pkg/schema"
)

func TestBuiltinTypes(t *testing.T) {
	cases := []struct {
		typ   schema.Type
		good  []any
		bad   []any
		named string
	}{
		{schema.String(), []any{"x", ""}, []any{1, true, nil}, "string"},
		{schema.Int(), []any{0, int64(3), float64(4)}, []any{"1", 1.5, true}, "int"},
		{schema.Float(), []any{1.5, float32(2), 3}, []any{"1.5", true}, "float"},
		{schema.Bool(), []any{true, false}, []any{0, "true"}, "bool"},
		{schema.Slice(schema.Int()), []any{[]int{1, 2}, []any{1, 2}}, []any{1, []string{"a"}}, "[int]"},
	}

	for _, tc := range cases {
		t.Run(tc.named, func(t *testing.T) {
			assert.Equal(t, tc.named, tc.typ.Name())
			for _, v := range tc.good {
				assert.NoError(t, tc.typ.Validate(v), "value %v", v)
			}
			for _, v := range tc.bad {
				assert.Error(t, tc.typ.Validate(v), "value %v", v)
			}
		})
	}
}

func TestIntType_RejectsFractionalFloat(t *testing.T) {
	err := schema.Int().Validate(1.25)
	assert.Error(t, err)
	assert.NoError(t, schema.Int().Validate(2.0), "whole floats pass (JSON round-trips)")
}

func TestCustomType(t *testing.T) {
	nonEmpty := schema.Custom("non_empty", func(v any) error {
		s, ok := v.(string)
		if !ok || s == "" {
			return fmt.Errorf("expected non-empty string")
		}
		return nil
	})

	assert.Equal(t, "non_empty", nonEmpty.Name())
	assert.NoError(t, nonEmpty.Validate("hi"))
	assert.Error(t, nonEmpty.Validate(""))
	assert.Error(t, nonEmpty.Validate(7))
}

func TestParseType(t *testing.T) {
	for _, str := range []string{"string", "int", "float", "bool", "[string]", "[[int]]"} {
		typ, err := schema.ParseType(str)
		require.NoError(t, err, str)
		assert.Equal(t, str, typ.Name())
	}

	_, err := schema.ParseType("decimal")
	assert.Error(t, err)
	_, err = schema.ParseType("[decimal]")
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &schema.ValidationError{Key: "counter", Reason: "expected int", Value: "x"}
	assert.Contains(t, err.Error(), `"counter"`)
	assert.Contains(t, err.Error(), "expected int")

	noVal := &schema.ValidationError{Key: "counter", Reason: "required"}
	assert.Contains(t, noVal.Error(), "required")
}
