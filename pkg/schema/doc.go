// Package schema provides the type system used to validate session-bound
// field values.
//
// It defines a small set of built-in types (string, int, float, bool),
// slices of those, and custom validators. Because session stores frequently
// round-trip values through JSON, the numeric types are lenient about the
// int/float64 blurring that JSON introduces.
//
// Types are attached to schema fields and checked on every write:
//
//	domain.Field{Name: "counter", Type: schema.Int(), Default: 0}
//
// Type strings in declaration files use the same syntax:
//
//	t, err := schema.ParseType("[string]")
//
// Custom validators can be supplied for domain-specific constraints:
//
//	nonEmpty := schema.Custom("non_empty", func(v any) error {
//	    s, ok := v.(string)
//	    if !ok || s == "" {
//	        return fmt.Errorf("expected non-empty string")
//	    }
//	    return nil
//	})
//
// This package has no dependencies beyond the standard library.
package schema
