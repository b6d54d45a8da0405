package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Key derivation scheme. Every stored slot is scoped by the triple
// (class, instance key, field name) so that two logical instances can only
// alias each other when all three components match exactly:
//
//	instance key : "<class>:<key>"
//	slot key     : "<class>:<key>.<field>"
//	marker key   : "<class>:<key>.__bound__"
//
// The marker records the class name and is what makes re-binding resume an
// existing instance instead of re-initializing it.

// MarkerField is the reserved pseudo-field that marks an instance key as
// initialized. It is not a valid schema field name.
const MarkerField = "__bound__"

// ErrInvalidName is returned when a class, field or instance key component is
// empty or would make key derivation ambiguous.
var ErrInvalidName = errors.New("invalid name")

// ValidateName rejects empty names and names containing the key separators.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, ".:") {
		return fmt.Errorf("%w: %q contains a reserved separator", ErrInvalidName, name)
	}
	if name == MarkerField {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return nil
}

// InstanceKey derives the namespaced instance key for a class and a
// caller-chosen key.
func InstanceKey(class, key string) string {
	return class + ":" + key
}

// SlotKey derives the store key for one field of one instance.
func SlotKey(instanceKey, field string) string {
	return instanceKey + "." + field
}

// MarkerKey derives the store key of the initialization marker.
func MarkerKey(instanceKey string) string {
	return SlotKey(instanceKey, MarkerField)
}

// SlotPrefix returns the common prefix of every slot of an instance,
// marker included. Useful for enumeration and purging.
func SlotPrefix(instanceKey string) string {
	return instanceKey + "."
}
