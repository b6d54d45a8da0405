package domain

import "errors"

// ErrSlotNotInitialized is returned when reading a slot that has never been
// written. Fields declared with a default are written at bind time, so in
// practice only defaultless fields can trip this.
var ErrSlotNotInitialized = errors.New("slot not initialized")

// ErrUnknownField is returned when accessing a field that is not part of the
// binding's schema. Undeclared fields behave as ordinary in-memory state and
// never touch the store.
var ErrUnknownField = errors.New("field not declared in schema")

// ErrClassMismatch is returned when binding an instance key that is already
// registered in the store under a different class.
var ErrClassMismatch = errors.New("instance key already bound to a different class")
