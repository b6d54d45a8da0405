/*
Package domain contains the core domain models for sessionbind.

It defines the entities that describe how object fields map onto a session
store: Schemas (the declared set of persistent fields of a logical class),
Fields (name, optional type, optional default) and the key scheme that
derives store keys from (class, instance key, field name). This package is
kept pure and free of I/O or persistence concerns, following Hexagonal
Architecture principles.

# Key Entities

  - Schema: The declared persistent fields of one logical class.
  - Field: A single persistent field (name, optional type, optional default).
  - InstanceKey / SlotKey / MarkerKey: The key derivation scheme that keeps
    every (class, instance, field) triple in its own store slot.
*/
package domain
