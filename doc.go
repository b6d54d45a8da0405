/*
Package sessionbind binds declared fields of application objects to a
per-session key-value store, so field values survive host re-execution
cycles ("reruns") without manual get/set calls against that store.

It is deliberately thin glue: a schema describes which fields of a logical
class are session-backed, a Manager registers instances under caller-chosen
keys, and a Binding routes every field read/write through the injected
store. The store itself (memory, Redis, or anything implementing
ports.SessionStore) is created and torn down by the host.

# Concept

On every rerun the host reconstructs its objects from scratch. Binding an
instance key that was bound before resumes the stored instance: previously
written slot values win and no defaults are applied. Every slot is scoped by
(class, instance key, field name), so distinct instances can never alias
each other's state.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/igormicadei/sessionbind"
		"github.com/igormicadei/sessionbind/pkg/adapters/memory"
		"github.com/igormicadei/sessionbind/pkg/domain"
	)

	type Profile struct {
		Name    string `session:"name"`
		Counter int    `session:"counter"`

		scratch string // untagged: ordinary in-memory field, never stored
	}

	func main() {
		store := memory.NewStore() // host-owned; lives for one user session
		mgr, err := sessionbind.New(store)
		if err != nil {
			log.Fatal(err)
		}

		schema, err := domain.SchemaFromStruct("profile", Profile{Name: "anonymous"})
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		b, err := mgr.Bind(ctx, schema, "a")
		if err != nil {
			log.Fatal(err)
		}

		counter, _ := sessionbind.VarOf[int](b, "counter")
		_ = counter.Set(ctx, 1)

		// Rerun: rebinding "a" resumes the stored instance.
		b2, _ := mgr.Bind(ctx, schema, "a")
		n, _ := counter.Get(ctx)      // 1
		_ = b2                        // same logical instance as b
		_ = n
	}

# Widget Binding

Binding.Key and Var.Key expose the raw slot key of a field, so hosts can
hand the key to a UI control that reads and writes the same store slot
directly.

# Limitations

Only declared fields are session-backed; anything else on the caller's
structs behaves as ordinary instance state. Reading a slot that was never
written (a defaultless field before its first Set) returns
domain.ErrSlotNotInitialized. No locking is performed around individual
slot accesses: session turns are assumed single-threaded-cooperative, and
cross-session isolation comes from hosts giving each session its own store
or namespace.
*/
package sessionbind
