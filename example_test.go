package sessionbind_test

import (
	"context"
	"fmt"
	"log"

	"github.com/igormicadei/sessionbind"
	"github.com/igormicadei/sessionbind/pkg/adapters/memory"
	"github.com/igormicadei/sessionbind/pkg/domain"
)

// ExampleManager_Bind demonstrates the rerun-survival behavior that is the
// point of the library: rebinding the same instance key resumes the stored
// state instead of re-initializing it.
func ExampleManager_Bind() {
	type Counter struct {
		Value int `session:"value"`
	}

	// The store is host-owned; one per user session.
	store := memory.NewStore()
	ctx := context.Background()

	schema, err := domain.SchemaFromStruct("counter", Counter{})
	if err != nil {
		log.Fatal(err)
	}

	// First run: initialize and increment.
	mgr, _ := sessionbind.New(store)
	b, err := mgr.Bind(ctx, schema, "page")
	if err != nil {
		log.Fatal(err)
	}
	v, _ := sessionbind.VarOf[int](b, "value")
	_ = v.Update(ctx, func(n int) int { return n + 1 })

	// Simulated rerun: everything in memory is rebuilt, the store survives.
	mgr2, _ := sessionbind.New(store)
	b2, err := mgr2.Bind(ctx, schema, "page")
	if err != nil {
		log.Fatal(err)
	}
	v2, _ := sessionbind.VarOf[int](b2, "value")
	n, _ := v2.Get(ctx)

	fmt.Println("value after rerun:", n)
	// Output: value after rerun: 1
}

// ExampleBinding_Key shows how a field's slot key is shared with a UI
// widget, so both read and write the same store slot.
func ExampleBinding_Key() {
	store := memory.NewStore()
	ctx := context.Background()

	schema, err := domain.NewSchema("form",
		domain.Field{Name: "query", Default: ""},
	)
	if err != nil {
		log.Fatal(err)
	}

	mgr, _ := sessionbind.New(store)
	b, _ := mgr.Bind(ctx, schema, "search")

	key, _ := b.Key("query")
	fmt.Println("widget key:", key)

	// The widget writes directly to the store under that key...
	_ = store.Set(ctx, key, "gophers")

	// ...and the binding observes it.
	q, _ := b.Get(ctx, "query")
	fmt.Println("query:", q)
	// Output:
	// widget key: form:search.query
	// query: gophers
}
