// Package middleware provides composable decorators for ports.SessionStore.
//
// Middlewares wrap a store to add cross-cutting behavior (encryption at
// rest, metrics) without the binding layer knowing. They compose left to
// right:
//
//	store := middleware.Chain(base,
//	    middleware.NewEncryptionMiddleware(cfg),
//	    middleware.NewMetricsMiddleware(reg),
//	)
package middleware

import "github.com/igormicadei/sessionbind/pkg/ports"

// Middleware allows wrapping a SessionStore to add behavior.
type Middleware func(ports.SessionStore) ports.SessionStore

// Chain applies middlewares to a store, innermost first.
func Chain(store ports.SessionStore, mws ...Middleware) ports.SessionStore {
	for _, mw := range mws {
		store = mw(store)
	}
	return store
}
