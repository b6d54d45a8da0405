/*
Package ports defines the interfaces (ports) that decouple sessionbind from
concrete session storage.

The central port is SessionStore: a string-keyed mutable mapping whose
lifetime belongs to the host (typically one per user session). The binding
layer only ever consumes Get/Set/Contains; Delete and List exist for host
lifecycle code and for adapters layered on top (namespacing, admin handlers,
middleware).

The package also ships RunSessionStoreContract, a reusable conformance suite
that every adapter's tests run against its implementation.
*/
package ports
