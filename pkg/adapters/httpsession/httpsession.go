// Package httpsession glues sessionbind to plain HTTP hosts.
//
// The Middleware gives every browser session its own namespaced view of a
// backing store, keyed by a cookie. Handlers retrieve the per-session store
// with FromContext and hand it to a sessionbind.Manager, so bound state
// survives requests ("reruns") for as long as the cookie and the backing
// store live.
package httpsession

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/igormicadei/sessionbind/internal/logging"
	"github.com/igormicadei/sessionbind/pkg/ports"
)

// DefaultCookieName identifies the session cookie when none is configured.
const DefaultCookieName = "sessionbind_id"

// namespace is the key prefix that separates one session's slots from
// another's inside the shared backing store.
const namespace = "sess:"

// Sessions issues session identities and hands out per-session store views.
type Sessions struct {
	backend    ports.SessionStore
	cookieName string
	cookieTTL  time.Duration
	logger     *slog.Logger
}

// Option configures Sessions.
type Option func(*Sessions)

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(s *Sessions) {
		s.cookieName = name
	}
}

// WithCookieTTL sets the cookie Max-Age. Zero means a browser-session cookie.
func WithCookieTTL(ttl time.Duration) Option {
	return func(s *Sessions) {
		s.cookieTTL = ttl
	}
}

// WithLogger configures a logger for session lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sessions) {
		s.logger = logger
	}
}

// New creates a Sessions manager over a backing store. The backing store is
// shared; isolation between sessions comes from key namespacing.
func New(backend ports.SessionStore, opts ...Option) *Sessions {
	s := &Sessions{
		backend:    backend,
		cookieName: DefaultCookieName,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type ctxKey struct{}

// Session is the per-request session view injected by the middleware.
type Session struct {
	// ID is the session identity from the cookie.
	ID string
	// Store is the session's namespaced view of the backing store.
	Store ports.SessionStore
}

// FromContext retrieves the session injected by Middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

// Middleware establishes the session identity for each request. New visitors
// get a generated ID and a cookie; returning visitors are routed to their
// existing namespace.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(s.cookieName); err == nil && c.Value != "" {
			id = c.Value
		}
		if id == "" {
			id = uuid.NewString()
			cookie := &http.Cookie{
				Name:     s.cookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			if s.cookieTTL > 0 {
				cookie.MaxAge = int(s.cookieTTL.Seconds())
			}
			http.SetCookie(w, cookie)
			s.logger.Debug("session started", "session_id", id)
		}

		sess := &Session{
			ID:    id,
			Store: s.StoreFor(id),
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
	})
}

// StoreFor returns the namespaced store view of a session ID. Exposed for
// hosts that carry session identity outside of cookies.
func (s *Sessions) StoreFor(id string) ports.SessionStore {
	return &namespacedStore{
		backend: s.backend,
		prefix:  namespace + id + ":",
	}
}
