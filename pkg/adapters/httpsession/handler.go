package httpsession

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler returns a small administration surface for the backing store:
//
//	GET    /sessions       list known session IDs
//	DELETE /sessions/{id}  purge every slot of one session
//
// Purging is the host-side cleanup hook; the binding layer itself never
// destroys slots.
func (s *Sessions) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/sessions", s.listSessions)
	r.Delete("/sessions/{id}", s.purgeSession)
	return r
}

func (s *Sessions) listSessions(w http.ResponseWriter, r *http.Request) {
	keys, err := s.backend.List(r.Context(), namespace)
	if err != nil {
		http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
		s.logger.Error("session list failed", "err", err)
		return
	}

	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, k := range keys {
		rest := strings.TrimPrefix(k, namespace)
		id, _, ok := strings.Cut(rest, ":")
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"sessions": ids}); err != nil {
		s.logger.Error("session list encode failed", "err", err)
	}
}

func (s *Sessions) purgeSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	prefix := namespace + id + ":"

	keys, err := s.backend.List(r.Context(), prefix)
	if err != nil {
		http.Error(w, "Failed to list session slots", http.StatusInternalServerError)
		s.logger.Error("session purge failed", "session_id", id, "err", err)
		return
	}
	if len(keys) == 0 {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	for _, k := range keys {
		if err := s.backend.Delete(r.Context(), k); err != nil {
			http.Error(w, "Failed to purge session", http.StatusInternalServerError)
			s.logger.Error("session purge failed", "session_id", id, "err", err)
			return
		}
	}
	s.logger.Info("session purged", "session_id", id, "slots", len(keys))
	w.WriteHeader(http.StatusNoContent)
}
