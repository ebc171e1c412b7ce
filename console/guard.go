package console

import (
	"net/http"
	"sync"

	"github.com/cccteam/httpio"
)

// formGuard rejects a submission while the same form is still being
// processed.
type formGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func newFormGuard() *formGuard {
	return &formGuard{inflight: make(map[string]struct{})}
}

func (g *formGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}

	return true
}

func (g *formGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inflight, key)
}

// once allows one request per method and path at a time. A Server fronts a
// single session, so the path identifies the form.
func (s *Server) once(next http.Handler) http.Handler {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		key := r.Method + " " + r.URL.Path
		if !s.guard.acquire(key) {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewConflictMessage("request already in progress"))
		}
		defer s.guard.release(key)

		next.ServeHTTP(w, r)

		return nil
	})
}
