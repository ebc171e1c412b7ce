package console

import (
	"context"
	"net/http"
	"sync"

	"github.com/cccteam/consolesession"
)

// Navigator turns session navigations into redirects of the request that
// caused them. Pass it to the Manager with consolesession.WithNavigator.
var Navigator consolesession.Navigator = consolesession.NavigatorFunc(navigate)

type navCtxKey struct{}

type pendingNavigation struct {
	mu   sync.Mutex
	path string
}

func (p *pendingNavigation) set(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.path = path
}

func (p *pendingNavigation) get() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.path
}

func navigate(ctx context.Context, path string) {
	if p, ok := ctx.Value(navCtxKey{}).(*pendingNavigation); ok {
		p.set(path)
	}
}

// applyNavigation answers with a 303 to the navigated path when the session
// navigated before the handler started its response.
func applyNavigation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pending := &pendingNavigation{}
		r = r.WithContext(context.WithValue(r.Context(), navCtxKey{}, pending))

		nw := &navWriter{ResponseWriter: w, r: r, pending: pending}
		next.ServeHTTP(nw, r)

		if !nw.wroteHeader {
			if path := pending.get(); path != "" {
				http.Redirect(w, r, path, http.StatusSeeOther)
			}
		}
	})
}

type navWriter struct {
	http.ResponseWriter
	r       *http.Request
	pending *pendingNavigation

	wroteHeader bool
	redirected  bool
}

func (w *navWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if path := w.pending.get(); path != "" {
		w.redirected = true
		w.Header().Del("Content-Type")
		http.Redirect(w.ResponseWriter, w.r, path, http.StatusSeeOther)

		return
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *navWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.redirected {
		return len(b), nil
	}

	return w.ResponseWriter.Write(b)
}
