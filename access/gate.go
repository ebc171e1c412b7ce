package access

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
)

// SessionSource provides the current session.
type SessionSource interface {
	Session() sessioninfo.Session
}

// Resolver derives the requirement of a request. Returning an error aborts
// the request with the error's client message.
type Resolver func(r *http.Request) (Requirement, error)

// Gate turns access decisions into HTTP middleware.
type Gate struct {
	source SessionSource
}

// NewGate returns a Gate reading sessions from source.
func NewGate(source SessionSource) *Gate {
	return &Gate{source: source}
}

// Require returns middleware enforcing req.
func (g *Gate) Require(req Requirement) func(http.Handler) http.Handler {
	return g.RequireFunc(func(*http.Request) (Requirement, error) {
		return req, nil
	})
}

// Authenticated returns middleware that only admits logged in sessions.
func (g *Gate) Authenticated() func(http.Handler) http.Handler {
	return g.Require(Requirement{})
}

// SuperAdmin returns middleware that only admits superusers.
func (g *Gate) SuperAdmin() func(http.Handler) http.Handler {
	return g.Require(Requirement{RequireSuperAdmin: true})
}

// RequireFunc returns middleware enforcing the requirement resolve derives
// from each request. Admitted requests carry the session in their context.
func (g *Gate) RequireFunc(resolve Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handle(func(w http.ResponseWriter, r *http.Request) error {
			s := g.source.Session()

			// a session still loading cannot be judged yet
			if s.Loading {
				return wait(w)
			}

			req := Requirement{}
			if s.IsAuthenticated {
				var err error
				if req, err = resolve(r); err != nil {
					return httpio.NewEncoder(w).ClientMessage(r.Context(), err)
				}
			}

			d := Decide(s, req, r.URL.RequestURI())
			switch d.Outcome {
			case Wait:
				return wait(w)
			case RedirectLogin, RedirectUnauthorized:
				http.Redirect(w, r, d.Location, http.StatusSeeOther)

				return nil
			}

			logger.Req(r).AddRequestAttribute("user ID", strconv.FormatInt(s.User.ID, 10))
			next.ServeHTTP(w, r.WithContext(sessioninfo.NewCtx(r.Context(), s)))

			return nil
		})
	}
}

func wait(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusServiceUnavailable)

	return json.NewEncoder(w).Encode(map[string]bool{"loading": true})
}

// handle returns a handler that logs any error coming from the gate
func handle(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			if httpio.CauseIsError(err) {
				logger.Req(r).Error(err)
			} else {
				logger.Req(r).Infof("['%s']", strings.Join(httpio.Messages(err), "', '"))
			}
		}
	})
}
