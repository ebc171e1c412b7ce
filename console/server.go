// Package console serves the local web console: JSON views over the console
// API, gated by the session held in a consolesession.Manager.
package console

import (
	"net/http"

	"github.com/cccteam/consolesession/access"
	"github.com/cccteam/consolesession/permissions"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/gorilla/securecookie"
)

const name = "github.com/cccteam/consolesession/console"

// Server is the web console.
type Server struct {
	api      API
	sessions Sessions
	editor   *permissions.Editor
	gate     *access.Gate
	validate *validator.Validate
	guard    *formGuard
	xsrf     *xsrfProtector
	returnTo *returnToCookie

	hashKey      []byte
	blockKey     []byte
	secureCookie bool
	logRequests  bool

	router chi.Router
}

// New returns a Server for api and sessions.
func New(api API, sessions Sessions, options ...Option) (*Server, error) {
	s := &Server{
		api:         api,
		sessions:    sessions,
		editor:      permissions.NewEditor(api),
		gate:        access.NewGate(sessions),
		validate:    newValidator(),
		guard:       newFormGuard(),
		logRequests: true,
	}

	for _, opt := range options {
		opt(s)
	}

	if s.hashKey == nil {
		s.hashKey = securecookie.GenerateRandomKey(32)
	}
	if s.blockKey == nil {
		s.blockKey = securecookie.GenerateRandomKey(32)
	}
	if s.hashKey == nil || s.blockKey == nil {
		return nil, errors.New("failed to generate cookie keys")
	}

	instanceID, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "uuid.NewV4()")
	}

	codec := securecookie.New(s.hashKey, s.blockKey)
	s.xsrf = newXSRFProtector(&signedCookie{
		codec:  codec,
		name:   xsrfCookieName,
		life:   xsrfCookieLife,
		secure: s.secureCookie,
	}, instanceID.String())
	s.returnTo = &returnToCookie{cookie: &signedCookie{
		codec:    codec,
		name:     returnCookieName,
		life:     returnCookieLife,
		httpOnly: true,
		secure:   s.secureCookie,
	}}
	s.router = s.routes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	if s.logRequests {
		r.Use(logger.NewConsoleExporter().Middleware())
	}
	r.Use(applyNavigation)
	r.Use(s.xsrf.protect)

	r.Get("/", redirectTo(access.LoginPath))
	r.Get("/login", s.LoginForm())
	r.With(s.once).Post("/login", s.Login())
	r.Get("/reset-password", s.ResetPasswordForm())
	r.With(s.once).Post("/reset-password/request", s.RequestPasswordReset())
	r.With(s.once).Post("/reset-password/verify", s.VerifyPasswordReset())
	r.Get("/unauthorized", s.Unauthorized())
	r.Post("/logout", s.Logout())
	r.Post("/activity", s.Activity())

	r.Group(func(r chi.Router) {
		r.Use(s.gate.SuperAdmin())

		r.Get("/dashboard", s.Dashboard())
		r.With(s.once).Post("/dashboard/users", s.CreateUser())
		r.With(s.once).Put("/dashboard/users/{id}", s.UpdateUser())
		r.With(s.once).Delete("/dashboard/users/{id}", s.DeleteUser())
		r.Get("/dashboard/users/{id}/permissions", s.UserPermissions())
		r.Post("/dashboard/permissions/toggle", s.TogglePermission())
	})

	r.Group(func(r chi.Router) {
		r.Use(s.gate.Authenticated())

		r.Get("/profile", s.Profile())
		r.With(s.once).Put("/profile", s.UpdateProfile())
		r.With(s.once).Post("/profile/password/otp", s.RequestPasswordOTP())
		r.With(s.once).Post("/profile/password", s.ChangePassword())
		r.Get("/pages", s.Pages())
	})

	r.Route("/pages/{pageId}", func(r chi.Router) {
		r.With(s.gate.RequireFunc(pageRequirement(sessioninfo.View))).Get("/", s.Page())
		r.With(s.gate.RequireFunc(pageRequirement(sessioninfo.View))).Get("/comments", s.Comments())
		r.With(s.gate.RequireFunc(pageRequirement(sessioninfo.Create)), s.once).Post("/comments", s.CreateComment())
		r.With(s.gate.RequireFunc(pageRequirement(sessioninfo.Edit)), s.once).Put("/comments/{commentId}", s.UpdateComment())
		r.With(s.gate.RequireFunc(pageRequirement(sessioninfo.Delete)), s.once).Delete("/comments/{commentId}", s.DeleteComment())
	})

	r.NotFound(redirectTo(access.UnauthorizedPath))

	return r
}

func redirectTo(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, path, http.StatusSeeOther)
	}
}
