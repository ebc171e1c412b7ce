package console

import (
	"net/http"
	"strings"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/access"
	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const (
	loginFailed        = "Login failed. Please check your credentials."
	otpFailed          = "Failed to send OTP. Please try again."
	resetFailed        = "Invalid OTP or failed to reset password. Please try again."
	resetSucceeded     = "Password reset successfully. You can now login with your new password."
	resetRedirectDelay = 3
)

type loginView struct {
	From          string `json:"from,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

// LoginForm handles the login view. An authenticated session is sent on to
// its landing page.
func (s *Server) LoginForm() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		from := safeRedirect(r.URL.Query().Get("from"))

		sess := s.sessions.Session()
		if sess.IsAuthenticated {
			http.Redirect(w, r, landingPath(sess.User, from), http.StatusSeeOther)

			return nil
		}

		if from != "" {
			if err := s.returnTo.write(w, from); err != nil {
				logger.Req(r).Error(err)
			}
		}

		return httpio.NewEncoder(w).Ok(loginView{From: from, Authenticated: false})
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	From     string `json:"from"`
}

// Login handles the login submission
func (s *Server) Login() http.HandlerFunc {
	decoder := newDecoder[loginRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.Login()")
		defer span.End()

		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		res, err := s.api.Login(ctx, req.Email, req.Password)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, loginMessage(err))
		}

		claims, err := apiclient.DecodeAccessToken(res.Access)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewUnauthorizedMessageWithError(errors.Wrap(err, "apiclient.DecodeAccessToken()"), loginFailed))
		}

		user := apiclient.LoginIdentity(res, claims, req.Email)
		if err := s.sessions.Login(ctx, res.Tokens(), user); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewInternalServerErrorMessageWithError(errors.Wrap(err, "Sessions.Login()"), loginFailed))
		}

		s.returnTo.clear(w)
		http.Redirect(w, r, landingPath(user, s.rememberedPath(r, req.From)), http.StatusSeeOther)

		return nil
	})
}

// rememberedPath returns where the login should continue: the submitted
// path, then the query, then the return-to cookie.
func (s *Server) rememberedPath(r *http.Request, submitted string) string {
	if from := safeRedirect(submitted); from != "" {
		return from
	}
	if from := safeRedirect(r.URL.Query().Get("from")); from != "" {
		return from
	}
	if from, ok := s.returnTo.read(r); ok {
		return safeRedirect(from)
	}

	return ""
}

// loginMessage maps a failed login to a 401. Only transport failures are
// reported as server errors.
func loginMessage(err error) error {
	if apiclient.StatusCode(err) == 0 {
		return httpio.NewInternalServerErrorMessageWithError(err, loginFailed)
	}

	return httpio.NewUnauthorizedMessageWithError(err, apiclient.UserMessage(err, loginFailed))
}

// landingPath is where a new session goes: a remembered path, otherwise the
// dashboard for superusers and the profile for everyone else.
func landingPath(u *sessioninfo.User, from string) string {
	if from != "" {
		return from
	}
	if u != nil && u.IsSuperuser {
		return "/dashboard"
	}

	return "/profile"
}

// safeRedirect returns from when it is a path on this console, otherwise "".
func safeRedirect(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return ""
	}
	if from == access.LoginPath || strings.HasPrefix(from, access.LoginPath+"?") {
		return ""
	}

	return from
}

type resetView struct {
	Steps []string `json:"steps"`
}

// ResetPasswordForm handles the password reset view
func (s *Server) ResetPasswordForm() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, _ *http.Request) error {
		return httpio.NewEncoder(w).Ok(resetView{Steps: []string{"request", "verify"}})
	})
}

type resetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type messageView struct {
	Message string `json:"message"`
}

// RequestPasswordReset sends a one-time code to the submitted address
func (s *Server) RequestPasswordReset() http.HandlerFunc {
	decoder := newDecoder[resetRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.RequestPasswordReset()")
		defer span.End()

		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if err := s.api.RequestPasswordReset(ctx, req.Email); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, otpFailed))
		}

		return httpio.NewEncoder(w).Ok(messageView{Message: "OTP sent to " + req.Email})
	})
}

type verifyRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Code            string `json:"otp" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type resetResult struct {
	Message         string `json:"message"`
	RedirectTo      string `json:"redirect_to"`
	RedirectSeconds int    `json:"redirect_seconds"`
}

// VerifyPasswordReset sets a new password with the one-time code
func (s *Server) VerifyPasswordReset() http.HandlerFunc {
	decoder := newDecoder[verifyRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.VerifyPasswordReset()")
		defer span.End()

		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if err := s.api.VerifyPasswordReset(ctx, req.Email, req.Code, req.NewPassword); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, resetFailed))
		}

		return httpio.NewEncoder(w).Ok(resetResult{
			Message:         resetSucceeded,
			RedirectTo:      access.LoginPath,
			RedirectSeconds: resetRedirectDelay,
		})
	})
}

// Unauthorized handles the access denied view
func (s *Server) Unauthorized() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		return httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewForbiddenMessage("Access Denied"))
	})
}

// Logout ends the session and sends the client to the login page
func (s *Server) Logout() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		s.sessions.Logout(r.Context())

		http.Redirect(w, r, access.LoginPath, http.StatusSeeOther)

		return nil
	})
}

type activityRequest struct {
	Event consolesession.ActivityEvent `json:"event" validate:"required"`
}

type activityView struct {
	Recorded bool `json:"recorded"`
}

// Activity records an operator input event reported by the browser
func (s *Server) Activity() http.HandlerFunc {
	decoder := newDecoder[activityRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), err)
		}

		return httpio.NewEncoder(w).Ok(activityView{Recorded: s.sessions.RecordActivity(req.Event)})
	})
}
