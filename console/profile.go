package console

import (
	"net/http"

	"github.com/cccteam/consolesession/permissions"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

type permissionRow struct {
	sessioninfo.PagePermission
	Summary string `json:"summary"`
}

type profileView struct {
	Profile     sessioninfo.Profile `json:"profile"`
	IsSuperuser bool                `json:"is_superuser"`
	Permissions []permissionRow     `json:"permissions"`
}

// Profile handles the profile view. The stored profile is preferred; the
// session identity stands in when it cannot be fetched.
func (s *Server) Profile() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.Profile()")
		defer span.End()

		sess := sessioninfo.FromRequest(r)
		user := sess.User

		profile := sessioninfo.Profile{
			Email:     user.Email,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
		if p, err := s.api.Profile(ctx, user.ID); err != nil {
			logger.FromCtx(ctx).Error(errors.Wrap(err, "API.Profile()"))
		} else {
			profile = *p
		}

		return httpio.NewEncoder(w).Ok(profileView{
			Profile:     profile,
			IsSuperuser: user.IsSuperuser,
			Permissions: ownPermissions(sess),
		})
	})
}

// ownPermissions lists the pages the session has any grant on, in catalog
// order.
func ownPermissions(sess sessioninfo.Session) []permissionRow {
	rows := make([]permissionRow, 0)
	if sess.IsSuperuser() {
		return rows
	}

	for _, pp := range permissions.Normalize(sess.Permissions).Permissions() {
		if pp.None() {
			continue
		}
		rows = append(rows, permissionRow{
			PagePermission: pp,
			Summary:        permissions.Summary(sess.User, &pp),
		})
	}

	return rows
}

type profileRequest struct {
	Username  string `json:"username" validate:"max=150"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

// UpdateProfile handles the profile form
func (s *Server) UpdateProfile() http.HandlerFunc {
	decoder := newDecoder[profileRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.UpdateProfile()")
		defer span.End()

		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		submitted := sessioninfo.Profile{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		updated, err := s.api.UpdateProfile(ctx, submitted)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to update profile"))
		}
		if updated == nil {
			updated = &submitted
		}

		s.sessions.UpdateProfile(*updated)

		return httpio.NewEncoder(w).Ok(updated)
	})
}

// RequestPasswordOTP sends a one-time code to the address of the session
func (s *Server) RequestPasswordOTP() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.RequestPasswordOTP()")
		defer span.End()

		email := sessioninfo.FromRequest(r).User.Email
		if err := s.api.RequestPasswordReset(ctx, email); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, otpFailed))
		}

		return httpio.NewEncoder(w).Ok(messageView{Message: "OTP sent to " + email})
	})
}

type passwordRequest struct {
	Code            string `json:"otp" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// ChangePassword sets a new password for the session user with a one-time code
func (s *Server) ChangePassword() http.HandlerFunc {
	decoder := newDecoder[passwordRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.ChangePassword()")
		defer span.End()

		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		email := sessioninfo.FromRequest(r).User.Email
		if err := s.api.VerifyPasswordReset(ctx, email, req.Code, req.NewPassword); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, resetFailed))
		}

		return httpio.NewEncoder(w).Ok(messageView{Message: "Password changed successfully"})
	})
}
