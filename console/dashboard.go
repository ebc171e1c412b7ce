package console

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cccteam/consolesession/pages"
	"github.com/cccteam/consolesession/permissions"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// badgeFetchLimit bounds the concurrent permission fetches of the dashboard.
const badgeFetchLimit = 4

type dashboardStats struct {
	TotalUsers     int `json:"total_users"`
	SuperAdmins    int `json:"super_admins"`
	RegularUsers   int `json:"regular_users"`
	ActiveSessions int `json:"active_sessions"`
}

type userRow struct {
	sessioninfo.User
	Permissions map[string]string `json:"permissions"`
	Deletable   bool              `json:"deletable"`
}

type dashboardView struct {
	Stats dashboardStats `json:"stats"`
	Pages []string       `json:"pages"`
	Users []userRow      `json:"users"`
}

// Dashboard handles the user management view
func (s *Server) Dashboard() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.Dashboard()")
		defer span.End()

		users, err := s.api.Users(ctx)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to fetch users"))
		}

		rows := s.permissionRows(ctx, users)

		view := dashboardView{
			Stats: userStats(users),
			Pages: pages.Names(),
			Users: make([]userRow, 0, len(users)),
		}
		for i := range users {
			u := users[i]
			view.Users = append(view.Users, userRow{
				User:        u,
				Permissions: permissions.Badges(&u, rows[i]),
				Deletable:   !u.IsSuperuser,
			})
		}

		return httpio.NewEncoder(w).Ok(view)
	})
}

// permissionRows fetches the rows of every regular user. A failed fetch
// leaves that user without rows.
func (s *Server) permissionRows(ctx context.Context, users []sessioninfo.User) [][]sessioninfo.PagePermission {
	rows := make([][]sessioninfo.PagePermission, len(users))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(badgeFetchLimit)
	for i := range users {
		if users[i].IsSuperuser {
			continue
		}
		id := users[i].ID
		g.Go(func() error {
			perms, err := s.api.UserPermissions(ctx, id)
			if err != nil {
				logger.FromCtx(ctx).Error(errors.Wrapf(err, "failed to fetch permissions of user %d", id))

				return nil
			}
			rows[i] = perms

			return nil
		})
	}
	_ = g.Wait()

	return rows
}

func userStats(users []sessioninfo.User) dashboardStats {
	stats := dashboardStats{TotalUsers: len(users)}
	for _, u := range users {
		if u.IsSuperuser {
			stats.SuperAdmins++
		} else {
			stats.RegularUsers++
		}
		if u.LastLogin != nil {
			stats.ActiveSessions++
		}
	}

	return stats
}

type userRequest struct {
	sessioninfo.UserFields
	Permissions []sessioninfo.PagePermission `json:"permissions"`
}

type savedUserView struct {
	User               *sessioninfo.User            `json:"user"`
	Password           string                       `json:"password,omitempty"`
	Permissions        []sessioninfo.PagePermission `json:"permissions"`
	PermissionsWritten bool                         `json:"permissions_written"`
}

// CreateUser handles the new user form
func (s *Server) CreateUser() http.HandlerFunc {
	return s.saveUser(permissions.Create, "Failed to create user")
}

// UpdateUser handles the edit user form
func (s *Server) UpdateUser() http.HandlerFunc {
	return s.saveUser(permissions.Edit, "Failed to update user")
}

func (s *Server) saveUser(mode permissions.Mode, failure string) http.HandlerFunc {
	decoder := newDecoder[userRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.saveUser()")
		defer span.End()

		var id int64
		if mode == permissions.Edit {
			var err error
			if id, err = userID(r); err != nil {
				return httpio.NewEncoder(w).ClientMessage(ctx, err)
			}
		}

		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		matrix := permissions.Normalize(req.Permissions)
		res, err := s.editor.Save(ctx, permissions.SaveRequest{
			Mode:   mode,
			UserID: id,
			User:   req.UserFields,
			Matrix: matrix,
		})
		if err != nil {
			var partial *permissions.PartialSaveError
			if errors.As(err, &partial) {
				return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewInternalServerErrorMessageWithError(err, failure))
			}
			if verrs, ok := permissions.ValidationErrors(err); ok {
				return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewBadRequestMessageWithError(err, fieldErrorMessage(verrs[0])))
			}

			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, failure))
		}

		if sess := sessioninfo.FromRequest(r); res.PermissionsWritten && sess.User != nil && sess.User.ID == res.User.ID {
			s.sessions.UpdatePermissions(matrix.Permissions())
		}

		view := savedUserView{
			User:               res.User,
			Password:           res.Password,
			PermissionsWritten: res.PermissionsWritten,
		}
		if res.PermissionsWritten {
			view.Permissions = matrix.Permissions()
		}

		return httpio.NewEncoder(w).Ok(view)
	})
}

type userPermissionsView struct {
	User        *sessioninfo.User            `json:"user"`
	Admin       bool                         `json:"admin"`
	Permissions []sessioninfo.PagePermission `json:"permissions"`
}

// UserPermissions loads the edit form of a user with its permission matrix
func (s *Server) UserPermissions() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.UserPermissions()")
		defer span.End()

		id, err := userID(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		user, err := s.api.User(ctx, id)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to fetch users"))
		}

		return httpio.NewEncoder(w).Ok(userPermissionsView{
			User:        user,
			Admin:       user.IsSuperuser,
			Permissions: s.editor.Load(ctx, user).Permissions(),
		})
	})
}

// DeleteUser removes a regular user. The request must carry confirm=true.
func (s *Server) DeleteUser() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.DeleteUser()")
		defer span.End()

		id, err := userID(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if !confirmed(r) {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "Deletion must be confirmed")
		}

		user, err := s.api.User(ctx, id)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to delete user"))
		}
		if user.IsSuperuser {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "Superusers cannot be deleted")
		}

		if err := s.api.DeleteUser(ctx, id); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to delete user"))
		}

		return httpio.NewEncoder(w).Ok(messageView{Message: "User deleted"})
	})
}

type toggleRequest struct {
	Permissions []sessioninfo.PagePermission `json:"permissions"`
	Page        string                       `json:"page" validate:"required"`
	Flag        string                       `json:"flag" validate:"required"`
	Value       bool                         `json:"value"`
}

type matrixView struct {
	Permissions []sessioninfo.PagePermission `json:"permissions"`
}

// TogglePermission applies one checkbox change to a permission matrix
// without saving it.
func (s *Server) TogglePermission() http.HandlerFunc {
	decoder := newDecoder[toggleRequest](s.validate)

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		req, err := decoder.Decode(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), err)
		}

		flag, err := permissions.ParseFlag(req.Flag)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewBadRequestMessageWithError(err, "unknown permission flag"))
		}

		m := permissions.Normalize(req.Permissions).Toggle(req.Page, flag, req.Value)

		return httpio.NewEncoder(w).Ok(matrixView{Permissions: m.Permissions()})
	})
}

func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, httpio.NewBadRequestMessage("invalid user id")
	}

	return id, nil
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

