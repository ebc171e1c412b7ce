package console

import (
	"context"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/access"
	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/pages"
	"github.com/cccteam/consolesession/permissions"
	"github.com/cccteam/consolesession/sessioninfo"
)

var (
	_ API      = (*apiclient.Client)(nil)
	_ Sessions = (*consolesession.Manager)(nil)
)

// API defines the console API calls the web console makes.
type API interface {
	permissions.API

	Login(ctx context.Context, email, password string) (*apiclient.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyPasswordReset(ctx context.Context, email, code, newPassword string) error

	Users(ctx context.Context) ([]sessioninfo.User, error)
	User(ctx context.Context, id int64) (*sessioninfo.User, error)
	DeleteUser(ctx context.Context, id int64) error

	Profile(ctx context.Context, id int64) (*sessioninfo.Profile, error)
	UpdateProfile(ctx context.Context, p sessioninfo.Profile) (*sessioninfo.Profile, error)

	Comments(ctx context.Context, page string) ([]sessioninfo.Comment, error)
	Comment(ctx context.Context, id int64) (*sessioninfo.Comment, error)
	CreateComment(ctx context.Context, page, content string) (*sessioninfo.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) (*sessioninfo.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// Sessions defines the session operations the web console drives.
type Sessions interface {
	access.SessionSource

	Login(ctx context.Context, tokens sessioninfo.TokenPair, user *sessioninfo.User) error
	Logout(ctx context.Context)
	RecordActivity(e consolesession.ActivityEvent) bool
	UpdateProfile(p sessioninfo.Profile)
	UpdatePermissions(perms []sessioninfo.PagePermission)
	AccessiblePages() []pages.Page
}
