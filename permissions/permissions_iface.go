package permissions

import (
	"context"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/sessioninfo"
)

var _ API = (*apiclient.Client)(nil)

// API defines the account calls the editor makes.
type API interface {
	UserPermissions(ctx context.Context, id int64) ([]sessioninfo.PagePermission, error)
	CreateUser(ctx context.Context, fields sessioninfo.UserFields) (*sessioninfo.CreatedUser, error)
	UpdateUser(ctx context.Context, id int64, fields sessioninfo.UserFields) (*sessioninfo.User, error)
	UpdateUserPermissions(ctx context.Context, id int64, perms []sessioninfo.PagePermission) error
}
