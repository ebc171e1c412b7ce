package consolesession

import (
	"context"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/sessioninfo"
)

var _ API = (*apiclient.Client)(nil)

// API defines the calls the Manager makes against the console API.
type API interface {
	Users(ctx context.Context) ([]sessioninfo.User, error)
	UserPermissions(ctx context.Context, id int64) ([]sessioninfo.PagePermission, error)
	Refresh(ctx context.Context) (string, error)
}

// Navigator performs the hard navigation that follows a logout.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// NavigatorFunc adapts a function to a Navigator.
type NavigatorFunc func(ctx context.Context, path string)

// Navigate calls f(ctx, path).
func (f NavigatorFunc) Navigate(ctx context.Context, path string) {
	f(ctx, path)
}
