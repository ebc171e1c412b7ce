package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Users lists all accounts.
func (c *Client) Users(ctx context.Context) ([]sessioninfo.User, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Users()")
	defer span.End()

	var users []sessioninfo.User
	if err := c.Do(ctx, http.MethodGet, "users/", nil, &users); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return users, nil
}

// User fetches one account.
func (c *Client) User(ctx context.Context, id int64) (*sessioninfo.User, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.User()")
	defer span.End()

	user := &sessioninfo.User{}
	if err := c.Do(ctx, http.MethodGet, userPath(id), nil, user); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return user, nil
}

// CreateUser creates an account. The response carries the generated password.
func (c *Client) CreateUser(ctx context.Context, fields sessioninfo.UserFields) (*sessioninfo.CreatedUser, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.CreateUser()")
	defer span.End()

	created := &sessioninfo.CreatedUser{}
	if err := c.Do(ctx, http.MethodPost, "users/", fields, created); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return created, nil
}

// UpdateUser replaces the editable fields of an account.
func (c *Client) UpdateUser(ctx context.Context, id int64, fields sessioninfo.UserFields) (*sessioninfo.User, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.UpdateUser()")
	defer span.End()

	user := &sessioninfo.User{}
	if err := c.Do(ctx, http.MethodPut, userPath(id), fields, user); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.DeleteUser()")
	defer span.End()

	if err := c.Do(ctx, http.MethodDelete, userPath(id), nil, nil); err != nil {
		return errors.Wrap(err, "Client.Do()")
	}

	return nil
}

// UserPermissions fetches the permission rows of an account. The result may
// omit pages; a missing row grants nothing.
func (c *Client) UserPermissions(ctx context.Context, id int64) ([]sessioninfo.PagePermission, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.UserPermissions()")
	defer span.End()

	var perms []sessioninfo.PagePermission
	if err := c.Do(ctx, http.MethodGet, userPath(id)+"permissions/", nil, &perms); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return perms, nil
}

// UpdateUserPermissions replaces every permission row of an account.
func (c *Client) UpdateUserPermissions(ctx context.Context, id int64, perms []sessioninfo.PagePermission) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.UpdateUserPermissions()")
	defer span.End()

	body := struct {
		Permissions []sessioninfo.PagePermission `json:"permissions"`
	}{Permissions: perms}
	if body.Permissions == nil {
		body.Permissions = []sessioninfo.PagePermission{}
	}

	if err := c.Do(ctx, http.MethodPut, userPath(id)+"permissions/", body, nil); err != nil {
		return errors.Wrap(err, "Client.Do()")
	}

	return nil
}

func userPath(id int64) string {
	return fmt.Sprintf("users/%d/", id)
}
