package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Profile fetches the profile of an account.
func (c *Client) Profile(ctx context.Context, id int64) (*sessioninfo.Profile, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Profile()")
	defer span.End()

	p := &sessioninfo.Profile{}
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("profile/%d/", id), nil, p); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return p, nil
}

// UpdateProfile changes the caller's own username and names.
func (c *Client) UpdateProfile(ctx context.Context, p sessioninfo.Profile) (*sessioninfo.Profile, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.UpdateProfile()")
	defer span.End()

	body := struct {
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}{Username: p.Username, FirstName: p.FirstName, LastName: p.LastName}

	updated := &sessioninfo.Profile{}
	if err := c.Do(ctx, http.MethodPut, "profile/update_profile/", body, updated); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return updated, nil
}
