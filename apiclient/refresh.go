package apiclient

import (
	"context"
	"net/http"

	"github.com/cccteam/consolesession/tokenstore"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// RefreshToken exchanges refresh for a new access token. It neither reads nor
// writes the token store.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.RefreshToken()")
	defer span.End()

	var res refreshResponse
	if err := c.do(ctx, &request{method: http.MethodPost, path: "token/refresh/", body: refreshRequest{Refresh: refresh}, anonymous: true}, &res); err != nil {
		return "", errors.Wrap(err, "Client.do()")
	}

	if res.Access == "" {
		return "", errors.New("token refresh response carried no access token")
	}

	return res.Access, nil
}

// Refresh swaps the stored access token for a fresh one using the stored
// refresh token. A failure leaves the store untouched; the reactive 401 path
// is what ends a session.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Refresh()")
	defer span.End()

	refresh := tokenstore.RefreshToken(ctx, c.store)
	if refresh == "" {
		return "", ErrNoRefreshToken
	}

	if !c.dedupeRefresh {
		return c.refresh(ctx, refresh)
	}

	v, err, _ := c.refreshGroup.Do(refresh, func() (any, error) {
		return c.refresh(ctx, refresh)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (c *Client) refresh(ctx context.Context, refresh string) (string, error) {
	access, err := c.RefreshToken(ctx, refresh)
	if err != nil {
		return "", err
	}

	// a pair cleared by a logout in the meantime stays cleared
	if err := c.store.SetAccess(ctx, access); err != nil {
		if errors.Is(err, tokenstore.ErrNotStored) {
			return "", ErrSessionCleared
		}

		return "", errors.Wrap(err, "tokenstore.Store.SetAccess()")
	}

	return access, nil
}

// refreshAfterUnauthorized is the reactive path taken on the first 401 of a
// request. Any failure ends the session.
func (c *Client) refreshAfterUnauthorized(ctx context.Context) (string, error) {
	access, err := c.Refresh(ctx)
	if err != nil {
		c.expire(ctx)

		return "", err
	}

	return access, nil
}
