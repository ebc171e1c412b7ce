package cli

import (
	"context"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/tokenstore"
	"github.com/go-playground/errors/v5"
)

// app is the session stack shared by every command.
type app struct {
	store   tokenstore.Store
	client  *apiclient.Client
	manager *consolesession.Manager
}

func newApp(cfg *Config, options ...consolesession.Option) (*app, error) {
	a := &app{}

	if cfg.Tokens.Ephemeral {
		a.store = tokenstore.NewMemoryStore()
	} else {
		a.store = tokenstore.NewFileStore(cfg.Tokens.Path)
	}

	client, err := apiclient.New(cfg.API.BaseURL, a.store,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithRefreshDeduplication(cfg.API.DedupeRefresh),
		apiclient.WithUnauthenticatedHandler(func(ctx context.Context) {
			a.manager.HandleUnauthenticated(ctx)
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "apiclient.New()")
	}
	a.client = client

	options = append([]consolesession.Option{
		consolesession.WithRefreshInterval(cfg.Session.RefreshInterval),
		consolesession.WithInactivityTimeout(cfg.Session.InactivityTimeout),
	}, options...)
	a.manager = consolesession.New(client, a.store, options...)

	return a, nil
}
