package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/console"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

func serve(ctx context.Context, cfg *Config) error {
	a, err := newApp(cfg, consolesession.WithNavigator(console.Navigator))
	if err != nil {
		return err
	}
	defer a.manager.Shutdown()

	if err := a.manager.Boot(ctx); err != nil {
		logger.FromCtx(ctx).Error(errors.Wrap(err, "Manager.Boot()"))
	}

	options := []console.Option{console.WithSecureCookies(cfg.Server.SecureCookies)}
	if cfg.Server.HashKey != "" && cfg.Server.BlockKey != "" {
		options = append(options, console.WithCookieKeys([]byte(cfg.Server.HashKey), []byte(cfg.Server.BlockKey)))
	}

	srv, err := console.New(a.client, a.manager, options...)
	if err != nil {
		return errors.Wrap(err, "console.New()")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           otelhttp.NewHandler(srv, "console"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.FromCtx(ctx).Infof("console listening on %s", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http.Server.ListenAndServe()")
		}

		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "http.Server.Shutdown()")
		}

		return nil
	})

	return g.Wait()
}
