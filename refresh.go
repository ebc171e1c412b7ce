package consolesession

import (
	"context"
	"time"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

func (m *Manager) startRefreshLocked() {
	ctx, cancel := context.WithCancel(m.baseCtx)
	done := make(chan struct{})

	m.cancelRefresh = cancel
	m.refreshDone = done

	go m.refreshLoop(ctx, done)
}

// refreshLoop renews the access token every refreshInterval until ctx is
// cancelled. Failures are logged and the loop carries on; an expired session
// is caught by the next API call instead.
func (m *Manager) refreshLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refreshOnce(ctx)
		}
	}
}

func (m *Manager) refreshOnce(ctx context.Context) {
	// an in-flight refresh is not cancelled by a logout
	ctx, span := otel.Tracer(name).Start(context.WithoutCancel(ctx), "Manager.refreshOnce()")
	defer span.End()

	if _, err := m.api.Refresh(ctx); err != nil {
		switch {
		case errors.Is(err, apiclient.ErrSessionCleared), errors.Is(err, apiclient.ErrNoRefreshToken):
			logger.FromCtx(ctx).Infof("token refresh skipped: %v", err)
		default:
			logger.FromCtx(ctx).Error(errors.Wrap(err, "API.Refresh()"))
		}
	}
}
