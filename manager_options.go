package consolesession

import (
	"time"

	"github.com/cccteam/consolesession/sessioninfo"
)

// Option defines a function signature for setting Manager options.
type Option func(*Manager)

// WithNavigator sets the Navigator used after a logout. (default: no navigation)
func WithNavigator(n Navigator) Option {
	return Option(func(m *Manager) {
		if n != nil {
			m.navigator = n
		}
	})
}

// WithLoginPath sets the path navigated to after a logout. (default: /login)
func WithLoginPath(path string) Option {
	return Option(func(m *Manager) {
		m.loginPath = path
	})
}

var defaultRefreshInterval = 15 * time.Minute

// WithRefreshInterval sets how often the access token is refreshed while authenticated. (default: 15m)
func WithRefreshInterval(d time.Duration) Option {
	return Option(func(m *Manager) {
		m.refreshInterval = d
	})
}

var defaultInactivityTimeout = 60 * time.Minute

// WithInactivityTimeout sets the idle period after which the session is logged out. (default: 60m)
func WithInactivityTimeout(d time.Duration) Option {
	return Option(func(m *Manager) {
		m.inactivityTimeout = d
	})
}

// WithStateListener registers fn to receive a snapshot of the session after every transition.
func WithStateListener(fn func(sessioninfo.Session)) Option {
	return Option(func(m *Manager) {
		if fn != nil {
			m.listeners = append(m.listeners, fn)
		}
	})
}
