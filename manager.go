// Package consolesession holds the authorization state of the console: who is
// logged in, what they may see, and when the session ends.
package consolesession

import (
	"context"
	"sync"
	"time"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/consolesession/tokenstore"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/consolesession"

// State is the lifecycle stage of the session.
type State int

// Session lifecycle stages.
const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}

	return "unknown"
}

// Manager is the single owner of the session. It starts out loading and
// leaves that state through Boot, Login or Logout.
type Manager struct {
	api       API
	store     tokenstore.Store
	navigator Navigator
	loginPath string
	listeners []func(sessioninfo.Session)

	refreshInterval   time.Duration
	inactivityTimeout time.Duration

	mu      sync.Mutex
	session sessioninfo.Session

	// generation advances on every login and logout so that work started
	// against an older session can tell it has been superseded
	generation uint64
	baseCtx    context.Context

	idle          *time.Timer
	cancelRefresh context.CancelFunc
	refreshDone   chan struct{}
}

// New returns a Manager in the loading state.
func New(api API, store tokenstore.Store, options ...Option) *Manager {
	m := &Manager{
		api:               api,
		store:             store,
		navigator:         NavigatorFunc(func(context.Context, string) {}),
		loginPath:         "/login",
		refreshInterval:   defaultRefreshInterval,
		inactivityTimeout: defaultInactivityTimeout,
		session:           sessioninfo.Session{Loading: true},
		baseCtx:           context.Background(),
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// Boot restores a session from the stored tokens. A stored access token is
// only trusted after the API accepts it. Every failure leaves the Manager
// unauthenticated; the returned error only reports an undecodable token.
func (m *Manager) Boot(ctx context.Context) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Boot()")
	defer span.End()

	gen := m.currentGeneration()

	if tokenstore.AccessToken(ctx, m.store) == "" {
		m.settle(gen)

		return nil
	}

	// 403 means the token was accepted but the user is not a superuser
	if _, err := m.api.Users(ctx); err != nil && !apiclient.IsForbidden(err) {
		logger.FromCtx(ctx).Infof("stored session rejected: %v", err)
		m.discard(ctx, gen)

		return nil
	}

	// the validation call may have refreshed the access token
	claims, err := apiclient.DecodeAccessToken(tokenstore.AccessToken(ctx, m.store))
	if err != nil {
		m.discard(ctx, gen)

		return errors.Wrap(err, "apiclient.DecodeAccessToken()")
	}

	user := apiclient.SessionIdentity(claims)
	perms := m.fetchPermissions(ctx, user)

	m.authenticate(ctx, gen, user, perms)

	return nil
}

// Login starts a session for user with tokens obtained from the login call.
// A failed permission fetch is not fatal: the session starts with no grants.
func (m *Manager) Login(ctx context.Context, tokens sessioninfo.TokenPair, user *sessioninfo.User) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Login()")
	defer span.End()

	if user == nil {
		return errors.New("login requires a user")
	}

	if err := m.store.Set(ctx, tokens); err != nil {
		return errors.Wrap(err, "tokenstore.Store.Set()")
	}

	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.mu.Unlock()

	u := *user
	perms := m.fetchPermissions(ctx, &u)

	if !m.authenticate(ctx, gen, &u, perms) {
		return errors.New("session ended before login completed")
	}

	return nil
}

// Logout clears the stored tokens, resets the session and navigates to the
// login path. It is safe to call repeatedly.
func (m *Manager) Logout(ctx context.Context) {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Logout()")
	defer span.End()

	m.mu.Lock()
	m.generation++
	m.stopTimersLocked()
	m.session = sessioninfo.Session{}
	snapshot := m.session.Clone()
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Error(errors.Wrap(err, "tokenstore.Store.Clear()"))
	}

	m.notify(snapshot)
	m.navigator.Navigate(ctx, m.loginPath)
}

// HandleUnauthenticated is called by the API gateway after it gave up on the
// session.
func (m *Manager) HandleUnauthenticated(ctx context.Context) {
	m.Logout(ctx)
}

// Shutdown stops the timers and the refresh loop without touching the
// stored tokens, and waits for the refresh loop to exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	done := m.stopTimersLocked()
	m.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Session returns a snapshot of the session.
func (m *Manager) Session() sessioninfo.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session.Clone()
}

// State returns the lifecycle stage of the session.
func (m *Manager) State() State {
	s := m.Session()
	switch {
	case s.Loading:
		return StateLoading
	case s.IsAuthenticated:
		return StateAuthenticated
	}

	return StateUnauthenticated
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.Session().IsAuthenticated
}

// Loading reports whether the session is still being restored.
func (m *Manager) Loading() bool {
	return m.Session().Loading
}

// User returns the logged in user, or nil.
func (m *Manager) User() *sessioninfo.User {
	return m.Session().User
}

// UpdateProfile merges the non-empty fields of p into the current user.
func (m *Manager) UpdateProfile(p sessioninfo.Profile) {
	m.mu.Lock()
	if m.session.User == nil {
		m.mu.Unlock()

		return
	}

	u := *m.session.User
	if p.Email != "" {
		u.Email = p.Email
	}
	if p.Username != "" {
		u.Username = p.Username
	}
	if p.FirstName != "" {
		u.FirstName = p.FirstName
	}
	if p.LastName != "" {
		u.LastName = p.LastName
	}
	m.session.User = &u
	snapshot := m.session.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
}

// UpdatePermissions replaces the permission rows of the current session.
func (m *Manager) UpdatePermissions(perms []sessioninfo.PagePermission) {
	m.mu.Lock()
	if !m.session.IsAuthenticated {
		m.mu.Unlock()

		return
	}

	m.session.Permissions = append([]sessioninfo.PagePermission(nil), perms...)
	snapshot := m.session.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
}

// fetchPermissions returns the grants of a regular user. Superusers have
// none stored. A failed fetch yields no grants.
func (m *Manager) fetchPermissions(ctx context.Context, user *sessioninfo.User) []sessioninfo.PagePermission {
	if user.IsSuperuser {
		return nil
	}

	perms, err := m.api.UserPermissions(ctx, user.ID)
	if err != nil {
		logger.FromCtx(ctx).Error(errors.Wrapf(err, "permission fetch failed for user %d, continuing with no permissions", user.ID))

		return []sessioninfo.PagePermission{}
	}

	return perms
}

func (m *Manager) currentGeneration() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.generation
}

// authenticate installs the session unless a login or logout has happened
// since gen was taken.
func (m *Manager) authenticate(ctx context.Context, gen uint64, user *sessioninfo.User, perms []sessioninfo.PagePermission) bool {
	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()

		return false
	}

	m.stopTimersLocked()
	m.session = sessioninfo.Session{
		User:            user,
		Permissions:     perms,
		IsAuthenticated: true,
	}
	m.baseCtx = context.WithoutCancel(ctx)
	m.startIdleTimerLocked(gen)
	m.startRefreshLocked()
	snapshot := m.session.Clone()
	m.mu.Unlock()

	m.notify(snapshot)

	return true
}

// settle ends the loading state without a session.
func (m *Manager) settle(gen uint64) {
	m.mu.Lock()
	if m.generation != gen || !m.session.Loading {
		m.mu.Unlock()

		return
	}
	m.session = sessioninfo.Session{}
	snapshot := m.session.Clone()
	m.mu.Unlock()

	m.notify(snapshot)
}

// discard drops rejected tokens and ends the loading state.
func (m *Manager) discard(ctx context.Context, gen uint64) {
	if m.currentGeneration() != gen {
		return
	}

	if err := m.store.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Error(errors.Wrap(err, "tokenstore.Store.Clear()"))
	}

	m.settle(gen)
}

// stopTimersLocked stops the idle timer and signals the refresh loop. It
// returns a channel closed once the loop has exited, or nil if none ran.
func (m *Manager) stopTimersLocked() <-chan struct{} {
	if m.idle != nil {
		m.idle.Stop()
		m.idle = nil
	}

	done := m.refreshDone
	if m.cancelRefresh != nil {
		m.cancelRefresh()
		m.cancelRefresh = nil
		m.refreshDone = nil
	}

	return done
}

func (m *Manager) notify(s sessioninfo.Session) {
	for _, fn := range m.listeners {
		fn(s.Clone())
	}
}
