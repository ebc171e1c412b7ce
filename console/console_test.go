package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/pages"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/consolesession/tokenstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liveConsole wires a Server to a real Manager and API client talking to a fake
// API.
type liveConsole struct {
	srv     *Server
	manager *consolesession.Manager
	store   *tokenstore.MemoryStore
}

func newConsole(t *testing.T, api http.Handler, options ...consolesession.Option) *liveConsole {
	t.Helper()

	fake := httptest.NewServer(api)
	t.Cleanup(fake.Close)

	c := &liveConsole{store: tokenstore.NewMemoryStore()}

	client, err := apiclient.New(fake.URL+"/api", c.store, apiclient.WithUnauthenticatedHandler(func(ctx context.Context) {
		c.manager.HandleUnauthenticated(ctx)
	}))
	require.NoError(t, err)

	c.manager = consolesession.New(client, c.store, append([]consolesession.Option{consolesession.WithNavigator(Navigator)}, options...)...)
	t.Cleanup(c.manager.Shutdown)

	c.srv, err = New(client, c.manager, WithRequestLogging(false))
	require.NoError(t, err)

	return c
}

func (c *liveConsole) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	h := &harness{srv: c.srv}

	return h.do(t, method, target, body)
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestConsole_LoginThenBrowse(t *testing.T) {
	t.Parallel()

	access := accessToken(t, jwt.MapClaims{"user_id": 2, "email": "ada@example.com"})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login/", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, apiclient.LoginResponse{Access: access, Refresh: "r1", FirstName: "Ada"})
	})
	mux.HandleFunc("GET /api/users/2/permissions/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer "+access {
			t.Errorf("Authorization = %q", got)
		}
		reply(w, http.StatusOK, []sessioninfo.PagePermission{{Page: "Clients", CanView: true, CanCreate: true}})
	})

	c := newConsole(t, mux)
	require.NoError(t, c.manager.Boot(context.Background()))
	assert.Equal(t, consolesession.StateUnauthenticated, c.manager.State())

	rr := c.do(t, http.MethodPost, "/login", loginRequest{Email: "ada@example.com", Password: "secret"})
	require.Equal(t, http.StatusSeeOther, rr.Code, rr.Body.String())
	assert.Equal(t, "/profile", rr.Header().Get("Location"))

	assert.Equal(t, consolesession.StateAuthenticated, c.manager.State())
	assert.Equal(t, "Ada", c.manager.User().FirstName)
	assert.Equal(t, sessioninfo.TokenPair{Access: access, Refresh: "r1"}, *mustTokens(t, c.store))

	rr = c.do(t, http.MethodGet, "/pages", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	want := pagesView{Pages: []pages.Page{{ID: 6, Name: "Clients", Path: "/pages/clients"}}}
	if diff := cmp.Diff(want, decodeBody[pagesView](t, rr)); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}

	rr = c.do(t, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/unauthorized", rr.Header().Get("Location"))
}

func TestConsole_ExpiredSessionRedirectsToLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
	})
	mux.HandleFunc("POST /api/token/refresh/", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"detail": "Token is invalid or expired"})
	})

	c := newConsole(t, mux)
	admin := adminUser
	require.NoError(t, c.manager.Login(context.Background(), sessioninfo.TokenPair{Access: "a1", Refresh: "r1"}, &admin))

	rr := c.do(t, http.MethodGet, "/dashboard", nil)

	assert.Equal(t, http.StatusSeeOther, rr.Code, rr.Body.String())
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, c.manager.IsAuthenticated())
	assert.Nil(t, mustTokens(t, c.store))

	rr = c.do(t, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?from=%2Fdashboard", rr.Header().Get("Location"))
}

func TestConsole_LogoutClearsSession(t *testing.T) {
	t.Parallel()

	c := newConsole(t, http.NewServeMux())
	admin := adminUser
	require.NoError(t, c.manager.Login(context.Background(), sessioninfo.TokenPair{Access: "a1", Refresh: "r1"}, &admin))

	rr := c.do(t, http.MethodPost, "/logout", nil)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.Equal(t, consolesession.StateUnauthenticated, c.manager.State())
	assert.Nil(t, mustTokens(t, c.store))
}

func TestConsole_InactivityTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		event             consolesession.ActivityEvent
		wantRecorded      bool
		wantAuthenticated bool
	}{
		{name: "browsing and ignored events do not keep the session", event: "mousemove", wantRecorded: false, wantAuthenticated: false},
		{name: "qualifying events keep the session", event: consolesession.KeyDown, wantRecorded: true, wantAuthenticated: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newConsole(t, http.NewServeMux(), consolesession.WithInactivityTimeout(400*time.Millisecond))
			admin := adminUser
			require.NoError(t, c.manager.Login(context.Background(), sessioninfo.TokenPair{Access: "a1", Refresh: "r1"}, &admin))

			deadline := time.Now().Add(time.Second)
			for time.Now().Before(deadline) {
				c.do(t, http.MethodGet, "/pages", nil)

				rr := c.do(t, http.MethodPost, "/activity", activityRequest{Event: tt.event})
				require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
				assert.Equal(t, tt.wantRecorded, decodeBody[activityView](t, rr).Recorded)

				time.Sleep(50 * time.Millisecond)
			}

			assert.Equal(t, tt.wantAuthenticated, c.manager.IsAuthenticated())
		})
	}
}

func mustTokens(t *testing.T, s tokenstore.Store) *sessioninfo.TokenPair {
	t.Helper()

	pair, err := s.Get(context.Background())
	require.NoError(t, err)

	return pair
}
