package console

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cccteam/consolesession/mock/mock_console"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminUser = sessioninfo.User{ID: 1, Email: "admin@example.com", Username: "admin", IsSuperuser: true}
	adaUser   = sessioninfo.User{ID: 2, Email: "ada@example.com", Username: "ada", FirstName: "Ada", LastName: "Lovelace"}
)

func superSession() sessioninfo.Session {
	u := adminUser

	return sessioninfo.Session{User: &u, IsAuthenticated: true}
}

func regularSession(perms ...sessioninfo.PagePermission) sessioninfo.Session {
	u := adaUser

	return sessioninfo.Session{User: &u, Permissions: perms, IsAuthenticated: true}
}

type harness struct {
	srv      *Server
	api      *mock_console.MockAPI
	sessions *mock_console.MockSessions
}

// newHarness returns a Server over mocks. The session source always answers
// sess. Activity is only expected where a test asks for it.
func newHarness(t *testing.T, sess sessioninfo.Session) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		api:      mock_console.NewMockAPI(ctrl),
		sessions: mock_console.NewMockSessions(ctrl),
	}
	h.sessions.EXPECT().Session().Return(sess).AnyTimes()

	srv, err := New(h.api, h.sessions, WithRequestLogging(false))
	require.NoError(t, err)
	h.srv = srv

	return h
}

// do sends a request through the router. Unsafe requests carry a valid XSRF
// cookie and header.
func (h *harness) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.srv.ServeHTTP(rr, h.request(t, method, target, body))

	return rr
}

func (h *harness) request(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	req := newRequest(t, method, target, body)
	if !isSafeMethod(method) {
		token := xsrfToken(t, h.srv.xsrf)
		req.AddCookie(&http.Cookie{Name: xsrfCookieName, Value: token})
		req.Header.Set(xsrfHeaderName, token)
	}

	return req
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rdr io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	return httptest.NewRequest(method, target, rdr)
}

func xsrfToken(t *testing.T, x *xsrfProtector) string {
	t.Helper()

	token, err := x.cookie.encode(x.newToken(time.Now()))
	require.NoError(t, err)

	return token
}

func accessToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	require.NoError(t, err)

	return s
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())

	return v
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	clientsView := sessioninfo.PagePermission{Page: "Clients", CanView: true}

	tests := []struct {
		name         string
		session      sessioninfo.Session
		target       string
		wantStatus   int
		wantLocation string
	}{
		{name: "root goes to login", session: sessioninfo.Session{}, target: "/", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "unknown route is unauthorized", session: superSession(), target: "/nowhere", wantStatus: http.StatusSeeOther, wantLocation: "/unauthorized"},
		{name: "dashboard while loading", session: sessioninfo.Session{Loading: true}, target: "/dashboard", wantStatus: http.StatusServiceUnavailable},
		{name: "dashboard unauthenticated", session: sessioninfo.Session{}, target: "/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/login?from=%2Fdashboard"},
		{name: "dashboard regular user", session: regularSession(clientsView), target: "/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/unauthorized"},
		{name: "profile unauthenticated", session: sessioninfo.Session{}, target: "/profile", wantStatus: http.StatusSeeOther, wantLocation: "/login?from=%2Fprofile"},
		{name: "page unauthenticated", session: sessioninfo.Session{}, target: "/pages/6", wantStatus: http.StatusSeeOther, wantLocation: "/login?from=%2Fpages%2F6"},
		{name: "page without view", session: regularSession(clientsView), target: "/pages/orders", wantStatus: http.StatusSeeOther, wantLocation: "/unauthorized"},
		{name: "unknown page", session: regularSession(clientsView), target: "/pages/warehouse", wantStatus: http.StatusNotFound},
		{name: "page by id", session: regularSession(clientsView), target: "/pages/6", wantStatus: http.StatusOK},
		{name: "page by path", session: regularSession(clientsView), target: "/pages/clients", wantStatus: http.StatusOK},
		{name: "unauthorized view", session: regularSession(), target: "/unauthorized", wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, tt.session)
			rr := h.do(t, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestServer_XSRF(t *testing.T) {
	t.Parallel()

	t.Run("missing cookie retries with one", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, regularSession())
		rr := httptest.NewRecorder()
		h.srv.ServeHTTP(rr, newRequest(t, http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "/logout", rr.Header().Get("Location"))
		assert.Contains(t, rr.Header().Get("Set-Cookie"), xsrfCookieName+"=")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, regularSession())
		req := newRequest(t, http.MethodPost, "/logout", nil)
		req.AddCookie(&http.Cookie{Name: xsrfCookieName, Value: xsrfToken(t, h.srv.xsrf)})
		rr := httptest.NewRecorder()
		h.srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("token of another console is replaced", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, regularSession())
		other := newHarness(t, regularSession())
		token := xsrfToken(t, other.srv.xsrf)

		req := newRequest(t, http.MethodPost, "/logout", nil)
		req.AddCookie(&http.Cookie{Name: xsrfCookieName, Value: token})
		req.Header.Set(xsrfHeaderName, token)
		rr := httptest.NewRecorder()
		h.srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, regularSession())
		h.sessions.EXPECT().Logout(gomock.Any()).Times(1)

		rr := h.do(t, http.MethodPost, "/logout", nil)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})
}
