package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cccteam/consolesession"
	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/consolesession/mock/mock_console"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestServer_Login(t *testing.T) {
	t.Parallel()

	access := accessToken(t, jwt.MapClaims{"user_id": 2, "email": "ada@example.com"})
	tokens := sessioninfo.TokenPair{Access: access, Refresh: "r1"}

	tests := []struct {
		name         string
		target       string
		body         any
		prepare      func(api *mock_console.MockAPI, sessions *mock_console.MockSessions)
		wantStatus   int
		wantLocation string
		wantMessage  string
	}{
		{
			name: "superuser lands on dashboard",
			body: loginRequest{Email: "ada@example.com", Password: "secret"},
			prepare: func(api *mock_console.MockAPI, sessions *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1", IsSuperuser: true}, nil)
				sessions.EXPECT().Login(gomock.Any(), tokens, gomock.Any()).DoAndReturn(func(_ context.Context, _ sessioninfo.TokenPair, u *sessioninfo.User) error {
					want := &sessioninfo.User{ID: 2, Email: "ada@example.com", Username: "ada", IsSuperuser: true}
					if diff := cmp.Diff(want, u); diff != "" {
						t.Errorf("Sessions.Login() user mismatch (-want +got):\n%s", diff)
					}

					return nil
				})
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/dashboard",
		},
		{
			name: "regular user lands on profile",
			body: loginRequest{Email: "ada@example.com", Password: "secret"},
			prepare: func(api *mock_console.MockAPI, sessions *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1"}, nil)
				sessions.EXPECT().Login(gomock.Any(), tokens, gomock.Any()).Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/profile",
		},
		{
			name: "remembered location wins",
			body: loginRequest{Email: "ada@example.com", Password: "secret", From: "/pages/clients"},
			prepare: func(api *mock_console.MockAPI, sessions *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1", IsSuperuser: true}, nil)
				sessions.EXPECT().Login(gomock.Any(), tokens, gomock.Any()).Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/pages/clients",
		},
		{
			name:   "remembered location from query",
			target: "/login?from=%2Fpages%2F3",
			body:   loginRequest{Email: "ada@example.com", Password: "secret"},
			prepare: func(api *mock_console.MockAPI, sessions *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1"}, nil)
				sessions.EXPECT().Login(gomock.Any(), tokens, gomock.Any()).Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/pages/3",
		},
		{
			name: "foreign location is ignored",
			body: loginRequest{Email: "ada@example.com", Password: "secret", From: "//evil.example.com/"},
			prepare: func(api *mock_console.MockAPI, sessions *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1"}, nil)
				sessions.EXPECT().Login(gomock.Any(), tokens, gomock.Any()).Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/profile",
		},
		{
			name: "API detail is shown",
			body: loginRequest{Email: "ada@example.com", Password: "wrong"},
			prepare: func(api *mock_console.MockAPI, _ *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "wrong").Return(nil, &apiclient.HTTPError{StatusCode: http.StatusUnauthorized, Detail: "No active account found with the given credentials"})
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "No active account found with the given credentials",
		},
		{
			name: "generic failure message",
			body: loginRequest{Email: "ada@example.com", Password: "wrong"},
			prepare: func(api *mock_console.MockAPI, _ *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "wrong").Return(nil, &apiclient.HTTPError{StatusCode: http.StatusBadRequest})
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: loginFailed,
		},
		{
			name: "unreachable API",
			body: loginRequest{Email: "ada@example.com", Password: "secret"},
			prepare: func(api *mock_console.MockAPI, _ *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:        "invalid email is not sent",
			body:        loginRequest{Email: "ada", Password: "secret"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "email",
		},
		{
			name: "session refused",
			body: loginRequest{Email: "ada@example.com", Password: "secret"},
			prepare: func(api *mock_console.MockAPI, sessions *mock_console.MockSessions) {
				api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1"}, nil)
				sessions.EXPECT().Login(gomock.Any(), tokens, gomock.Any()).Return(errors.New("disk full"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: loginFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, sessioninfo.Session{})
			if tt.prepare != nil {
				tt.prepare(h.api, h.sessions)
			}

			target := tt.target
			if target == "" {
				target = "/login"
			}
			rr := h.do(t, http.MethodPost, target, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.wantMessage != "" {
				assert.Contains(t, rr.Body.String(), tt.wantMessage)
			}
		})
	}
}

func TestServer_LoginForm(t *testing.T) {
	t.Parallel()

	t.Run("authenticated session moves on", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, superSession())
		rr := h.do(t, http.MethodGet, "/login", nil)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
	})

	t.Run("form keeps the remembered location", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, sessioninfo.Session{})
		rr := h.do(t, http.MethodGet, "/login?from=%2Fprofile", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, loginView{From: "/profile"}, decodeBody[loginView](t, rr))
		assert.Contains(t, strings.Join(rr.Header().Values("Set-Cookie"), "; "), returnCookieName+"=")
	})
}

func TestServer_Login_ReturnToCookie(t *testing.T) {
	t.Parallel()

	access := accessToken(t, jwt.MapClaims{"user_id": 2, "email": "ada@example.com"})

	h := newHarness(t, sessioninfo.Session{})
	h.api.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(&apiclient.LoginResponse{Access: access, Refresh: "r1"}, nil)
	h.sessions.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	form := h.do(t, http.MethodGet, "/login?from=%2Fpages%2F6", nil)
	var remembered *http.Cookie
	for _, c := range form.Result().Cookies() {
		if c.Name == returnCookieName {
			remembered = c
		}
	}
	if remembered == nil {
		t.Fatalf("login form did not set %s", returnCookieName)
	}

	req := h.request(t, http.MethodPost, "/login", loginRequest{Email: "ada@example.com", Password: "secret"})
	req.AddCookie(remembered)
	rr := httptest.NewRecorder()
	h.srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code, rr.Body.String())
	assert.Equal(t, "/pages/6", rr.Header().Get("Location"))
}

func TestSafeRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from string
		want string
	}{
		{from: "", want: ""},
		{from: "/pages/3", want: "/pages/3"},
		{from: "/pages/3?tab=comments", want: "/pages/3?tab=comments"},
		{from: "https://evil.example.com", want: ""},
		{from: "//evil.example.com", want: ""},
		{from: "/\\evil.example.com", want: ""},
		{from: "/login", want: ""},
		{from: "/login?from=%2Fprofile", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			t.Parallel()

			if got := safeRedirect(tt.from); got != tt.want {
				t.Errorf("safeRedirect(%q) = %q, want %q", tt.from, got, tt.want)
			}
		})
	}
}

func TestServer_PasswordReset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		body        any
		prepare     func(api *mock_console.MockAPI)
		wantStatus  int
		wantMessage string
	}{
		{
			name:   "request sends OTP",
			target: "/reset-password/request",
			body:   resetRequest{Email: "ada@example.com"},
			prepare: func(api *mock_console.MockAPI) {
				api.EXPECT().RequestPasswordReset(gomock.Any(), "ada@example.com").Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "OTP sent to ada@example.com",
		},
		{
			name:   "request failure",
			target: "/reset-password/request",
			body:   resetRequest{Email: "ada@example.com"},
			prepare: func(api *mock_console.MockAPI) {
				api.EXPECT().RequestPasswordReset(gomock.Any(), "ada@example.com").Return(errors.New("timeout"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: otpFailed,
		},
		{
			name:   "verify succeeds",
			target: "/reset-password/verify",
			body:   verifyRequest{Email: "ada@example.com", Code: "123456", NewPassword: "correct horse", ConfirmPassword: "correct horse"},
			prepare: func(api *mock_console.MockAPI) {
				api.EXPECT().VerifyPasswordReset(gomock.Any(), "ada@example.com", "123456", "correct horse").Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: resetSucceeded,
		},
		{
			name:        "passwords differ",
			target:      "/reset-password/verify",
			body:        verifyRequest{Email: "ada@example.com", Code: "123456", NewPassword: "correct horse", ConfirmPassword: "battery staple"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Passwords do not match",
		},
		{
			name:        "password too short",
			target:      "/reset-password/verify",
			body:        verifyRequest{Email: "ada@example.com", Code: "123456", NewPassword: "short", ConfirmPassword: "short"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be at least 8 characters long",
		},
		{
			name:   "bad code",
			target: "/reset-password/verify",
			body:   verifyRequest{Email: "ada@example.com", Code: "000000", NewPassword: "correct horse", ConfirmPassword: "correct horse"},
			prepare: func(api *mock_console.MockAPI) {
				api.EXPECT().VerifyPasswordReset(gomock.Any(), "ada@example.com", "000000", "correct horse").Return(&apiclient.HTTPError{StatusCode: http.StatusBadRequest})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: resetFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, sessioninfo.Session{})
			if tt.prepare != nil {
				tt.prepare(h.api)
			}

			rr := h.do(t, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tt.wantMessage)
		})
	}
}

func TestServer_Logout(t *testing.T) {
	t.Parallel()

	h := newHarness(t, regularSession())
	h.sessions.EXPECT().Logout(gomock.Any()).Do(func(ctx context.Context) {
		Navigator.Navigate(ctx, "/signin")
	})

	rr := h.do(t, http.MethodPost, "/logout", nil)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/signin", rr.Header().Get("Location"))
}

func TestServer_Activity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		event      consolesession.ActivityEvent
		recorded   bool
		wantStatus int
	}{
		{name: "qualifying event", event: consolesession.KeyDown, recorded: true, wantStatus: http.StatusOK},
		{name: "ignored event", event: "mousemove", recorded: false, wantStatus: http.StatusOK},
		{name: "missing event", event: "", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			api := mock_console.NewMockAPI(ctrl)
			sessions := mock_console.NewMockSessions(ctrl)
			if tt.event != "" {
				sessions.EXPECT().RecordActivity(tt.event).Return(tt.recorded)
			}

			srv, err := New(api, sessions, WithRequestLogging(false))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			h := &harness{srv: srv, api: api, sessions: sessions}

			rr := h.do(t, http.MethodPost, "/activity", activityRequest{Event: tt.event})

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, activityView{Recorded: tt.recorded}, decodeBody[activityView](t, rr))
			}
		})
	}
}
