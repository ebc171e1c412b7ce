package apiclient

import (
	"net/http"
	"testing"

	"github.com/go-playground/errors/v5"
)

func TestHTTPError_UserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail", body: `{"detail":"Invalid email"}`, want: "Invalid email"},
		{name: "message", body: `{"message":"Try later"}`, want: "Try later"},
		{name: "detail wins", body: `{"detail":"a","message":"b"}`, want: "a"},
		{name: "structured detail", body: `{"detail":["x"]}`, want: `["x"]`},
		{name: "not json", body: `<html>`, want: "fallback"},
		{name: "empty", body: ``, want: "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := newHTTPError(http.MethodGet, "users/", http.StatusBadRequest, []byte(tt.body))
			if got := err.UserMessage("fallback"); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	wrapped := errors.Wrap(newHTTPError(http.MethodGet, "users/", http.StatusUnauthorized, nil), "Client.Do()")

	if got := StatusCode(wrapped); got != http.StatusUnauthorized {
		t.Errorf("StatusCode() = %d, want %d", got, http.StatusUnauthorized)
	}
	if !IsUnauthorized(wrapped) {
		t.Errorf("IsUnauthorized() = false, want true")
	}
	if IsForbidden(wrapped) {
		t.Errorf("IsForbidden() = true, want false")
	}
	if got := StatusCode(errors.New("boom")); got != 0 {
		t.Errorf("StatusCode() = %d, want 0", got)
	}
	if got := UserMessage(errors.New("boom"), "Failed to fetch users"); got != "Failed to fetch users" {
		t.Errorf("UserMessage() = %q", got)
	}
}
