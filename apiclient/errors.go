package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/errors/v5"
)

// Error is a constant error of the gateway.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNoRefreshToken is returned when a refresh is needed but no refresh token is stored.
	ErrNoRefreshToken = Error("no refresh token stored")
	// ErrSessionCleared is returned when the stored tokens were cleared while a refresh was in flight.
	ErrSessionCleared = Error("session cleared during refresh")
)

// HTTPError is a non-2xx response from the API.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
	Message    string
	Body       []byte
}

func newHTTPError(method, path string, status int, body []byte) *HTTPError {
	e := &HTTPError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       body,
	}

	var msg struct {
		Detail  any `json:"detail"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &msg); err == nil {
		e.Detail = stringify(msg.Detail)
		e.Message = stringify(msg.Message)
	}

	return e
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}

		return string(b)
	}
}

func (e *HTTPError) Error() string {
	msg := e.UserMessage(http.StatusText(e.StatusCode))

	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// UserMessage returns the API's detail, then its message, then fallback.
func (e *HTTPError) UserMessage(fallback string) string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	}

	return fallback
}

// StatusCode returns the HTTP status of err, or 0 if err is not an HTTPError.
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}

	return 0
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden reports whether err is a 403 from the API.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// UserMessage returns the user-facing text for err: the API's detail or
// message when err is an HTTPError, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.UserMessage(fallback)
	}

	return fallback
}
