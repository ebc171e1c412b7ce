package apiclient

import (
	"context"
	"net/http"

	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Login exchanges credentials for a token pair. The request is anonymous and
// a 401 here means bad credentials, never an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Login()")
	defer span.End()

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	res := &LoginResponse{}
	if err := c.do(ctx, &request{method: http.MethodPost, path: "auth/login/", body: body, anonymous: true}, res); err != nil {
		return nil, errors.Wrap(err, "Client.do()")
	}

	if res.Access == "" || res.Refresh == "" {
		return nil, errors.New("login response is missing a token")
	}

	return res, nil
}

// RequestPasswordReset asks the API to mail a one-time code to email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.RequestPasswordReset()")
	defer span.End()

	body := struct {
		Email string `json:"email"`
	}{Email: email}

	if err := c.do(ctx, &request{method: http.MethodPost, path: "auth/request_reset/", body: body, anonymous: true}, nil); err != nil {
		return errors.Wrap(err, "Client.do()")
	}

	return nil
}

// VerifyPasswordReset sets a new password using the mailed code.
func (c *Client) VerifyPasswordReset(ctx context.Context, email, code, newPassword string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.VerifyPasswordReset()")
	defer span.End()

	body := struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}{Email: email, Code: code, NewPassword: newPassword}

	if err := c.do(ctx, &request{method: http.MethodPost, path: "auth/verify_reset/", body: body, anonymous: true}, nil); err != nil {
		return errors.Wrap(err, "Client.do()")
	}

	return nil
}
