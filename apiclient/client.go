// Package apiclient is the HTTP gateway to the console API. It attaches the
// stored bearer token to every request and, on a 401, exchanges the refresh
// token for a new access token and replays the request exactly once.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cccteam/consolesession/tokenstore"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

const name = "github.com/cccteam/consolesession/apiclient"

// DefaultBaseURL is the API root used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/"

const defaultTimeout = 30 * time.Second

// Client is the API gateway.
type Client struct {
	baseURL           *url.URL
	httpClient        *http.Client
	store             tokenstore.Store
	onUnauthenticated func(ctx context.Context)
	dedupeRefresh     bool
	refreshGroup      singleflight.Group
}

// New returns a Client for the API rooted at baseURL.
func New(baseURL string, store tokenstore.Store, options ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "url.Parse()")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		store:             store,
		onUnauthenticated: func(context.Context) {},
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any

	// anonymous requests never carry a bearer token and are never retried
	anonymous bool
}

// Do issues an authenticated request against path (relative to the base URL),
// encoding body as JSON and decoding a successful response into out.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, &request{method: method, path: path, body: body}, out)
}

func (c *Client) do(ctx context.Context, req *request, out any) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.do()")
	defer span.End()
	span.SetAttributes(attribute.String("http.method", req.method), attribute.String("api.path", req.path))

	payload, err := encodeBody(req.body)
	if err != nil {
		return err
	}

	if req.anonymous {
		return c.send(ctx, req, payload, "", out)
	}

	err = c.send(ctx, req, payload, tokenstore.AccessToken(ctx, c.store), out)
	if !IsUnauthorized(err) {
		return err
	}

	access, rerr := c.refreshAfterUnauthorized(ctx)
	if rerr != nil {
		if errors.Is(rerr, ErrNoRefreshToken) {
			return err
		}

		return rerr
	}

	// the replay is final: a second 401 ends the session
	err = c.send(ctx, req, payload, access, out)
	if IsUnauthorized(err) {
		c.expire(ctx)
	}

	return err
}

func (c *Client) send(ctx context.Context, req *request, payload []byte, access string, out any) error {
	u := c.baseURL.JoinPath(strings.TrimPrefix(req.path, "/"))
	if strings.HasSuffix(req.path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	r, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return errors.Wrap(err, "http.NewRequestWithContext()")
	}
	r.Header.Set("Accept", "application/json")
	if payload != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		r.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return errors.Wrap(err, "http.Client.Do()")
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "io.ReadAll()")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(req.method, req.path, resp.StatusCode, b)
	}

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrapf(err, "json.Unmarshal(): %s %s", req.method, req.path)
	}

	return nil
}

// expire drops the stored credentials and hands control to the
// unauthenticated handler, which sends the operator back to login.
func (c *Client) expire(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Error(errors.Wrap(err, "tokenstore.Store.Clear()"))
	}

	c.onUnauthenticated(ctx)
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal()")
	}

	return b, nil
}
