package apiclient

import (
	"context"
	"net/http"
	"time"
)

// Option defines a function signature for setting Client options.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. (default: 30s timeout, otelhttp transport)
func WithHTTPClient(hc *http.Client) Option {
	return Option(func(c *Client) {
		c.httpClient = hc
	})
}

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return Option(func(c *Client) {
		c.httpClient.Timeout = d
	})
}

// WithUnauthenticatedHandler sets the function called after the stored tokens
// were cleared because the session could not be refreshed.
func WithUnauthenticatedHandler(fn func(ctx context.Context)) Option {
	return Option(func(c *Client) {
		if fn != nil {
			c.onUnauthenticated = fn
		}
	})
}

// WithRefreshDeduplication collapses concurrent token refreshes into a single
// call to the API. (default: false, each 401 refreshes independently)
func WithRefreshDeduplication(dedupe bool) Option {
	return Option(func(c *Client) {
		c.dedupeRefresh = dedupe
	})
}
