package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cccteam/consolesession/pages"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Pages lists the pages known to the API. The console renders against the
// compiled-in catalog; this is informational.
func (c *Client) Pages(ctx context.Context) ([]pages.Page, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Pages()")
	defer span.End()

	var list []pages.Page
	if err := c.Do(ctx, http.MethodGet, "pages/", nil, &list); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return list, nil
}

// Page fetches one page.
func (c *Client) Page(ctx context.Context, id int) (*pages.Page, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Page()")
	defer span.End()

	p := &pages.Page{}
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("pages/%d/", id), nil, p); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return p, nil
}
