package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Comments lists the comments of a page. History is only included by the API
// for superusers.
func (c *Client) Comments(ctx context.Context, page string) ([]sessioninfo.Comment, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Comments()")
	defer span.End()

	var comments []sessioninfo.Comment
	req := &request{method: http.MethodGet, path: "comments/", query: url.Values{"page": []string{page}}}
	if err := c.do(ctx, req, &comments); err != nil {
		return nil, errors.Wrap(err, "Client.do()")
	}

	return comments, nil
}

// Comment fetches one comment.
func (c *Client) Comment(ctx context.Context, id int64) (*sessioninfo.Comment, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Comment()")
	defer span.End()

	comment := &sessioninfo.Comment{}
	if err := c.Do(ctx, http.MethodGet, commentPath(id), nil, comment); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return comment, nil
}

// CreateComment adds a comment to page.
func (c *Client) CreateComment(ctx context.Context, page, content string) (*sessioninfo.Comment, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.CreateComment()")
	defer span.End()

	body := struct {
		Page    string `json:"page"`
		Content string `json:"content"`
	}{Page: page, Content: content}

	comment := &sessioninfo.Comment{}
	if err := c.Do(ctx, http.MethodPost, "comments/", body, comment); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return comment, nil
}

// UpdateComment replaces the content of a comment.
func (c *Client) UpdateComment(ctx context.Context, id int64, content string) (*sessioninfo.Comment, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.UpdateComment()")
	defer span.End()

	body := struct {
		Content string `json:"content"`
	}{Content: content}

	comment := &sessioninfo.Comment{}
	if err := c.Do(ctx, http.MethodPut, commentPath(id), body, comment); err != nil {
		return nil, errors.Wrap(err, "Client.Do()")
	}

	return comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.DeleteComment()")
	defer span.End()

	if err := c.Do(ctx, http.MethodDelete, commentPath(id), nil, nil); err != nil {
		return errors.Wrap(err, "Client.Do()")
	}

	return nil
}

func commentPath(id int64) string {
	return fmt.Sprintf("comments/%d/", id)
}
