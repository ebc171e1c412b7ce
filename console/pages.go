package console

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cccteam/consolesession/access"
	"github.com/cccteam/consolesession/pages"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/httpio"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

const firstCommentHint = "Be the first to add a comment!"

type pagesView struct {
	Pages []pages.Page `json:"pages"`
}

// Pages lists the pages the session may view
func (s *Server) Pages() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, _ *http.Request) error {
		return httpio.NewEncoder(w).Ok(pagesView{Pages: s.sessions.AccessiblePages()})
	})
}

// pageRequirement demands p on the page named by the pageId route parameter.
func pageRequirement(p sessioninfo.Permission) access.Resolver {
	return func(r *http.Request) (access.Requirement, error) {
		page, err := routePage(r)
		if err != nil {
			return access.Requirement{}, err
		}

		return access.Requirement{Permission: p, PageName: page.Name}, nil
	}
}

func routePage(r *http.Request) (pages.Page, error) {
	page, ok := pages.Lookup(chi.URLParam(r, "pageId"))
	if !ok {
		return pages.Page{}, httpio.NewNotFoundMessage("Page not found")
	}

	return page, nil
}

type accessLevels struct {
	View   bool `json:"view"`
	Edit   bool `json:"edit"`
	Create bool `json:"create"`
	Delete bool `json:"delete"`
}

func levels(sess sessioninfo.Session, page string) accessLevels {
	return accessLevels{
		View:   sess.HasPermission(page, sessioninfo.View),
		Edit:   sess.HasPermission(page, sessioninfo.Edit),
		Create: sess.HasPermission(page, sessioninfo.Create),
		Delete: sess.HasPermission(page, sessioninfo.Delete),
	}
}

type pageView struct {
	Page   pages.Page   `json:"page"`
	Access accessLevels `json:"access"`
}

// Page handles the view of one catalog page
func (s *Server) Page() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		page, err := routePage(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(r.Context(), err)
		}

		return httpio.NewEncoder(w).Ok(pageView{
			Page:   page,
			Access: levels(sessioninfo.FromRequest(r), page.Name),
		})
	})
}

type commentView struct {
	sessioninfo.Comment
	Edited    bool `json:"edited"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

type commentsView struct {
	Page      string        `json:"page"`
	CanCreate bool          `json:"can_create"`
	Hint      string        `json:"hint,omitempty"`
	Comments  []commentView `json:"comments"`
}

// Comments lists the comments of a page with the actions the session may
// take on each.
func (s *Server) Comments() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.Comments()")
		defer span.End()

		page, err := routePage(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		comments, err := s.api.Comments(ctx, page.Name)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to load comments"))
		}

		sess := sessioninfo.FromRequest(r)
		view := commentsView{
			Page:      page.Name,
			CanCreate: sess.HasPermission(page.Name, sessioninfo.Create),
			Comments:  make([]commentView, 0, len(comments)),
		}
		if len(comments) == 0 && view.CanCreate {
			view.Hint = firstCommentHint
		}
		for i := range comments {
			view.Comments = append(view.Comments, presentComment(sess, page.Name, comments[i]))
		}

		return httpio.NewEncoder(w).Ok(view)
	})
}

// presentComment decides the affordances of c. Edit and delete need both
// the page grant and ownership. History is only shown to superusers.
func presentComment(sess sessioninfo.Session, page string, c sessioninfo.Comment) commentView {
	owned := c.OwnedBy(sess.User)
	if !sess.IsSuperuser() {
		c.History = nil
	}

	return commentView{
		Comment:   c,
		Edited:    c.Edited(),
		CanEdit:   owned && sess.HasPermission(page, sessioninfo.Edit),
		CanDelete: owned && sess.HasPermission(page, sessioninfo.Delete),
	}
}

type commentRequest struct {
	Content string `json:"content"`
}

func (s *Server) commentContent(r *http.Request) (string, error) {
	req, err := newDecoder[commentRequest](s.validate).Decode(r)
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return "", httpio.NewBadRequestMessage("Comment cannot be empty")
	}

	return content, nil
}

// CreateComment adds a comment to a page
func (s *Server) CreateComment() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.CreateComment()")
		defer span.End()

		page, err := routePage(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		content, err := s.commentContent(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		c, err := s.api.CreateComment(ctx, page.Name, content)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to add comment"))
		}

		return httpio.NewEncoder(w).Ok(presentComment(sessioninfo.FromRequest(r), page.Name, *c))
	})
}

// UpdateComment changes the content of a comment the session owns
func (s *Server) UpdateComment() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.UpdateComment()")
		defer span.End()

		page, c, err := s.ownedComment(r, "Failed to update comment")
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		content, err := s.commentContent(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		updated, err := s.api.UpdateComment(ctx, c.ID, content)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to update comment"))
		}

		return httpio.NewEncoder(w).Ok(presentComment(sessioninfo.FromRequest(r), page.Name, *updated))
	})
}

// DeleteComment removes a comment the session owns. The request must carry
// confirm=true.
func (s *Server) DeleteComment() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Server.DeleteComment()")
		defer span.End()

		if !confirmed(r) {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "Deletion must be confirmed")
		}

		_, c, err := s.ownedComment(r, "Failed to delete comment")
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if err := s.api.DeleteComment(ctx, c.ID); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, apiMessage(err, "Failed to delete comment"))
		}

		return httpio.NewEncoder(w).Ok(messageView{Message: "Comment deleted"})
	})
}

// ownedComment loads the comment of the route and checks that it belongs to
// the route's page and to the session user.
func (s *Server) ownedComment(r *http.Request, failure string) (pages.Page, *sessioninfo.Comment, error) {
	page, err := routePage(r)
	if err != nil {
		return pages.Page{}, nil, err
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
	if err != nil || id <= 0 {
		return pages.Page{}, nil, httpio.NewBadRequestMessage("invalid comment id")
	}

	c, err := s.api.Comment(r.Context(), id)
	if err != nil {
		return pages.Page{}, nil, apiMessage(err, failure)
	}
	if c.Page != page.Name {
		return pages.Page{}, nil, httpio.NewNotFoundMessage("Comment not found")
	}
	if !c.OwnedBy(sessioninfo.FromRequest(r).User) {
		return pages.Page{}, nil, httpio.NewForbiddenMessage("You can only modify your own comments")
	}

	return page, c, nil
}
