package sessioninfo

import "time"

// Comment is user content attached to a page.
type Comment struct {
	ID        int64             `json:"id"`
	Page      string            `json:"page"`
	User      string            `json:"user"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	History   []CommentRevision `json:"history,omitempty"`
}

// CommentRevision is a snapshot of a comment before a modification.
type CommentRevision struct {
	Content    string    `json:"content"`
	ModifiedBy string    `json:"modified_by"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Edited reports whether the comment was changed after creation
func (c *Comment) Edited() bool {
	return !c.UpdatedAt.Equal(c.CreatedAt)
}

// OwnedBy reports whether u may modify the comment: its author or any superuser.
func (c *Comment) OwnedBy(u *User) bool {
	if u == nil {
		return false
	}

	return c.User == u.Email || u.IsSuperuser
}
