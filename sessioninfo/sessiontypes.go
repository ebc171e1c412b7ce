// Package sessioninfo defines the identity, permission and token types shared by the console packages.
package sessioninfo

import (
	"strings"
	"time"

	"github.com/go-playground/errors/v5"
)

// Permission is one of the four per-page access kinds.
type Permission string

const (
	// View grants read access to a page.
	View Permission = "view"
	// Edit grants modification of existing content on a page.
	Edit Permission = "edit"
	// Create grants adding new content to a page.
	Create Permission = "create"
	// Delete grants removal of content from a page.
	Delete Permission = "delete"
)

// Permissions lists every permission kind in display order.
var Permissions = []Permission{View, Edit, Create, Delete}

// Valid reports whether p is a known permission kind.
func (p Permission) Valid() bool {
	switch p {
	case View, Edit, Create, Delete:
		return true
	}

	return false
}

// ParsePermission converts s into a Permission
func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Newf("unknown permission %q", s)
	}

	return p, nil
}

// User is the identity of an account as reported by the API.
type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username,omitempty"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// DisplayName returns the full name when one is known, otherwise the username.
func (u *User) DisplayName() string {
	if u.FirstName != "" || u.LastName != "" {
		return strings.TrimSpace(u.FirstName + " " + u.LastName)
	}

	return u.Username
}

// UserFields are the editable attributes of an account.
type UserFields struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"max=150"`
	FirstName   string `json:"first_name" validate:"max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
	IsSuperuser bool   `json:"is_superuser"`
}

// CreatedUser is the response to an account creation. Password is generated
// by the API and is only ever returned once.
type CreatedUser struct {
	User
	Password string `json:"password"`
}

// Profile holds the self-editable attributes of the current user.
type Profile struct {
	Email     string `json:"email,omitempty"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PagePermission is the access grant of one user to one page.
type PagePermission struct {
	Page      string `json:"page"`
	CanView   bool   `json:"can_view"`
	CanEdit   bool   `json:"can_edit"`
	CanCreate bool   `json:"can_create"`
	CanDelete bool   `json:"can_delete"`
}

// Allows reports whether the row grants p
func (pp PagePermission) Allows(p Permission) bool {
	switch p {
	case View:
		return pp.CanView
	case Edit:
		return pp.CanEdit
	case Create:
		return pp.CanCreate
	case Delete:
		return pp.CanDelete
	}

	return false
}

// None reports whether the row grants nothing
func (pp PagePermission) None() bool {
	return !pp.CanView && !pp.CanEdit && !pp.CanCreate && !pp.CanDelete
}

// TokenPair is the credential pair issued by the API on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Session is the authenticated client's view of itself.
type Session struct {
	User            *User            `json:"user"`
	Permissions     []PagePermission `json:"permissions"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	Loading         bool             `json:"loading"`
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	c := s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	if s.Permissions != nil {
		c.Permissions = make([]PagePermission, len(s.Permissions))
		copy(c.Permissions, s.Permissions)
	}

	return c
}

// IsSuperuser reports whether the session belongs to a superuser.
func (s Session) IsSuperuser() bool {
	return s.User != nil && s.User.IsSuperuser
}

// HasPermission reports whether the session grants p on page. Superusers are
// granted everything regardless of their permission rows.
func (s Session) HasPermission(page string, p Permission) bool {
	if s.IsSuperuser() {
		return true
	}

	for _, pp := range s.Permissions {
		if pp.Page == page {
			return pp.Allows(p)
		}
	}

	return false
}
