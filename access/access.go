// Package access decides whether the current session may enter a route.
package access

import (
	"net/url"

	"github.com/cccteam/consolesession/sessioninfo"
)

const (
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"
	// UnauthorizedPath is where denied requests are sent.
	UnauthorizedPath = "/unauthorized"
)

// Outcome is the result of an access decision.
type Outcome int

const (
	// Allow lets the request through.
	Allow Outcome = iota
	// Wait means the session is still being restored.
	Wait
	// RedirectLogin sends the request to the login page.
	RedirectLogin
	// RedirectUnauthorized sends the request to the access denied page.
	RedirectUnauthorized
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Wait:
		return "wait"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	}

	return "unknown"
}

// Requirement describes what a route demands of the session. A permission
// requirement only applies when both Permission and PageName are set.
type Requirement struct {
	RequireSuperAdmin bool
	Permission        sessioninfo.Permission
	PageName          string
}

// Decision is the outcome of Decide and, for redirects, where to go.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Decide evaluates req against s. from is the location the request was
// headed for and is carried on the login redirect.
func Decide(s sessioninfo.Session, req Requirement, from string) Decision {
	switch {
	case s.Loading:
		return Decision{Outcome: Wait}
	case !s.IsAuthenticated:
		return Decision{Outcome: RedirectLogin, Location: loginLocation(LoginPath, from)}
	case req.RequireSuperAdmin && !s.IsSuperuser():
		return Decision{Outcome: RedirectUnauthorized, Location: UnauthorizedPath}
	case req.Permission != "" && req.PageName != "" && !s.HasPermission(req.PageName, req.Permission):
		return Decision{Outcome: RedirectUnauthorized, Location: UnauthorizedPath}
	}

	return Decision{Outcome: Allow}
}

func loginLocation(loginPath, from string) string {
	if from == "" || from == loginPath {
		return loginPath
	}

	return loginPath + "?" + url.Values{"from": []string{from}}.Encode()
}
