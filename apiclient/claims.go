package apiclient

import (
	"strconv"
	"strings"
	"time"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried in an access token payload. The payload is
// decoded without verifying the signature: it is trusted for display and
// identity only, never as proof of authorization.
type Claims struct {
	UserID      int64
	Email       string
	Username    string
	FirstName   string
	LastName    string
	IsSuperuser bool
	ExpiresAt   time.Time
}

// DecodeAccessToken decodes the payload of access without verifying it.
func DecodeAccessToken(access string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, mc); err != nil {
		return nil, errors.Wrap(err, "jwt.Parser.ParseUnverified()")
	}

	c := &Claims{
		UserID:      getInt64(mc, "user_id"),
		Email:       getString(mc, "email"),
		Username:    getString(mc, "username"),
		FirstName:   getString(mc, "first_name"),
		LastName:    getString(mc, "last_name"),
		IsSuperuser: getBool(mc, "is_superuser"),
	}

	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}

	return c, nil
}

// LoginResponse is the body returned by the login endpoint.
type LoginResponse struct {
	Access      string `json:"access"`
	Refresh     string `json:"refresh"`
	IsSuperuser bool   `json:"is_superuser"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// Tokens returns the token pair of the response
func (r *LoginResponse) Tokens() sessioninfo.TokenPair {
	return sessioninfo.TokenPair{Access: r.Access, Refresh: r.Refresh}
}

// LoginIdentity merges the login response with the decoded access token into
// the identity of the new session. The superuser flag comes from the response
// body only; the other fields prefer the response, then the token, then a
// value derived from the submitted email.
func LoginIdentity(res *LoginResponse, claims *Claims, email string) *sessioninfo.User {
	localPart, _, _ := strings.Cut(email, "@")

	return &sessioninfo.User{
		ID:          claims.UserID,
		Email:       firstNonEmpty(claims.Email, email),
		IsSuperuser: res.IsSuperuser,
		Username:    firstNonEmpty(res.Username, claims.Username, localPart),
		FirstName:   firstNonEmpty(res.FirstName, claims.FirstName),
		LastName:    firstNonEmpty(res.LastName, claims.LastName),
	}
}

// SessionIdentity rebuilds the identity of a restored session from its
// access token alone.
func SessionIdentity(claims *Claims) *sessioninfo.User {
	return &sessioninfo.User{
		ID:          claims.UserID,
		Email:       firstNonEmpty(claims.Email, claims.Username),
		Username:    claims.Username,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		IsSuperuser: claims.IsSuperuser,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}

// getString safely extracts string value from claims
func getString(mc jwt.MapClaims, key string) string {
	if val, ok := mc[key].(string); ok {
		return val
	}

	return ""
}

// getBool safely extracts boolean value from claims
func getBool(mc jwt.MapClaims, key string) bool {
	if val, ok := mc[key].(bool); ok {
		return val
	}

	return false
}

// getInt64 safely extracts an integer id that may be encoded as a number or a string
func getInt64(mc jwt.MapClaims, key string) int64 {
	switch val := mc[key].(type) {
	case float64:
		return int64(val)
	case string:
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0
		}

		return i
	}

	return 0
}
