package console

import (
	"net/http"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

// signedCookie reads and writes one securecookie-encoded cookie. The cookie
// name is part of the signature, so one codec can serve several cookies.
type signedCookie struct {
	codec    *securecookie.SecureCookie
	name     string
	life     time.Duration
	httpOnly bool
	secure   bool
}

func (c *signedCookie) encode(v any) (string, error) {
	value, err := c.codec.Encode(c.name, v)
	if err != nil {
		return "", errors.Wrap(err, "securecookie.SecureCookie.Encode()")
	}

	return value, nil
}

func (c *signedCookie) decode(value string, dst any) error {
	if err := c.codec.Decode(c.name, value, dst); err != nil {
		return errors.Wrap(err, "securecookie.SecureCookie.Decode()")
	}

	return nil
}

func (c *signedCookie) write(w http.ResponseWriter, v any) error {
	value, err := c.encode(v)
	if err != nil {
		return err
	}

	http.SetCookie(w, c.cookie(value, time.Now().Add(c.life)))

	return nil
}

// read decodes the cookie into dst. found is false when the request has no
// such cookie; err is set when it has one that does not decode.
func (c *signedCookie) read(r *http.Request, dst any) (found bool, err error) {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return false, nil
	}

	if err := c.decode(cookie.Value, dst); err != nil {
		return false, err
	}

	return true, nil
}

func (c *signedCookie) clear(w http.ResponseWriter) {
	cookie := c.cookie("", time.Time{})
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (c *signedCookie) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   c.secure,
		HttpOnly: c.httpOnly,
		SameSite: http.SameSiteStrictMode,
	}
}
