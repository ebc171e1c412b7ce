package console

import (
	"net/http"
	"time"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
)

const (
	xsrfCookieName = "XSRF-TOKEN"
	xsrfHeaderName = "X-XSRF-TOKEN"

	xsrfCookieLife = time.Hour

	// a token expiring within this window is replaced
	xsrfRewriteWindow = 30 * time.Minute
)

// xsrfToken is the payload of the double-submit token. The same encoded
// value travels in the cookie and in the request header.
type xsrfToken struct {
	Instance string
	Expires  time.Time
}

// issuedBy reports whether t was issued by instance and is still live at now.
func (t xsrfToken) issuedBy(instance string, now time.Time) bool {
	return t.Instance == instance && now.Before(t.Expires)
}

// xsrfProtector binds tokens to one console instance, so a token from an
// earlier run of the console is replaced rather than accepted.
type xsrfProtector struct {
	cookie     *signedCookie
	instanceID string
}

func newXSRFProtector(cookie *signedCookie, instanceID string) *xsrfProtector {
	return &xsrfProtector{cookie: cookie, instanceID: instanceID}
}

// protect hands a fresh token to clients that lack one and rejects unsafe
// requests whose header does not echo the cookie.
func (x *xsrfProtector) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		current, found := x.cookieToken(r)

		if !found || !current.issuedBy(x.instanceID, now.Add(xsrfRewriteWindow)) {
			if err := x.cookie.write(w, x.newToken(now)); err != nil {
				logger.Req(r).Error(err)
			} else if !isSafeMethod(r.Method) {
				// the client retries with the new cookie
				http.Redirect(w, r, r.RequestURI, http.StatusTemporaryRedirect)

				return
			}
		}

		if !isSafeMethod(r.Method) && !(found && x.echoed(r, current, now)) {
			err := httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewForbiddenMessage("invalid XSRF token"))
			logger.Req(r).Infof("['%s']", httpio.Message(err))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (x *xsrfProtector) newToken(now time.Time) xsrfToken {
	return xsrfToken{Instance: x.instanceID, Expires: now.Add(xsrfCookieLife)}
}

func (x *xsrfProtector) cookieToken(r *http.Request) (xsrfToken, bool) {
	var t xsrfToken
	found, err := x.cookie.read(r, &t)
	if err != nil {
		logger.Req(r).Error(err)
	}

	return t, found
}

// echoed reports whether the header carries the instance of a live cookie.
func (x *xsrfProtector) echoed(r *http.Request, cookie xsrfToken, now time.Time) bool {
	if !cookie.issuedBy(x.instanceID, now) {
		return false
	}

	h := r.Header.Get(xsrfHeaderName)
	if h == "" {
		return false
	}

	var header xsrfToken
	if err := x.cookie.decode(h, &header); err != nil {
		logger.Req(r).Error(err)

		return false
	}

	return header.Instance == cookie.Instance
}

// isSafeMethod reports the idempotent methods of RFC 7231 section 4.2.2.
func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}

	return false
}
