package console

import (
	"net/http"
	"time"

	"github.com/cccteam/logger"
)

const (
	returnCookieName = "CONSOLE-RETURN-TO"
	returnCookieLife = 15 * time.Minute
)

type returnTo struct {
	Path string
}

// returnToCookie remembers where a request was headed when it was sent to
// the login page.
type returnToCookie struct {
	cookie *signedCookie
}

func (c *returnToCookie) write(w http.ResponseWriter, path string) error {
	return c.cookie.write(w, returnTo{Path: path})
}

func (c *returnToCookie) read(r *http.Request) (string, bool) {
	var v returnTo
	found, err := c.cookie.read(r, &v)
	if err != nil {
		logger.Req(r).Error(err)
	}

	return v.Path, found
}

func (c *returnToCookie) clear(w http.ResponseWriter) {
	c.cookie.clear(w)
}
