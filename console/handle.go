package console

import (
	"net/http"
	"strings"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
)

// handle returns a handler that logs any error coming from our custom handlers
func (s *Server) handle(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			if httpio.CauseIsError(err) {
				logger.Req(r).Error(err)
			} else {
				logger.Req(r).Infof("['%s']", strings.Join(httpio.Messages(err), "', '"))
			}
		}
	})
}

// apiMessage converts an error from the console API into a client message.
// The API's own detail wins over fallback.
func apiMessage(err error, fallback string) error {
	msg := apiclient.UserMessage(err, fallback)

	switch apiclient.StatusCode(err) {
	case http.StatusBadRequest:
		return httpio.NewBadRequestMessageWithError(err, msg)
	case http.StatusUnauthorized:
		return httpio.NewUnauthorizedMessageWithError(err, msg)
	case http.StatusForbidden:
		return httpio.NewForbiddenMessage(msg)
	case http.StatusNotFound:
		return httpio.NewNotFoundMessage(msg)
	}

	return httpio.NewInternalServerErrorMessageWithError(err, msg)
}
