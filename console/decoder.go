package console

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"
)

// messages maps validation tags to client messages.
var messages = map[string]string{
	"required": "The field '%s' is required.",
	"email":    "The field '%s' must be a valid email address.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
	"eqfield":  "The field '%s' must match '%s'.",
	"oneof":    "The field '%s' must be one of %s.",
}

// fieldMessages override messages for a field and tag.
var fieldMessages = map[string]string{
	"new_password.min":         "Password must be at least 8 characters long",
	"confirm_password.eqfield": "Passwords do not match",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

type decoder[T any] struct {
	validate *validator.Validate
}

func newDecoder[T any](v *validator.Validate) *decoder[T] {
	return &decoder[T]{validate: v}
}

// Decode reads a JSON body into a T and validates it.
func (d *decoder[T]) Decode(r *http.Request) (*T, error) {
	req := new(T)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, httpio.NewBadRequestMessageWithError(errors.Wrap(err, "json.Decoder.Decode()"), "invalid request body")
	}

	if err := d.validate.Struct(req); err != nil {
		return nil, httpio.NewBadRequestMessageWithError(err, validationMessage(err))
	}

	return req, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	return fieldErrorMessage(verrs[0])
}

func fieldErrorMessage(e validator.FieldError) string {
	if msg, ok := fieldMessages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}

	msg, ok := messages[e.Tag()]
	if !ok {
		return fmt.Sprintf("Field '%s' is invalid: %s", e.Field(), e.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, e.Field(), e.Param())
	}

	return fmt.Sprintf(msg, e.Field())
}
