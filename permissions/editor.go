package permissions

import (
	"context"
	"fmt"

	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/consolesession/permissions"

// Mode selects between creating and editing an account.
type Mode int

const (
	// Create adds a new account.
	Create Mode = iota
	// Edit changes an existing account.
	Edit
)

// SaveRequest is one submission of the user form.
type SaveRequest struct {
	Mode   Mode
	UserID int64
	User   sessioninfo.UserFields
	Matrix Matrix
}

// SaveResult is the outcome of a complete save. Password is only set on
// create and is shown to the operator once.
type SaveResult struct {
	User               *sessioninfo.User
	Password           string
	PermissionsWritten bool
}

// PartialSaveError reports that the account was written but its permissions
// were not. The account write is not rolled back.
type PartialSaveError struct {
	User     *sessioninfo.User
	Password string
	Err      error
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("user %d saved but permissions were not: %v", e.User.ID, e.Err)
}

func (e *PartialSaveError) Unwrap() error {
	return e.Err
}

// Editor loads and saves accounts together with their permission matrix.
type Editor struct {
	api      API
	validate *validator.Validate
}

// NewEditor returns an Editor backed by api.
func NewEditor(api API) *Editor {
	return &Editor{
		api:      api,
		validate: validator.New(),
	}
}

// Load returns the matrix of target. Superusers and new accounts get an
// empty matrix. A failed fetch is logged and yields an empty matrix.
func (e *Editor) Load(ctx context.Context, target *sessioninfo.User) Matrix {
	ctx, span := otel.Tracer(name).Start(ctx, "Editor.Load()")
	defer span.End()

	if target == nil || target.IsSuperuser {
		return Initialize()
	}

	rows, err := e.api.UserPermissions(ctx, target.ID)
	if err != nil {
		logger.FromCtx(ctx).Error(errors.Wrapf(err, "failed to load permissions of user %d", target.ID))

		return Initialize()
	}

	return Normalize(rows)
}

// Save writes the account and then, for regular users only, replaces its
// permissions with every row of the matrix. The two writes are sequential.
func (e *Editor) Save(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Editor.Save()")
	defer span.End()

	if err := e.validate.Struct(req.User); err != nil {
		return nil, errors.Wrap(err, "validator.Validate.Struct()")
	}

	res := &SaveResult{}
	switch req.Mode {
	case Create:
		created, err := e.api.CreateUser(ctx, req.User)
		if err != nil {
			return nil, errors.Wrap(err, "API.CreateUser()")
		}
		res.User = &created.User
		res.Password = created.Password
	case Edit:
		updated, err := e.api.UpdateUser(ctx, req.UserID, req.User)
		if err != nil {
			return nil, errors.Wrap(err, "API.UpdateUser()")
		}
		if updated.ID == 0 {
			updated.ID = req.UserID
		}
		res.User = updated
	default:
		return nil, errors.Newf("unknown save mode %d", req.Mode)
	}

	if req.User.IsSuperuser {
		return res, nil
	}

	if err := e.api.UpdateUserPermissions(ctx, res.User.ID, req.Matrix.Permissions()); err != nil {
		return nil, &PartialSaveError{User: res.User, Password: res.Password, Err: err}
	}
	res.PermissionsWritten = true

	return res, nil
}

// ValidationErrors returns the field errors of err, if it failed validation.
func ValidationErrors(err error) (validator.ValidationErrors, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}

	return nil, false
}
