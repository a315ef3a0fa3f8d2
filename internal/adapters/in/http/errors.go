package http

import (
	"errors"
	"net/http"

	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the application error taxonomy onto HTTP status codes:
// missing objects are 404, invalid input is 400, state and uniqueness
// conflicts are 409, and everything else (including missing reference
// configuration) is a 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrStateConflict), errors.Is(err, errs.ErrUniquenessConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
