package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/pkg/errs"
)

// respondError translates a use-case failure into the uniform error body.
// Unrecognized errors become 500 with a generic message so internals never
// leak to callers.
func respondError(ctx echo.Context, err error) error {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrParcelNotFound),
		errors.Is(err, commands.ErrRiderNotFound),
		errors.Is(err, commands.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
