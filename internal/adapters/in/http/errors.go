package http

import (
	"errors"
	"net/http"

	"parcelmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeError maps an application error onto the HTTP surface. Classification
// goes through errors.Is against the errs sentinels, so wrapped causes keep
// their kind.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	kind := "internal"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrForbidden):
		code, kind = http.StatusForbidden, "forbidden"
	case errors.Is(err, errs.ErrInvalidState):
		code, kind = http.StatusConflict, "invalid_state"
	case errors.Is(err, errs.ErrConflict):
		code, kind = http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code, kind = http.StatusBadRequest, "validation"
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal detail stays in the logs.
		message = "internal error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Kind: kind, Message: message})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Kind:    "validation",
		Message: message,
	})
}
