package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"workshop/internal/generated/servers"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusCode maps domain errors to HTTP status codes.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error returned by a handler as servers.Error.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := StatusCode(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
