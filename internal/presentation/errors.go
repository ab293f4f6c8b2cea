package presentation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"petstar/internal/domain/apperr"
	"petstar/internal/domain/dto"
	"petstar/pkg/logger"
)

const internalErrorMessage = "internal server error"

// StatusOf maps an error onto the HTTP status it is reported with.
func StatusOf(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrDurationExtract):
		return http.StatusUnprocessableEntity
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// ErrorJSON writes the error body. Only caller facing text reaches the body; the full cause is
// logged. Server side failures are reported generically.
func ErrorJSON(c echo.Context, err error) error {
	status := StatusOf(err)
	message := publicMessage(err)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
		message = internalErrorMessage
	} else if message != err.Error() {
		logger.Debug("request rejected", "method", c.Request().Method, "path", c.Path(),
			"status", status, "err", err)
	}

	c.Response().Header().Set(ReasonTag, message)

	return c.JSON(status, dto.ErrorResponse{
		Message: message,
		Status:  status,
	})
}

func publicMessage(err error) string {
	if message, ok := apperr.PublicMessage(err); ok {
		return message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			return m
		}

		return http.StatusText(httpErr.Code)
	}

	return internalErrorMessage
}

// HTTPErrorHandler renders errors escaping handlers and echo middlewares in the same shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if writeErr := ErrorJSON(c, err); writeErr != nil {
		logger.Error("failed to write error response", "err", writeErr)
	}
}
