// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"maps"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/campus/internal/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrInvalidID is returned when a path parameter is not a valid identifier.
var ErrInvalidID = apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid id")

// OK writes {ok: true} merged with payload.
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"ok": true}
	maps.Copy(body, payload)
	body["ok"] = true
	c.JSON(status, body)
}

// HandleErrorGin maps error kinds to HTTP status codes and writes the error body.
// Errors built with apperrors.WithMessage expose their message; anything else that
// is not a known kind is treated as an internal failure.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, message := statusFor(err)

	if logger != nil {
		if statusCode == http.StatusInternalServerError {
			logger.Error("request failed",
				slog.Int("status_code", statusCode),
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err),
			)
		} else {
			logger.Debug("request rejected",
				slog.Int("status_code", statusCode),
				slog.String("error", message),
			)
		}
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

func statusFor(err error) (int, string) {
	var statusCode int
	var fallback string

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode, fallback = http.StatusNotFound, "not found"
	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode, fallback = http.StatusConflict, "conflict"
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode, fallback = http.StatusBadRequest, "invalid input"
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode, fallback = http.StatusUnauthorized, "authentication required"
	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode, fallback = http.StatusForbidden, "forbidden"
	case apperrors.Is(err, apperrors.ErrRateLimited):
		statusCode, fallback = http.StatusTooManyRequests, "rate limit exceeded"
	default:
		// Internal details are never exposed.
		return http.StatusInternalServerError, "internal server error"
	}

	if msg, ok := apperrors.PublicMessage(err); ok {
		return statusCode, msg
	}
	return statusCode, fallback
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

// HandleValidationErrorGin writes a 400 Bad Request response carrying the validation message.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Debug("validation failed", slog.Any("error", err))
	}

	message := err.Error()
	if msg, ok := apperrors.PublicMessage(err); ok {
		message = msg
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// ParseUUIDParam reads a UUID path parameter.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
