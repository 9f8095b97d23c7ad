package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kavia-common/notes-backend/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Note errors
	case errors.Is(err, domain.ErrNoteNotFound):
		return http.StatusNotFound, "NOTE_NOT_FOUND", message

	// Validation errors
	case errors.Is(err, domain.ErrEmptyTitle):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrTitleTooLong):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrEmptyContent):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Infrastructure errors: the database being down must not masquerade
	// as an application bug.
	case errors.Is(err, domain.ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database unavailable"

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
