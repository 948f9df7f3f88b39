package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/docnhanh/newsdesk/internal/domain"
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

	var verr *domain.ValidationError

	switch {
	// Authentication errors
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", message
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", message
	case errors.Is(err, domain.ErrActorDisabled):
		return http.StatusUnauthorized, "ACCOUNT_DISABLED", message

	// Permission errors
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, "INSUFFICIENT_ACCESS", message
	case errors.Is(err, domain.ErrNotAssignee):
		return http.StatusForbidden, "NOT_ASSIGNEE", message

	// Not found
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", message
	case errors.Is(err, domain.ErrActorNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", message
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return http.StatusNotFound, "DEPARTMENT_NOT_FOUND", message
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound, "ARTICLE_NOT_FOUND", message
	case errors.Is(err, domain.ErrScanJobNotFound):
		return http.StatusNotFound, "SCAN_NOT_FOUND", message

	// State conflicts
	case errors.Is(err, domain.ErrStateConflict):
		return http.StatusConflict, "STATE_CONFLICT", message
	case errors.Is(err, domain.ErrTaskModified):
		return http.StatusConflict, "TASK_MODIFIED", message

	// Validation errors
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidSubmission),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
