package domain

import (
	"errors"
	"fmt"
)

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskModified  = errors.New("task was modified concurrently")
	ErrStateConflict = errors.New("operation invalid for current task state")

	// Permission errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAssignee      = errors.New("not task assignee")

	// Actor errors
	ErrActorNotFound      = errors.New("actor not found")
	ErrActorDisabled      = errors.New("account is disabled")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid authentication token")

	// Referenced entity errors
	ErrDepartmentNotFound = errors.New("department not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrScanJobNotFound    = errors.New("scan job not found")

	// Validation errors
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidPriority   = errors.New("invalid task priority")
	ErrInvalidSubmission = errors.New("invalid submission status")
	ErrInvalidRole       = errors.New("invalid role")
)

// ValidationError reports a field-level validation failure. It aborts the
// whole operation before any mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PermissionError reports a capability denial for a (module, action) pair.
type PermissionError struct {
	Module Module
	Action Action
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s/%s", e.Module, e.Action)
}

// Is makes PermissionError match ErrPermissionDenied in errors.Is chains.
func (e *PermissionError) Is(target error) bool {
	return target == ErrPermissionDenied
}
