package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionInvalid     = errors.New("session invalid")
	ErrTokenExpired       = errors.New("token expired")

	// Authorization errors
	ErrWrongRole        = errors.New("wrong role for this action")
	ErrPermissionDenied = errors.New("permission denied")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Upstream errors
	ErrUpstreamUnreachable = errors.New("upstream request never completed")
)

// APIError carries the uniform error contract of the upstream client: every
// failed upstream call resolves to a message and the HTTP status it came with.
type APIError struct {
	Message string
	Status  int
}

// Error implements error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "upstream request failed"
}

// Is maps upstream statuses onto the sentinel taxonomy so callers can use
// errors.Is without inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrInvalidCredentials:
		return e.Status == 401
	case ErrPermissionDenied:
		return e.Status == 403
	case ErrResourceNotFound:
		return e.Status == 404
	case ErrBadRequest:
		return e.Status == 400
	}
	return false
}

// NewAPIError creates an APIError from an upstream response
func NewAPIError(status int, message string) *APIError {
	return &APIError{Message: message, Status: status}
}

// CustomError wraps a sentinel error with a user-facing message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a user-facing message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
