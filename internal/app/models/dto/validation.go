package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError translates a gin binding error into an ErrorDetail
// with field-level information when the error came from the validator.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	first := verrs[0]
	detail := NewErrorDetail(ErrorCodeValidationFailed, formatFieldError(first)).WithField(first.Field())
	if len(verrs) > 1 {
		rest := make([]string, 0, len(verrs)-1)
		for _, fe := range verrs[1:] {
			rest = append(rest, formatFieldError(fe))
		}
		detail = detail.WithDetails(rest)
	}
	return detail
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
