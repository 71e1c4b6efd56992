package apperrors

import "errors"

// The error taxonomy has three families. Validation errors cover malformed or
// missing fields and duplicate unique keys, reference errors cover missing
// foreign-key targets, and configuration errors cover absent infrastructure
// such as permission groups. Handlers map each family to an HTTP status.
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidSemester  = errors.New("semester must be between 1 and 8")
	ErrInvalidTerm      = errors.New("term must be mid-term or end-term")
	ErrBadRequest       = errors.New("bad request")

	// Duplicate unique keys (validation family)
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrCourseCodeExists      = errors.New("course with this code already exists")
	ErrAllotmentExists       = errors.New("course already has a semester allotment")
	ErrBookmarkAlreadyExists = errors.New("course already bookmarked")

	// Reference errors
	ErrReferenceNotFound = errors.New("referenced resource not found")

	// Configuration errors
	ErrGroupNotConfigured = errors.New("permission group is not provisioned")
)

// Reference errors for specific targets. All wrap ErrReferenceNotFound so
// callers can match either the concrete error or the family.
var (
	ErrUserNotFound        = newReferenceError("user not found")
	ErrStudentNotFound     = newReferenceError("student not found")
	ErrDepartmentNotFound  = newReferenceError("department not found")
	ErrCourseNotFound      = newReferenceError("course not found")
	ErrAllotmentNotFound   = newReferenceError("course allotment not found")
	ErrContentNotFound     = newReferenceError("content not found")
	ErrBookmarkNotFound    = newReferenceError("bookmark not found")
	ErrContributorNotFound = newReferenceError("contributor not found")
	ErrStatNotFound        = newReferenceError("stat not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Department errors
var (
	ErrDepartmentHasRelations = errors.New("department has associated courses and cannot be deleted")
)

func newReferenceError(message string) error {
	return &CustomError{Err: ErrReferenceNotFound, Message: message}
}

// IsValidation reports whether the error belongs to the validation family.
func IsValidation(err error) bool {
	return Is(err, ErrValidationFailed,
		ErrInvalidEmail, ErrInvalidPassword, ErrInvalidSemester, ErrInvalidTerm,
		ErrEmailAlreadyExists, ErrCourseCodeExists,
		ErrAllotmentExists, ErrBookmarkAlreadyExists)
}

// Is returns whether err matches target or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation-family error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewReferenceError creates a reference-family error with a message.
func NewReferenceError(message string) error {
	return &CustomError{Err: ErrReferenceNotFound, Message: message}
}

// NewConfigurationError creates a configuration-family error with a message.
func NewConfigurationError(message string) error {
	return &CustomError{Err: ErrGroupNotConfigured, Message: message}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
