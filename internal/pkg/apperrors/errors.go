package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrUniqueViolation  = errors.New("unique constraint violated")
	ErrForeignKey       = errors.New("referenced row does not exist")
	ErrNoFieldsToUpdate = errors.New("no fields provided to update")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenPayload       = errors.New("invalid token payload")
	ErrMissingBearer      = errors.New("authorization header must use bearer scheme")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already in use")
)

// Resource errors, one per table so handlers can report the right noun
var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrExperienceNotFound = errors.New("experience post not found")
	ErrQAPostNotFound     = errors.New("qa post not found")
	ErrGuideNotFound      = errors.New("survival guide not found")
)

// Upload errors
var (
	ErrFileRequired        = errors.New("file is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
)

// CustomError carries a sentinel plus request-specific context.
type CustomError struct {
	Err     error
	Message string
	Details interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError wraps field-level details into a validation failure.
func NewValidationError(message string, details interface{}) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: details,
	}
}

// Is returns whether target matches any of the errors in errList
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
