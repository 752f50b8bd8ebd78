package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Validation / input
	ErrorCodeValidation ErrorCode = "VALIDATION"
	ErrorCodeNoFields   ErrorCode = "NO_FIELDS"
	ErrorCodeForeignKey ErrorCode = "FOREIGN_KEY"

	// Authentication
	ErrorCodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	ErrorCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrorCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Resources
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeEmailConflict    ErrorCode = "EMAIL_CONFLICT"
	ErrorCodeUniqueConstraint ErrorCode = "UNIQUE_CONSTRAINT"

	// Uploads
	ErrorCodeNoFile          ErrorCode = "NO_FILE"
	ErrorCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
	ErrorCodeTooLarge        ErrorCode = "TOO_LARGE"
	ErrorCodeUploadFailed    ErrorCode = "UPLOAD_FAILED"

	// Throttling / server
	ErrorCodeRateLimited ErrorCode = "RATE_LIMITED"
	ErrorCodeServerError ErrorCode = "SERVER_ERROR"
)

// ErrorDetail is the body of the canonical error envelope.
type ErrorDetail struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the canonical error envelope: {"error": {...}}.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{Error: errorDetail}
}
