package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the canonical error envelope and
// writes the response. Unrecognized errors are logged and reported as a bare
// 500 so internals never leak to the client.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	var details interface{}
	message := err.Error()
	if errors.As(err, &customErr) {
		details = customErr.Details
	}

	var status int
	var code dto.ErrorCode

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidation
	case errors.Is(err, apperrors.ErrNoFieldsToUpdate):
		status, code = http.StatusBadRequest, dto.ErrorCodeNoFields
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired):
		status, code = http.StatusUnauthorized, dto.ErrorCodeTokenExpired
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenPayload, apperrors.ErrMissingBearer):
		status, code = http.StatusUnauthorized, dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		status, code = http.StatusConflict, dto.ErrorCodeEmailConflict
	case errors.Is(err, apperrors.ErrUniqueViolation):
		status, code = http.StatusConflict, dto.ErrorCodeUniqueConstraint
	case errors.Is(err, apperrors.ErrForeignKey):
		status, code = http.StatusBadRequest, dto.ErrorCodeForeignKey
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound, apperrors.ErrNoteNotFound, apperrors.ErrCommentNotFound,
		apperrors.ErrCourseNotFound, apperrors.ErrSubjectNotFound, apperrors.ErrExperienceNotFound,
		apperrors.ErrQAPostNotFound, apperrors.ErrGuideNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeNotFound
	case errors.Is(err, apperrors.ErrFileRequired):
		status, code = http.StatusBadRequest, dto.ErrorCodeNoFile
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		status, code = http.StatusBadRequest, dto.ErrorCodeUnsupportedType
	case errors.Is(err, apperrors.ErrFileTooLarge):
		status, code = http.StatusBadRequest, dto.ErrorCodeTooLarge
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error in request")
		status, code, message = http.StatusInternalServerError, dto.ErrorCodeServerError, "An unexpected error occurred"
		details = nil
	}

	errorDetail := dto.NewErrorDetail(code, message)
	if details != nil {
		errorDetail = errorDetail.WithDetails(details)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

// ErrorHandlerMiddleware recovers panics into the canonical 500 envelope.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("Panic recovered in request")
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeServerError, "An unexpected error occurred")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			}
		}()
		c.Next()
	}
}
