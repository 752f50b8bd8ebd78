package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/freemodule/backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/notes/upload", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError_StatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"oversized upload is a bad request", apperrors.ErrFileTooLarge, http.StatusBadRequest, "TOO_LARGE"},
		{"missing file", apperrors.ErrFileRequired, http.StatusBadRequest, "NO_FILE"},
		{"unsupported type", apperrors.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_TYPE"},
		{"missing note", apperrors.ErrNoteNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "EMAIL_CONFLICT"},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, errorCodeOf(t, w))
		})
	}
}

func TestHandleAPIError_UnknownErrorIsSanitized(t *testing.T) {
	w := handleError(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SERVER_ERROR", errorCodeOf(t, w))
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
