package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freemodule/backend/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, exp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test.app",
	})

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router, jwtService
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCodeOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	w := doProtected(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCodeOf(t, w))
}

func TestJWTAuth_NonBearerScheme(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	token, err := jwtService.GenerateToken(7, "a@ustp.edu.ph")
	require.NoError(t, err)

	// A valid token without the Bearer prefix is still rejected.
	w := doProtected(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCodeOf(t, w))
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, -time.Minute)

	token, err := jwtService.GenerateToken(7, "a@ustp.edu.ph")
	require.NoError(t, err)

	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "TOKEN_EXPIRED", errorCodeOf(t, w))
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	w := doProtected(router, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCodeOf(t, w))
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)

	token, err := jwtService.GenerateToken(42, "a@ustp.edu.ph")
	require.NoError(t, err)

	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID int64 `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.UserID)
}
