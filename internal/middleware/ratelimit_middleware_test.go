package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(t *testing.T, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func postLogin(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAfterWindowExhausted(t *testing.T) {
	limiters := NewRateLimiters(true)
	router := newLimitedRouter(t, limiters.Login)

	for i := 0; i < 5; i++ {
		w := postLogin(router)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := postLogin(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMITED", errorCodeOf(t, w))
}

func TestRateLimiter_DisabledIsNoOp(t *testing.T) {
	limiters := NewRateLimiters(false)
	router := newLimitedRouter(t, limiters.Login)

	for i := 0; i < 20; i++ {
		w := postLogin(router)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
