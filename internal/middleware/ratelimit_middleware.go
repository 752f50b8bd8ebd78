package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/pkg/logger"
)

// Per-route limits. Credential endpoints are throttled hardest.
var (
	loginRate   = limiter.Rate{Period: time.Minute, Limit: 5}
	signupRate  = limiter.Rate{Period: 15 * time.Minute, Limit: 10}
	actionsRate = limiter.Rate{Period: 5 * time.Minute, Limit: 30}
)

// RateLimiters bundles the per-route limiter middlewares.
type RateLimiters struct {
	Login   gin.HandlerFunc
	Signup  gin.HandlerFunc
	Actions gin.HandlerFunc
}

func rateLimitedHandler(c *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests, slow down")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
}

func newLimiterMiddleware(rate limiter.Rate) gin.HandlerFunc {
	store := memory.NewStore()
	return mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(rateLimitedHandler),
	)
}

// NewRateLimiters builds in-memory, per-IP limiters. When disabled every
// limiter is a no-op so route wiring stays identical across environments.
func NewRateLimiters(enabled bool) *RateLimiters {
	if !enabled {
		logger.Warn().Msg("Rate limiting is disabled")
		noop := func(c *gin.Context) { c.Next() }
		return &RateLimiters{Login: noop, Signup: noop, Actions: noop}
	}

	return &RateLimiters{
		Login:   newLimiterMiddleware(loginRate),
		Signup:  newLimiterMiddleware(signupRate),
		Actions: newLimiterMiddleware(actionsRate),
	}
}
