package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseLimitOffset extracts limit/offset query parameters, applying the
// defaults and clamping limit to MaxLimit. Invalid values fall back to the
// defaults rather than erroring, matching the list endpoints' contract.
func ParseLimitOffset(c *gin.Context) (limit, offset int) {
	limit = DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset = 0
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}

	return limit, offset
}

// ClampLimitOffset normalizes already-parsed values, for callers that do not
// go through query binding.
func ClampLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
