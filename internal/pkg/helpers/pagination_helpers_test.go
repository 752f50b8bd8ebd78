package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/notes?"+query, nil)
	return c
}

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, 0},
		{"explicit values", "limit=5&offset=40", 5, 40},
		{"limit clamped to max", "limit=500", MaxLimit, 0},
		{"invalid limit falls back", "limit=abc", DefaultLimit, 0},
		{"zero limit falls back", "limit=0", DefaultLimit, 0},
		{"negative offset falls back", "offset=-3", DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ParseLimitOffset(ctxWithQuery(tt.query))
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestClampLimitOffset(t *testing.T) {
	limit, offset := ClampLimitOffset(0, -1)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, 0, offset)

	limit, offset = ClampLimitOffset(1000, 10)
	assert.Equal(t, MaxLimit, limit)
	assert.Equal(t, 10, offset)

	limit, offset = ClampLimitOffset(30, 60)
	assert.Equal(t, 30, limit)
	assert.Equal(t, 60, offset)
}
