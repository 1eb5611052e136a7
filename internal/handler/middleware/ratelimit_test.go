//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := newLimitedRouter(rl)

	assert.Equal(t, http.StatusNoContent, hit(r, "203.0.113.1").Code)
	assert.Equal(t, http.StatusNoContent, hit(r, "203.0.113.1").Code)

	limited := hit(r, "203.0.113.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Contains(t, limited.Body.String(), `"code":"RATE_LIMITED"`)

	// buckets are per client
	assert.Equal(t, http.StatusNoContent, hit(r, "203.0.113.2").Code)
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }
	r := newLimitedRouter(rl)

	hit(r, "203.0.113.1")
	now = now.Add(2 * time.Minute)
	hit(r, "203.0.113.2")
	require.Len(t, rl.visitors, 2)

	now = now.Add(90 * time.Second)
	rl.evictIdle()

	assert.NotContains(t, rl.visitors, "203.0.113.1")
	assert.Contains(t, rl.visitors, "203.0.113.2")
}
