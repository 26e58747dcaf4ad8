package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/interconnect/backend/internal/app/models/dto"
)

func hit(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	router := gin.New()
	router.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1").Code)

	w := hit(router, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, dto.ErrorCodeRateLimited, decodeError(t, w).Error.Code)

	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.2").Code, "buckets are per client")
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, 1)
	router := gin.New()
	router.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for n := 0; n < 20; n++ {
		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1").Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	start := time.Now()
	limiter.allow("a", start)
	limiter.allow("b", start.Add(9*time.Minute))

	limiter.Cleanup(start.Add(11 * time.Minute))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.visitors, "a")
	assert.Contains(t, limiter.visitors, "b")
}
