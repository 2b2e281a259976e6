package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedRouter(config RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(config).RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func getFrom(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitExhaustsBurst(t *testing.T) {
	r := setupRateLimitedRouter(RateLimiterConfig{Rate: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "10.0.0.1:1234"))
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	r := setupRateLimitedRouter(RateLimiterConfig{Rate: 0.001, Burst: 1})

	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "10.0.0.1:5678"))

	// a different client still has its own full bucket
	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.2:1234"))
}
