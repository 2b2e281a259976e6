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

func setupTimeoutRouter(d time.Duration, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(TimeoutConfig{Duration: d}))
	r.GET("/slow", handler)
	return r
}

func TestTimeoutWritesGatewayTimeout(t *testing.T) {
	release := make(chan struct{})
	handlerDone := make(chan struct{})
	r := setupTimeoutRouter(20*time.Millisecond, func(c *gin.Context) {
		<-release
		c.JSON(http.StatusOK, gin.H{"late": true})
		close(handlerDone)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusGatewayTimeout, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "request timeout")

	// Let the abandoned handler finish; its write must not reach the client.
	close(release)
	select {
	case <-handlerDone:
	case <-time.After(time.Second):
		t.Fatal("handler never finished")
	}
	assert.Equal(t, body, w.Body.String())
	assert.NotContains(t, w.Body.String(), "late")
}

func TestTimeoutPassesFastRequests(t *testing.T) {
	r := setupTimeoutRouter(time.Second, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
