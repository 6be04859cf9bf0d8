package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// requests carry distinct RemoteAddrs so each test gets its own bucket
// (limiterStore is package state keyed by client IP).

func doRequest(r *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := doRequest(r, "/ok", "10.0.0.1:1111")
	w2 := doRequest(r, "/ok", "10.0.0.1:1111")
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := doRequest(r, "/limited", "10.0.0.2:1111")
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	w2 := doRequest(r, "/limited", "10.0.0.2:1111")
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// wait long enough to replenish one token
	time.Sleep(2100 * time.Millisecond)
	w3 := doRequest(r, "/limited", "10.0.0.2:1111")
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_KeysByClientIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/u", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := doRequest(r, "/u", "10.0.0.3:1111")
	require.Equal(t, http.StatusOK, w1.Code)

	// same IP exhausted its bucket, a different IP is unaffected
	w2 := doRequest(r, "/u", "10.0.0.3:1111")
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	w3 := doRequest(r, "/u", "10.0.0.4:1111")
	require.Equal(t, http.StatusOK, w3.Code)
}
