package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func limiterRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func probe(t *testing.T, router *gin.Engine) int {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_InMemory(t *testing.T) {
	rl := NewRateLimiterWithConfig(nil, 3, time.Minute)
	router := limiterRouter(rl)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, probe(t, router))
	}
	require.Equal(t, http.StatusTooManyRequests, probe(t, router))

	rl.Reset()
	require.Equal(t, http.StatusOK, probe(t, router))
}

func TestRateLimiter_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiterWithConfig(client, 2, time.Minute)
	router := limiterRouter(rl)

	require.Equal(t, http.StatusOK, probe(t, router))
	require.Equal(t, http.StatusOK, probe(t, router))
	require.Equal(t, http.StatusTooManyRequests, probe(t, router))

	// A new window starts once the counter expires.
	server.FastForward(2 * time.Minute)
	require.Equal(t, http.StatusOK, probe(t, router))
}

func TestRateLimiter_RedisDownFailsOpen(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	rl := NewRateLimiterWithConfig(client, 1, time.Minute)
	router := limiterRouter(rl)

	require.Equal(t, http.StatusOK, probe(t, router))
	require.Equal(t, http.StatusOK, probe(t, router))
}
