package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/khata-ledger/backend/internal/domain/error"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 10
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter enforces a fixed-window per-IP limit on sensitive public
// endpoints (PIN unlock, portal statements). When a redis client is
// configured the window counters live there so limits hold across
// replicas; otherwise an in-process map is used.
type RateLimiter struct {
	redis          *redis.Client
	maxAttempts    int
	windowDuration time.Duration

	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

// rateLimitEntry tracks in-memory rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// NewRateLimiter creates a rate limiter with default settings. A nil redis
// client selects the in-memory fallback.
func NewRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(redisClient, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(redisClient *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:          redisClient,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		entries:        make(map[string]*rateLimitEntry),
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.redis != nil {
		return rl.allowRedis(ctx, key)
	}
	return rl.allowMemory(key)
}

// allowRedis counts the request with INCR and lets the key expire with the
// window. Redis outages fail open, the limiter is protection, not a gate.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) bool {
	redisKey := "ratelimit:" + key

	count, err := rl.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("rate limiter redis unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := rl.redis.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("failed to set rate limit window expiry", "error", err)
		}
	}
	return count <= int64(rl.maxAttempts)
}

func (rl *RateLimiter) allowMemory(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}
	return false
}

// Reset clears the in-memory limiter state. Redis-backed state expires on
// its own.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}
