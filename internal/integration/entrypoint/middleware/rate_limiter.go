// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/simrs-budget/backend/internal/domain/error"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/dto"
)

// window tracks the attempts one client has made in its current window.
type window struct {
	count int
	until time.Time
}

// RateLimiter caps the number of requests per client IP inside a fixed
// window. It guards the login endpoint against credential stuffing; the
// limits come from configuration so tests and deployments tune them
// without touching the environment.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*window
	limit    int
	interval time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per interval
// for each client IP.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*window),
		limit:    limit,
		interval: interval,
	}
}

// Middleware returns a gin handler that rejects over-limit clients with
// HTTP 429 and the rate-limited error code.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key, time.Now()) {
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

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.visitors[key]
	if !ok || now.After(w.until) {
		rl.visitors[key] = &window{count: 1, until: now.Add(rl.interval)}
		return true
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// Cleanup drops expired windows. The login endpoint sees few distinct
// clients, so a periodic sweep is enough to keep the map bounded.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, w := range rl.visitors {
		if now.After(w.until) {
			delete(rl.visitors, key)
		}
	}
}
