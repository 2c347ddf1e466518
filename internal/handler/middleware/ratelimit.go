package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Idle limiters are dropped once the table grows past this size.
const (
	limiterSweepThreshold = 10_000
	limiterIdleAfter      = 10 * time.Minute
)

var errRateLimited = errors.New("rate limit exceeded")

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller. Authenticated callers are
// keyed by user id, anonymous ones by client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	every    rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := cfg.PerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

func (r *RateLimiter) getLimiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if len(r.limiters) > limiterSweepThreshold {
		for k, e := range r.limiters {
			if now.Sub(e.lastSeen) > limiterIdleAfter {
				delete(r.limiters, k)
			}
		}
	}

	e, exists := r.limiters[key]
	if !exists {
		e = &limiterEntry{limiter: rate.NewLimiter(r.every, r.burst)}
		r.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id, ok := GetUserID(c); ok {
			key = "user:" + id.String()
		}
		if !r.getLimiter(key).Allow() {
			slog.Warn("Rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests, try again later", nil)
			return
		}
		c.Next()
	}
}
