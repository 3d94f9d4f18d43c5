package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per key
type RateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows reqsPerWindow requests per key every window
func NewRateLimiter(reqsPerWindow int, window time.Duration) *RateLimiter {
	if reqsPerWindow < 1 {
		reqsPerWindow = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(window / time.Duration(reqsPerWindow)),
		burst:    reqsPerWindow,
		idleTTL:  10 * window,
		now:      time.Now,
	}
}

// Allow reports whether key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	now := rl.now()
	entry, ok := rl.limiters[key]
	if !ok {
		rl.evictIdle(now)
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = now
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// evictIdle drops buckets nobody used for a while; callers hold mu
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastAccess) > rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
}

// KeyFunc picks the rate-limit key of a request; an empty key skips limiting
type KeyFunc func(c *gin.Context) string

// ByClientIP keys requests by client address
func ByClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// RateLimit rejects requests over the limit with 429
func RateLimit(rl *RateLimiter, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k != "" && !rl.Allow(k) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
