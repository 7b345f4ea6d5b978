package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/pkg"
)

// RateLimitConfig controls the per-client rate limiter.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// clientLimiter pairs a token bucket with its last-seen time so idle
// entries can be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a middleware enforcing a token-bucket limit per client
// IP. Requests over the limit receive 429 with the standard envelope.
// Idle client entries are evicted lazily to bound memory.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	const idleEviction = 3 * time.Minute

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		entry, ok := clients[ip]
		if !ok {
			entry = &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
			}
			clients[ip] = entry

			// Piggyback eviction on new-client arrivals.
			for key, cl := range clients {
				if now.Sub(cl.lastSeen) > idleEviction {
					delete(clients, key)
				}
			}
		}
		entry.lastSeen = now
		allowed := entry.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.Abort()
			pkg.ErrorWithStatus(c, http.StatusTooManyRequests,
				domain.CodeRateLimited, "rate limit exceeded")
			return
		}

		c.Next()
	}
}
