package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client tracks one caller's request count inside the current window.
type client struct {
	lastSeen time.Time
	count    int
}

// In-memory store for rate limiting. For multi-instance deployments a
// shared store would be needed; a single batch-adjacent API instance
// does not warrant one.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 60
	rateLimiterLock sync.Mutex
)

// RateLimiter limits the number of requests per client IP.
//
// Behavior:
//   - Allows up to `limit` requests per `window` (default: 60 per minute).
//   - Identifies clients by their IP address.
//   - If the limit is exceeded, returns HTTP 429 Too Many Requests.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.lastSeen) > window {
			cl = &client{lastSeen: now, count: 1}
			clients[ip] = cl
		} else {
			cl.count++
			cl.lastSeen = now
		}
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
