// ratelimit.go - Per-client rate limiting for the credential endpoints

package middleware // Declares the package name

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10000            // Sweep threshold for the client map
	clientIdleTimeout = 15 * time.Minute // Idle clients past this are dropped
)

// clientEntry pairs a client's bucket with its last activity.
type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client key (remote IP).
// When the map grows past maxClients, entries idle longer than idleAfter
// are swept so the map stays bounded for the life of the process.
type clientLimiters struct {
	limiters   map[string]*clientEntry
	mu         sync.Mutex
	rps        rate.Limit
	burst      int
	maxClients int
	idleAfter  time.Duration
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()

	if len(cl.limiters) >= cl.maxClients {
		for k, entry := range cl.limiters {
			if now.Sub(entry.lastSeen) > cl.idleAfter {
				delete(cl.limiters, k)
			}
		}
	}

	entry, exists := cl.limiters[key]
	if !exists {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// RateLimit - Returns a Gin middleware limiting each client IP to rps
// sustained requests with the given burst. Exceeding the limit gets 429.
func RateLimit(rps, burst int) gin.HandlerFunc {
	cl := &clientLimiters{
		limiters:   make(map[string]*clientEntry),
		rps:        rate.Limit(rps),
		burst:      burst,
		maxClients: maxTrackedClients,
		idleAfter:  clientIdleTimeout,
	}

	return func(c *gin.Context) {
		if !cl.get(c.ClientIP()).Allow() {
			abortWithError(c, http.StatusTooManyRequests, "Too many requests. Try again later.")
			return
		}
		c.Next()
	}
}
