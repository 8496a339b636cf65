package middleware

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// DefaultMaxTrackedClients bounds the number of per-client limiters kept.
const DefaultMaxTrackedClients = 10000

// ClientLimiter hands out one token bucket per client key. The least recently
// seen clients are forgotten once the tracking limit is reached.
type ClientLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *lru.Cache
	mu       sync.Mutex
}

// NewClientLimiter creates a limiter allowing rps requests per second with
// the given burst for each of at most maxClients clients.
func NewClientLimiter(rps float64, burst, maxClients int) (*ClientLimiter, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("invalid rate limit: %v rps, burst %d", rps, burst)
	}
	cache, err := lru.New(maxClients)
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter store: %w", err)
	}
	return &ClientLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: cache,
	}, nil
}

// Allow reports whether the client may make a request now.
func (l *ClientLimiter) Allow(key string) bool {
	return l.limiterFor(key).Allow()
}

// Tracked returns how many clients currently hold a limiter.
func (l *ClientLimiter) Tracked() int {
	return l.limiters.Len()
}

func (l *ClientLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(key); ok {
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(key, limiter)
	return limiter
}

// RateLimit rejects requests over the per-client budget with 429.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			AbortWithError(c, domain.NewAPIError(domain.CodeRateLimited, "too many requests"))
			return
		}
		c.Next()
	}
}
