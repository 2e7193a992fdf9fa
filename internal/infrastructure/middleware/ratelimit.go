package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/marcos-nsantos/pixforge/internal/infrastructure/config"
	"github.com/marcos-nsantos/pixforge/internal/pkg/httputil"
)

const limiterIdleTTL = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per client IP token bucket.
type RateLimiter struct {
	limit          rate.Limit
	burst          int
	requestsPerMin int
	now            func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMin := max(cfg.RequestsPerMin, 1)
	return &RateLimiter{
		limit:          rate.Every(time.Minute / time.Duration(perMin)),
		burst:          max(cfg.BurstSize, 1),
		requestsPerMin: perMin,
		now:            time.Now,
		clients:        make(map[string]*clientLimiter),
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requestsPerMin))
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error:     "too many requests, please try again later",
				Code:      "RATE_LIMITED",
				RequestID: httputil.GetRequestID(c),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for k, cl := range rl.clients {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(rl.clients, k)
		}
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}
