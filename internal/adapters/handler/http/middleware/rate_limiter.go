package middleware

import (
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/comitanigiacomo/lifeboard/internal/logging"
	"github.com/comitanigiacomo/lifeboard/internal/telemetry"
)

func setRateHeaders(c *gin.Context, limit int, remaining int64, reset time.Time) {
	c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
	c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, remaining)))
	c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", reset.Unix()))
}

func reject(c *gin.Context, retry time.Duration) {
	telemetry.RateLimitedTotal.Inc()
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"status":     "error",
		"message":    "Too many requests. Slow down!",
		"retry_in_s": int(math.Ceil(retry.Seconds())),
	})
}

// RateLimiterMiddleware counts requests per client IP in fixed redis windows.
// Redis errors let the request through.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	log := logging.Component("ratelimit")

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("Redis error, rate limiter skipped")
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Redis expire error, deleting key")
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		setRateHeaders(c, limit, int64(limit)-count, time.Now().Add(ttl))

		if count > int64(limit) {
			reject(c, ttl)
			return
		}

		c.Next()
	}
}

// LocalRateLimiter is the in-process fallback used when redis is not
// configured: one token bucket per client IP refilling limit tokens per
// window. A client idle for a whole window has a full bucket again, so its
// limiter is dropped on the next sweep.
type LocalRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     int
	every     rate.Limit
	idle      time.Duration
	lastSweep time.Time
}

type clientLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewLocalRateLimiter(limit int, window time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{
		limiters:  make(map[string]*clientLimiter),
		limit:     limit,
		every:     rate.Limit(float64(limit) / window.Seconds()),
		idle:      window,
		lastSweep: time.Now(),
	}
}

func (l *LocalRateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	cl, ok := l.limiters[key]
	if !ok {
		cl = &clientLimiter{lim: rate.NewLimiter(l.every, l.limit)}
		l.limiters[key] = cl
	}
	cl.seen = now
	return cl.lim
}

// sweep must be called with mu held.
func (l *LocalRateLimiter) sweep(now time.Time) {
	for key, cl := range l.limiters {
		if now.Sub(cl.seen) >= l.idle {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func (l *LocalRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		lim := l.limiter(c.ClientIP(), now)

		r := lim.ReserveN(now, 1)
		delay := r.DelayFrom(now)
		if delay > 0 {
			r.CancelAt(now)
			setRateHeaders(c, l.limit, 0, now.Add(delay))
			reject(c, delay)
			return
		}

		setRateHeaders(c, l.limit, int64(lim.TokensAt(now)), now.Add(time.Duration(float64(time.Second)/float64(l.every))))
		c.Next()
	}
}
