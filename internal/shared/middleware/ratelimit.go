package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"movie-catalog-backend/internal/shared/response"
	"movie-catalog-backend/internal/shared/utils"
	"movie-catalog-backend/pkg/cache"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// WindowLimiter counts requests per key in fixed windows shared through the
// cache, so every API instance sees the same budget.
type WindowLimiter struct {
	cache  cache.Cache
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewWindowLimiter(c cache.Cache, limit int, window time.Duration) *WindowLimiter {
	if window < time.Millisecond {
		window = time.Millisecond
	}
	return &WindowLimiter{cache: c, limit: int64(limit), window: window, now: time.Now}
}

func (l *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := l.now().UnixMilli() / l.window.Milliseconds()
	k := fmt.Sprintf("ratelimit:%s:%d", key, slot)

	n, err := l.cache.Increment(ctx, k)
	if err != nil {
		return true, err
	}
	if n == 1 {
		if err := l.cache.Expire(ctx, k, l.window); err != nil {
			return true, err
		}
	}
	return n <= l.limit, nil
}

// LocalLimiter keeps one token bucket per key in process memory, used when no
// shared cache is configured.
type LocalLimiter struct {
	buckets sync.Map // map[string]*localBucket
	every   rate.Limit
	burst   int
	now     func() time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	every := window / time.Duration(max(limit, 1))
	return &LocalLimiter{every: rate.Every(every), burst: limit, now: time.Now}
}

func (l *LocalLimiter) Allow(ctx context.Context, key string) (bool, error) {
	val, _ := l.buckets.LoadOrStore(key, &localBucket{limiter: rate.NewLimiter(l.every, l.burst)})
	b := val.(*localBucket)

	now := l.now()
	b.lastSeen.Store(now.UnixNano())
	return b.limiter.AllowN(now, 1), nil
}

// Sweep drops buckets unused since cutoff and reports how many went.
func (l *LocalLimiter) Sweep(cutoff time.Time) int {
	removed := 0
	l.buckets.Range(func(key, val any) bool {
		if val.(*localBucket).lastSeen.Load() < cutoff.UnixNano() {
			l.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps buckets idle for longer than interval until ctx is done.
func (l *LocalLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Sweep(l.now().Add(-interval)); n > 0 {
				log.Debug().Int("removed", n).Msg("[RateLimit] Swept idle buckets")
			}
		}
	}
}

// RateLimit rejects over-budget clients with 429. Limiter failures let the
// request through.
func RateLimit(l Limiter, window time.Duration) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()) + 1)

	return func(c *gin.Context) {
		ip := utils.ExtractClientIP(c)

		ok, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			log.Warn().
				Err(err).
				Str("ip", ip).
				Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if !ok {
			c.Header("Retry-After", retryAfter)
			response.TooManyRequests(c, "rate limit exceeded")
			return
		}

		c.Next()
	}
}
