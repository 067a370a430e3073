package middleware

import (
	"sync"
	"time"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultLimiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter hands out one token bucket per key. Buckets idle for
// longer than the idle TTL are dropped on a later call; by then they have
// refilled, so a fresh bucket behaves the same.
type KeyedRateLimiter struct {
	entries   map[string]*limiterEntry
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type LimiterOption func(*KeyedRateLimiter)

func WithIdleTTL(d time.Duration) LimiterOption {
	return func(k *KeyedRateLimiter) { k.idleTTL = d }
}

func WithClock(now func() time.Time) LimiterOption {
	return func(k *KeyedRateLimiter) { k.now = now }
}

func NewKeyedRateLimiter(r rate.Limit, b int, opts ...LimiterOption) *KeyedRateLimiter {
	k := &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		idleTTL: defaultLimiterIdleTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(k)
	}

	// An evicted bucket must be full again.
	if r > 0 {
		if refill := time.Duration(float64(b) / float64(r) * float64(time.Second)); refill > k.idleTTL {
			k.idleTTL = refill
		}
	}
	k.lastSweep = k.now()
	return k
}

func (k *KeyedRateLimiter) Limiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Len reports how many keys currently hold a bucket.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedRateLimiter) sweep(now time.Time) {
	for key, e := range k.entries {
		if now.Sub(e.lastSeen) >= k.idleTTL {
			delete(k.entries, key)
		}
	}
	k.lastSweep = now
}

// RateLimitByIP: r = requests per second, b = burst. A non-positive r
// disables the limit.
func RateLimitByIP(r rate.Limit, b int, opts ...LimiterOption) gin.HandlerFunc {
	if r <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewKeyedRateLimiter(r, b, opts...)
	return func(c *gin.Context) {
		if !limiter.Limiter(c.ClientIP()).Allow() {
			response.Abort(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
