package mw

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/MrSnakeDoc/insights/internal/logger"
	"github.com/MrSnakeDoc/insights/internal/utils"
)

type RateLimitConfig struct {
	Burst             int // 0 disables the limiter
	RefillPerIPPerMin int
	MaxEntries        int
	SweepInterval     time.Duration
	IdleTTL           time.Duration
	TrustProxy        bool // resolve IP from proxy headers when true
}

// limiter keeps one token bucket per client. Idle buckets expire from the
// cache; expired entries are swept lazily, so no janitor goroutine runs.
type limiter struct {
	cfg     RateLimitConfig
	every   rate.Limit
	buckets *cache.Cache

	mu        sync.Mutex
	lastSweep time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 15 * time.Minute
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 10000
	}
	if cfg.RefillPerIPPerMin < 1 {
		cfg.RefillPerIPPerMin = 1
	}
	return &limiter{
		cfg:       cfg,
		every:     rate.Limit(float64(cfg.RefillPerIPPerMin) / 60.0),
		buckets:   cache.New(cfg.IdleTTL, 0),
		lastSweep: time.Now(),
	}
}

func (l *limiter) bucket(key string) *rate.Limiter {
	if v, ok := l.buckets.Get(key); ok {
		b := v.(*rate.Limiter)
		l.buckets.SetDefault(key, b) // push expiry back
		return b
	}

	b := rate.NewLimiter(l.every, l.cfg.Burst)
	if err := l.buckets.Add(key, b, cache.DefaultExpiration); err != nil {
		// Lost the race against another request of the same client.
		if v, ok := l.buckets.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return b
}

func (l *limiter) sweepMaybe(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if now.Sub(l.lastSweep) >= l.cfg.SweepInterval || l.buckets.ItemCount() >= l.cfg.MaxEntries {
		l.buckets.DeleteExpired()
		l.lastSweep = now
	}
}

// RateLimit throttles each client IP with a token bucket.
func RateLimit(cfg RateLimitConfig, log logger.Logger) func(http.Handler) http.Handler {
	if cfg.Burst <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	l := newLimiter(cfg)
	limitStr := strconv.Itoa(cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			l.sweepMaybe(now)

			key := utils.ClientIP(r, l.cfg.TrustProxy)
			b := l.bucket(key)
			res := b.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				retry := int(delay.Round(time.Second) / time.Second)
				if retry < 1 {
					retry = 1
				}
				log.Debug("rate limited",
					logger.String("ip", key),
					logger.String("path", r.URL.Path))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("X-RateLimit-Limit", limitStr)
				w.Header().Set("X-RateLimit-Remaining", "0")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			remaining := int(b.TokensAt(now))
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", limitStr)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			next.ServeHTTP(w, r)
		})
	}
}
