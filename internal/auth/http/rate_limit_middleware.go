package http

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/campus/internal/errors"
	"github.com/allisson/campus/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// RateLimiter holds one token bucket per key with periodic cleanup of idle keys.
// Call Stop to end the cleanup goroutine.
type RateLimiter struct {
	limiters sync.Map // map[string]*rateLimiterEntry
	rps      float64
	burst    int
	cancel   context.CancelFunc
	done     chan struct{}
}

// rateLimiterEntry holds a rate limiter and last access time for cleanup.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second per key
// with the given burst, and starts its cleanup goroutine.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	ctx, cancel := context.WithCancel(context.Background())
	l := &RateLimiter{
		rps:    rps,
		burst:  burst,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go l.cleanupStale(ctx, limiterCleanupInterval)

	return l
}

// Stop ends the cleanup goroutine and waits for it to exit.
func (l *RateLimiter) Stop() {
	l.cancel()
	<-l.done
}

// Allow consumes one token for key. When the bucket is empty it returns false
// and the number of whole seconds to wait.
func (l *RateLimiter) Allow(key string) (bool, int) {
	limiter := l.getLimiter(key)
	if limiter.Allow() {
		return true, 0
	}

	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	return false, max(1, int(math.Ceil(delay.Seconds())))
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	if val, ok := l.limiters.Load(key); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(l.rps), l.burst),
		lastAccess: time.Now(),
	}
	actual, _ := l.limiters.LoadOrStore(key, entry)
	return actual.(*rateLimiterEntry).limiter
}

// cleanupStale removes limiters idle for longer than limiterIdleTimeout.
func (l *RateLimiter) cleanupStale(ctx context.Context, interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			threshold := time.Now().Add(-limiterIdleTimeout)
			l.limiters.Range(func(key, value any) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					l.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

// LoginRateLimitMiddleware limits requests per client IP. It guards the login
// route against credential stuffing.
func LoginRateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		enforce(c, limiter, "ip:"+c.ClientIP(), logger)
	}
}

// RateLimitMiddleware limits requests per authenticated principal, falling back
// to the client IP for anonymous callers. It must run after the session middleware.
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if principal := PrincipalFrom(c); principal != nil {
			key = "user:" + principal.ID().String()
		}
		enforce(c, limiter, key, logger)
	}
}

func enforce(c *gin.Context, limiter *RateLimiter, key string, logger *slog.Logger) {
	allowed, retryAfter := limiter.Allow(key)
	if allowed {
		c.Next()
		return
	}

	logger.Debug("rate limit exceeded",
		slog.String("key", key),
		slog.Int("retry_after", retryAfter))

	c.Header("Retry-After", strconv.Itoa(retryAfter))
	httputil.HandleErrorGin(c, apperrors.ErrRateLimited, logger)
	c.Abort()
}
