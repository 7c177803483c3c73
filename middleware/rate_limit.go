package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// Deny writes the reply for a rejected request (defaults to a 429 HTTPError)
	Deny DenyHandler
}

// DenyHandler replies to a request that exceeded the limit
type DenyHandler func(c echo.Context, message string) error

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window limiter keyed per client
type RateLimiter struct {
	config RateLimitConfig
	now    func() time.Time

	mu    sync.Mutex
	store map[string]*rateLimitEntry
}

// NewRateLimiter creates a new rate limiter with the given configuration.
// Expired entries are only removed while Cleanup runs.
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Слишком много запросов. Попробуйте позже."
	}
	if config.Deny == nil {
		config.Deny = func(c echo.Context, message string) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, message)
		}
	}

	return &RateLimiter{
		config: config,
		now:    time.Now,
		store:  make(map[string]*rateLimitEntry),
	}
}

// Allow records one request for key and reports whether it is within the limit
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(rl.config.Window)}
		return true
	}
	if entry.count >= rl.config.Requests {
		return false
	}
	entry.count++
	return true
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.KeyFunc(c)
			if rl.Allow(key) {
				return next(c)
			}

			GetLogger(c).Warnw("rate limit exceeded", "key", key, "path", c.Path())
			return rl.config.Deny(c, rl.config.Message)
		}
	}
}

// Len returns the number of tracked keys
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.store)
}

// Sweep removes expired entries
func (rl *RateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.store {
		if now.After(entry.expiresAt) {
			delete(rl.store, key)
		}
	}
}

// Cleanup removes expired entries every minute until ctx is cancelled
func (rl *RateLimiter) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Sweep()
		}
	}
}

// IsHTMX reports whether the request was issued by htmx
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// Contact form posts allowed per IP and window
const (
	LeadFormMaxRequests = 10
	LeadFormWindow      = time.Minute
)

// NewLeadFormRateLimiter limits contact form submissions per IP. deny renders
// the rejection; nil falls back to a plain 429.
func NewLeadFormRateLimiter(deny DenyHandler) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests: LeadFormMaxRequests,
		Window:   LeadFormWindow,
		Message:  "Слишком много заявок. Подождите минуту и попробуйте снова.",
		Deny:     deny,
	})
}
