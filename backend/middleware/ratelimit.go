package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/kappatrack/kappatrack/backend/utils"
)

// RateLimiter implements a sliding-window rate limiter. Per-client windows
// live in an LRU cache so the tracked client set stays bounded; evicting a
// cold client just resets its window.
type RateLimiter struct {
	clients *lru.Cache
	mutex   sync.Mutex
	window  time.Duration
	limit   int
}

// NewRateLimiter creates a new rate limiter tracking up to maxClients keys
func NewRateLimiter(limit int, window time.Duration, maxClients int) *RateLimiter {
	cache, err := lru.New(maxClients)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}

	return &RateLimiter{
		clients: cache,
		window:  window,
		limit:   limit,
	}
}

// Allow checks if a request should be allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	var requests []time.Time
	if cached, ok := rl.clients.Get(key); ok {
		requests = cached.([]time.Time)
	}

	// Drop requests outside the window
	valid := requests[:0]
	for _, req := range requests {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}

	if len(valid) >= rl.limit {
		rl.clients.Add(key, valid)
		return false
	}

	valid = append(valid, now)
	rl.clients.Add(key, valid)
	return true
}

// RateLimit middleware limits requests per IP address
func RateLimit(limit int, window time.Duration) fiber.Handler {
	limiter := NewRateLimiter(limit, window, 10000)

	return func(c *fiber.Ctx) error {
		ip := utils.GetIPAddress(c)

		if !limiter.Allow(ip) {
			slog.Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", c.Path()),
				slog.String("method", c.Method()),
				slog.Int("limit", limit),
				slog.Duration("window", window))

			return utils.SendError(c, 429, "RATE_LIMIT_EXCEEDED",
				"Too many requests. Please try again later.", nil)
		}

		return c.Next()
	}
}

// AuthRateLimit middleware limits authentication attempts
func AuthRateLimit() fiber.Handler {
	return RateLimit(5, time.Minute)
}

// APIRateLimit middleware limits API requests
func APIRateLimit() fiber.Handler {
	return RateLimit(100, time.Minute)
}
