package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter allows each client IP at most limit requests per fixed window.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return rateLimiter(limit, window, time.Now)
}

func rateLimiter(limit int, window time.Duration, now func() time.Time) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu        sync.Mutex
		buckets   = make(map[string]*bucket)
		lastSweep = now()
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ts := now()
			key := c.RealIP()

			mu.Lock()
			if ts.Sub(lastSweep) > window {
				for k, b := range buckets {
					if ts.Sub(b.start) > window {
						delete(buckets, k)
					}
				}
				lastSweep = ts
			}

			b, ok := buckets[key]
			if !ok || ts.Sub(b.start) > window {
				b = &bucket{start: ts}
				buckets[key] = b
			}

			if b.count >= limit {
				retry := b.start.Add(window).Sub(ts)
				mu.Unlock()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			remaining := limit - b.count
			mu.Unlock()

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			return next(c)
		}
	}
}
