package middleware

import (
	"log"
	"time"

	"stylehub/internal/infrastructure/ratelimit"
	"stylehub/pkg/errors"
	"stylehub/pkg/response"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware guards a route group with a per-client-IP token
// bucket. Rejected requests get the standard error envelope with a
// TOO_MANY_REQUESTS code.
func RateLimitMiddleware(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, waitTime := limiter.Allow(ip)
			if !allowed {
				log.Printf("RATE LIMIT: Blocked request from IP %s (retry in %v)", ip, waitTime.Round(time.Second))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}
