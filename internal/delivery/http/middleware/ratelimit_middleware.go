package middleware

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"healthvault/config"
	domainerrors "healthvault/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware throttles requests per client IP using a fixed window
// counter in Redis. It fails open: if Redis is unavailable the request is
// allowed through.
type RateLimitMiddleware struct {
	client   *redis.Client
	logger   *slog.Logger
	enabled  bool
	requests int
	window   time.Duration
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(client *redis.Client, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		client: client,
		logger: logger,
	}
	if cfg.RateLimit != nil {
		m.enabled = cfg.RateLimit.Enabled
		m.requests = cfg.RateLimit.Requests
		m.window = cfg.RateLimit.Window
	}
	if m.requests <= 0 {
		m.requests = 30
	}
	if m.window <= 0 {
		m.window = time.Minute
	}

	return m
}

// Limit is the middleware function applied to throttled route groups.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled || m.client == nil {
		return next
	}

	return func(c echo.Context) error {
		ip := c.RealIP()
		if ip == "" {
			ip = "unknown"
		}

		window := time.Now().Unix() / int64(m.window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", ip, window)

		ctx := c.Request().Context()

		count, err := m.client.Incr(ctx, key).Result()
		if err != nil {
			m.logger.Warn("Rate limit check failed, allowing request", slog.Any("error", err))

			return next(c)
		}
		if count == 1 {
			m.client.Expire(ctx, key, m.window)
		}

		remaining := int64(m.requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(m.requests))
		c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(m.requests) {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(m.window.Seconds())))

			return domainerrors.ErrTooManyAttempts
		}

		return next(c)
	}
}
