package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/campuslms/rewards-api/internal/api/dto"
	"github.com/campuslms/rewards-api/internal/apperror"
	"github.com/campuslms/rewards-api/internal/config"
	"github.com/campuslms/rewards-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit limits requests per tenant per minute. Runs after JWTAuth
// so the tenant claim is available. Fails open on redis errors.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromGin(c)
		if !ok || claims.TenantID == "" {
			dto.AbortError(c, apperror.Unauthenticated("tenant identifier required for rate limiting"))
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = 1000
		}

		key := fmt.Sprintf("rate_limit:tenant:%s", claims.TenantID)
		m.enforce(c, key, limit)
	}
}

// GlobalRateLimit limits requests per client IP per minute.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit)
	}
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	ctx := c.Request.Context()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		// Fail open: a broken limiter must not take the API down.
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)
		c.AbortWithStatusJSON(429, dto.Envelope{
			Message:    "rate limit exceeded",
			Data:       nil,
			StatusCode: 429,
		})
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}
