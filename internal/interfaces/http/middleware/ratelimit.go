package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/infrastructure/ratelimit"
	"crowdfund/internal/shared/utils"
)

// RateLimit enforces a per-IP request budget on the wrapped routes. Limiter
// failures fail open so a redis outage does not block all traffic.
func RateLimit(limiter ratelimit.RateLimiter, limits ratelimit.Limits) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), limits)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
