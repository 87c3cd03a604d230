package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Palani4051/Bank/pkg"
)

// RateLimit returns Gin middleware rejecting requests once the shared token bucket is drained.
func RateLimit(limiter *pkg.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, pkg.ErrorResponse{
				Code:    "APP_RATE_LIMITED",
				Message: pkg.ErrRateLimitExceeded.Error(),
			})
			return
		}
		c.Next()
	}
}
