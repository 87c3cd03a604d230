package pkg

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Errors
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Limiter wraps a process-local token bucket shared by all API routes.
// A single in-memory ledger runs in one process, so no distributed layer is needed.
type Limiter struct {
	local  *rate.Limiter
	logger *zap.Logger
}

// NewLimiter creates a limiter; if rps=0, it's unlimited.
func NewLimiter(rps, burst int, logger *zap.Logger) *Limiter {
	var local *rate.Limiter
	if rps > 0 {
		local = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &Limiter{
		local:  local,
		logger: logger,
	}
}

// Allow checks if a token is available.
func (l *Limiter) Allow() bool {
	if l.local == nil {
		return true // Unlimited
	}
	if !l.local.Allow() {
		l.logger.Warn("rate limit exceeded")
		return false
	}
	return true
}
