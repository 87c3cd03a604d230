package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLimiter_ZeroRateIsUnlimited(t *testing.T) {
	limiter := NewLimiter(0, 0, zap.NewNop())

	for i := 0; i < 1000; i++ {
		assert.True(t, limiter.Allow())
	}
}

func TestLimiter_DrainsBurst(t *testing.T) {
	limiter := NewLimiter(1, 3, zap.NewNop())

	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow() {
			allowed++
		}
	}
	// The bucket starts with at most the burst worth of tokens.
	assert.LessOrEqual(t, allowed, 4)
	assert.GreaterOrEqual(t, allowed, 3)
}
