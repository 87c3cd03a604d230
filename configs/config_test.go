package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, 200, cfg.RateBurst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_RATE_LIMIT", "5")
	t.Setenv("APP_RATE_BURST", "10")

	cfg, err := Load(zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst)
}
