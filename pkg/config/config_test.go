package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, "https://m.click108.com.tw", cfg.Click108.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Click108.RequestInterval)
	assert.Equal(t, "https://www.goodaytw.com", cfg.Gooday.BaseURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("ENV", "production")
	os.Setenv("PORT", "8080")
	os.Setenv("DB_MAX_CONNS", "25")
	os.Setenv("REDIS_ENABLED", "true")
	os.Setenv("CLICK108_REQUEST_INTERVAL", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Click108.RequestInterval)
}

func TestLoad_InvalidEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("ENV", "testing")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("ENV", "development")
	os.Setenv("DB_MAX_CONNS", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Database.MaxConns)
}
