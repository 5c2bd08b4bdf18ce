package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIDefaults(t *testing.T) {
	cfg, err := LoadAPI()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.PostgresURL)
}

func TestLoadAPIOverrides(t *testing.T) {
	t.Setenv("API_HTTP_ADDR", ":9999")
	t.Setenv("API_CORS_ORIGINS", "https://a.example.com;https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_TTL", "15m")

	cfg, err := LoadAPI()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
}

func TestLoadWebDefaults(t *testing.T) {
	cfg, err := LoadWeb()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://api:8081", cfg.APIBaseURL)
}
