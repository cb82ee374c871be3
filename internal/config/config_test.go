package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "houserent-gateway", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "http://127.0.0.1:4000/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "hr_sid", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Workflow.CheckoutTTL())
	assert.Equal(t, 15*time.Second, cfg.Workflow.InflightTTL())
	assert.Equal(t, 3, cfg.Workflow.PaidRedirectDelaySec)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com/v1")
	t.Setenv("SESSION_COOKIE_TTL_HOURS", "24")
	t.Setenv("WORKFLOW_CHECKOUT_TTL_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "https://api.example.com/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Session.CookieTTL())
	assert.Equal(t, 5*time.Minute, cfg.Workflow.CheckoutTTL())
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout())
}
