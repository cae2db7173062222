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

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "https://xkcd.com", cfg.UpstreamURL)
	assert.Equal(t, 3600, cfg.CacheTTLSeconds)
	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, time.Hour, cfg.CacheTTL())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XKCD_PROXY_PORT", "8080")
	t.Setenv("XKCD_PROXY_UPSTREAM_URL", "http://localhost:9090")
	t.Setenv("XKCD_PROXY_CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:9090", cfg.UpstreamURL)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, tc := range []struct {
		name  string
		key   string
		value string
	}{
		{name: "port zero", key: "XKCD_PROXY_PORT", value: "0"},
		{name: "port out of range", key: "XKCD_PROXY_PORT", value: "70000"},
		{name: "ttl zero", key: "XKCD_PROXY_CACHE_TTL_SECONDS", value: "0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
