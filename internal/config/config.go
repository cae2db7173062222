package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "XKCD_PROXY_"

type Config struct {
	Port            int    `koanf:"port"`
	UpstreamURL     string `koanf:"upstream_url"`
	CacheTTLSeconds int    `koanf:"cache_ttl_seconds"`
}

func defaults() map[string]any {
	return map[string]any{
		"port":              3000,
		"upstream_url":      "https://xkcd.com",
		"cache_ttl_seconds": 3600,
	}
}

// Load builds the configuration from defaults overridden by XKCD_PROXY_*
// environment variables.
func Load() (Config, error) {
	parser := koanf.New(".")

	if err := parser.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, err
	}

	provider := env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	})
	if err := parser.Load(provider, nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := parser.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.UpstreamURL == "" {
		return cfg, fmt.Errorf("upstream_url is required")
	}
	if cfg.CacheTTLSeconds <= 0 {
		return cfg, fmt.Errorf("cache_ttl_seconds must be positive")
	}
	return cfg, nil
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
