// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"strconv"
	"strings"
)

// Config is the snapshot of environment-driven settings the request
// handlers depend on. It is loaded once at startup and injected, so
// tests can construct their own without touching the process env.
type Config struct {
	Host             string
	Port             string
	WebhookSecret    string
	DefaultPageLimit int
	MaxPageLimit     int
	EnableMetrics    bool
}

func LoadConfig() *Config {
	cfg := &Config{
		Host:             GetEnv("HOST", "0.0.0.0"),
		Port:             GetEnv("PORT", "8000"),
		WebhookSecret:    GetEnv("WEBHOOK_SECRET"),
		DefaultPageLimit: 50,
		MaxPageLimit:     100,
		EnableMetrics:    true,
	}
	if v := GetEnv("DEFAULT_PAGE_LIMIT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			cfg.DefaultPageLimit = i
		}
	}
	if v := GetEnv("MAX_PAGE_LIMIT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			cfg.MaxPageLimit = i
		}
	}
	if v := GetEnv("ENABLE_METRICS"); v != "" {
		cfg.EnableMetrics = strings.EqualFold(v, "true")
	}
	return cfg
}

// IsReady reports whether the service has the configuration it needs
// to accept webhooks. Checked by the readiness probe.
func (c *Config) IsReady() bool {
	return c.WebhookSecret != ""
}
