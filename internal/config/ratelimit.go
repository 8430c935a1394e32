package config

import "time"

// RateLimitConfig bounds per-device request volume on the question endpoints.
type RateLimitConfig struct {
	Window          time.Duration `yaml:"window"`
	MaxRequests     int           `yaml:"max_requests"`
	Capacity        int           `yaml:"capacity"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

func (c *RateLimitConfig) applyDefaults() {
	if c.Window <= 0 {
		c.Window = 60 * time.Second
	}
	if c.MaxRequests <= 0 {
		c.MaxRequests = 10
	}
	if c.Capacity <= 0 {
		c.Capacity = 1000
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = 5 * time.Minute
	}
}
