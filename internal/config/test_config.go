package config

import "time"

// TestConfig returns a config suitable for testing: no cache file, fast
// gate intervals so throttle-sensitive tests stay quick.
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Catalog = CatalogConfig{
		BaseURL:     "http://localhost:0",
		Zone:        "test",
		HTTPTimeout: 5 * time.Second,
		UserAgent:   "findbar-test/1.0",
		CachePath:   "",
	}
	cfg.Gates = GateConfig{
		Query:      10 * time.Millisecond,
		Width:      10 * time.Millisecond,
		Suggestion: 40 * time.Millisecond,
	}
	return cfg
}
