// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/okian/piste/internal/domain/timeline"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ShardCount configures the number of shards in the raw entry store.
	ShardCount int `koanf:"shard_count"`

	// WindLimitMPS sets the legal wind-assistance limit in m/s.
	WindLimitMPS float64 `koanf:"wind_limit_mps"`

	// CondenseThreshold sets the point count above which an unscoped
	// timeline condenses to best-of-year entries.
	CondenseThreshold int `koanf:"condense_threshold"`

	// MaxResultsLimit caps GET /results responses.
	MaxResultsLimit int `koanf:"max_results_limit"`

	// SeedFixture preloads generated demo entries at startup.
	SeedFixture bool `koanf:"seed_fixture"`

	// FixtureEntries sets how many demo entries to generate per discipline.
	FixtureEntries int `koanf:"fixture_entries"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		ShardCount:        8,
		WindLimitMPS:      timeline.DefaultWindLimitMPS,
		CondenseThreshold: timeline.DefaultCondenseThreshold,
		MaxResultsLimit:   500,
		SeedFixture:       false,
		FixtureEntries:    12,
	}
	return c
}
