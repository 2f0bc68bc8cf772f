package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if PISTE_CONFIG is set
//  3. env (prefix PISTE_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PISTE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PISTE_ADDR, PISTE_SHARD_COUNT, ...
	// Map env keys like PISTE_WIND_LIMIT_MPS -> wind_limit_mps (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PISTE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "piste_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.WindLimitMPS <= 0:
		return nil, fmt.Errorf("%w: wind_limit_mps must be positive", ErrInvalidConfig)
	case cfg.CondenseThreshold < 1:
		return nil, fmt.Errorf("%w: condense_threshold must be at least 1", ErrInvalidConfig)
	case cfg.ShardCount < 1:
		return nil, fmt.Errorf("%w: shard_count must be at least 1", ErrInvalidConfig)
	}
	return &cfg, nil
}
