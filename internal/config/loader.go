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
//  2. file (YAML) if ENCORE_CONFIG is set
//  3. env (prefix ENCORE_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote providers

	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ENCORE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ENCORE_ADDR, ENCORE_CACHE_TTL_SECONDS, ...
	// Map env keys like ENCORE_CACHE_TTL_SECONDS -> cache_ttl_seconds (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ENCORE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "encore_")
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
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.CacheTTLSeconds < 0 {
		return nil, fmt.Errorf("%w: cache_ttl_seconds must not be negative", ErrInvalidConfig)
	}
	if cfg.ShareTTLSeconds < 0 {
		return nil, fmt.Errorf("%w: share_ttl_seconds must not be negative", ErrInvalidConfig)
	}
	if cfg.MaxResults < 1 {
		return nil, fmt.Errorf("%w: max_results must be at least 1", ErrInvalidConfig)
	}
	if cfg.TopGenreCount < 1 {
		return nil, fmt.Errorf("%w: top_genre_count must be at least 1", ErrInvalidConfig)
	}
	if cfg.IndieThreshold > cfg.MainstreamThreshold {
		return nil, fmt.Errorf("%w: indie_threshold must not exceed mainstream_threshold", ErrInvalidConfig)
	}
	return &cfg, nil
}
