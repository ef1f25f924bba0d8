// Package config loads the roman CLI settings: built-in defaults, then an
// optional YAML file, then ROMAN_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides: ROMAN_CACHE_REDIS_ADDR -> cache.redis_addr.
const EnvPrefix = "ROMAN_"

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
	Cache  CacheConfig  `koanf:"cache"`
}

type LogConfig struct {
	Level   string `koanf:"level"`
	Format  string `koanf:"format"`  // console, json
	Backend string `koanf:"backend"` // zap, logrus, slog; carries memo events
}

type OutputConfig struct {
	Style string `koanf:"style"` // upper, lower
}

type CacheConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Provider  string        `koanf:"provider"` // ristretto, bigcache, redis
	RedisAddr string        `koanf:"redis_addr"`
	TTL       time.Duration `koanf:"ttl"`
}

var defaults = map[string]any{
	"log.level":        "warn",
	"log.format":       "console",
	"log.backend":      "zap",
	"output.style":     "upper",
	"cache.enabled":    true,
	"cache.provider":   "ristretto",
	"cache.redis_addr": "localhost:6379",
	"cache.ttl":        "1h",
}

func loadDefaults(k *koanf.Koanf) error {
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return fmt.Errorf("config: default %s: %w", key, err)
		}
	}
	return nil
}

// envKey maps ROMAN_SECTION_NAME to section.name. Only the first underscore
// separates the section, so multi-word keys survive.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	switch c.Log.Backend {
	case "zap", "logrus", "slog":
	default:
		return fmt.Errorf("config: log.backend must be zap, logrus or slog, got %q", c.Log.Backend)
	}
	switch c.Output.Style {
	case "upper", "lower":
	default:
		return fmt.Errorf("config: output.style must be upper or lower, got %q", c.Output.Style)
	}
	switch c.Cache.Provider {
	case "ristretto", "bigcache", "redis":
	default:
		return fmt.Errorf("config: unknown cache.provider %q", c.Cache.Provider)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("config: cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}
