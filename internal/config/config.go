package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/translator"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	Backend BackendConfig `toml:"backend"`
	Log     LogConfig     `toml:"log"`
}

type GeneralConfig struct {
	Source     string `toml:"source"`
	Target     string `toml:"target"`
	DebounceMS int    `toml:"debounce_ms"`
}

type BackendConfig struct {
	Kind      string  `toml:"kind"` // mock | remote
	URL       string  `toml:"url"`
	LatencyMS int     `toml:"latency_ms"`
	TimeoutMS int     `toml:"timeout_ms"`
	RateLimit float64 `toml:"rate_limit"` // requests per second, 0 = unlimited
	CacheSize int     `toml:"cache_size"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Source:     "en",
			Target:     "es",
			DebounceMS: 1000,
		},
		Backend: BackendConfig{
			Kind:      translator.KindMock,
			URL:       "http://localhost:8080",
			LatencyMS: 300,
			TimeoutMS: 10000,
			CacheSize: 256,
		},
		Log: LogConfig{
			File:  defaultLogPath(),
			Level: "info",
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "instant-translator", "config.toml")
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "instant-translator.log"
	}
	return filepath.Join(home, ".local", "state", "instant-translator", "instant-translator.log")
}

// Load decodes path over the defaults. It does not validate, so callers
// can apply command line overrides first.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks cat itself, the default languages against cat and the
// numeric settings for sane ranges.
func (c Config) Validate(cat catalog.Catalog) error {
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if !cat.Contains(c.General.Source) {
		return fmt.Errorf("general.source: unknown language %q", c.General.Source)
	}
	if !cat.Contains(c.General.Target) {
		return fmt.Errorf("general.target: unknown language %q", c.General.Target)
	}
	if c.General.DebounceMS < 0 {
		return fmt.Errorf("general.debounce_ms: must not be negative")
	}
	switch c.Backend.Kind {
	case translator.KindMock, translator.KindRemote:
	default:
		return fmt.Errorf("backend.kind: unknown backend %q", c.Backend.Kind)
	}
	if c.Backend.Kind == translator.KindRemote && c.Backend.URL == "" {
		return fmt.Errorf("backend.url: required for remote backend")
	}
	if c.Backend.LatencyMS < 0 || c.Backend.TimeoutMS < 0 || c.Backend.RateLimit < 0 || c.Backend.CacheSize < 0 {
		return fmt.Errorf("backend: latency, timeout, rate limit and cache size must not be negative")
	}
	return nil
}

// Debounce returns the debounce interval.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.General.DebounceMS) * time.Millisecond
}

// TranslatorOptions maps the backend section onto translator.Options.
func (c Config) TranslatorOptions() translator.Options {
	return translator.Options{
		Kind:      c.Backend.Kind,
		URL:       c.Backend.URL,
		Latency:   time.Duration(c.Backend.LatencyMS) * time.Millisecond,
		Timeout:   time.Duration(c.Backend.TimeoutMS) * time.Millisecond,
		RateLimit: c.Backend.RateLimit,
		CacheSize: c.Backend.CacheSize,
	}
}
