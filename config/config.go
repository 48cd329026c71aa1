// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the interpreter service configuration from TOML.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/bfi/memory"
	"github.com/ezrec/bfi/runner"
)

const (
	EnvLogLevel = "BFI_LOG_LEVEL"
	EnvAddr     = "BFI_ADDR"
)

// Config of the interpreter service.
type Config struct {
	Name          string        // Service name reported by /health.
	Addr          string        // Listen address.
	DefaultBits   int           // Cell width when a request omits "bits".
	DefaultSigned bool          // Signedness when a request omits "signed".
	MaxSteps      int           // Step budget per request, 0 for none.
	Timeout       time.Duration // Wall clock budget per request, 0 for none.
	MaxBodyBytes  int64         // Largest accepted request body.
	LogLevel      string        // zerolog level name.
}

type fileConfig struct {
	Name          string `toml:"name"`
	Addr          string `toml:"addr"`
	DefaultBits   int    `toml:"default_bits"`
	DefaultSigned bool   `toml:"default_signed"`
	MaxSteps      int    `toml:"max_steps"`
	Timeout       string `toml:"timeout"`
	MaxBodyBytes  int64  `toml:"max_body_bytes"`
	LogLevel      string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Name:         "bfi",
		Addr:         "127.0.0.1:7777",
		DefaultBits:  8,
		MaxSteps:     10_000_000,
		Timeout:      5 * time.Second,
		MaxBodyBytes: 1 << 20,
		LogLevel:     "info",
	}
}

// Load reads a TOML file, overriding Default for each key present.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	cfg, err := apply(Default(), raw, meta)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	return cfg, nil
}

// Decode parses TOML text, overriding Default for each key present.
func Decode(text string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed: %w", err)
	}

	return apply(Default(), raw, meta)
}

func apply(cfg Config, raw fileConfig, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrConfigInvalid, undecoded[0].String())
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("default_bits") {
		cfg.DefaultBits = raw.DefaultBits
	}
	if meta.IsDefined("default_signed") {
		cfg.DefaultSigned = raw.DefaultSigned
	}
	if meta.IsDefined("max_steps") {
		cfg.MaxSteps = raw.MaxSteps
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return Config{}, fmt.Errorf("%w: parse timeout: %w", ErrConfigInvalid, err)
		}
		cfg.Timeout = d
	}
	if meta.IsDefined("max_body_bytes") {
		cfg.MaxBodyBytes = raw.MaxBodyBytes
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg from the process environment.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Addr = v
	}
}

// Validate checks that every field is usable.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("%w: missing addr", ErrConfigInvalid)
	}
	if cfg.DefaultBits < memory.MIN_BITS || cfg.DefaultBits > memory.MAX_BITS {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, memory.ErrBits(cfg.DefaultBits))
	}
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("%w: negative max_steps", ErrConfigInvalid)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrConfigInvalid)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrConfigInvalid)
	}
	return nil
}

// Limits returns the per-request execution limits.
func (cfg Config) Limits() runner.Limits {
	return runner.Limits{
		MaxSteps: cfg.MaxSteps,
		Timeout:  cfg.Timeout,
	}
}
