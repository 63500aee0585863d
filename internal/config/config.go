package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/sshipway/augeas/internal/readbuf"
)

// Config holds the runtime settings.
type Config struct {
	Stream StreamConfig `toml:"stream"`
	Log    LogConfig    `toml:"log"`
}

// StreamConfig selects the accumulation stream implementation.
type StreamConfig struct {
	// Strategy is "memory" (direct in-memory buffer) or "file"
	// (temporary backing file drained at close).
	Strategy string `toml:"strategy"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Format is "text" or "json".
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Stream: StreamConfig{Strategy: "memory"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from the TOML file at path, applies environment
// overrides, and validates the result. A missing file is not an error;
// defaults apply. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := readbuf.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Fall through to env overrides.
		case err != nil:
			return Config{}, err
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadReader reads configuration from r without environment overrides.
func LoadReader(r io.Reader) (Config, error) {
	data, err := readbuf.ReadBounded(r, readbuf.MaxReadLen)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: "<reader>", Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Environment variables overriding file settings.
const (
	envStreamStrategy = "AUG_STREAM_STRATEGY"
	envLogLevel       = "AUG_LOG_LEVEL"
	envLogFormat      = "AUG_LOG_FORMAT"
)

// applyEnv overlays environment variables onto cfg. Empty values are
// treated as unset.
func applyEnv(cfg *Config) {
	if v := os.Getenv(envStreamStrategy); v != "" {
		cfg.Stream.Strategy = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.Log.Format = v
	}
}

// Validate checks every setting against its allowed values.
func (c Config) Validate() error {
	switch c.Stream.Strategy {
	case "memory", "file":
	default:
		return fmt.Errorf("%w: stream.strategy %q (must be memory or file)", ErrInvalidSetting, c.Stream.Strategy)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidSetting, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidSetting, c.Log.Format)
	}

	return nil
}
