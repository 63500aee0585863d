// Package config loads runtime settings for the text support library.
//
// Configuration is TOML with environment variable overrides. A missing
// config file is not an error: defaults apply. The memory-growth cap and
// the diagnostic context window are compile-time constants, not settings.
package config
