// Package main is the entry point for the augtext inspection tool.
//
// augtext reads files through the bounded reader and prints their escaped
// form, the unescaped form of literal text, or a positional context
// snippet. Output accumulates in a stream (memory or file backed, per
// configuration) and is written once at the end.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/sshipway/augeas/internal/config"
	"github.com/sshipway/augeas/internal/escape"
	"github.com/sshipway/augeas/internal/memstream"
	"github.com/sshipway/augeas/internal/readbuf"
	"github.com/sshipway/augeas/internal/textpos"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	unescape   bool
	offset     int
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	logger := newLogger(cfg.Log)

	strategy, err := memstream.ParseStrategy(cfg.Stream.Strategy)
	if err != nil {
		logger.Error("invalid stream strategy", "strategy", cfg.Stream.Strategy, "error", err)
		return 1
	}
	out, err := memstream.Open(strategy)
	if err != nil {
		logger.Error("opening output stream", "error", err)
		return 1
	}

	failed := false
	for _, path := range flag.Args() {
		if err := process(out, opts, path); err != nil {
			logger.Error("processing file", "path", path, "error", err)
			failed = true
		} else {
			logger.Debug("processed file", "path", path)
		}
	}

	buf, err := out.Close()
	if err != nil {
		logger.Error("finalizing output", "error", err)
		return 1
	}
	if _, err := os.Stdout.Write(buf); err != nil {
		logger.Error("writing output", "error", err)
		return 1
	}

	if failed {
		return 1
	}
	return 0
}

// process reads path and appends the requested rendering to out.
func process(out memstream.Stream, opts options, path string) error {
	data, err := readbuf.ReadFile(path)
	if err != nil {
		return err
	}

	switch {
	case opts.offset >= 0:
		return textpos.Fprint(out, data, opts.offset)
	case opts.unescape:
		_, err := out.Write(escape.Unescape(string(data), -1))
		return err
	default:
		if _, err := escape.Fprint(out, data, -1); err != nil {
			return err
		}
		_, err := out.WriteString("\n")
		return err
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	}
	return slog.New(handler)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.unescape, "unescape", false, "Treat input as escaped literals and print the raw text")
	flag.BoolVar(&opts.unescape, "u", false, "Treat input as escaped literals (shorthand)")
	flag.IntVar(&opts.offset, "offset", -1, "Print context around this byte offset instead of escaping")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "augtext - escaped-text inspection tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage: augtext [options] file...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  augtext file.txt               Print the escaped form of a file\n")
		fmt.Fprintf(os.Stderr, "  augtext -u literal.txt         Decode escaped literals\n")
		fmt.Fprintf(os.Stderr, "  augtext -offset 120 file.txt   Show context around byte 120\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("augtext %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	return opts
}
