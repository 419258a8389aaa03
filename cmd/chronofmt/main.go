// Command chronofmt is a small demonstration front end for the chrono formatting engine: it
// formats or parses a single value according to a pattern, either given on the command line
// or read from a TOML config file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ansel1/console-slog"

	"github.com/fieldformat/chrono"
	"github.com/fieldformat/chrono/internal/cliconfig"
	"github.com/fieldformat/chrono/internal/sloghelper"
)

var (
	configPath = flag.String("config", "", "Path to a chronofmt TOML config file.")
	pattern    = flag.String("pattern", "", "Override the configured pattern.")
	parseText  = flag.String("parse", "", "Parse this text instead of formatting the current time.")
	debug      = flag.Bool("debug", false, "Enable debug logging.")
)

func resolverStyle(name string) (chrono.ResolverStyle, error) {
	switch name {
	case "", "smart":
		return chrono.ResolveSmart, nil
	case "strict":
		return chrono.ResolveStrict, nil
	case "lenient":
		return chrono.ResolveLenient, nil
	default:
		return 0, fmt.Errorf("unknown resolver_style %q", name)
	}
}

func main() {
	flag.Parse()

	cfg := cliconfig.Default()
	if *configPath != "" {
		loaded, err := cliconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *pattern != "" {
		cfg.Pattern = *pattern
	}
	if *debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
	slog.SetDefault(logger)

	style, err := resolverStyle(cfg.ResolverStyle)
	if err != nil {
		logger.Error("invalid configuration", sloghelper.Error("error", err))
		os.Exit(1)
	}

	f := chrono.NewPatternFormatter(cfg.Pattern).WithResolverStyle(style)
	logger.Debug("formatter ready", sloghelper.String("pattern", cfg.Pattern))

	if *parseText != "" {
		resolved, err := f.Parse(*parseText)
		if err != nil {
			logger.Error("parse failed", sloghelper.String("text", *parseText), sloghelper.Error("error", err))
			os.Exit(1)
		}
		fmt.Printf("%+v\n", resolved)
		return
	}

	t := time.Now()
	now := chrono.LocalDateTimeOf(t.Year(), chrono.Month(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
	out, err := f.Format(now)
	if err != nil {
		logger.Error("format failed", sloghelper.Error("error", err))
		os.Exit(1)
	}
	fmt.Println(out)
}
