package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/dataset"
	"github.com/handiism/bikeshare/internal/explore"
)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		dataFlag    = flag.String("data", "", "Directory holding the city files (overrides config)")
		plotsFlag   = flag.String("plots", "", "Directory for birth year histogram PNGs (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Log debug output to stderr")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			slog.Error("loading config", "path", *configFlag, "error", err)
			os.Exit(1)
		}
	}
	settings.ApplyEnv()

	// Apply flags
	if *dataFlag != "" {
		settings.DataDir = *dataFlag
	}
	if *plotsFlag != "" {
		settings.PlotDir = *plotsFlag
	}
	if *verboseFlag {
		settings.LogLevel = "debug"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(settings.LogLevel),
	}))
	slog.SetDefault(logger)

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := dataset.NewLoader(settings, logger)
	session := explore.NewSession(settings, loader, os.Stdin, os.Stdout, logger)

	if err := session.Run(ctx); err != nil {
		logger.Error("explore session failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// parseLevel maps a level name to a slog level, defaulting to warn.
func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn
	}
	return level
}
