package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/tui"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file")
		dataFlag   = flag.String("data", "", "Directory holding the city files (overrides config)")
		plotsFlag  = flag.String("plots", "", "Directory for birth year histogram PNGs (overrides config)")
		logFlag    = flag.String("log", "", "Append debug logs to this file")
	)
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	settings.ApplyEnv()
	if *dataFlag != "" {
		settings.DataDir = *dataFlag
	}
	if *plotsFlag != "" {
		settings.PlotDir = *plotsFlag
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
