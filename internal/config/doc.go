// Package config provides configuration management for the bikeshare explorer.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - BIKESHARE_* environment overrides
//   - Resolving a city to its data file path or mirror URL
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads chicago.csv, new_york_city.csv, washington.csv from "."
//	// Pages raw data 5 rows at a time, 20 histogram bins
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.ApplyEnv()
//
// # Environment
//
//   - BIKESHARE_DATA_DIR: directory holding the city files
//   - BIKESHARE_PLOT_DIR: directory for PNG histograms (empty disables)
//   - BIKESHARE_MIRROR_URL: base URL to download missing city files from
//   - BIKESHARE_LOG_LEVEL: debug, info, warn or error
package config
