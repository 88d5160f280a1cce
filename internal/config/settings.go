package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/bikeshare/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Data settings
	DataDir    string            `json:"data_dir"`
	CityFiles  map[string]string `json:"city_files"`
	TimeLayout string            `json:"time_layout"`

	// Report settings
	RawPageSize   int `json:"raw_page_size"`
	TopPairs      int `json:"top_pairs"`
	HistogramBins int `json:"histogram_bins"`

	// Plot settings
	PlotDir    string `json:"plot_dir"` // empty disables PNG output
	PlotWidth  int    `json:"plot_width"`
	PlotHeight int    `json:"plot_height"`

	// Mirror settings
	MirrorURL             string  `json:"mirror_url"` // empty disables downloads
	DownloadMaxRetries    int     `json:"download_max_retries"`
	DownloadRetryCooldown float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent float64 `json:"download_retry_exponent"`

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	files := make(map[string]string, len(model.Cities))
	for _, c := range model.Cities {
		files[string(c)] = c.FileName()
	}

	return &Settings{
		DataDir:    ".",
		CityFiles:  files,
		TimeLayout: "2006-01-02 15:04:05",

		RawPageSize:   5,
		TopPairs:      5,
		HistogramBins: 20,

		PlotDir:    "",
		PlotWidth:  800,
		PlotHeight: 480,

		MirrorURL:             "",
		DownloadMaxRetries:    3,
		DownloadRetryCooldown: 0.5,
		DownloadRetryExponent: 2.0,

		LogLevel: "warn",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from BIKESHARE_* environment variables.
// Unset or empty variables leave the current value alone.
func (s *Settings) ApplyEnv() {
	s.DataDir = getEnv("BIKESHARE_DATA_DIR", s.DataDir)
	s.PlotDir = getEnv("BIKESHARE_PLOT_DIR", s.PlotDir)
	s.MirrorURL = getEnv("BIKESHARE_MIRROR_URL", s.MirrorURL)
	s.LogLevel = getEnv("BIKESHARE_LOG_LEVEL", s.LogLevel)
}

// CityFile returns the file name configured for the city, falling back to the
// city's default file name.
func (s *Settings) CityFile(city model.City) string {
	if name, ok := s.CityFiles[string(city)]; ok && name != "" {
		return name
	}
	return city.FileName()
}

// CityPath returns the full path of the city's data file.
func (s *Settings) CityPath(city model.City) string {
	return filepath.Join(s.DataDir, s.CityFile(city))
}

// MirrorFileURL returns the download URL of the city's data file, or an empty
// string when no mirror is configured.
func (s *Settings) MirrorFileURL(city model.City) string {
	if s.MirrorURL == "" {
		return ""
	}
	return strings.TrimRight(s.MirrorURL, "/") + "/" + s.CityFile(city)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
