package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/model"
	"github.com/stretchr/testify/require"
)

// TestLoad_missingFile verifies that a missing config file yields defaults.
func TestLoad_missingFile(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	require.Equal(t, config.DefaultSettings(), s)
}

// TestLoad_partialOverride verifies that fields absent from the file keep
// their defaults.
func TestLoad_partialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir":"/data","raw_page_size":10}`), 0644))

	s, err := config.Load(path)

	require.NoError(t, err)
	require.Equal(t, "/data", s.DataDir)
	require.Equal(t, 10, s.RawPageSize)
	require.Equal(t, 20, s.HistogramBins)
	require.Equal(t, "chicago.csv", s.CityFile(model.Chicago))
}

func TestLoad_malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := config.Load(path)

	require.Error(t, err)
}

func TestSave_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	s := config.DefaultSettings()
	s.PlotDir = "/plots"
	s.CityFiles["washington"] = "dc.csv"

	require.NoError(t, s.Save(path))
	loaded, err := config.Load(path)

	require.NoError(t, err)
	require.Equal(t, s, loaded)
}

// TestApplyEnv verifies that BIKESHARE_* variables override settings and
// that empty variables are ignored.
func TestApplyEnv(t *testing.T) {
	t.Setenv("BIKESHARE_DATA_DIR", "/srv/bikeshare")
	t.Setenv("BIKESHARE_PLOT_DIR", "")
	t.Setenv("BIKESHARE_MIRROR_URL", "https://example.com/data/")
	t.Setenv("BIKESHARE_LOG_LEVEL", "debug")

	s := config.DefaultSettings()
	s.PlotDir = "/plots"
	s.ApplyEnv()

	require.Equal(t, "/srv/bikeshare", s.DataDir)
	require.Equal(t, "/plots", s.PlotDir)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, filepath.Join("/srv/bikeshare", "new_york_city.csv"), s.CityPath(model.NewYorkCity))
	require.Equal(t, "https://example.com/data/new_york_city.csv", s.MirrorFileURL(model.NewYorkCity))
}

func TestMirrorFileURL_disabled(t *testing.T) {
	s := config.DefaultSettings()

	require.Empty(t, s.MirrorFileURL(model.Chicago))
}
