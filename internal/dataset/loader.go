package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/http"
	ioutils "github.com/handiism/bikeshare/internal/io"
	"github.com/handiism/bikeshare/internal/model"
)

// Column names as they appear in the city files' header row.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColDuration     = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime, ColEndTime, ColStartStation, ColEndStation, ColDuration, ColUserType,
}

// ErrMissingColumn is returned when a data file lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Loader reads city data files and filters them by month and day.
//
// When a city file is absent and the settings name a mirror, Loader downloads
// the file into the data directory first.
type Loader struct {
	settings *config.Settings
	client   *http.Client
	logger   *slog.Logger
}

// NewLoader creates a Loader. A nil logger uses slog.Default().
func NewLoader(settings *config.Settings, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		settings: settings,
		client:   http.NewClient(),
		logger:   logger,
	}
}

// Load reads the dataset of f.City and keeps the rows matching f's month and
// day selection.
//
// Missing or malformed files are returned as errors; nothing is retried except
// the optional mirror download.
func (l *Loader) Load(ctx context.Context, f model.Filter) (*model.Table, error) {
	path := l.settings.CityPath(f.City)

	if err := l.ensureFile(ctx, f.City, path); err != nil {
		return nil, err
	}

	start := time.Now()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s data: %w", f.City.Title(), err)
	}
	defer file.Close()

	table, err := Read(file, l.settings.TimeLayout)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	l.logger.Debug("dataset read", "city", string(f.City), "path", path, "rows", table.Len(), "elapsed", time.Since(start))

	filtered := table.Filter(f)
	l.logger.Debug("dataset filtered", "month", string(f.Month), "day", string(f.Day), "rows", filtered.Len())

	return filtered, nil
}

// ensureFile downloads the city file from the mirror when it is missing locally.
func (l *Loader) ensureFile(ctx context.Context, city model.City, path string) error {
	if ioutils.FileExists(path) {
		return nil
	}
	url := l.settings.MirrorFileURL(city)
	if url == "" {
		// Let os.Open report the missing file.
		return nil
	}

	if err := ioutils.EnsureDir(l.settings.DataDir); err != nil {
		return err
	}

	retry := http.Retry{
		MaxAttempts: l.settings.DownloadMaxRetries,
		Cooldown:    time.Duration(l.settings.DownloadRetryCooldown * float64(time.Second)),
		Exponent:    l.settings.DownloadRetryExponent,
	}
	l.logger.Info("downloading dataset", "city", string(city), "url", url)
	n, err := l.client.FetchWithRetry(ctx, url, path, retry, func(attempt int, err error) {
		l.logger.Warn("dataset download failed", "city", string(city), "attempt", attempt+1, "error", err)
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	l.logger.Info("dataset downloaded", "city", string(city), "path", path, "bytes", n)
	return nil
}

// Read parses a delimited trip file with a header row.
//
// Required columns are located by name; Gender and Birth Year are optional and
// their absence is recorded on the table. Blank optional cells are kept as
// unknown values. Errors name the offending line.
func Read(r io.Reader, timeLayout string) (*model.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	genderCol, hasGender := index[ColGender]
	birthCol, hasBirth := index[ColBirthYear]

	table := &model.Table{
		Header:       header,
		HasGender:    hasGender,
		HasBirthYear: hasBirth,
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		trip, err := parseTrip(record, index, timeLayout)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if hasGender {
			trip.Gender = strings.TrimSpace(record[genderCol])
		}
		if hasBirth {
			trip.BirthYear, err = parseYear(record[birthCol])
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", line, ColBirthYear, err)
			}
		}

		table.Trips = append(table.Trips, trip)
		table.Records = append(table.Records, record)
	}

	return table, nil
}

func parseTrip(record []string, index map[string]int, layout string) (model.Trip, error) {
	start, err := time.Parse(layout, strings.TrimSpace(record[index[ColStartTime]]))
	if err != nil {
		return model.Trip{}, fmt.Errorf("%s: %w", ColStartTime, err)
	}
	end, err := time.Parse(layout, strings.TrimSpace(record[index[ColEndTime]]))
	if err != nil {
		return model.Trip{}, fmt.Errorf("%s: %w", ColEndTime, err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(record[index[ColDuration]]), 64)
	if err != nil {
		return model.Trip{}, fmt.Errorf("%s: %w", ColDuration, err)
	}

	return model.NewTrip(
		start,
		end,
		record[index[ColStartStation]],
		record[index[ColEndStation]],
		duration,
		strings.TrimSpace(record[index[ColUserType]]),
	), nil
}

// parseYear accepts "1989" and "1989.0"; a blank cell yields 0.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
