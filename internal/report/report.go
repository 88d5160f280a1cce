package report

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/bikeshare/internal/config"
	ioutils "github.com/handiism/bikeshare/internal/io"
	"github.com/handiism/bikeshare/internal/model"
	"github.com/handiism/bikeshare/internal/stats"
)

// Rule separates report sections.
var Rule = strings.Repeat("-", 40)

// Section is one rendered report.
type Section struct {
	Heading string
	Body    string
	Elapsed time.Duration
}

// String renders the section the way the console shows it: heading, body,
// timing line and a closing rule.
func (s Section) String() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headingStyle.Render(s.Heading))
	b.WriteString("\n\n")
	b.WriteString(s.Body)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("This took %s seconds.", formatSeconds(s.Elapsed))))
	b.WriteString("\n")
	b.WriteString(Rule)
	b.WriteString("\n")
	return b.String()
}

// Reporter computes and renders the four trip reports.
//
// Example:
//
//	r := report.NewReporter(settings, logger)
//	fmt.Print(r.Times(table))
//	fmt.Print(r.Stations(table))
//	fmt.Print(r.Durations(table))
//	fmt.Print(r.Users(table, filter))
type Reporter struct {
	settings *config.Settings
	charts   *ioutils.ChartRenderer
	logger   *slog.Logger
}

// NewReporter creates a Reporter. A nil logger uses slog.Default().
func NewReporter(settings *config.Settings, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		settings: settings,
		charts:   ioutils.NewChartRenderer(settings.PlotWidth, settings.PlotHeight),
		logger:   logger,
	}
}

// Times reports the most frequent times of travel.
func (r *Reporter) Times(t *model.Table) Section {
	start := time.Now()
	s := stats.Times(t)
	return r.section("Calculating The Most Frequent Times of Travel...", RenderTimes(s), start)
}

// Stations reports the most popular stations and trips.
func (r *Reporter) Stations(t *model.Table) Section {
	start := time.Now()
	s := stats.Stations(t, r.settings.TopPairs)
	return r.section("Calculating The Most Popular Stations and Trip...", RenderStations(s, r.settings.TopPairs), start)
}

// Durations reports total and mean trip duration.
func (r *Reporter) Durations(t *model.Table) Section {
	start := time.Now()
	s := stats.Durations(t)
	return r.section("Calculating Trip Duration...", RenderDurations(s), start)
}

// Users reports user demographics. The filter only feeds the histogram title
// and the PNG file name.
//
// When a plot directory is configured and birth years are known, the histogram
// is also written there as a PNG; a failed write is logged and mentioned in the
// report but does not fail it.
func (r *Reporter) Users(t *model.Table, f model.Filter) Section {
	start := time.Now()
	s := stats.Users(t, r.settings.HistogramBins)

	body := RenderUsers(s, f)
	if path, err := r.writeHistogram(s, f); err != nil {
		r.logger.Warn("histogram not saved", "error", err)
		body += fmt.Sprintf("\n%s\n", warningStyle.Render("Could not save histogram: "+err.Error()))
	} else if path != "" {
		body += fmt.Sprintf("\n%s\n", dimStyle.Render("Histogram saved to "+path))
	}

	return r.section("Calculating User Stats...", body, start)
}

// All computes the four reports concurrently and returns them in display
// order. The table is only read.
func (r *Reporter) All(ctx context.Context, t *model.Table, f model.Filter) ([]Section, error) {
	sections := make([]Section, 4)
	g, ctx := errgroup.WithContext(ctx)

	jobs := []func() Section{
		func() Section { return r.Times(t) },
		func() Section { return r.Stations(t) },
		func() Section { return r.Durations(t) },
		func() Section { return r.Users(t, f) },
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sections[i] = job()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *Reporter) section(heading, body string, start time.Time) Section {
	elapsed := time.Since(start)
	r.logger.Debug("report computed", "report", heading, "elapsed", elapsed)
	return Section{Heading: heading, Body: body, Elapsed: elapsed}
}

func (r *Reporter) writeHistogram(s stats.UserStats, f model.Filter) (string, error) {
	if r.settings.PlotDir == "" || s.BirthYears == nil || s.BirthYears.Known == 0 {
		return "", nil
	}

	name := ioutils.SanitizeFileName(fmt.Sprintf("birth_years %s %s %s", f.City, f.Month, f.Day)) + ".png"
	path := filepath.Join(r.settings.PlotDir, name)
	chart := ioutils.Chart{
		Title:     HistogramTitle(f),
		XLabel:    "Year of Birth",
		YLabel:    "Frequency",
		Histogram: s.BirthYears.Histogram,
	}
	if err := r.charts.WriteHistogram(path, chart); err != nil {
		return "", err
	}
	r.logger.Info("histogram saved", "path", path)
	return path, nil
}

// HistogramTitle returns the title lines of the birth year histogram.
func HistogramTitle(f model.Filter) []string {
	return []string{"User Year of Birth Histogram", f.String()}
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}
