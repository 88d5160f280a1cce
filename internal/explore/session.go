package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/model"
	"github.com/handiism/bikeshare/internal/report"
)

// TableLoader loads the filtered trip table for a selection.
type TableLoader interface {
	Load(ctx context.Context, f model.Filter) (*model.Table, error)
}

// Session runs the interactive explore loop: collect filters, load data,
// print the four reports, page raw data, offer to restart.
type Session struct {
	settings *config.Settings
	loader   TableLoader
	reporter *report.Reporter
	prompter *Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewSession creates a Session reading answers from in and printing to out.
// A nil logger uses slog.Default().
func NewSession(settings *config.Settings, loader TableLoader, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		settings: settings,
		loader:   loader,
		reporter: report.NewReporter(settings, logger),
		prompter: NewPrompter(in, out),
		out:      out,
		logger:   logger,
	}
}

// Run repeats the explore cycle until the user declines to restart or input
// ends. Load errors end the loop and are returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		restart, err := s.runOnce(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (s *Session) runOnce(ctx context.Context) (bool, error) {
	f, err := s.prompter.Filters()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, report.Rule)

	logger := s.logger.With("session", uuid.NewString())
	logger.Info("session started", "city", string(f.City), "month", string(f.Month), "day", string(f.Day))

	table, err := s.loader.Load(ctx, f)
	if err != nil {
		return false, fmt.Errorf("load %s data: %w", f.City.Title(), err)
	}
	logger.Info("dataset loaded", "rows", table.Len())

	fmt.Fprint(s.out, s.reporter.Times(table))
	fmt.Fprint(s.out, s.reporter.Stations(table))
	fmt.Fprint(s.out, s.reporter.Durations(table))
	fmt.Fprint(s.out, s.reporter.Users(table, f))

	if err := s.showRaw(table); err != nil {
		return false, err
	}

	answer, err := s.prompter.Ask("\nWould you like to restart? Enter yes or no.\n")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// showRaw pages through the table's raw rows for as long as the user asks.
func (s *Session) showRaw(table *model.Table) error {
	pager := NewPager(table, s.settings.RawPageSize)
	size := pager.Size()
	more, err := s.prompter.YesNo(fmt.Sprintf("Would you like to see %d lines of raw data? Y/N: ", size))
	if err != nil {
		return err
	}

	for more {
		if pager.Done() {
			fmt.Fprintln(s.out, "No more raw data to show.")
			return nil
		}
		fmt.Fprint(s.out, report.RenderRows(table.Header, pager.Next()))

		more, err = s.prompter.Yes(fmt.Sprintf("Would you like to see %d more lines? Y/N: ", size))
		if err != nil {
			return err
		}
	}
	return nil
}
