package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/model"
)

type staticLoader struct {
	table *model.Table
	err   error
}

func (l staticLoader) Load(_ context.Context, f model.Filter) (*model.Table, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.table.Filter(f), nil
}

func testTable() *model.Table {
	t := &model.Table{Header: []string{"", "Start Time", "User Type"}}
	start := time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC)
	for i := range 7 {
		s := start.Add(time.Duration(i) * time.Hour)
		t.Trips = append(t.Trips, model.NewTrip(s, s.Add(10*time.Minute), "A", "B", 600, "Subscriber"))
		t.Records = append(t.Records, []string{"1", s.Format(time.DateTime), "Subscriber"})
	}
	return t
}

func newTestModel(loader staticLoader) Model {
	settings := config.DefaultSettings()
	settings.PlotDir = ""
	return NewModel(settings, loader, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func answer(t *testing.T, m Model, value string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(value)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func key(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// selectFilters walks the model to the loading state.
func selectFilters(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = answer(t, m, "Chicago")
	m, _ = answer(t, m, "all")
	m, _ = answer(t, m, "monday")
	m, cmd := answer(t, m, "y")
	require.Equal(t, StateLoading, m.state)
	require.NotNil(t, cmd)
	return m
}

func TestModel_selection(t *testing.T) {
	m := newTestModel(staticLoader{table: testTable()})
	require.Equal(t, StateCity, m.state)

	m, _ = answer(t, m, "Boston")
	require.Equal(t, StateCity, m.state)
	require.Contains(t, m.invalid, "Chicago, New York City or Washington")
	require.Empty(t, m.input.Value())

	m, _ = answer(t, m, "new york city")
	require.Equal(t, StateMonth, m.state)
	require.Empty(t, m.invalid)

	m, _ = answer(t, m, "julember")
	require.Equal(t, StateMonth, m.state)
	require.NotEmpty(t, m.invalid)

	m, _ = answer(t, m, "June")
	m, _ = answer(t, m, "Funday")
	require.Equal(t, StateDay, m.state)

	m, _ = answer(t, m, "friday")
	require.Equal(t, StateConfirm, m.state)
	require.Equal(t, model.Filter{City: model.NewYorkCity, Month: "june", Day: "friday"}, m.filter)
	require.Contains(t, m.View(), "City: New York City, Month: June, Day: Friday")

	m, _ = answer(t, m, "maybe")
	require.Equal(t, StateConfirm, m.state)
	require.Equal(t, "Please enter a valid input: Y/N", m.invalid)

	m, _ = answer(t, m, "no")
	require.Equal(t, StateCity, m.state)
	require.Equal(t, model.Filter{}, m.filter)
}

func TestModel_typingQuitKeyIsInput(t *testing.T) {
	m := newTestModel(staticLoader{table: testTable()})

	m, _ = send(t, m, key("q"))
	m, _ = send(t, m, key("n"))

	require.Equal(t, StateCity, m.state)
	require.Equal(t, "qn", m.input.Value())
}

func TestModel_reportAndRawData(t *testing.T) {
	m := selectFilters(t, newTestModel(staticLoader{table: testTable()}))

	msg := m.load(m.filter)()
	m, _ = send(t, m, msg)

	require.Equal(t, StateReport, m.state)
	require.Len(t, m.sections, 4)
	require.Equal(t, 7, m.table.Len())
	require.Contains(t, m.viewport.View(), "Calculating The Most Frequent Times of Travel...")

	m, _ = send(t, m, key("r"))
	require.Equal(t, StateRaw, m.state)
	require.Len(t, m.page, 5)
	require.Contains(t, m.View(), "Rows 1-5 of 7")

	m, _ = send(t, m, key("r"))
	require.Len(t, m.page, 2)
	require.Contains(t, m.View(), "Rows 6-7 of 7")

	m, _ = send(t, m, key("r"))
	require.Empty(t, m.page)
	require.Contains(t, m.View(), "No more raw data to show.")

	m, _ = send(t, m, key("b"))
	require.Equal(t, StateReport, m.state)

	m, _ = send(t, m, key("n"))
	require.Equal(t, StateCity, m.state)
	require.Nil(t, m.table)
}

func TestModel_rawLabelOnPartialPage(t *testing.T) {
	tests := []struct {
		pageSize int
		presses  int
		want     string
	}{
		{5, 2, "Rows 6-7 of 7"},
		{3, 3, "Rows 7-7 of 7"},
		{7, 1, "Rows 1-7 of 7"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := newTestModel(staticLoader{table: testTable()})
			m.settings.RawPageSize = tt.pageSize
			m = selectFilters(t, m)
			m, _ = send(t, m, m.load(m.filter)())

			for range tt.presses {
				m, _ = send(t, m, key("r"))
			}

			require.Contains(t, m.View(), tt.want)
		})
	}
}

func TestModel_loadError(t *testing.T) {
	m := selectFilters(t, newTestModel(staticLoader{err: errors.New("no such file")}))

	m, _ = send(t, m, m.load(m.filter)())

	require.Equal(t, StateError, m.state)
	require.ErrorContains(t, m.err, "load Chicago data: no such file")
	require.Contains(t, m.View(), "no such file")
}

func TestModel_staleLoadIgnored(t *testing.T) {
	m := selectFilters(t, newTestModel(staticLoader{table: testTable()}))
	stale := m.load(m.filter)()

	m.reset()
	m = selectFilters(t, m)
	m, _ = send(t, m, stale)

	require.Equal(t, StateLoading, m.state)
}

func TestModel_quit(t *testing.T) {
	m := newTestModel(staticLoader{table: testTable()})

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Error(t, m.ctx.Err())
}
