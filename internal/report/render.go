package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/handiism/bikeshare/internal/model"
	"github.com/handiism/bikeshare/internal/stats"
)

// Styles for console reports
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// histogramWidth is the length of the longest text histogram bar.
const histogramWidth = 40

const noTrips = "No trips match the selected filters."

func line(label string, value any) string {
	return fmt.Sprintf("%s %s\n", labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

// RenderTimes formats the most frequent times of travel.
func RenderTimes(s stats.TimeStats) string {
	if s.Trips == 0 {
		return noTrips + "\n"
	}

	var b strings.Builder
	b.WriteString(line("The most common hire month is:", model.MonthName(s.Month)))
	b.WriteString(line("The most common hire day is:", model.DayName(s.Day)))
	b.WriteString(line("The most common hire hour is:", fmt.Sprintf("%d:00", s.Hour)))
	return b.String()
}

// RenderStations formats the popular stations and the top station pairs.
func RenderStations(s stats.StationStats, topN int) string {
	if s.StartStation == "" && len(s.TopPairs) == 0 {
		return noTrips + "\n"
	}

	var b strings.Builder
	b.WriteString(line("The most common start station is:", s.StartStation))
	b.WriteString(line("The most common end station is:", s.EndStation))
	b.WriteString(labelStyle.Render(fmt.Sprintf("The top %s start and end station pairs are:", countWord(topN))))
	b.WriteString("\n")

	rows := make([][]string, len(s.TopPairs))
	for i, p := range s.TopPairs {
		rows[i] = []string{p.Start, p.End, strconv.Itoa(p.Count)}
	}
	b.WriteString(renderTable([]string{"Start Station", "End Station", "Trips"}, rows))
	b.WriteString("\n")
	return b.String()
}

// RenderDurations formats the total and mean trip duration.
func RenderDurations(s stats.DurationStats) string {
	if s.Trips == 0 {
		return noTrips + "\n"
	}

	var b strings.Builder
	b.WriteString(line("Total trip time in this period was:", stats.FormatDuration(s.Total)))
	b.WriteString(line("Mean trip time was:", stats.FormatDuration(s.Mean)))
	return b.String()
}

// RenderUsers formats user type and gender counts and the birth year summary.
// The filter is shown in the histogram title.
func RenderUsers(s stats.UserStats, f model.Filter) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Counts of user types:"))
	b.WriteString("\n")
	b.WriteString(renderGroups("User Type", s.UserTypes))

	if s.HasGender {
		b.WriteString(labelStyle.Render("Counts of gender:"))
		b.WriteString("\n")
		b.WriteString(renderGroups("Gender", s.Genders))
	} else {
		b.WriteString("No gender data is available\n")
	}

	if s.BirthYears == nil {
		b.WriteString("No date of birth data is available\n")
		return b.String()
	}
	if s.BirthYears.Known == 0 {
		b.WriteString("No date of birth data is known for these trips\n")
		return b.String()
	}

	b.WriteString(line("The earliest year of birth is:", s.BirthYears.Earliest))
	b.WriteString(line("The most recent year of birth is:", s.BirthYears.MostRecent))
	b.WriteString(line("The most common year of birth is:", s.BirthYears.MostCommon))
	b.WriteString("\n")
	b.WriteString(RenderHistogram(HistogramTitle(f), s.BirthYears.Histogram))
	return b.String()
}

// RenderHistogram draws h as horizontal text bars under the given title lines.
func RenderHistogram(title []string, h stats.Histogram) string {
	var b strings.Builder
	for _, t := range title {
		b.WriteString(headingStyle.Render(t))
		b.WriteString("\n")
	}

	maxCount := h.MaxCount()
	for i, count := range h.Counts {
		width := 0
		if maxCount > 0 {
			width = count * histogramWidth / maxCount
		}
		if count > 0 && width == 0 {
			width = 1
		}
		label := fmt.Sprintf("%7.1f - %7.1f", h.Edges[i], h.Edges[i+1])
		fmt.Fprintf(&b, "%s | %s %d\n", label, barStyle.Render(strings.Repeat("█", width)), count)
	}
	return b.String()
}

// RenderRows formats a page of raw data rows. A blank header cell (the
// unnamed index column) is shown as "#".
func RenderRows(header []string, rows [][]string) string {
	headers := make([]string, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			h = "#"
		}
		headers[i] = h
	}
	return renderTable(headers, rows) + "\n"
}

func renderGroups(name string, groups []stats.GroupCount) string {
	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{g.Value, strconv.Itoa(g.Count)}
	}
	return renderTable([]string{name, "Count"}, rows) + "\n"
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func countWord(n int) string {
	words := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return strconv.Itoa(n)
}
