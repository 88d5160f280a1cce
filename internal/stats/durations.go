package stats

import (
	"fmt"

	"github.com/handiism/bikeshare/internal/model"
)

// DurationStats holds total and mean trip duration, truncated to whole seconds.
type DurationStats struct {
	Total int64
	Mean  int64
	Trips int
}

// Durations sums and averages the trip durations.
func Durations(t *model.Table) DurationStats {
	var sum float64
	for _, trip := range t.Trips {
		sum += trip.Duration
	}

	s := DurationStats{Total: int64(sum), Trips: len(t.Trips)}
	if s.Trips > 0 {
		s.Mean = int64(sum / float64(s.Trips))
	}
	return s
}

// FormatDuration renders seconds as H:MM:SS, prefixed with the number of whole
// days when there is at least one ("1 day, 2:03:04", "3 days, 0:00:10").
// Negative values are rendered with a leading minus sign.
func FormatDuration(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	days := seconds / 86400
	seconds %= 86400
	clock := fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)

	switch {
	case days == 1:
		return fmt.Sprintf("%s1 day, %s", sign, clock)
	case days > 1:
		return fmt.Sprintf("%s%d days, %s", sign, days, clock)
	}
	return sign + clock
}
