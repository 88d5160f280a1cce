package stats

import "github.com/handiism/bikeshare/internal/model"

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	// Month is 1-12, Day is 0=Monday .. 6=Sunday, Hour is 0-23.
	Month int
	Day   int
	Hour  int

	// Trips is the number of rows the modes were computed over.
	// The other fields are meaningless when it is zero.
	Trips int
}

// Times computes the most common start month, day of week and hour.
func Times(t *model.Table) TimeStats {
	months := make([]int, len(t.Trips))
	days := make([]int, len(t.Trips))
	hours := make([]int, len(t.Trips))
	for i, trip := range t.Trips {
		months[i] = trip.Month
		days[i] = trip.Day
		hours[i] = trip.Hour
	}

	s := TimeStats{Trips: len(t.Trips)}
	s.Month, _ = Mode(months)
	s.Day, _ = Mode(days)
	s.Hour, _ = Mode(hours)
	return s
}
