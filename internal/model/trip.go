package model

import "time"

// Trip is one bikeshare trip record.
//
// Gender and BirthYear are only populated when the source file carries those
// columns and the cell is non-empty; see Table.HasGender and Table.HasBirthYear.
type Trip struct {
	// StartTime is when the bike was checked out.
	StartTime time.Time

	// EndTime is when the bike was returned.
	EndTime time.Time

	StartStation string
	EndStation   string

	// Duration is the trip length in seconds.
	Duration float64

	// UserType is the rider category, e.g. "Subscriber" or "Customer".
	// Empty when the cell was blank.
	UserType string

	// Gender is empty when unknown.
	Gender string

	// BirthYear is 0 when unknown.
	BirthYear int

	// Month (1-12), Day (0=Monday .. 6=Sunday) and Hour (0-23) are derived
	// from StartTime when the trip is loaded.
	Month int
	Day   int
	Hour  int
}

// NewTrip creates a Trip and derives its calendar fields from start.
func NewTrip(start, end time.Time, startStation, endStation string, duration float64, userType string) Trip {
	return Trip{
		StartTime:    start,
		EndTime:      end,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        int(start.Month()),
		Day:          Weekday(start),
		Hour:         start.Hour(),
	}
}

// Weekday returns the day of week of t with Monday=0 and Sunday=6.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Table is a loaded, filtered trip dataset.
//
// Records holds the raw cells of each kept row in source order and is what the
// raw data pager displays; Trips holds the same rows parsed. Records[i] and
// Trips[i] always describe the same row.
type Table struct {
	Header  []string
	Records [][]string
	Trips   []Trip

	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Trips)
}

// Filter returns a new table holding only the trips that match f's month and
// day selection. Header and column flags are shared with t.
func (t *Table) Filter(f Filter) *Table {
	out := &Table{
		Header:       t.Header,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}
	month := f.Month.Number()
	day := f.Day.Number()
	for i, trip := range t.Trips {
		if !f.Month.IsAll() && trip.Month != month {
			continue
		}
		if !f.Day.IsAll() && trip.Day != day {
			continue
		}
		out.Trips = append(out.Trips, trip)
		out.Records = append(out.Records, t.Records[i])
	}
	return out
}
