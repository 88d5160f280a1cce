package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCity is returned when a city name is not one of the supported cities.
	ErrUnknownCity = errors.New("unknown city")

	// ErrUnknownMonth is returned when a month is neither "all" nor a month name.
	ErrUnknownMonth = errors.New("unknown month")

	// ErrUnknownDay is returned when a day is neither "all" nor a weekday name.
	ErrUnknownDay = errors.New("unknown day")
)

// All is the filter value that disables the month or day restriction.
const All = "all"

// City identifies one of the supported bikeshare systems.
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYorkCity, Washington}

// ParseCity validates a city name. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseCity(s string) (City, error) {
	name := normalize(s)
	for _, c := range Cities {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
}

// FileName returns the default data file name for the city,
// e.g. "new_york_city.csv".
func (c City) FileName() string {
	return strings.ReplaceAll(string(c), " ", "_") + ".csv"
}

// Title returns the display name of the city, e.g. "New York City".
func (c City) Title() string {
	return title(string(c))
}

// Month is a month filter: "all" or a lower-case English month name.
type Month string

// MonthAll disables month filtering.
const MonthAll Month = All

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ParseMonth validates a month filter. Matching is case-insensitive.
func ParseMonth(s string) (Month, error) {
	name := normalize(s)
	if name == All {
		return MonthAll, nil
	}
	for _, m := range monthNames {
		if m == name {
			return Month(m), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMonth, s)
}

// IsAll reports whether the month filter is disabled.
func (m Month) IsAll() bool {
	return m == MonthAll
}

// Number returns 1 for January through 12 for December, and 0 for "all".
func (m Month) Number() int {
	for i, name := range monthNames {
		if string(m) == name {
			return i + 1
		}
	}
	return 0
}

// Title returns the display name, e.g. "January" or "All".
func (m Month) Title() string {
	return title(string(m))
}

// MonthName returns the English name of month n (1-12).
// Out-of-range values yield an empty string.
func MonthName(n int) string {
	if n < 1 || n > len(monthNames) {
		return ""
	}
	return title(monthNames[n-1])
}

// Day is a day-of-week filter: "all" or a lower-case English weekday name.
type Day string

// DayAll disables day filtering.
const DayAll Day = All

// Weekdays are indexed Monday=0 through Sunday=6.
var dayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ParseDay validates a day filter. Matching is case-insensitive.
func ParseDay(s string) (Day, error) {
	name := normalize(s)
	if name == All {
		return DayAll, nil
	}
	for _, d := range dayNames {
		if d == name {
			return Day(d), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// IsAll reports whether the day filter is disabled.
func (d Day) IsAll() bool {
	return d == DayAll
}

// Number returns 0 for Monday through 6 for Sunday, and -1 for "all".
func (d Day) Number() int {
	for i, name := range dayNames {
		if string(d) == name {
			return i
		}
	}
	return -1
}

// Title returns the display name, e.g. "Monday" or "All".
func (d Day) Title() string {
	return title(string(d))
}

// DayName returns the English name of weekday n (0=Monday .. 6=Sunday).
// Out-of-range values yield an empty string.
func DayName(n int) string {
	if n < 0 || n >= len(dayNames) {
		return ""
	}
	return title(dayNames[n])
}

// Filter is a validated selection of city, month and day.
type Filter struct {
	City  City
	Month Month
	Day   Day
}

// NewFilter validates the three raw values and builds a Filter.
func NewFilter(city, month, day string) (Filter, error) {
	c, err := ParseCity(city)
	if err != nil {
		return Filter{}, err
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Filter{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return Filter{}, err
	}
	return Filter{City: c, Month: m, Day: d}, nil
}

// String renders the selection summary shown to the user.
func (f Filter) String() string {
	return fmt.Sprintf("City: %s, Month: %s, Day: %s", f.City.Title(), f.Month.Title(), f.Day.Title())
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// title upper-cases the first letter of every word.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
