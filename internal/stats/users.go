package stats

import "github.com/handiism/bikeshare/internal/model"

// UserStats holds bikeshare user demographics.
type UserStats struct {
	UserTypes []GroupCount

	// Genders is only meaningful when HasGender is true.
	HasGender bool
	Genders   []GroupCount

	// BirthYears is nil when the dataset has no birth year column.
	BirthYears *BirthYearStats
}

// BirthYearStats summarizes the known birth years of the riders.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int

	// Known is the number of trips with a birth year.
	Known int

	Histogram Histogram
}

// Users counts user types and genders and bins the birth years into a
// histogram with the given number of bins.
func Users(t *model.Table, bins int) UserStats {
	userTypes := make([]string, len(t.Trips))
	for i, trip := range t.Trips {
		userTypes[i] = trip.UserType
	}

	s := UserStats{
		UserTypes: CountBy(userTypes),
		HasGender: t.HasGender,
	}

	if t.HasGender {
		genders := make([]string, len(t.Trips))
		for i, trip := range t.Trips {
			genders[i] = trip.Gender
		}
		s.Genders = CountBy(genders)
	}

	if t.HasBirthYear {
		s.BirthYears = birthYears(t.Trips, bins)
	}

	return s
}

func birthYears(trips []model.Trip, bins int) *BirthYearStats {
	var years []int
	var values []float64
	for _, trip := range trips {
		if trip.BirthYear == 0 {
			continue
		}
		years = append(years, trip.BirthYear)
		values = append(values, float64(trip.BirthYear))
	}

	b := &BirthYearStats{
		Known:     len(years),
		Histogram: NewHistogram(values, bins),
	}
	if len(years) == 0 {
		return b
	}

	b.Earliest, b.MostRecent = years[0], years[0]
	for _, y := range years[1:] {
		b.Earliest = min(b.Earliest, y)
		b.MostRecent = max(b.MostRecent, y)
	}
	b.MostCommon, _ = Mode(years)
	return b
}
