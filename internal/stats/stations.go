package stats

import (
	"cmp"
	"slices"

	"github.com/handiism/bikeshare/internal/model"
)

// PairCount is the number of trips between a start and an end station.
type PairCount struct {
	Start string
	End   string
	Count int
}

// StationStats holds the most popular stations and trips.
type StationStats struct {
	StartStation string
	EndStation   string

	// TopPairs is ordered by descending count.
	TopPairs []PairCount
}

// Stations computes the most common start and end stations and the topN most
// frequent (start, end) pairs.
func Stations(t *model.Table, topN int) StationStats {
	starts := make([]string, 0, len(t.Trips))
	ends := make([]string, 0, len(t.Trips))
	for _, trip := range t.Trips {
		starts = append(starts, trip.StartStation)
		ends = append(ends, trip.EndStation)
	}

	var s StationStats
	s.StartStation, _ = Mode(nonEmpty(starts))
	s.EndStation, _ = Mode(nonEmpty(ends))
	s.TopPairs = TopPairs(t.Trips, topN)
	return s
}

// TopPairs groups trips by (start, end) station and returns the n largest
// groups. Groups are ordered by station names first and then stably by
// descending count, so equal counts keep alphabetical order. Trips missing
// either station are not counted.
func TopPairs(trips []model.Trip, n int) []PairCount {
	type key struct{ start, end string }
	counts := make(map[key]int)
	for _, trip := range trips {
		if trip.StartStation == "" || trip.EndStation == "" {
			continue
		}
		counts[key{trip.StartStation, trip.EndStation}]++
	}

	pairs := make([]PairCount, 0, len(counts))
	for k, c := range counts {
		pairs = append(pairs, PairCount{Start: k.start, End: k.end, Count: c})
	}
	slices.SortFunc(pairs, func(a, b PairCount) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})
	slices.SortStableFunc(pairs, func(a, b PairCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if n >= 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
