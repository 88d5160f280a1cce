package stats

import "math"

// Histogram is a set of equal-width bins over a range of values.
//
// Edges has len(Counts)+1 entries; bin i covers [Edges[i], Edges[i+1]) except
// the last bin, which also includes its upper edge.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// NewHistogram bins values into n equal-width bins spanning [min, max].
//
// When all values are equal the range is widened to [v-0.5, v+0.5].
// An empty input yields n empty bins over [0, 1]. NaN values are ignored.
func NewHistogram(values []float64, n int) Histogram {
	if n < 1 {
		n = 1
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	switch {
	case math.IsInf(lo, 1):
		lo, hi = 0, 1
	case lo == hi:
		lo, hi = lo-0.5, hi+0.5
	}

	h := Histogram{
		Edges:  make([]float64, n+1),
		Counts: make([]int, n),
	}
	width := (hi - lo) / float64(n)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[n] = hi

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		h.Counts[i]++
	}
	return h
}

// Total returns the number of values in all bins.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// MaxCount returns the largest bin count.
func (h Histogram) MaxCount() int {
	m := 0
	for _, c := range h.Counts {
		m = max(m, c)
	}
	return m
}
