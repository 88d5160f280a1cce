package stats

import (
	"cmp"
	"slices"
)

// Mode returns the most frequent value in values.
//
// Ties resolve to the smallest of the tied values, so the result does not
// depend on row order. ok is false when values is empty.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// GroupCount is the number of rows sharing one value.
type GroupCount struct {
	Value string
	Count int
}

// CountBy tallies the non-empty values, ordered by value.
// Every distinct value is returned; callers decide how many to show.
func CountBy(values []string) []GroupCount {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	groups := make([]GroupCount, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, GroupCount{Value: v, Count: n})
	}
	slices.SortFunc(groups, func(a, b GroupCount) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return groups
}

// nonEmpty drops blank strings, which stand for missing cells.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
