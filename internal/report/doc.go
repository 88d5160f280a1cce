// Package report turns trip statistics into the console reports.
//
// A Reporter computes one statistic group with the stats package, renders it
// with lipgloss styles and wraps it in a Section carrying the heading and the
// time it took:
//
//	r := report.NewReporter(settings, logger)
//	fmt.Print(r.Times(table))
//
// All computes the four sections concurrently for front ends that show them
// at once. The Render* functions are exported for callers that already hold
// computed statistics.
package report
