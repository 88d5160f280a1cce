// Package ioutils provides file system and chart rendering utilities.
//
// This package contains functions for:
//   - File writing and existence checks
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Rendering histograms to PNG images
//
// # File Operations
//
//	err := ioutils.EnsureDir("/path/to/plots")
//	err = ioutils.WriteFile("/path/to/plots/chart.png", pngBytes)
//
// # Charts
//
// The ChartRenderer draws a bar chart of a stats.Histogram with a multi-line
// title and axis labels:
//
//	r := ioutils.NewChartRenderer(800, 480)
//	png, err := r.RenderHistogram(ioutils.Chart{
//	    Title:     []string{"User Year of Birth Histogram", "City: Chicago, Month: All, Day: All"},
//	    XLabel:    "Year of Birth",
//	    YLabel:    "Frequency",
//	    Histogram: h,
//	})
package ioutils
