package ioutils

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/handiism/bikeshare/internal/stats"
)

var (
	chartBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	chartAxis       = color.RGBA{0x33, 0x33, 0x33, 0xff}
	chartBar        = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	chartBarEdge    = color.RGBA{0x14, 0x4c, 0x73, 0xff}
	chartText       = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

const (
	marginLeft   = 56
	marginRight  = 24
	marginTop    = 16
	marginBottom = 48
	lineHeight   = 16
)

// Chart describes a histogram image.
type Chart struct {
	// Title lines are drawn centered above the plot.
	Title []string

	XLabel string
	YLabel string

	Histogram stats.Histogram
}

// ChartRenderer draws charts into PNG images.
//
// The basic 7x13 bitmap font is used for all text so rendering needs no font
// files or display.
//
// Example:
//
//	r := NewChartRenderer(800, 480)
//	err := r.WriteHistogram("/plots/birth_years.png", chart)
type ChartRenderer struct {
	width  int
	height int
	face   font.Face
}

// NewChartRenderer creates a ChartRenderer producing width x height images.
func NewChartRenderer(width, height int) *ChartRenderer {
	return &ChartRenderer{
		width:  width,
		height: height,
		face:   basicfont.Face7x13,
	}
}

// RenderHistogram draws c as a bar chart and returns it PNG-encoded.
//
// Bars are scaled so the tallest bin fills the plot area. The x axis is
// labelled with the first, middle and last bin edges and the y axis with 0
// and the largest count.
func (r *ChartRenderer) RenderHistogram(c Chart) ([]byte, error) {
	bins := len(c.Histogram.Counts)
	if bins == 0 {
		return nil, errors.New("histogram has no bins")
	}

	// image.Rect would swap inverted corners, so check the plot area first.
	top := marginTop + len(c.Title)*lineHeight + lineHeight/2
	if r.width-marginLeft-marginRight < bins || r.height-marginBottom-top < 1 {
		return nil, errors.New("image too small for chart")
	}
	plot := image.Rect(marginLeft, top, r.width-marginRight, r.height-marginBottom)

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(chartBackground), image.Point{}, draw.Src)

	for i, line := range c.Title {
		r.drawCentered(img, line, r.width/2, marginTop+(i+1)*lineHeight)
	}

	// Bars
	maxCount := c.Histogram.MaxCount()
	for i, count := range c.Histogram.Counts {
		if count == 0 || maxCount == 0 {
			continue
		}
		x0 := plot.Min.X + i*plot.Dx()/bins
		x1 := plot.Min.X + (i+1)*plot.Dx()/bins
		h := count * plot.Dy() / maxCount
		bar := image.Rect(x0, plot.Max.Y-h, x1, plot.Max.Y)
		fill(img, bar, chartBarEdge)
		fill(img, bar.Inset(1), chartBar)
	}

	// Axes
	fill(img, image.Rect(plot.Min.X-1, plot.Min.Y, plot.Min.X, plot.Max.Y+1), chartAxis)
	fill(img, image.Rect(plot.Min.X-1, plot.Max.Y, plot.Max.X, plot.Max.Y+1), chartAxis)

	// Tick labels
	edges := c.Histogram.Edges
	tickY := plot.Max.Y + lineHeight
	for _, i := range []int{0, bins / 2, bins} {
		x := plot.Min.X + i*plot.Dx()/bins
		r.drawCentered(img, formatEdge(edges[i]), x, tickY)
	}
	r.drawRight(img, "0", plot.Min.X-4, plot.Max.Y)
	r.drawRight(img, strconv.Itoa(maxCount), plot.Min.X-4, plot.Min.Y+lineHeight/2)

	// Axis labels
	r.drawCentered(img, c.XLabel, plot.Min.X+plot.Dx()/2, tickY+lineHeight+4)
	r.drawText(img, c.YLabel, 4, plot.Min.Y-lineHeight/2)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHistogram renders c and writes the PNG to path, creating parent
// directories as needed.
func (r *ChartRenderer) WriteHistogram(path string, c Chart) error {
	data, err := r.RenderHistogram(c)
	if err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return WriteFile(path, data)
}

func (r *ChartRenderer) drawText(img draw.Image, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(chartText),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (r *ChartRenderer) drawCentered(img draw.Image, s string, cx, y int) {
	w := font.MeasureString(r.face, s).Ceil()
	r.drawText(img, s, cx-w/2, y)
}

func (r *ChartRenderer) drawRight(img draw.Image, s string, right, y int) {
	w := font.MeasureString(r.face, s).Ceil()
	r.drawText(img, s, right-w, y)
}

func fill(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// formatEdge prints whole numbers without a fraction.
func formatEdge(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
