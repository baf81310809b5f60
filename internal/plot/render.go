package plot

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// Render draws the x/y line on a braille canvas of cols x rows cells using
// the figure's axis ranges. Points outside the ranges are clipped, not
// rescaled.
func (f *Figure) Render(cols, rows int) string {
	c := NewCanvas(cols, rows)
	w, h := c.Dots()

	xs, ys := f.source.data[ColumnX], f.source.data[ColumnY]
	xr, yr := f.xRange, f.yRange
	xSpan, ySpan := xr.Span(), yr.Span()
	if xSpan == 0 {
		xSpan = 1
	}
	if ySpan == 0 {
		ySpan = 1
	}

	project := func(x, y float64) (float64, float64) {
		px := (x - xr.Start) / xSpan * float64(w-1)
		py := float64(h-1) - (y-yr.Start)/ySpan*float64(h-1)
		return px, py
	}

	if yr.Contains(0) {
		_, zy := project(0, 0)
		row := int(math.Round(zy))
		for x := 0; x < w; x += 3 {
			c.Set(x, row)
		}
	}

	for i := 1; i < len(xs) && i < len(ys); i++ {
		x0, y0 := project(xs[i-1], ys[i-1])
		x1, y1 := project(xs[i], ys[i])
		x0, y0, x1, y1, ok := clip(x0, y0, x1, y1, float64(w-1), float64(h-1))
		if !ok {
			continue
		}
		c.Line(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	}
	return c.String()
}

// RenderASCII plots the y column with asciigraph, captioned with the title.
// The y range widens the plot but never clips it.
func (f *Figure) RenderASCII(width, height int) string {
	ys := f.source.data[ColumnY]
	if len(ys) == 0 {
		return ""
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(f.yRange.Start),
		asciigraph.UpperBound(f.yRange.End),
		asciigraph.Precision(4),
		asciigraph.Caption(f.title),
	)
}

// clip trims a segment to the box [0, maxX] x [0, maxY] (Liang-Barsky).
func clip(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
