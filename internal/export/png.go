package export

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// WritePNG renders the curve with go-chart using the snapshot's axis
// ranges.
func WritePNG(w io.Writer, snap Snapshot, width, height int) error {
	xr, yr := snap.XRange, snap.YRange
	if xr.Span() == 0 {
		xr.End = xr.Start + 1
	}
	if yr.Span() == 0 {
		yr.End = yr.Start + 1
	}

	ch := chart.Chart{
		Title:  snap.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "sample",
			Range: &chart.ContinuousRange{Min: xr.Start, Max: xr.End},
		},
		YAxis: chart.YAxis{
			Name:  "response",
			Range: &chart.ContinuousRange{Min: yr.Start, Max: yr.End},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    snap.Params.Title,
				XValues: snap.X,
				YValues: snap.Y,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue.WithAlpha(153),
					StrokeWidth: 3,
				},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}
