package export

import (
	"fmt"
	"html"
	"strings"
)

// SVG renders the curve as a polyline inside the snapshot's axis ranges.
// Segments outside the ranges are clipped by the viewport.
func SVG(snap Snapshot, width, height int, stroke string) string {
	if len(snap.Y) < 2 {
		return ""
	}

	xr, yr := snap.XRange, snap.YRange
	xSpan, ySpan := xr.Span(), yr.Span()
	if xSpan == 0 {
		xSpan = 1
	}
	if ySpan == 0 {
		ySpan = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<title>%s</title>
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height, html.EscapeString(snap.Title))

	if yr.Contains(0) {
		zy := float64(height) - (0-yr.Start)/ySpan*float64(height)
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, zy, width, zy)
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="3" stroke-opacity="0.6" d="M`, stroke)
	for i := range snap.Y {
		x := (snap.X[i] - xr.Start) / xSpan * float64(width)
		y := float64(height) - (snap.Y[i]-yr.Start)/ySpan*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
