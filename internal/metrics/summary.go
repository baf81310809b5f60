// Package metrics derives descriptive statistics from a sampled curve.
package metrics

import "gonum.org/v1/gonum/floats"

// Summary locates the main features of a response curve.
type Summary struct {
	Samples int     `json:"samples"`
	PeakX   float64 `json:"peak_x"`
	PeakY   float64 `json:"peak_y"`
	TroughX float64 `json:"trough_x"`
	TroughY float64 `json:"trough_y"`
	// FWHM is the width of the peak at half its height, in x units. Zero
	// when the peak is not positive.
	FWHM    float64 `json:"fwhm"`
}

// Summarize computes a Summary of y sampled at x. Mismatched or empty
// inputs give a zero Summary.
func Summarize(x, y []float64) Summary {
	if len(y) == 0 || len(x) != len(y) {
		return Summary{}
	}
	peak := floats.MaxIdx(y)
	trough := floats.MinIdx(y[peak:]) + peak
	return Summary{
		Samples: len(y),
		PeakX:   x[peak],
		PeakY:   y[peak],
		TroughX: x[trough],
		TroughY: y[trough],
		FWHM:    fwhm(x, y, peak),
	}
}

func fwhm(x, y []float64, peak int) float64 {
	if y[peak] <= 0 {
		return 0
	}
	half := y[peak] / 2

	left := x[0]
	for i := peak; i > 0; i-- {
		if y[i-1] < half {
			left = lerp(x[i-1], x[i], y[i-1], y[i], half)
			break
		}
	}
	right := x[len(x)-1]
	for i := peak; i < len(y)-1; i++ {
		if y[i+1] < half {
			right = lerp(x[i], x[i+1], y[i], y[i+1], half)
			break
		}
	}
	return right - left
}

// lerp returns the x at which the segment (x0,y0)-(x1,y1) crosses level.
func lerp(x0, x1, y0, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}
	return x0 + (level-y0)*(x1-x0)/(y1-y0)
}
