package hrf

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Oversampling is the number of samples per repetition time.
const Oversampling = 50

// Params are the shape parameters of the gamma-difference curve. Times are in
// the same unit as the resolution.
type Params struct {
	TimeLength  float64
	Onset       float64
	Delay       float64
	Undershoot  float64
	Dispersion  float64
	UDispersion float64
	Ratio       float64
}

// DefaultParams returns the canonical SPM-style curve parameters.
func DefaultParams() Params {
	return Params{
		TimeLength:  32,
		Onset:       0,
		Delay:       6,
		Undershoot:  16,
		Dispersion:  1,
		UDispersion: 1,
		Ratio:       0.167,
	}
}

// Length returns the number of samples GammaDifference produces for the
// given resolution and time length.
func Length(resolution, timeLength float64) int {
	dt := resolution / Oversampling
	return int(math.RoundToEven(timeLength / dt))
}

// GammaDifference samples the curve over [0, TimeLength] at resolution/
// Oversampling spacing. The returned slice is freshly allocated.
func GammaDifference(resolution float64, p Params) ([]float64, error) {
	if resolution <= 0 || math.IsNaN(resolution) {
		return nil, &CurveError{Param: "resolution", Value: resolution, Wrapped: ErrResolution}
	}
	if p.Dispersion <= 0 {
		return nil, &CurveError{Param: "dispersion", Value: p.Dispersion, Wrapped: ErrShape}
	}
	if p.UDispersion <= 0 {
		return nil, &CurveError{Param: "u_dispersion", Value: p.UDispersion, Wrapped: ErrShape}
	}

	peakShape := p.Delay / p.Dispersion
	if !(peakShape > 0) {
		return nil, &CurveError{Param: "delay", Value: p.Delay, Wrapped: ErrShape}
	}
	underShape := p.Undershoot / p.UDispersion
	if !(underShape > 0) {
		return nil, &CurveError{Param: "undershoot", Value: p.Undershoot, Wrapped: ErrShape}
	}

	n := Length(resolution, p.TimeLength)
	if n < 2 {
		return nil, &CurveError{Param: "time_length", Value: p.TimeLength, Wrapped: ErrTimeLength}
	}

	dt := resolution / Oversampling
	// The grid includes both endpoints, so its spacing is
	// TimeLength/(n-1) rather than dt.
	t := floats.Span(make([]float64, n), 0, p.TimeLength)

	peak := distuv.Gamma{Alpha: peakShape, Beta: 1}
	under := distuv.Gamma{Alpha: underShape, Beta: 1}
	peakLoc := dt / p.Dispersion
	underLoc := dt / p.UDispersion

	h := make([]float64, n)
	for i, ti := range t {
		ti -= p.Onset
		h[i] = peak.Prob(ti-peakLoc) - p.Ratio*under.Prob(ti-underLoc)
	}

	sum := floats.Sum(h)
	if sum == 0 {
		return nil, &CurveError{Param: "ratio", Value: p.Ratio, Wrapped: ErrDegenerate}
	}
	floats.Scale(1/sum, h)

	for _, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &CurveError{Param: "sum", Value: sum, Wrapped: ErrNonFinite}
		}
	}
	return h, nil
}
