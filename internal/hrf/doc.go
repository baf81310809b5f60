// Package hrf samples the canonical gamma-difference hemodynamic response
// function.
//
// The curve is the difference of two gamma densities, a response peak and a
// later undershoot, normalised so its samples sum to one:
//
//	h(t) = Γ(t; delay/dispersion) - ratio * Γ(t; undershoot/u_dispersion)
//
// Sampling happens on a grid oversampled [Oversampling] times relative to the
// repetition time passed as resolution.
//
// # Example
//
//	y, err := hrf.GammaDifference(2, hrf.DefaultParams())
//	// len(y) == hrf.Length(2, 32) == 800
package hrf
