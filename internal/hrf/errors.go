package hrf

import (
	"errors"
	"fmt"
)

// Domain errors for curve sampling.
var (
	// ErrResolution indicates a non-positive repetition time.
	ErrResolution = errors.New("hrf: resolution must be positive")

	// ErrTimeLength indicates a time length too short to hold two samples.
	ErrTimeLength = errors.New("hrf: time length yields fewer than two samples")

	// ErrShape indicates a gamma shape parameter that is not positive.
	ErrShape = errors.New("hrf: gamma shape must be positive")

	// ErrDegenerate indicates the curve sums to zero and cannot be normalised.
	ErrDegenerate = errors.New("hrf: curve sums to zero")

	// ErrNonFinite indicates a NaN or Inf sample.
	ErrNonFinite = errors.New("hrf: non-finite sample")
)

// CurveError wraps a sampling error with the parameter that caused it.
type CurveError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("%v (%s=%g)", e.Wrapped, e.Param, e.Value)
}

func (e *CurveError) Unwrap() error {
	return e.Wrapped
}
