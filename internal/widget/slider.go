package widget

import "math"

// snapTolerance is how close, in steps, a value must be to a grid point
// Min + k*Step to be moved onto it.
const snapTolerance = 1e-9

// maxDecimals bounds the decimal precision of snapped values.
const maxDecimals = 9

// Slider holds a number constrained to [Min, Max]. Step is the increment
// used by Nudge. Values that land within rounding error of the step grid
// are snapped onto it; values typed off the grid are kept as they are.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64

	value float64
	subs  []func(old, new float64) error
}

// NewSlider creates a slider with an initial value. The initial value is
// snapped and clamped but not announced to subscribers.
func NewSlider(label string, value, min, max, step float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, Step: step}
	s.value = s.clamp(s.snap(value))
	return s
}

func (s *Slider) Value() float64 { return s.value }

// Subscribe registers fn to run on every committed change.
func (s *Slider) Subscribe(fn func(old, new float64) error) {
	s.subs = append(s.subs, fn)
}

// SetValue snaps v to the step grid, clamps it into range and commits it.
// Subscribers run in registration order only if the value changed; the
// first error stops the fan-out and is returned. The new value stays committed either way.
func (s *Slider) SetValue(v float64) error {
	if math.IsNaN(v) {
		return nil
	}
	v = s.clamp(s.snap(v))
	if v == s.value {
		return nil
	}
	old := s.value
	s.value = v
	for _, fn := range s.subs {
		if err := fn(old, v); err != nil {
			return err
		}
	}
	return nil
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) error {
	return s.SetValue(s.value + float64(n)*s.Step)
}

// Fraction is the value's position within [Min, Max], from 0 to 1.
func (s *Slider) Fraction() float64 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return (s.value - s.Min) / span
}

// snap moves v onto the nearest grid point if it is within snapTolerance
// steps of it. The grid point is rounded to the decimals of Min and Step so
// that 67 steps of 0.1 give exactly 6.7.
func (s *Slider) snap(v float64) float64 {
	if !(s.Step > 0) || math.IsInf(v, 0) {
		return v
	}
	k := math.Round((v - s.Min) / s.Step)
	g := s.Min + k*s.Step
	if math.Abs(v-g) > snapTolerance*s.Step {
		return v
	}
	p := math.Pow(10, float64(max(decimals(s.Min), decimals(s.Step))))
	return math.Round(g*p) / p
}

// decimals returns the number of decimal places needed to write v.
func decimals(v float64) int {
	for d := 0; d < maxDecimals; d++ {
		scaled := v * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return d
		}
	}
	return maxDecimals
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}
