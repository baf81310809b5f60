package session

import (
	"fmt"

	"github.com/san-kum/hrfsim/internal/hrf"
)

// Field names a numeric parameter. Values double as widget labels, flag
// names and config keys.
type Field string

const (
	FieldDelay       Field = "delay"
	FieldTimeLength  Field = "time_length"
	FieldOnset       Field = "onset"
	FieldUndershoot  Field = "undershoot"
	FieldDispersion  Field = "dispersion"
	FieldUDispersion Field = "u_dispersion"
	FieldRatio       Field = "ratio"
	FieldAmplitude   Field = "amplitude"
)

// TitleLabel is the label of the title text input.
const TitleLabel = "title"

// DefaultTitle is the initial content of the title input.
const DefaultTitle = "my hrf"

// Spec is the domain of one numeric parameter.
type Spec struct {
	Field   Field
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Help    string
}

func (s Spec) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Specs lists every numeric parameter in display order.
var Specs = []Spec{
	{FieldDelay, 0, 10, 0.1, 6.0, "time to response peak"},
	{FieldTimeLength, 16, 48, 0.1, 32.0, "length of the sampled curve"},
	{FieldOnset, 0, 10, 0.1, 0.0, "shift of the curve start"},
	{FieldUndershoot, 4, 32, 0.1, 16.0, "time to undershoot trough"},
	{FieldDispersion, 0.1, 5.0, 0.1, 1.0, "width of the response peak"},
	{FieldUDispersion, 0.1, 5.0, 0.1, 1.0, "width of the undershoot"},
	{FieldRatio, 0.01, 2.0, 0.1, 0.167, "undershoot to peak ratio"},
	{FieldAmplitude, 0, 5, 0.1, 1, "x-axis scale"},
}

// LookupSpec returns the domain of f.
func LookupSpec(f Field) (Spec, bool) {
	for _, s := range Specs {
		if s.Field == f {
			return s, true
		}
	}
	return Spec{}, false
}

// ParameterSet is the full set of user-tunable values.
type ParameterSet struct {
	Title       string  `yaml:"title" json:"title"`
	Delay       float64 `yaml:"delay" json:"delay"`
	TimeLength  float64 `yaml:"time_length" json:"time_length"`
	Onset       float64 `yaml:"onset" json:"onset"`
	Undershoot  float64 `yaml:"undershoot" json:"undershoot"`
	Dispersion  float64 `yaml:"dispersion" json:"dispersion"`
	UDispersion float64 `yaml:"u_dispersion" json:"u_dispersion"`
	Ratio       float64 `yaml:"ratio" json:"ratio"`
	Amplitude   float64 `yaml:"amplitude" json:"amplitude"`
}

// DefaultParameterSet returns the startup values of every parameter.
func DefaultParameterSet() ParameterSet {
	p := ParameterSet{Title: DefaultTitle}
	for _, s := range Specs {
		*p.field(s.Field) = s.Default
	}
	return p
}

func (p *ParameterSet) field(f Field) *float64 {
	switch f {
	case FieldDelay:
		return &p.Delay
	case FieldTimeLength:
		return &p.TimeLength
	case FieldOnset:
		return &p.Onset
	case FieldUndershoot:
		return &p.Undershoot
	case FieldDispersion:
		return &p.Dispersion
	case FieldUDispersion:
		return &p.UDispersion
	case FieldRatio:
		return &p.Ratio
	case FieldAmplitude:
		return &p.Amplitude
	}
	return nil
}

func (p ParameterSet) Get(f Field) (float64, error) {
	ptr := p.field(f)
	if ptr == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return *ptr, nil
}

// Set assigns f without domain checks.
func (p *ParameterSet) Set(f Field, v float64) error {
	ptr := p.field(f)
	if ptr == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*ptr = v
	return nil
}

// Validate checks every numeric value against its Spec. Values coming from
// widgets are already in range; this guards config files and flags.
func (p ParameterSet) Validate() error {
	for _, s := range Specs {
		v, _ := p.Get(s.Field)
		if !s.Contains(v) {
			return fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrOutOfDomain, s.Field, v, s.Min, s.Max)
		}
	}
	return nil
}

// Curve returns the curve-shaping subset of p. Amplitude and title do not
// affect the samples.
func (p ParameterSet) Curve() hrf.Params {
	return hrf.Params{
		TimeLength:  p.TimeLength,
		Onset:       p.Onset,
		Delay:       p.Delay,
		Undershoot:  p.Undershoot,
		Dispersion:  p.Dispersion,
		UDispersion: p.UDispersion,
		Ratio:       p.Ratio,
	}
}
