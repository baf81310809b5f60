package session

import (
	"fmt"

	"github.com/san-kum/hrfsim/internal/widget"
)

// NewPanel builds the input column for p: the title box followed by one
// slider per Spec, in Specs order.
func NewPanel(p ParameterSet) *widget.Panel {
	panel := &widget.Panel{
		Text:    widget.NewTextInput(TitleLabel, p.Title),
		Sliders: make([]*widget.Slider, 0, len(Specs)),
	}
	for _, spec := range Specs {
		v, _ := p.Get(spec.Field)
		panel.Sliders = append(panel.Sliders, widget.NewSlider(string(spec.Field), v, spec.Min, spec.Max, spec.Step))
	}
	return panel
}

// Bind subscribes the session to every input of panel. Each slider gets the
// same handler parameterised by its field.
func (s *Session) Bind(panel *widget.Panel) error {
	if panel.Text == nil {
		return fmt.Errorf("%w: %s", ErrUnbound, TitleLabel)
	}
	sliders := make(map[Field]*widget.Slider, len(Specs))
	for _, spec := range Specs {
		sl := panel.Slider(string(spec.Field))
		if sl == nil {
			return fmt.Errorf("%w: %s", ErrUnbound, spec.Field)
		}
		sliders[spec.Field] = sl
	}

	panel.Text.Subscribe(func(_, text string) error {
		s.OnTitleChanged(text)
		return nil
	})
	for field, sl := range sliders {
		sl.Subscribe(func(_, v float64) error {
			return s.OnParameterChanged(field, v)
		})
	}
	return nil
}

// Reset moves every input of panel back to its default. Each move is an
// ordinary change event. The first error is returned after all inputs have
// been reset.
func Reset(panel *widget.Panel) error {
	var first error
	defaults := DefaultParameterSet()
	if panel.Text != nil {
		first = panel.Text.SetValue(defaults.Title)
	}
	for _, spec := range Specs {
		sl := panel.Slider(string(spec.Field))
		if sl == nil {
			continue
		}
		if err := sl.SetValue(spec.Default); err != nil && first == nil {
			first = err
		}
	}
	return first
}
