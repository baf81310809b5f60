// Package widget provides the input controls of the explorer: numeric
// sliders and a text box, each holding a current value and notifying
// subscribers with (old, new) on every committed change.
//
// Widgets are not safe for concurrent use; a host delivers changes one at a
// time and subscribers run synchronously inside SetValue.
package widget

// Panel is a column of inputs: an optional text box followed by sliders.
type Panel struct {
	Text    *TextInput
	Sliders []*Slider
}

// Slider returns the slider with the given label, or nil.
func (p *Panel) Slider(label string) *Slider {
	for _, s := range p.Sliders {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// Len is the number of inputs in the column.
func (p *Panel) Len() int {
	n := len(p.Sliders)
	if p.Text != nil {
		n++
	}
	return n
}
