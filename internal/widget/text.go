package widget

// TextInput holds a free-form string.
type TextInput struct {
	Label string

	value string
	subs  []func(old, new string) error
}

func NewTextInput(label, value string) *TextInput {
	return &TextInput{Label: label, value: value}
}

func (t *TextInput) Value() string { return t.value }

func (t *TextInput) Subscribe(fn func(old, new string) error) {
	t.subs = append(t.subs, fn)
}

// SetValue commits s and notifies subscribers if it differs from the
// current text.
func (t *TextInput) SetValue(s string) error {
	if s == t.value {
		return nil
	}
	old := t.value
	t.value = s
	for _, fn := range t.subs {
		if err := fn(old, s); err != nil {
			return err
		}
	}
	return nil
}
