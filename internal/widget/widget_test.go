package widget_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hrfsim/internal/widget"
)

type change struct{ old, new float64 }

var _ = Describe("Slider", func() {
	var (
		s       *widget.Slider
		changes []change
	)

	BeforeEach(func() {
		s = widget.NewSlider("dispersion", 1.0, 0.1, 5.0, 0.1)
		changes = nil
		s.Subscribe(func(old, new float64) error {
			changes = append(changes, change{old, new})
			return nil
		})
	})

	It("starts at its initial value without notifying", func() {
		Expect(s.Value()).To(Equal(1.0))
		Expect(changes).To(BeEmpty())
	})

	It("notifies with old and new values on change", func() {
		Expect(s.SetValue(2.5)).To(Succeed())
		Expect(changes).To(Equal([]change{{1.0, 2.5}}))
	})

	It("ignores assignments that do not change the value", func() {
		Expect(s.SetValue(1.0)).To(Succeed())
		Expect(changes).To(BeEmpty())
	})

	It("clamps values into its domain", func() {
		Expect(s.SetValue(100)).To(Succeed())
		Expect(s.Value()).To(Equal(5.0))
		Expect(s.SetValue(-3)).To(Succeed())
		Expect(s.Value()).To(Equal(0.1))
		Expect(changes).To(HaveLen(2))
	})

	It("nudges by whole steps and stops at the bounds", func() {
		Expect(s.Nudge(10)).To(Succeed())
		Expect(s.Value()).To(Equal(2.0))
		Expect(s.Nudge(1000)).To(Succeed())
		Expect(s.Value()).To(Equal(5.0))
		Expect(s.Fraction()).To(Equal(1.0))
	})

	It("stays on the step grid across repeated nudges", func() {
		delay := widget.NewSlider("delay", 6, 0, 10, 0.1)
		for range 7 {
			Expect(delay.Nudge(1)).To(Succeed())
		}
		Expect(delay.Value()).To(Equal(6.7))

		for range 67 {
			Expect(delay.Nudge(-1)).To(Succeed())
		}
		Expect(delay.Value()).To(Equal(0.0))
	})

	It("lands exactly on the lower bound after stepping down from the default", func() {
		delay := widget.NewSlider("delay", 6, 0, 10, 0.1)
		for range 60 {
			Expect(delay.Nudge(-1)).To(Succeed())
		}
		Expect(delay.Value()).To(Equal(0.0))
	})

	It("snaps values within rounding error of a grid point", func() {
		Expect(s.SetValue(2.5000000000000004)).To(Succeed())
		Expect(s.Value()).To(Equal(2.5))
	})

	It("keeps typed values that lie off the step grid", func() {
		ratio := widget.NewSlider("ratio", 0.167, 0.01, 2.0, 0.1)
		Expect(ratio.Value()).To(Equal(0.167))
		Expect(ratio.SetValue(0.5)).To(Succeed())
		Expect(ratio.Value()).To(Equal(0.5))
	})

	It("returns the first subscriber error and keeps the committed value", func() {
		boom := errors.New("boom")
		later := 0
		s.Subscribe(func(old, new float64) error { return boom })
		s.Subscribe(func(old, new float64) error { later++; return nil })

		Expect(s.SetValue(3)).To(MatchError(boom))
		Expect(s.Value()).To(Equal(3.0))
		Expect(later).To(BeZero())
	})
})

var _ = Describe("TextInput", func() {
	It("notifies subscribers on change only", func() {
		t := widget.NewTextInput("title", "my hrf")
		var seen []string
		t.Subscribe(func(old, new string) error {
			seen = append(seen, old+"->"+new)
			return nil
		})

		Expect(t.SetValue("my hrf")).To(Succeed())
		Expect(t.SetValue("bold")).To(Succeed())
		Expect(t.SetValue("")).To(Succeed())
		Expect(seen).To(Equal([]string{"my hrf->bold", "bold->"}))
		Expect(t.Value()).To(BeEmpty())
	})
})

var _ = Describe("Panel", func() {
	It("looks sliders up by label", func() {
		p := &widget.Panel{
			Text: widget.NewTextInput("title", ""),
			Sliders: []*widget.Slider{
				widget.NewSlider("delay", 6, 0, 10, 0.1),
				widget.NewSlider("onset", 0, 0, 10, 0.1),
			},
		}
		Expect(p.Len()).To(Equal(3))
		Expect(p.Slider("onset")).NotTo(BeNil())
		Expect(p.Slider("ratio")).To(BeNil())
	})
})
