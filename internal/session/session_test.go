package session_test

import (
	"bytes"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hrfsim/internal/hrf"
	"github.com/san-kum/hrfsim/internal/logging"
	"github.com/san-kum/hrfsim/internal/plot"
	"github.com/san-kum/hrfsim/internal/session"
	"github.com/san-kum/hrfsim/internal/widget"
)

func bits(v []float64) []uint64 {
	out := make([]uint64, len(v))
	for i := range v {
		out[i] = math.Float64bits(v[i])
	}
	return out
}

func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		var err error
		s, err = session.New()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("initialization", func() {
		It("publishes the default curve on an integer x grid", func() {
			series := s.Series()
			Expect(series.Len()).To(Equal(hrf.Length(session.Resolution, 32)))
			Expect(series.X).To(HaveLen(series.Len()))
			for i, x := range series.X {
				Expect(x).To(Equal(float64(i)))
			}

			x, err := s.Figure().Source().Column(plot.ColumnX)
			Expect(err).NotTo(HaveOccurred())
			Expect(x).To(Equal(series.X))
		})

		It("fits the axis ranges to the initial curve", func() {
			series := s.Series()
			xr, yr := s.Figure().XRange(), s.Figure().YRange()
			Expect(xr.Start).To(Equal(0.0))
			Expect(xr.End).To(Equal(series.X[len(series.X)-1]))

			minY, maxY := series.Y[0], series.Y[0]
			for _, y := range series.Y {
				minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			}
			Expect(yr.Start).To(BeNumerically("~", minY-session.BoundsPadding, 1e-15))
			Expect(yr.End).To(BeNumerically("~", maxY+session.BoundsPadding, 1e-15))
		})

		It("starts with a plot title distinct from the text default", func() {
			Expect(s.Figure().Title()).To(Equal(session.InitialPlotTitle))
			Expect(s.Params().Title).To(Equal(session.DefaultTitle))
			Expect(session.InitialPlotTitle).NotTo(Equal(session.DefaultTitle))
		})

		It("fails when the initial curve cannot be computed", func() {
			p := session.DefaultParameterSet()
			p.Delay = 0
			_, err := session.New(session.WithParams(p))
			Expect(err).To(MatchError(hrf.ErrShape))
		})
	})

	Describe("OnParameterChanged", func() {
		It("keeps x and y the same length across the valid domain", func() {
			By("leaving out delay=0, a zero gamma shape covered by the ErrShape cases")
			for _, spec := range session.Specs {
				for _, v := range []float64{spec.Min, spec.Max, (spec.Min + spec.Max) / 2} {
					if spec.Field == session.FieldDelay && v == 0 {
						continue
					}
					Expect(s.OnParameterChanged(spec.Field, v)).To(Succeed(), "%s=%g", spec.Field, v)
					series := s.Series()
					Expect(series.X).To(HaveLen(len(series.Y)))
					Expect(s.Figure().Source().Len()).To(Equal(series.Len()))
				}
				Expect(s.OnParameterChanged(spec.Field, spec.Default)).To(Succeed())
			}
		})

		It("is idempotent", func() {
			Expect(s.OnParameterChanged(session.FieldUndershoot, 20)).To(Succeed())
			first := s.Series()
			Expect(s.OnParameterChanged(session.FieldUndershoot, 20)).To(Succeed())
			second := s.Series()
			Expect(bits(second.X)).To(Equal(bits(first.X)))
			Expect(bits(second.Y)).To(Equal(bits(first.Y)))
		})

		It("doubles x and keeps y when amplitude doubles", func() {
			Expect(s.OnParameterChanged(session.FieldAmplitude, 1.5)).To(Succeed())
			base := s.Series()
			Expect(s.OnParameterChanged(session.FieldAmplitude, 3)).To(Succeed())
			doubled := s.Series()

			Expect(bits(doubled.Y)).To(Equal(bits(base.Y)))
			for i := range base.X {
				Expect(doubled.X[i]).To(Equal(2 * base.X[i]))
			}
		})

		It("produces distinct finite curves at the dispersion bounds", func() {
			Expect(s.OnParameterChanged(session.FieldDispersion, 0.1)).To(Succeed())
			low := s.Series()
			Expect(s.OnParameterChanged(session.FieldDispersion, 5.0)).To(Succeed())
			high := s.Series()

			Expect(allFinite(low.Y)).To(BeTrue())
			Expect(allFinite(high.Y)).To(BeTrue())
			Expect(bits(low.Y)).NotTo(Equal(bits(high.Y)))
		})

		It("changes the sample count with time_length", func() {
			Expect(s.OnParameterChanged(session.FieldTimeLength, 16)).To(Succeed())
			Expect(s.Series().Len()).To(Equal(hrf.Length(session.Resolution, 16)))
		})

		It("publishes each update as a single consistent table", func() {
			var events []plot.Event
			s.Figure().OnChange(func(e plot.Event) {
				if e.Kind == plot.DataChanged {
					Expect(e.X).To(HaveLen(len(e.Y)))
					events = append(events, e)
				}
			})

			Expect(s.OnParameterChanged(session.FieldTimeLength, 48)).To(Succeed())
			Expect(events).To(HaveLen(1))
			Expect(events[0].Rows).To(Equal(hrf.Length(session.Resolution, 48)))
		})

		It("rejects unknown fields", func() {
			err := s.OnParameterChanged(session.Field("gain"), 1)
			Expect(errors.Is(err, session.ErrUnknownField)).To(BeTrue())
		})

		It("keeps the previous curve when the curve function fails", func() {
			before := s.Series()
			dataEvents := 0
			s.Figure().OnChange(func(e plot.Event) {
				if e.Kind == plot.DataChanged {
					dataEvents++
				}
			})

			err := s.OnParameterChanged(session.FieldDelay, 0)
			Expect(err).To(MatchError(hrf.ErrShape))
			Expect(dataEvents).To(BeZero())
			Expect(bits(s.Series().Y)).To(Equal(bits(before.Y)))
			Expect(s.Params().Delay).To(Equal(0.0))

			Expect(s.OnParameterChanged(session.FieldDelay, 5)).To(Succeed())
			Expect(dataEvents).To(Equal(1))
		})

		It("propagates errors from an injected curve function", func() {
			boom := errors.New("numerical failure")
			calls := 0
			s2, err := session.New(session.WithCurve(func(r float64, p hrf.Params) ([]float64, error) {
				calls++
				if calls > 1 {
					return nil, boom
				}
				return []float64{0, 1, 0}, nil
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(s2.OnParameterChanged(session.FieldRatio, 1)).To(MatchError(boom))
			Expect(s2.Series().Y).To(Equal([]float64{0, 1, 0}))
		})
	})

	Describe("axis bounds", func() {
		It("keeps the initial ranges by default", func() {
			xr, yr := s.Figure().XRange(), s.Figure().YRange()
			Expect(s.OnParameterChanged(session.FieldDispersion, 3)).To(Succeed())
			Expect(s.OnParameterChanged(session.FieldAmplitude, 4)).To(Succeed())
			Expect(s.Figure().XRange()).To(Equal(xr))
			Expect(s.Figure().YRange()).To(Equal(yr))
		})

		It("refits ranges after each update when auto bounds are on", func() {
			auto, err := session.New(session.WithAutoBounds(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(auto.AutoBounds()).To(BeTrue())

			Expect(auto.OnParameterChanged(session.FieldAmplitude, 2)).To(Succeed())
			series := auto.Series()
			Expect(auto.Figure().XRange().End).To(Equal(series.X[len(series.X)-1]))
		})
	})

	Describe("logging", func() {
		It("logs bounds and summary per update at trace level", func() {
			var buf bytes.Buffer
			traced, err := session.New(session.WithLogger(logging.NewLogger("trace", &buf)))
			Expect(err).NotTo(HaveOccurred())

			Expect(traced.OnParameterChanged(session.FieldDelay, 5)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("level=TRACE"))
			Expect(buf.String()).To(ContainSubstring("fwhm="))
		})

		It("omits trace records at debug level", func() {
			var buf bytes.Buffer
			quiet, err := session.New(session.WithLogger(logging.NewLogger("debug", &buf)))
			Expect(err).NotTo(HaveOccurred())

			Expect(quiet.OnParameterChanged(session.FieldDelay, 5)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("curve updated"))
			Expect(buf.String()).NotTo(ContainSubstring("level=TRACE"))
		})
	})

	Describe("OnTitleChanged", func() {
		It("retitles the figure without touching the curve", func() {
			before := s.Series()
			dataEvents := 0
			s.Figure().OnChange(func(e plot.Event) {
				if e.Kind == plot.DataChanged {
					dataEvents++
				}
			})

			s.OnTitleChanged("bold response")
			s.OnTitleChanged("")

			Expect(s.Figure().Title()).To(BeEmpty())
			Expect(dataEvents).To(BeZero())
			Expect(bits(s.Series().Y)).To(Equal(bits(before.Y)))
			Expect(bits(s.Series().X)).To(Equal(bits(before.X)))
		})
	})

	Describe("Summary", func() {
		It("finds the response peak before the undershoot", func() {
			sum := s.Summary()
			Expect(sum.Samples).To(Equal(s.Series().Len()))
			Expect(sum.PeakY).To(BeNumerically(">", 0))
			Expect(sum.TroughY).To(BeNumerically("<", 0))
			Expect(sum.TroughX).To(BeNumerically(">", sum.PeakX))
			Expect(sum.FWHM).To(BeNumerically(">", 0))
		})
	})
})

var _ = Describe("Bind", func() {
	var (
		s     *session.Session
		panel *widget.Panel
	)

	BeforeEach(func() {
		var err error
		s, err = session.New()
		Expect(err).NotTo(HaveOccurred())
		panel = session.NewPanel(s.Params())
		Expect(s.Bind(panel)).To(Succeed())
	})

	It("builds one text box and one slider per field without duplicates", func() {
		Expect(panel.Text.Label).To(Equal(session.TitleLabel))
		Expect(panel.Sliders).To(HaveLen(len(session.Specs)))
		seen := map[string]bool{}
		for i, sl := range panel.Sliders {
			Expect(seen[sl.Label]).To(BeFalse(), "duplicate slider %s", sl.Label)
			seen[sl.Label] = true
			Expect(sl.Label).To(Equal(string(session.Specs[i].Field)))
			Expect(sl.Value()).To(Equal(session.Specs[i].Default))
		}
	})

	It("routes slider changes to the matching field", func() {
		Expect(panel.Slider("onset").SetValue(2)).To(Succeed())
		Expect(s.Params().Onset).To(Equal(2.0))

		Expect(panel.Slider("amplitude").SetValue(2)).To(Succeed())
		Expect(s.Series().X[1]).To(Equal(2.0))
	})

	It("routes text changes to the figure title", func() {
		Expect(panel.Text.SetValue("visual cortex")).To(Succeed())
		Expect(s.Figure().Title()).To(Equal("visual cortex"))
	})

	It("surfaces curve failures through the widget", func() {
		err := panel.Slider("delay").SetValue(0)
		Expect(err).To(MatchError(hrf.ErrShape))
		Expect(panel.Slider("delay").Value()).To(Equal(0.0))
	})

	It("fails the same way when delay is stepped down to zero", func() {
		delay := panel.Slider("delay")
		var err error
		for range 60 {
			err = delay.Nudge(-1)
		}
		Expect(delay.Value()).To(Equal(0.0))
		Expect(s.Params().Delay).To(Equal(0.0))
		Expect(err).To(MatchError(hrf.ErrShape))
		Expect(allFinite(s.Series().Y)).To(BeTrue())
	})

	It("reports title subscriber errors from Reset", func() {
		boom := errors.New("boom")
		Expect(panel.Text.SetValue("changed")).To(Succeed())
		panel.Text.Subscribe(func(_, _ string) error { return boom })

		Expect(session.Reset(panel)).To(MatchError(boom))
		Expect(s.Params()).To(Equal(session.DefaultParameterSet()))
	})

	It("clamps out-of-range input before the session sees it", func() {
		Expect(panel.Slider("ratio").SetValue(10)).To(Succeed())
		Expect(s.Params().Ratio).To(Equal(2.0))
	})

	It("restores defaults through ordinary change events", func() {
		Expect(panel.Slider("undershoot").SetValue(30)).To(Succeed())
		Expect(panel.Text.SetValue("changed")).To(Succeed())

		Expect(session.Reset(panel)).To(Succeed())
		Expect(s.Params()).To(Equal(session.DefaultParameterSet()))
		Expect(s.Figure().Title()).To(Equal(session.DefaultTitle))
	})

	It("refuses a panel missing a slider", func() {
		other, err := session.New()
		Expect(err).NotTo(HaveOccurred())
		partial := &widget.Panel{Text: widget.NewTextInput(session.TitleLabel, "")}
		Expect(errors.Is(other.Bind(partial), session.ErrUnbound)).To(BeTrue())
	})
})

var _ = Describe("ParameterSet", func() {
	It("validates values against their domains", func() {
		p := session.DefaultParameterSet()
		Expect(p.Validate()).To(Succeed())

		p.Dispersion = 6
		Expect(errors.Is(p.Validate(), session.ErrOutOfDomain)).To(BeTrue())
	})

	It("maps fields to curve parameters", func() {
		Expect(session.DefaultParameterSet().Curve()).To(Equal(hrf.DefaultParams()))
	})

	It("looks up specs by field", func() {
		spec, ok := session.LookupSpec(session.FieldRatio)
		Expect(ok).To(BeTrue())
		Expect(spec.Default).To(Equal(0.167))
		_, ok = session.LookupSpec("gain")
		Expect(ok).To(BeFalse())
	})
})
