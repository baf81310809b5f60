package session

import (
	"context"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/hrfsim/internal/hrf"
	"github.com/san-kum/hrfsim/internal/logging"
	"github.com/san-kum/hrfsim/internal/metrics"
	"github.com/san-kum/hrfsim/internal/plot"
)

const (
	// Resolution is the fixed repetition time the curve is sampled at.
	Resolution = 2.0

	// BoundsPadding widens the y range above and below the curve.
	BoundsPadding = 0.01

	// InitialPlotTitle is the figure title before the first title edit. It
	// intentionally differs from DefaultTitle.
	InitialPlotTitle = "my hrf wave"
)

// CurveFunc produces curve samples for a resolution and parameters.
type CurveFunc func(resolution float64, p hrf.Params) ([]float64, error)

// Series is the published curve, x and y of equal length.
type Series struct {
	X []float64
	Y []float64
}

func (s Series) Len() int { return len(s.Y) }

func (s Series) clone() Series {
	return Series{
		X: append([]float64(nil), s.X...),
		Y: append([]float64(nil), s.Y...),
	}
}

// Session binds one ParameterSet to one figure.
type Session struct {
	params     ParameterSet
	series     Series
	figure     *plot.Figure
	curve      CurveFunc
	plotTitle  string
	autoBounds bool
	logger     *slog.Logger
}

type Option func(*Session)

// WithParams replaces the default starting parameters.
func WithParams(p ParameterSet) Option {
	return func(s *Session) { s.params = p }
}

// WithCurve replaces the curve function.
func WithCurve(fn CurveFunc) Option {
	return func(s *Session) { s.curve = fn }
}

// WithFigure publishes into an existing figure.
func WithFigure(f *plot.Figure) Option {
	return func(s *Session) { s.figure = f }
}

// WithPlotTitle sets the title shown before the first title edit.
func WithPlotTitle(title string) Option {
	return func(s *Session) { s.plotTitle = title }
}

// WithAutoBounds recomputes axis ranges after every curve update instead of
// keeping the ranges fitted to the initial curve.
func WithAutoBounds(on bool) Option {
	return func(s *Session) { s.autoBounds = on }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New computes and publishes the initial curve and fits the axis ranges to
// it.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		params:    DefaultParameterSet(),
		curve:     hrf.GammaDifference,
		plotTitle: InitialPlotTitle,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.figure == nil {
		s.figure = plot.NewFigure(s.plotTitle, 60, 20)
	} else {
		s.figure.SetTitle(s.plotTitle)
	}

	series, err := s.compute()
	if err != nil {
		return nil, fmt.Errorf("session: initial curve: %w", err)
	}
	if err := s.publish(series); err != nil {
		return nil, err
	}
	if err := s.fitBounds(); err != nil {
		return nil, err
	}

	s.logger.Debug("session started", "samples", series.Len(), "x_range", s.figure.XRange(), "y_range", s.figure.YRange())
	return s, nil
}

// OnTitleChanged retitles the figure. The curve is untouched.
func (s *Session) OnTitleChanged(text string) {
	s.params.Title = text
	s.figure.SetTitle(text)
}

// OnParameterChanged stores value in field, recomputes the curve and
// replaces the published table. If the curve function fails the error is
// returned and the previous curve stays published; the parameter keeps the
// new value, mirroring the widget that sent it.
func (s *Session) OnParameterChanged(field Field, value float64) error {
	if err := s.params.Set(field, value); err != nil {
		return err
	}

	series, err := s.compute()
	if err != nil {
		s.logger.Warn("curve update failed", "field", field, "value", value, "err", err)
		return fmt.Errorf("session: %s=%g: %w", field, value, err)
	}
	if err := s.publish(series); err != nil {
		return err
	}
	if s.autoBounds {
		if err := s.fitBounds(); err != nil {
			return err
		}
	}

	s.logger.Debug("curve updated", "field", field, "value", value, "samples", series.Len())
	s.trace()
	return nil
}

func (s *Session) trace() {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, logging.LevelTrace) {
		return
	}
	sum := s.Summary()
	s.logger.Log(ctx, logging.LevelTrace, "curve detail",
		"x_range", s.figure.XRange(),
		"y_range", s.figure.YRange(),
		"peak_x", sum.PeakX, "peak_y", sum.PeakY,
		"trough_x", sum.TroughX, "trough_y", sum.TroughY,
		"fwhm", sum.FWHM,
	)
}

func (s *Session) compute() (Series, error) {
	y, err := s.curve(Resolution, s.params.Curve())
	if err != nil {
		return Series{}, err
	}
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i) * s.params.Amplitude
	}
	return Series{X: x, Y: y}, nil
}

func (s *Session) publish(series Series) error {
	err := s.figure.Source().SetData(plot.Table{
		plot.ColumnX: series.X,
		plot.ColumnY: series.Y,
	})
	if err != nil {
		return fmt.Errorf("session: publish: %w", err)
	}
	s.series = series
	return nil
}

func (s *Session) fitBounds() error {
	if s.series.Len() == 0 {
		return nil
	}
	x := plot.Range{Start: 0, End: floats.Max(s.series.X)}
	y := plot.Range{
		Start: floats.Min(s.series.Y) - BoundsPadding,
		End:   floats.Max(s.series.Y) + BoundsPadding,
	}
	return s.figure.SetRanges(x, y)
}

// Params returns a copy of the current parameters.
func (s *Session) Params() ParameterSet { return s.params }

// Series returns a copy of the published curve.
func (s *Session) Series() Series { return s.series.clone() }

func (s *Session) Figure() *plot.Figure { return s.figure }

func (s *Session) AutoBounds() bool { return s.autoBounds }

// Summary describes the published curve.
func (s *Session) Summary() metrics.Summary {
	return metrics.Summarize(s.series.X, s.series.Y)
}
