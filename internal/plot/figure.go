package plot

import (
	"fmt"
	"math"
)

// Range is a closed axis interval.
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (r Range) Span() float64 {
	return r.End - r.Start
}

func (r Range) Contains(v float64) bool {
	return v >= r.Start && v <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%.3g, %.3g]", r.Start, r.End)
}

type EventKind int

const (
	DataChanged EventKind = iota
	TitleChanged
	RangeChanged
)

func (k EventKind) String() string {
	switch k {
	case DataChanged:
		return "data"
	case TitleChanged:
		return "title"
	case RangeChanged:
		return "range"
	}
	return "unknown"
}

// Event describes a reassignment on a figure.
type Event struct {
	Kind  EventKind
	Title string
	// Rows is the length of the new table for DataChanged events.
	Rows int
	// X and Y carry the published columns for DataChanged events.
	X, Y   []float64
	XRange Range
	YRange Range
}

// Figure is a line chart surface: a title, axis ranges and a Source.
type Figure struct {
	Width, Height int

	title     string
	source    *Source
	xRange    Range
	yRange    Range
	listeners []func(Event)
}

// NewFigure creates an empty figure. Width and Height are the preferred
// render size in terminal cells.
func NewFigure(title string, width, height int) *Figure {
	f := &Figure{
		Width:  width,
		Height: height,
		title:  title,
		source: NewSource(),
		xRange: Range{0, 1},
		yRange: Range{0, 1},
	}
	f.source.Subscribe(func(t Table) {
		f.emit(Event{Kind: DataChanged, Rows: t.Len(), X: t[ColumnX], Y: t[ColumnY]})
	})
	return f
}

func (f *Figure) Source() *Source { return f.source }

func (f *Figure) Title() string { return f.title }

func (f *Figure) SetTitle(title string) {
	f.title = title
	f.emit(Event{Kind: TitleChanged, Title: title})
}

func (f *Figure) XRange() Range { return f.xRange }

func (f *Figure) YRange() Range { return f.yRange }

// SetRanges reassigns both axis ranges together.
func (f *Figure) SetRanges(x, y Range) error {
	if x.End < x.Start || math.IsNaN(x.Span()) {
		return fmt.Errorf("%w: x %v", ErrEmptyRange, x)
	}
	if y.End < y.Start || math.IsNaN(y.Span()) {
		return fmt.Errorf("%w: y %v", ErrEmptyRange, y)
	}
	f.xRange, f.yRange = x, y
	f.emit(Event{Kind: RangeChanged, XRange: x, YRange: y})
	return nil
}

// OnChange registers fn to run after every data, title or range
// reassignment. Event slices are shared with the figure and must not be
// modified.
func (f *Figure) OnChange(fn func(Event)) {
	f.listeners = append(f.listeners, fn)
}

func (f *Figure) emit(e Event) {
	for _, fn := range f.listeners {
		fn(e)
	}
}
