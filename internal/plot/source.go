package plot

import "fmt"

// Column names used by line renderers.
const (
	ColumnX = "x"
	ColumnY = "y"
)

// Table is a set of equally long named columns.
type Table map[string][]float64

// Len returns the shared column length, or 0 for an empty table.
func (t Table) Len() int {
	for _, col := range t {
		return len(col)
	}
	return 0
}

func (t Table) validate() error {
	n := -1
	for name, col := range t {
		if n == -1 {
			n = len(col)
			continue
		}
		if len(col) != n {
			return fmt.Errorf("%w: column %q has %d rows, want %d", ErrRaggedColumns, name, len(col), n)
		}
	}
	return nil
}

func (t Table) clone() Table {
	c := make(Table, len(t))
	for name, col := range t {
		c[name] = append([]float64(nil), col...)
	}
	return c
}

// Source is the data backing a figure. Its table is only ever replaced
// whole, so readers never see columns from two different updates.
type Source struct {
	data      Table
	listeners []func(Table)
}

func NewSource() *Source {
	return &Source{data: Table{}}
}

// SetData validates t and swaps it in as the current table in a single
// assignment, then notifies listeners. The source keeps its own copy.
func (s *Source) SetData(t Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	s.data = t.clone()
	for _, fn := range s.listeners {
		fn(s.data)
	}
	return nil
}

// Data returns a copy of the current table.
func (s *Source) Data() Table {
	return s.data.clone()
}

// Column returns a copy of the named column.
func (s *Source) Column(name string) ([]float64, error) {
	col, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return append([]float64(nil), col...), nil
}

func (s *Source) Len() int {
	return s.data.Len()
}

// Subscribe registers fn to receive every newly assigned table. fn must not
// retain or modify the table.
func (s *Source) Subscribe(fn func(Table)) {
	s.listeners = append(s.listeners, fn)
}
