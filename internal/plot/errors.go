package plot

import "errors"

var (
	// ErrRaggedColumns indicates a table whose columns differ in length.
	ErrRaggedColumns = errors.New("plot: columns have different lengths")

	// ErrMissingColumn indicates a table without a required column.
	ErrMissingColumn = errors.New("plot: missing column")

	// ErrEmptyRange indicates an axis range with End < Start.
	ErrEmptyRange = errors.New("plot: axis range end before start")
)
