package session

import "errors"

var (
	// ErrUnknownField indicates a parameter name outside the ParameterSet.
	ErrUnknownField = errors.New("session: unknown parameter field")

	// ErrOutOfDomain indicates a value outside a parameter's declared domain.
	ErrOutOfDomain = errors.New("session: parameter out of domain")

	// ErrUnbound indicates a widget panel missing an input the session needs.
	ErrUnbound = errors.New("session: no widget for parameter")
)
