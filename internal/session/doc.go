// Package session keeps a plotted HRF curve consistent with its parameters.
//
// A [Session] owns one [ParameterSet], the [Series] derived from it and the
// [plot.Figure] it publishes to. Widget changes arrive through
// [Session.OnParameterChanged] and [Session.OnTitleChanged], usually wired by
// [Session.Bind]:
//
//	s, _ := session.New()
//	panel := session.NewPanel(s.Params())
//	_ = s.Bind(panel)
//	_ = panel.Slider("dispersion").SetValue(2.5) // curve recomputed and republished
//
// Every numeric change recomputes the whole curve and replaces the figure's
// x/y table in one assignment. Title changes only retitle the figure.
//
// # Thread Safety
//
// Sessions are NOT safe for concurrent use. Hosts deliver change events one
// at a time, and each handler runs to completion before returning.
package session
