// Package plot is the surface a curve is published to.
//
// A [Figure] owns a column [Source] keyed by name, a title and two axis
// ranges. Reassigning any of them notifies the figure's subscribers, which is
// how a host knows to redraw. Tables are replaced whole; there is no API for
// mutating a single column in place.
//
// Rendering targets the terminal: [Figure.Render] draws the line on a braille
// [Canvas] clipped to the axis ranges, and [Figure.RenderASCII] uses
// asciigraph for a labelled plot of the y column.
package plot
