package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hrfsim/internal/widget"
)

const (
	inputsWidth = 46
	barWidth    = 14
)

const helpText = `
 j/k ↑/↓   select input
 h/l ←/→   step slider
 H/L       step slider x10
 enter     edit value or title
 esc       cancel edit
 r         reset to defaults
 t         cycle theme
 ?         toggle help
 q         quit`

func (m Model) View() string {
	st := m.theme.styles()
	inputs := st.panel.Width(inputsWidth).Render(m.viewInputs(st))
	plotW := m.width - inputsWidth - 6
	if plotW < 24 {
		plotW = 24
	}
	chart := st.panel.Render(m.viewPlot(st, plotW))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, inputs, chart))
	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(st.err.Render("error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(st.label.Render(m.status))
	}
	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(st.muted.Render(helpText))
	} else {
		b.WriteString(st.muted.Render("j/k select  h/l adjust  enter edit  r reset  t theme  ? help  q quit"))
	}
	return b.String()
}

func (m Model) viewInputs(st styles) string {
	var b strings.Builder
	b.WriteString(st.header.Render("HRF EXPLORER") + "\n\n")

	text := m.panel.Text.Value()
	if m.editing && m.cursor == 0 {
		text = m.editBuf + "_"
	}
	b.WriteString(m.row(st, 0, fmt.Sprintf("%-12s", m.panel.Text.Label), text) + "\n\n")

	for i, sl := range m.panel.Sliders {
		val := fmt.Sprintf("%7.3f", sl.Value())
		if m.editing && m.cursor == i+1 {
			val = fmt.Sprintf("%7s", m.editBuf+"_")
		}
		label := fmt.Sprintf("%-12s %s", sl.Label, gauge(sl))
		b.WriteString(m.row(st, i+1, label, val) + "\n")
	}
	return b.String()
}

func (m Model) row(st styles, idx int, label, value string) string {
	if idx == m.cursor {
		return st.active.Render("▸ " + label + " " + value)
	}
	return "  " + st.label.Render(label) + " " + st.value.Render(value)
}

func gauge(sl *widget.Slider) string {
	filled := int(sl.Fraction()*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func (m Model) viewPlot(st styles, width int) string {
	f := m.session.Figure()
	rows := m.height - 9
	if rows < 6 {
		rows = 6
	}
	cols := width - 10
	if cols < 10 {
		cols = 10
	}

	xr, yr := f.XRange(), f.YRange()
	canvas := strings.Split(f.Render(cols, rows), "\n")
	var b strings.Builder
	b.WriteString(st.header.Render(f.Title()) + "\n")
	for i, line := range canvas {
		axis := strings.Repeat(" ", 8)
		switch i {
		case 0:
			axis = fmt.Sprintf("%8.4f", yr.End)
		case len(canvas) - 1:
			axis = fmt.Sprintf("%8.4f", yr.Start)
		}
		b.WriteString(st.label.Render(axis) + "│" + st.curve.Render(line) + "\n")
	}
	left := fmt.Sprintf("%g", xr.Start)
	right := fmt.Sprintf("%g", xr.End)
	pad := cols - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(st.label.Render(strings.Repeat(" ", 9) + left + strings.Repeat(" ", pad) + right))
	b.WriteString("\n\n")

	sum := m.session.Summary()
	b.WriteString(st.label.Render(fmt.Sprintf("peak %.4f @ %.1f   trough %.4f @ %.1f   fwhm %.1f   n=%d",
		sum.PeakY, sum.PeakX, sum.TroughY, sum.TroughX, sum.FWHM, sum.Samples)))
	return b.String()
}
