// Package tui hosts an explorer session in the terminal.
//
// The bubbletea loop is the host environment: it delivers one key event at
// a time, key events move widgets, and widget changes reach the session
// through the subscriptions set up by session.Bind. Rendering reads the
// session's figure on every frame.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/hrfsim/internal/session"
	"github.com/san-kum/hrfsim/internal/widget"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	coarseSteps   = 10
)

type Model struct {
	session *session.Session
	panel   *widget.Panel
	logger  *slog.Logger
	theme   Theme

	// cursor 0 is the title box, 1..n the sliders.
	cursor   int
	editing  bool
	editBuf  string
	showHelp bool
	status   string
	err      error

	width, height int
}

type Option func(*Model)

func WithTheme(name string) Option {
	return func(m *Model) { m.theme = GetTheme(name) }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// New creates a model for a session already bound to panel.
func New(s *session.Session, panel *widget.Panel, opts ...Option) Model {
	m := Model{
		session: s,
		panel:   panel,
		logger:  slog.New(slog.DiscardHandler),
		theme:   ThemeCyberpunk,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run creates a session panel, binds it and runs the program until the user
// quits.
func Run(s *session.Session, opts ...Option) error {
	panel := session.NewPanel(s.Params())
	if err := s.Bind(panel); err != nil {
		return err
	}
	m := New(s, panel, opts...)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.editing {
		return m.editKey(msg), nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.panel.Sliders) {
			m.cursor++
		}
	case "left", "h":
		m = m.nudge(-1)
	case "right", "l":
		m = m.nudge(1)
	case "H":
		m = m.nudge(-coarseSteps)
	case "L":
		m = m.nudge(coarseSteps)
	case "enter", " ":
		m.editing = true
		if sl := m.focused(); sl != nil {
			m.editBuf = strconv.FormatFloat(sl.Value(), 'f', -1, 64)
		} else {
			m.editBuf = m.panel.Text.Value()
		}
	case "r":
		m = m.apply("reset", session.Reset(m.panel))
	case "t":
		m.theme = nextTheme(m.theme)
		m.status = "theme: " + m.theme.Name
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		buf := m.editBuf
		m.editBuf = ""
		if sl := m.focused(); sl != nil {
			v, err := strconv.ParseFloat(buf, 64)
			if err != nil {
				m.status, m.err = "", fmt.Errorf("invalid number %q", buf)
				return m
			}
			return m.apply(sl.Label, sl.SetValue(v))
		}
		return m.apply(session.TitleLabel, m.panel.Text.SetValue(buf))
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		if m.focused() == nil {
			m.editBuf += " "
		}
	case tea.KeyRunes:
		if m.focused() == nil {
			m.editBuf += string(msg.Runes)
			break
		}
		for _, c := range msg.Runes {
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m
}

// focused returns the slider under the cursor, or nil on the title box.
func (m Model) focused() *widget.Slider {
	if m.cursor == 0 || m.cursor > len(m.panel.Sliders) {
		return nil
	}
	return m.panel.Sliders[m.cursor-1]
}

func (m Model) nudge(steps int) Model {
	sl := m.focused()
	if sl == nil {
		return m
	}
	return m.apply(sl.Label, sl.Nudge(steps))
}

// apply records the outcome of a change event in the status line.
func (m Model) apply(what string, err error) Model {
	m.err = err
	if err != nil {
		m.status = ""
		m.logger.Error("change rejected", "input", what, "err", err)
		return m
	}
	if sl := m.panel.Slider(what); sl != nil {
		m.status = fmt.Sprintf("%s = %.3f", what, sl.Value())
	} else {
		m.status = what + " updated"
	}
	return m
}

// Err is the error from the most recent change event, if any.
func (m Model) Err() error { return m.err }
