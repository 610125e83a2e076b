// Package tui is the bubbletea front end over a core selection session: it
// decodes keystrokes into tag entry, navigation and filtering, and renders
// the visible page with a styled tag column.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lucaspeixotot/snipe/core"
	"github.com/lucaspeixotot/snipe/internal/theme"
)

// chromeRows is the screen estate the header, filter line and footer take
// away from item rows.
const chromeRows = 4

// Options configure a picker run.
type Options struct {
	Alphabet  core.Alphabet
	NavKeys   core.NavKeys
	FilterKey string
	MaxRows   int
	Theme     theme.Theme
	Log       *logrus.Logger
}

// Model is the bubbletea model for one picker run. The session metadata is
// the item's index in the unfiltered label list, so a pick maps back to the
// caller's original ordering no matter what the filter hid.
type Model struct {
	opts      Options
	keys      keyMap
	session   *core.Session[int]
	sessionID string

	labels  []string
	visible []int

	width  int
	height int

	pending   string
	cursor    int // 0-based row on the current page
	filtering bool
	query     string
	status    string

	choice    int // original index, -1 until a pick resolves
	cancelled bool
	err       error
}

// New builds a Model over the candidate labels. The caller has already
// rejected an empty list; the model only deals with filter-to-zero.
func New(labels []string, opts Options) *Model {
	if opts.MaxRows < 1 {
		opts.MaxRows = 10
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(io.Discard)
	}
	m := &Model{
		opts:      opts,
		keys:      defaultKeyMap(),
		sessionID: uuid.NewString()[:8],
		labels:    labels,
		choice:    -1,
	}
	m.visible = filterIndices(labels, "")
	m.session = core.NewSession(core.NewTagGenerator(opts.Alphabet), m.produce)
	return m
}

// produce is the session's Producer: the filtered subset, metadata carrying
// each label's unfiltered index.
func (m *Model) produce() ([]int, []string) {
	labels := make([]string, len(m.visible))
	for i, idx := range m.visible {
		labels[i] = m.labels[idx]
	}
	return append([]int(nil), m.visible...), labels
}

// Choice returns the unfiltered index of the picked item.
func (m *Model) Choice() (int, bool) {
	if m.choice < 0 {
		return 0, false
	}
	return m.choice, true
}

func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the first session error that forced the picker to bail.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) capacity() int {
	capacity := m.opts.MaxRows
	if m.height > 0 && m.height-chromeRows < capacity {
		capacity = m.height - chromeRows
	}
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.session.IsOpen() {
			// a failed refresh keeps the previous page bound
			if err := m.session.Refresh(m.capacity()); err != nil {
				m.status = err.Error()
			}
			m.clampCursor()
			return m, nil
		}
		if err := m.session.Start(m.capacity()); err != nil {
			m.err = fmt.Errorf("open picker: %w", err)
			return m, tea.Quit
		}
		m.opts.Log.WithFields(logrus.Fields{
			"session": m.sessionID,
			"items":   len(m.labels),
			"pages":   m.session.Page().Count,
		}).Debug("picker opened")
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancelled = true
			m.session.Close()
			return m, tea.Quit
		}
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handlePickKey(msg)
	}
	return m, nil
}

func (m *Model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.opts.NavKeys
	name := msg.String()
	switch {
	case nav.Is(name, nav.Cancel):
		if m.pending != "" {
			m.pending = ""
			return m, nil
		}
		m.cancelled = true
		m.session.Close()
		m.opts.Log.WithField("session", m.sessionID).Debug("picker cancelled")
		return m, tea.Quit

	case nav.Is(name, nav.NextPage):
		m.pending = ""
		if err := m.session.NextPage(); err != nil {
			m.status = err.Error()
		}
		m.clampCursor()
		return m, nil

	case nav.Is(name, nav.PrevPage):
		m.pending = ""
		if err := m.session.PrevPage(); err != nil {
			m.status = err.Error()
		}
		m.clampCursor()
		return m, nil

	case nav.Is(name, nav.UnderCursor):
		index, _, err := m.session.ResolveRow(m.cursor + 1)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m.pick(index)

	case nav.Is(name, m.opts.FilterKey):
		m.filtering = true
		m.pending = ""
		return m, nil

	case key.Matches(msg, m.keys.CursorUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.CursorDown):
		if m.cursor < m.session.Page().Length-1 {
			m.cursor++
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return m.handleTagRune(msg.Runes[0])
	}
	return m, nil
}

// handleTagRune accumulates tag symbols one keystroke at a time. Every tag
// on a page shares one width, so input is only looked up once it is that
// long; a symbol outside the alphabet, or a dead prefix, drops the pending
// input silently.
func (m *Model) handleTagRune(r rune) (tea.Model, tea.Cmd) {
	if !m.opts.Alphabet.Contains(r) {
		m.pending = ""
		return m, nil
	}
	m.pending += string(r)
	if len([]rune(m.pending)) < m.session.TagWidth() {
		if !m.session.HasTagPrefix(m.pending) {
			m.pending = ""
		}
		return m, nil
	}
	index, _, ok := m.session.ResolveTag(m.pending)
	m.pending = ""
	if !ok {
		return m, nil
	}
	return m.pick(index)
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := msg.String()
	switch name {
	case "esc":
		m.filtering = false
		m.setQuery("")
		return m, nil
	case "enter":
		m.filtering = false
		return m, nil
	case "backspace":
		if len(m.query) > 0 {
			m.setQuery(m.query[:len(m.query)-1])
		}
		return m, nil
	default:
		if isPrintableASCIIKey(name) {
			m.setQuery(m.query + name)
		}
		return m, nil
	}
}

// setQuery recomputes the visible subset and refreshes the session. A query
// matching nothing keeps the previous page bound (failed refresh preserves
// state) and surfaces a notice instead.
func (m *Model) setQuery(q string) {
	m.query = q
	m.visible = filterIndices(m.labels, q)
	m.status = ""
	if err := m.session.Refresh(m.capacity()); err != nil {
		m.status = "no matches"
		return
	}
	m.clampCursor()
}

func (m *Model) pick(index int) (tea.Model, tea.Cmd) {
	m.choice = index
	m.opts.Log.WithFields(logrus.Fields{
		"session": m.sessionID,
		"index":   index,
		"label":   m.labels[index],
	}).Debug("picked")
	return m, tea.Quit
}

func (m *Model) clampCursor() {
	max := m.session.Page().Length - 1
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
