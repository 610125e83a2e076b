package core

import (
	"fmt"
	"strings"
)

// Producer supplies the item list on every Start and Refresh: one opaque
// metadata value and one display label per item, in parallel order. The
// session never inspects metadata.
type Producer[M any] func() (metas []M, labels []string)

// Callback receives the resolved pick: the item's metadata and its absolute
// index in the full list.
type Callback[M any] func(meta M, index int)

// Row is one visible line handed to the Renderer.
type Row struct {
	Tag   string
	Label string
}

// Renderer redraws the visible page. tagWidth is the symbol width shared by
// every tag on the page, for highlighting the tag column distinctly from
// the labels.
type Renderer func(rows []Row, tagWidth int)

// Session drives one picker lifetime: Closed until Start, Open while the
// items are visible, Closed again after a resolve or Close. A failed call
// never leaves state partially updated. Not safe for concurrent use; every
// operation runs to completion on the host's input-event thread.
type Session[M any] struct {
	gen      TagGenerator
	producer Producer[M]
	callback Callback[M]
	renderer Renderer

	open     bool
	metas    []M
	labels   []string
	page     Page
	tags     []string
	tagWidth int
	rowByTag map[string]int // tag -> 1-based row on the current page
}

func NewSession[M any](gen TagGenerator, producer Producer[M]) *Session[M] {
	return &Session[M]{gen: gen, producer: producer}
}

// OnResolve registers the callback invoked when a tag or row resolves.
func (s *Session[M]) OnResolve(cb Callback[M]) {
	s.callback = cb
}

// OnPageChange registers the renderer invoked after every transition that
// changes the visible page.
func (s *Session[M]) OnPageChange(r Renderer) {
	s.renderer = r
}

func (s *Session[M]) IsOpen() bool {
	return s.open
}

// Page returns the current page. Meaningful only while open.
func (s *Session[M]) Page() Page {
	return s.page
}

// TagWidth returns the symbol width of the tags bound to the current page.
func (s *Session[M]) TagWidth() int {
	return s.tagWidth
}

// VisibleRows returns the (tag, label) pairs for the current page in row
// order, or nil when closed.
func (s *Session[M]) VisibleRows() []Row {
	if !s.open {
		return nil
	}
	rows := make([]Row, s.page.Length)
	for i := range rows {
		rows[i] = Row{Tag: s.tags[i], Label: s.labels[s.page.Offset+i]}
	}
	return rows
}

// Start pulls a fresh item list from the producer and opens on page 1.
// Errors leave the session in its prior state: ErrProducerMismatch when the
// producer's sequences disagree in length, ErrNoItems when it is empty,
// ErrBadCapacity when capacity < 1.
func (s *Session[M]) Start(capacity int) error {
	return s.load(capacity, 1)
}

// Refresh re-pulls the item list and recomputes the current page with a
// possibly changed capacity, keeping the stored page index so the view
// survives a host resize. Only valid while open.
func (s *Session[M]) Refresh(capacity int) error {
	if !s.open {
		return ErrSessionClosed
	}
	return s.load(capacity, s.page.Index)
}

func (s *Session[M]) load(capacity, requestedPage int) error {
	metas, labels := s.producer()
	if len(metas) != len(labels) {
		return fmt.Errorf("%w: %d metadata, %d labels", ErrProducerMismatch, len(metas), len(labels))
	}
	if len(metas) == 0 {
		return ErrNoItems
	}
	page, err := Paginate(len(metas), capacity, requestedPage)
	if err != nil {
		return err
	}
	tags, err := s.gen.Generate(page.Length)
	if err != nil {
		return err
	}
	s.open = true
	s.metas = metas
	s.labels = labels
	s.page = page
	s.bind(tags)
	s.emitPage()
	return nil
}

// NextPage advances one page, clamped at the last. A clamped no-op skips
// the redraw.
func (s *Session[M]) NextPage() error {
	return s.navigate(1)
}

// PrevPage goes back one page, clamped at the first.
func (s *Session[M]) PrevPage() error {
	return s.navigate(-1)
}

func (s *Session[M]) navigate(delta int) error {
	if !s.open {
		return ErrSessionClosed
	}
	page, err := Paginate(len(s.metas), s.page.Capacity, s.page.Index+delta)
	if err != nil {
		return err
	}
	if page.Index == s.page.Index {
		return nil
	}
	tags, err := s.gen.Generate(page.Length)
	if err != nil {
		return err
	}
	s.page = page
	s.bind(tags)
	s.emitPage()
	return nil
}

// ResolveTag looks up a fully typed tag in the current bindings. A miss is
// not an error: intermediate prefixes of longer tags arrive one keystroke
// at a time and must not prematurely match, so the session stays open and
// ignores the input. A hit closes the session and reports the pick.
func (s *Session[M]) ResolveTag(tag string) (M, int, bool) {
	var zero M
	if !s.open {
		return zero, 0, false
	}
	row, ok := s.rowByTag[tag]
	if !ok {
		return zero, 0, false
	}
	meta, index := s.resolve(row)
	return meta, index, true
}

// HasTagPrefix reports whether any bound tag strictly extends the typed
// prefix, letting hosts distinguish "still typing" from "dead input".
func (s *Session[M]) HasTagPrefix(prefix string) bool {
	for tag := range s.rowByTag {
		if len(tag) > len(prefix) && strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}

// ResolveRow resolves the item at a 1-based row of the current page (the
// "select under cursor" path). Rows outside [1, page length] are
// ErrRowOutOfRange and leave the session open.
func (s *Session[M]) ResolveRow(row int) (M, int, error) {
	var zero M
	if !s.open {
		return zero, 0, ErrSessionClosed
	}
	if row < 1 || row > s.page.Length {
		return zero, 0, fmt.Errorf("%w: row %d, page has %d", ErrRowOutOfRange, row, s.page.Length)
	}
	meta, index := s.resolve(row)
	return meta, index, nil
}

func (s *Session[M]) resolve(row int) (M, int) {
	index := s.page.Offset + row - 1
	meta := s.metas[index]
	s.Close()
	if s.callback != nil {
		s.callback(meta, index)
	}
	return meta, index
}

// Close cancels the session, discarding bindings without resolving. Always
// succeeds, including on an already closed session.
func (s *Session[M]) Close() {
	s.open = false
	s.metas = nil
	s.labels = nil
	s.tags = nil
	s.rowByTag = nil
	s.tagWidth = 0
}

func (s *Session[M]) bind(tags []string) {
	s.tags = tags
	s.tagWidth = s.gen.Width(s.page.Length)
	s.rowByTag = make(map[string]int, len(tags))
	for i, tag := range tags {
		s.rowByTag[tag] = i + 1
	}
}

func (s *Session[M]) emitPage() {
	if s.renderer == nil {
		return
	}
	s.renderer(s.VisibleRows(), s.tagWidth)
}
