package core

import (
	"errors"
	"fmt"
	"testing"
)

func listProducer(n int) Producer[string] {
	return func() ([]string, []string) {
		metas := make([]string, n)
		labels := make([]string, n)
		for i := range metas {
			metas[i] = fmt.Sprintf("meta-%d", i)
			labels[i] = fmt.Sprintf("item %d", i)
		}
		return metas, labels
	}
}

func newTestSession(t *testing.T, n int) *Session[string] {
	t.Helper()
	return NewSession(mustGenerator(t, "ab"), listProducer(n))
}

func TestSessionStartBindsTags(t *testing.T) {
	s := newTestSession(t, 3)
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.IsOpen() {
		t.Fatalf("expected open session")
	}
	rows := s.VisibleRows()
	if len(rows) != 2 {
		t.Fatalf("visible rows = %d, want 2", len(rows))
	}
	// Two rows over a two-symbol alphabet disambiguate in one keystroke.
	if rows[0].Tag != "a" || rows[1].Tag != "b" {
		t.Fatalf("tags = %q %q, want a b", rows[0].Tag, rows[1].Tag)
	}
	if rows[0].Label != "item 0" || rows[1].Label != "item 1" {
		t.Fatalf("labels = %q %q", rows[0].Label, rows[1].Label)
	}
	if s.TagWidth() != 1 {
		t.Fatalf("tag width = %d, want 1", s.TagWidth())
	}
}

func TestSessionProducerMismatch(t *testing.T) {
	s := NewSession(mustGenerator(t, "ab"), func() ([]int, []string) {
		return []int{1, 2, 3}, []string{"one", "two"}
	})
	err := s.Start(2)
	if !errors.Is(err, ErrProducerMismatch) {
		t.Fatalf("err = %v, want ErrProducerMismatch", err)
	}
	if s.IsOpen() {
		t.Fatalf("mismatch must not open the session")
	}
}

func TestSessionEmptyProducer(t *testing.T) {
	s := newTestSession(t, 0)
	if err := s.Start(2); !errors.Is(err, ErrNoItems) {
		t.Fatalf("err = %v, want ErrNoItems", err)
	}
	if s.IsOpen() {
		t.Fatalf("empty input must leave the session closed")
	}
}

func TestSessionBadCapacity(t *testing.T) {
	s := newTestSession(t, 3)
	if err := s.Start(0); !errors.Is(err, ErrBadCapacity) {
		t.Fatalf("err = %v, want ErrBadCapacity", err)
	}
	if s.IsOpen() {
		t.Fatalf("bad capacity must leave the session closed")
	}
}

func TestSessionResolveTag(t *testing.T) {
	s := newTestSession(t, 5)
	var cbMeta string
	var cbIndex int
	s.OnResolve(func(meta string, index int) {
		cbMeta, cbIndex = meta, index
	})
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.NextPage(); err != nil {
		t.Fatalf("next: %v", err)
	}
	// Page 2 shows items 2 and 3; tag "b" is row 2.
	meta, index, ok := s.ResolveTag("b")
	if !ok {
		t.Fatalf("expected tag to resolve")
	}
	if meta != "meta-3" || index != 3 {
		t.Fatalf("resolved (%q, %d), want (meta-3, 3)", meta, index)
	}
	if s.IsOpen() {
		t.Fatalf("resolve must close the session")
	}
	if cbMeta != "meta-3" || cbIndex != 3 {
		t.Fatalf("callback got (%q, %d), want (meta-3, 3)", cbMeta, cbIndex)
	}
}

func TestSessionUnmatchedTagIsNoOp(t *testing.T) {
	s := newTestSession(t, 5)
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, _, ok := s.ResolveTag("z")
	if ok {
		t.Fatalf("unbound tag must not resolve")
	}
	if !s.IsOpen() {
		t.Fatalf("unbound tag must leave the session open")
	}
}

func TestSessionTagAndRowAgree(t *testing.T) {
	for row := 1; row <= 2; row++ {
		byTag := newTestSession(t, 5)
		if err := byTag.Start(2); err != nil {
			t.Fatalf("start: %v", err)
		}
		tag := byTag.VisibleRows()[row-1].Tag
		tagMeta, tagIndex, ok := byTag.ResolveTag(tag)
		if !ok {
			t.Fatalf("tag %q did not resolve", tag)
		}

		byRow := newTestSession(t, 5)
		if err := byRow.Start(2); err != nil {
			t.Fatalf("start: %v", err)
		}
		rowMeta, rowIndex, err := byRow.ResolveRow(row)
		if err != nil {
			t.Fatalf("row %d: %v", row, err)
		}
		if tagMeta != rowMeta || tagIndex != rowIndex {
			t.Fatalf("tag gave (%q, %d), row gave (%q, %d)", tagMeta, tagIndex, rowMeta, rowIndex)
		}
	}
}

func TestSessionResolveRowOutOfRange(t *testing.T) {
	s := newTestSession(t, 5)
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	for _, row := range []int{0, 3, -1} {
		if _, _, err := s.ResolveRow(row); !errors.Is(err, ErrRowOutOfRange) {
			t.Fatalf("row %d: err = %v, want ErrRowOutOfRange", row, err)
		}
		if !s.IsOpen() {
			t.Fatalf("row %d: out-of-range row must leave the session open", row)
		}
	}
}

func TestSessionNavigationClampsAtBoundaries(t *testing.T) {
	s := newTestSession(t, 5)
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.PrevPage(); err != nil {
		t.Fatalf("prev at first page: %v", err)
	}
	if s.Page().Index != 1 {
		t.Fatalf("prev at first page moved to %d", s.Page().Index)
	}
	for i := 0; i < 5; i++ {
		if err := s.NextPage(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if s.Page().Index != 3 {
		t.Fatalf("next past last page landed on %d, want 3", s.Page().Index)
	}
	if got := s.Page().Length; got != 1 {
		t.Fatalf("last page length = %d, want 1", got)
	}
}

func TestSessionRefreshKeepsPageAcrossResize(t *testing.T) {
	s := newTestSession(t, 6)
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.NextPage(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := s.Refresh(3); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	page := s.Page()
	if page.Index != 2 || page.Capacity != 3 || page.Count != 2 {
		t.Fatalf("after resize got %+v, want page 2/2 at capacity 3", page)
	}
}

func TestSessionFailedRefreshPreservesState(t *testing.T) {
	items := 5
	s := NewSession(mustGenerator(t, "ab"), func() ([]string, []string) {
		metas, labels := listProducer(items)()
		return metas, labels
	})
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.NextPage(); err != nil {
		t.Fatalf("next: %v", err)
	}
	before := s.Page()

	items = 0 // producer now reports nothing
	if err := s.Refresh(2); !errors.Is(err, ErrNoItems) {
		t.Fatalf("err = %v, want ErrNoItems", err)
	}
	if !s.IsOpen() {
		t.Fatalf("failed refresh must keep the session open")
	}
	if s.Page() != before {
		t.Fatalf("failed refresh changed page: %+v -> %+v", before, s.Page())
	}
}

func TestSessionCloseDiscardsBindings(t *testing.T) {
	s := newTestSession(t, 3)
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Close()
	if s.IsOpen() {
		t.Fatalf("expected closed session")
	}
	if rows := s.VisibleRows(); rows != nil {
		t.Fatalf("closed session still exposes %d rows", len(rows))
	}
	if err := s.NextPage(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("navigation on closed session: err = %v, want ErrSessionClosed", err)
	}
	if _, _, err := s.ResolveRow(1); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("resolve on closed session: err = %v, want ErrSessionClosed", err)
	}
}

func TestSessionEmitsPageToRenderer(t *testing.T) {
	s := newTestSession(t, 5)
	var emits int
	var lastRows []Row
	var lastWidth int
	s.OnPageChange(func(rows []Row, tagWidth int) {
		emits++
		lastRows = rows
		lastWidth = tagWidth
	})
	if err := s.Start(2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if emits != 1 {
		t.Fatalf("emits after start = %d, want 1", emits)
	}
	if err := s.NextPage(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if emits != 2 {
		t.Fatalf("emits after next = %d, want 2", emits)
	}
	// Clamped navigation changes nothing, so nothing to redraw.
	if err := s.PrevPage(); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if err := s.PrevPage(); err != nil {
		t.Fatalf("prev at boundary: %v", err)
	}
	if emits != 3 {
		t.Fatalf("emits after clamped prev = %d, want 3", emits)
	}
	if len(lastRows) != 2 || lastWidth != 1 {
		t.Fatalf("last emit: %d rows width %d, want 2 rows width 1", len(lastRows), lastWidth)
	}
}

func TestSessionHasTagPrefix(t *testing.T) {
	s := newTestSession(t, 3) // width-2 tags aa ab ba on page 1 at capacity 3
	if err := s.Start(3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.HasTagPrefix("a") || !s.HasTagPrefix("b") {
		t.Fatalf("expected single symbols to be live prefixes")
	}
	if s.HasTagPrefix("aa") {
		t.Fatalf("a complete tag is not a strict prefix")
	}
	if s.HasTagPrefix("z") {
		t.Fatalf("symbol outside any tag must not be a prefix")
	}
}
