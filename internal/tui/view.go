package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (m *Model) View() string {
	if !m.session.IsOpen() {
		return ""
	}
	th := m.opts.Theme
	page := m.session.Page()

	var lines []string
	header := fmt.Sprintf("snipe  page %d/%d  %d items", page.Index, page.Count, len(m.visible))
	lines = append(lines, th.Header.Render(header))

	filterLine := ""
	if m.filtering || m.query != "" {
		filterLine = "filter: " + th.FilterText.Render(m.query)
		if m.filtering {
			filterLine += th.FilterText.Render("▏")
		}
	}
	if m.status != "" {
		if filterLine != "" {
			filterLine += "  "
		}
		filterLine += th.EmptyHint.Render(m.status)
	}
	lines = append(lines, filterLine)

	width := m.session.TagWidth()
	for i, row := range m.session.VisibleRows() {
		tag := m.renderTag(row.Tag)
		label := th.Label.Render(m.clipLabel(row.Label, width))
		line := " " + tag + "  " + label
		if i == m.cursor {
			line = th.CursorRow.Render(line)
		}
		lines = append(lines, line)
	}

	footer := strings.Join([]string{
		keyHint([]string{tagRangeHint(m.opts.Alphabet.String(), width)}, "pick"),
		keyHint([]string{m.opts.NavKeys.PrevPage, m.opts.NavKeys.NextPage}, "page"),
		keyHint([]string{m.opts.NavKeys.UnderCursor}, "cursor"),
		keyHint([]string{m.opts.FilterKey}, "filter"),
		keyHint([]string{m.opts.NavKeys.Cancel}, "cancel"),
	}, "  ")
	lines = append(lines, "", th.Footer.Render(footer))

	return strings.Join(lines, "\n")
}

// renderTag styles the already-typed prefix of a tag differently from its
// remaining symbols.
func (m *Model) renderTag(tag string) string {
	th := m.opts.Theme
	if m.pending != "" && strings.HasPrefix(tag, m.pending) {
		rest := tag[len(m.pending):]
		return th.TypedTag.Render(m.pending) + th.Tag.Render(rest)
	}
	return th.Tag.Render(tag)
}

func (m *Model) clipLabel(label string, tagWidth int) string {
	if m.width <= 0 {
		return label
	}
	avail := m.width - tagWidth - 4
	if avail < 1 {
		avail = 1
	}
	return ansi.Truncate(label, avail, "…")
}

// keyHint renders a consistent key hint like: "[k1/k2] label".
func keyHint(keys []string, label string) string {
	parts := keys[:0:0]
	for _, k := range keys {
		if k != "" {
			parts = append(parts, k)
		}
	}
	if len(parts) == 0 {
		return label
	}
	return "[" + strings.Join(parts, "/") + "] " + label
}

// tagRangeHint compresses the alphabet into "a…m" for the footer.
func tagRangeHint(alphabet string, width int) string {
	r := []rune(alphabet)
	hint := string(r[0]) + "…" + string(r[len(r)-1])
	if width > 1 {
		hint += fmt.Sprintf("×%d", width)
	}
	return hint
}
