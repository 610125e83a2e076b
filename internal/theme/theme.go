// Package theme maps an optional TOML palette file onto the lipgloss styles
// the picker renders with.
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the resolved style set for one picker run.
type Theme struct {
	Tag        lipgloss.Style
	TypedTag   lipgloss.Style
	Label      lipgloss.Style
	CursorRow  lipgloss.Style
	Header     lipgloss.Style
	Footer     lipgloss.Style
	EmptyHint  lipgloss.Style
	FilterText lipgloss.Style
}

type rawTheme struct {
	Tag       string `toml:"tag"`
	TypedTag  string `toml:"typed_tag"`
	Label     string `toml:"label"`
	CursorBg  string `toml:"cursor_bg"`
	Header    string `toml:"header"`
	Footer    string `toml:"footer"`
	EmptyHint string `toml:"empty_hint"`
	Filter    string `toml:"filter"`
}

var defaultPalette = rawTheme{
	Tag:       "#fab387",
	TypedTag:  "#a6e3a1",
	Label:     "#cdd6f4",
	CursorBg:  "#313244",
	Header:    "#89b4fa",
	Footer:    "#7f849c",
	EmptyHint: "#a6adc8",
	Filter:    "#f5c2e7",
}

// Default returns the built-in palette.
func Default() Theme {
	return build(defaultPalette)
}

// Load reads a palette file and fills unset colors from the defaults. A
// missing path yields the default theme; an unreadable or malformed file is
// an error so the caller can warn and fall back.
func Load(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read theme: %w", err)
	}
	raw := defaultPalette
	if err := toml.Unmarshal(body, &raw); err != nil {
		return Default(), fmt.Errorf("parse theme: %w", err)
	}
	return build(raw), nil
}

func build(raw rawTheme) Theme {
	return Theme{
		Tag:        lipgloss.NewStyle().Foreground(lipgloss.Color(raw.Tag)).Bold(true),
		TypedTag:   lipgloss.NewStyle().Foreground(lipgloss.Color(raw.TypedTag)).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color(raw.Label)),
		CursorRow:  lipgloss.NewStyle().Background(lipgloss.Color(raw.CursorBg)).Bold(true),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color(raw.Header)).Bold(true),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color(raw.Footer)),
		EmptyHint:  lipgloss.NewStyle().Foreground(lipgloss.Color(raw.EmptyHint)).Italic(true),
		FilterText: lipgloss.NewStyle().Foreground(lipgloss.Color(raw.Filter)),
	}
}
