package core

import (
	"fmt"
	"strings"
)

// NavKeys are the non-tag keys the picker listens for while open. Values
// are key names as the host reports them ("enter", "esc", ">").
type NavKeys struct {
	NextPage    string
	PrevPage    string
	UnderCursor string
	Cancel      string
}

func DefaultNavKeys() NavKeys {
	return NavKeys{
		NextPage:    ">",
		PrevPage:    "<",
		UnderCursor: "enter",
		Cancel:      "esc",
	}
}

// Validate rejects any nav key the tag reader would swallow: every alphabet
// symbol is a prefix of some generated tag, so a single-symbol nav key that
// is also a tag symbol could never fire.
func (k NavKeys) Validate(a Alphabet) error {
	for _, name := range []string{k.NextPage, k.PrevPage, k.UnderCursor, k.Cancel} {
		r := []rune(normalizeKey(name))
		if len(r) == 1 && a.Contains(r[0]) {
			return fmt.Errorf("%w: %q", ErrNavKeyCollision, name)
		}
	}
	return nil
}

// Is reports whether a pressed key name matches the configured name.
func (k NavKeys) Is(pressed, configured string) bool {
	return normalizeKey(pressed) == normalizeKey(configured)
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
