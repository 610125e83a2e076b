package core

import (
	"errors"
	"testing"
)

func TestNewAlphabetDeduplicatesAndReports(t *testing.T) {
	a, dups, err := NewAlphabet("abcabd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() != "abcd" {
		t.Fatalf("symbols = %q, want %q", a.String(), "abcd")
	}
	if len(dups) != 2 || dups[0] != 'a' || dups[1] != 'b' {
		t.Fatalf("duplicates = %q, want [a b]", string(dups))
	}
	if a.Size() != 4 {
		t.Fatalf("size = %d, want 4", a.Size())
	}
}

func TestNewAlphabetTooSmall(t *testing.T) {
	for _, s := range []string{"", "a", "aaaa"} {
		_, _, err := NewAlphabet(s)
		if !errors.Is(err, ErrAlphabetTooSmall) {
			t.Fatalf("NewAlphabet(%q) err = %v, want ErrAlphabetTooSmall", s, err)
		}
	}
}

func TestAlphabetContains(t *testing.T) {
	a, _, err := NewAlphabet("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Contains('a') || !a.Contains('b') {
		t.Fatalf("expected alphabet to contain its own symbols")
	}
	if a.Contains('c') {
		t.Fatalf("expected 'c' to be outside the alphabet")
	}
}
