package core

// DefaultAlphabet orders home-row keys first so the most reachable symbols
// land on the earliest rows.
const DefaultAlphabet = "asdfghjklqwertyuiopzxcvbnm"

// Alphabet is an ordered set of unique symbols used as the digits of hint
// tags. Immutable after construction.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from the symbols of s in order. Duplicates
// are kept once and returned so the caller can surface them; fewer than two
// unique symbols is ErrAlphabetTooSmall.
func NewAlphabet(s string) (Alphabet, []rune, error) {
	index := make(map[rune]int, len(s))
	symbols := make([]rune, 0, len(s))
	var dups []rune
	for _, r := range s {
		if _, seen := index[r]; seen {
			dups = append(dups, r)
			continue
		}
		index[r] = len(symbols)
		symbols = append(symbols, r)
	}
	if len(symbols) < 2 {
		return Alphabet{}, dups, ErrAlphabetTooSmall
	}
	return Alphabet{symbols: symbols, index: index}, dups, nil
}

// Size returns the tag radix.
func (a Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is a symbol of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a Alphabet) String() string {
	return string(a.symbols)
}
