package core

import "strings"

// TagGenerator produces batches of distinct fixed-width hint tags over one
// alphabet. Tags count upward in mixed radix with the alphabet's first
// symbol as zero, so earlier rows always get earlier (easier) tags.
type TagGenerator struct {
	alphabet Alphabet
}

func NewTagGenerator(a Alphabet) TagGenerator {
	return TagGenerator{alphabet: a}
}

func (g TagGenerator) Alphabet() Alphabet {
	return g.alphabet
}

// Width returns the symbol width shared by every tag in a batch of count:
// the smallest w >= 1 with size^w >= count. Renderers use it to pre-size
// the tag column.
func (g TagGenerator) Width(count int) int {
	base := g.alphabet.Size()
	width := 1
	for span := base; span < count; span *= base {
		width++
	}
	return width
}

// Generate returns count pairwise-distinct tags of identical width, in
// counting order. count == 0 yields an empty batch; count < 0 is
// ErrNegativeCount.
func (g TagGenerator) Generate(count int) ([]string, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count == 0 {
		return nil, nil
	}
	width := g.Width(count)
	tags := make([]string, 0, count)
	digits := []int{0}
	for i := 0; i < count; i++ {
		tags = append(tags, g.render(digits, width))
		digits = g.increment(digits)
	}
	return tags, nil
}

// render left-pads the numeral with the zero symbol up to width digits.
func (g TagGenerator) render(digits []int, width int) string {
	var b strings.Builder
	for i := len(digits); i < width; i++ {
		b.WriteRune(g.alphabet.symbols[0])
	}
	for _, d := range digits {
		b.WriteRune(g.alphabet.symbols[d])
	}
	return b.String()
}

// increment adds one mixed-radix unit, carrying left; a carry past the
// most-significant digit grows the numeral by a new leading digit.
func (g TagGenerator) increment(digits []int) []int {
	last := g.alphabet.Size() - 1
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < last {
			digits[i]++
			return digits
		}
		digits[i] = 0
	}
	return append([]int{1}, digits...)
}
