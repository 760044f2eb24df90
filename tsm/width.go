package tsm

import "github.com/unilibs/uniwidth"

// runeWidth returns the column width of r: 2 for wide CJK/emoji glyphs, 1
// for normal printable runes, 0 for combining marks and control codes.
func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	w := uniwidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}
