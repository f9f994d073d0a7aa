// Package textwidth adapts github.com/mattn/go-runewidth and
// github.com/rivo/uniseg into the single per-codepoint width function the
// editor's width map needs: 0 for combining marks, 1 for narrow runes, 2
// for wide (East-Asian) runes.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the terminal column width of a single code point in
// isolation: 0 for combining marks, 1 for narrow runes, 2 for wide
// (East-Asian) runes. It is the per-codepoint primitive the buffer's
// width map rebuilds on every edit.
func RuneWidth(r rune) int {
	if r == 0 {
		return 0
	}
	g := uniseg.NewGraphemes(string(r))
	if g.Next() {
		// uniseg's grapheme-property tables are the more complete source
		// for "does this rune stand alone on screen"; go-runewidth alone
		// does not classify every combining mark as zero width.
		return g.Width()
	}
	return runewidth.RuneWidth(r)
}
