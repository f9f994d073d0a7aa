package rxline

import (
	"unicode/utf8"

	"github.com/gordano-rx/rxline/internal/textwidth"
)

/*** unicode buffer ***/

// buffer is the mutable sequence of Unicode scalar values backing the edit
// line. data and widths are kept in lockstep: every mutation that changes
// length resizes widths to match. All indices into buffer are code-point
// indices, never byte indices.
type buffer struct {
	data   []rune
	widths []int
}

func (b *buffer) length() int {
	return len(b.data)
}

func (b *buffer) at(i int) rune {
	return b.data[i]
}

// recomputeWidths rebuilds the whole widths array. Simplest correct
// choice; a line editor's buffer is short enough that recomputing the
// whole array on every edit is never the bottleneck.
func (b *buffer) recomputeWidths() {
	if cap(b.widths) < len(b.data) {
		b.widths = make([]int, len(b.data))
	} else {
		b.widths = b.widths[:len(b.data)]
	}
	for i, r := range b.data {
		b.widths[i] = textwidth.RuneWidth(r)
	}
}

// insert inserts a single code point at pos.
func (b *buffer) insert(pos int, r rune) {
	b.data = append(b.data, 0)
	copy(b.data[pos+1:], b.data[pos:])
	b.data[pos] = r
	b.recomputeWidths()
}

// insertSlice inserts src[srcStart:srcStart+count] at pos.
func (b *buffer) insertSlice(pos int, src []rune, srcStart, count int) {
	if count <= 0 {
		return
	}
	b.data = append(b.data, make([]rune, count)...)
	copy(b.data[pos+count:], b.data[pos:len(b.data)-count])
	copy(b.data[pos:pos+count], src[srcStart:srcStart+count])
	b.recomputeWidths()
}

// erase removes the code point at pos.
func (b *buffer) erase(pos int) {
	b.eraseRange(pos, 1)
}

// eraseRange removes count code points starting at pos.
func (b *buffer) eraseRange(pos, count int) {
	if count <= 0 {
		return
	}
	b.data = append(b.data[:pos], b.data[pos+count:]...)
	b.recomputeWidths()
}

// assignString replaces the buffer contents from a UTF-8 string.
func (b *buffer) assignString(s string) {
	b.data = b.data[:0]
	for _, r := range s {
		b.data = append(b.data, r)
	}
	b.recomputeWidths()
}

// assignRunes replaces the buffer contents with a copy of runes.
func (b *buffer) assignRunes(runes []rune) {
	b.data = append(b.data[:0], runes...)
	b.recomputeWidths()
}

// clear empties the buffer in place.
func (b *buffer) clear() {
	b.data = b.data[:0]
	b.widths = b.widths[:0]
}

// utf8View renders data[:upto] (or the whole buffer if upto < 0) as a
// UTF-8 string. Callbacks only ever see UTF-8; the internal buffer stays
// code points.
func (b *buffer) utf8View(upto int) string {
	if upto < 0 || upto > len(b.data) {
		upto = len(b.data)
	}
	n := 0
	for _, r := range b.data[:upto] {
		n += utf8.RuneLen(r)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.data[:upto] {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}

// columnPosition sums widths[:upto], the column offset the screen-position
// calculator requires.
func (b *buffer) columnPosition(upto int) int {
	if upto > len(b.widths) {
		upto = len(b.widths)
	}
	total := 0
	for _, w := range b.widths[:upto] {
		total += w
	}
	return total
}
