package rxline

// calculateScreenPosition lays out the runes described by widths, entering
// at (startX, startY) on a terminal screenCols columns wide, and returns
// the final cell. A character of width w entering at column c with
// c+w > screenCols begins at the next row's column 0 instead of splitting
// across the wrap — a width-2 glyph never straddles the right edge.
func calculateScreenPosition(startX, startY, screenCols int, widths []int) (x, y int) {
	x, y = startX, startY
	for _, w := range widths {
		if screenCols > 0 && x+w > screenCols {
			x = 0
			y++
		}
		x += w
		if screenCols > 0 && x >= screenCols {
			x = 0
			y++
		}
	}
	return x, y
}

// calculateScreenPositionColumns is the same layout but expressed over a
// plain cumulative column count rather than a per-rune width slice, for
// callers that only have a total (e.g. a hint suffix whose individual
// character widths were already folded into one count). It assumes every
// intervening column is occupied by a width-1 rune, so it must not be used
// where a width-2 rune could fall exactly on the wrap boundary.
func calculateScreenPositionColumns(startX, startY, screenCols, columnOffset int) (x, y int) {
	x, y = startX, startY
	if screenCols <= 0 {
		return x + columnOffset, y
	}
	firstRowSpace := screenCols - x
	if columnOffset < firstRowSpace {
		return x + columnOffset, y
	}
	remaining := columnOffset - firstRowSpace
	y++
	y += remaining / screenCols
	x = remaining % screenCols
	return x, y
}

// calculateColumnPosition sums the display width of widths[:pos], the
// code-point-index-to-column conversion calculateScreenPosition's widths
// argument is sliced from.
func calculateColumnPosition(widths []int, pos int) int {
	if pos > len(widths) {
		pos = len(widths)
	}
	total := 0
	for _, w := range widths[:pos] {
		total += w
	}
	return total
}
