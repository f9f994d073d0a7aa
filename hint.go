package rxline

// HintAction controls whether handleHints regenerates the hint list or
// reuses the previous selection.
type HintAction int

const (
	// HintRegenerate clears hintSelection and asks the callback again;
	// used after any buffer-mutating key.
	HintRegenerate HintAction = iota
	// HintRepaint keeps the current selection (used by Ctrl-Up/Ctrl-Down,
	// which only rotate the selection) and re-asks the callback.
	HintRepaint
	// HintSkip suppresses hints entirely for this refresh (used for the
	// final refresh before Enter, and during completion listing).
	HintSkip
)

// HintFunc returns hint candidates for the text up to the cursor. context
// is the word-break-delimited context length computed by contextLength();
// the callback may shrink it, so that fewer of each hint's leading code
// points are treated as "already typed" and skipped when drawn. color is the colour the caller should render the hint
// in, defaulting to ColorGray; the callback may override it.
type HintFunc func(prefixUpToCursor string, context *int, color *Color) []string

// handleHints runs the hint callback (when active) and appends inline or
// below-line rows to display, returning the extra inline column count the
// geometry calculation needs.
//
// Activation condition: colour enabled, hint callback set, action != SKIP,
// pos == len(data).
func (e *Editor) handleHints(display *[]rune, pi *promptInfo, action HintAction) int {
	if e.noColor || e.hintFunc == nil || action == HintSkip {
		return 0
	}
	if e.pos != e.buf.length() {
		return 0
	}
	if action == HintRegenerate {
		e.hintSelection = -1
	}

	color := ColorGray
	ctxLen := e.contextLength()
	prefix := e.buf.utf8View(e.pos)
	hints := e.hintFunc(prefix, &ctxLen, &color)
	hintCount := len(hints)

	hintRunes := func(s string) []rune { return []rune(s) }

	if hintCount == 1 {
		h := hintRunes(hints[0])
		appendColor(display, color)
		for i := ctxLen; i < len(h); i++ {
			*display = append(*display, h[i])
		}
		appendColor(display, ColorDefault)
		return len(h) - ctxLen
	}

	if hintCount == 0 || e.maxHintRows <= 0 {
		return 0
	}

	startCol := pi.indentation + e.pos - ctxLen
	maxCol := pi.screenCols - e.terminal.HintColumnAdjustment()

	if e.hintSelection < -1 {
		e.hintSelection = hintCount - 1
	} else if e.hintSelection >= hintCount {
		e.hintSelection = -1
	}

	extra := 0
	appendColor(display, color)
	if e.hintSelection != -1 {
		h := hintRunes(hints[e.hintSelection])
		ln := len(h)
		if capLen := maxCol - startCol - e.buf.length(); capLen < ln {
			ln = capLen
		}
		if ln < 0 {
			ln = 0
		}
		for i := ctxLen; i < ln; i++ {
			*display = append(*display, h[i])
		}
		extra = ln - ctxLen
	}
	appendColor(display, ColorDefault)

	rows := e.maxHintRows
	if rows > hintCount {
		rows = hintCount
	}
	for row := 0; row < rows; row++ {
		*display = append(*display, '\n')
		col := 0
		for i := 0; i < startCol && col < maxCol; i, col = i+1, col+1 {
			*display = append(*display, ' ')
		}
		appendColor(display, color)
		for i := e.pos - ctxLen; i < e.pos && col < maxCol; i, col = i+1, col+1 {
			*display = append(*display, e.buf.at(i))
		}
		hintNo := row + e.hintSelection + 1
		if hintNo == hintCount {
			appendColor(display, ColorDefault)
			continue
		} else if hintNo > hintCount {
			hintNo--
		}
		h := hintRunes(hints[hintNo%hintCount])
		for i := ctxLen; i < len(h) && col < maxCol; i, col = i+1, col+1 {
			*display = append(*display, h[i])
		}
		appendColor(display, ColorDefault)
	}
	return extra
}

func appendColor(display *[]rune, c Color) {
	*display = append(*display, []rune(ansiEscape(c))...)
}
