package rxline

// CompletionFunc returns completion candidates for the text up to the
// cursor. context is the word-break-delimited context length; the
// callback may widen it to replace more of the buffer than the default
// break-scan would.
type CompletionFunc func(prefixUpToCursor string, context *int) []string

// longestCommonPrefix returns the number of leading code points shared by
// every string in candidates, compared as code-point sequences.
func longestCommonPrefix(candidates []string) int {
	if len(candidates) == 0 {
		return 0
	}
	runeCandidates := make([][]rune, len(candidates))
	for i, c := range candidates {
		runeCandidates[i] = []rune(c)
	}
	sample := runeCandidates[0]
	lcp := 0
	for {
		if lcp >= len(sample) {
			return lcp
		}
		sc := sample[lcp]
		for i := 1; i < len(runeCandidates); i++ {
			cand := runeCandidates[i]
			if lcp >= len(cand) || cand[lcp] != sc {
				return lcp
			}
		}
		lcp++
	}
}

// completeLine implements the Tab key. Returns a Key to re-dispatch to the
// caller (the second key read during the double-Tab gate, when it was not
// itself Tab), or -1 if nothing needs re-dispatch.
func (e *Editor) completeLine() Key {
	ctxLen := e.contextLength()
	prefix := e.buf.utf8View(e.pos)
	completions := e.completionFunc(prefix, &ctxLen)
	if ctxLen > e.pos {
		ctxLen = e.pos
	} else if ctxLen < 0 {
		ctxLen = 0
	}

	if len(completions) == 0 {
		e.terminal.Beep()
		return -1
	}

	completionsCount := len(completions)
	selected := 0
	if e.hintSelection != -1 && e.hintSelection < len(completions) {
		selected = e.hintSelection
		completionsCount = 1
	}

	var lcp int
	if completionsCount == 1 {
		lcp = len([]rune(completions[selected]))
	} else {
		lcp = longestCommonPrefix(completions)
	}

	if lcp > ctxLen || completionsCount == 1 {
		runes := []rune(completions[selected])
		e.buf.eraseRange(e.pos-ctxLen, ctxLen)
		e.pos -= ctxLen
		e.buf.insertSlice(e.pos, runes, 0, lcp)
		e.pos += lcp
		e.prefix = e.pos
		e.refresh(HintRegenerate)
		return -1
	}

	if e.beepOnAmbiguousCompletion {
		e.terminal.Beep()
	}

	var c Key = -1
	if e.doubleTabCompletion {
		for {
			k, err := e.terminal.ReadKey()
			if err != nil {
				return -1
			}
			c = cleanupCtrl(k)
			if c != Key(CtrlKey('I')) {
				return c
			}
			break
		}
	}

	showCompletions := true
	onNewLine := false
	if len(completions) > e.completionCountCutoff {
		savedPos := e.pos
		e.pos = e.buf.length()
		e.refresh(HintSkip)
		e.pos = savedPos
		e.terminal.Printf("\nDisplay all %d possibilities? (y or n)", len(completions))
		onNewLine = true
		c = -1
		for c != 'y' && c != 'Y' && c != 'n' && c != 'N' && c != Key(CtrlKey('C')) {
			k, err := e.terminal.ReadKey()
			if err != nil {
				return -1
			}
			c = cleanupCtrl(k)
		}
		switch c {
		case 'n', 'N':
			showCompletions = false
		case Key(CtrlKey('C')):
			showCompletions = false
			e.terminal.WriteString("^C")
			c = 0
		}
	}

	stopList := false
	if showCompletions {
		longest := 0
		for _, comp := range completions {
			if n := len([]rune(comp)); n > longest {
				longest = n
			}
		}
		longest += 2
		screenCols, screenRows := e.terminal.Size()
		columnCount := screenCols / longest
		if columnCount < 1 {
			columnCount = 1
		}
		if !onNewLine {
			savedPos := e.pos
			e.pos = e.buf.length()
			e.refresh(HintSkip)
			e.pos = savedPos
		} else {
			e.terminal.ClearToEnd()
		}
		pauseRow := screenRows - 1
		rowCount := (len(completions) + columnCount - 1) / columnCount
		for row := 0; row < rowCount; row++ {
			if row == pauseRow {
				e.terminal.Printf("\n--More--")
				c = 0
				doBeep := false
				for c != ' ' && c != '\r' && c != '\n' && c != 'y' && c != 'Y' &&
					c != 'n' && c != 'N' && c != 'q' && c != 'Q' && c != Key(CtrlKey('C')) {
					if doBeep {
						e.terminal.Beep()
					}
					doBeep = true
					k, err := e.terminal.ReadKey()
					if err != nil {
						return -1
					}
					c = cleanupCtrl(k)
				}
				switch c {
				case ' ', 'y', 'Y':
					e.terminal.WriteString("\r")
					e.terminal.ClearLine()
					pauseRow += screenRows - 1
				case '\r', '\n':
					e.terminal.WriteString("\r")
					e.terminal.ClearLine()
					pauseRow++
				case 'n', 'N', 'q', 'Q':
					e.terminal.WriteString("\r")
					e.terminal.ClearLine()
					stopList = true
				case Key(CtrlKey('C')):
					e.terminal.WriteString("^C")
					stopList = true
				}
			} else {
				e.terminal.WriteString("\n")
			}
			if stopList {
				break
			}
			for column := 0; column < columnCount; column++ {
				index := column*rowCount + row
				if index >= len(completions) {
					continue
				}
				item := []rune(completions[index])
				shared := min(lcp, len(item))
				if !e.noColor {
					e.terminal.WriteString(ansiEscape(ColorBrightMagenta))
				}
				e.terminal.WriteString(string(item[:shared]))
				if !e.noColor {
					e.terminal.WriteString(ansiEscape(ColorDefault))
				}
				e.terminal.WriteString(string(item[shared:]))
				if (column+1)*rowCount+row < len(completions) {
					for k := len(item); k < longest; k++ {
						e.terminal.WriteString(" ")
					}
				}
			}
		}
	}

	if !stopList || c == Key(CtrlKey('C')) {
		e.terminal.WriteString("\n")
	}
	e.writePromptText(e.pi)
	if e.pi.indentation == 0 && e.pi.extraLines > 0 {
		e.terminal.WriteString("\n")
	}
	e.pi.cursorRowOffset = e.pi.extraLines
	e.refresh(HintRegenerate)
	return -1
}
