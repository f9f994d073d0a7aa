package rxline

// incrementalSearch implements Ctrl-R/Ctrl-S. startChar is the key that
// invoked search (Ctrl-R ⇒ reverse, Ctrl-S ⇒ forward). It
// returns the key that should be re-dispatched to the main loop as its
// next input, or -1 if nothing should be re-dispatched (the search was
// simply discarded).
func (e *Editor) incrementalSearch(startChar Key) Key {
	if e.history.IsLast() {
		e.history.UpdateLast(e.buf.utf8View(-1))
	}
	historyLinePosition := e.pos

	direction := -1
	if startChar == Key(CtrlKey('S')) {
		direction = 1
	}
	dp := newDynamicPrompt(e.pi, direction)

	activeLine := append([]rune{}, e.buf.data...)
	e.searchRefresh(&dp.promptInfo, activeLine, historyLinePosition)

	keepLooping := true
	useSearchedLine := true
	searchAgain := false
	var c Key = 0

	for keepLooping {
		k, err := e.terminal.ReadKey()
		if err != nil {
			keepLooping = false
			useSearchedLine = false
			c = -1
			break
		}
		c = cleanupCtrl(k)

		switch c {
		case Key(CtrlKey('A')), KeyHome, Key(CtrlKey('B')), KeyLeft,
			ModMeta + 'b', ModMeta + 'B', ModCtrl + KeyLeft, ModMeta + KeyLeft,
			Key(CtrlKey('D')), ModMeta + 'd', ModMeta + 'D',
			Key(CtrlKey('E')), KeyEnd, Key(CtrlKey('F')), KeyRight,
			ModMeta + 'f', ModMeta + 'F', ModCtrl + KeyRight, ModMeta + KeyRight,
			ModMeta + Key(CtrlKey('H')), Key(CtrlKey('J')), Key(CtrlKey('K')), Key(CtrlKey('M')),
			Key(CtrlKey('N')), Key(CtrlKey('P')), KeyDown, KeyUp, Key(CtrlKey('T')),
			Key(CtrlKey('U')), Key(CtrlKey('W')), ModMeta + 'y', ModMeta + 'Y',
			Key(keyBackspace), KeyDelete, ModMeta + '<', KeyPageUp, ModMeta + '>', KeyPageDown:
			keepLooping = false

		case Key(CtrlKey('C')), Key(CtrlKey('G')), Key(CtrlKey('L')):
			keepLooping = false
			useSearchedLine = false
			if c != Key(CtrlKey('L')) {
				c = -1
			}

		case Key(CtrlKey('S')), Key(CtrlKey('R')):
			if dp.searchText == "" && e.previousSearchText != "" {
				dp.searchText = e.previousSearchText
			}
			if (dp.direction == 1 && c == Key(CtrlKey('R'))) || (dp.direction == -1 && c == Key(CtrlKey('S'))) {
				dp.direction = -dp.direction
				dp.updateSearchPrompt()
			} else {
				searchAgain = true
			}

		case Key(CtrlKey('H')):
			if dp.searchText != "" {
				r := []rune(dp.searchText)
				dp.searchText = string(r[:len(r)-1])
				dp.updateSearchPrompt()
				if dp.direction == -1 {
					e.history.Jump(false)
				} else {
					e.history.Jump(true)
				}
			} else {
				e.terminal.Beep()
			}

		case Key(CtrlKey('Y')):
			// yank is a no-op while searching.

		default:
			if r, ok := c.Rune(); ok && !isControlChar(c) {
				dp.searchText += string(r)
				dp.updateSearchPrompt()
			} else {
				e.terminal.Beep()
			}
		}

		if !keepLooping {
			break
		}

		activeLine = []rune(e.history.Current())
		dp.failed = false
		if dp.searchText != "" {
			found := false
			lineSearchPos := historyLinePosition
			if searchAgain {
				lineSearchPos += dp.direction
			}
			searchAgain = false
			searchRunes := []rune(dp.searchText)
			for {
				for lineSearchPos+len(searchRunes) <= len(activeLine) && lineSearchPos >= 0 {
					if runesEqual(searchRunes, activeLine[lineSearchPos:lineSearchPos+len(searchRunes)]) {
						found = true
						break
					}
					lineSearchPos += dp.direction
				}
				if found {
					historyLinePosition = lineSearchPos
					break
				}
				if !e.history.Move(dp.direction < 0) {
					e.terminal.Beep()
					dp.failed = true
					dp.updateSearchPrompt()
					break
				}
				activeLine = []rune(e.history.Current())
				if dp.direction > 0 {
					lineSearchPos = 0
				} else {
					lineSearchPos = len(activeLine) - len(searchRunes)
				}
			}
		}
		activeLine = []rune(e.history.Current())
		e.searchRefresh(&dp.promptInfo, activeLine, historyLinePosition)
	}

	if useSearchedLine && len(activeLine) > 0 {
		e.history.SetRecallMostRecent()
		e.buf.assignRunes(activeLine)
		e.prefix = historyLinePosition
		e.pos = historyLinePosition
	}
	e.previousSearchText = dp.searchText
	e.refresh(HintRegenerate)
	return c
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// searchRefresh repaints the input line under a dynamic (search) prompt.
// Unlike refresh, it redraws the prompt text on every call, since the
// dynamic prompt's own text changes on every keystroke.
func (e *Editor) searchRefresh(pi *promptInfo, data []rune, pos int) {
	widths := make([]int, len(data))
	tmp := buffer{data: data}
	tmp.recomputeWidths()
	widths = tmp.widths

	xEnd, yEnd := calculateScreenPosition(pi.indentation, 0, pi.screenCols, widths)
	if pos > len(widths) {
		pos = len(widths)
	}
	xCur, yCur := calculateScreenPosition(pi.indentation, 0, pi.screenCols, widths[:pos])

	if up := pi.cursorRowOffset - pi.extraLines; up > 0 {
		e.terminal.MoveCursorUp(up)
	}
	e.terminal.MoveCursorToColumn(0)
	e.terminal.ClearToEnd()
	e.terminal.WriteString(pi.text)
	e.terminal.WriteString(string(data))
	if xEnd == 0 && yEnd > 0 {
		e.terminal.WriteString("\n")
	}
	if up := yEnd - yCur; up > 0 {
		e.terminal.MoveCursorUp(up)
	}
	e.terminal.MoveCursorToColumn(xCur)
	pi.cursorRowOffset = pi.extraLines + yCur
}
