package rxline

import "strings"

// refresh is the renderer's entry point. The prompt itself is assumed
// already on screen; refresh repaints only the input line and
// repositions the cursor.
func (e *Editor) refresh(hintAction HintAction) {
	data := e.buf.data

	highlightIdx, indicateError := -1, false
	if e.pos < len(data) {
		highlightIdx, indicateError = findMatchingBrace(data, e.pos)
	}

	colors := computeColors(data, e.highlightFunc)
	if highlightIdx != -1 {
		if indicateError {
			colors[highlightIdx] = ColorError
		} else {
			colors[highlightIdx] = ColorBrightRed
		}
	}

	var display []rune
	if e.noColor {
		display = append(display, data...)
	} else {
		current := ColorDefault
		for i, r := range data {
			if colors[i] != current {
				current = colors[i]
				appendColor(&display, current)
			}
			display = append(display, r)
		}
		appendColor(&display, ColorDefault)
	}

	hintExtra := e.handleHints(&display, e.pi, hintAction)

	bufEndX, bufEndY := calculateScreenPosition(e.pi.indentation, 0, e.pi.screenCols, e.buf.widths)
	xEnd, yEnd := calculateScreenPositionColumns(bufEndX, bufEndY, e.pi.screenCols, hintExtra)
	yEnd += strings.Count(string(display), "\n")

	xCur, yCur := calculateScreenPosition(e.pi.indentation, 0, e.pi.screenCols, e.buf.widths[:e.pos])

	cursorRowMovement := e.pi.cursorRowOffset - e.pi.extraLines
	if cursorRowMovement > 0 {
		e.terminal.MoveCursorUp(cursorRowMovement)
	}
	e.terminal.MoveCursorToColumn(e.pi.indentation)
	e.terminal.ClearToEnd()

	if e.noColor {
		e.terminal.WriteString(string(data))
	} else {
		e.terminal.WriteString(string(display))
	}

	if xEnd == 0 && yEnd > 0 {
		e.terminal.WriteString("\n")
	}

	if up := yEnd - yCur; up > 0 {
		e.terminal.MoveCursorUp(up)
	}
	e.terminal.MoveCursorToColumn(xCur)

	e.pi.cursorRowOffset = e.pi.extraLines + yCur
}

// writePromptText writes a prompt's static text to the terminal, used both
// for the initial draw and after a completion listing redraws the prompt
// on a fresh line.
func (e *Editor) writePromptText(pi *promptInfo) {
	e.terminal.WriteString(pi.text)
}
