package rxline

import (
	"errors"
	"fmt"
	"io"
	"unicode"
)

// Editor is a single line-editing session's configuration plus the state
// that lives for the duration of one Input call. A single Editor may be
// reused across many Input calls; pos, prefix, hintSelection, and pi are
// reset at the start of each one. buf is not: Input starts from whatever
// PreloadBuffer left in it, and empties it when it returns a line or
// ErrAbort.
type Editor struct {
	terminal Terminal
	history  History
	kill     killRing

	completionFunc CompletionFunc
	hintFunc       HintFunc
	highlightFunc  HighlightFunc

	maxHintRows               int
	completionCountCutoff     int
	wordBreakChars            string
	doubleTabCompletion       bool
	completeOnEmpty           bool
	beepOnAmbiguousCompletion bool
	noColor                   bool

	buf           buffer
	pos           int
	prefix        int
	hintSelection int

	pi                 *promptInfo
	previousSearchText string

	debugLog io.Writer
}

// NewEditor constructs an Editor bound to terminal, with double-tab
// completion off, completion-on-empty off, a 100-entry ambiguous-
// completion cutoff, and up to 4 hint rows.
func NewEditor(terminal Terminal) *Editor {
	return &Editor{
		terminal:              terminal,
		history:               NewHistory(),
		maxHintRows:           4,
		completionCountCutoff: 100,
		wordBreakChars:        defaultWordBreakCharacters,
		hintSelection:         -1,
	}
}

/*** configuration setters ***/

func (e *Editor) SetCompletionCallback(fn CompletionFunc)           { e.completionFunc = fn }
func (e *Editor) SetHintCallback(fn HintFunc)                       { e.hintFunc = fn }
func (e *Editor) SetHighlighterCallback(fn HighlightFunc)           { e.highlightFunc = fn }
func (e *Editor) SetHistory(h History)                              { e.history = h }
func (e *Editor) SetMaxHistorySize(n int)                            { e.history.SetMaxSize(n) }
func (e *Editor) SetCompletionCountCutoff(n int)                     { e.completionCountCutoff = n }
func (e *Editor) SetMaxHintRows(n int)                               { e.maxHintRows = n }
func (e *Editor) SetWordBreakCharacters(chars string)                { e.wordBreakChars = chars }
func (e *Editor) SetDoubleTabCompletion(on bool)                     { e.doubleTabCompletion = on }
func (e *Editor) SetCompleteOnEmpty(on bool)                         { e.completeOnEmpty = on }
func (e *Editor) SetBeepOnAmbiguousCompletion(on bool)                { e.beepOnAmbiguousCompletion = on }
func (e *Editor) SetNoColor(on bool)                                  { e.noColor = on }

// SetDebugLog routes internal trace lines (resize events) to w; nil (the
// default) disables tracing. A line editor cannot log to its own tty without corrupting the display, so this is always a
// separate writer.
func (e *Editor) SetDebugLog(w io.Writer) { e.debugLog = w }

func (e *Editor) debugf(format string, args ...any) {
	if e.debugLog != nil {
		fmt.Fprintf(e.debugLog, format+"\n", args...)
	}
}

// PreloadBuffer seeds the next Input call's line with text, as if the
// user had already typed it, cursor at the end.
func (e *Editor) PreloadBuffer(text string) {
	e.buf.assignString(text)
	e.pos = e.buf.length()
	e.prefix = e.pos
}

func (e *Editor) HistoryAdd(line string)          { e.history.Add(line) }
func (e *Editor) HistorySize() int                { return e.history.Size() }
func (e *Editor) HistoryLine(i int) string        { return e.history.Line(i) }
func (e *Editor) HistorySave(path string) error   { return e.history.Save(path) }
func (e *Editor) HistoryLoad(path string) error   { return e.history.Load(path) }

// ClearScreen clears the whole terminal screen and homes the cursor,
// independent of any in-progress edit line.
func (e *Editor) ClearScreen() {
	e.terminal.WriteString("\x1b[H\x1b[2J")
}

// Print writes text to the terminal outside of an edit line, e.g. for a
// program's own output interleaved between prompts.
func (e *Editor) Print(text string) {
	e.terminal.WriteString(text)
}

// Input runs one interactive edit session: draws prompt, reads and
// dispatches keys until Enter, Ctrl-C, or Ctrl-D, and returns the
// completed line.
func (e *Editor) Input(prompt string) (string, error) {
	cols, _ := e.terminal.Size()
	e.pi = newPromptInfo(prompt, cols)
	e.pi.cursorRowOffset = e.pi.extraLines

	restore, err := e.terminal.EnableRawMode()
	if err != nil {
		return "", err
	}
	defer restore()

	e.pos = e.buf.length()
	e.prefix = e.pos
	e.hintSelection = -1
	e.kill.lastAction = killActionOther

	e.history.Add(e.buf.utf8View(-1))
	e.history.ResetRecallMostRecent()

	e.writePromptText(e.pi)
	e.refresh(HintRegenerate)

	var pending Key
	hasPending := false

	for {
		if e.terminal.ResizePending() {
			cols, _ := e.terminal.Size()
			e.debugf("resize: screenCols %d -> %d", e.pi.screenCols, cols)
			e.pi.screenCols = cols
			e.refresh(HintRegenerate)
		}

		var c Key
		if hasPending {
			c = pending
			hasPending = false
		} else {
			k, readErr := e.terminal.ReadKey()
			if readErr != nil {
				e.history.DropLast()
				if errors.Is(readErr, io.EOF) {
					return "", ErrEOF
				}
				return "", readErr
			}
			c = cleanupCtrl(k)
		}

		// Only a kill or a yank leaves lastAction set for the next key.
		prevAction := e.kill.lastAction
		e.kill.lastAction = killActionOther

		switch c {
		case Key(keyEnter), Key(keyLinefeed):
			line := e.buf.utf8View(-1)
			e.history.DropLast()
			if line != "" {
				e.history.Add(line)
			}
			e.pos = e.buf.length()
			e.refresh(HintSkip)
			e.terminal.WriteString("\r\n")
			e.buf.clear()
			e.pos, e.prefix = 0, 0
			return line, nil

		case Key(CtrlKey('C')):
			e.history.DropLast()
			e.terminal.WriteString("^C\r\n")
			e.buf.clear()
			e.pos, e.prefix = 0, 0
			return "", ErrAbort

		case Key(CtrlKey('D')):
			if e.buf.length() == 0 {
				e.history.DropLast()
				e.terminal.WriteString("\r\n")
				return "", ErrEOF
			}
			if e.pos < e.buf.length() {
				e.buf.erase(e.pos)
				e.kill.lastAction = killActionOther
				e.refresh(HintRegenerate)
			}

		case Key(keyTab):
			if e.completionFunc != nil && (e.completeOnEmpty || e.buf.length() > 0) {
				if r := e.completeLine(); r != -1 {
					pending, hasPending = r, true
				}
			} else {
				e.terminal.Beep()
			}

		case Key(CtrlKey('R')), Key(CtrlKey('S')):
			if r := e.incrementalSearch(c); r != -1 {
				pending, hasPending = r, true
			}

		case Key(CtrlKey('L')):
			e.ClearScreen()
			e.pi.cursorRowOffset = e.pi.extraLines
			e.writePromptText(e.pi)
			e.refresh(HintRegenerate)

		default:
			e.dispatchKey(c, prevAction)
		}
	}
}

// dispatchKey handles every ordinary editing key: cursor movement, kills,
// yanks, case operations, history recall, and plain character insertion.
// Input handles a few keys directly instead, because they can redispatch
// a pending key. prevAction is the kill-ring action of the previous key.
func (e *Editor) dispatchKey(c Key, prevAction killAction) {
	switch c {
	case Key(CtrlKey('A')), KeyHome:
		e.pos = 0
		e.refresh(HintRegenerate)

	case Key(CtrlKey('E')), KeyEnd:
		e.pos = e.buf.length()
		e.refresh(HintRegenerate)

	case Key(CtrlKey('B')), KeyLeft:
		if e.pos > 0 {
			e.pos--
		}
		e.refresh(HintRegenerate)

	case Key(CtrlKey('F')), KeyRight:
		if e.pos < e.buf.length() {
			e.pos++
		}
		e.refresh(HintRegenerate)

	case ModMeta + 'b', ModMeta + 'B', ModCtrl + KeyLeft, ModMeta + KeyLeft:
		e.wordBackward()
		e.refresh(HintRegenerate)

	case ModMeta + 'f', ModMeta + 'F', ModCtrl + KeyRight, ModMeta + KeyRight:
		e.wordForward()
		e.refresh(HintRegenerate)

	case Key(keyBackspace), Key(CtrlKey('H')):
		if e.pos > 0 {
			e.buf.erase(e.pos - 1)
			e.pos--
			e.kill.lastAction = killActionOther
			e.refresh(HintRegenerate)
		}

	case KeyDelete:
		if e.pos < e.buf.length() {
			e.buf.erase(e.pos)
			e.kill.lastAction = killActionOther
			e.refresh(HintRegenerate)
		}

	case Key(CtrlKey('K')):
		span := string(e.buf.data[e.pos:])
		e.kill.lastAction = prevAction
		e.kill.kill(span, true)
		e.buf.eraseRange(e.pos, e.buf.length()-e.pos)
		e.kill.lastAction = killActionKill
		e.refresh(HintRegenerate)

	case Key(CtrlKey('U')):
		span := string(e.buf.data[:e.pos])
		e.kill.lastAction = prevAction
		e.kill.kill(span, false)
		e.buf.eraseRange(0, e.pos)
		e.pos = 0
		e.kill.lastAction = killActionKill
		e.refresh(HintRegenerate)

	case Key(CtrlKey('W')):
		start := e.pos
		for start > 0 && isWordBreakRune(e.buf.at(start-1), " \t") {
			start--
		}
		for start > 0 && !isWordBreakRune(e.buf.at(start-1), " \t") {
			start--
		}
		span := string(e.buf.data[start:e.pos])
		e.kill.lastAction = prevAction
		e.kill.kill(span, false)
		e.buf.eraseRange(start, e.pos-start)
		e.pos = start
		e.kill.lastAction = killActionKill
		e.refresh(HintRegenerate)

	case ModMeta + 'd', ModMeta + 'D':
		start := e.pos
		e.wordForward()
		span := string(e.buf.data[start:e.pos])
		e.buf.eraseRange(start, e.pos-start)
		e.pos = start
		e.kill.lastAction = prevAction
		e.kill.kill(span, true)
		e.kill.lastAction = killActionKill
		e.refresh(HintRegenerate)

	case ModMeta + Key(CtrlKey('H')), ModMeta + Key(keyBackspace):
		end := e.pos
		e.wordBackward()
		start := e.pos
		span := string(e.buf.data[start:end])
		e.buf.eraseRange(start, end-start)
		e.kill.lastAction = prevAction
		e.kill.kill(span, false)
		e.kill.lastAction = killActionKill
		e.refresh(HintRegenerate)

	case Key(CtrlKey('Y')):
		if s, ok := e.kill.yank(); ok {
			runes := []rune(s)
			e.buf.insertSlice(e.pos, runes, 0, len(runes))
			e.pos += len(runes)
			e.kill.lastAction = killActionYank
			e.kill.lastYankSize = len(runes)
			e.refresh(HintRegenerate)
		}

	case ModMeta + 'y', ModMeta + 'Y':
		if prevAction == killActionYank {
			if s, ok := e.kill.yankPop(); ok {
				e.kill.lastAction = killActionYank
				runes := []rune(s)
				e.buf.eraseRange(e.pos-e.kill.lastYankSize, e.kill.lastYankSize)
				e.pos -= e.kill.lastYankSize
				e.buf.insertSlice(e.pos, runes, 0, len(runes))
				e.pos += len(runes)
				e.kill.lastYankSize = len(runes)
				e.refresh(HintRegenerate)
			}
		}

	case Key(CtrlKey('T')):
		e.transposeChars()
		e.refresh(HintRegenerate)

	case ModMeta + 'c', ModMeta + 'C':
		e.caseWord('C')
		e.refresh(HintRegenerate)

	case ModMeta + 'l', ModMeta + 'L':
		e.caseWord('L')
		e.refresh(HintRegenerate)

	case ModMeta + 'u', ModMeta + 'U':
		e.caseWord('U')
		e.refresh(HintRegenerate)

	case Key(CtrlKey('P')), KeyUp:
		e.moveHistory(true)

	case Key(CtrlKey('N')), KeyDown:
		e.moveHistory(false)

	case ModMeta + 'p', ModMeta + 'P':
		e.searchHistoryCommonPrefix(true)

	case ModMeta + 'n', ModMeta + 'N':
		e.searchHistoryCommonPrefix(false)

	case ModMeta + '<', KeyPageUp:
		e.jumpHistory(true)

	case ModMeta + '>', KeyPageDown:
		e.jumpHistory(false)

	case ModCtrl + KeyUp:
		if e.hintSelection < -1 {
			e.hintSelection = 0
		}
		e.hintSelection--
		e.refresh(HintRepaint)

	case ModCtrl + KeyDown:
		e.hintSelection++
		e.refresh(HintRepaint)

	default:
		if r, ok := c.Rune(); ok && !isControlChar(c) {
			e.insertCharacter(r)
		} else {
			e.terminal.Beep()
		}
	}
}

func (e *Editor) insertCharacter(r rune) {
	e.buf.insert(e.pos, r)
	e.pos++
	e.prefix = e.pos
	e.kill.lastAction = killActionOther
	e.refresh(HintRegenerate)
}

func (e *Editor) wordForward() {
	pos := e.pos
	for pos < e.buf.length() && isWordBreakRune(e.buf.at(pos), e.wordBreakChars) {
		pos++
	}
	for pos < e.buf.length() && !isWordBreakRune(e.buf.at(pos), e.wordBreakChars) {
		pos++
	}
	e.pos = pos
}

func (e *Editor) wordBackward() {
	pos := e.pos
	for pos > 0 && isWordBreakRune(e.buf.at(pos-1), e.wordBreakChars) {
		pos--
	}
	for pos > 0 && !isWordBreakRune(e.buf.at(pos-1), e.wordBreakChars) {
		pos--
	}
	e.pos = pos
}

// transposeChars implements Ctrl-T: swap the two code points straddling
// the cursor and advance, or (at end of line) swap the last two code
// points in place, matching Emacs transpose-chars.
func (e *Editor) transposeChars() {
	n := e.buf.length()
	if e.pos == 0 || n < 2 {
		return
	}
	if e.pos >= n {
		e.buf.data[n-2], e.buf.data[n-1] = e.buf.data[n-1], e.buf.data[n-2]
		e.buf.recomputeWidths()
		return
	}
	e.buf.data[e.pos-1], e.buf.data[e.pos] = e.buf.data[e.pos], e.buf.data[e.pos-1]
	e.buf.recomputeWidths()
	e.pos++
}

// caseWord implements Meta-C/L/U: operate on the next word from the
// cursor, mode is 'C' (capitalize), 'L' (lowercase), or 'U' (uppercase).
func (e *Editor) caseWord(mode byte) {
	pos := e.pos
	for pos < e.buf.length() && isWordBreakRune(e.buf.at(pos), e.wordBreakChars) {
		pos++
	}
	first := true
	for pos < e.buf.length() && !isWordBreakRune(e.buf.at(pos), e.wordBreakChars) {
		r := e.buf.data[pos]
		switch mode {
		case 'U':
			r = unicode.ToUpper(r)
		case 'L':
			r = unicode.ToLower(r)
		case 'C':
			if first {
				r = unicode.ToUpper(r)
			} else {
				r = unicode.ToLower(r)
			}
		}
		e.buf.data[pos] = r
		first = false
		pos++
	}
	e.buf.recomputeWidths()
	e.pos = pos
}

func (e *Editor) moveHistory(up bool) {
	if e.history.IsLast() {
		e.history.UpdateLast(e.buf.utf8View(-1))
	}
	if !e.history.Move(up) {
		e.terminal.Beep()
		return
	}
	e.buf.assignString(e.history.Current())
	e.pos = e.buf.length()
	e.prefix = e.pos
	e.refresh(HintRegenerate)
}

func (e *Editor) jumpHistory(start bool) {
	if e.history.IsLast() {
		e.history.UpdateLast(e.buf.utf8View(-1))
	}
	e.history.Jump(start)
	e.buf.assignString(e.history.Current())
	e.pos = e.buf.length()
	e.prefix = e.pos
	e.refresh(HintRegenerate)
}

func (e *Editor) searchHistoryCommonPrefix(reverse bool) {
	prefix := e.buf.utf8View(e.pos)
	prefixCols := e.buf.columnPosition(e.pos)
	if !e.history.CommonPrefixSearch(prefix, prefixCols, reverse) {
		e.terminal.Beep()
		return
	}
	e.buf.assignString(e.history.Current())
	e.refresh(HintRegenerate)
}

// contextLength returns the number of code points immediately before the
// cursor that are not a word-break character — the "context" argument
// passed to completion and hint callbacks.
func (e *Editor) contextLength() int {
	pos := e.pos
	n := 0
	for pos > 0 && !isWordBreakRune(e.buf.at(pos-1), e.wordBreakChars) {
		pos--
		n++
	}
	return n
}
