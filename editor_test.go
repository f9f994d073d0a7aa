package rxline

import "testing"

func TestEditorInputSimpleLine(t *testing.T) {
	ft := newFakeTerminal(append(stringKeys("hello"), Key(keyEnter)))
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "hello" {
		t.Errorf("Expected %q, got %q", "hello", line)
	}
}

func TestEditorInputBackspace(t *testing.T) {
	keys := append(stringKeys("helllo"), Key(keyBackspace), Key(keyBackspace), Key(keyBackspace))
	keys = append(keys, stringKeys("lo")...)
	keys = append(keys, Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "hello" {
		t.Errorf("Expected %q, got %q", "hello", line)
	}
}

func TestEditorInputCtrlD_EOF(t *testing.T) {
	ft := newFakeTerminal([]Key{Key(CtrlKey('D'))})
	e := NewEditor(ft)

	_, err := e.Input("> ")
	if err != ErrEOF {
		t.Errorf("Expected ErrEOF, got %v", err)
	}
}

func TestEditorInputCtrlC_Abort(t *testing.T) {
	keys := append(stringKeys("partial"), Key(CtrlKey('C')))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	_, err := e.Input("> ")
	if err != ErrAbort {
		t.Errorf("Expected ErrAbort, got %v", err)
	}
}

func TestEditorCursorMovementAndInsert(t *testing.T) {
	keys := append(stringKeys("acd"), KeyLeft, KeyLeft)
	keys = append(keys, Key('b'), Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", line)
	}
}

func TestEditorWordBackwardKill(t *testing.T) {
	keys := append(stringKeys("foo bar"), ModMeta+Key(CtrlKey('H')), Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "foo " {
		t.Errorf("Expected %q, got %q", "foo ", line)
	}
}

func TestEditorKillAndYank(t *testing.T) {
	keys := append(stringKeys("hello world"), KeyHome)
	keys = append(keys, Key(CtrlKey('K'))) // kill whole line
	keys = append(keys, Key(CtrlKey('Y'))) // yank it back
	keys = append(keys, Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "hello world" {
		t.Errorf("Expected %q, got %q", "hello world", line)
	}
}

func TestEditorHistoryRecall(t *testing.T) {
	ft := newFakeTerminal(append(stringKeys("first"), Key(keyEnter)))
	e := NewEditor(ft)
	if _, err := e.Input("> "); err != nil {
		t.Fatalf("first Input returned error: %v", err)
	}

	ft2 := newFakeTerminal([]Key{KeyUp, Key(keyEnter)})
	ft2.keys = []Key{KeyUp, Key(keyEnter)}
	e.terminal = ft2
	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("second Input returned error: %v", err)
	}
	if line != "first" {
		t.Errorf("Expected history recall %q, got %q", "first", line)
	}
}

func TestEditorTransposeChars(t *testing.T) {
	keys := append(stringKeys("ab"), Key(CtrlKey('T')), Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "ba" {
		t.Errorf("Expected %q, got %q", "ba", line)
	}
}

func TestEditorCaseWord(t *testing.T) {
	keys := append(stringKeys("hello world"), KeyHome, ModMeta+'u', Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "HELLO world" {
		t.Errorf("Expected %q, got %q", "HELLO world", line)
	}
}
