package rxline

import "testing"

func TestIncrementalSearchFindsMatch(t *testing.T) {
	ft := newFakeTerminal(nil)
	e := NewEditor(ft)
	e.history.Add("git status")
	e.history.Add("git commit")
	e.history.Add("ls -la")

	keys := []Key{Key(CtrlKey('R')), 'g', 'i', 't', Key(keyEnter)}
	ft2 := newFakeTerminal(keys)
	e.terminal = ft2

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "git commit" {
		t.Errorf("Expected most recent match %q, got %q", "git commit", line)
	}
}

func TestIncrementalSearchCtrlGDiscards(t *testing.T) {
	ft := newFakeTerminal(nil)
	e := NewEditor(ft)
	e.history.Add("keepme")

	keys := append(stringKeys("typed"), Key(CtrlKey('R')))
	keys = append(keys, 'k', Key(CtrlKey('G')))
	keys = append(keys, Key(keyEnter))
	ft2 := newFakeTerminal(keys)
	e.terminal = ft2

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "typed" {
		t.Errorf("Expected discarded search to leave original line %q, got %q", "typed", line)
	}
}

func TestRunesEqual(t *testing.T) {
	if !runesEqual([]rune("abc"), []rune("abc")) {
		t.Errorf("Expected equal rune slices to compare equal")
	}
	if runesEqual([]rune("abc"), []rune("abd")) {
		t.Errorf("Expected different rune slices to compare unequal")
	}
	if runesEqual([]rune("ab"), []rune("abc")) {
		t.Errorf("Expected different-length rune slices to compare unequal")
	}
}
