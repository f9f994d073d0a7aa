package rxline

import "testing"

func TestLongestCommonPrefix(t *testing.T) {
	if got := longestCommonPrefix([]string{"history", "hint", "highlight"}); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if got := longestCommonPrefix([]string{"complete", "completion"}); got != 8 {
		t.Errorf("Expected 8, got %d", got)
	}
	if got := longestCommonPrefix([]string{"abc"}); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := longestCommonPrefix(nil); got != 0 {
		t.Errorf("Expected 0 for no candidates, got %d", got)
	}
}

func TestCompleteLineExpandsUniqueCandidate(t *testing.T) {
	keys := append(stringKeys("he"), Key(keyTab), Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)
	e.SetCompletionCallback(func(prefix string, context *int) []string {
		return []string{"hello"}
	})

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "hello" {
		t.Errorf("Expected completion expansion to %q, got %q", "hello", line)
	}
}

func TestCompleteLineBeepsOnNoCandidates(t *testing.T) {
	keys := append(stringKeys("zz"), Key(keyTab), Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)
	e.SetCompletionCallback(func(prefix string, context *int) []string {
		return nil
	})

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "zz" {
		t.Errorf("Expected unchanged line %q, got %q", "zz", line)
	}
	if ft.beeps == 0 {
		t.Errorf("Expected a beep on an empty completion list")
	}
}

func TestCompleteLineExpandsToLongestCommonPrefix(t *testing.T) {
	keys := append(stringKeys("h"), Key(keyTab), Key(keyEnter))
	ft := newFakeTerminal(keys)
	e := NewEditor(ft)
	e.SetCompletionCallback(func(prefix string, context *int) []string {
		return []string{"history", "hint", "highlight"}
	})

	line, err := e.Input("> ")
	if err != nil {
		t.Fatalf("Input returned error: %v", err)
	}
	if line != "hi" {
		t.Errorf("Expected expansion to the shared 2-rune prefix %q, got %q", "hi", line)
	}
}
