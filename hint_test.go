package rxline

import "testing"

func TestHandleHintsSingleCandidateInline(t *testing.T) {
	ft := newFakeTerminal(nil)
	e := NewEditor(ft)
	e.buf.assignString("he")
	e.pos = 2
	e.SetHintCallback(func(prefix string, context *int, color *Color) []string {
		return []string{"hello"}
	})

	var display []rune
	extra := e.handleHints(&display, newPromptInfo("> ", 80), HintRegenerate)
	if extra != 3 {
		t.Errorf("Expected 3 extra columns (\"llo\"), got %d", extra)
	}
	if string(display) == "" {
		t.Errorf("Expected hint text appended to display")
	}
}

func TestHandleHintsSkippedWhenNotAtEnd(t *testing.T) {
	ft := newFakeTerminal(nil)
	e := NewEditor(ft)
	e.buf.assignString("hello")
	e.pos = 2 // cursor not at end of buffer
	e.SetHintCallback(func(prefix string, context *int, color *Color) []string {
		return []string{"should not be used"}
	})

	var display []rune
	extra := e.handleHints(&display, newPromptInfo("> ", 80), HintRegenerate)
	if extra != 0 {
		t.Errorf("Expected 0 when cursor is mid-buffer, got %d", extra)
	}
}

func TestHandleHintsNoColorSuppressesHints(t *testing.T) {
	ft := newFakeTerminal(nil)
	e := NewEditor(ft)
	e.SetNoColor(true)
	e.buf.assignString("he")
	e.pos = 2
	e.SetHintCallback(func(prefix string, context *int, color *Color) []string {
		return []string{"hello"}
	})

	var display []rune
	extra := e.handleHints(&display, newPromptInfo("> ", 80), HintRegenerate)
	if extra != 0 {
		t.Errorf("Expected hints suppressed under SetNoColor, got %d", extra)
	}
}
