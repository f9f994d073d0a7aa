package rxline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryHistoryAddAndMove(t *testing.T) {
	h := NewHistory()
	h.Add("one")
	h.Add("two")
	h.Add("three")

	if !h.IsLast() {
		t.Errorf("Expected IsLast after Add")
	}
	if !h.Move(true) {
		t.Fatalf("Expected Move(true) to succeed")
	}
	if h.Current() != "two" {
		t.Errorf("Expected %q, got %q", "two", h.Current())
	}
}

func TestMemoryHistoryMaxSize(t *testing.T) {
	h := NewHistory()
	h.SetMaxSize(2)
	h.Add("one")
	h.Add("two")
	h.Add("three")
	if h.Size() != 2 {
		t.Fatalf("Expected size 2, got %d", h.Size())
	}
	if h.Line(0) != "two" {
		t.Errorf("Expected oldest surviving entry %q, got %q", "two", h.Line(0))
	}
}

func TestMemoryHistorySaveLoad(t *testing.T) {
	h := NewHistory()
	h.Add("alpha")
	h.Add("beta")

	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	if err := h.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	h2 := NewHistory()
	if err := h2.Load(path); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if h2.Size() != 2 || h2.Line(0) != "alpha" || h2.Line(1) != "beta" {
		t.Errorf("Loaded history mismatch: size=%d line0=%q line1=%q", h2.Size(), h2.Line(0), h2.Line(1))
	}
}

func TestMemoryHistoryLoadMissingFile(t *testing.T) {
	h := NewHistory()
	err := h.Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected IsNotExist error, got %v", err)
	}
}

func TestMemoryHistoryCommonPrefixSearch(t *testing.T) {
	h := NewHistory()
	h.Add("git status")
	h.Add("git commit")
	h.Add("ls -la")

	if !h.CommonPrefixSearch("git", 3, true) {
		t.Fatalf("Expected CommonPrefixSearch to find a match")
	}
	if h.Current() != "git commit" {
		t.Errorf("Expected %q, got %q", "git commit", h.Current())
	}
}
