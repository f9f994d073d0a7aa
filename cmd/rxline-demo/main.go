// Command rxline-demo exercises the rxline package end to end: a prompt
// with history persistence, word completion, inline hints, and bracket
// highlighting, wired to a real POSIX tty.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gordano-rx/rxline"
	"github.com/gordano-rx/rxline/term"
)

var sampleWords = []string{
	"help", "history", "highlight", "hint",
	"clear", "color", "complete", "context",
	"quit", "exit",
}

func completer(prefix string, context *int) []string {
	word := lastWord(prefix)
	var out []string
	for _, w := range sampleWords {
		if strings.HasPrefix(w, word) {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

func hinter(prefix string, context *int, color *rxline.Color) []string {
	word := lastWord(prefix)
	if word == "" {
		return nil
	}
	var out []string
	for _, w := range sampleWords {
		if strings.HasPrefix(w, word) && w != word {
			out = append(out, w)
		}
	}
	return out
}

func highlighter(line string, colors []rxline.Color) {
	runes := []rune(line)
	inString := false
	for i, r := range runes {
		switch {
		case r == '"':
			colors[i] = rxline.ColorGreen
			inString = !inString
		case inString:
			colors[i] = rxline.ColorGreen
		case r >= '0' && r <= '9':
			colors[i] = rxline.ColorBrightCyan
		}
	}
}

func lastWord(s string) string {
	i := strings.LastIndexAny(s, " \t")
	return s[i+1:]
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rxline_history"
	}
	return filepath.Join(home, ".rxline_history")
}

func main() {
	t := term.New()
	ed := rxline.NewEditor(t)
	ed.SetCompletionCallback(completer)
	ed.SetHintCallback(hinter)
	ed.SetHighlighterCallback(highlighter)
	ed.SetDoubleTabCompletion(true)
	ed.SetBeepOnAmbiguousCompletion(true)

	path := historyPath()
	if err := ed.HistoryLoad(path); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "rxline-demo: loading history: %v\n", err)
	}

	for {
		line, err := ed.Input("rxline> ")
		if err != nil {
			if errors.Is(err, rxline.ErrEOF) || errors.Is(err, rxline.ErrAbort) {
				break
			}
			fmt.Fprintf(os.Stderr, "rxline-demo: %v\n", err)
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		ed.Print(fmt.Sprintf("-> %s\r\n", line))
	}

	if err := ed.HistorySave(path); err != nil {
		fmt.Fprintf(os.Stderr, "rxline-demo: saving history: %v\n", err)
	}
}
