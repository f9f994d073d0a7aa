package rxline

import "fmt"

// fakeTerminal is an in-memory Terminal for driving an Editor without a
// real tty, the seam terminal.go's doc comment describes.
type fakeTerminal struct {
	keys   []Key
	keyPos int

	out        []byte
	beeps      int
	cols, rows int
	resize     bool
}

func newFakeTerminal(keys []Key) *fakeTerminal {
	return &fakeTerminal{keys: keys, cols: 80, rows: 24}
}

func (f *fakeTerminal) ReadKey() (Key, error) {
	if f.keyPos >= len(f.keys) {
		return 0, ErrEOF
	}
	k := f.keys[f.keyPos]
	f.keyPos++
	return k, nil
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.out = append(f.out, p...)
	return len(p), nil
}

func (f *fakeTerminal) WriteString(s string) (int, error) { return f.Write([]byte(s)) }

func (f *fakeTerminal) Printf(format string, args ...any) {
	f.WriteString(fmt.Sprintf(format, args...))
}

func (f *fakeTerminal) Size() (int, int) { return f.cols, f.rows }

func (f *fakeTerminal) Beep() { f.beeps++ }

func (f *fakeTerminal) ClearToEnd()            {}
func (f *fakeTerminal) ClearLine()             {}
func (f *fakeTerminal) MoveCursorUp(n int)     {}
func (f *fakeTerminal) MoveCursorToColumn(int) {}

func (f *fakeTerminal) EnableRawMode() (func() error, error) {
	return func() error { return nil }, nil
}

func (f *fakeTerminal) ResizePending() bool {
	r := f.resize
	f.resize = false
	return r
}

func (f *fakeTerminal) HintColumnAdjustment() int { return 0 }

// stringKeys turns a plain string into a slice of plain-rune Keys, for
// tests that just want to type text and then a terminator.
func stringKeys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Key(r))
	}
	return keys
}
