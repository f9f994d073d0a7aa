package rxline

// Terminal is the boundary between the edit loop and the real tty:
// raw/cooked mode switching, byte-level read/write, ANSI/Win32 cursor
// emission, and resize delivery. The edit loop only ever talks to this
// interface, which is what makes buffer.go/editor.go/search.go testable
// without a real TTY (see fake_terminal_test.go's fakeTerminal). Package
// rxline/term provides the concrete POSIX implementation.
type Terminal interface {
	// ReadKey blocks for the next logical keystroke, already decoded from
	// raw bytes into a Key (UTF-8 decode and ANSI escape parsing are the
	// implementation's job, not the core's).
	ReadKey() (Key, error)

	// Write emits raw bytes (ANSI sequences, code points) to the screen.
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	Printf(format string, args ...any)

	// Size reports the current terminal geometry in columns and rows.
	Size() (cols, rows int)

	// Beep emits the terminal bell.
	Beep()

	// ClearToEnd clears from the cursor to the end of the screen.
	ClearToEnd()
	// ClearLine clears the current line.
	ClearLine()
	// MoveCursorUp moves the cursor up n rows (n > 0).
	MoveCursorUp(n int)
	// MoveCursorToColumn moves the cursor to column col (0-based).
	MoveCursorToColumn(col int)

	// EnableRawMode switches the terminal into raw mode and returns a
	// function that restores the previous mode; it must be safe to call
	// the restore function more than once and on every return path,
	// including panics.
	EnableRawMode() (restore func() error, err error)

	// ResizePending reports and clears a pending window-resize
	// notification: a flag set by a signal handler, read at the top of
	// each dispatcher iteration.
	ResizePending() bool

	// HintColumnAdjustment is a platform-specific hint-layout column
	// correction (Windows subtracts one); POSIX implementations return 0.
	HintColumnAdjustment() int
}
