package rxline

import "errors"

// Error kinds returned from Editor.Input.
var (
	// ErrEOF is returned on Ctrl-D with an empty buffer, or when the
	// underlying Terminal reports EOF.
	ErrEOF = errors.New("rxline: eof")
	// ErrAbort is returned on Ctrl-C.
	ErrAbort = errors.New("rxline: aborted")
	// ErrRawModeUnavailable is returned when the terminal cannot be put
	// into raw mode (e.g. stdin is not a TTY).
	ErrRawModeUnavailable = errors.New("rxline: raw mode unavailable")
)
