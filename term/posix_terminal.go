// Package term provides the concrete rxline.Terminal backend for POSIX
// ttys: raw-mode enable/restore, window-size queries, and a full
// rxline.Key decoder covering UTF-8 code points, Meta sequences, and
// Ctrl/Meta-modified arrows.
package term

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/gordano-rx/rxline"
)

// Posix is an rxline.Terminal backed by os.Stdin/os.Stdout, raw mode via
// golang.org/x/term, and SIGWINCH for resize notification (the same
// signal.Notify pattern the pack's screen.go uses for its own raw-mode
// terminal).
type Posix struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader

	state *term.State

	resized  chan os.Signal
	pending  bool
}

// New returns a Posix terminal bound to stdin/stdout.
func New() *Posix {
	return &Posix{
		in:      os.Stdin,
		out:     os.Stdout,
		reader:  bufio.NewReader(os.Stdin),
		resized: make(chan os.Signal, 1),
	}
}

func (p *Posix) EnableRawMode() (func() error, error) {
	if !term.IsTerminal(int(p.in.Fd())) {
		return nil, rxline.ErrRawModeUnavailable
	}
	state, err := term.MakeRaw(int(p.in.Fd()))
	if err != nil {
		return nil, rxline.ErrRawModeUnavailable
	}
	p.state = state

	signal.Notify(p.resized, syscall.SIGWINCH)

	restored := false
	restore := func() error {
		if restored {
			return nil
		}
		restored = true
		signal.Stop(p.resized)
		return term.Restore(int(p.in.Fd()), p.state)
	}
	return restore, nil
}

func (p *Posix) ResizePending() bool {
	select {
	case <-p.resized:
		p.pending = true
	default:
	}
	if p.pending {
		p.pending = false
		return true
	}
	return false
}

func (p *Posix) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(int(p.out.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

func (p *Posix) Write(b []byte) (int, error)      { return p.out.Write(b) }
func (p *Posix) WriteString(s string) (int, error) { return p.out.WriteString(s) }
func (p *Posix) Printf(format string, args ...any) { fmt.Fprintf(p.out, format, args...) }

func (p *Posix) Beep() { p.out.WriteString("\a") }

func (p *Posix) ClearToEnd() { p.out.WriteString("\x1b[0K\x1b[0J") }
func (p *Posix) ClearLine()  { p.out.WriteString("\x1b[2K") }

func (p *Posix) MoveCursorUp(n int) {
	if n > 0 {
		fmt.Fprintf(p.out, "\x1b[%dA", n)
	}
}

func (p *Posix) MoveCursorToColumn(col int) {
	fmt.Fprintf(p.out, "\x1b[%dG", col+1)
}

// HintColumnAdjustment is 0 on POSIX; a Windows console needs a one-
// column correction here, but no Windows backend ships in this module.
func (p *Posix) HintColumnAdjustment() int { return 0 }

// ReadKey decodes the next logical keystroke off stdin: a raw byte, a
// UTF-8 multi-byte rune, or an ESC-prefixed ANSI/Meta sequence, covering
// Ctrl/Meta modified arrows (CSI 1;3 / 1;5 parameter forms) and decoding
// runes above ASCII instead of returning single bytes.
func (p *Posix) ReadKey() (rxline.Key, error) {
	b0, err := p.reader.ReadByte()
	if err != nil {
		return 0, err
	}

	if b0 != 0x1b {
		return p.decodeByte(b0)
	}

	b1, err := p.reader.ReadByte()
	if err != nil {
		return rxline.Key(0x1b), nil
	}
	if b1 != '[' && b1 != 'O' {
		// ESC followed directly by a printable byte: a Meta-modified key.
		if r, ok := p.decodePlainRune(b1); ok {
			return rxline.ModMeta + r, nil
		}
		return rxline.ModMeta + rxline.Key(b1), nil
	}

	b2, err := p.reader.ReadByte()
	if err != nil {
		return rxline.Key(0x1b), nil
	}

	if b1 == 'O' {
		switch b2 {
		case 'H':
			return rxline.KeyHome, nil
		case 'F':
			return rxline.KeyEnd, nil
		}
		return rxline.Key(0x1b), nil
	}

	// b1 == '['
	if b2 >= '0' && b2 <= '9' {
		num := int(b2 - '0')
		b3, err := p.reader.ReadByte()
		if err != nil {
			return rxline.Key(0x1b), nil
		}
		for b3 >= '0' && b3 <= '9' {
			num = num*10 + int(b3-'0')
			b3, err = p.reader.ReadByte()
			if err != nil {
				return rxline.Key(0x1b), nil
			}
		}
		if b3 == ';' {
			mod, err := p.reader.ReadByte()
			if err != nil {
				return rxline.Key(0x1b), nil
			}
			final, err := p.reader.ReadByte()
			if err != nil {
				return rxline.Key(0x1b), nil
			}
			return decodeModifiedArrow(final, mod), nil
		}
		if b3 == '~' {
			switch num {
			case 1, 7:
				return rxline.KeyHome, nil
			case 3:
				return rxline.KeyDelete, nil
			case 4, 8:
				return rxline.KeyEnd, nil
			case 5:
				return rxline.KeyPageUp, nil
			case 6:
				return rxline.KeyPageDown, nil
			}
		}
		return rxline.Key(0x1b), nil
	}

	switch b2 {
	case 'A':
		return rxline.KeyUp, nil
	case 'B':
		return rxline.KeyDown, nil
	case 'C':
		return rxline.KeyRight, nil
	case 'D':
		return rxline.KeyLeft, nil
	case 'H':
		return rxline.KeyHome, nil
	case 'F':
		return rxline.KeyEnd, nil
	}
	return rxline.Key(0x1b), nil
}

// decodeModifiedArrow maps a CSI 1;<mod><final> sequence to a Ctrl/Meta
// tagged arrow Key. mod is the ANSI modifier parameter (2=Shift, 3=Alt,
// 5=Ctrl, ...); only the Ctrl and Alt bits matter to the dispatcher.
func decodeModifiedArrow(final, mod byte) rxline.Key {
	var base rxline.Key
	switch final {
	case 'A':
		base = rxline.KeyUp
	case 'B':
		base = rxline.KeyDown
	case 'C':
		base = rxline.KeyRight
	case 'D':
		base = rxline.KeyLeft
	default:
		return rxline.Key(0x1b)
	}
	m := mod - '1'
	key := base
	if m&4 != 0 { // ctrl bit
		key += rxline.ModCtrl
	}
	if m&2 != 0 { // alt bit
		key += rxline.ModMeta
	}
	return key
}

func (p *Posix) decodeByte(b0 byte) (rxline.Key, error) {
	if b0 < 0x80 {
		return rxline.Key(b0), nil
	}
	return p.decodeMultiByteRune(b0)
}

func (p *Posix) decodePlainRune(b0 byte) (rxline.Key, bool) {
	if b0 < 0x80 {
		return rxline.Key(b0), true
	}
	k, err := p.decodeMultiByteRune(b0)
	return k, err == nil
}

// utf8SeqLen returns the length of the UTF-8 sequence led by b0, from the
// count of leading 1-bits in the byte itself (utf8.RuneLen instead reports
// the encoded length of the code point numerically equal to b0, which is
// wrong for every lead byte — it returns 2 for 0x80-0xFF regardless of
// whether the sequence is actually 2, 3, or 4 bytes long).
func utf8SeqLen(b0 byte) int {
	switch {
	case b0&0x80 == 0x00:
		return 1
	case b0&0xE0 == 0xC0:
		return 2
	case b0&0xF0 == 0xE0:
		return 3
	case b0&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

func (p *Posix) decodeMultiByteRune(b0 byte) (rxline.Key, error) {
	n := utf8SeqLen(b0)
	if n <= 1 {
		return rxline.Key(b0), nil
	}
	buf := make([]byte, n)
	buf[0] = b0
	for i := 1; i < n; i++ {
		b, err := p.reader.ReadByte()
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	r, _ := utf8.DecodeRune(buf)
	return rxline.Key(r), nil
}
