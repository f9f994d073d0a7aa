package rxline

/*** key tokens ***/

// Key is a single logical keystroke: a rune (or a synthetic token value for
// keys that have no Unicode representation) combined with modifier bits.
type Key int32

// Modifier bits, combined with a rune or synthetic token via addition.
const (
	ModCtrl Key = 1 << 28
	ModMeta Key = 1 << 29
)

// Synthetic tokens for keys with no Unicode code point.
const (
	KeyLeft Key = 0x110000 + iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyPageUp
	KeyPageDown
)

// ASCII control codes used directly as Key values (no ModCtrl bit):
// Ctrl+letter folds down to the bare 1..26 range rather than being
// tagged with a modifier bit.
const (
	keyBackspace = 127
	keyTab       = 9
	keyEnter     = 13
	keyLinefeed  = 10
	keyEscape    = 27
)

// CtrlKey returns the control-code equivalent of an ASCII letter, e.g.
// CtrlKey('A') == 1.
func CtrlKey(c rune) Key {
	return Key(rune(c) & 0x1f)
}

// cleanupCtrl collapses a rune tagged with ModCtrl into the bare ASCII
// control code: a terminal backend may report "ctrl held, rune 'a'" or
// the bare control byte 0x01 interchangeably, and the dispatcher only
// wants to handle one shape.
func cleanupCtrl(k Key) Key {
	if k&ModCtrl != 0 {
		r := k &^ (ModCtrl | ModMeta)
		if r >= 'a' && r <= 'z' {
			return (k & ModMeta) | Key(rune(r)&0x1f)
		}
		if r >= 'A' && r <= 'Z' {
			return (k & ModMeta) | Key(rune(r)&0x1f)
		}
	}
	return k
}

// Rune reports whether k carries a plain Unicode code point (no modifiers,
// not a synthetic token) and returns it.
func (k Key) Rune() (rune, bool) {
	if k&(ModCtrl|ModMeta) != 0 {
		return 0, false
	}
	if k < 0 || k >= 0x110000 {
		return 0, false
	}
	return rune(k), true
}

// isControlChar reports whether k, interpreted as a bare code point, is an
// ASCII control character (the DEL code point is already covered by
// keyBackspace).
func isControlChar(k Key) bool {
	return k < 32 || k == 127
}

/*** word-break predicate ***/

// defaultWordBreakCharacters is the default break-chars set: ASCII
// whitespace and punctuation, with underscore excluded so identifiers like
// some_name are a single word.
const defaultWordBreakCharacters = " \t\n`~!@#$%^&*()-=+[{]}\\|;:'\",<.>/?"

func isWordBreakRune(r rune, breakChars string) bool {
	if r >= 128 {
		return false
	}
	for _, b := range breakChars {
		if b == r {
			return true
		}
	}
	return false
}
