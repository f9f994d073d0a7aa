package rxline

// killAction tags the most recent editor action so the kill-ring can tell
// a yank from a yank-pop and coalesce consecutive kills in the same
// direction into one entry.
type killAction int

const (
	killActionOther killAction = iota
	killActionKill
	killActionYank
)

// killRingCapacity bounds the ring; the oldest entry drops once full.
const killRingCapacity = 10

// killRing is the bounded ordered collection of recently killed spans,
// wired to the kill/yank/yank-pop key bindings in editor.go's dispatcher.
type killRing struct {
	ring []string // ring[0] is the most recently killed span
	index int

	lastAction   killAction
	lastYankSize int
}

// kill pushes span onto the ring. A kill immediately following another
// kill coalesces into the newest entry instead of pushing a new one:
// toRight appends (Ctrl-K Ctrl-K accumulates left-to-right), while a
// left-direction kill (Meta-Backspace, Ctrl-W, Ctrl-U) prepends, so that
// repeated kills in the same direction read back in the original order.
func (k *killRing) kill(span string, toRight bool) {
	if span == "" {
		return
	}
	if k.lastAction == killActionKill && len(k.ring) > 0 {
		if toRight {
			k.ring[0] = k.ring[0] + span
		} else {
			k.ring[0] = span + k.ring[0]
		}
		return
	}
	k.ring = append([]string{span}, k.ring...)
	if len(k.ring) > killRingCapacity {
		k.ring = k.ring[:killRingCapacity]
	}
	k.index = 0
}

// yank returns the newest entry without removing it, or "", false if the
// ring is empty.
func (k *killRing) yank() (string, bool) {
	if len(k.ring) == 0 {
		return "", false
	}
	k.index = 0
	return k.ring[0], true
}

// yankPop rotates to the next older entry and returns it, wrapping back to
// the newest once the oldest has been reached.
func (k *killRing) yankPop() (string, bool) {
	if len(k.ring) == 0 {
		return "", false
	}
	k.index = (k.index + 1) % len(k.ring)
	return k.ring[k.index], true
}
