package nav

import "github.com/retrofab/emupages/internal/input"

// Auto-repeat cadence at 60 fps: ~400ms before repeating, then ~67ms apart.
const (
	RepeatDelay = 24
	RepeatRate  = 4
)

// RepeatTracker debounces held buttons into single activations plus
// fixed-cadence auto-repeat. The zero value is ready to use.
type RepeatTracker struct {
	held [input.ButtonCount]int
}

// Advance consumes one raw frame of held state and reports which buttons
// count as activated this frame: the first held frame, then every
// RepeatRate frames once the counter is past RepeatDelay (held frames 1,
// 25, 29, 33, ...). A released button resets to zero immediately.
func (t *RepeatTracker) Advance(held [input.ButtonCount]bool) [input.ButtonCount]bool {
	var act [input.ButtonCount]bool
	for b := range held {
		if !held[b] {
			t.held[b] = 0
			continue
		}
		t.held[b]++
		switch {
		case t.held[b] == 1:
			act[b] = true
		case t.held[b] > RepeatDelay && (t.held[b]-RepeatDelay-1)%RepeatRate == 0:
			act[b] = true
		}
	}
	return act
}

// Clear zeroes every counter, e.g. after a boot-skip press so the press
// does not repeat into the next mode.
func (t *RepeatTracker) Clear() {
	t.held = [input.ButtonCount]int{}
}
