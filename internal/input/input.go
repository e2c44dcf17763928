// Package input defines the joypad surface the core polls each tick.
package input

// Button identifies one joypad button. The ids and their order follow the
// RetroPad layout so hosts can pass device reports through unchanged.
type Button int

const (
	B Button = iota
	Y
	Select
	Start
	Up
	Down
	Left
	Right
	A
	X
	L
	R
	L2
	R2
	L3
	R3

	ButtonCount = 16
)

func (b Button) String() string {
	switch b {
	case B:
		return "B"
	case Y:
		return "Y"
	case Select:
		return "Select"
	case Start:
		return "Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case A:
		return "A"
	case X:
		return "X"
	case L:
		return "L"
	case R:
		return "R"
	case L2:
		return "L2"
	case R2:
		return "R2"
	case L3:
		return "L3"
	case R3:
		return "R3"
	default:
		return "Unknown"
	}
}

// StateFunc reports whether a button is held on the given port this raw
// frame. Hosts install one on the core; a nil StateFunc reads as nothing
// held.
type StateFunc func(port int, btn Button) bool

// AnyHeld reports whether any of the 16 buttons is held on port 0.
func AnyHeld(state StateFunc) bool {
	if state == nil {
		return false
	}
	for b := Button(0); b < ButtonCount; b++ {
		if state(0, b) {
			return true
		}
	}
	return false
}
