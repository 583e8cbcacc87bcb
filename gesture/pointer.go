package gesture

import "time"

// PointerAction represents the phase of a pointer event
type PointerAction uint8

const (
	PointerActionNone PointerAction = iota
	PointerActionDown
	PointerActionMove
	PointerActionUp
	PointerActionCancel
)

// String returns human-readable action name
func (a PointerAction) String() string {
	switch a {
	case PointerActionDown:
		return "Down"
	case PointerActionMove:
		return "Move"
	case PointerActionUp:
		return "Up"
	case PointerActionCancel:
		return "Cancel"
	default:
		return "None"
	}
}

// PointerEvent is one low-level input sample in surface-local device
// coordinates. ID distinguishes pointers: 0 is the mouse, touch backends
// assign one ID per finger. Only the first pointer to go down is tracked;
// events for any other ID are dropped while a gesture is active
type PointerEvent struct {
	ID     int
	Action PointerAction
	X, Y   float64
	When   time.Time
}
