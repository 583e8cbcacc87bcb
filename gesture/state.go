package gesture

import "time"

// StateKind tracks the controller's gesture state machine.
// States are mutually exclusive; the target ID rides alongside in
// gestureState so illegal combinations are unrepresentable
type StateKind uint8

const (
	StateIdle StateKind = iota
	StateDraggingPlayer
	StateDraggingOpponent
	StateDraggingDisc
	StateDrawing
	StateDraggingBall
	StateExternalDrag // entity dragged in from outside the surface (roster bar)
)

// String returns human-readable state name
func (s StateKind) String() string {
	switch s {
	case StateDraggingPlayer:
		return "DraggingPlayer"
	case StateDraggingOpponent:
		return "DraggingOpponent"
	case StateDraggingDisc:
		return "DraggingDisc"
	case StateDrawing:
		return "Drawing"
	case StateDraggingBall:
		return "DraggingBall"
	case StateExternalDrag:
		return "ExternalDrag"
	default:
		return "Idle"
	}
}

// gestureState is the tagged union of active gesture and its target
type gestureState struct {
	kind     StateKind
	targetID string
}

// TargetKind identifies the kind of entity a hit test resolved to
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetPlayer
	TargetOpponent
	TargetDisc
	TargetBall
)

// String returns human-readable target name
func (k TargetKind) String() string {
	switch k {
	case TargetPlayer:
		return "Player"
	case TargetOpponent:
		return "Opponent"
	case TargetDisc:
		return "Disc"
	case TargetBall:
		return "Ball"
	default:
		return "None"
	}
}

// tapRecord remembers the previous tap for double-activation detection.
// A second tap qualifies only when it lands on the same target id+kind
// within both the time window and the device-space radius
type tapRecord struct {
	at   time.Time
	x, y float64
	id   string
	kind TargetKind
}
