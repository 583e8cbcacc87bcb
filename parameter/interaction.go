package parameter

import "time"

// Gesture thresholds
// These read as UX tuning rather than correctness constants; the gesture
// controller takes them through its Config so hosts can override
const (
	// DoubleTapWindow is the maximum delay between two taps on the same
	// target to count as a double activation
	DoubleTapWindow = 300 * time.Millisecond

	// DoubleTapRadius is the maximum device-space distance between two
	// taps to count as a double activation
	DoubleTapRadius = 3.0

	// DragDeadZone is the device-space movement below which a disc press
	// counts as a tap (type toggle) instead of a drag
	DragDeadZone = 1.0
)

// Hit test radii, in vertical device cells. Horizontal extent is
// stretched by the terminal cell aspect so hit areas match the drawn disks
const (
	PlayerHitRadius   = 1.6
	OpponentHitRadius = 1.6
	DiscHitRadius     = 1.3
	BallHitRadius     = 1.1
)
