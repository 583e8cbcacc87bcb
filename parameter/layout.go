package parameter

import "time"

// Screen layout margins around the field surface
const (
	// TopMargin holds the clock overlay and status line
	TopMargin = 2

	// BottomMargin holds the roster bar and key help line
	BottomMargin = 3

	// SideMargin keeps markings off the terminal edge
	SideMargin = 2
)

// Game clock defaults
const (
	// PeriodLength is the default half length
	PeriodLength = 45 * time.Minute

	// ClockTickResolution is how often the overlay is refreshed while running
	ClockTickResolution = 500 * time.Millisecond
)

// StatusMessageTimeout is how long transient status messages stay visible
const StatusMessageTimeout = 2 * time.Second
