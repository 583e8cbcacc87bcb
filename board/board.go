package board

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Position is a normalized field coordinate
// Both components are fractions of the drawable surface, clamped to [0,1]
type Position struct {
	RelX float64
	RelY float64
}

// NewPosition builds a clamped position from raw relative coordinates
func NewPosition(relX, relY float64) Position {
	return Position{
		RelX: Clamp01(relX),
		RelY: Clamp01(relY),
	}
}

// Valid reports whether both components are finite and in range
// Invalid positions are skipped by rendering and hit testing, never drawn
func (p Position) Valid() bool {
	return isFinite01(p.RelX) && isFinite01(p.RelY)
}

// Clamp01 clamps v into [0,1]
// Non-finite input passes through; callers gate on Valid()
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite01(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 1
}

// Player is a rostered player
// Pos is nil while the player sits on the roster bar; removal from the
// field clears Pos but the Player itself stays on the roster
type Player struct {
	ID       string
	Name     string
	Nickname string
	Color    tcell.Color
	IsGoalie bool
	Pos      *Position
}

// Label returns the short display name used on the disk
func (p Player) Label() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

// Opponent is an opposition marker, always positioned once created
type Opponent struct {
	ID    string
	Color tcell.Color
	Pos   Position
}

// DiscType tags a tactical disc as home or opponent side
type DiscType uint8

const (
	DiscHome DiscType = iota
	DiscOpponent
)

// Toggle flips the disc side in place
func (t DiscType) Toggle() DiscType {
	if t == DiscHome {
		return DiscOpponent
	}
	return DiscHome
}

// String returns human-readable disc side name
func (t DiscType) String() string {
	if t == DiscOpponent {
		return "Opponent"
	}
	return "Home"
}

// TacticalDisc is a generic marker used in tactics mode
type TacticalDisc struct {
	ID   string
	Type DiscType
	Pos  Position
}

// DrawingPath is one continuous freehand stroke, points in draw order
// Paths with fewer than 2 points are degenerate and never rendered
type DrawingPath []Position

// Renderable reports whether the path has enough points for a stroke
func (d DrawingPath) Renderable() bool {
	return len(d) >= 2
}

// Snapshot is the immutable per-frame view handed to the renderer and
// the gesture controller. Neither mutates it; all state changes flow
// back to the host as intents
type Snapshot struct {
	Players   []Player
	Opponents []Opponent
	Discs     []TacticalDisc
	Drawings  []DrawingPath
	Ball      *Position

	ShowNames   bool
	TacticsMode bool
}
