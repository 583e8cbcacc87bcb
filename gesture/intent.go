package gesture

import "github.com/lixenwraith/touchline/board"

// IntentType discriminates the semantic actions emitted to the host.
// The controller never mutates entity state itself; each intent is a
// declarative change request the host commits
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Player intents
	IntentPlayerMove       // drag sample, Pos carries new position
	IntentPlayerMoveEnd    // drag finished
	IntentPlayerRemove     // double activation, clear field position
	IntentPlayerDrop       // external drag released inside the surface
	IntentPlayerDragCancel // external drag released outside the surface

	// Opponent intents
	IntentOpponentMove
	IntentOpponentMoveEnd
	IntentOpponentRemove

	// Tactical disc intents
	IntentDiscMove
	IntentDiscRemove
	IntentDiscToggleType // tap without movement flips home/opponent

	// Ball intent
	IntentBallMove

	// Freehand drawing intents
	IntentDrawingStart
	IntentDrawingAddPoint
	IntentDrawingEnd
)

// String returns human-readable intent name
func (t IntentType) String() string {
	switch t {
	case IntentPlayerMove:
		return "PlayerMove"
	case IntentPlayerMoveEnd:
		return "PlayerMoveEnd"
	case IntentPlayerRemove:
		return "PlayerRemove"
	case IntentPlayerDrop:
		return "PlayerDrop"
	case IntentPlayerDragCancel:
		return "PlayerDragCancel"
	case IntentOpponentMove:
		return "OpponentMove"
	case IntentOpponentMoveEnd:
		return "OpponentMoveEnd"
	case IntentOpponentRemove:
		return "OpponentRemove"
	case IntentDiscMove:
		return "DiscMove"
	case IntentDiscRemove:
		return "DiscRemove"
	case IntentDiscToggleType:
		return "DiscToggleType"
	case IntentBallMove:
		return "BallMove"
	case IntentDrawingStart:
		return "DrawingStart"
	case IntentDrawingAddPoint:
		return "DrawingAddPoint"
	case IntentDrawingEnd:
		return "DrawingEnd"
	default:
		return "None"
	}
}

// Intent is one semantic action. ID is set for entity-addressed intents,
// Pos for intents that carry a normalized position
type Intent struct {
	Type IntentType
	ID   string
	Pos  board.Position
}
