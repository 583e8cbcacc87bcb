package gesture

import (
	"time"

	"github.com/lixenwraith/touchline/geometry"
	"github.com/lixenwraith/touchline/parameter"
)

// Config carries the interaction tuning thresholds
type Config struct {
	DoubleTapWindow time.Duration
	DoubleTapRadius float64
	DragDeadZone    float64

	PlayerHitRadius   float64
	OpponentHitRadius float64
	DiscHitRadius     float64
	BallHitRadius     float64

	// HitAspect stretches the horizontal hit extent to match the cell
	// aspect the entities are drawn with
	HitAspect float64
}

// DefaultConfig returns the tuned defaults from the parameter package
func DefaultConfig() Config {
	return Config{
		DoubleTapWindow:   parameter.DoubleTapWindow,
		DoubleTapRadius:   parameter.DoubleTapRadius,
		DragDeadZone:      parameter.DragDeadZone,
		PlayerHitRadius:   parameter.PlayerHitRadius,
		OpponentHitRadius: parameter.OpponentHitRadius,
		DiscHitRadius:     parameter.DiscHitRadius,
		BallHitRadius:     parameter.BallHitRadius,
		HitAspect:         geometry.CellAspect,
	}
}
