package geometry

import (
	"math"

	"github.com/lixenwraith/touchline/board"
)

// ToRelative converts surface-local device coordinates into a normalized
// position. Returns false when the surface has no usable size yet (layout
// not done, mid-resize) or the input is not finite; callers treat that as
// "no position" and skip the operation rather than dividing by zero
func ToRelative(deviceX, deviceY, surfaceW, surfaceH float64) (board.Position, bool) {
	if surfaceW <= 0 || surfaceH <= 0 {
		return board.Position{}, false
	}
	if !finite(deviceX) || !finite(deviceY) || !finite(surfaceW) || !finite(surfaceH) {
		return board.Position{}, false
	}
	return board.NewPosition(deviceX/surfaceW, deviceY/surfaceH), true
}

// ToDevice converts a normalized position back to surface-local device
// coordinates. Dimensions are read fresh by the caller on every use; they
// are never cached across frames
func ToDevice(pos board.Position, surfaceW, surfaceH float64) (deviceX, deviceY float64) {
	return pos.RelX * surfaceW, pos.RelY * surfaceH
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
