package gesture

import (
	"github.com/lixenwraith/touchline/geometry"
)

// hit is a resolved hit test result
type hit struct {
	kind TargetKind
	id   string
}

// ellipseContains tests device point (x, y) against an elliptical hit
// area centered at (cx, cy) with vertical radius r and horizontal radius
// r*aspect. Matches the shape the disks render as on a cell grid
func ellipseContains(x, y, cx, cy, r, aspect float64) bool {
	if r <= 0 {
		return false
	}
	rx := r * aspect
	dx := (x - cx) / rx
	dy := (y - cy) / r
	return dx*dx+dy*dy <= 1
}

// hitTest resolves the topmost entity under a device point.
// Priority mirrors reverse draw order: players win over opponents, which
// win over discs and the ball; within a kind, later entries are drawn on
// top and therefore checked first. Entities without a valid position are
// skipped entirely
func (c *Controller) hitTest(x, y, surfaceW, surfaceH float64) hit {
	snap := c.snapshot

	for i := len(snap.Players) - 1; i >= 0; i-- {
		p := snap.Players[i]
		if p.Pos == nil || !p.Pos.Valid() {
			continue
		}
		cx, cy := geometry.ToDevice(*p.Pos, surfaceW, surfaceH)
		if ellipseContains(x, y, cx, cy, c.cfg.PlayerHitRadius, c.cfg.HitAspect) {
			return hit{kind: TargetPlayer, id: p.ID}
		}
	}

	for i := len(snap.Opponents) - 1; i >= 0; i-- {
		o := snap.Opponents[i]
		if !o.Pos.Valid() {
			continue
		}
		cx, cy := geometry.ToDevice(o.Pos, surfaceW, surfaceH)
		if ellipseContains(x, y, cx, cy, c.cfg.OpponentHitRadius, c.cfg.HitAspect) {
			return hit{kind: TargetOpponent, id: o.ID}
		}
	}

	if snap.TacticsMode {
		for i := len(snap.Discs) - 1; i >= 0; i-- {
			d := snap.Discs[i]
			if !d.Pos.Valid() {
				continue
			}
			cx, cy := geometry.ToDevice(d.Pos, surfaceW, surfaceH)
			if ellipseContains(x, y, cx, cy, c.cfg.DiscHitRadius, c.cfg.HitAspect) {
				return hit{kind: TargetDisc, id: d.ID}
			}
		}
		if snap.Ball != nil && snap.Ball.Valid() {
			cx, cy := geometry.ToDevice(*snap.Ball, surfaceW, surfaceH)
			if ellipseContains(x, y, cx, cy, c.cfg.BallHitRadius, c.cfg.HitAspect) {
				return hit{kind: TargetBall}
			}
		}
	}

	return hit{kind: TargetNone}
}
