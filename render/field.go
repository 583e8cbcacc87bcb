package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchline/board"
	"github.com/lixenwraith/touchline/geometry"
)

// DebugLogFunc receives diagnostics about skipped entities.
// Wired only in development builds; nil in production
type DebugLogFunc func(format string, args ...any)

// FieldRenderer draws a Snapshot into a Buffer.
// Pure and idempotent: every call clears and redraws the whole frame, so
// it is safe to invoke on any state change without differential tracking
type FieldRenderer struct {
	debugLog DebugLogFunc
}

// NewFieldRenderer creates a renderer
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// SetDebugLog installs the development diagnostic sink
func (r *FieldRenderer) SetDebugLog(fn DebugLogFunc) {
	r.debugLog = fn
}

// Draw renders one frame.
// Draw order is a hard contract for occlusion and mirrors hit-test
// priority in reverse: pitch markings, then freehand strokes, then
// tactics-mode ball and discs, then opponents, then players with
// optional labels on top. Entities with missing or invalid positions
// are skipped, never drawn, never a panic
func (r *FieldRenderer) Draw(buf *Buffer, snap board.Snapshot) {
	w := float64(buf.Width())
	h := float64(buf.Height())
	if w <= 0 || h <= 0 {
		return
	}

	buf.Clear()
	r.drawPitch(buf, w, h)
	r.drawStrokes(buf, snap, w, h)
	if snap.TacticsMode {
		r.drawBall(buf, snap, w, h)
		r.drawDiscs(buf, snap, w, h)
	}
	r.drawOpponents(buf, snap, w, h)
	r.drawPlayers(buf, snap, w, h)
}

func (r *FieldRenderer) drawPitch(buf *Buffer, w, h float64) {
	layout := geometry.ComputePitch(w, h)
	style := tcell.StyleDefault.Foreground(RgbMarking).Background(RgbPitch)

	drawRect(buf, layout.Boundary, style)
	drawLine(buf, layout.HalfwayLine.X1, layout.HalfwayLine.Y1, layout.HalfwayLine.X2, layout.HalfwayLine.Y2, '│', style)
	drawEllipse(buf, layout.CenterCircle, GlyphSpot, style)
	buf.Set(round(layout.CenterSpot.X), round(layout.CenterSpot.Y), GlyphSpot, style)

	for _, pa := range layout.PenaltyAreas {
		drawRect(buf, pa, style)
	}
	for _, ga := range layout.GoalAreas {
		drawRect(buf, ga, style)
	}
	for _, s := range layout.PenaltySpots {
		buf.Set(round(s.X), round(s.Y), GlyphSpot, style)
	}
	for _, arc := range layout.CornerArcs {
		drawEllipse(buf, arc, GlyphSpot, style)
	}
}

func (r *FieldRenderer) drawStrokes(buf *Buffer, snap board.Snapshot, w, h float64) {
	style := tcell.StyleDefault.Foreground(RgbDrawing).Background(RgbPitch)
	for _, path := range snap.Drawings {
		if !path.Renderable() {
			continue
		}
		prevSet := false
		var px, py float64
		for _, pt := range path {
			if !pt.Valid() {
				r.skip("stroke point", "", pt)
				prevSet = false
				continue
			}
			x, y := geometry.ToDevice(pt, w, h)
			if prevSet {
				drawLine(buf, px, py, x, y, GlyphStroke, style)
			}
			px, py = x, y
			prevSet = true
		}
	}
}

func (r *FieldRenderer) drawOpponents(buf *Buffer, snap board.Snapshot, w, h float64) {
	for _, o := range snap.Opponents {
		if !o.Pos.Valid() {
			r.skip("opponent", o.ID, o.Pos)
			continue
		}
		x, y := geometry.ToDevice(o.Pos, w, h)
		color := o.Color
		if color == tcell.ColorDefault {
			color = RgbOpponent
		}
		style := tcell.StyleDefault.Foreground(color).Background(RgbPitch).Bold(true)
		buf.Set(round(x), round(y), GlyphOpponent, style)
	}
}

func (r *FieldRenderer) drawPlayers(buf *Buffer, snap board.Snapshot, w, h float64) {
	labelStyle := tcell.StyleDefault.Foreground(RgbLabel).Background(RgbPitch)
	for _, p := range snap.Players {
		if p.Pos == nil {
			continue // still on the roster bar
		}
		if !p.Pos.Valid() {
			r.skip("player", p.ID, *p.Pos)
			continue
		}
		x, y := geometry.ToDevice(*p.Pos, w, h)
		color := p.Color
		if color == tcell.ColorDefault {
			color = RgbPlayer
		}
		if p.IsGoalie {
			color = RgbGoalie
		}
		style := tcell.StyleDefault.Foreground(color).Background(RgbPitch).Bold(true)
		cx, cy := round(x), round(y)
		buf.Set(cx, cy, GlyphPlayer, style)

		if snap.ShowNames {
			label := p.Label()
			buf.WriteString(cx-len([]rune(label))/2, cy+1, label, labelStyle)
		}
	}
}

func (r *FieldRenderer) drawDiscs(buf *Buffer, snap board.Snapshot, w, h float64) {
	for _, d := range snap.Discs {
		if !d.Pos.Valid() {
			r.skip("disc", d.ID, d.Pos)
			continue
		}
		x, y := geometry.ToDevice(d.Pos, w, h)
		glyph, color := GlyphDiscHome, RgbDiscHome
		if d.Type == board.DiscOpponent {
			glyph, color = GlyphDiscOpp, RgbDiscOpp
		}
		style := tcell.StyleDefault.Foreground(color).Background(RgbPitch).Bold(true)
		buf.Set(round(x), round(y), glyph, style)
	}
}

func (r *FieldRenderer) drawBall(buf *Buffer, snap board.Snapshot, w, h float64) {
	if snap.Ball == nil {
		return
	}
	if !snap.Ball.Valid() {
		r.skip("ball", "", *snap.Ball)
		return
	}
	x, y := geometry.ToDevice(*snap.Ball, w, h)
	style := tcell.StyleDefault.Foreground(RgbBall).Background(RgbPitch).Bold(true)
	buf.Set(round(x), round(y), GlyphBall, style)
}

func (r *FieldRenderer) skip(kind, id string, pos board.Position) {
	if r.debugLog != nil {
		r.debugLog("render: skipping %s %q with invalid position (%v, %v)", kind, id, pos.RelX, pos.RelY)
	}
}
