package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchline/board"
)

func newTestBuffer(w, h int) *Buffer {
	return NewBuffer(w, h, Cell{Rune: ' ', Style: tcell.StyleDefault.Background(RgbPitch)})
}

// countGlyph tallies occurrences of a rune in the buffer
func countGlyph(b *Buffer, r rune) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y).Rune == r {
				n++
			}
		}
	}
	return n
}

func TestEmptySnapshotRendersMarkingsOnly(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	r.Draw(buf, board.Snapshot{})

	// Boundary corners are part of the pitch markings
	if buf.Get(0, 0).Rune != '┌' || buf.Get(119, 39).Rune != '┘' {
		t.Errorf("boundary corners missing: %q %q", buf.Get(0, 0).Rune, buf.Get(119, 39).Rune)
	}
	// Halfway line runs down the middle
	if buf.Get(60, 20).Rune != '│' && buf.Get(60, 20).Rune != GlyphSpot {
		t.Errorf("halfway line missing at center column: %q", buf.Get(60, 20).Rune)
	}
	// No entity glyphs anywhere
	for _, g := range []rune{GlyphPlayer, GlyphOpponent, GlyphDiscHome, GlyphDiscOpp, GlyphBall, GlyphStroke} {
		if n := countGlyph(buf, g); n > 0 {
			t.Errorf("empty snapshot produced %d %q glyphs", n, g)
		}
	}
}

func TestSinglePointPathProducesNoStroke(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	r.Draw(buf, board.Snapshot{
		Drawings: []board.DrawingPath{{{RelX: 0.5, RelY: 0.5}}},
	})
	if n := countGlyph(buf, GlyphStroke); n > 0 {
		t.Errorf("degenerate path produced %d stroke cells, want 0", n)
	}
}

func TestTwoPointPathStrokesContinuously(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	r.Draw(buf, board.Snapshot{
		Drawings: []board.DrawingPath{{
			{RelX: 0.25, RelY: 0.3},
			{RelX: 0.75, RelY: 0.3},
		}},
	})
	y := int(math.Round(0.3 * 40))
	for x := 30; x <= 90; x++ {
		if buf.Get(x, y).Rune != GlyphStroke {
			t.Fatalf("stroke gap at (%d, %d): %q", x, y, buf.Get(x, y).Rune)
		}
	}
}

func TestMultiSegmentPathCoversAllPointsInOrder(t *testing.T) {
	buf := newTestBuffer(100, 50)
	r := NewFieldRenderer()
	path := board.DrawingPath{
		{RelX: 0.1, RelY: 0.1},
		{RelX: 0.5, RelY: 0.1},
		{RelX: 0.5, RelY: 0.5},
	}
	r.Draw(buf, board.Snapshot{Drawings: []board.DrawingPath{path}})
	for _, pt := range path {
		x := int(math.Round(pt.RelX * 100))
		y := int(math.Round(pt.RelY * 50))
		if buf.Get(x, y).Rune != GlyphStroke {
			t.Errorf("path point (%v, %v) not stroked at (%d, %d)", pt.RelX, pt.RelY, x, y)
		}
	}
}

func TestNaNPlayerSkippedWithoutPanic(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	var logged bool
	r.SetDebugLog(func(format string, args ...any) { logged = true })

	r.Draw(buf, board.Snapshot{
		Players: []board.Player{
			{ID: "broken", Pos: &board.Position{RelX: math.NaN(), RelY: 0.5}},
		},
	})
	if n := countGlyph(buf, GlyphPlayer); n > 0 {
		t.Errorf("invalid player produced %d glyphs, want 0", n)
	}
	if !logged {
		t.Error("invalid player should hit the debug log")
	}
}

func TestPlayerDrawsOverOpponent(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	p := board.Position{RelX: 0.5, RelY: 0.5}
	r.Draw(buf, board.Snapshot{
		Players:   []board.Player{{ID: "P", Pos: &p}},
		Opponents: []board.Opponent{{ID: "O", Pos: p}},
	})
	x := int(math.Round(0.5 * 120))
	y := int(math.Round(0.5 * 40))
	if got := buf.Get(x, y).Rune; got != GlyphPlayer {
		t.Errorf("cell at shared position = %q, want player on top", got)
	}
}

func TestBenchedPlayerNotDrawn(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	r.Draw(buf, board.Snapshot{
		Players: []board.Player{{ID: "bench", Name: "Sam"}},
	})
	if n := countGlyph(buf, GlyphPlayer); n > 0 {
		t.Errorf("benched player drawn %d times, want 0", n)
	}
}

func TestShowNamesRendersLabel(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	p := board.Position{RelX: 0.5, RelY: 0.5}
	r.Draw(buf, board.Snapshot{
		ShowNames: true,
		Players:   []board.Player{{ID: "P", Name: "Ana", Nickname: "", Pos: &p}},
	})
	cx := int(math.Round(0.5 * 120))
	cy := int(math.Round(0.5 * 40))
	got := string([]rune{
		buf.Get(cx-1, cy+1).Rune,
		buf.Get(cx, cy+1).Rune,
		buf.Get(cx+1, cy+1).Rune,
	})
	if got != "Ana" {
		t.Errorf("label row = %q, want Ana centered under the disk", got)
	}

	// Names off: the label row stays clean
	buf2 := newTestBuffer(120, 40)
	r.Draw(buf2, board.Snapshot{
		Players: []board.Player{{ID: "P", Name: "Ana", Pos: &p}},
	})
	if buf2.Get(cx, cy+1).Rune == 'n' {
		t.Error("label rendered with ShowNames off")
	}
}

func TestTacticsModeDrawsDiscsAndBall(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	ball := board.Position{RelX: 0.5, RelY: 0.25}
	r.Draw(buf, board.Snapshot{
		TacticsMode: true,
		Discs: []board.TacticalDisc{
			{ID: "h", Type: board.DiscHome, Pos: board.Position{RelX: 0.25, RelY: 0.5}},
			{ID: "o", Type: board.DiscOpponent, Pos: board.Position{RelX: 0.75, RelY: 0.5}},
		},
		Ball: &ball,
	})
	if countGlyph(buf, GlyphDiscHome) != 1 || countGlyph(buf, GlyphDiscOpp) != 1 {
		t.Error("disc glyphs missing in tactics mode")
	}
	if countGlyph(buf, GlyphBall) != 1 {
		t.Error("ball glyph missing in tactics mode")
	}

	// Outside tactics mode the same snapshot hides them
	buf2 := newTestBuffer(120, 40)
	r.Draw(buf2, board.Snapshot{
		Discs: []board.TacticalDisc{{ID: "h", Pos: board.Position{RelX: 0.25, RelY: 0.5}}},
		Ball:  &ball,
	})
	if countGlyph(buf2, GlyphDiscHome) != 0 || countGlyph(buf2, GlyphBall) != 0 {
		t.Error("tactics entities drawn outside tactics mode")
	}
}

func TestZeroSizeBufferDoesNotPanic(t *testing.T) {
	buf := newTestBuffer(0, 0)
	r := NewFieldRenderer()
	p := board.Position{RelX: 0.5, RelY: 0.5}
	r.Draw(buf, board.Snapshot{Players: []board.Player{{ID: "P", Pos: &p}}})
}

func TestRedrawIsIdempotent(t *testing.T) {
	buf := newTestBuffer(120, 40)
	r := NewFieldRenderer()
	snap := board.Snapshot{
		Players:   []board.Player{{ID: "P", Pos: &board.Position{RelX: 0.3, RelY: 0.4}}},
		Opponents: []board.Opponent{{ID: "O", Pos: board.Position{RelX: 0.7, RelY: 0.6}}},
	}
	r.Draw(buf, snap)
	first := make([]Cell, 0, 120*40)
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			first = append(first, buf.Get(x, y))
		}
	}
	r.Draw(buf, snap)
	i := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if buf.Get(x, y) != first[i] {
				t.Fatalf("cell (%d, %d) changed between identical redraws", x, y)
			}
			i++
		}
	}
}
