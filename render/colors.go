package render

import "github.com/gdamore/tcell/v2"

// Field palette
var (
	RgbPitch     = tcell.NewRGBColor(20, 90, 40)    // Pitch green
	RgbPitchDark = tcell.NewRGBColor(16, 75, 33)    // Mowing stripe
	RgbMarking   = tcell.NewRGBColor(235, 235, 235) // Chalk white

	RgbPlayer   = tcell.NewRGBColor(120, 80, 220)  // Home violet
	RgbGoalie   = tcell.NewRGBColor(255, 160, 40)  // Goalie orange
	RgbOpponent = tcell.NewRGBColor(220, 60, 60)   // Opposition red
	RgbDiscHome = tcell.NewRGBColor(120, 80, 220)  // Tactics home disc
	RgbDiscOpp  = tcell.NewRGBColor(220, 60, 60)   // Tactics opposition disc
	RgbBall     = tcell.NewRGBColor(250, 250, 250) // Ball white

	RgbDrawing = tcell.NewRGBColor(255, 220, 90)   // Freehand stroke
	RgbLabel   = tcell.NewRGBColor(230, 230, 230)  // Name label
)

// Entity glyphs, all single cell wide
const (
	GlyphPlayer   = '●'
	GlyphOpponent = '○'
	GlyphDiscHome = '◆'
	GlyphDiscOpp  = '◇'
	GlyphBall     = '◉'
	GlyphStroke   = '•'
	GlyphSpot     = '·'
)
