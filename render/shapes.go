package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchline/geometry"
)

// drawLine rasterizes a device-space segment with a fixed-step DDA.
// Endpoints are rounded to cells; non-finite endpoints are dropped
func drawLine(b *Buffer, x1, y1, x2, y2 float64, r rune, style tcell.Style) {
	if !finite(x1) || !finite(y1) || !finite(x2) || !finite(y2) {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.Set(round(x1+dx*t), round(y1+dy*t), r, style)
	}
}

// drawRect draws the rectangle outline with box-drawing runes
func drawRect(b *Buffer, rc geometry.Rect, style tcell.Style) {
	x1, y1 := round(rc.X), round(rc.Y)
	x2, y2 := round(rc.X+rc.W)-1, round(rc.Y+rc.H)-1
	if x2 < x1 || y2 < y1 {
		return
	}
	for x := x1; x <= x2; x++ {
		b.Set(x, y1, '─', style)
		b.Set(x, y2, '─', style)
	}
	for y := y1; y <= y2; y++ {
		b.Set(x1, y, '│', style)
		b.Set(x2, y, '│', style)
	}
	b.Set(x1, y1, '┌', style)
	b.Set(x2, y1, '┐', style)
	b.Set(x1, y2, '└', style)
	b.Set(x2, y2, '┘', style)
}

// ellipseSampleCount is points sampled for a full sweep; partial arcs
// sample proportionally fewer
const ellipseSampleCount = 64

// drawEllipse samples the sweep between StartDeg and EndDeg and plots
// one cell per sample. Out-of-bounds samples are dropped by the buffer
func drawEllipse(b *Buffer, e geometry.Ellipse, r rune, style tcell.Style) {
	sweep := e.EndDeg - e.StartDeg
	if sweep <= 0 || e.RX < 0 || e.RY < 0 {
		return
	}
	count := int(float64(ellipseSampleCount) * sweep / 360)
	if count < 8 {
		count = 8
	}
	for i := 0; i <= count; i++ {
		deg := e.StartDeg + sweep*float64(i)/float64(count)
		rad := deg * math.Pi / 180
		x := e.CX + e.RX*math.Cos(rad)
		y := e.CY + e.RY*math.Sin(rad)
		b.Set(round(x), round(y), r, style)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
