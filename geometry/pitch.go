package geometry

// Pitch marking proportions from the laws-of-the-game 105m x 68m field.
// All markings are recomputed from the current surface size on every call
// so the layout survives any resize or aspect ratio
const (
	// PenaltyAreaDepth is the 16.5m penalty box depth as a fraction of field length
	PenaltyAreaDepth = 16.5 / 105.0

	// PenaltyAreaWidth is the 40.32m penalty box width as a fraction of field height
	PenaltyAreaWidth = 40.32 / 68.0

	// GoalAreaDepth is the 5.5m goal box depth as a fraction of field length
	GoalAreaDepth = 5.5 / 105.0

	// GoalAreaWidth is the 18.32m goal box width as a fraction of field height
	GoalAreaWidth = 18.32 / 68.0

	// CenterCircleRadius is the 9.15m circle radius as a fraction of field height
	CenterCircleRadius = 9.15 / 68.0

	// PenaltySpotDepth is the 11m spot distance as a fraction of field length
	PenaltySpotDepth = 11.0 / 105.0

	// CornerArcRadius is the 1m corner arc as a fraction of field height
	CornerArcRadius = 2.5 / 68.0
)

// CellAspect is the terminal character cell width:height correction.
// A visual circle needs its horizontal semi-axis stretched by this factor
const CellAspect = 2.0

// Rect is an axis-aligned device-space rectangle
type Rect struct {
	X, Y, W, H float64
}

// Line is a device-space segment
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Ellipse is a device-space ellipse given by center and semi-axes.
// Full circles and corner arcs both rasterize from this
type Ellipse struct {
	CX, CY, RX, RY float64

	// StartDeg/EndDeg bound the drawn sweep, counterclockwise,
	// 0 pointing right. A full circle is 0..360
	StartDeg, EndDeg float64
}

// Spot is a single device-space marker point
type Spot struct {
	X, Y float64
}

// PitchLayout is the complete set of markings for one frame
type PitchLayout struct {
	Boundary     Rect
	HalfwayLine  Line
	CenterCircle Ellipse
	CenterSpot   Spot

	PenaltyAreas [2]Rect
	GoalAreas    [2]Rect
	PenaltySpots [2]Spot
	CornerArcs   [4]Ellipse
}

// ComputePitch lays the markings out for a surface of the given size,
// goals on the left and right edges. Pure geometry: same inputs, same
// layout, no retained state
func ComputePitch(surfaceW, surfaceH float64) PitchLayout {
	w, h := surfaceW, surfaceH

	var l PitchLayout
	l.Boundary = Rect{X: 0, Y: 0, W: w, H: h}
	l.HalfwayLine = Line{X1: w / 2, Y1: 0, X2: w / 2, Y2: h}

	ccr := CenterCircleRadius * h
	l.CenterCircle = Ellipse{CX: w / 2, CY: h / 2, RX: ccr * CellAspect, RY: ccr, StartDeg: 0, EndDeg: 360}
	l.CenterSpot = Spot{X: w / 2, Y: h / 2}

	paD, paW := PenaltyAreaDepth*w, PenaltyAreaWidth*h
	l.PenaltyAreas[0] = Rect{X: 0, Y: (h - paW) / 2, W: paD, H: paW}
	l.PenaltyAreas[1] = Rect{X: w - paD, Y: (h - paW) / 2, W: paD, H: paW}

	gaD, gaW := GoalAreaDepth*w, GoalAreaWidth*h
	l.GoalAreas[0] = Rect{X: 0, Y: (h - gaW) / 2, W: gaD, H: gaW}
	l.GoalAreas[1] = Rect{X: w - gaD, Y: (h - gaW) / 2, W: gaD, H: gaW}

	psD := PenaltySpotDepth * w
	l.PenaltySpots[0] = Spot{X: psD, Y: h / 2}
	l.PenaltySpots[1] = Spot{X: w - psD, Y: h / 2}

	car := CornerArcRadius * h
	rx, ry := car*CellAspect, car
	// Angles follow screen convention: 0 points right, 90 points down
	l.CornerArcs[0] = Ellipse{CX: 0, CY: 0, RX: rx, RY: ry, StartDeg: 0, EndDeg: 90}
	l.CornerArcs[1] = Ellipse{CX: w, CY: 0, RX: rx, RY: ry, StartDeg: 90, EndDeg: 180}
	l.CornerArcs[2] = Ellipse{CX: w, CY: h, RX: rx, RY: ry, StartDeg: 180, EndDeg: 270}
	l.CornerArcs[3] = Ellipse{CX: 0, CY: h, RX: rx, RY: ry, StartDeg: 270, EndDeg: 360}

	return l
}
