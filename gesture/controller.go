package gesture

import (
	"time"

	"github.com/lixenwraith/touchline/board"
	"github.com/lixenwraith/touchline/geometry"
)

// SurfaceSizeFunc reports the drawable surface's current dimensions.
// Called fresh on every event so a resize mid-gesture is picked up on
// the next sample instead of crashing or sticking to stale bounds
type SurfaceSizeFunc func() (w, h float64)

// Controller is the interaction state machine.
// It consumes PointerEvents, holds the transient gesture state, and
// emits at most one Intent per event. It never touches entity state;
// the host commits intents and feeds back a fresh Snapshot
type Controller struct {
	cfg     Config
	surface SurfaceSizeFunc

	snapshot board.Snapshot
	state    gestureState
	lastTap  tapRecord
	hover    hit

	// Active pointer tracking: only the first pointer down is followed,
	// concurrent pointers are dropped until it releases
	activePointer int
	pointerDown   bool

	// Disc tap/drag disambiguation
	pressX, pressY float64
	dragMoved      bool

	// now is swappable for deterministic tests
	now func() time.Time
}

// NewController creates a controller with the given thresholds.
// surface must not be nil
func NewController(cfg Config, surface SurfaceSizeFunc) *Controller {
	return &Controller{
		cfg:     cfg,
		surface: surface,
		now:     time.Now,
	}
}

// SetSnapshot installs the entity view used for hit testing.
// The host calls this whenever its state changes; the controller treats
// the snapshot as immutable
func (c *Controller) SetSnapshot(snap board.Snapshot) {
	c.snapshot = snap
}

// State returns the current gesture state for UI affordance
func (c *Controller) State() StateKind {
	return c.state.kind
}

// TargetID returns the entity the active gesture addresses, if any
func (c *Controller) TargetID() string {
	return c.state.targetID
}

// Hover returns what an idle pointer is over, for cursor affordance
func (c *Controller) Hover() (TargetKind, string) {
	return c.hover.kind, c.hover.id
}

// BeginExternalDrag switches the controller into external-drag mode for
// a player being dragged in from outside the surface (roster bar).
// Internal hit testing and drawing are suspended until release
func (c *Controller) BeginExternalDrag(playerID string) {
	c.state = gestureState{kind: StateExternalDrag, targetID: playerID}
}

// CancelGesture force-terminates any active gesture without emitting an
// intent. Used when the host tears down or the input source resets
func (c *Controller) CancelGesture() {
	c.state = gestureState{kind: StateIdle}
	c.pointerDown = false
	c.dragMoved = false
}

// Process advances the state machine by one event and returns the
// semantic intent it produced, or nil. Runs synchronously; all hit
// testing and coordinate conversion happens inside this call
func (c *Controller) Process(ev PointerEvent) *Intent {
	// Single-pointer rule: while one pointer is down, every event from
	// any other pointer is dropped, downs included
	if c.pointerDown && ev.ID != c.activePointer {
		return nil
	}

	switch ev.Action {
	case PointerActionDown:
		if c.pointerDown {
			return nil
		}
		c.pointerDown = true
		c.activePointer = ev.ID
		return c.processDown(ev)
	case PointerActionMove:
		return c.processMove(ev)
	case PointerActionUp:
		if !c.pointerDown && c.state.kind != StateExternalDrag {
			return nil
		}
		c.pointerDown = false
		return c.processUp(ev, false)
	case PointerActionCancel:
		if !c.pointerDown && c.state.kind != StateExternalDrag {
			return nil
		}
		c.pointerDown = false
		return c.processUp(ev, true)
	}
	return nil
}

func (c *Controller) processDown(ev PointerEvent) *Intent {
	if c.state.kind == StateExternalDrag {
		// External drag owns the surface until release
		return nil
	}

	w, h := c.surface()
	if w <= 0 || h <= 0 {
		// Surface not laid out yet; nothing happened this frame
		c.pointerDown = false
		return nil
	}

	target := c.hitTest(ev.X, ev.Y, w, h)
	now := c.eventTime(ev)

	if target.kind != TargetNone {
		if removable(target.kind) && c.isDoubleTap(now, ev.X, ev.Y, target) {
			c.lastTap = tapRecord{}
			// Removal consumes the press; no drag state is entered and
			// the pointer stays inert until it releases
			return removeIntent(target)
		}
		c.lastTap = tapRecord{at: now, x: ev.X, y: ev.Y, id: target.id, kind: target.kind}
		c.state = gestureState{kind: dragStateFor(target.kind), targetID: target.id}
		c.pressX, c.pressY = ev.X, ev.Y
		c.dragMoved = false
		return nil
	}

	// Empty space starts a freehand stroke
	c.lastTap = tapRecord{}
	pos, ok := geometry.ToRelative(ev.X, ev.Y, w, h)
	if !ok {
		c.pointerDown = false
		return nil
	}
	c.state = gestureState{kind: StateDrawing}
	return &Intent{Type: IntentDrawingStart, Pos: pos}
}

func (c *Controller) processMove(ev PointerEvent) *Intent {
	w, h := c.surface()

	if c.state.kind == StateIdle {
		if !c.pointerDown && w > 0 && h > 0 {
			c.hover = c.hitTest(ev.X, ev.Y, w, h)
		}
		return nil
	}
	if c.state.kind == StateExternalDrag {
		return nil
	}

	pos, ok := geometry.ToRelative(ev.X, ev.Y, w, h)
	if !ok {
		// Zero-size dimension read mid-gesture: drop this sample, the
		// gesture resumes on the next valid read
		return nil
	}

	switch c.state.kind {
	case StateDrawing:
		return &Intent{Type: IntentDrawingAddPoint, Pos: pos}
	case StateDraggingPlayer:
		return &Intent{Type: IntentPlayerMove, ID: c.state.targetID, Pos: pos}
	case StateDraggingOpponent:
		return &Intent{Type: IntentOpponentMove, ID: c.state.targetID, Pos: pos}
	case StateDraggingDisc:
		if dist2(ev.X-c.pressX, ev.Y-c.pressY) > c.cfg.DragDeadZone*c.cfg.DragDeadZone {
			c.dragMoved = true
		}
		return &Intent{Type: IntentDiscMove, ID: c.state.targetID, Pos: pos}
	case StateDraggingBall:
		return &Intent{Type: IntentBallMove, Pos: pos}
	}
	return nil
}

func (c *Controller) processUp(ev PointerEvent, cancelled bool) *Intent {
	state := c.state
	c.state = gestureState{kind: StateIdle}

	switch state.kind {
	case StateExternalDrag:
		return c.finishExternalDrag(ev, cancelled, state.targetID)
	case StateDrawing:
		return &Intent{Type: IntentDrawingEnd}
	case StateDraggingPlayer:
		return &Intent{Type: IntentPlayerMoveEnd, ID: state.targetID}
	case StateDraggingOpponent:
		return &Intent{Type: IntentOpponentMoveEnd, ID: state.targetID}
	case StateDraggingDisc:
		// A press-and-release without real movement flips the disc side
		if !cancelled && !c.dragMoved {
			return &Intent{Type: IntentDiscToggleType, ID: state.targetID}
		}
		return nil
	}
	return nil
}

func (c *Controller) finishExternalDrag(ev PointerEvent, cancelled bool, playerID string) *Intent {
	if cancelled {
		return &Intent{Type: IntentPlayerDragCancel, ID: playerID}
	}
	w, h := c.surface()
	if w <= 0 || h <= 0 || ev.X < 0 || ev.X > w || ev.Y < 0 || ev.Y > h {
		return &Intent{Type: IntentPlayerDragCancel, ID: playerID}
	}
	pos, ok := geometry.ToRelative(ev.X, ev.Y, w, h)
	if !ok {
		return &Intent{Type: IntentPlayerDragCancel, ID: playerID}
	}
	return &Intent{Type: IntentPlayerDrop, ID: playerID, Pos: pos}
}

// isDoubleTap compares a press against the previous tap record.
// Time window, device distance, and exact target identity must all match
func (c *Controller) isDoubleTap(now time.Time, x, y float64, target hit) bool {
	if c.lastTap.kind == TargetNone {
		return false
	}
	if c.lastTap.kind != target.kind || c.lastTap.id != target.id {
		return false
	}
	if now.Sub(c.lastTap.at) > c.cfg.DoubleTapWindow {
		return false
	}
	r := c.cfg.DoubleTapRadius * c.cfg.HitAspect
	return dist2(x-c.lastTap.x, (y-c.lastTap.y)*c.cfg.HitAspect) <= r*r
}

func (c *Controller) eventTime(ev PointerEvent) time.Time {
	if !ev.When.IsZero() {
		return ev.When
	}
	return c.now()
}

func removable(kind TargetKind) bool {
	return kind == TargetPlayer || kind == TargetOpponent || kind == TargetDisc
}

func removeIntent(target hit) *Intent {
	switch target.kind {
	case TargetPlayer:
		return &Intent{Type: IntentPlayerRemove, ID: target.id}
	case TargetOpponent:
		return &Intent{Type: IntentOpponentRemove, ID: target.id}
	case TargetDisc:
		return &Intent{Type: IntentDiscRemove, ID: target.id}
	}
	return nil
}

func dragStateFor(kind TargetKind) StateKind {
	switch kind {
	case TargetPlayer:
		return StateDraggingPlayer
	case TargetOpponent:
		return StateDraggingOpponent
	case TargetDisc:
		return StateDraggingDisc
	case TargetBall:
		return StateDraggingBall
	}
	return StateIdle
}

func dist2(dx, dy float64) float64 {
	return dx*dx + dy*dy
}
