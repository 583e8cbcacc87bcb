package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchline/audio"
	"github.com/lixenwraith/touchline/board"
	"github.com/lixenwraith/touchline/clock"
	"github.com/lixenwraith/touchline/gesture"
	"github.com/lixenwraith/touchline/parameter"
	"github.com/lixenwraith/touchline/render"
)

// chipSpan records where a roster chip was drawn, for press routing
type chipSpan struct {
	x1, x2 int
	id     string
}

// App is the host shell. It owns all entity state, feeds immutable
// snapshots to the renderer and gesture controller, and is the single
// authority that commits intents back into state
type App struct {
	screen   tcell.Screen
	ctrl     *gesture.Controller
	renderer *render.FieldRenderer
	buf      *render.Buffer
	cues     *audio.Cues
	clock    *clock.GameClock

	players   []board.Player
	opponents []board.Opponent
	discs     []board.TacticalDisc
	drawings  []board.DrawingPath
	ball      *board.Position

	showNames   bool
	tacticsMode bool

	opponentSeq int
	discSeq     int

	chips       []chipSpan
	prevButtons tcell.ButtonMask
	whistled    bool
	status      string
	statusUntil time.Time
	quit        bool
}

// New creates the application around an initialized screen and roster
func New(screen tcell.Screen, roster []board.Player, cues *audio.Cues, period time.Duration) *App {
	if period <= 0 {
		period = parameter.PeriodLength
	}
	a := &App{
		screen:    screen,
		renderer:  render.NewFieldRenderer(),
		cues:      cues,
		clock:     clock.New(period),
		players:   roster,
		showNames: true,
	}
	a.buf = render.NewBuffer(0, 0, render.Cell{
		Rune:  ' ',
		Style: tcell.StyleDefault.Background(render.RgbPitch),
	})
	a.ctrl = gesture.NewController(gesture.DefaultConfig(), func() (float64, float64) {
		_, _, w, h := a.fieldRect()
		return float64(w), float64(h)
	})
	return a
}

// SetDebugLog forwards renderer diagnostics to a development sink
func (a *App) SetDebugLog(fn render.DebugLogFunc) {
	a.renderer.SetDebugLog(fn)
}

// fieldRect returns the drawable surface's placement on the screen.
// Read fresh on every event and every frame; the terminal can resize
// at any time
func (a *App) fieldRect() (x, y, w, h int) {
	sw, sh := a.screen.Size()
	x = parameter.SideMargin
	y = parameter.TopMargin
	w = sw - 2*parameter.SideMargin
	h = sh - parameter.TopMargin - parameter.BottomMargin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return x, y, w, h
}

// snapshot builds the immutable per-frame view
func (a *App) snapshot() board.Snapshot {
	return board.Snapshot{
		Players:     a.players,
		Opponents:   a.opponents,
		Discs:       a.discs,
		Drawings:    a.drawings,
		Ball:        a.ball,
		ShowNames:   a.showNames,
		TacticsMode: a.tacticsMode,
	}
}

// Run drives the event loop until quit. Redraws happen on change, not
// on a frame clock; a coarse ticker keeps the clock overlay fresh
func (a *App) Run() {
	ticker := time.NewTicker(parameter.ClockTickResolution)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-ticker.C:
				a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	a.draw()
	for !a.quit {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.draw()
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventInterrupt:
			a.onTick()
		}
	}
}

func (a *App) onTick() {
	if a.clock.Running() {
		if !a.whistled && a.clock.Expired() {
			a.whistled = true
			a.clock.Pause()
			a.cues.Play(audio.CueWhistle)
			a.setStatus("full time")
		}
		a.draw()
	} else if a.status != "" && time.Now().After(a.statusUntil) {
		a.status = ""
		a.draw()
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = time.Now().Add(parameter.StatusMessageTimeout)
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		a.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		a.quit = true
	case 'n':
		a.showNames = !a.showNames
		a.draw()
	case 't':
		a.tacticsMode = !a.tacticsMode
		a.ctrl.CancelGesture()
		a.draw()
	case 'o':
		a.addOpponent()
		a.draw()
	case 'd':
		if a.tacticsMode {
			a.addDisc()
			a.draw()
		}
	case 'b':
		if a.tacticsMode {
			pos := board.NewPosition(0.5, 0.5)
			a.ball = &pos
			a.draw()
		}
	case 'c':
		a.drawings = nil
		a.draw()
	case 'u':
		if n := len(a.drawings); n > 0 {
			a.drawings = a.drawings[:n-1]
			a.draw()
		}
	case ' ':
		if a.clock.Toggle() {
			a.setStatus("clock running")
		} else {
			a.setStatus("clock paused")
		}
		a.draw()
	case 'r':
		a.clock.Reset()
		a.whistled = false
		a.setStatus("clock reset")
		a.draw()
	case 'm':
		if a.cues.ToggleMute() {
			a.setStatus("muted")
		} else {
			a.setStatus("sound on")
		}
		a.draw()
	}
}

// addOpponent drops a fresh marker near the center, nudged per count so
// stacked adds stay grabbable
func (a *App) addOpponent() {
	a.opponentSeq++
	nudge := float64(a.opponentSeq%5) * 0.04
	a.opponents = append(a.opponents, board.Opponent{
		ID:  fmt.Sprintf("opp-%d", a.opponentSeq),
		Pos: board.NewPosition(0.5+nudge, 0.35+nudge),
	})
}

func (a *App) addDisc() {
	a.discSeq++
	nudge := float64(a.discSeq%5) * 0.04
	a.discs = append(a.discs, board.TacticalDisc{
		ID:   fmt.Sprintf("disc-%d", a.discSeq),
		Type: board.DiscHome,
		Pos:  board.NewPosition(0.45+nudge, 0.6),
	})
}

// handleMouse folds tcell mouse reports into pointer events.
// The terminal is a single-pointer source, so everything is pointer 0;
// the controller's touch filtering still applies for other frontends
func (a *App) handleMouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	pressed := ev.Buttons()&tcell.ButtonPrimary != 0
	wasPressed := a.prevButtons&tcell.ButtonPrimary != 0
	a.prevButtons = ev.Buttons()

	fx, fy, fw, fh := a.fieldRect()
	lx, ly := float64(mx-fx), float64(my-fy)
	inField := mx >= fx && mx < fx+fw && my >= fy && my < fy+fh

	var action gesture.PointerAction
	switch {
	case pressed && !wasPressed:
		action = gesture.PointerActionDown
	case !pressed && wasPressed:
		action = gesture.PointerActionUp
	default:
		action = gesture.PointerActionMove
	}

	if action == gesture.PointerActionDown && !inField {
		if id, ok := a.chipAt(mx, my); ok {
			a.ctrl.BeginExternalDrag(id)
		} else {
			return
		}
	}

	// Dragging out of the surface ends the gesture like a release;
	// external drags stay alive so a drop-back-in remains possible
	if action == gesture.PointerActionMove && !inField {
		state := a.ctrl.State()
		if state != gesture.StateIdle && state != gesture.StateExternalDrag {
			action = gesture.PointerActionUp
		}
	}

	intent := a.ctrl.Process(gesture.PointerEvent{
		ID:     0,
		Action: action,
		X:      lx,
		Y:      ly,
		When:   ev.When(),
	})
	if a.apply(intent) {
		a.draw()
	}
}

// chipAt resolves a roster bar press to a player ID
func (a *App) chipAt(x, y int) (string, bool) {
	_, sh := a.screen.Size()
	if y != sh-2 {
		return "", false
	}
	for _, c := range a.chips {
		if x >= c.x1 && x <= c.x2 {
			return c.id, true
		}
	}
	return "", false
}

// apply commits one intent into entity state.
// This is the only place state changes; the renderer and controller see
// the result through the next snapshot. Returns true when a redraw is due
func (a *App) apply(intent *gesture.Intent) bool {
	if intent == nil {
		return false
	}

	switch intent.Type {
	case gesture.IntentPlayerMove, gesture.IntentPlayerDrop:
		if p := a.findPlayer(intent.ID); p != nil {
			pos := intent.Pos
			p.Pos = &pos
			return true
		}
	case gesture.IntentPlayerRemove:
		if p := a.findPlayer(intent.ID); p != nil {
			p.Pos = nil // back to the roster bar, player persists
			a.cues.Play(audio.CueTick)
			return true
		}
	case gesture.IntentPlayerMoveEnd, gesture.IntentPlayerDragCancel:
		return false

	case gesture.IntentOpponentMove:
		if o := a.findOpponent(intent.ID); o != nil {
			o.Pos = intent.Pos
			return true
		}
	case gesture.IntentOpponentRemove:
		for i := range a.opponents {
			if a.opponents[i].ID == intent.ID {
				a.opponents = append(a.opponents[:i], a.opponents[i+1:]...)
				a.cues.Play(audio.CueTick)
				return true
			}
		}
	case gesture.IntentOpponentMoveEnd:
		return false

	case gesture.IntentDiscMove:
		if d := a.findDisc(intent.ID); d != nil {
			d.Pos = intent.Pos
			return true
		}
	case gesture.IntentDiscRemove:
		for i := range a.discs {
			if a.discs[i].ID == intent.ID {
				a.discs = append(a.discs[:i], a.discs[i+1:]...)
				a.cues.Play(audio.CueTick)
				return true
			}
		}
	case gesture.IntentDiscToggleType:
		if d := a.findDisc(intent.ID); d != nil {
			d.Type = d.Type.Toggle()
			return true
		}

	case gesture.IntentBallMove:
		pos := intent.Pos
		a.ball = &pos
		return true

	case gesture.IntentDrawingStart:
		a.drawings = append(a.drawings, board.DrawingPath{intent.Pos})
		return true
	case gesture.IntentDrawingAddPoint:
		if n := len(a.drawings); n > 0 {
			a.drawings[n-1] = append(a.drawings[n-1], intent.Pos)
			return true
		}
	case gesture.IntentDrawingEnd:
		// Drop degenerate single-point strokes
		if n := len(a.drawings); n > 0 && !a.drawings[n-1].Renderable() {
			a.drawings = a.drawings[:n-1]
			return true
		}
	}
	return false
}

func (a *App) findPlayer(id string) *board.Player {
	for i := range a.players {
		if a.players[i].ID == id {
			return &a.players[i]
		}
	}
	return nil
}

func (a *App) findOpponent(id string) *board.Opponent {
	for i := range a.opponents {
		if a.opponents[i].ID == id {
			return &a.opponents[i]
		}
	}
	return nil
}

func (a *App) findDisc(id string) *board.TacticalDisc {
	for i := range a.discs {
		if a.discs[i].ID == id {
			return &a.discs[i]
		}
	}
	return nil
}

// draw renders one full frame: field buffer, clock overlay, roster bar
func (a *App) draw() {
	snap := a.snapshot()
	a.ctrl.SetSnapshot(snap)

	sw, sh := a.screen.Size()
	fx, fy, fw, fh := a.fieldRect()

	a.screen.Fill(' ', tcell.StyleDefault)
	a.buf.Resize(fw, fh)
	a.renderer.Draw(a.buf, snap)
	a.buf.Flush(a.screen, fx, fy)

	a.drawHeader(sw)
	a.drawRosterBar(sw, sh)
	a.drawHelp(sw, sh)
	a.screen.Show()
}

func (a *App) drawHeader(sw int) {
	style := tcell.StyleDefault.Bold(true)
	header := fmt.Sprintf(" %s ", a.clock.Overlay())
	if !a.clock.Running() {
		header += "(paused) "
	}
	mode := "lineup"
	if a.tacticsMode {
		mode = "tactics"
	}
	header += "| " + mode
	if a.status != "" {
		header += " | " + a.status
	}
	putString(a.screen, 1, 0, header, style)
	if kind, id := a.ctrl.Hover(); kind != gesture.TargetNone {
		putString(a.screen, 1, 1, fmt.Sprintf("over %s %s", kind, id), tcell.StyleDefault.Dim(true))
	}
}

// drawRosterBar lays out chips for unplaced players and records their
// spans so a press can start an external drag onto the field
func (a *App) drawRosterBar(sw, sh int) {
	a.chips = a.chips[:0]
	y := sh - 2
	x := 1
	chipStyle := tcell.StyleDefault.Foreground(render.RgbLabel).Reverse(true)
	for _, p := range a.players {
		if p.Pos != nil {
			continue
		}
		label := " " + p.Label() + " "
		if x+len([]rune(label)) >= sw {
			break
		}
		putString(a.screen, x, y, label, chipStyle)
		a.chips = append(a.chips, chipSpan{x1: x, x2: x + len([]rune(label)) - 1, id: p.ID})
		x += len([]rune(label)) + 1
	}
}

func (a *App) drawHelp(sw, sh int) {
	help := " drag disks | drag empty: draw | double-click: remove | n names | t tactics | o opp | d disc | space clock | q quit"
	putString(a.screen, 0, sh-1, help, tcell.StyleDefault.Dim(true))
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
