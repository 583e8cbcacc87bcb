package clock

import (
	"testing"
	"time"
)

// fakeNow is an adjustable time source
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock(period time.Duration) (*GameClock, *fakeNow) {
	f := &fakeNow{t: time.Unix(1000, 0)}
	c := New(period)
	c.now = f.now
	return c, f
}

func TestClockStartsStopped(t *testing.T) {
	c, f := newTestClock(45 * time.Minute)
	if c.Running() {
		t.Error("new clock should be paused")
	}
	f.advance(time.Minute)
	if c.Elapsed() != 0 {
		t.Errorf("stopped clock elapsed = %v, want 0", c.Elapsed())
	}
}

func TestElapsedExcludesPauses(t *testing.T) {
	c, f := newTestClock(45 * time.Minute)

	c.Start()
	f.advance(10 * time.Minute)
	c.Pause()
	f.advance(5 * time.Minute) // halftime talk, clock frozen
	c.Start()
	f.advance(2 * time.Minute)

	if got := c.Elapsed(); got != 12*time.Minute {
		t.Errorf("elapsed = %v, want 12m", got)
	}
}

func TestDoubleStartAndDoublePauseAreNoOps(t *testing.T) {
	c, f := newTestClock(45 * time.Minute)
	c.Start()
	f.advance(time.Minute)
	c.Start() // already running
	f.advance(time.Minute)
	c.Pause()
	c.Pause() // already paused
	if got := c.Elapsed(); got != 2*time.Minute {
		t.Errorf("elapsed = %v, want 2m", got)
	}
}

func TestToggle(t *testing.T) {
	c, _ := newTestClock(45 * time.Minute)
	if !c.Toggle() {
		t.Error("first toggle should report running")
	}
	if c.Toggle() {
		t.Error("second toggle should report paused")
	}
}

func TestReset(t *testing.T) {
	c, f := newTestClock(45 * time.Minute)
	c.Start()
	f.advance(30 * time.Minute)
	c.Reset()
	if c.Running() || c.Elapsed() != 0 {
		t.Errorf("after reset running=%v elapsed=%v, want stopped at 0", c.Running(), c.Elapsed())
	}
}

func TestExpired(t *testing.T) {
	c, f := newTestClock(45 * time.Minute)
	c.Start()
	f.advance(44 * time.Minute)
	if c.Expired() {
		t.Error("clock expired one minute early")
	}
	f.advance(time.Minute)
	if !c.Expired() {
		t.Error("clock should expire at the period length")
	}
}

func TestOverlayFormat(t *testing.T) {
	c, f := newTestClock(45 * time.Minute)
	if got := c.Overlay(); got != "00:00" {
		t.Errorf("overlay = %q, want 00:00", got)
	}
	c.Start()
	f.advance(7*time.Minute + 5*time.Second)
	if got := c.Overlay(); got != "07:05" {
		t.Errorf("overlay = %q, want 07:05", got)
	}
	f.advance(40 * time.Minute)
	if got := c.Overlay(); got != "47:05" {
		t.Errorf("overlay = %q, want 47:05", got)
	}
}
