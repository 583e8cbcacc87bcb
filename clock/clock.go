package clock

import (
	"fmt"
	"sync"
	"time"
)

// GameClock is a pausable period clock for the overlay.
// Elapsed time excludes every paused span; Now-style reads are cheap and
// safe from any goroutine
type GameClock struct {
	mu sync.RWMutex

	periodLength time.Duration

	running     bool
	startedAt   time.Time     // real time of last Resume/Start
	accumulated time.Duration // elapsed before the current running span

	// now is swappable for deterministic tests
	now func() time.Time
}

// New creates a stopped clock for one period of the given length
func New(periodLength time.Duration) *GameClock {
	return &GameClock{
		periodLength: periodLength,
		now:          time.Now,
	}
}

// Start begins or resumes the clock. No-op while already running
func (c *GameClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.startedAt = c.now()
}

// Pause freezes elapsed time. No-op while already paused
func (c *GameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.accumulated += c.now().Sub(c.startedAt)
	c.running = false
}

// Toggle flips between running and paused, returning the new running state
func (c *GameClock) Toggle() bool {
	c.mu.Lock()
	running := c.running
	c.mu.Unlock()
	if running {
		c.Pause()
	} else {
		c.Start()
	}
	return !running
}

// Reset stops the clock and clears elapsed time
func (c *GameClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.accumulated = 0
}

// Running reports whether the clock is advancing
func (c *GameClock) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

// Elapsed returns game time elapsed, pauses excluded
func (c *GameClock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.running {
		return c.accumulated + c.now().Sub(c.startedAt)
	}
	return c.accumulated
}

// Expired reports whether the period length has been reached
func (c *GameClock) Expired() bool {
	return c.Elapsed() >= c.periodLength
}

// Overlay formats the elapsed time as MM:SS for the clock overlay
func (c *GameClock) Overlay() string {
	e := c.Elapsed()
	m := int(e.Minutes())
	s := int(e.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
