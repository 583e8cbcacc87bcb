package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one of the generated sounds
type Cue uint8

const (
	CueTick    Cue = iota // entity removed from the field
	CueWhistle            // period expired
)

// tone describes a generated cue
type tone struct {
	freq     float64
	duration time.Duration
}

// cueTones maps cues to their generator settings
var cueTones = map[Cue]tone{
	CueTick:    {freq: 880, duration: 40 * time.Millisecond},
	CueWhistle: {freq: 2200, duration: 600 * time.Millisecond},
}

// Cues plays short generated feedback sounds.
// All methods are safe no-ops until Init succeeds, so the board works
// unchanged on systems without audio
type Cues struct {
	initialized bool
	muted       bool
}

// NewCues creates an uninitialized cue player
func NewCues() *Cues {
	return &Cues{}
}

// Init opens the speaker. Failure leaves the player disabled
func (c *Cues) Init() error {
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Close shuts the speaker down
func (c *Cues) Close() {
	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// ToggleMute flips the mute state, returning the new muted flag
func (c *Cues) ToggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

// Play fires a cue asynchronously
func (c *Cues) Play(cue Cue) {
	if !c.initialized || c.muted {
		return
	}
	t, ok := cueTones[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}
