package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchline/app"
	"github.com/lixenwraith/touchline/audio"
	"github.com/lixenwraith/touchline/board"
)

var (
	periodFlag = flag.Duration("period", 45*time.Minute, "game clock period length")
	muteFlag   = flag.Bool("mute", false, "start with audio cues muted")
	debugFlag  = flag.String("debug", "", "write render diagnostics to this file")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise raw mode mangles the output
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "touchline crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents, tcell.MouseMotionEvents)
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	cues := audio.NewCues()
	// Audio is optional; a failed init leaves the cue player disabled
	_ = cues.Init()
	defer cues.Close()
	if *muteFlag {
		cues.ToggleMute()
	}

	a := app.New(screen, defaultRoster(), cues, *periodFlag)

	if *debugFlag != "" {
		f, err := os.OpenFile(*debugFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			logger := log.New(f, "touchline ", log.LstdFlags)
			a.SetDebugLog(logger.Printf)
		}
	}

	a.Run()
}

// defaultRoster is a starting eleven waiting on the roster bar
func defaultRoster() []board.Player {
	names := []struct {
		name, nick string
		goalie     bool
	}{
		{"Kasper", "GK", true},
		{"Ana", "", false},
		{"Bea", "", false},
		{"Carla", "", false},
		{"Dani", "", false},
		{"Eva", "", false},
		{"Fia", "", false},
		{"Gia", "", false},
		{"Hana", "", false},
		{"Ines", "", false},
		{"Jo", "", false},
	}
	roster := make([]board.Player, 0, len(names))
	for i, n := range names {
		roster = append(roster, board.Player{
			ID:       fmt.Sprintf("player-%d", i+1),
			Name:     n.name,
			Nickname: n.nick,
			IsGoalie: n.goalie,
		})
	}
	return roster
}
