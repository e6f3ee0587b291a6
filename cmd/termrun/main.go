// Command termrun plays the movement sandbox in a terminal.
//
// Keys: a/d or arrows move, A/D (shift) or L dash, space jumps, k ascends,
// h toggles hover, b with a direction blinks, q or Esc quits.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/ecs/system"
	"github.com/milk9111/momentum/script"
	"github.com/milk9111/momentum/sim"
)

func main() {
	scriptName := flag.String("script", "", "drive the player from prefabs/scripts/<name>.tengo")
	noBlink := flag.Bool("no-blink", false, "build without the blink ability")
	mute := flag.Bool("mute", false, "disable sound cues")
	logPath := flag.String("log", "termrun.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if err := run(*scriptName, *noBlink, *mute); err != nil {
		log.Fatal(err)
	}
}

func run(scriptName string, noBlink, mute bool) error {
	cfg, err := sim.LoadConfig()
	if err != nil {
		return err
	}
	if noBlink {
		cfg.BlinkEnabled = false
	}

	opts := sim.Options{Config: cfg}
	if scriptName != "" {
		src, err := script.Load(scriptName)
		if err != nil {
			return err
		}
		opts.Input = system.NewInputSystem(1.0/common.TPS, src)
	}

	s, err := sim.New(opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sound, err := newPlayer(mute)
	if err != nil {
		log.Printf("audio: cues disabled: %v", err)
	}

	quit := make(chan struct{})
	defer close(quit)
	events := pumpEvents(screen, quit)

	keys := &keyboard{}
	cues := &cueWatcher{}
	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.press(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			in := keys.next()
			if opts.Input == nil {
				s.SetInput(in)
			}
			s.Update(1.0 / common.TPS)
			for _, c := range cues.observe(s.Controller().Snapshot()) {
				sound.play(c)
			}
			drawWorld(screen, s)
		}
	}
}

// pumpEvents forwards screen events until quit is closed or the screen is
// finalized. The returned channel is closed when forwarding stops.
func pumpEvents(screen tcell.Screen, quit <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 32)
	go screen.ChannelEvents(events, quit)
	return events
}
