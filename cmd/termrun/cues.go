package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/momentum/movement"
)

const sampleRate = beep.SampleRate(44100)

type cue int

const (
	cueDash cue = iota
	cueAscend
	cueBlink
	cueDashReady
)

// cueWatcher turns controller state changes into sound cues.
type cueWatcher struct {
	prev movement.Snapshot
	seen bool
}

func (c *cueWatcher) observe(snap movement.Snapshot) []cue {
	if !c.seen {
		c.prev, c.seen = snap, true
		return nil
	}

	var cues []cue
	if snap.Action != c.prev.Action {
		switch snap.Action {
		case movement.ActionDashing:
			cues = append(cues, cueDash)
		case movement.ActionAscending:
			cues = append(cues, cueAscend)
		case movement.ActionBlinking:
			cues = append(cues, cueBlink)
		}
	}
	if snap.CanDash && !c.prev.CanDash && snap.Action == movement.ActionIdle {
		cues = append(cues, cueDashReady)
	}
	c.prev = snap
	return cues
}

type player struct {
	enabled bool
}

func newPlayer(mute bool) (*player, error) {
	if mute {
		return &player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &player{}, err
	}
	return &player{enabled: true}, nil
}

func (p *player) play(c cue) {
	if p == nil || !p.enabled {
		return
	}
	if s := cueStreamer(c); s != nil {
		speaker.Play(s)
	}
}

func cueStreamer(c cue) beep.Streamer {
	switch c {
	case cueDash:
		return sweep(220, 660, 90*time.Millisecond, 0.4)
	case cueAscend:
		return sweep(330, 990, 160*time.Millisecond, 0.35)
	case cueBlink:
		return tone(1320, 60*time.Millisecond, 0.3)
	case cueDashReady:
		return beep.Seq(
			tone(880, 50*time.Millisecond, 0.25),
			tone(1760, 70*time.Millisecond, 0.2),
		)
	}
	return nil
}

func tone(freq float64, d time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return volume(beep.Take(sampleRate.N(d), sine), vol)
}

// sweep steps through a few tones from lo to hi.
func sweep(lo, hi float64, d time.Duration, vol float64) beep.Streamer {
	const steps = 4
	parts := make([]beep.Streamer, 0, steps)
	for i := 0; i < steps; i++ {
		freq := lo + (hi-lo)*float64(i)/float64(steps-1)
		if s := tone(freq, d/steps, 1); s != nil {
			parts = append(parts, s)
		}
	}
	return volume(beep.Seq(parts...), vol)
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
