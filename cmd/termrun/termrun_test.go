package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/movement"
	"github.com/milk9111/momentum/sim"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyboardEdgesAndHolds(t *testing.T) {
	k := &keyboard{}
	k.press(key('d'))
	k.press(key(' '))

	in := k.next()
	if in.Horizontal != 1 || !in.JumpPressed || in.LastKey != "Space" {
		t.Fatalf("first frame: %+v", in)
	}

	in = k.next()
	if in.JumpPressed || in.LastKey != "" {
		t.Fatalf("edges must be consumed: %+v", in)
	}
	if in.Horizontal != 1 {
		t.Fatalf("direction should stay held between repeats")
	}

	for i := 0; i < holdFrames; i++ {
		in = k.next()
	}
	if in.Horizontal != 0 {
		t.Fatalf("hold should lapse without repeats, got %v", in.Horizontal)
	}
}

func TestKeyboardShiftDashesAndBlink(t *testing.T) {
	k := &keyboard{}
	k.press(key('A'))
	in := k.next()
	if !in.DashHeld || in.Horizontal != -1 {
		t.Fatalf("shift+a should dash left: %+v", in)
	}

	k = &keyboard{}
	k.press(key('b'))
	k.press(key('d'))
	in = k.next()
	if !in.BlinkHeld || !in.BlinkRight || in.BlinkLeft {
		t.Fatalf("b then d should blink right: %+v", in)
	}
}

func TestKeyboardQuit(t *testing.T) {
	tests := []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}
	for _, ev := range tests {
		if !(&keyboard{}).press(ev) {
			t.Fatalf("expected %v to quit", ev.Name())
		}
	}
	if (&keyboard{}).press(key('d')) {
		t.Fatalf("movement keys must not quit")
	}
}

func TestCueWatcher(t *testing.T) {
	c := &cueWatcher{}
	if got := c.observe(movement.Snapshot{CanDash: true}); got != nil {
		t.Fatalf("first observation should be silent, got %v", got)
	}

	steps := []struct {
		snap movement.Snapshot
		want []cue
	}{
		{snap: movement.Snapshot{Action: movement.ActionDashing}, want: []cue{cueDash}},
		{snap: movement.Snapshot{Action: movement.ActionDashing}},
		{snap: movement.Snapshot{}},
		{snap: movement.Snapshot{CanDash: true}, want: []cue{cueDashReady}},
		{snap: movement.Snapshot{CanDash: true, Action: movement.ActionBlinking}, want: []cue{cueBlink}},
		{snap: movement.Snapshot{CanDash: true, Action: movement.ActionAscending}, want: []cue{cueAscend}},
	}
	for i, step := range steps {
		got := c.observe(step.snap)
		if len(got) != len(step.want) {
			t.Fatalf("step %d: expected %v, got %v", i, step.want, got)
		}
		for j := range got {
			if got[j] != step.want[j] {
				t.Fatalf("step %d: expected %v, got %v", i, step.want, got)
			}
		}
	}
}

func TestCueStreamersBuild(t *testing.T) {
	for _, c := range []cue{cueDash, cueAscend, cueBlink, cueDashReady} {
		if cueStreamer(c) == nil {
			t.Fatalf("cue %d has no streamer", c)
		}
	}
	silent := &player{}
	if silent.enabled {
		t.Fatalf("zero player must be silent")
	}
	silent.play(cueDash)
}

func TestViewportRoundTrip(t *testing.T) {
	v := viewport{camX: 10, camY: 5, width: 80, height: 24}
	col, row := v.cellAt(10, 5)
	if col != 40 || row != 11 {
		t.Fatalf("camera point should map to the screen center, got %d,%d", col, row)
	}
	col2, row2 := v.cellAt(10.5, 6)
	if col2 != col+1 || row2 != row-1 {
		t.Fatalf("up and right should move one cell, got %d,%d", col2, row2)
	}
}

func TestDrawWorldShowsPlayerAndHUD(t *testing.T) {
	cfg, err := sim.LoadConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	s, err := sim.New(sim.Options{Config: cfg})
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	s.Update(1.0 / 60)

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	drawWorld(screen, s)

	head := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == '>' {
				head++
			}
		}
	}
	if head != 1 {
		t.Fatalf("expected one player head facing right, found %d", head)
	}

	line := ""
	for x := 1; x < 40; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		line += string(r)
	}
	if line[:len("Dash Cooldown")] != "Dash Cooldown" {
		t.Fatalf("expected HUD on the first row, got %q", line)
	}

	player, _ := ecs.First(s.World, component.PlayerTagComponent.Kind())
	transform, _ := ecs.Get(s.World, player, component.TransformComponent.Kind())
	transform.ScaleX = -1
	drawWorld(screen, s)
	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == '<' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("expected the head to flip when facing left")
	}
}

func TestPumpEventsStopsOnQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	events := pumpEvents(screen, quit)

	if err := screen.PostEvent(key('d')); err != nil {
		t.Fatalf("post event: %v", err)
	}
	select {
	case ev := <-events:
		if k, ok := ev.(*tcell.EventKey); !ok || k.Rune() != 'd' {
			t.Fatalf("unexpected event %#v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("event was not forwarded")
	}

	for i := 0; i < 5; i++ {
		_ = screen.PostEvent(key('a'))
	}
	close(quit)

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event pump kept running after quit")
		}
	}
}
