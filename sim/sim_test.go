package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/ecs/system"
	"github.com/milk9111/momentum/movement"
	"github.com/milk9111/momentum/script"
)

const frameDT = 1.0 / common.TPS

func newSim(t *testing.T, cfg movement.Config) *Simulation {
	t.Helper()
	s, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return s
}

func TestLoadConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != movement.DefaultConfig() {
		t.Fatalf("unexpected tuning %+v", cfg)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := movement.DefaultConfig()
	cfg.MaxMomentum = cfg.BaseSpeed - 1
	if _, err := New(Options{Config: cfg}); !errors.Is(err, movement.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestFixedStepAccumulator(t *testing.T) {
	s := newSim(t, movement.DefaultConfig())
	for i := 0; i < common.TPS; i++ {
		s.Update(frameDT)
	}
	if got := s.Ticks(); got < 49 || got > 50 {
		t.Fatalf("expected ~50 ticks per second, got %d", got)
	}

	// A stalled frame only catches up a bounded number of ticks.
	before := s.Ticks()
	s.Update(1)
	if got := s.Ticks() - before; got != maxTicksPerFrame {
		t.Fatalf("expected %d catch-up ticks, got %d", maxTicksPerFrame, got)
	}
}

func TestPlayerLandsAndRuns(t *testing.T) {
	s := newSim(t, movement.DefaultConfig())
	for i := 0; i < 30; i++ {
		s.Update(frameDT)
	}
	if !s.Controller().Snapshot().Grounded {
		t.Fatalf("expected the player to land on the floor")
	}

	startX, _ := s.PlayerPosition()
	for i := 0; i < common.TPS; i++ {
		s.SetInput(movement.Input{Horizontal: 1})
		s.Update(frameDT)
	}
	x, y := s.PlayerPosition()
	moved := x - startX
	if moved < 6 || moved > 9 {
		t.Fatalf("expected about one second at base speed, moved %.2f", moved)
	}
	if y < 1 || y > 2 {
		t.Fatalf("expected the player to stay on the floor, y=%.2f", y)
	}
}

func TestHUDTextsFollowController(t *testing.T) {
	s := newSim(t, movement.DefaultConfig())
	s.Update(frameDT)
	s.SetInput(movement.Input{DashHeld: true, LastKey: "ShiftLeft"})
	s.Update(frameDT)

	texts := s.HUDTexts()
	if !strings.HasPrefix(texts[0], "Dash Cooldown: 2.00") {
		t.Fatalf("unexpected dash text %q", texts[0])
	}
	if texts[3] != "Last key pressed: ShiftLeft" {
		t.Fatalf("unexpected last key text %q", texts[3])
	}
}

func TestScriptedInputDrivesPlayer(t *testing.T) {
	src, err := script.New("run", []byte(`
step := func(t) {
	return {horizontal: -1}
}
`))
	if err != nil {
		t.Fatalf("script: %v", err)
	}

	s, err := New(Options{
		Config: movement.DefaultConfig(),
		Input:  system.NewInputSystem(frameDT, src),
	})
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	startX, _ := s.PlayerPosition()
	for i := 0; i < 20; i++ {
		s.Update(frameDT)
	}
	x, _ := s.PlayerPosition()
	if x >= startX {
		t.Fatalf("expected scripted input to move the player left, %.2f -> %.2f", startX, x)
	}
	if s.Controller().Facing() != movement.FacingLeft {
		t.Fatalf("expected the player to face left")
	}
}
