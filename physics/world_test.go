package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/momentum/movement"
)

func TestBodyForcesIntegrateOnce(t *testing.T) {
	w := NewWorld()
	b := w.AddActor(0, 10, 1, 1, 2, 0)

	b.AddForce(0, 10)
	w.Step(1)
	if _, vy := b.Velocity(); math.Abs(vy-5) > 1e-9 {
		t.Fatalf("expected vy=5 after one step, got %.4f", vy)
	}

	w.Step(1)
	if _, vy := b.Velocity(); math.Abs(vy-5) > 1e-9 {
		t.Fatalf("force should be cleared after a step, got vy=%.4f", vy)
	}
	if b.Mass() != 2 {
		t.Fatalf("expected mass 2, got %.2f", b.Mass())
	}
}

func TestMovePositionTeleports(t *testing.T) {
	w := NewWorld()
	b := w.AddActor(0, 0, 1, 1, 1, 0)
	b.SetVelocity(3, 0)

	b.MovePosition(4, 2)
	x, y := b.Position()
	if x != 4 || y != 2 {
		t.Fatalf("expected (4,2), got (%.2f,%.2f)", x, y)
	}
	if vx, _ := b.Velocity(); vx != 3 {
		t.Fatalf("velocity should be kept, got %.2f", vx)
	}
}

func TestGroundContact(t *testing.T) {
	tests := []struct {
		name   string
		tagged bool
	}{
		{"tagged", true},
		{"untagged", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			w.AddGround(0, 0, 20, 1, 0.8, tc.tagged)
			b := w.AddActor(0, 2, 1, 1, 1, 0.8)

			begins := 0
			w.OnGroundContact(func(actor *cp.Shape, kind ContactKind) {
				if actor != b.Shape() {
					t.Fatalf("callback for unknown shape")
				}
				if kind == ContactBegin {
					begins++
				}
			})

			for i := 0; i < 120; i++ {
				b.AddForce(0, -9.81*b.Mass())
				w.Step(1.0 / 50.0)
			}

			if tc.tagged && begins == 0 {
				t.Fatalf("expected a contact begin on tagged ground")
			}
			if !tc.tagged && begins != 0 {
				t.Fatalf("untagged ground must not report contact, got %d", begins)
			}
			if w.Grounded(b) != tc.tagged {
				t.Fatalf("expected grounded=%v", tc.tagged)
			}
			if _, y := b.Position(); y < 0.5 {
				t.Fatalf("actor fell through ground: y=%.3f", y)
			}
		})
	}
}

func TestGroundContactEnds(t *testing.T) {
	w := NewWorld()
	w.AddGround(0, 0, 20, 1, 0.8, true)
	b := w.AddActor(0, 1.2, 1, 1, 1, 0.8)

	var kinds []ContactKind
	w.OnGroundContact(func(_ *cp.Shape, kind ContactKind) { kinds = append(kinds, kind) })

	for i := 0; i < 60; i++ {
		b.AddForce(0, -9.81)
		w.Step(1.0 / 50.0)
	}
	if !w.Grounded(b) {
		t.Fatalf("expected actor to land")
	}

	b.MovePosition(0, 10)
	b.SetVelocity(0, 0)
	for i := 0; i < 3; i++ {
		w.Step(1.0 / 50.0)
	}

	if w.Grounded(b) {
		t.Fatalf("expected contact to end after moving away")
	}
	if len(kinds) < 2 || kinds[len(kinds)-1] != ContactEnd {
		t.Fatalf("expected a trailing ContactEnd, got %v", kinds)
	}
}

type discardText struct{}

func (discardText) SetText(string) {}

func TestAscendLiftsActorAgainstGravity(t *testing.T) {
	const dt = 1.0 / 50.0

	tests := []struct {
		name   string
		y, vy  float64
		settle bool
	}{
		{name: "from rest on ground", y: 1, settle: true},
		{name: "while falling", y: 10, vy: -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			w.AddGround(0, 0, 20, 1, 0.8, true)
			b := w.AddActor(0, tc.y, 1, 1, 1, 0.8)

			c, err := movement.NewController(movement.DefaultConfig(), movement.HUD{
				DashCooldown:   discardText{},
				AscendCooldown: discardText{},
			})
			if err != nil {
				t.Fatalf("new controller: %v", err)
			}

			if tc.settle {
				for i := 0; i < 25; i++ {
					c.Tick(dt, b)
					w.Step(dt)
				}
				if !w.Grounded(b) {
					t.Fatalf("expected actor to rest on the ground")
				}
			}
			b.SetVelocity(0, tc.vy)
			_, startY := b.Position()

			c.Frame(dt, movement.Input{AscendPressed: true}, b)
			if c.Action() != movement.ActionAscending {
				t.Fatalf("expected ascend, got %s", c.Action())
			}

			ticks := 0
			for c.Action() == movement.ActionAscending {
				c.Tick(dt, b)
				w.Step(dt)
				ticks++
				if _, vy := b.Velocity(); vy <= 0 {
					t.Fatalf("tick %d: expected upward velocity during ascend, got %.3f", ticks, vy)
				}
				if ticks > 10 {
					t.Fatalf("ascend did not end")
				}
			}

			if _, y := b.Position(); y <= startY {
				t.Fatalf("expected actor to rise above %.3f, got %.3f", startY, y)
			}
		})
	}
}
