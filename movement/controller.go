package movement

import (
	"fmt"
	"math"

	"github.com/milk9111/momentum/common"
)

// Controller turns per-frame input into movement and ability requests on a
// Body. Frame runs once per render frame and Tick once per fixed physics
// step; both must be called from the simulation goroutine.
type Controller struct {
	cfg Config
	hud HUD

	horizontal float64
	speed      float64
	moving     bool
	movingSign float64
	timeMoving float64
	facing     Facing
	hovering   bool
	onGround   bool

	action Action

	canDash     bool
	dashTimer   float64
	ascendTimer float64

	// relock counts down to dash availability. fromDash marks a relock
	// started by a finished dash, which also clears the dash timer.
	relock         float64
	relockFromDash bool

	recovery     recoveryPhase
	recoveryLeft float64

	trail   bool
	lastKey string
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Horizontal  float64
	Speed       float64
	Facing      Facing
	Hovering    bool
	Grounded    bool
	Action      ActionKind
	CanDash     bool
	DashTimer   float64
	AscendTimer float64
	Trail       bool
	LastKey     string
}

func NewController(cfg Config, hud HUD) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := hud.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:     cfg,
		hud:     hud,
		speed:   cfg.BaseSpeed,
		facing:  FacingRight,
		canDash: true,
	}
	hud.refresh(c)
	return c, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning in place. Running timers keep their values.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("movement: set config: %w", err)
	}
	c.cfg = cfg
	if !c.moving {
		c.speed = cfg.BaseSpeed
	}
	c.speed = math.Min(c.speed, cfg.MaxMomentum)
	if !cfg.BlinkEnabled && c.action.Kind == ActionBlinking {
		c.action = Action{}
	}
	return nil
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Horizontal:  c.horizontal,
		Speed:       c.speed,
		Facing:      c.facing,
		Hovering:    c.hovering,
		Grounded:    c.onGround,
		Action:      c.action.Kind,
		CanDash:     c.canDash,
		DashTimer:   c.dashTimer,
		AscendTimer: c.ascendTimer,
		Trail:       c.trail,
		LastKey:     c.lastKey,
	}
}

func (c *Controller) Facing() Facing { return c.facing }

func (c *Controller) Action() ActionKind { return c.action.Kind }

func (c *Controller) TrailActive() bool { return c.trail }

// SetHovering switches hover outside of input, e.g. from a menu.
func (c *Controller) SetHovering(on bool) { c.hovering = on }

// Grounded reports contact with a ground-tagged surface. Landing always
// restores the dash, even while its cooldown is still running.
func (c *Controller) Grounded() {
	c.onGround = true
	c.canDash = true
}

// Airborne reports that the last ground contact ended.
func (c *Controller) Airborne() {
	c.onGround = false
}

// Frame consumes one frame of input.
func (c *Controller) Frame(dt float64, in Input, body Body) {
	if in.HoverPressed {
		c.hovering = !c.hovering
	}
	if in.LastKey != "" {
		c.lastKey = in.LastKey
	}

	if c.action.suppressesMovement() {
		c.hud.refresh(c)
		return
	}

	c.horizontal = common.Clamp(in.Horizontal, -1, 1)

	if in.JumpPressed && (!c.cfg.GroundedJumpOnly || c.onGround) {
		vx, _ := body.Velocity()
		body.SetVelocity(vx, c.cfg.JumpPower)
	}

	if c.action.Kind == ActionIdle {
		switch {
		case in.DashHeld && c.canDash && c.dashTimer <= 0:
			c.startDash(body)
		case in.AscendPressed && c.ascendTimer <= 0:
			c.startAscend()
		case c.cfg.BlinkEnabled && in.BlinkHeld && (in.BlinkLeft || in.BlinkRight):
			c.startBlink(in, body)
		}
	}

	c.updateMomentum(dt)
	c.updateFacing()
	c.hud.refresh(c)
}

// Tick applies one fixed physics step.
func (c *Controller) Tick(dt float64, body Body) {
	if c.action.suppressesMovement() {
		c.stepAction(dt, body)
		c.stepRecovery(dt)
		return
	}

	mass := body.Mass()
	if c.action.Kind == ActionAscending {
		_, vy := body.Velocity()
		body.AddForce(0, c.cfg.AscendPower-vy*mass)
	}

	x, y := body.Position()
	body.MovePosition(x+c.horizontal*c.speed*dt, y)

	if !c.hovering {
		body.AddForce(0, -c.cfg.Gravity*c.cfg.FallSpeed*mass)
	}

	c.dashTimer -= dt
	c.ascendTimer -= dt

	c.stepAction(dt, body)
	c.stepRecovery(dt)
}

func (c *Controller) startDash(body Body) {
	c.canDash = false
	c.dashTimer = c.cfg.DashCooldown
	c.action = Action{Kind: ActionDashing}
	c.trail = true
	body.SetVelocity(c.facing.Sign()*c.cfg.DashPower, 0)
}

func (c *Controller) startAscend() {
	c.ascendTimer = c.cfg.AscendCooldown
	c.action = Action{Kind: ActionAscending}
}

func (c *Controller) startBlink(in Input, body Body) {
	dir := -1.0
	if in.BlinkRight {
		dir = 1
	}
	x, _ := body.Position()
	c.action = Action{Kind: ActionBlinking, FromX: x, ToX: x + dir*c.cfg.BlinkDistance}
}

func (c *Controller) stepAction(dt float64, body Body) {
	switch c.action.Kind {
	case ActionDashing:
		c.action.Elapsed += dt
		if c.action.Elapsed >= c.cfg.DashDuration {
			c.action = Action{}
			c.trail = false
			c.startRelock(c.cfg.DashCooldown, true)
		}
	case ActionAscending:
		c.action.Elapsed += dt
		if c.action.Elapsed >= c.cfg.AscendDuration {
			c.action = Action{}
		}
	case ActionBlinking:
		c.action.Elapsed += dt
		t := math.Min(c.action.Elapsed/c.cfg.BlinkDuration, 1)
		_, y := body.Position()
		body.MovePosition(common.Lerp(c.action.FromX, c.action.ToX, t), y)
		if t >= 1 {
			body.SetVelocity(0, 0)
			c.action = Action{}
			c.recovery = recoveryDelay
			c.recoveryLeft = c.cfg.BlinkRecovery
		}
	}
}

func (c *Controller) stepRecovery(dt float64) {
	if c.relock > 0 {
		c.relock -= dt
		if c.relock <= 0 {
			c.releaseDash()
		}
	}

	if c.recovery == recoveryDelay {
		c.recoveryLeft -= dt
		if c.recoveryLeft <= 0 {
			c.recovery = recoveryNone
			c.canDash = false
			c.startRelock(c.cfg.DashCooldown, false)
		}
	}
}

// startRelock locks the dash for d seconds. Overlapping relocks do not
// stack; the later expiry wins.
func (c *Controller) startRelock(d float64, fromDash bool) {
	c.relock = math.Max(c.relock, d)
	c.relockFromDash = c.relockFromDash || fromDash
	if c.relock <= 0 {
		c.releaseDash()
	}
}

func (c *Controller) releaseDash() {
	c.relock = 0
	c.canDash = true
	if c.relockFromDash {
		c.dashTimer = 0
		c.trail = true
	}
	c.relockFromDash = false
}

func (c *Controller) updateMomentum(dt float64) {
	sign := common.Sign(c.horizontal)
	if sign == 0 || (c.moving && sign != c.movingSign) {
		c.moving = false
		c.timeMoving = 0
		c.speed = c.cfg.BaseSpeed
		if sign == 0 {
			return
		}
	}

	if !c.moving {
		c.moving = true
		c.movingSign = sign
		return
	}

	c.timeMoving += dt
	if c.timeMoving >= c.cfg.MomentumTime {
		c.speed = math.Min(c.speed+c.cfg.MomentumIncrement*dt, c.cfg.MaxMomentum)
	}
}

func (c *Controller) updateFacing() {
	switch {
	case c.facing == FacingRight && c.horizontal < 0:
		c.facing = FacingLeft
	case c.facing == FacingLeft && c.horizontal > 0:
		c.facing = FacingRight
	}
}
