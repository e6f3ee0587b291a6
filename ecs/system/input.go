package system

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/movement"
)

// InputSource produces scripted input in place of the keyboard.
type InputSource interface {
	Next(dt float64) (movement.Input, error)
}

type InputSystem struct {
	dt     float64
	script InputSource
	keys   []ebiten.Key
}

// NewInputSystem reads devices, or script when it is non-nil. A failing
// script is dropped and the devices take over.
func NewInputSystem(dt float64, script InputSource) *InputSystem {
	return &InputSystem{dt: dt, script: script}
}

func (i *InputSystem) Scripted() bool {
	return i.script != nil
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := i.read()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Input = in
	})
}

func (i *InputSystem) read() movement.Input {
	if i.script != nil {
		in, err := i.script.Next(i.dt)
		if err == nil {
			return in
		}
		log.Printf("input script: %v; falling back to devices", err)
		i.script = nil
	}
	return i.readDevices()
}

func (i *InputSystem) readDevices() movement.Input {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	in := movement.Input{
		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		DashHeld:      ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		AscendPressed: inpututil.IsKeyJustPressed(ebiten.KeyControlLeft),
		HoverPressed:  inpututil.IsKeyJustPressed(ebiten.KeyH),
		BlinkHeld:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		BlinkLeft:     ebiten.IsKeyPressed(ebiten.KeyA),
		BlinkRight:    ebiten.IsKeyPressed(ebiten.KeyD),
	}
	if left {
		in.Horizontal -= 1
	}
	if right {
		in.Horizontal += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.Horizontal = leftX
		}

		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.DashHeld = in.DashHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.AscendPressed = in.AscendPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.HoverPressed = in.HoverPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)

		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft) {
			in.BlinkHeld = true
			in.BlinkLeft = in.BlinkLeft || leftX < -stickDeadzone
			in.BlinkRight = in.BlinkRight || leftX > stickDeadzone
		}
	}

	i.keys = inpututil.AppendJustPressedKeys(i.keys[:0])
	if n := len(i.keys); n > 0 {
		in.LastKey = i.keys[n-1].String()
	}

	return in
}
