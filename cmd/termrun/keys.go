package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/momentum/movement"
)

// Terminals report key presses and repeats but never releases, so a held key
// is one seen within the last holdFrames frames.
const holdFrames = 18

type heldKey int

const (
	heldLeft heldKey = iota
	heldRight
	heldDash
	heldBlink
	heldCount
)

type keyboard struct {
	frame int
	until [heldCount]int

	jump    bool
	ascend  bool
	hover   bool
	lastKey string
}

func (k *keyboard) hold(key heldKey) {
	k.until[key] = k.frame + holdFrames
}

func (k *keyboard) held(key heldKey) bool {
	return k.frame < k.until[key]
}

// press records a key event. It reports whether the user asked to quit.
func (k *keyboard) press(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.hold(heldLeft)
		k.lastKey = "ArrowLeft"
		return false
	case tcell.KeyRight:
		k.hold(heldRight)
		k.lastKey = "ArrowRight"
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return true
	case 'a':
		k.hold(heldLeft)
	case 'd':
		k.hold(heldRight)
	// Shift shows up as upper case.
	case 'A':
		k.hold(heldLeft)
		k.hold(heldDash)
	case 'D':
		k.hold(heldRight)
		k.hold(heldDash)
	case 'L':
		k.hold(heldDash)
	case ' ':
		k.jump = true
		k.lastKey = "Space"
		return false
	case 'k':
		k.ascend = true
	case 'h':
		k.hover = true
	case 'b':
		k.hold(heldBlink)
	default:
		return false
	}
	k.lastKey = string(r)
	return false
}

// next builds one frame of input, consuming edges.
func (k *keyboard) next() movement.Input {
	left, right := k.held(heldLeft), k.held(heldRight)
	in := movement.Input{
		JumpPressed:   k.jump,
		DashHeld:      k.held(heldDash),
		AscendPressed: k.ascend,
		HoverPressed:  k.hover,
		BlinkHeld:     k.held(heldBlink),
		BlinkLeft:     left,
		BlinkRight:    right,
		LastKey:       k.lastKey,
	}
	if left {
		in.Horizontal -= 1
	}
	if right {
		in.Horizontal += 1
	}

	k.jump, k.ascend, k.hover = false, false, false
	k.lastKey = ""
	k.frame++
	return in
}
