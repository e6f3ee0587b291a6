// Package script drives an actor from a tengo input script instead of the
// keyboard. A script defines step(t), called with the elapsed seconds, that
// returns a map of input levels:
//
//	horizontal  number in [-1, 1]
//	jump dash ascend hover blink blink_left blink_right  bool
//	key         string shown as the last key pressed
//
// An optional global duration makes the script loop.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/momentum/movement"
	"github.com/milk9111/momentum/prefabs"
)

const dispatchScript = `
__out := step(__time)
`

// levels is one sample of the script's held inputs.
type levels struct {
	horizontal float64
	jump       bool
	dash       bool
	ascend     bool
	hover      bool
	blink      bool
	blinkLeft  bool
	blinkRight bool
	key        string
}

// Source replays a compiled input script. It is not safe for concurrent use.
type Source struct {
	name     string
	compiled *tengo.Compiled
	elapsed  float64
	duration float64
	prev     levels
}

// Load compiles a script from prefabs/scripts by name.
func Load(name string) (*Source, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return New(name, src)
}

func New(name string, src []byte) (*Source, error) {
	full := string(src) + "\n" + dispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__time", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	// Resolve the optional loop duration.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: run %s: %w", name, err)
	}

	source := &Source{name: name, compiled: compiled}
	if compiled.IsDefined("duration") {
		source.duration = compiled.Get("duration").Float()
	}
	return source, nil
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Elapsed() float64 {
	return s.elapsed
}

// Reset rewinds the script to t=0.
func (s *Source) Reset() {
	s.elapsed = 0
	s.prev = levels{}
}

// Next samples the script at the current time, then advances it by dt.
// Pressed inputs become edges: jump, ascend and hover fire only on the
// sample where they turn on.
func (s *Source) Next(dt float64) (movement.Input, error) {
	if s.duration > 0 && s.elapsed >= s.duration {
		s.Reset()
	}

	if err := s.compiled.Set("__time", s.elapsed); err != nil {
		return movement.Input{}, fmt.Errorf("script: %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return movement.Input{}, fmt.Errorf("script: %s: t=%.2f: %w", s.name, s.elapsed, err)
	}
	s.elapsed += dt

	cur := parseLevels(s.compiled.Get("__out").Map())
	in := movement.Input{
		Horizontal:    cur.horizontal,
		JumpPressed:   cur.jump && !s.prev.jump,
		DashHeld:      cur.dash,
		AscendPressed: cur.ascend && !s.prev.ascend,
		HoverPressed:  cur.hover && !s.prev.hover,
		BlinkHeld:     cur.blink,
		BlinkLeft:     cur.blinkLeft,
		BlinkRight:    cur.blinkRight,
	}
	if cur.key != "" && cur.key != s.prev.key {
		in.LastKey = cur.key
	}
	s.prev = cur
	return in, nil
}

func parseLevels(m map[string]any) levels {
	if m == nil {
		return levels{}
	}
	return levels{
		horizontal: number(m["horizontal"]),
		jump:       truthy(m["jump"]),
		dash:       truthy(m["dash"]),
		ascend:     truthy(m["ascend"]),
		hover:      truthy(m["hover"]),
		blink:      truthy(m["blink"]),
		blinkLeft:  truthy(m["blink_left"]),
		blinkRight: truthy(m["blink_right"]),
		key:        strings.TrimSpace(str(m["key"])),
	}
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	case string:
		return b != ""
	}
	return false
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
