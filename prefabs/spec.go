package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/momentum/movement"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

const MovementSpecFile = "movement.yaml"

// MovementSpec is the designer-facing tuning file for the movement
// controller.
type MovementSpec struct {
	Name     string       `yaml:"name"`
	Momentum MomentumSpec `yaml:"momentum"`
	Jump     JumpSpec     `yaml:"jump"`
	Dash     AbilitySpec  `yaml:"dash"`
	Ascend   AbilitySpec  `yaml:"ascend"`
	Blink    BlinkSpec    `yaml:"blink"`
	Fall     FallSpec     `yaml:"fall"`
}

type MomentumSpec struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Max       float64 `yaml:"max"`
	RampTime  float64 `yaml:"ramp_time"`
	Increment float64 `yaml:"increment"`
}

type JumpSpec struct {
	Power        float64 `yaml:"power"`
	GroundedOnly bool    `yaml:"grounded_only"`
}

type AbilitySpec struct {
	Power    float64 `yaml:"power"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type BlinkSpec struct {
	Enabled  bool    `yaml:"enabled"`
	Distance float64 `yaml:"distance"`
	Duration float64 `yaml:"duration"`
	Recovery float64 `yaml:"recovery"`
}

type FallSpec struct {
	Gravity float64 `yaml:"gravity"`
	Speed   float64 `yaml:"speed"`
}

func LoadMovementSpec() (*MovementSpec, error) {
	spec, err := LoadSpec[MovementSpec](MovementSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the spec and validates it.
func (s *MovementSpec) Config() (movement.Config, error) {
	cfg := movement.Config{
		BaseSpeed:         s.Momentum.BaseSpeed,
		MaxMomentum:       s.Momentum.Max,
		MomentumTime:      s.Momentum.RampTime,
		MomentumIncrement: s.Momentum.Increment,
		JumpPower:         s.Jump.Power,
		GroundedJumpOnly:  s.Jump.GroundedOnly,
		DashPower:         s.Dash.Power,
		DashDuration:      s.Dash.Duration,
		DashCooldown:      s.Dash.Cooldown,
		AscendPower:       s.Ascend.Power,
		AscendDuration:    s.Ascend.Duration,
		AscendCooldown:    s.Ascend.Cooldown,
		BlinkEnabled:      s.Blink.Enabled,
		BlinkDistance:     s.Blink.Distance,
		BlinkDuration:     s.Blink.Duration,
		BlinkRecovery:     s.Blink.Recovery,
		Gravity:           s.Fall.Gravity,
		FallSpeed:         s.Fall.Speed,
	}
	if err := cfg.Validate(); err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: %s: %w", MovementSpecFile, err)
	}
	return cfg, nil
}

// MovementSpecFromConfig is the inverse of Config, used to export live
// tuning.
func MovementSpecFromConfig(name string, cfg movement.Config) MovementSpec {
	return MovementSpec{
		Name:     name,
		Momentum: MomentumSpec{BaseSpeed: cfg.BaseSpeed, Max: cfg.MaxMomentum, RampTime: cfg.MomentumTime, Increment: cfg.MomentumIncrement},
		Jump:     JumpSpec{Power: cfg.JumpPower, GroundedOnly: cfg.GroundedJumpOnly},
		Dash:     AbilitySpec{Power: cfg.DashPower, Duration: cfg.DashDuration, Cooldown: cfg.DashCooldown},
		Ascend:   AbilitySpec{Power: cfg.AscendPower, Duration: cfg.AscendDuration, Cooldown: cfg.AscendCooldown},
		Blink:    BlinkSpec{Enabled: cfg.BlinkEnabled, Distance: cfg.BlinkDistance, Duration: cfg.BlinkDuration, Recovery: cfg.BlinkRecovery},
		Fall:     FallSpec{Gravity: cfg.Gravity, Speed: cfg.FallSpeed},
	}
}

// MarshalMovementConfig renders live tuning in the movement.yaml format.
func MarshalMovementConfig(name string, cfg movement.Config) ([]byte, error) {
	spec := MovementSpecFromConfig(name, cfg)
	data, err := yaml.Marshal(&spec)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal movement config: %w", err)
	}
	return data, nil
}

const PlayerSpecFile = "player.yaml"

type PlayerSpec struct {
	Name      string            `yaml:"name"`
	Transform TransformSpec     `yaml:"transform"`
	Collider  ColliderSpec      `yaml:"collider"`
	Color     YAMLColor         `yaml:"color"`
	Trail     ParticleTrailSpec `yaml:"trail"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type ParticleTrailSpec struct {
	Color          YAMLColor `yaml:"color"`
	IntervalFrames int       `yaml:"interval_frames"`
	LifetimeFrames int       `yaml:"lifetime_frames"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

const LevelSpecFile = "level.yaml"

type LevelSpec struct {
	Name    string       `yaml:"name"`
	Grounds []GroundSpec `yaml:"grounds"`
}

// GroundSpec is a static box. Tag "Ground" marks surfaces that restore the
// dash on contact.
type GroundSpec struct {
	X        float64   `yaml:"x"`
	Y        float64   `yaml:"y"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Friction float64   `yaml:"friction"`
	Tag      string    `yaml:"tag"`
	Color    YAMLColor `yaml:"color"`
}

const GroundTag = "Ground"

func (g GroundSpec) Tagged() bool {
	return strings.EqualFold(g.Tag, GroundTag)
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the color as 8-bit RGBA, or fallback when unset.
func (c YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c.Color == nil {
		return fallback
	}
	r, g, b, a := c.Color.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
