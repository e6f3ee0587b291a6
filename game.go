package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/ecs/system"
	"github.com/milk9111/momentum/movement"
	"github.com/milk9111/momentum/prefabs"
	"github.com/milk9111/momentum/script"
	"github.com/milk9111/momentum/sim"
	"golang.design/x/clipboard"
)

var backgroundColor = color.RGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}

type Options struct {
	Debug   bool
	Script  string
	NoBlink bool
}

type Game struct {
	frames int
	debug  bool

	sim    *sim.Simulation
	hud    *system.HUDSystem
	render *system.RenderSystem

	tuning       *tuning
	watcher      *prefabs.Watcher
	clipboardOK  bool
	paused       bool
	pauseUI      *ebitenui.UI
	pauseButtons *pauseButtons
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := sim.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.NoBlink {
		cfg.BlinkEnabled = false
	}

	var source system.InputSource
	if opts.Script != "" {
		src, err := script.Load(opts.Script)
		if err != nil {
			return nil, err
		}
		source = src
	}

	s, err := sim.New(sim.Options{
		Config: cfg,
		Input:  system.NewInputSystem(1.0/common.TPS, source),
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  opts.Debug,
		sim:    s,
		hud:    system.NewHUDSystem(),
		render: system.NewRenderSystem(),
		tuning: &tuning{controller: s.Controller(), noBlink: opts.NoBlink},
	}

	if w, err := prefabs.NewWatcher(prefabs.DiskDir()); err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: F2 export disabled: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.pauseUI, g.pauseButtons = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.exportTuning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.sim.Update(1.0 / common.TPS)
	g.hud.Update(g.sim.World)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.sim.World, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.sim.Physics().World().Space(), g.render.View(g.sim.World), screen)
		system.DrawPlayerStateDebug(g.sim.World, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Ticks: %d", g.frames, ebiten.ActualFPS(), g.sim.Ticks()), 10, common.BaseHeight-20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused && g.pauseButtons != nil {
		g.pauseButtons.refresh(g.tuning)
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !prefabs.IsMovementSpec(name) {
				continue
			}
			if err := g.tuning.reload(); err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			log.Printf("prefabs: reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) exportTuning() {
	if !g.clipboardOK {
		return
	}
	data, err := g.tuning.export()
	if err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("clipboard: copied movement tuning")
}

// tuning applies live changes to the player's movement config.
type tuning struct {
	controller *movement.Controller
	noBlink    bool
}

func (t *tuning) reload() error {
	cfg, err := sim.LoadConfig()
	if err != nil {
		return err
	}
	if t.noBlink {
		cfg.BlinkEnabled = false
	}
	return t.controller.SetConfig(cfg)
}

func (t *tuning) export() ([]byte, error) {
	return prefabs.MarshalMovementConfig("live", t.controller.Config())
}

func (t *tuning) toggleHover() bool {
	on := !t.controller.Snapshot().Hovering
	t.controller.SetHovering(on)
	return on
}

func (t *tuning) toggleBlink() (bool, error) {
	cfg := t.controller.Config()
	cfg.BlinkEnabled = !cfg.BlinkEnabled
	if err := t.controller.SetConfig(cfg); err != nil {
		return !cfg.BlinkEnabled, err
	}
	t.noBlink = !cfg.BlinkEnabled
	return cfg.BlinkEnabled, nil
}
