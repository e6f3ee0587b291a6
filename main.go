package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/momentum/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay (toggle with F3)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scriptName := flag.String("script", "", "drive the player from prefabs/scripts/<name>.tengo")
	noBlink := flag.Bool("no-blink", false, "build without the blink ability")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("momentum")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Debug:   *debug,
		Script:  *scriptName,
		NoBlink: *noBlink,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
