package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/milk9111/momentum/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type pauseButtons struct {
	hover *widget.Button
	blink *widget.Button
}

func (b *pauseButtons) refresh(t *tuning) {
	snap := t.controller.Snapshot()
	b.hover.Text().Label = toggleLabel("Hover", snap.Hovering)
	b.blink.Text().Label = toggleLabel("Blink", t.controller.Config().BlinkEnabled)
}

func toggleLabel(name string, on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return fmt.Sprintf("%s: %s", name, state)
}

// NewPauseUI builds a centered pause menu: resume, hover and blink toggles,
// and quit. Buttons use colored nine-slices and the built-in basic font.
func NewPauseUI(g *Game) (*ebitenui.UI, *pauseButtons) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	buttons := &pauseButtons{}
	resumeBtn := newButton("Resume", func() {
		g.setPaused(false)
	})
	buttons.hover = newButton(toggleLabel("Hover", false), func() {
		on := g.tuning.toggleHover()
		buttons.hover.Text().Label = toggleLabel("Hover", on)
	})
	buttons.blink = newButton(toggleLabel("Blink", true), func() {
		on, err := g.tuning.toggleBlink()
		if err != nil {
			log.Printf("pause: toggle blink: %v", err)
		}
		buttons.blink.Text().Label = toggleLabel("Blink", on)
	})
	quitBtn := newButton("Quit", func() {
		g.Close()
		os.Exit(0)
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(buttons.hover)
	panel.AddChild(buttons.blink)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	buttons.refresh(g.tuning)
	return &ebitenui.UI{Container: root}, buttons
}
