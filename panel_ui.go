package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

type panel struct {
	status *widget.Text
	state  *widget.Text
}

// refresh mirrors the current selection into the panel labels.
func (p *panel) refresh(g *Game) {
	if p == nil {
		return
	}
	e := g.selectedEntry()
	if e == nil {
		p.status.Label = "no animations"
		p.state.Label = ""
		return
	}
	p.status.Label = fmt.Sprintf("%d/%d %s", g.selected+1, len(g.entries), e.label())
	state := "paused"
	if e.opts.Play {
		state = "playing"
	}
	if info, ok := g.pool.Info(e.load(), e.cfg.Tag); ok {
		state = fmt.Sprintf("%s  frame %d/%d", state, info.Frame, info.TotalFrames)
	}
	p.state.Label = state
}

// newPanelUI builds the control panel docked at the top right.
func newPanelUI(g *Game) (*ebitenui.UI, *panel) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white, Hover: white, Pressed: white}
	stretch := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})

	text := func(label string) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(label, &face, white),
			widget.TextOpts.WidgetOpts(stretch),
		)
	}
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(stretch, widget.WidgetOpts.MinSize(0, 24)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	p := &panel{status: text(""), state: text("")}

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	box.AddChild(text("vecanim"))
	box.AddChild(p.status)
	box.AddChild(p.state)
	box.AddChild(button("< Prev", func() { g.selectNext(-1) }))
	box.AddChild(button("Next >", func() { g.selectNext(1) }))
	box.AddChild(button("Play / Pause", g.toggleSelected))
	box.AddChild(button("Restart", g.restartSelected))
	box.AddChild(button("Discard", g.discardSelected))
	if g.clipboard {
		box.AddChild(button("Copy ID", func() {
			id, ok := g.selectedID()
			if !ok {
				return
			}
			clipboard.Write(clipboard.FmtText, []byte(id.String()))
			log.Printf("viewer: copied %s", id)
		}))
	}
	box.AddChild(button("Play all", func() { g.setAllPlaying(true) }))
	box.AddChild(button("Pause all", func() { g.setAllPlaying(false) }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(box)

	p.refresh(g)
	return &ebitenui.UI{Container: root}, p
}
