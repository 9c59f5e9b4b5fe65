// Command animsheet renders a vector animation into a PNG sprite sheet and
// can preview the result in a window.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vecanim/library"
	"github.com/milk9111/vecanim/vector"
)

type previewGame struct {
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	fw := g.frames[0].Bounds().Dx()
	fh := g.frames[0].Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((512-fw)/2), float64((512-fh)/2))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.frames[g.current], op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 512, 512
}

func main() {
	in := flag.String("in", "", "animation file or embedded animation name")
	out := flag.String("out", "sheet.png", "output PNG path")
	width := flag.Int("w", 64, "frame width in pixels")
	height := flag.Int("h", 64, "frame height in pixels")
	cols := flag.Int("cols", 8, "frames per row (0 puts every frame in one row)")
	step := flag.Int("step", 1, "render every n-th frame")
	preview := flag.Bool("preview", false, "play the sheet in a window after writing it")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		data, err = library.New("").Load(*in)
		if err != nil {
			log.Fatalf("read %s: %v", *in, err)
		}
	}

	doc, err := vector.Parse(data)
	if err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}
	anim := vector.NewAnimation(doc)

	sheet, count, err := buildSheet(anim, *width, *height, *cols, *step)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, sheet); err != nil {
		_ = f.Close()
		log.Fatalf("encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d frames of %dx%d", *out, count, *width, *height)

	if !*preview {
		return
	}

	frameCols := *cols
	if frameCols <= 0 || frameCols > count {
		frameCols = count
	}
	var frames []*ebiten.Image
	for _, r := range frameRects(count, *width, *height, frameCols) {
		frames = append(frames, ebiten.NewImageFromImage(sheet.SubImage(r).(image.Image)))
	}
	ticks := 1
	if fps := doc.FPS / float64(max(*step, 1)); fps > 0 {
		ticks = max(int(60/fps), 1)
	}

	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowTitle("animsheet: " + doc.Name)
	if err := ebiten.RunGame(&previewGame{frames: frames, ticksPerFrm: ticks}); err != nil {
		log.Fatal(err)
	}
}
