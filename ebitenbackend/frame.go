package ebitenbackend

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vecanim/animpool"
)

// MaxDelta caps the time reported for a single frame so a stalled window
// does not fast-forward every animation on its next frame.
const MaxDelta = 0.25

// StraightAlpha blends non-premultiplied source pixels over the screen.
// Textures written by the pool carry straight alpha while ebiten's default
// blend expects premultiplied input.
var StraightAlpha = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorSourceAlpha,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Frame implements animpool.UI for one ebiten Draw call at a time. Call
// Begin at the start of every Draw; textures are laid out left to right
// from the origin until NewLine moves the cursor down.
type Frame struct {
	gfx *Graphics
	now func() time.Time

	screen *ebiten.Image
	last   time.Time
	dt     float64

	originX, originY float64
	x, y             float64
	lineHeight       float64

	// Spacing is the gap left after each drawn texture and between lines.
	Spacing float64
}

// NewFrame creates a UI frame drawing textures owned by gfx.
func NewFrame(gfx *Graphics) *Frame {
	return &Frame{gfx: gfx, now: time.Now, Spacing: 8}
}

// SetClock replaces the time source.
func (f *Frame) SetClock(now func() time.Time) {
	if now != nil {
		f.now = now
	}
}

// SetOrigin moves where each frame's layout starts.
func (f *Frame) SetOrigin(x, y float64) {
	f.originX, f.originY = x, y
}

// Begin starts a UI frame on screen. The first frame reports no elapsed
// time.
func (f *Frame) Begin(screen *ebiten.Image) {
	now := f.now()
	f.dt = 0
	if !f.last.IsZero() {
		f.dt = min(max(now.Sub(f.last).Seconds(), 0), MaxDelta)
	}
	f.last = now
	f.screen = screen
	f.x, f.y = f.originX, f.originY
	f.lineHeight = 0
}

func (f *Frame) DeltaTime() float64 { return f.dt }

func (f *Frame) Cursor() (x, y float64) { return f.x, f.y }

// SetCursor places the next item at (x, y) and starts a new row there.
func (f *Frame) SetCursor(x, y float64) {
	f.x, f.y = x, y
	f.lineHeight = 0
}

// NewLine moves the cursor below the tallest item of the current row.
func (f *Frame) NewLine() {
	f.x = f.originX
	if f.lineHeight > 0 {
		f.y += f.lineHeight + f.Spacing
	}
	f.lineHeight = 0
}

// DrawTexture draws id stretched to size with its top-left at (x, y) and
// advances the cursor past it.
func (f *Frame) DrawTexture(id animpool.TextureID, x, y float64, size animpool.Size) {
	if !size.Valid() {
		return
	}
	if img := f.gfx.Image(id); img != nil && f.screen != nil {
		params, _ := f.gfx.Params(id)
		filter, repeat := sampling(params)
		if repeat {
			// DrawImage always clamps to the source bounds; only triangles
			// can address outside them.
			f.screen.DrawTriangles(quadVertices(img.Bounds(), x, y, size), quadIndices, img, &ebiten.DrawTrianglesOptions{
				Blend:   StraightAlpha,
				Filter:  filter,
				Address: ebiten.AddressRepeat,
			})
		} else {
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{Blend: StraightAlpha, Filter: filter}
			op.GeoM.Scale(float64(size.W)/float64(b.Dx()), float64(size.H)/float64(b.Dy()))
			op.GeoM.Translate(x, y)
			f.screen.DrawImage(img, op)
		}
	}

	f.x = x + float64(size.W) + f.Spacing
	f.y = y
	f.lineHeight = max(f.lineHeight, float64(size.H))
}

// sampling maps texture params onto ebiten. repeat reports that the quad
// must be drawn as triangles with repeat addressing.
func sampling(p animpool.TextureParams) (filter ebiten.Filter, repeat bool) {
	filter = ebiten.FilterNearest
	if p.Filter == animpool.FilterLinear {
		filter = ebiten.FilterLinear
	}
	return filter, p.Wrap == animpool.WrapRepeat
}

var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// quadVertices maps the source rectangle src onto size at (x, y), in the
// order top-left, top-right, bottom-left, bottom-right.
func quadVertices(src image.Rectangle, x, y float64, size animpool.Size) []ebiten.Vertex {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+float64(size.W)), float32(y+float64(size.H))
	sx0, sy0 := float32(src.Min.X), float32(src.Min.Y)
	sx1, sy1 := float32(src.Max.X), float32(src.Max.Y)
	v := func(dx, dy, sx, sy float32) ebiten.Vertex {
		return ebiten.Vertex{DstX: dx, DstY: dy, SrcX: sx, SrcY: sy, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	}
	return []ebiten.Vertex{
		v(x0, y0, sx0, sy0),
		v(x1, y0, sx1, sy0),
		v(x0, y1, sx0, sy1),
		v(x1, y1, sx1, sy1),
	}
}
