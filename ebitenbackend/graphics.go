// Package ebitenbackend connects animpool to ebiten: textures live in
// ebiten images and the UI cursor flows across the screen image handed to
// each frame.
package ebitenbackend

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vecanim/animpool"
)

// pixelImage is the part of *ebiten.Image the texture writes go through.
type pixelImage interface {
	Bounds() image.Rectangle
	WritePixels(pix []byte)
	SubImage(r image.Rectangle) image.Image
	Deallocate()
}

type texture struct {
	img    pixelImage
	params animpool.TextureParams
}

// Graphics implements animpool.Graphics on ebiten images. Like ebiten
// itself it is used from the game goroutine only.
type Graphics struct {
	next     animpool.TextureID
	textures map[animpool.TextureID]*texture
	newImage func(width, height int) pixelImage
}

func NewGraphics() *Graphics {
	return &Graphics{
		textures: map[animpool.TextureID]*texture{},
		newImage: func(width, height int) pixelImage {
			return ebiten.NewImage(width, height)
		},
	}
}

func (g *Graphics) CreateTexture(width, height int, params animpool.TextureParams) animpool.TextureID {
	if g == nil || width <= 0 || height <= 0 {
		return 0
	}
	g.next++
	g.textures[g.next] = &texture{img: g.newImage(width, height), params: params}
	return g.next
}

// UploadTexture replaces the whole image. pix holds width*height RGBA
// pixels; the image is reallocated when its bounds no longer match.
func (g *Graphics) UploadTexture(id animpool.TextureID, width, height int, pix []byte) {
	tex := g.lookup(id)
	if tex == nil || width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return
	}
	b := tex.img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		tex.img.Deallocate()
		tex.img = g.newImage(width, height)
	}
	tex.img.WritePixels(pix[:width*height*4])
}

// UpdateTexture writes a sub-rectangle. Regions outside the image are
// ignored.
func (g *Graphics) UpdateTexture(id animpool.TextureID, x, y, width, height int, pix []byte) {
	tex := g.lookup(id)
	if tex == nil || width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return
	}
	rect := image.Rect(x, y, x+width, y+height)
	if !rect.In(tex.img.Bounds()) {
		return
	}
	sub, ok := tex.img.SubImage(rect).(pixelImage)
	if !ok {
		return
	}
	sub.WritePixels(pix[:width*height*4])
}

func (g *Graphics) DeleteTexture(id animpool.TextureID) {
	tex := g.lookup(id)
	if tex == nil {
		return
	}
	tex.img.Deallocate()
	delete(g.textures, id)
}

// Image returns the ebiten image behind id, or nil.
func (g *Graphics) Image(id animpool.TextureID) *ebiten.Image {
	if tex := g.lookup(id); tex != nil {
		img, _ := tex.img.(*ebiten.Image)
		return img
	}
	return nil
}

// Params returns the parameters id was created with.
func (g *Graphics) Params(id animpool.TextureID) (animpool.TextureParams, bool) {
	if tex := g.lookup(id); tex != nil {
		return tex.params, true
	}
	return animpool.TextureParams{}, false
}

// Len returns the number of live textures.
func (g *Graphics) Len() int {
	if g == nil {
		return 0
	}
	return len(g.textures)
}

func (g *Graphics) lookup(id animpool.TextureID) *texture {
	if g == nil || id == 0 {
		return nil
	}
	return g.textures[id]
}
