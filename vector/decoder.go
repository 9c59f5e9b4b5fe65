// Package vector decodes and rasterizes the YAML/JSON vector animation
// format played by animpool. Frames are drawn with gg's software
// rasterizer at whatever size the caller asks for.
package vector

import (
	"github.com/gogpu/gg"
	"github.com/milk9111/vecanim/animpool"
)

// Decoder implements animpool.Decoder.
type Decoder struct{}

// NewDecoder creates a decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Load parses content into an Animation.
func (d *Decoder) Load(content []byte) (animpool.Animation, error) {
	doc, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return NewAnimation(doc), nil
}

// Animation is a decoded document plus the drawing context it renders with.
// Render reuses that context, so an Animation is used from one goroutine.
type Animation struct {
	doc *Document
	dc  *gg.Context
}

// NewAnimation wraps a parsed document.
func NewAnimation(doc *Document) *Animation {
	return &Animation{doc: doc}
}

// Document returns the parsed document.
func (a *Animation) Document() *Document { return a.doc }

func (a *Animation) FrameRate() float64 { return a.doc.FPS }

func (a *Animation) TotalFrames() int { return a.doc.Frames }

func (a *Animation) Duration() float64 { return a.doc.Duration }

// Render draws frame into dst as premultiplied B-G-R-A rows of stride
// bytes, stretching the document to width x height. Out-of-range frames are
// clamped; undersized buffers are left untouched.
func (a *Animation) Render(frame int, dst []byte, width, height, stride int) {
	if a == nil || a.doc == nil || width <= 0 || height <= 0 || stride < width*4 {
		return
	}
	if len(dst) < stride*(height-1)+width*4 {
		return
	}
	frame = min(max(frame, 0), a.doc.Frames-1)

	dc := a.context(width, height)
	a.draw(dc, frame, float64(width)/a.doc.Width, float64(height)/a.doc.Height)
	readBGRA(dc, dst, width, height, stride)
}

func (a *Animation) context(width, height int) *gg.Context {
	if a.dc == nil {
		a.dc = gg.NewContext(width, height)
		return a.dc
	}
	if a.dc.Width() != width || a.dc.Height() != height {
		if err := a.dc.Resize(width, height); err != nil {
			a.dc = gg.NewContext(width, height)
		}
	}
	return a.dc
}

func (a *Animation) env(frame int) Env {
	env := Env{Frame: float64(frame), Time: float64(frame) / a.doc.FPS}
	if a.doc.Frames > 1 {
		env.Progress = float64(frame) / float64(a.doc.Frames-1)
	}
	return env
}

// readBGRA copies the context's pixels into dst, premultiplying through the
// color model the pixmap reports.
func readBGRA(dc *gg.Context, dst []byte, width, height, stride int) {
	_ = dc.FlushGPU()
	pm := dc.ResizeTarget()
	for y := 0; y < height; y++ {
		row := dst[y*stride:]
		for x := 0; x < width; x++ {
			r, g, b, al := pm.At(x, y).RGBA()
			o := x * 4
			row[o] = byte(b >> 8)
			row[o+1] = byte(g >> 8)
			row[o+2] = byte(r >> 8)
			row[o+3] = byte(al >> 8)
		}
	}
}
