package vector

import (
	"math"

	"github.com/gogpu/gg"
)

func (a *Animation) draw(dc *gg.Context, frame int, sx, sy float64) {
	dc.Identity()
	if a.doc.background != nil {
		dc.ClearWithColor(*a.doc.background)
	} else {
		dc.Clear()
	}

	env := a.env(frame)
	dc.Push()
	dc.Scale(sx, sy)
	for i := range a.doc.Layers {
		l := &a.doc.Layers[i]
		if !l.visible(frame) {
			continue
		}
		drawLayer(dc, l, env)
	}
	dc.Pop()
}

func drawLayer(dc *gg.Context, l *Layer, env Env) {
	opacity := math.Max(0, math.Min(1, l.Opacity.At(env, 1)))
	if opacity == 0 {
		return
	}
	scale := l.Scale.At(env, 1)
	if scale == 0 {
		return
	}

	dc.Push()
	defer dc.Pop()
	dc.Translate(l.X.At(env, 0), l.Y.At(env, 0))
	if rot := l.Rotation.At(env, 0); rot != 0 {
		dc.Rotate(rot * math.Pi / 180)
	}
	dc.Scale(scale, scale)

	dc.ClearPath()
	if !tracePath(dc, l, env) {
		return
	}

	fill := l.fill != nil && l.Shape != ShapeLine && (l.Shape != ShapePath || l.Closed)
	if fill {
		c := *l.fill
		dc.SetRGBA(c.R, c.G, c.B, c.A*opacity)
		_ = dc.FillPreserve()
	}
	if l.stroke != nil {
		if w := l.StrokeWidth.At(env, 1); w > 0 {
			c := *l.stroke
			dc.SetRGBA(c.R, c.G, c.B, c.A*opacity)
			dc.SetLineWidth(w)
			_ = dc.StrokePreserve()
		}
	}
	dc.ClearPath()
}

// tracePath builds the layer's outline around the origin. It reports false
// when the shape has no area to draw.
func tracePath(dc *gg.Context, l *Layer, env Env) bool {
	switch l.Shape {
	case ShapeRect:
		w, h := l.W.At(env, 0), l.H.At(env, 0)
		if w <= 0 || h <= 0 {
			return false
		}
		dc.DrawRectangle(-w/2, -h/2, w, h)
	case ShapeRoundedRect:
		w, h := l.W.At(env, 0), l.H.At(env, 0)
		if w <= 0 || h <= 0 {
			return false
		}
		r := math.Min(l.R.At(env, 0), math.Min(w, h)/2)
		dc.DrawRoundedRectangle(-w/2, -h/2, w, h, math.Max(r, 0))
	case ShapeCircle:
		r := l.R.At(env, 0)
		if r <= 0 {
			return false
		}
		dc.DrawCircle(0, 0, r)
	case ShapeEllipse:
		w, h := l.W.At(env, 0), l.H.At(env, 0)
		if w <= 0 || h <= 0 {
			return false
		}
		dc.DrawEllipse(0, 0, w/2, h/2)
	case ShapePolygon:
		r := l.R.At(env, 0)
		if r <= 0 {
			return false
		}
		dc.DrawRegularPolygon(l.Sides, 0, 0, r, 0)
	case ShapeStar:
		r := l.R.At(env, 0)
		if r <= 0 {
			return false
		}
		inner := r * l.Inner.At(env, 0.5)
		n := l.Sides * 2
		for i := 0; i < n; i++ {
			rad := r
			if i%2 == 1 {
				rad = inner
			}
			angle := -math.Pi/2 + float64(i)*math.Pi/float64(l.Sides)
			x, y := rad*math.Cos(angle), rad*math.Sin(angle)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	case ShapeLine, ShapePath:
		for i, pt := range l.Points {
			if i == 0 {
				dc.MoveTo(pt[0], pt[1])
			} else {
				dc.LineTo(pt[0], pt[1])
			}
		}
		if l.Shape == ShapePath && l.Closed {
			dc.ClosePath()
		}
	default:
		return false
	}
	return true
}
