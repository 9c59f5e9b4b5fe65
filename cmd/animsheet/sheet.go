package main

import (
	"errors"
	"image"

	"github.com/milk9111/vecanim/animpool"
)

// buildSheet rasterizes every step-th frame of anim at w x h and lays the
// frames out left to right in rows of cols. The result holds straight
// alpha, matching what the pool uploads.
func buildSheet(anim animpool.Animation, w, h, cols, step int) (*image.NRGBA, int, error) {
	if w <= 0 || h <= 0 {
		return nil, 0, errors.New("animsheet: frame size must be positive")
	}
	total := anim.TotalFrames()
	if total <= 0 {
		return nil, 0, errors.New("animsheet: animation has no frames")
	}
	step = max(step, 1)
	count := (total + step - 1) / step
	if cols <= 0 || cols > count {
		cols = count
	}
	rows := (count + cols - 1) / cols

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*w, rows*h))
	native := make([]byte, w*h*4)
	straight := make([]byte, w*h*4)
	for i := 0; i < count; i++ {
		anim.Render(i*step, native, w, h, w*4)
		animpool.ConvertPixels(straight, native)

		ox, oy := (i%cols)*w, (i/cols)*h
		for y := 0; y < h; y++ {
			dst := sheet.PixOffset(ox, oy+y)
			copy(sheet.Pix[dst:dst+w*4], straight[y*w*4:(y+1)*w*4])
		}
	}
	return sheet, count, nil
}

// frameRects returns the sheet cell of every frame.
func frameRects(count, w, h, cols int) []image.Rectangle {
	if cols <= 0 {
		cols = count
	}
	rects := make([]image.Rectangle, count)
	for i := range rects {
		x, y := (i%cols)*w, (i/cols)*h
		rects[i] = image.Rect(x, y, x+w, y+h)
	}
	return rects
}
