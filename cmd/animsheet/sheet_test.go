package main

import (
	"image"
	"testing"
)

// solidAnimation fills every pixel with premultiplied BGRA whose blue
// channel is the frame index.
type solidAnimation struct {
	frames   int
	rendered []int
}

func (a *solidAnimation) FrameRate() float64 { return 10 }

func (a *solidAnimation) TotalFrames() int { return a.frames }

func (a *solidAnimation) Duration() float64 { return float64(a.frames) / 10 }

func (a *solidAnimation) Render(frame int, dst []byte, width, height, stride int) {
	a.rendered = append(a.rendered, frame)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := y*stride + x*4
			dst[o], dst[o+1], dst[o+2], dst[o+3] = byte(frame), 0, 0, 255
		}
	}
}

func TestBuildSheetLayout(t *testing.T) {
	cases := []struct {
		name      string
		frames    int
		cols      int
		step      int
		wantCount int
		wantSize  image.Point
	}{
		{"one_row", 4, 0, 1, 4, image.Pt(8, 2)},
		{"wrapped", 5, 2, 1, 5, image.Pt(4, 6)},
		{"stepped", 10, 8, 3, 4, image.Pt(8, 2)},
		{"cols_capped", 3, 8, 1, 3, image.Pt(6, 2)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anim := &solidAnimation{frames: c.frames}
			sheet, count, err := buildSheet(anim, 2, 2, c.cols, c.step)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if count != c.wantCount {
				t.Fatalf("expected %d frames, got %d", c.wantCount, count)
			}
			if got := sheet.Bounds().Size(); got != c.wantSize {
				t.Fatalf("expected size %v, got %v", c.wantSize, got)
			}
		})
	}
}

func TestBuildSheetPixels(t *testing.T) {
	anim := &solidAnimation{frames: 6}
	sheet, count, err := buildSheet(anim, 2, 2, 3, 2)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if want := []int{0, 2, 4}; len(anim.rendered) != len(want) || anim.rendered[1] != 2 || anim.rendered[2] != 4 {
		t.Fatalf("expected frames %v rendered, got %v", want, anim.rendered)
	}

	rects := frameRects(count, 2, 2, 3)
	for i, r := range rects {
		c := sheet.NRGBAAt(r.Min.X+1, r.Min.Y+1)
		if c.B != byte(i*2) || c.A != 255 || c.R != 0 {
			t.Fatalf("frame %d: unexpected pixel %v", i, c)
		}
	}
}

func TestBuildSheetErrors(t *testing.T) {
	if _, _, err := buildSheet(&solidAnimation{frames: 0}, 2, 2, 1, 1); err == nil {
		t.Fatalf("expected error for empty animation")
	}
	if _, _, err := buildSheet(&solidAnimation{frames: 2}, 0, 2, 1, 1); err == nil {
		t.Fatalf("expected error for empty frame size")
	}
}
