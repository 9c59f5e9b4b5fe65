package vector

import (
	"bytes"
	"testing"

	"github.com/milk9111/vecanim/animpool"
)

var _ animpool.Decoder = (*Decoder)(nil)
var _ animpool.Animation = (*Animation)(nil)

func loadAnimation(t *testing.T, src string) *Animation {
	t.Helper()
	anim, err := NewDecoder().Load([]byte(src))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return anim.(*Animation)
}

func pixelAt(buf []byte, stride, x, y int) [4]byte {
	o := y*stride + x*4
	return [4]byte{buf[o], buf[o+1], buf[o+2], buf[o+3]}
}

func within(a, b byte, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

// opaque reports whether px is the fully covered BGRA color want, allowing
// one step of antialiasing error.
func opaque(px, want [4]byte) bool {
	for i := range px {
		if !within(px[i], want[i], 1) {
			return false
		}
	}
	return true
}

var red = [4]byte{0, 0, 255, 255}

func TestDecoderLoad(t *testing.T) {
	anim := loadAnimation(t, squareDoc)
	if anim.FrameRate() != 20 || anim.TotalFrames() != 40 || anim.Duration() != 2 {
		t.Fatalf("unexpected timing %v fps %d frames %vs", anim.FrameRate(), anim.TotalFrames(), anim.Duration())
	}
	if anim.Document().Name != "square" {
		t.Fatalf("expected document name square, got %q", anim.Document().Name)
	}

	if _, err := NewDecoder().Load(nil); err == nil {
		t.Fatalf("expected empty content to fail")
	}
	if _, err := NewDecoder().Load([]byte("not: [valid")); err == nil {
		t.Fatalf("expected malformed content to fail")
	}
}

func TestRenderFillsBGRA(t *testing.T) {
	anim := loadAnimation(t, squareDoc)
	const w, h = 10, 10
	buf := make([]byte, w*h*4)
	anim.Render(0, buf, w, h, w*4)

	for _, pt := range [][2]int{{5, 5}, {2, 7}, {8, 1}} {
		if got := pixelAt(buf, w*4, pt[0], pt[1]); !opaque(got, red) {
			t.Fatalf("pixel %v: expected %v, got %v", pt, red, got)
		}
	}
}

func TestRenderScalesToRequestedSize(t *testing.T) {
	anim := loadAnimation(t, squareDoc)
	buf := make([]byte, 20*10*4)
	anim.Render(0, buf, 20, 10, 20*4)
	if got := pixelAt(buf, 20*4, 18, 5); !opaque(got, red) {
		t.Fatalf("stretched square should cover the whole target, got %v", got)
	}

	// Back to the original size reuses the same animation.
	small := make([]byte, 4*4*4)
	anim.Render(3, small, 4, 4, 4*4)
	if got := pixelAt(small, 4*4, 1, 1); !opaque(got, red) {
		t.Fatalf("expected red after resize, got %v", got)
	}
}

func TestRenderRespectsStride(t *testing.T) {
	anim := loadAnimation(t, squareDoc)
	const w, h, stride = 4, 3, 24
	buf := bytes.Repeat([]byte{0xAA}, stride*h)
	anim.Render(0, buf, w, h, stride)

	for y := 0; y < h; y++ {
		if got := pixelAt(buf, stride, w-1, y); !opaque(got, red) {
			t.Fatalf("row %d: expected red, got %v", y, got)
		}
		for _, b := range buf[y*stride+w*4 : (y+1)*stride] {
			if b != 0xAA {
				t.Fatalf("row %d: padding was overwritten", y)
			}
		}
	}
}

func TestRenderRejectsBadTargets(t *testing.T) {
	anim := loadAnimation(t, squareDoc)
	cases := []struct {
		name                 string
		size                 int
		width, height, stride int
	}{
		{"short_buffer", 10, 4, 4, 16},
		{"narrow_stride", 64, 4, 4, 8},
		{"zero_width", 64, 0, 4, 16},
		{"negative_height", 64, 4, -1, 16},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := bytes.Repeat([]byte{0x11}, c.size)
			anim.Render(0, buf, c.width, c.height, c.stride)
			if !bytes.Equal(buf, bytes.Repeat([]byte{0x11}, c.size)) {
				t.Fatalf("buffer should be untouched")
			}
		})
	}
}

func TestRenderClampsFrame(t *testing.T) {
	anim := loadAnimation(t, `
width: 4
height: 4
frames: 10
layers:
  - shape: rect
    x: 2
    y: 2
    w: 4
    h: 4
    fill: "#00ff00"
    in: 9
`)
	buf := make([]byte, 4*4*4)

	anim.Render(-5, buf, 4, 4, 16)
	if got := pixelAt(buf, 16, 2, 2); got != [4]byte{} {
		t.Fatalf("frame -5 should clamp to 0 and be empty, got %v", got)
	}
	anim.Render(500, buf, 4, 4, 16)
	if got := pixelAt(buf, 16, 2, 2); !opaque(got, [4]byte{0, 255, 0, 255}) {
		t.Fatalf("frame 500 should clamp to the last frame, got %v", got)
	}
}

func TestRenderTransparencyIsPremultiplied(t *testing.T) {
	anim := loadAnimation(t, `
width: 8
height: 8
frames: 1
layers:
  - shape: rect
    x: 4
    y: 4
    w: 8
    h: 8
    fill: "#ff0000"
    opacity: 0.5
`)
	buf := make([]byte, 8*8*4)
	anim.Render(0, buf, 8, 8, 32)

	px := pixelAt(buf, 32, 4, 4)
	if px[0] != 0 || px[1] != 0 || !within(px[3], 128, 2) || !within(px[2], px[3], 1) {
		t.Fatalf("expected half-transparent premultiplied red, got %v", px)
	}
}

func TestRenderBackground(t *testing.T) {
	anim := loadAnimation(t, `
width: 8
height: 8
frames: 2
background: "#0000ff"
layers:
  - shape: circle
    x: 4
    y: 4
    r: 1
    fill: "#ffffff"
`)
	buf := make([]byte, 8*8*4)
	anim.Render(0, buf, 8, 8, 32)
	if got := pixelAt(buf, 32, 0, 0); !opaque(got, [4]byte{255, 0, 0, 255}) {
		t.Fatalf("corner should show the blue background, got %v", got)
	}
}
