package animpool

import (
	"errors"
	"strconv"
)

type fakeAnimation struct {
	fps      float64
	frames   int
	duration float64
	renders  []int // frame index of every Render call
	pixel    [4]byte
}

func (a *fakeAnimation) FrameRate() float64 { return a.fps }
func (a *fakeAnimation) TotalFrames() int   { return a.frames }
func (a *fakeAnimation) Duration() float64  { return a.duration }

func (a *fakeAnimation) Render(frame int, dst []byte, width, height, stride int) {
	a.renders = append(a.renders, frame)
	for y := 0; y < height; y++ {
		row := dst[y*stride:]
		for x := 0; x < width; x++ {
			copy(row[x*4:x*4+4], a.pixel[:])
		}
	}
}

// fakeDecoder parses content of the form "frames:duration", e.g. "8:0.25".
type fakeDecoder struct {
	loads int
	anims []*fakeAnimation
}

func (d *fakeDecoder) Load(content []byte) (Animation, error) {
	d.loads++
	if len(content) == 0 {
		return nil, errors.New("empty content")
	}
	frames, duration, err := parseFake(string(content))
	if err != nil {
		return nil, err
	}
	a := &fakeAnimation{frames: frames, duration: duration, pixel: [4]byte{32, 64, 64, 128}}
	if duration > 0 {
		a.fps = float64(frames) / duration
	}
	d.anims = append(d.anims, a)
	return a, nil
}

func parseFake(s string) (int, float64, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		frames, err := strconv.Atoi(s[:i])
		if err != nil {
			return 0, 0, err
		}
		duration, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil {
			return 0, 0, err
		}
		return frames, duration, nil
	}
	return 0, 0, errors.New("malformed")
}

type fakeTexture struct {
	width, height int
	params        TextureParams
	fullUploads   int
	partial       int
	pix           []byte
}

type fakeGraphics struct {
	next     TextureID
	textures map[TextureID]*fakeTexture
	created  int
	deleted  int
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{textures: map[TextureID]*fakeTexture{}}
}

func (g *fakeGraphics) CreateTexture(width, height int, params TextureParams) TextureID {
	g.next++
	g.created++
	g.textures[g.next] = &fakeTexture{width: width, height: height, params: params}
	return g.next
}

func (g *fakeGraphics) UploadTexture(id TextureID, width, height int, pix []byte) {
	t, ok := g.textures[id]
	if !ok {
		return
	}
	t.fullUploads++
	t.width, t.height = width, height
	t.pix = append(t.pix[:0], pix...)
}

func (g *fakeGraphics) UpdateTexture(id TextureID, x, y, width, height int, pix []byte) {
	t, ok := g.textures[id]
	if !ok {
		return
	}
	t.partial++
	t.pix = append(t.pix[:0], pix...)
}

func (g *fakeGraphics) DeleteTexture(id TextureID) {
	if _, ok := g.textures[id]; ok {
		g.deleted++
		delete(g.textures, id)
	}
}

type drawCall struct {
	id   TextureID
	x, y float64
	size Size
}

type fakeUI struct {
	dt    float64
	x, y  float64
	draws []drawCall
}

func (u *fakeUI) DeltaTime() float64 { return u.dt }

func (u *fakeUI) Cursor() (float64, float64) { return u.x, u.y }

func (u *fakeUI) DrawTexture(id TextureID, x, y float64, size Size) {
	u.draws = append(u.draws, drawCall{id: id, x: x, y: y, size: size})
}

type harness struct {
	pool *Pool
	dec  *fakeDecoder
	gfx  *fakeGraphics
	ui   *fakeUI
}

func newHarness(opts ...Option) *harness {
	h := &harness{dec: &fakeDecoder{}, gfx: newFakeGraphics(), ui: &fakeUI{}}
	h.pool = New(h.dec, h.gfx, h.ui, opts...)
	h.pool.Init()
	return h
}

// syncFor runs Sync n times with a fixed delta.
func (h *harness) syncFor(n int, dt float64) {
	h.ui.dt = dt
	for i := 0; i < n; i++ {
		h.pool.Sync()
	}
}
