package animpool

import "bytes"

// DrawOptions are the per-call playback flags and target size of a Draw.
type DrawOptions struct {
	Width  int
	Height int
	Loop   bool
	Play   bool
	// FrameRate overrides the animation's native rate when positive.
	FrameRate float64
}

// Draw shows the animation for (content, tag) at the UI cursor. It is meant
// to be called every frame; the first call for an unseen pair creates the
// track and queues its load, later calls refresh the playback flags. Until
// the load drains a blank texture of the requested size is drawn so layout
// stays stable.
func (p *Pool) Draw(content []byte, tag string, opts DrawOptions) {
	st := p.current()
	if st == nil || p.gfx == nil || p.ui == nil || len(content) == 0 {
		return
	}
	size := Size{W: opts.Width, H: opts.Height}
	if !size.Valid() {
		return
	}

	id := Identify(content, tag)
	t, created := st.store.GetOrCreate(id)
	t.Playback.Loop = opts.Loop
	t.Playback.Playing = opts.Play
	t.Playback.FrameRateOverride = opts.FrameRate
	if created {
		// The caller may reuse content before the load drains.
		st.queue.Push(Command{Kind: CommandLoad, ID: id, Content: bytes.Clone(content)})
	}

	x, y := p.ui.Cursor()

	p.ensureTexture(t, size)

	if t.Loaded() {
		t.Animation.Render(t.Playback.Frame, t.native, size.W, size.H, size.W*4)
		ConvertPixels(t.upload, t.native)
		p.uploadTexture(t)
	}

	p.ui.DrawTexture(t.Texture.ID, x, y, size)
}

// ensureTexture reallocates the texture and staging buffers when the
// requested size differs from the current allocation.
func (p *Pool) ensureTexture(t *Track, size Size) {
	if t.Texture.allocated() && t.Texture.Width == size.W && t.Texture.Height == size.H {
		return
	}
	if t.Texture.allocated() {
		p.logger().Debug("animpool: texture resize", "id", t.ID,
			"from_w", t.Texture.Width, "from_h", t.Texture.Height, "to_w", size.W, "to_h", size.H)
	}
	p.releaseTexture(t)

	tex := p.gfx.CreateTexture(size.W, size.H, TextureParams{Filter: FilterLinear, Wrap: WrapClamp})
	t.Texture = Texture{ID: tex, Width: size.W, Height: size.H}

	n := size.W * size.H * 4
	t.native = make([]byte, n)
	t.upload = make([]byte, n)
	t.Playback.Size = size
	t.Playback.TextureInitialized = false
}

func (p *Pool) uploadTexture(t *Track) {
	w, h := t.Texture.Width, t.Texture.Height
	if !t.Playback.TextureInitialized {
		p.gfx.UploadTexture(t.Texture.ID, w, h, t.upload)
		t.Playback.TextureInitialized = true
		return
	}
	p.gfx.UpdateTexture(t.Texture.ID, 0, 0, w, h, t.upload)
}
