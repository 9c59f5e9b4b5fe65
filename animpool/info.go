package animpool

// TrackInfo is a read-only snapshot of a track.
type TrackInfo struct {
	ID                 ID
	Loaded             bool
	Playing            bool
	Loop               bool
	Frame              int
	TotalFrames        int
	FrameRate          float64 // effective rate
	Width              int
	Height             int
	TextureInitialized bool
}

func (t *Track) info() TrackInfo {
	return TrackInfo{
		ID:                 t.ID,
		Loaded:             t.Loaded(),
		Playing:            t.Playback.Playing,
		Loop:               t.Playback.Loop,
		Frame:              t.Playback.Frame,
		TotalFrames:        t.Playback.TotalFrames,
		FrameRate:          t.EffectiveFrameRate(),
		Width:              t.Texture.Width,
		Height:             t.Texture.Height,
		TextureInitialized: t.Playback.TextureInitialized,
	}
}

// Info returns a snapshot of the track for (content, tag). Render
// goroutine only.
func (p *Pool) Info(content []byte, tag string) (TrackInfo, bool) {
	st := p.current()
	if st == nil {
		return TrackInfo{}, false
	}
	t, ok := st.store.Get(Identify(content, tag))
	if !ok {
		return TrackInfo{}, false
	}
	return t.info(), true
}

// Tracks returns snapshots of every track ordered by ID. Render goroutine
// only.
func (p *Pool) Tracks() []TrackInfo {
	st := p.current()
	if st == nil {
		return nil
	}
	ids := st.store.IDs()
	out := make([]TrackInfo, 0, len(ids))
	for _, id := range ids {
		t, _ := st.store.Get(id)
		out = append(out, t.info())
	}
	return out
}

// Pending returns the number of commands waiting for the next Sync.
func (p *Pool) Pending() int {
	st := p.current()
	if st == nil {
		return 0
	}
	return st.queue.Len()
}
