package animpool

// Advance moves every playing, loaded track forward by dt seconds.
func Advance(s *Store, dt float64) {
	if s == nil || dt <= 0 {
		return
	}
	s.Each(func(t *Track) {
		t.advance(dt)
	})
}

// processQueue drains and applies pending commands in push order.
func (p *Pool) processQueue(st *poolState) {
	for _, cmd := range st.queue.Drain() {
		p.apply(st, cmd)
	}
}

func (p *Pool) apply(st *poolState, cmd Command) {
	log := p.logger()
	switch cmd.Kind {
	case CommandLoad:
		if p.decoder == nil {
			return
		}
		anim, err := p.decoder.Load(cmd.Content)
		if err != nil || anim == nil {
			log.Debug("animpool: load failed", "id", cmd.ID, "bytes", len(cmd.Content), "err", err)
			return
		}
		t, _ := st.store.GetOrCreate(cmd.ID)
		t.Animation = anim
		t.Playback.TotalFrames = anim.TotalFrames()
		t.Playback.Duration = anim.Duration()
		t.Playback.NativeFrameRate = p.opts.defaultFrameRate
		if t.Playback.TotalFrames > 0 && t.Playback.Duration > 0 {
			t.Playback.NativeFrameRate = float64(t.Playback.TotalFrames) / t.Playback.Duration
		}
		t.Playback.Accumulator = 0
		t.Playback.Frame = 0
		t.Playback.TextureInitialized = false
		log.Debug("animpool: loaded", "id", cmd.ID, "frames", t.Playback.TotalFrames, "fps", t.Playback.NativeFrameRate)

	case CommandPlay, CommandPause:
		t, ok := st.store.Get(cmd.ID)
		if !ok {
			log.Debug("animpool: dropped command for unknown track", "kind", cmd.Kind, "id", cmd.ID)
			return
		}
		t.Playback.Playing = cmd.Kind == CommandPlay

	case CommandSeek:
		t, ok := st.store.Get(cmd.ID)
		if !ok {
			log.Debug("animpool: dropped command for unknown track", "kind", cmd.Kind, "id", cmd.ID)
			return
		}
		frame := cmd.Frame
		if frame >= t.Playback.TotalFrames {
			frame = t.Playback.TotalFrames - 1
		}
		if frame < 0 {
			frame = 0
		}
		t.Playback.Frame = frame
		t.Playback.Accumulator = 0

	case CommandDiscard:
		t, ok := st.store.Remove(cmd.ID)
		if !ok {
			log.Debug("animpool: dropped command for unknown track", "kind", cmd.Kind, "id", cmd.ID)
			return
		}
		p.releaseTexture(t)
	}
}

// produceFrames runs the scheduler over the store.
func (p *Pool) produceFrames(st *poolState, dt float64) {
	Advance(st.store, dt)
}
