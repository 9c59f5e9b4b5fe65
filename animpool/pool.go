// Package animpool plays many vector animations at once and draws them as
// GPU textures inside an immediate-mode UI.
//
// Callers address an animation by its bytes plus a tag instead of keeping a
// handle. The first Draw of an unseen (content, tag) pair creates a track and
// queues a load; Sync, called once per UI frame on the render goroutine,
// applies queued commands and advances playback. Play, Pause, Seek and
// Discard may be called from any goroutine.
//
//	pool := animpool.New(vector.NewDecoder(), gfx, ui)
//	pool.Init()
//	defer pool.Shutdown()
//
//	// every frame
//	pool.Sync()
//	pool.Draw(spinner, "header", animpool.DrawOptions{Width: 64, Height: 64, Loop: true, Play: true})
package animpool

import (
	"log/slog"
	"sync/atomic"
)

type poolState struct {
	store *Store
	queue *CommandQueue
}

// Pool owns every track and the command queue between Init and Shutdown.
type Pool struct {
	decoder Decoder
	gfx     Graphics
	ui      UI
	opts    options

	state atomic.Pointer[poolState]
}

// New creates a pool bound to its collaborators. The pool does nothing
// until Init is called.
func New(decoder Decoder, gfx Graphics, ui UI, opts ...Option) *Pool {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool{
		decoder: decoder,
		gfx:     gfx,
		ui:      ui,
		opts:    o,
	}
}

func (p *Pool) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

func (p *Pool) current() *poolState {
	if p == nil {
		return nil
	}
	return p.state.Load()
}

// Init allocates the store and queue. Calling it again is a no-op.
func (p *Pool) Init() {
	if p == nil {
		return
	}
	if p.state.CompareAndSwap(nil, &poolState{store: NewStore(), queue: &CommandQueue{}}) {
		p.logger().Debug("animpool: initialized")
	}
}

// Initialized reports whether Init has run without a later Shutdown.
func (p *Pool) Initialized() bool {
	return p.current() != nil
}

// Shutdown frees every texture and drops all tracks and pending commands.
// It is safe to call on a pool that was never initialized.
func (p *Pool) Shutdown() {
	if p == nil {
		return
	}
	st := p.state.Swap(nil)
	if st == nil {
		return
	}
	n := st.store.Len()
	st.store.Clear(p.releaseTexture)
	st.queue.Drain()
	p.logger().Debug("animpool: shutdown", "tracks", n)
}

// Sync applies queued commands and advances playback by the UI's elapsed
// time. Call it once per UI frame before any Draw for that frame.
func (p *Pool) Sync() {
	st := p.current()
	if st == nil {
		return
	}
	var dt float64
	if p.ui != nil {
		dt = p.ui.DeltaTime()
	}
	if dt < 0 {
		dt = 0
	}
	p.processQueue(st)
	p.produceFrames(st, dt)
}

// Play resumes playback of the track for (content, tag) at the next Sync.
func (p *Pool) Play(content []byte, tag string) {
	p.control(CommandPlay, content, tag, 0)
}

// Pause stops playback of the track for (content, tag) at the next Sync.
func (p *Pool) Pause(content []byte, tag string) {
	p.control(CommandPause, content, tag, 0)
}

// Seek jumps the track for (content, tag) to frame at the next Sync.
func (p *Pool) Seek(content []byte, tag string, frame int) {
	p.control(CommandSeek, content, tag, frame)
}

// Discard frees the track for (content, tag) at the next Sync. A later
// Draw starts over as if the pair had never been seen.
func (p *Pool) Discard(content []byte, tag string) {
	p.control(CommandDiscard, content, tag, 0)
}

func (p *Pool) control(kind CommandKind, content []byte, tag string, frame int) {
	st := p.current()
	if st == nil || len(content) == 0 {
		return
	}
	st.queue.Push(Command{Kind: kind, ID: Identify(content, tag), Frame: frame})
}

func (p *Pool) releaseTexture(t *Track) {
	if t == nil || !t.Texture.allocated() {
		return
	}
	if p.gfx != nil {
		p.gfx.DeleteTexture(t.Texture.ID)
	}
	t.Texture = Texture{}
}
