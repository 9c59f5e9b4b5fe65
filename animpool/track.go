package animpool

import (
	"slices"
)

// DefaultFrameRate is used when a decoded animation reports no usable
// frame count or duration.
const DefaultFrameRate = 30.0

// PlaybackState is the scheduling state of a track.
type PlaybackState struct {
	Loop              bool
	Playing           bool
	FrameRateOverride float64 // <= 0 means use NativeFrameRate
	NativeFrameRate   float64
	TotalFrames       int
	Duration          float64 // seconds
	Accumulator       float64 // seconds not yet consumed by frame steps
	Frame             int
	Size              Size
	// TextureInitialized is false until the first full upload into the
	// current texture allocation.
	TextureInitialized bool
}

// Texture is the GPU texture backing a track. A zero Texture means none has
// been allocated yet.
type Texture struct {
	ID     TextureID
	Width  int
	Height int
}

func (t Texture) allocated() bool { return t.Width > 0 && t.Height > 0 }

// Track is the persistent state of one (content, tag) pair.
type Track struct {
	ID        ID
	Animation Animation // nil until the Load command drains
	Playback  PlaybackState
	Texture   Texture

	// staging buffers, both Size.W*Size.H*4 bytes
	native []byte // premultiplied BGRA from the decoder
	upload []byte // straight RGBA for the texture
}

func newTrack(id ID) *Track {
	return &Track{
		ID: id,
		Playback: PlaybackState{
			Loop:    true,
			Playing: true,
		},
	}
}

// Loaded reports whether the track has a decoded animation.
func (t *Track) Loaded() bool { return t != nil && t.Animation != nil }

// EffectiveFrameRate returns the override if set, else the native rate.
func (t *Track) EffectiveFrameRate() float64 {
	if t.Playback.FrameRateOverride > 0 {
		return t.Playback.FrameRateOverride
	}
	return t.Playback.NativeFrameRate
}

// step advances one frame, wrapping when looping and clamping otherwise.
func (t *Track) step() {
	n := t.Playback.TotalFrames
	if n <= 0 {
		t.Playback.Frame = 0
		return
	}
	t.Playback.Frame++
	if t.Playback.Frame >= n {
		if t.Playback.Loop {
			t.Playback.Frame = 0
		} else {
			t.Playback.Frame = n - 1
		}
	}
}

// advance feeds dt seconds through the fixed-step accumulator. Every
// intermediate frame is visited, so a long stall produces a burst of steps.
func (t *Track) advance(dt float64) {
	if !t.Loaded() || !t.Playback.Playing || t.Playback.TotalFrames <= 0 {
		return
	}
	rate := t.EffectiveFrameRate()
	if rate <= 0 {
		return
	}
	period := 1 / rate
	t.Playback.Accumulator += dt
	for t.Playback.Accumulator >= period {
		t.Playback.Accumulator -= period
		t.step()
	}
}

// Store maps identifiers to tracks. It is owned by the render goroutine.
type Store struct {
	tracks map[ID]*Track
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tracks: make(map[ID]*Track)}
}

// Get returns the track for id.
func (s *Store) Get(id ID) (*Track, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.tracks[id]
	return t, ok
}

// GetOrCreate returns the track for id, creating one with default playback
// flags if none exists. created reports whether a new track was made.
func (s *Store) GetOrCreate(id ID) (t *Track, created bool) {
	if s == nil {
		return nil, false
	}
	if t, ok := s.tracks[id]; ok {
		return t, false
	}
	t = newTrack(id)
	s.tracks[id] = t
	return t, true
}

// Remove deletes the track for id and returns it.
func (s *Store) Remove(id ID) (*Track, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.tracks[id]
	if ok {
		delete(s.tracks, id)
	}
	return t, ok
}

// Len returns the number of tracks.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tracks)
}

// Each calls fn for every track in unspecified order.
func (s *Store) Each(fn func(t *Track)) {
	if s == nil || fn == nil {
		return
	}
	for _, t := range s.tracks {
		fn(t)
	}
}

// IDs returns every identifier in ascending order.
func (s *Store) IDs() []ID {
	if s == nil {
		return nil
	}
	ids := make([]ID, 0, len(s.tracks))
	for id := range s.tracks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clear removes every track, calling release first for each.
func (s *Store) Clear(release func(t *Track)) {
	if s == nil {
		return
	}
	for id, t := range s.tracks {
		if release != nil {
			release(t)
		}
		delete(s.tracks, id)
	}
}
