package animpool

// TextureID is an opaque handle into the Graphics backend. Zero is never a
// live texture.
type TextureID uint32

// Size is a pixel extent.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Filter selects texture sampling.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterLinear
)

// Wrap selects texture addressing outside [0,1]. It only shows where
// filtering samples past the edge of the texture.
type Wrap uint8

const (
	WrapClamp Wrap = iota
	WrapRepeat
)

// TextureParams configures a texture at creation time.
type TextureParams struct {
	Filter Filter
	Wrap   Wrap
}

// Animation is a decoded vector animation. Render writes a premultiplied
// B-G-R-A image of the given frame into dst; it must tolerate any frame index
// and any output size.
type Animation interface {
	FrameRate() float64
	TotalFrames() int
	Duration() float64
	Render(frame int, dst []byte, width, height, stride int)
}

// Decoder turns animation bytes into an Animation.
type Decoder interface {
	Load(content []byte) (Animation, error)
}

// Graphics is the texture API of the graphics context. All calls happen on
// the goroutine that owns the context.
type Graphics interface {
	CreateTexture(width, height int, params TextureParams) TextureID
	// UploadTexture replaces the full image of the texture.
	UploadTexture(id TextureID, width, height int, pix []byte)
	// UpdateTexture writes a sub-rectangle of an already uploaded texture.
	UpdateTexture(id TextureID, x, y, width, height int, pix []byte)
	DeleteTexture(id TextureID)
}

// UI is the immediate-mode layer the pool draws into.
type UI interface {
	// DeltaTime returns the seconds elapsed since the previous UI frame.
	DeltaTime() float64
	Cursor() (x, y float64)
	DrawTexture(id TextureID, x, y float64, size Size)
}
