package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebvector "github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/vecanim/animpool"
	"github.com/milk9111/vecanim/ebitenbackend"
	"github.com/milk9111/vecanim/library"
	"github.com/milk9111/vecanim/vector"
)

var selectionColor = color.RGBA{R: 0xe5, G: 0xc0, B: 0x7b, A: 0xff}

// entry is one configured animation. content is swapped by the watcher
// goroutine and read by the game loop.
type entry struct {
	cfg     EntryConfig
	opts    animpool.DrawOptions
	content atomic.Pointer[[]byte]
}

func (e *entry) load() []byte {
	if p := e.content.Load(); p != nil {
		return *p
	}
	return nil
}

func (e *entry) label() string {
	if e.cfg.Tag == "" {
		return e.cfg.File
	}
	return e.cfg.File + "#" + e.cfg.Tag
}

type Game struct {
	cfg   *Config
	lib   *library.Library
	pool  *animpool.Pool
	gfx   *ebitenbackend.Graphics
	frame *ebitenbackend.Frame
	bg    color.RGBA

	entries  []*entry
	selected int

	ui        *ebitenui.UI
	panel     *panel
	debug     bool
	clipboard bool
}

// NewGame builds the viewer and its control panel.
func NewGame(cfg *Config, lib *library.Library, debug, clipboard bool) *Game {
	g := newGame(cfg, lib)
	g.debug = debug
	g.clipboard = clipboard
	g.ui, g.panel = newPanelUI(g)
	return g
}

func newGame(cfg *Config, lib *library.Library) *Game {
	gfx := ebitenbackend.NewGraphics()
	frame := ebitenbackend.NewFrame(gfx)
	frame.SetOrigin(16, 24)

	g := &Game{
		cfg:   cfg,
		lib:   lib,
		gfx:   gfx,
		frame: frame,
		pool:  animpool.New(vector.NewDecoder(), gfx, frame),
	}
	g.bg, _ = cfg.BackgroundColor()

	for _, ec := range cfg.Entries {
		e := &entry{cfg: ec, opts: ec.DrawOptions()}
		data, err := lib.Load(ec.File)
		if err != nil {
			log.Printf("viewer: %v", err)
		} else {
			e.content.Store(&data)
		}
		g.entries = append(g.entries, e)
	}

	g.pool.Init()
	return g
}

// Reload re-reads every entry backed by path and discards the tracks of
// the replaced content. It is safe to call from any goroutine.
func (g *Game) Reload(path string) {
	name := filepath.Base(path)
	for _, e := range g.entries {
		if filepath.Base(e.cfg.File) != name {
			continue
		}
		data, err := g.lib.Load(e.cfg.File)
		if err != nil {
			log.Printf("viewer: reload %s: %v", name, err)
			continue
		}
		old := e.content.Swap(&data)
		if old != nil && !bytes.Equal(*old, data) {
			g.pool.Discard(*old, e.cfg.Tag)
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selectNext(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleSelected()
	}
	if g.ui != nil {
		g.panel.refresh(g)
		g.ui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.frame.Begin(screen)
	g.pool.Sync()

	for i, e := range g.entries {
		if i > 0 && i%g.cfg.Columns == 0 {
			g.frame.NewLine()
		}
		content := e.load()
		if len(content) == 0 {
			continue
		}
		x, y := g.frame.Cursor()
		g.pool.Draw(content, e.cfg.Tag, e.opts)
		if i == g.selected {
			ebvector.StrokeRect(screen, float32(x-2), float32(y-2), float32(e.opts.Width+4), float32(e.opts.Height+4), 1, selectionColor, false)
		}
	}

	if g.ui != nil {
		g.ui.Draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    textures: %d", ebiten.ActualFPS(), g.gfx.Len()))
	if g.debug {
		text := g.overlay()
		lines := strings.Count(text, "\n") + 1
		ebitenutil.DebugPrintAt(screen, text, 16, g.cfg.Window.Height-lines*16-8)
	}
}

func (g *Game) overlay() string {
	var b strings.Builder
	tracks := g.pool.Tracks()
	fmt.Fprintf(&b, "tracks: %d  pending: %d", len(tracks), g.pool.Pending())
	for _, t := range tracks {
		fmt.Fprintf(&b, "\n%s  %3d/%-3d  %5.1ffps  %dx%d  play=%v loop=%v",
			t.ID, t.Frame, t.TotalFrames, t.FrameRate, t.Width, t.Height, t.Playing, t.Loop)
		if !t.Loaded {
			b.WriteString("  (not loaded)")
		}
	}
	return b.String()
}

func (g *Game) selectedEntry() *entry {
	if g.selected < 0 || g.selected >= len(g.entries) {
		return nil
	}
	return g.entries[g.selected]
}

func (g *Game) selectNext(delta int) {
	n := len(g.entries)
	if n == 0 {
		return
	}
	g.selected = ((g.selected+delta)%n + n) % n
}

func (g *Game) setPlaying(e *entry, playing bool) {
	if e == nil {
		return
	}
	e.opts.Play = playing
	if playing {
		g.pool.Play(e.load(), e.cfg.Tag)
	} else {
		g.pool.Pause(e.load(), e.cfg.Tag)
	}
}

func (g *Game) toggleSelected() {
	if e := g.selectedEntry(); e != nil {
		g.setPlaying(e, !e.opts.Play)
	}
}

func (g *Game) setAllPlaying(playing bool) {
	for _, e := range g.entries {
		g.setPlaying(e, playing)
	}
}

func (g *Game) restartSelected() {
	if e := g.selectedEntry(); e != nil {
		g.pool.Seek(e.load(), e.cfg.Tag, 0)
	}
}

func (g *Game) discardSelected() {
	if e := g.selectedEntry(); e != nil {
		g.pool.Discard(e.load(), e.cfg.Tag)
	}
}

// selectedID is the pool identity of the selected entry.
func (g *Game) selectedID() (animpool.ID, bool) {
	e := g.selectedEntry()
	if e == nil || len(e.load()) == 0 {
		return 0, false
	}
	return animpool.Identify(e.load(), e.cfg.Tag), true
}

// Close releases every texture.
func (g *Game) Close() {
	g.pool.Shutdown()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
