package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/vecanim/library"
)

const tinyAnim = "width: 4\nheight: 4\nframes: 8\nlayers:\n  - {shape: circle, x: 2, y: 2, r: 1}\n"

func newTestGame(t *testing.T) (*Game, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(tinyAnim), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseConfig([]byte(`
entries:
  - {file: tiny.yaml, tag: a}
  - {file: tiny.yaml, tag: b}
  - {file: spinner.yaml}
`))
	if err != nil {
		t.Fatal(err)
	}
	return newGame(cfg, library.New(dir)), dir
}

func TestNewGameLoadsEntries(t *testing.T) {
	g, _ := newTestGame(t)
	defer g.Close()

	if len(g.entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(g.entries))
	}
	for _, e := range g.entries {
		if len(e.load()) == 0 {
			t.Fatalf("%s: expected content", e.label())
		}
	}
	if !g.pool.Initialized() {
		t.Fatalf("pool should be initialized")
	}
}

func TestReloadDiscardsChangedContent(t *testing.T) {
	g, dir := newTestGame(t)
	defer g.Close()

	g.Reload(filepath.Join(dir, "tiny.yaml"))
	if g.pool.Pending() != 0 {
		t.Fatalf("unchanged content should not discard, pending %d", g.pool.Pending())
	}

	updated := tinyAnim + "fps: 12\n"
	if err := os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	g.Reload(filepath.Join(dir, "tiny.yaml"))
	if g.pool.Pending() != 2 {
		t.Fatalf("expected a discard per tag, pending %d", g.pool.Pending())
	}
	for _, e := range g.entries[:2] {
		if string(e.load()) != updated {
			t.Fatalf("%s: content not swapped", e.label())
		}
	}
}

func TestSelection(t *testing.T) {
	g, _ := newTestGame(t)
	defer g.Close()

	steps := []struct {
		delta int
		want  int
	}{
		{1, 1}, {1, 2}, {1, 0}, {-1, 2}, {-4, 1},
	}
	for _, s := range steps {
		g.selectNext(s.delta)
		if g.selected != s.want {
			t.Fatalf("selectNext(%d): expected %d, got %d", s.delta, s.want, g.selected)
		}
	}

	e := g.selectedEntry()
	g.toggleSelected()
	if e.opts.Play {
		t.Fatalf("toggle should pause the selected entry")
	}
	g.setAllPlaying(true)
	for _, e := range g.entries {
		if !e.opts.Play {
			t.Fatalf("%s: expected playing", e.label())
		}
	}
	if _, ok := g.selectedID(); !ok {
		t.Fatalf("expected an identity for the selection")
	}
}
