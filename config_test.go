package main

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
entries:
  - file: spinner.yaml
  - {file: star.yaml, tag: once, loop: false, play: false, fps: 12, width: 32, height: 48}
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 640 || cfg.Window.Title != "vecanim" {
		t.Fatalf("unexpected window defaults %+v", cfg.Window)
	}
	if cfg.Columns != defaultColumns {
		t.Fatalf("expected %d columns, got %d", defaultColumns, cfg.Columns)
	}

	first := cfg.Entries[0].DrawOptions()
	if first.Width != defaultCellSize || first.Height != defaultCellSize || !first.Loop || !first.Play || first.FrameRate != 0 {
		t.Fatalf("unexpected defaults %+v", first)
	}
	second := cfg.Entries[1].DrawOptions()
	if second.Width != 32 || second.Height != 48 || second.Loop || second.Play || second.FrameRate != 12 {
		t.Fatalf("unexpected options %+v", second)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"bad_yaml", "entries: [", "unmarshal"},
		{"missing_file", "entries:\n  - tag: x\n", "missing file"},
		{"negative_fps", "entries:\n  - {file: a.yaml, fps: -1}\n", "negative fps"},
		{"bad_background", "background: nope\n", "unknown background"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(c.src))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	cases := []struct {
		name string
		want color.RGBA
	}{
		{"", color.RGBA{A: 0xff}},
		{"DarkSlateGray", color.RGBA{R: 0x2f, G: 0x4f, B: 0x4f, A: 0xff}},
		{"#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
	}

	for _, c := range cases {
		cfg := Config{Background: c.name}
		got, err := cfg.BackgroundColor()
		if err != nil {
			t.Fatalf("%q: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestLoadConfigFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("embedded default failed: %v", err)
	}
	if len(cfg.Entries) == 0 {
		t.Fatalf("embedded default should list entries")
	}

	if _, err := LoadConfig(filepath.Join(dir, "other.yaml")); err == nil {
		t.Fatalf("non-default missing config should fail")
	}
}
