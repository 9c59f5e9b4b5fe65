package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/milk9111/vecanim/animpool"
	"github.com/milk9111/vecanim/assets"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "viewer.yaml"
	defaultCellSize   = 96
	defaultColumns    = 4
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EntryConfig is one animation drawn by the viewer. Loop and Play default
// to true.
type EntryConfig struct {
	File   string  `yaml:"file"`
	Tag    string  `yaml:"tag"`
	Loop   *bool   `yaml:"loop"`
	Play   *bool   `yaml:"play"`
	FPS    float64 `yaml:"fps"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

type Config struct {
	Window     WindowConfig  `yaml:"window"`
	Dir        string        `yaml:"dir"`
	Background string        `yaml:"background"`
	Columns    int           `yaml:"columns"`
	Entries    []EntryConfig `yaml:"entries"`
}

// LoadConfig reads the viewer config from path, falling back to the
// embedded default when path is the default name and absent on disk.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		data, err = assets.LoadFile(defaultConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width <= 0 {
		c.Window.Width = 960
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 640
	}
	if c.Window.Title == "" {
		c.Window.Title = "vecanim"
	}
	if c.Columns <= 0 {
		c.Columns = defaultColumns
	}
	for i := range c.Entries {
		e := &c.Entries[i]
		if e.Width <= 0 {
			e.Width = defaultCellSize
		}
		if e.Height <= 0 {
			e.Height = defaultCellSize
		}
	}
}

func (c *Config) validate() error {
	for i, e := range c.Entries {
		if strings.TrimSpace(e.File) == "" {
			return fmt.Errorf("config: entry %d: missing file", i)
		}
		if e.FPS < 0 {
			return fmt.Errorf("config: entry %d (%s): negative fps", i, e.File)
		}
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor resolves Background as an SVG color name or #rrggbb.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(c.Background))
	if name == "" {
		return colornames.Black, nil
	}
	if col, ok := colornames.Map[name]; ok {
		return col, nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(name, "#%02x%02x%02x", &r, &g, &b); err == nil && len(name) == 7 {
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("config: unknown background %q", c.Background)
}

// DrawOptions converts the entry into per-frame draw options.
func (e EntryConfig) DrawOptions() animpool.DrawOptions {
	opts := animpool.DrawOptions{
		Width:     e.Width,
		Height:    e.Height,
		Loop:      true,
		Play:      true,
		FrameRate: e.FPS,
	}
	if e.Loop != nil {
		opts.Loop = *e.Loop
	}
	if e.Play != nil {
		opts.Play = *e.Play
	}
	return opts
}
