package vector

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// DefaultFPS is assumed when a document gives neither fps nor duration.
const DefaultFPS = 30.0

var (
	ErrEmptyDocument = errors.New("vector: empty document")
	ErrInvalidSize   = errors.New("vector: width and height must be positive")
	ErrNoFrames      = errors.New("vector: animation has no frames")
)

// Shape names a layer primitive.
type Shape string

const (
	ShapeRect        Shape = "rect"
	ShapeRoundedRect Shape = "rounded_rect"
	ShapeCircle      Shape = "circle"
	ShapeEllipse     Shape = "ellipse"
	ShapePolygon     Shape = "polygon"
	ShapeStar        Shape = "star"
	ShapeLine        Shape = "line"
	ShapePath        Shape = "path"
)

// Document is a vector animation. It is read from YAML, and since JSON is
// valid YAML, from JSON as well.
type Document struct {
	Name       string  `yaml:"name"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FPS        float64 `yaml:"fps"`
	Frames     int     `yaml:"frames"`
	Duration   float64 `yaml:"duration"`
	Background string  `yaml:"background"`
	Layers     []Layer `yaml:"layers"`

	background *gg.RGBA
}

// Layer is one shape drawn every frame it is visible. Shapes are centered
// on (x, y) in document units; rotation is in degrees.
type Layer struct {
	Name        string      `yaml:"name"`
	Shape       Shape       `yaml:"shape"`
	Fill        string      `yaml:"fill"`
	Stroke      string      `yaml:"stroke"`
	StrokeWidth Property    `yaml:"stroke_width"`
	X           Property    `yaml:"x"`
	Y           Property    `yaml:"y"`
	W           Property    `yaml:"w"`
	H           Property    `yaml:"h"`
	R           Property    `yaml:"r"`
	Inner       Property    `yaml:"inner"` // star inner radius as a fraction of r
	Rotation    Property    `yaml:"rotation"`
	Scale       Property    `yaml:"scale"`
	Opacity     Property    `yaml:"opacity"`
	Sides       int         `yaml:"sides"`
	Points      [][]float64 `yaml:"points"`
	Closed      bool        `yaml:"closed"`
	In          int         `yaml:"in"`
	Out         int         `yaml:"out"` // exclusive; 0 means the last frame
	Hidden      bool        `yaml:"hidden"`

	fill   *gg.RGBA
	stroke *gg.RGBA
}

func (l *Layer) properties() []*Property {
	return []*Property{
		&l.StrokeWidth, &l.X, &l.Y, &l.W, &l.H, &l.R, &l.Inner,
		&l.Rotation, &l.Scale, &l.Opacity,
	}
}

// visible reports whether the layer draws on frame.
func (l *Layer) visible(frame int) bool {
	if l.Hidden || frame < l.In {
		return false
	}
	return l.Out <= 0 || frame < l.Out
}

// Parse reads and validates a document, fills in derived timing, and
// compiles every expression.
func Parse(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyDocument
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("vector: unmarshal: %w", err)
	}
	if err := doc.normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) normalize() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrInvalidSize
	}
	if d.Frames <= 0 && d.Duration > 0 && d.FPS > 0 {
		d.Frames = int(math.Round(d.Duration * d.FPS))
	}
	if d.Frames <= 0 {
		return ErrNoFrames
	}
	if d.FPS <= 0 {
		if d.Duration > 0 {
			d.FPS = float64(d.Frames) / d.Duration
		} else {
			d.FPS = DefaultFPS
		}
	}
	if d.Duration <= 0 {
		d.Duration = float64(d.Frames) / d.FPS
	}

	if d.Background != "" {
		c, err := parseColor(d.Background)
		if err != nil {
			return fmt.Errorf("vector: background: %w", err)
		}
		d.background = &c
	}

	for i := range d.Layers {
		if err := d.Layers[i].normalize(); err != nil {
			name := d.Layers[i].Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return fmt.Errorf("vector: layer %s: %w", name, err)
		}
	}
	return nil
}

func (l *Layer) normalize() error {
	switch l.Shape {
	case ShapeRect, ShapeRoundedRect, ShapeCircle, ShapeEllipse:
	case ShapePolygon, ShapeStar:
		if l.Sides == 0 {
			l.Sides = 5
		}
		if l.Sides < 3 {
			return fmt.Errorf("%s needs at least 3 sides, got %d", l.Shape, l.Sides)
		}
	case ShapeLine, ShapePath:
		if len(l.Points) < 2 {
			return fmt.Errorf("%s needs at least 2 points", l.Shape)
		}
		for i, pt := range l.Points {
			if len(pt) != 2 {
				return fmt.Errorf("point %d: want [x, y], got %d values", i, len(pt))
			}
		}
	case "":
		return errors.New("missing shape")
	default:
		return fmt.Errorf("unknown shape %q", l.Shape)
	}

	if l.Fill != "" {
		c, err := parseColor(l.Fill)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		l.fill = &c
	}
	if l.Stroke != "" {
		c, err := parseColor(l.Stroke)
		if err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
		l.stroke = &c
	}
	white := gg.RGBA{R: 1, G: 1, B: 1, A: 1}
	if l.Shape == ShapeLine && l.stroke == nil {
		if l.fill != nil {
			white = *l.fill
		}
		l.stroke = &white
	} else if l.fill == nil && l.stroke == nil {
		l.fill = &white
	}

	for _, p := range l.properties() {
		for _, k := range p.Keys {
			if !k.Ease.valid() {
				return fmt.Errorf("unknown ease %q", k.Ease)
			}
		}
		if err := p.compile(); err != nil {
			return err
		}
	}
	return nil
}

func parseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}
	return gg.Hex(hex), nil
}
