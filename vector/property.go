package vector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/vecanim/common"
	"gopkg.in/yaml.v3"
)

// Ease shapes the interpolation from one keyframe to the next.
type Ease string

const (
	EaseLinear Ease = "linear"
	EaseIn     Ease = "ease_in"
	EaseOut    Ease = "ease_out"
	EaseInOut  Ease = "ease_in_out"
	EaseHold   Ease = "hold"
)

func (e Ease) valid() bool {
	switch e {
	case "", EaseLinear, EaseIn, EaseOut, EaseInOut, EaseHold:
		return true
	}
	return false
}

// Keyframe pins a property value at a frame.
type Keyframe struct {
	Frame float64 `yaml:"frame"`
	Value float64 `yaml:"value"`
	Ease  Ease    `yaml:"ease"`
}

// Property is an animatable number. In a document it is written as a
// constant (`x: 12`), a keyframe list, or a tengo expression prefixed with
// `=` (`rotation: "= t * 90"`).
type Property struct {
	Value float64
	Keys  []Keyframe
	Expr  string

	set  bool
	expr *expression
}

// Const returns a property with a fixed value.
func Const(v float64) Property {
	return Property{Value: v, set: true}
}

// IsSet reports whether the document gave the property a value.
func (p *Property) IsSet() bool { return p.set }

func (p *Property) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!str" {
			src, ok := strings.CutPrefix(strings.TrimSpace(node.Value), "=")
			if !ok {
				return fmt.Errorf("line %d: expression must start with '=': %q", node.Line, node.Value)
			}
			p.Expr = strings.TrimSpace(src)
			p.set = true
			return nil
		}
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		p.Value = v
		p.set = true
		return nil
	case yaml.SequenceNode:
		var keys []Keyframe
		if err := node.Decode(&keys); err != nil {
			return fmt.Errorf("line %d: keyframes: %w", node.Line, err)
		}
		if len(keys) == 0 {
			return nil
		}
		sort.SliceStable(keys, func(i, j int) bool { return keys[i].Frame < keys[j].Frame })
		p.Keys = keys
		p.set = true
		return nil
	default:
		return fmt.Errorf("line %d: property must be a number, expression, or keyframe list", node.Line)
	}
}

// compile prepares the expression, if any.
func (p *Property) compile() error {
	if p.Expr == "" || p.expr != nil {
		return nil
	}
	e, err := compileExpression(p.Expr)
	if err != nil {
		return err
	}
	p.expr = e
	return nil
}

// At resolves the property at env.Frame, or returns def when unset. A
// failing expression also yields def.
func (p *Property) At(env Env, def float64) float64 {
	if p == nil || !p.set {
		return def
	}
	if p.Expr != "" {
		if err := p.compile(); err != nil {
			logger().Debug("vector: expression", "err", err)
			return def
		}
		v, err := p.expr.eval(env)
		if err != nil {
			logger().Debug("vector: expression", "frame", env.Frame, "err", err)
			return def
		}
		return v
	}
	if len(p.Keys) > 0 {
		return interpolate(p.Keys, env.Frame)
	}
	return p.Value
}

func interpolate(keys []Keyframe, frame float64) float64 {
	first, last := keys[0], keys[len(keys)-1]
	if frame <= first.Frame {
		return first.Value
	}
	if frame >= last.Frame {
		return last.Value
	}
	i := sort.Search(len(keys), func(i int) bool { return keys[i].Frame > frame }) - 1
	k0, k1 := keys[i], keys[i+1]
	span := k1.Frame - k0.Frame
	if span <= 0 {
		return k1.Value
	}
	u := (frame - k0.Frame) / span
	switch k0.Ease {
	case EaseHold:
		return k0.Value
	case EaseIn:
		u = common.EaseInQuad(u)
	case EaseOut:
		u = common.EaseOutQuad(u)
	case EaseInOut:
		u = common.EaseInOutQuad(u)
	}
	return common.Lerp(k0.Value, k1.Value, u)
}
