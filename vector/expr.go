package vector

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Env is what an expression can see while a frame is rendered.
type Env struct {
	Frame    float64 // frame index
	Time     float64 // seconds since frame 0
	Progress float64 // 0 at the first frame, 1 at the last
}

// expression is a compiled tengo program assigning one number. It keeps
// its globals between runs, so it must only be evaluated from one
// goroutine at a time.
type expression struct {
	src      string
	compiled *tengo.Compiled
}

const expressionResult = "__value"

func compileExpression(src string) (*expression, error) {
	code := "math := import(\"math\")\n" + expressionResult + " := " + src + "\n"
	script := tengo.NewScript([]byte(code))
	_ = script.Add("frame", 0.0)
	_ = script.Add("t", 0.0)
	_ = script.Add("progress", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &expression{src: src, compiled: compiled}, nil
}

func (e *expression) eval(env Env) (float64, error) {
	if e == nil || e.compiled == nil {
		return 0, fmt.Errorf("nil expression")
	}
	if err := e.compiled.Set("frame", env.Frame); err != nil {
		return 0, err
	}
	if err := e.compiled.Set("t", env.Time); err != nil {
		return 0, err
	}
	if err := e.compiled.Set("progress", env.Progress); err != nil {
		return 0, err
	}
	if err := e.compiled.Run(); err != nil {
		return 0, fmt.Errorf("run %q: %w", e.src, err)
	}
	v := e.compiled.Get(expressionResult)
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("expression %q produced %s, want a number", e.src, v.ValueType())
	}
}
