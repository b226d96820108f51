// Package gridscript evaluates short parameter scripts such as
// "n = 5; size = 2 * 1.5; centered = false" against hexgrid.Params using
// Goja (JS runtime).
package gridscript

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dop251/goja"

	"github.com/wesen/hexlattice/pkg/hexgrid"
)

// ErrScript wraps every evaluation failure.
var ErrScript = errors.New("gridscript")

// Names of the variables bound to hexgrid.Params.
const (
	VarDivisions   = "n"
	VarSize        = "size"
	VarCentered    = "centered"
	VarOriginMajor = "originMajor"
	VarOriginMinor = "originMinor"
)

// Evaluator runs statements separated by ";" in a persistent runtime.
// Assignments "name = expr" are captured in Vars; other statements run for
// their side effects (print).
type Evaluator struct {
	Vars   map[string]interface{}
	Output []string

	runtime *goja.Runtime
}

// New creates an evaluator with print and str registered.
func New() *Evaluator {
	e := &Evaluator{
		Vars:    make(map[string]interface{}),
		runtime: goja.New(),
	}

	e.runtime.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		e.Output = append(e.Output, strings.Join(parts, " "))
		return goja.Undefined()
	})

	e.runtime.Set("str", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return e.runtime.ToValue("")
		}
		return e.runtime.ToValue(call.Arguments[0].String())
	})

	return e
}

var assignRe = regexp.MustCompile(`^([a-zA-Z_]\w*)\s*=\s*([^=].*)$`)

// Run executes code. Evaluation stops at the first failing statement;
// assignments made before it are kept.
func (e *Evaluator) Run(code string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrScript, r)
		}
	}()

	for _, stmt := range strings.Split(code, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		e.syncVarsToRuntime()
		if m := assignRe.FindStringSubmatch(stmt); m != nil {
			val, err := e.runtime.RunString(m[2])
			if err != nil {
				return fmt.Errorf("%w: eval %q: %v", ErrScript, m[2], err)
			}
			e.Vars[m[1]] = val.Export()
			continue
		}
		if _, err := e.runtime.RunString(stmt); err != nil {
			return fmt.Errorf("%w: exec %q: %v", ErrScript, stmt, err)
		}
		e.syncVarsFromRuntime()
	}
	return nil
}

func (e *Evaluator) syncVarsToRuntime() {
	for k, v := range e.Vars {
		e.runtime.Set(k, v)
	}
}

// syncVarsFromRuntime picks up in-place updates such as "n++".
func (e *Evaluator) syncVarsFromRuntime() {
	for k := range e.Vars {
		if v := e.runtime.Get(k); v != nil {
			e.Vars[k] = v.Export()
		}
	}
}

// Bind sets the parameter variables from p.
func (e *Evaluator) Bind(p hexgrid.Params) {
	e.Vars[VarDivisions] = int64(p.Divisions)
	e.Vars[VarSize] = p.Size
	e.Vars[VarCentered] = p.Centered
	e.Vars[VarOriginMajor] = p.Origin.Major
	e.Vars[VarOriginMinor] = p.Origin.Minor
}

// Params reads the parameter variables back.
func (e *Evaluator) Params() (hexgrid.Params, error) {
	var p hexgrid.Params
	var err error

	if p.Divisions, err = intVar(e.Vars, VarDivisions); err != nil {
		return p, err
	}
	if p.Size, err = floatVar(e.Vars, VarSize); err != nil {
		return p, err
	}
	if p.Origin.Major, err = floatVar(e.Vars, VarOriginMajor); err != nil {
		return p, err
	}
	if p.Origin.Minor, err = floatVar(e.Vars, VarOriginMinor); err != nil {
		return p, err
	}
	c, ok := e.Vars[VarCentered].(bool)
	if !ok {
		return p, fmt.Errorf("%w: %s must be a boolean, got %T", ErrScript, VarCentered, e.Vars[VarCentered])
	}
	p.Centered = c

	return p, nil
}

// Apply runs code with p bound and returns the resulting parameters. The
// returned Params are validated; console output from print is returned
// even on error.
func Apply(code string, p hexgrid.Params) (hexgrid.Params, []string, error) {
	e := New()
	e.Bind(p)
	if err := e.Run(code); err != nil {
		return p, e.Output, err
	}
	out, err := e.Params()
	if err != nil {
		return p, e.Output, err
	}
	if err := out.Validate(); err != nil {
		return p, e.Output, fmt.Errorf("%w: %w", ErrScript, err)
	}
	return out, e.Output, nil
}

func floatVar(vars map[string]interface{}, name string) (float64, error) {
	switch v := vars[name].(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrScript, name, vars[name])
}

func intVar(vars map[string]interface{}, name string) (int, error) {
	f, err := floatVar(vars, name)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrScript, name, f)
	}
	return int(f), nil
}
