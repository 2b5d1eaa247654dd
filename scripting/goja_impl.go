package scripting

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/pagescript/pagescript/coords"
	"github.com/pagescript/pagescript/host"
	"github.com/pagescript/pagescript/transform"
	"github.com/pagescript/pagescript/units"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

// RegisterAPI installs the transform facade, the matrix stack API and the
// document lookups as globals. Scripts are loosely typed, so this layer is
// where wrong-shaped values are either forgiven (a bad transform value
// falls back to a read) or rejected with the list of what would have been
// accepted.
func (e *GojaEngine) RegisterAPI(session *transform.Session, doc *host.Document) error {
	if session == nil {
		return fmt.Errorf("scripting: nil session")
	}

	e.vm.Set("item", func(call goja.FunctionCall) goja.Value {
		if doc == nil {
			panic(e.vm.NewGoError(fmt.Errorf("no document loaded")))
		}
		name := call.Argument(0).String()
		f := doc.Item(name)
		if f == nil {
			panic(e.vm.NewGoError(fmt.Errorf("no item named %q", name)))
		}
		return e.vm.ToValue(f)
	})

	e.vm.Set("page", func(call goja.FunctionCall) goja.Value {
		if doc == nil {
			panic(e.vm.NewGoError(fmt.Errorf("no document loaded")))
		}
		idx := int(call.Argument(0).ToInteger())
		p, err := doc.Page(idx)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		session.SetOrigin(p.Origin)
		return e.vm.ToValue(idx)
	})

	e.vm.Set("transform", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewGoError(fmt.Errorf("transform(item, kind, value?) needs an item and a property kind")))
		}
		it, _ := call.Argument(0).Export().(host.Item)
		prop, err := transform.ParseProperty(call.Argument(1).String())
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		vals := scriptValues(call.Arguments[2:])
		res, err := session.Transform(it, prop, vals...)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		if len(res) == 1 {
			return e.vm.ToValue(res[0])
		}
		return e.floatsValue(res)
	})

	e.vm.Set("referencePoint", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 && !goja.IsUndefined(call.Arguments[0]) {
			r, err := transform.ParseRefPoint(call.Arguments[0].Export())
			if err != nil {
				panic(e.vm.NewGoError(err))
			}
			session.SetReferencePoint(r)
		}
		return e.vm.ToValue(session.ReferencePoint().String())
	})

	e.vm.Set("units", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 && !goja.IsUndefined(call.Arguments[0]) {
			u, err := units.Parse(call.Arguments[0].String())
			if err != nil {
				panic(e.vm.NewGoError(err))
			}
			session.SetUnit(u)
		}
		return e.vm.ToValue(session.Unit().String())
	})

	e.vm.Set("matrix", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 && !goja.IsUndefined(call.Arguments[0]) {
			m, err := matrixArg(call.Arguments[0])
			if err != nil {
				panic(e.vm.NewGoError(err))
			}
			session.SetMatrix(m)
		}
		return e.matrixValue(session.Matrix())
	})

	e.vm.Set("applyMatrix", func(call goja.FunctionCall) goja.Value {
		m, err := matrixArg(call.Argument(0))
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		session.ApplyMatrix(m)
		return e.matrixValue(session.Matrix())
	})

	e.vm.Set("pushMatrix", func(call goja.FunctionCall) goja.Value {
		session.PushMatrix()
		return goja.Undefined()
	})

	e.vm.Set("popMatrix", func(call goja.FunctionCall) goja.Value {
		if err := session.PopMatrix(); err != nil {
			panic(e.vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	e.vm.Set("resetMatrix", func(call goja.FunctionCall) goja.Value {
		session.ResetMatrix()
		return goja.Undefined()
	})

	e.vm.Set("printMatrix", func(call goja.FunctionCall) goja.Value {
		session.PrintMatrix()
		return goja.Undefined()
	})

	e.vm.Set("rotate", func(call goja.FunctionCall) goja.Value {
		angle, ok := numberArg(call.Argument(0))
		if !ok {
			panic(e.vm.NewGoError(fmt.Errorf("rotate(angle) needs an angle in radians")))
		}
		session.Rotate(angle)
		return goja.Undefined()
	})

	e.vm.Set("scale", func(call goja.FunctionCall) goja.Value {
		sx, ok := numberArg(call.Argument(0))
		if !ok {
			panic(e.vm.NewGoError(fmt.Errorf("scale(sx, sy?) needs numeric factors")))
		}
		sy := sx
		if len(call.Arguments) > 1 {
			if sy, ok = numberArg(call.Argument(1)); !ok {
				panic(e.vm.NewGoError(fmt.Errorf("scale(sx, sy?) needs numeric factors")))
			}
		}
		session.Scale(sx, sy)
		return goja.Undefined()
	})

	e.vm.Set("translate", func(call goja.FunctionCall) goja.Value {
		tx, okX := numberArg(call.Argument(0))
		ty, okY := numberArg(call.Argument(1))
		if !okX || !okY {
			panic(e.vm.NewGoError(fmt.Errorf("translate(tx, ty) needs two numbers")))
		}
		session.Translate(tx, ty)
		return goja.Undefined()
	})

	return nil
}

func (e *GojaEngine) matrixValue(m coords.Matrix) goja.Value {
	return e.floatsValue(m[:])
}

// floatsValue builds a plain JS array so scripts see ordinary arrays
// rather than wrapped Go slices.
func (e *GojaEngine) floatsValue(vs []float64) goja.Value {
	items := make([]interface{}, len(vs))
	for i, v := range vs {
		items[i] = v
	}
	return e.vm.NewArray(items...)
}

// scriptValues converts the optional value arguments of a transform call
// into floats: a single number, several numbers, or one array of numbers.
// Anything else yields nil, which downgrades the call to a read; that
// forgiveness is part of the scripting contract.
func scriptValues(args []goja.Value) []float64 {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 {
		if arr, ok := args[0].Export().([]interface{}); ok {
			out := make([]float64, 0, len(arr))
			for _, el := range arr {
				n, ok := exportNumber(el)
				if !ok {
					return nil
				}
				out = append(out, n)
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
	out := make([]float64, 0, len(args))
	for _, a := range args {
		n, ok := exportNumber(a.Export())
		if !ok {
			return nil
		}
		out = append(out, n)
	}
	return out
}

func numberArg(v goja.Value) (float64, bool) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0, false
	}
	return exportNumber(v.Export())
}

func exportNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func matrixArg(v goja.Value) (coords.Matrix, error) {
	var m coords.Matrix
	arr, ok := v.Export().([]interface{})
	if !ok || len(arr) != 6 {
		return m, fmt.Errorf("a matrix is an array of six numbers [a, b, c, d, e, f]")
	}
	for i, el := range arr {
		n, ok := exportNumber(el)
		if !ok {
			return m, fmt.Errorf("a matrix is an array of six numbers [a, b, c, d, e, f]")
		}
		m[i] = n
	}
	return m, nil
}
