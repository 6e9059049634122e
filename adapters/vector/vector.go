// Package vector reroutes a vectorized array backend's element-wise
// function calls onto the operation registry, so that backend dispatch on a
// Number operand propagates uncertainties exactly like a direct registry
// call. Without a backend present nothing in this package is needed and
// scalar behavior is unaffected.
package vector

import (
	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/domain/number"
	"github.com/adavidzh/scinum/domain/ops"
	"github.com/adavidzh/scinum/ports"
)

// Engine resolves backend element-wise function identities against a
// registry and applies the bound operations.
type Engine struct {
	reg *ops.Registry
}

// NewEngine creates an Engine over the given registry; nil selects
// ops.Default.
func NewEngine(reg *ops.Registry) *Engine {
	if reg == nil {
		reg = ops.Default
	}
	return &Engine{reg: reg}
}

// Apply intercepts one element-wise backend call identified by ufunc and
// propagates n through the operation bound to it. Unbound identities fail
// with an unsupported-operation error.
func (e *Engine) Apply(ufunc string, n *number.Number, args ...float64) (*number.Number, error) {
	op, err := e.reg.GetUFunc(ufunc)
	if err != nil {
		return nil, err
	}
	if op.Derivative == nil {
		return nil, core.NewNoDerivativeError(op.Name)
	}
	return number.Propagate(n, op.Fn, op.Derivative, args...)
}

// Value adapts a Number to the backend dispatch capability.
type Value struct {
	num    *number.Number
	engine *Engine
}

var _ ports.ElementwiseDispatchable = (*Value)(nil)

// Wrap adapts n using the default registry.
func Wrap(n *number.Number) *Value {
	return WrapWith(n, NewEngine(nil))
}

// WrapWith adapts n using a specific engine.
func WrapWith(n *number.Number, e *Engine) *Value {
	return &Value{num: n, engine: e}
}

// Number returns the wrapped Number.
func (v *Value) Number() *number.Number {
	return v.num
}

// DispatchUFunc implements ports.ElementwiseDispatchable.
func (v *Value) DispatchUFunc(name string, args ...float64) (ports.ElementwiseDispatchable, error) {
	out, err := v.engine.Apply(name, v.num, args...)
	if err != nil {
		return nil, err
	}
	return WrapWith(out, v.engine), nil
}
