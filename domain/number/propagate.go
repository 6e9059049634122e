package number

import (
	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/internal/vecmath"
)

// Func is the shape of an operation's value function and of its derivative
// with respect to the first argument. Extra parameters (an exponent, a
// logarithm base) arrive through args.
type Func func(x float64, args ...float64) float64

// Propagate applies a unary operation to n: the nominal value goes through
// fn element-wise and every uncertainty source is scaled by the absolute
// derivative at the nominal value. Up/down directionality is preserved from
// the operand regardless of the derivative's sign.
func Propagate(n *Number, fn, derivative Func, args ...float64) (*Number, error) {
	if fn == nil {
		return nil, compositionErr("operation without a value function")
	}
	if derivative == nil {
		return nil, core.ErrNoDerivative
	}

	size := len(n.nominal)
	nominal := make([]float64, size)
	scale := make([]float64, size)
	for i, x := range n.nominal {
		nominal[i] = fn(x, args...)
		scale[i] = abs(derivative(x, args...))
	}

	out := &Number{
		nominal: nominal,
		vector:  n.vector,
		uncs:    make(map[string]pair, len(n.order)),
		order:   append([]string(nil), n.order...),
	}
	for _, name := range n.order {
		p := n.uncs[name]
		up, _ := vecmath.Broadcast(p.up, size)
		down, _ := vecmath.Broadcast(p.down, size)
		out.uncs[name] = pair{
			up:   vecmath.Mul(scale, up),
			down: vecmath.Mul(scale, down),
		}
	}
	return out, nil
}
