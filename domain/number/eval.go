package number

import (
	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/internal/vecmath"
)

// EvalOption configures a directional evaluation.
type EvalOption func(*evalOpts)

type evalOpts struct {
	names    []string
	namesSet bool
	diff     bool
	factor   bool
}

// Names restricts the evaluation to a subset of uncertainty sources. Calling
// it with no names selects none, which leaves the nominal value unchanged.
func Names(names ...string) EvalOption {
	return func(o *evalOpts) {
		o.names = names
		o.namesSet = true
	}
}

// Diff returns the unsigned combined deviation instead of nominal ± deviation.
func Diff() EvalOption {
	return func(o *evalOpts) {
		o.diff = true
	}
}

// Factor divides the result by the nominal value.
func Factor() EvalOption {
	return func(o *evalOpts) {
		o.factor = true
	}
}

// Get evaluates the Number in a direction. For Up and Down the selected
// sources' magnitudes are combined in quadrature (sources are independent of
// each other at this stage) and added to or subtracted from the nominal
// value. For a vector-valued Number the first element is returned; see
// GetVector.
func (n *Number) Get(dir Direction, opts ...EvalOption) (float64, error) {
	vs, err := n.GetVector(dir, opts...)
	if err != nil {
		return 0, err
	}
	return vs[0], nil
}

// GetVector is the element-wise form of Get.
func (n *Number) GetVector(dir Direction, opts ...EvalOption) ([]float64, error) {
	var o evalOpts
	for _, opt := range opts {
		opt(&o)
	}

	var value []float64
	switch dir {
	case Nominal:
		value = vecmath.Clone(n.nominal)

	case Up, Down:
		names := n.order
		if o.namesSet {
			names = o.names
			var unknown []string
			for _, name := range names {
				if !n.Has(name) {
					unknown = append(unknown, name)
				}
			}
			if len(unknown) > 0 {
				return nil, core.NewUnknownSourceError(unknown...)
			}
		}

		size := len(n.nominal)
		dev := make([]float64, size)
		terms := make([]Term, len(names))
		for i := 0; i < size; i++ {
			for j, name := range names {
				p := n.uncs[name]
				side := p.up
				if dir == Down {
					side = p.down
				}
				u := side[0]
				if len(side) > 1 {
					u = side[i]
				}
				terms[j] = Term{Derivative: 1, Magnitude: u}
			}
			dev[i] = CalculateUncertainty(terms, Rho{})
		}

		switch {
		case o.diff:
			value = dev
		case dir == Up:
			value = vecmath.Add(n.nominal, dev)
		default:
			value = vecmath.Sub(n.nominal, dev)
		}

	default:
		return nil, core.ErrDirection
	}

	if o.factor {
		value = vecmath.Div(value, n.nominal)
	}
	return value, nil
}
