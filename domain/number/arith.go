package number

import (
	"math"

	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/internal/vecmath"
)

// Operand is the closed set of values a Number can be combined with: a
// plain Const, another Number, or a DeferredResult carrying a correlation.
// A bare Correlation is a member only so that combining it directly can be
// rejected with a composition error.
type Operand interface {
	operand()
}

// Const is a plain numeric constant operand.
type Const float64

func (Const) operand()   {}
func (*Number) operand() {}

type opKind int

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
	opPow
)

// OpOption configures a single binary operation.
type OpOption func(*opOpts)

type opOpts struct {
	rho     float64
	rhoSet  bool
	rhoMap  map[string]float64
	corr    *Correlation
	inPlace bool
}

// WithRho overrides the correlation coefficient applied to every source
// name shared by both operands. The default for shared names is 1 (the two
// contributions are treated as the same underlying effect).
func WithRho(v float64) OpOption {
	return func(o *opOpts) {
		o.rho = v
		o.rhoSet = true
	}
}

// WithRhoMap overrides the shared-name correlation per source; unlisted
// names keep the default of 1.
func WithRhoMap(m map[string]float64) OpOption {
	return func(o *opOpts) {
		o.rhoMap = m
	}
}

// InPlace mutates the receiver instead of producing a new Number.
func InPlace() OpOption {
	return func(o *opOpts) {
		o.inPlace = true
	}
}

func withCorrelation(c Correlation) OpOption {
	return func(o *opOpts) {
		o.corr = &c
	}
}

// Add returns n + other with propagated uncertainties.
func (n *Number) Add(other Operand, opts ...OpOption) (*Number, error) {
	return n.binary(opAdd, other, opts)
}

// Sub returns n - other with propagated uncertainties.
func (n *Number) Sub(other Operand, opts ...OpOption) (*Number, error) {
	return n.binary(opSub, other, opts)
}

// Mul returns n * other with propagated uncertainties.
func (n *Number) Mul(other Operand, opts ...OpOption) (*Number, error) {
	return n.binary(opMul, other, opts)
}

// Div returns n / other with propagated uncertainties.
func (n *Number) Div(other Operand, opts ...OpOption) (*Number, error) {
	return n.binary(opDiv, other, opts)
}

// Pow returns n raised to other with propagated uncertainties. For a
// constant raised to a Number, promote the constant to a Number first.
func (n *Number) Pow(other Operand, opts ...OpOption) (*Number, error) {
	return n.binary(opPow, other, opts)
}

func (n *Number) binary(kind opKind, other Operand, opts []OpOption) (*Number, error) {
	var o opOpts
	for _, opt := range opts {
		opt(&o)
	}

	var b *Number
	switch t := other.(type) {
	case Const:
		b = newScalar(float64(t))
	case *Number:
		b = t
	case *DeferredResult:
		b = t.number
		c := t.correlation
		o.corr = &c
	case Correlation:
		return nil, compositionErr("a correlation must be applied with Correlated before combining")
	case nil:
		return nil, compositionErr("nil operand")
	default:
		return nil, compositionErr("unsupported operand")
	}

	size := len(n.nominal)
	if len(b.nominal) > size {
		size = len(b.nominal)
	}
	na, ok := vecmath.Broadcast(n.nominal, size)
	if !ok {
		return nil, core.NewShapeError("nominal", len(n.nominal), size)
	}
	nb, ok := vecmath.Broadcast(b.nominal, size)
	if !ok {
		return nil, core.NewShapeError("nominal", len(b.nominal), size)
	}

	nominal := vecmath.Apply2(kind.apply, na, nb)

	names := mergeSorted(n.order, b.order)
	uncs := make(map[string]pair, len(names))
	zero := []float64{0}

	for _, name := range names {
		pa, aok := n.uncs[name]
		pb, bok := b.uncs[name]
		if !aok {
			pa = pair{up: zero, down: zero}
		}
		if !bok {
			pb = pair{up: zero, down: zero}
		}
		rho := o.resolveRho(name)

		uaU, _ := vecmath.Broadcast(pa.up, size)
		uaD, _ := vecmath.Broadcast(pa.down, size)
		ubU, _ := vecmath.Broadcast(pb.up, size)
		ubD, _ := vecmath.Broadcast(pb.down, size)

		up := make([]float64, size)
		down := make([]float64, size)
		for i := 0; i < size; i++ {
			d1, d2 := kind.partials(na[i], nb[i])
			up[i] = CalculateUncertainty([]Term{{d1, uaU[i]}, {d2, ubU[i]}}, UniformRho(rho))
			down[i] = CalculateUncertainty([]Term{{d1, uaD[i]}, {d2, ubD[i]}}, UniformRho(rho))
		}
		uncs[name] = pair{up: up, down: down}
	}

	vector := n.vector || b.vector
	if o.inPlace {
		n.nominal = nominal
		n.vector = vector
		n.uncs = uncs
		n.order = names
		return n, nil
	}
	return &Number{nominal: nominal, vector: vector, uncs: uncs, order: names}, nil
}

// resolveRho picks the correlation coefficient for one shared source name:
// a deferred Correlation wins, then an explicit per-call override, then the
// default of full correlation.
func (o *opOpts) resolveRho(name string) float64 {
	if o.corr != nil {
		return o.corr.Get(name)
	}
	if o.rhoMap != nil {
		if v, ok := o.rhoMap[name]; ok {
			return v
		}
		return 1
	}
	if o.rhoSet {
		return o.rho
	}
	return 1
}

func (k opKind) apply(a, b float64) float64 {
	switch k {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	case opDiv:
		return a / b
	default:
		return math.Pow(a, b)
	}
}

// partials returns the signed partial derivatives of a OP b with respect to
// a and b, evaluated at the nominal values. The sub/div sign flip and the
// pow log term of the textbook combination formulas fall out of the signs.
func (k opKind) partials(a, b float64) (float64, float64) {
	switch k {
	case opAdd:
		return 1, 1
	case opSub:
		return 1, -1
	case opMul:
		return b, a
	case opDiv:
		return 1 / b, -a / (b * b)
	default:
		d1 := b * math.Pow(a, b-1)
		if b == 0 {
			// a^0 is constant in a
			d1 = 0
		}
		d2 := math.Pow(a, b) * math.Log(a)
		if a == 0 {
			// lim a->0 of a^b * ln(a) for b > 0
			d2 = 0
		}
		return d1, d2
	}
}

func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func compositionErr(reason string) error {
	return core.NewCompositionError(reason)
}
