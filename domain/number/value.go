// Package number implements a scientific number: a nominal value, scalar or
// element-wise vector, carrying named uncertainty sources with asymmetric
// up/down magnitudes. Uncertainties propagate analytically through arithmetic
// and registered operations, with correlation-aware combination.
package number

import (
	"sort"

	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/internal/vecmath"
)

// DefaultName is the reserved source name used when an uncertainty is given
// without a name.
const DefaultName = "default"

// Direction selects which side of a Number to evaluate.
type Direction string

const (
	// Nominal selects the central value.
	Nominal Direction = "nominal"

	// Up selects the upward variation.
	Up Direction = "up"

	// Down selects the downward variation.
	Down Direction = "down"
)

// pair holds the absolute up/down magnitudes of one uncertainty source.
// Slices have length one (a scalar that broadcasts) or the nominal length.
type pair struct {
	up, down []float64
}

func (p pair) clone() pair {
	return pair{up: vecmath.Clone(p.up), down: vecmath.Clone(p.down)}
}

// Number is a nominal value with named uncertainty sources. Arithmetic and
// propagation produce new instances unless in-place mode is requested
// explicitly; concurrent reads are safe as long as nobody mutates.
type Number struct {
	nominal []float64
	vector  bool
	uncs    map[string]pair
	order   []string
}

// New creates a scalar Number. With one magnitude a symmetric absolute
// uncertainty is attached under DefaultName, with two magnitudes the up and
// down sides are given separately. More than two magnitudes are rejected
// like any other oversized uncertainty specification.
func New(nominal float64, uncertainty ...float64) (*Number, error) {
	n := newScalar(nominal)
	if err := attachDefault(n, uncertainty); err != nil {
		return nil, err
	}
	return n, nil
}

// NewVector creates a vector-valued Number. The optional magnitudes behave
// as in New and broadcast across all elements.
func NewVector(nominal []float64, uncertainty ...float64) (*Number, error) {
	if len(nominal) == 0 {
		return nil, core.NewShapeError(DefaultName, 0, 1)
	}
	n := &Number{
		nominal: vecmath.Clone(nominal),
		vector:  true,
		uncs:    map[string]pair{},
	}
	if err := attachDefault(n, uncertainty); err != nil {
		return nil, err
	}
	return n, nil
}

func newScalar(nominal float64) *Number {
	return &Number{
		nominal: []float64{nominal},
		uncs:    map[string]pair{},
	}
}

func attachDefault(n *Number, uncertainty []float64) error {
	switch len(uncertainty) {
	case 0:
	case 1:
		u := abs(uncertainty[0])
		n.setPair(DefaultName, pair{up: []float64{u}, down: []float64{u}})
	case 2:
		n.setPair(DefaultName, pair{
			up:   []float64{abs(uncertainty[0])},
			down: []float64{abs(uncertainty[1])},
		})
	default:
		return core.NewSpecError(DefaultName, "unsupported sequence length")
	}
	return nil
}

// NewWithUncertainties creates a scalar Number with named uncertainty
// specifications.
func NewWithUncertainties(nominal float64, uncs map[string]Spec) (*Number, error) {
	n := newScalar(nominal)
	if err := n.assignAll(uncs); err != nil {
		return nil, err
	}
	return n, nil
}

// NewVectorWithUncertainties creates a vector-valued Number with named
// uncertainty specifications.
func NewVectorWithUncertainties(nominal []float64, uncs map[string]Spec) (*Number, error) {
	n, err := NewVector(nominal)
	if err != nil {
		return nil, err
	}
	if err := n.assignAll(uncs); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Number) assignAll(uncs map[string]Spec) error {
	names := make([]string, 0, len(uncs))
	for name := range uncs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := n.SetUncertainty(name, uncs[name]); err != nil {
			return err
		}
	}
	return nil
}

// Nominal returns the nominal value. For a vector-valued Number this is the
// first element; use NominalVector for the full shape.
func (n *Number) Nominal() float64 {
	return n.nominal[0]
}

// NominalVector returns a copy of the element-wise nominal values.
func (n *Number) NominalVector() []float64 {
	return vecmath.Clone(n.nominal)
}

// IsVector reports whether the Number is vector-valued.
func (n *Number) IsVector() bool {
	return n.vector
}

// Len returns the number of elements, 1 for a scalar.
func (n *Number) Len() int {
	return len(n.nominal)
}

// SetNominal replaces the nominal value with a scalar. Vector-valued
// uncertainties of length other than one become incompatible and are
// rejected with a shape error before anything is modified.
func (n *Number) SetNominal(v float64) error {
	return n.setNominal([]float64{v}, false)
}

// SetNominalVector replaces the nominal value with an element-wise vector.
// Existing scalar uncertainties keep broadcasting; vector uncertainties must
// match the new length.
func (n *Number) SetNominalVector(vs []float64) error {
	if len(vs) == 0 {
		return core.NewShapeError(DefaultName, 0, 1)
	}
	return n.setNominal(vecmath.Clone(vs), true)
}

func (n *Number) setNominal(vs []float64, vector bool) error {
	for _, name := range n.order {
		p := n.uncs[name]
		for _, side := range [][]float64{p.up, p.down} {
			if len(side) != 1 && len(side) != len(vs) {
				return core.NewShapeError(name, len(side), len(vs))
			}
		}
	}
	n.nominal = vs
	n.vector = vector
	return nil
}

// Names returns the uncertainty source names in deterministic (sorted)
// order.
func (n *Number) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Has reports whether an uncertainty source with the given name exists.
func (n *Number) Has(name string) bool {
	_, ok := n.uncs[name]
	return ok
}

// GetUncertainty returns the absolute up and down magnitudes of a source.
// For vector-valued Numbers the first element is returned; see
// GetUncertaintyVector.
func (n *Number) GetUncertainty(name string) (up, down float64, err error) {
	p, ok := n.uncs[name]
	if !ok {
		return 0, 0, core.NewUnknownSourceError(name)
	}
	return p.up[0], p.down[0], nil
}

// GetUncertaintyVector returns the element-wise up and down magnitudes of a
// source, broadcast to the nominal length.
func (n *Number) GetUncertaintyVector(name string) (up, down []float64, err error) {
	p, ok := n.uncs[name]
	if !ok {
		return nil, nil, core.NewUnknownSourceError(name)
	}
	u, _ := vecmath.Broadcast(p.up, len(n.nominal))
	d, _ := vecmath.Broadcast(p.down, len(n.nominal))
	return vecmath.Clone(u), vecmath.Clone(d), nil
}

// Uncertainty returns one side of a source's magnitude.
func (n *Number) Uncertainty(name string, dir Direction) (float64, error) {
	up, down, err := n.GetUncertainty(name)
	if err != nil {
		return 0, err
	}
	switch dir {
	case Up:
		return up, nil
	case Down:
		return down, nil
	default:
		return 0, core.ErrDirection
	}
}

// SetUncertainty parses spec and assigns the result to name, replacing any
// previous value. Shape incompatibilities and malformed specifications are
// rejected without modifying the Number.
func (n *Number) SetUncertainty(name string, spec Spec) error {
	p, err := parsePair(n.nominal, n.vector, name, spec)
	if err != nil {
		return err
	}
	n.setPair(name, p)
	return nil
}

func (n *Number) setPair(name string, p pair) {
	if _, ok := n.uncs[name]; !ok {
		i := sort.SearchStrings(n.order, name)
		n.order = append(n.order, "")
		copy(n.order[i+1:], n.order[i:])
		n.order[i] = name
	}
	n.uncs[name] = p
}

// ClearUncertainties removes every uncertainty source.
func (n *Number) ClearUncertainties() {
	n.uncs = map[string]pair{}
	n.order = nil
}

// Copy returns an independent deep copy, optionally overriding the nominal
// value and/or the uncertainties.
func (n *Number) Copy(opts ...CopyOption) (*Number, error) {
	var o copyOpts
	for _, opt := range opts {
		opt(&o)
	}

	out := &Number{
		nominal: vecmath.Clone(n.nominal),
		vector:  n.vector,
		uncs:    map[string]pair{},
	}
	if o.nominal != nil {
		out.nominal = vecmath.Clone(o.nominal)
		out.vector = o.vector
	}

	if o.clear {
		if o.uncs != nil {
			if err := out.assignAll(o.uncs); err != nil {
				return nil, err
			}
		}
		if o.defaultUnc != nil {
			if err := attachDefault(out, o.defaultUnc); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	for _, name := range n.order {
		p := n.uncs[name]
		for _, side := range [][]float64{p.up, p.down} {
			if len(side) != 1 && len(side) != len(out.nominal) {
				return nil, core.NewShapeError(name, len(side), len(out.nominal))
			}
		}
		out.setPair(name, p.clone())
	}
	return out, nil
}

// CopyOption overrides fields of a copied Number.
type CopyOption func(*copyOpts)

type copyOpts struct {
	nominal    []float64
	vector     bool
	clear      bool
	uncs       map[string]Spec
	defaultUnc []float64
}

// CopyNominal overrides the nominal value with a scalar.
func CopyNominal(v float64) CopyOption {
	return func(o *copyOpts) {
		o.nominal = []float64{v}
		o.vector = false
	}
}

// CopyNominalVector overrides the nominal value with a vector.
func CopyNominalVector(vs []float64) CopyOption {
	return func(o *copyOpts) {
		o.nominal = vecmath.Clone(vs)
		o.vector = true
	}
}

// CopyUncertainty replaces all uncertainties with a single symmetric
// absolute default uncertainty.
func CopyUncertainty(u float64) CopyOption {
	return func(o *copyOpts) {
		o.clear = true
		o.defaultUnc = []float64{u}
	}
}

// CopyUncertainties replaces all uncertainties with the given
// specifications.
func CopyUncertainties(uncs map[string]Spec) CopyOption {
	return func(o *copyOpts) {
		o.clear = true
		o.uncs = uncs
	}
}

// Neg returns a copy with the nominal value negated. Uncertainty magnitudes
// are unaffected.
func (n *Number) Neg() *Number {
	out, _ := n.Copy()
	out.nominal = vecmath.Scale(-1, out.nominal)
	return out
}

// Abs returns a copy with a non-negative nominal value.
func (n *Number) Abs() *Number {
	out, _ := n.Copy()
	out.nominal = vecmath.Apply(abs, out.nominal)
	return out
}

// Value returns the nominal value; it is the zero-argument evaluation.
func (n *Number) Value() float64 {
	return n.Nominal()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
