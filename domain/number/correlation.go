package number

// Correlation carries a default correlation coefficient plus per-source
// overrides. It is immutable after construction and only takes effect when
// applied to a Number via Correlated (or Correlation.Apply), which defers
// the coefficients until the next binary operation.
type Correlation struct {
	def       float64
	overrides map[string]float64
}

// NewCorrelation creates a Correlation with an explicit default coefficient.
// Source names listed in overrides use their own coefficient instead.
func NewCorrelation(def float64, overrides map[string]float64) Correlation {
	c := Correlation{def: def}
	if len(overrides) > 0 {
		c.overrides = make(map[string]float64, len(overrides))
		for name, v := range overrides {
			c.overrides[name] = v
		}
	}
	return c
}

// Corr creates a Correlation whose default coefficient is 1, matching the
// engine's same-name assumption for unlisted sources.
func Corr(overrides map[string]float64) Correlation {
	return NewCorrelation(1, overrides)
}

// Default returns the default coefficient.
func (c Correlation) Default() float64 {
	return c.def
}

// Get returns the coefficient for name: the override if present, else the
// optional fallback, else the default.
func (c Correlation) Get(name string, fallback ...float64) float64 {
	if v, ok := c.overrides[name]; ok {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return c.def
}

// Apply pairs the correlation with a Number, the composition-style
// counterpart of Number.Correlated.
func (c Correlation) Apply(n *Number) *DeferredResult {
	return n.Correlated(c)
}

// operand marker, see Operand.
func (Correlation) operand() {}

// DeferredResult pairs a Number with a Correlation. It is transient: the
// next binary operation against another Number resolves it, using the
// correlation's per-source coefficients instead of the default same-name
// assumption for that one combination.
type DeferredResult struct {
	number      *Number
	correlation Correlation
}

// Correlated defers the correlation coefficients in c onto the next binary
// operation involving n.
func (n *Number) Correlated(c Correlation) *DeferredResult {
	return &DeferredResult{number: n, correlation: c}
}

// Number returns the wrapped Number.
func (d *DeferredResult) Number() *Number {
	return d.number
}

// Correlation returns the wrapped Correlation.
func (d *DeferredResult) Correlation() Correlation {
	return d.correlation
}

// operand marker, see Operand.
func (*DeferredResult) operand() {}

// Add resolves the deferred correlation through an addition with other,
// which must be a Number.
func (d *DeferredResult) Add(other Operand, opts ...OpOption) (*Number, error) {
	return d.resolve(opAdd, other, opts)
}

// Sub resolves the deferred correlation through a subtraction.
func (d *DeferredResult) Sub(other Operand, opts ...OpOption) (*Number, error) {
	return d.resolve(opSub, other, opts)
}

// Mul resolves the deferred correlation through a multiplication.
func (d *DeferredResult) Mul(other Operand, opts ...OpOption) (*Number, error) {
	return d.resolve(opMul, other, opts)
}

// Div resolves the deferred correlation through a division.
func (d *DeferredResult) Div(other Operand, opts ...OpOption) (*Number, error) {
	return d.resolve(opDiv, other, opts)
}

// Pow resolves the deferred correlation through exponentiation.
func (d *DeferredResult) Pow(other Operand, opts ...OpOption) (*Number, error) {
	return d.resolve(opPow, other, opts)
}

func (d *DeferredResult) resolve(kind opKind, other Operand, opts []OpOption) (*Number, error) {
	num, ok := other.(*Number)
	if !ok {
		return nil, compositionErr("a deferred result resolves only against a Number")
	}
	return d.number.binary(kind, num, append(opts, withCorrelation(d.correlation)))
}
