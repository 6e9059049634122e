// Package vecmath provides small element-wise helpers over float64 slices,
// backed by gonum. Slices of length one act as scalars that broadcast across
// any target length.
package vecmath

import (
	"gonum.org/v1/gonum/floats"
)

// Clone returns an independent copy of xs.
func Clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// Broadcast stretches xs to length n. A length-one slice is repeated, a
// slice already of length n is returned as is. The second return value is
// false when the lengths are incompatible.
func Broadcast(xs []float64, n int) ([]float64, bool) {
	switch len(xs) {
	case n:
		return xs, true
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = xs[0]
		}
		return out, true
	default:
		return nil, false
	}
}

// Apply maps f over xs into a new slice.
func Apply(f func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Apply2 combines the aligned slices xs and ys element-wise with f. Both
// slices must have the same length.
func Apply2(f func(a, b float64) float64, xs, ys []float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = f(xs[i], ys[i])
	}
	return out
}

// Add returns a + b element-wise.
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.AddTo(out, a, b)
	return out
}

// Sub returns a - b element-wise.
func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	return out
}

// Mul returns a * b element-wise.
func Mul(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.MulTo(out, a, b)
	return out
}

// Div returns a / b element-wise.
func Div(a, b []float64) []float64 {
	out := make([]float64, len(a))
	floats.DivTo(out, a, b)
	return out
}

// Scale returns c * xs.
func Scale(c float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	floats.ScaleTo(out, c, xs)
	return out
}

// AddConst returns xs + c.
func AddConst(c float64, xs []float64) []float64 {
	out := Clone(xs)
	floats.AddConst(c, out)
	return out
}
