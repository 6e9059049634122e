package number

import "math"

// Term is one contribution to a combined uncertainty: the partial derivative
// of the result with respect to the contributing source, and the source's
// magnitude.
type Term struct {
	Derivative float64
	Magnitude  float64
}

// Rho describes the correlation between the terms passed to
// CalculateUncertainty. The zero value treats all terms as independent.
type Rho struct {
	uniform float64
	pairs   map[[2]int]float64
	paired  bool
}

// UniformRho applies one coefficient between every pair of distinct terms.
func UniformRho(v float64) Rho {
	return Rho{uniform: v}
}

// PairRho applies explicit coefficients to unordered term index pairs;
// unlisted pairs are independent.
func PairRho(pairs map[[2]int]float64) Rho {
	return Rho{pairs: pairs, paired: true}
}

func (r Rho) get(i, j int) float64 {
	if !r.paired {
		return r.uniform
	}
	if v, ok := r.pairs[[2]int{i, j}]; ok {
		return v
	}
	return r.pairs[[2]int{j, i}]
}

// CalculateUncertainty folds the terms into one scalar uncertainty:
//
//	sqrt( sum_i x_i^2 + 2 * sum_{i<j} rho_ij * x_i * x_j ),  x_i = d_i * u_i
//
// With rho = 0 this is ordinary quadrature; with rho = 1 between two terms
// it degenerates to the linear combination |x_i + x_j|.
func CalculateUncertainty(terms []Term, rho Rho) float64 {
	sum := 0.0
	for i, t := range terms {
		x := t.Derivative * t.Magnitude
		sum += x * x
		for j := i + 1; j < len(terms); j++ {
			y := terms[j].Derivative * terms[j].Magnitude
			sum += 2 * rho.get(i, j) * x * y
		}
	}
	if sum < 0 {
		// anti-correlated terms can undershoot zero by a rounding error
		sum = 0
	}
	return math.Sqrt(sum)
}
