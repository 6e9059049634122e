// Package measure turns raw measurement samples into tagged readings that a
// Number can import: the sample mean becomes the nominal value and the
// standard error of the mean becomes a symmetric uncertainty under the
// reading's tag.
package measure

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/adavidzh/scinum/ports"
)

// ErrNoSamples is returned when a reading is built from an empty sample set.
var ErrNoSamples = errors.New("measure: no samples")

// Reading is one tagged measurement summary. It implements
// ports.TaggedFloat with a single component.
type Reading struct {
	tag     string
	nominal float64
	sigma   float64
}

// NewReading builds a reading directly from a nominal value and a one-sigma
// magnitude.
func NewReading(tag string, nominal, sigma float64) Reading {
	return Reading{tag: tag, nominal: nominal, sigma: math.Abs(sigma)}
}

// FromSamples summarizes samples into a reading: nominal = mean, sigma =
// sample standard deviation / sqrt(n). A single sample yields sigma 0.
func FromSamples(tag string, samples []float64) (Reading, error) {
	if len(samples) == 0 {
		return Reading{}, ErrNoSamples
	}
	data := stats.Float64Data(samples)

	mean, err := stats.Mean(data)
	if err != nil {
		return Reading{}, err
	}
	if len(samples) == 1 {
		return Reading{tag: tag, nominal: mean}, nil
	}

	sd, err := stats.StandardDeviationSample(data)
	if err != nil {
		return Reading{}, err
	}
	return Reading{
		tag:     tag,
		nominal: mean,
		sigma:   sd / math.Sqrt(float64(len(samples))),
	}, nil
}

// Tag returns the reading's tag.
func (r Reading) Tag() string { return r.tag }

// Sigma returns the reading's one-sigma magnitude.
func (r Reading) Sigma() float64 { return r.sigma }

// Nominal implements ports.TaggedFloat.
func (r Reading) Nominal() float64 { return r.nominal }

// Components implements ports.TaggedFloat.
func (r Reading) Components() []ports.Component {
	return []ports.Component{{Tag: r.tag, Sigma: r.sigma}}
}

// Result is the sum of several readings: nominal values add up and every
// reading contributes its own tagged component. It implements
// ports.TaggedFloat, so importing it into a Number merges same-tag
// components linearly.
type Result struct {
	nominal float64
	comps   []ports.Component
}

var (
	_ ports.TaggedFloat = Reading{}
	_ ports.TaggedFloat = Result{}
)

// Combine sums readings into a Result.
func Combine(readings ...Reading) Result {
	out := Result{comps: make([]ports.Component, 0, len(readings))}
	for _, r := range readings {
		out.nominal += r.nominal
		out.comps = append(out.comps, ports.Component{Tag: r.tag, Sigma: r.sigma})
	}
	return out
}

// Nominal implements ports.TaggedFloat.
func (r Result) Nominal() float64 { return r.nominal }

// Components implements ports.TaggedFloat.
func (r Result) Components() []ports.Component {
	out := make([]ports.Component, len(r.comps))
	copy(out, r.comps)
	return out
}
