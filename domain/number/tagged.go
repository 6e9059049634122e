package number

import (
	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/ports"
)

// FromTagged imports an external tagged float: each component tag becomes a
// named uncertainty source (untagged components land under DefaultName), and
// components sharing a tag accumulate linearly. Supplying explicit
// uncertainties alongside a tagged float is contradictory and rejected.
func FromTagged(tf ports.TaggedFloat, uncs map[string]Spec) (*Number, error) {
	if tf == nil {
		return nil, compositionErr("nil tagged float")
	}
	if len(uncs) > 0 {
		return nil, core.NewSpecError(DefaultName,
			"explicit uncertainties conflict with a tagged float")
	}

	merged := map[string]float64{}
	var order []string
	for _, comp := range tf.Components() {
		tag := comp.Tag
		if tag == "" {
			tag = DefaultName
		}
		if _, ok := merged[tag]; !ok {
			order = append(order, tag)
		}
		merged[tag] += abs(comp.Sigma)
	}

	n := newScalar(tf.Nominal())
	for _, tag := range order {
		u := merged[tag]
		n.setPair(tag, pair{up: []float64{u}, down: []float64{u}})
	}
	return n, nil
}
