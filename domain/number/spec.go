package number

import (
	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/internal/vecmath"
)

// Tag switches how the magnitudes that follow it in a Spec are interpreted.
// A tag stays in effect until another tag appears; specifications start in
// absolute mode.
type Tag string

const (
	// Rel marks the following magnitude as relative to the nominal value.
	Rel Tag = "REL"

	// Abs marks the following magnitude as absolute. This is the initial
	// mode of every specification.
	Abs Tag = "ABS"
)

// Spec is an uncertainty specification sequence. Valid items are magnitudes
// (float64, int or []float64 for element-wise values) and Tags. Examples:
//
//	Spec{0.5}                      // absolute 0.5, both up and down
//	Spec{1.0, 1.5}                 // absolute 1.0 up, 1.5 down
//	Spec{Rel, 0.1}                 // relative 10%, both up and down
//	Spec{Rel, 0.1, 0.2}            // relative 10% up, 20% down
//	Spec{1.0, Rel, 0.2}            // absolute 1.0 up, relative 20% down
//	Spec{Rel, 0.3, Abs, 0.3}       // relative 30% up, absolute 0.3 down
//
// A specification with a single magnitude is symmetric. All results are
// normalized to absolute, non-negative up/down magnitudes at parse time.
type Spec []any

// S is shorthand for building a Spec literal.
func S(items ...any) Spec {
	return Spec(items)
}

// parsePair normalizes a Spec into an absolute up/down pair, resolving
// relative magnitudes against nominal and validating shapes.
func parsePair(nominal []float64, vector bool, name string, spec Spec) (pair, error) {
	if len(spec) == 0 {
		return pair{}, core.NewSpecError(name, "empty specification")
	}

	mode := Abs
	pendingTag := false
	var up, down []float64

	for _, item := range spec {
		mag, isMag, err := asMagnitude(item, name)
		if err != nil {
			return pair{}, err
		}

		if !isMag {
			tag, ok := item.(Tag)
			if !ok {
				return pair{}, core.NewSpecError(name, "unsupported item type")
			}
			if tag != Rel && tag != Abs {
				return pair{}, core.NewSpecError(name, "unknown tag "+string(tag))
			}
			if pendingTag {
				return pair{}, core.NewSpecError(name, "tag without a following magnitude")
			}
			mode = tag
			pendingTag = true
			continue
		}

		pendingTag = false
		if err := checkShape(mag, nominal, vector, name); err != nil {
			return pair{}, err
		}
		if mode == Rel {
			b, _ := vecmath.Broadcast(mag, len(nominal))
			mag = vecmath.Mul(b, nominal)
		}
		mag = vecmath.Apply(abs, mag)

		switch {
		case up == nil:
			up = mag
		case down == nil:
			down = mag
		default:
			return pair{}, core.NewSpecError(name, "unsupported sequence length")
		}
	}

	if pendingTag {
		return pair{}, core.NewSpecError(name, "tag without a following magnitude")
	}
	if up == nil {
		return pair{}, core.NewSpecError(name, "no magnitude given")
	}
	if down == nil {
		down = vecmath.Clone(up)
	}

	return pair{up: up, down: down}, nil
}

// asMagnitude converts a numeric Spec item to a slice. The second return
// value is false when the item is not numeric at all.
func asMagnitude(item any, name string) ([]float64, bool, error) {
	switch v := item.(type) {
	case float64:
		return []float64{v}, true, nil
	case int:
		return []float64{float64(v)}, true, nil
	case []float64:
		if len(v) == 0 {
			return nil, true, core.NewSpecError(name, "empty magnitude vector")
		}
		return vecmath.Clone(v), true, nil
	default:
		return nil, false, nil
	}
}

func checkShape(mag, nominal []float64, vector bool, name string) error {
	if len(mag) == 1 {
		return nil
	}
	if !vector || len(mag) != len(nominal) {
		return core.NewShapeError(name, len(mag), len(nominal))
	}
	return nil
}
