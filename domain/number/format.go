package number

import (
	"fmt"
	"strings"

	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/domain/rounding"
)

// DefaultTemplate is the precision template used by String.
const DefaultTemplate = ".2"

// String renders the Number at the default precision template.
func (n *Number) String() string {
	s, err := n.Str(DefaultTemplate)
	if err != nil {
		return fmt.Sprintf("%v", n.nominal)
	}
	return s
}

// Str renders the nominal value and all uncertainty sources, each matched to
// the precision template (see rounding.MatchPrecision). A Number without
// uncertainty sources renders with an explicit "(no uncertainties)" marker.
func (n *Number) Str(template string) (string, error) {
	nom, err := n.formatValues(n.nominal, template)
	if err != nil {
		return "", err
	}

	switch {
	case len(n.order) == 0:
		return nom + " (no uncertainties)", nil

	case len(n.order) == 1 && n.order[0] == DefaultName:
		p := n.uncs[DefaultName]
		up, err := n.formatValues(p.up, template)
		if err != nil {
			return "", err
		}
		down, err := n.formatValues(p.down, template)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (+%s, -%s)", nom, up, down), nil

	default:
		var sb strings.Builder
		sb.WriteString(nom)
		for _, name := range n.order {
			p := n.uncs[name]
			up, err := n.formatValues(p.up, template)
			if err != nil {
				return "", err
			}
			down, err := n.formatValues(p.down, template)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, ", %s: (+%s, -%s)", name, up, down)
		}
		return sb.String(), nil
	}
}

func (n *Number) formatValues(vs []float64, template string) (string, error) {
	if len(vs) == 1 {
		return rounding.MatchPrecision(vs[0], template)
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		s, err := rounding.MatchPrecision(v, template)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// Round renders the nominal value jointly with every source's up and down
// magnitude (in name order) at the shared magnitude chosen by the rounding
// method. It mirrors rounding.RoundValue with the Number's own
// uncertainties as the precision reference; a Number without uncertainties
// cannot be rounded. Scalar Numbers only.
func (n *Number) Round(method rounding.Method) (string, []string, int, error) {
	if n.vector {
		return "", nil, 0, fmt.Errorf("%w: cannot round a vector-valued number", core.ErrShape)
	}
	if len(n.order) == 0 {
		return "", nil, 0, rounding.ErrNoUncertainty
	}

	uncs := make([]float64, 0, 2*len(n.order))
	for _, name := range n.order {
		p := n.uncs[name]
		uncs = append(uncs, p.up[0], p.down[0])
	}
	return rounding.RoundValue(n.nominal[0], uncs, method)
}
