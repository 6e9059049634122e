package number

import (
	"testing"

	"github.com/adavidzh/scinum/domain/core"
)

func TestSpecParsing(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		up   float64
		down float64
	}{
		{"A", S(0.5), 0.5, 0.5},
		{"B", S(1.0), 1.0, 1.0},
		{"C", S(1.0, 1.5), 1.0, 1.5},
		{"D", S(Rel, 0.1), 0.25, 0.25},
		{"E", S(Rel, 0.1, 0.2), 0.25, 0.5},
		{"F", S(1.0, Rel, 0.2), 1.0, 0.5},
		{"G", S(Rel, 0.3, Abs, 0.3), 0.75, 0.3},
		{"H", S(Rel, 0.5, Abs, 0.5), 1.25, 0.5},

		// ints are accepted as magnitudes
		{"I", S(1), 1.0, 1.0},
		{"J", S(Rel, 1, 2), 2.5, 5.0},

		// magnitudes are normalized to non-negative
		{"K", S(-0.5), 0.5, 0.5},
	}

	for _, test := range tests {
		num := mustNew(t, 2.5)
		if err := num.SetUncertainty(test.name, test.spec); err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		up, down, err := num.GetUncertainty(test.name)
		if err != nil {
			t.Errorf("%s: GetUncertainty: %v", test.name, err)
			continue
		}
		almost(t, up, test.up, "%s up", test.name)
		almost(t, down, test.down, "%s down", test.name)
	}
}

// TestSpecParsingRelative tests that relative magnitudes resolve against a
// negative nominal value as absolute values
func TestSpecParsingRelative(t *testing.T) {
	num := mustNew(t, -2.5)
	if err := num.SetUncertainty("A", S(Rel, 0.1)); err != nil {
		t.Fatalf("SetUncertainty: %v", err)
	}
	up, down, _ := num.GetUncertainty("A")
	almost(t, up, 0.25, "up")
	almost(t, down, 0.25, "down")
}

func TestSpecParsingErrors(t *testing.T) {
	tests := []struct {
		label string
		spec  Spec
	}{
		{"empty", S()},
		{"trailing tag", S(Rel)},
		{"tag after magnitude", S(0.5, Rel)},
		{"double tag", S(Rel, Abs, 0.5)},
		{"unknown tag", S(Tag("SCALE"), 0.5)},
		{"unsupported item", S("0.5")},
		{"too many magnitudes", S(1.0, 2.0, 3.0)},
		{"empty magnitude vector", S([]float64{})},
	}

	for _, test := range tests {
		num := mustNew(t, 2.5)
		err := num.SetUncertainty("X", test.spec)
		if !core.IsSpecError(err) {
			t.Errorf("%s: expected a spec error, got %v", test.label, err)
		}
		if num.Has("X") {
			t.Errorf("%s: a failed assignment modified the number", test.label)
		}
	}
}

// TestSpecParsingShapes tests element-wise magnitudes against scalar and
// vector nominals
func TestSpecParsingShapes(t *testing.T) {
	// vector magnitude on a scalar nominal
	num := mustNew(t, 2.5)
	if err := num.SetUncertainty("A", S([]float64{1, 2})); !core.IsShapeError(err) {
		t.Errorf("expected a shape error, got %v", err)
	}

	vec, err := NewVectorWithUncertainties([]float64{1, 2, 3}, map[string]Spec{
		"A": S([]float64{0.1, 0.2, 0.3}),
		"B": S(Rel, 0.5),
	})
	if err != nil {
		t.Fatalf("NewVectorWithUncertainties: %v", err)
	}

	up, _, err := vec.GetUncertaintyVector("A")
	if err != nil {
		t.Fatalf("GetUncertaintyVector: %v", err)
	}
	for i, want := range []float64{0.1, 0.2, 0.3} {
		almost(t, up[i], want, "A up element %d", i)
	}

	// a relative scalar resolves per element
	up, _, _ = vec.GetUncertaintyVector("B")
	for i, want := range []float64{0.5, 1.0, 1.5} {
		almost(t, up[i], want, "B up element %d", i)
	}

	if _, err := NewVectorWithUncertainties([]float64{1, 2, 3}, map[string]Spec{
		"A": S([]float64{0.1, 0.2}),
	}); !core.IsShapeError(err) {
		t.Errorf("expected a shape error, got %v", err)
	}
}
