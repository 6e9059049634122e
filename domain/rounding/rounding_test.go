package rounding

import (
	"errors"
	"math"
	"testing"
)

// TestSplitValue tests mantissa/exponent decomposition
func TestSplitValue(t *testing.T) {
	tests := []struct {
		in       float64
		mantissa float64
		exponent int
	}{
		{1, 1, 0},
		{0.123, 1.23, -1},
		{42.5, 4.25, 1},
		{0, 0, 0},
		{-42.5, -4.25, 1},
		{1000, 1, 3},
		{0.1, 1, -1},
		{9.999, 9.999, 0},
	}

	for _, test := range tests {
		m, e := SplitValue(test.in)
		if e != test.exponent {
			t.Errorf("SplitValue(%v): expected exponent %d, got %d", test.in, test.exponent, e)
		}
		if math.Abs(m-test.mantissa) > 1e-9 {
			t.Errorf("SplitValue(%v): expected mantissa %v, got %v", test.in, test.mantissa, m)
		}
		if test.in != 0 && math.Abs(m*math.Pow(10, float64(e))-test.in) > 1e-9*math.Abs(test.in) {
			t.Errorf("SplitValue(%v): %v * 10^%d does not reproduce the input", test.in, m, e)
		}
	}
}

// TestRoundUncertainty tests the pdg/pub/one rounding conventions
func TestRoundUncertainty(t *testing.T) {
	tests := []struct {
		in     float64
		method Method
		digits string
		mag    int
	}{
		{0.352, MethodPDG, "35", -2},
		{0.352, MethodPublication, "352", -3},
		{0.352, MethodOne, "4", -1},

		{0.835, MethodPDG, "8", -1},
		{0.835, MethodPublication, "84", -2},
		{0.835, MethodOne, "8", -1},

		{0.962, MethodPDG, "10", -1},
		{0.962, MethodPublication, "962", -3},
		{0.962, MethodOne, "10", -1},

		{0.532, MethodPDG, "5", -1},
		{0.532, MethodPublication, "53", -2},
		{0.532, MethodOne, "5", -1},

		{0.895, MethodPDG, "9", -1},
		{0.895, MethodPublication, "90", -2},
		{0.895, MethodOne, "9", -1},

		// the default method is pub
		{0.456, "", "46", -2},
	}

	for _, test := range tests {
		digits, mag, err := RoundUncertainty(test.in, test.method)
		if err != nil {
			t.Errorf("RoundUncertainty(%v, %q): unexpected error: %v", test.in, test.method, err)
			continue
		}
		if digits != test.digits || mag != test.mag {
			t.Errorf("RoundUncertainty(%v, %q): expected (%q, %d), got (%q, %d)",
				test.in, test.method, test.digits, test.mag, digits, mag)
		}
	}
}

// TestRoundUncertaintyCarry tests the renormalization when the leading three
// digits round up across a decade
func TestRoundUncertaintyCarry(t *testing.T) {
	tests := []struct {
		in     float64
		method Method
		digits string
		mag    int
	}{
		// 9.996 -> d = 1000 -> d = 100, e = 1
		{9.996, MethodPublication, "100", -1},
		{9.996, MethodPDG, "10", 0},
		{0.9996, MethodPublication, "100", -2},
	}

	for _, test := range tests {
		digits, mag, err := RoundUncertainty(test.in, test.method)
		if err != nil {
			t.Errorf("RoundUncertainty(%v, %q): unexpected error: %v", test.in, test.method, err)
			continue
		}
		if digits != test.digits || mag != test.mag {
			t.Errorf("RoundUncertainty(%v, %q): expected (%q, %d), got (%q, %d)",
				test.in, test.method, test.digits, test.mag, digits, mag)
		}
	}
}

// TestRoundUncertaintyInvalid tests rejection of non-positive magnitudes
func TestRoundUncertaintyInvalid(t *testing.T) {
	for _, in := range []float64{0, -0.5, math.Inf(1), math.NaN()} {
		if _, _, err := RoundUncertainty(in, MethodPublication); err == nil {
			t.Errorf("RoundUncertainty(%v): expected error, got none", in)
		}
	}

	if _, _, err := RoundUncertainty(0.5, Method("bogus")); err == nil {
		t.Error("RoundUncertainty with unknown method: expected error, got none")
	}
}

// TestRoundValue tests joint value/uncertainty rounding
func TestRoundValue(t *testing.T) {
	valStr, uncStrs, mag, err := RoundValue(1.23, []float64{0.456}, MethodPublication)
	if err != nil {
		t.Fatalf("RoundValue: unexpected error: %v", err)
	}
	if valStr != "123" || mag != -2 {
		t.Errorf("RoundValue(1.23, 0.456): expected (123, -2), got (%s, %d)", valStr, mag)
	}
	if len(uncStrs) != 1 || uncStrs[0] != "46" {
		t.Errorf("RoundValue(1.23, 0.456): expected uncertainty digits [46], got %v", uncStrs)
	}
}

// TestRoundValueList tests that the finest magnitude is shared by all
// uncertainties
func TestRoundValueList(t *testing.T) {
	valStr, uncStrs, mag, err := RoundValue(1.23, []float64{0.45678, 0.078, 0.998}, MethodPublication)
	if err != nil {
		t.Fatalf("RoundValue: unexpected error: %v", err)
	}
	if valStr != "1230" || mag != -3 {
		t.Errorf("expected (1230, -3), got (%s, %d)", valStr, mag)
	}
	expected := []string{"457", "78", "998"}
	for i, want := range expected {
		if uncStrs[i] != want {
			t.Errorf("uncertainty %d: expected %q, got %q", i, want, uncStrs[i])
		}
	}
}

// TestRoundValueNoUncertainty tests that a bare value cannot be rounded
func TestRoundValueNoUncertainty(t *testing.T) {
	_, _, _, err := RoundValue(1.23, nil, MethodPublication)
	if !errors.Is(err, ErrNoUncertainty) {
		t.Errorf("expected ErrNoUncertainty, got %v", err)
	}
}

// TestMatchPrecision tests template-based precision matching
func TestMatchPrecision(t *testing.T) {
	tests := []struct {
		in       float64
		template string
		mode     []Mode
		expected string
	}{
		{1.234, ".1", nil, "1.2"},
		{1.234, "1.", nil, "1"},
		{1.234, ".1", []Mode{ModeUp}, "1.3"},
		{1.25, ".1", nil, "1.3"},
		{-1.25, ".1", nil, "-1.3"},
		{1.25, ".1", []Mode{ModeHalfEven}, "1.2"},
		{1.29, ".1", []Mode{ModeDown}, "1.2"},
		{-1.21, ".1", []Mode{ModeCeiling}, "-1.2"},
		{-1.21, ".1", []Mode{ModeFloor}, "-1.3"},
		{0.123, ".2", nil, "0.12"},
		{1.25, ".2", nil, "1.25"},
		{1.23456, ".3", nil, "1.235"},
		{7, ".2", nil, "7.00"},
		{42.5, "0.01", nil, "42.50"},
	}

	for _, test := range tests {
		got, err := MatchPrecision(test.in, test.template, test.mode...)
		if err != nil {
			t.Errorf("MatchPrecision(%v, %q): unexpected error: %v", test.in, test.template, err)
			continue
		}
		if got != test.expected {
			t.Errorf("MatchPrecision(%v, %q): expected %q, got %q",
				test.in, test.template, test.expected, got)
		}
	}
}

// TestMatchPrecisionInvalid tests rejection of malformed templates and
// non-finite values
func TestMatchPrecisionInvalid(t *testing.T) {
	for _, template := range []string{"", ".", "x.1", "1.2.3", ".x"} {
		if _, err := MatchPrecision(1.0, template); !errors.Is(err, ErrBadTemplate) {
			t.Errorf("template %q: expected ErrBadTemplate, got %v", template, err)
		}
	}

	if _, err := MatchPrecision(math.NaN(), ".1"); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN: expected ErrNotFinite, got %v", err)
	}
}

// TestInferSIPrefix tests SI prefix inference
func TestInferSIPrefix(t *testing.T) {
	tests := []struct {
		in     float64
		symbol string
		mag    int
	}{
		{0, "", 0},
		{2, "", 0},
		{20, "", 0},
		{200, "", 0},
		{2000, "k", 3},
		{0.5, "m", -3},
		{2e-7, "n", -9},
		{3e21, "E", 18},
		{4e-22, "a", -18},
	}

	for _, test := range tests {
		symbol, mag := InferSIPrefix(test.in)
		if symbol != test.symbol || mag != test.mag {
			t.Errorf("InferSIPrefix(%v): expected (%q, %d), got (%q, %d)",
				test.in, test.symbol, test.mag, symbol, mag)
		}
	}

	// every multiple of three maps onto itself
	for n := -18; n <= 18; n += 3 {
		if _, mag := InferSIPrefix(math.Pow(10, float64(n))); mag != n {
			t.Errorf("InferSIPrefix(10^%d): expected magnitude %d, got %d", n, n, mag)
		}
	}
}
