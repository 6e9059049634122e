package number

import (
	"math"
	"testing"
)

func TestCorrelation(t *testing.T) {
	c := NewCorrelation(1.5, map[string]float64{"foo": 0.5})

	if c.Default() != 1.5 {
		t.Errorf("expected default 1.5, got %v", c.Default())
	}
	if got := c.Get("foo"); got != 0.5 {
		t.Errorf("expected foo 0.5, got %v", got)
	}
	if got := c.Get("bar"); got != 1.5 {
		t.Errorf("expected bar 1.5, got %v", got)
	}
	if got := c.Get("bar", 0.75); got != 0.75 {
		t.Errorf("expected fallback 0.75, got %v", got)
	}

	// Corr defaults to full correlation
	if got := Corr(nil).Get("anything"); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestDeferredResult(t *testing.T) {
	num := testNumber(t)
	c := NewCorrelation(1.5, map[string]float64{"A": 0.5})

	d := num.Correlated(c)
	if d.Number() != num {
		t.Error("deferred result does not wrap the number")
	}
	if d.Correlation().Get("A") != 0.5 {
		t.Error("deferred result does not wrap the correlation")
	}

	// Apply is the composition-style counterpart
	if c.Apply(num).Number() != num {
		t.Error("Apply does not wrap the number")
	}
}

func TestDeferredResolution(t *testing.T) {
	num := testNumber(t)

	// rho = 1 on A keeps the linear sum
	res, err := num.Correlated(Corr(map[string]float64{"A": 1})).Add(num)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	almost(t, uDiff(t, res, "A", Up), 1.0, "correlated A up")
	almost(t, uDiff(t, res, "A", Down), 1.0, "correlated A down")
	almost(t, uDiff(t, res, "B", Up), 2.0, "correlated B up")

	// rho = 0 on A switches that one source to quadrature
	res, err = num.Correlated(Corr(map[string]float64{"A": 0})).Add(num)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	almost(t, uDiff(t, res, "A", Up), math.Sqrt(0.5), "uncorrelated A up")
	almost(t, uDiff(t, res, "A", Down), math.Sqrt(0.5), "uncorrelated A down")
	almost(t, uDiff(t, res, "B", Up), 2.0, "uncorrelated B up")

	// a deferred correlation also drives the other operand's position
	res, err = num.Mul(num.Correlated(Corr(map[string]float64{"A": 0})))
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	almost(t, uDiff(t, res, "A", Up), 2.5*0.5*math.Sqrt2, "deferred operand A up")

	// resolution requires a plain Number on the other side
	d := num.Correlated(Corr(nil))
	if _, err := d.Add(Const(1)); err == nil {
		t.Error("expected an error resolving against a constant")
	}
	if _, err := d.Add(d); err == nil {
		t.Error("expected an error resolving against another deferred result")
	}
}
