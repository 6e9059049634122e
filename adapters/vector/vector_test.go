package vector

import (
	"math"
	"testing"

	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/domain/number"
	"github.com/adavidzh/scinum/domain/ops"
)

const eps = 1e-4

func newNum(t *testing.T, nominal float64, uncertainty ...float64) *number.Number {
	t.Helper()
	n, err := number.New(nominal, uncertainty...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return n
}

func TestEngineApply(t *testing.T) {
	e := NewEngine(nil)

	num, err := number.NewVector([]float64{1, 2}, 3)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}

	res, err := e.Apply("exp", num)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	nom := res.NominalVector()
	if math.Abs(nom[0]-2.71828) > eps || math.Abs(nom[1]-7.38906) > eps {
		t.Errorf("unexpected nominal %v", nom)
	}
	up, err := res.GetVector(number.Up)
	if err != nil {
		t.Fatalf("GetVector: %v", err)
	}
	if math.Abs(up[0]-10.87313) > eps || math.Abs(up[1]-29.55623) > eps {
		t.Errorf("unexpected up variation %v", up)
	}
}

func TestEngineApplyWithArgs(t *testing.T) {
	e := NewEngine(nil)
	num := newNum(t, 2.5, 0.5)

	res, err := e.Apply("multiply", num, 2)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Nominal() != 5 {
		t.Errorf("expected nominal 5, got %v", res.Nominal())
	}
	up, _ := res.Uncertainty(number.DefaultName, number.Up)
	if up != 1 {
		t.Errorf("expected up 1, got %v", up)
	}
}

func TestEngineUnboundUFunc(t *testing.T) {
	e := NewEngine(nil)
	if _, err := e.Apply("fft", newNum(t, 1, 0.1)); !core.IsLookupError(err) {
		t.Errorf("expected a lookup error, got %v", err)
	}
}

// TestEngineMissingDerivative tests that a bound operation without a
// derivative cannot be dispatched
func TestEngineMissingDerivative(t *testing.T) {
	reg := ops.NewRegistry()
	if _, err := reg.Register(ops.Operation{
		Name:   "floor",
		Fn:     func(x float64, _ ...float64) float64 { return math.Floor(x) },
		UFuncs: []string{"floor"},
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	e := NewEngine(reg)
	if _, err := e.Apply("floor", newNum(t, 1.5, 0.1)); err == nil {
		t.Error("expected an error for a derivative-less operation")
	}
}

func TestValueDispatch(t *testing.T) {
	v := Wrap(newNum(t, 2.5, 0.5))
	if v.Number().Nominal() != 2.5 {
		t.Fatalf("expected nominal 2.5, got %v", v.Number().Nominal())
	}

	out, err := v.DispatchUFunc("sqrt")
	if err != nil {
		t.Fatalf("DispatchUFunc: %v", err)
	}
	res := out.(*Value).Number()
	if math.Abs(res.Nominal()-math.Sqrt(2.5)) > eps {
		t.Errorf("expected nominal sqrt(2.5), got %v", res.Nominal())
	}

	// dispatch chains keep the engine
	out, err = out.DispatchUFunc("multiply", 2)
	if err != nil {
		t.Fatalf("chained DispatchUFunc: %v", err)
	}
	res = out.(*Value).Number()
	if math.Abs(res.Nominal()-2*math.Sqrt(2.5)) > eps {
		t.Errorf("expected nominal 2*sqrt(2.5), got %v", res.Nominal())
	}

	if _, err := v.DispatchUFunc("fft"); err == nil {
		t.Error("expected an error for an unbound identity")
	}
}
