package ops

import "math"

func init() {
	registerBuiltins(Default)
}

// registerBuiltins preloads the elementary operations with closed-form
// derivatives and their backend bindings.
func registerBuiltins(r *Registry) {
	must := func(op Operation) {
		if _, err := r.Register(op); err != nil {
			panic(err)
		}
	}

	// pow expects the exponent as its single parameter.
	must(Operation{
		Name: "pow",
		Fn: func(x float64, args ...float64) float64 {
			return math.Pow(x, arg(args))
		},
		Derivative: func(x float64, args ...float64) float64 {
			n := arg(args)
			return n * math.Pow(x, n-1)
		},
		UFuncs: []string{"power", "float_power"},
	})

	must(Operation{
		Name:       "exp",
		Fn:         func(x float64, _ ...float64) float64 { return math.Exp(x) },
		Derivative: func(x float64, _ ...float64) float64 { return math.Exp(x) },
		UFuncs:     []string{"exp"},
	})

	// log takes an optional base as its single parameter; without one it is
	// the natural logarithm.
	must(Operation{
		Name: "log",
		Fn: func(x float64, args ...float64) float64 {
			if len(args) == 0 {
				return math.Log(x)
			}
			return math.Log(x) / math.Log(args[0])
		},
		Derivative: func(x float64, args ...float64) float64 {
			if len(args) == 0 {
				return 1 / x
			}
			return 1 / (x * math.Log(args[0]))
		},
		UFuncs: []string{"log"},
	})

	must(Operation{
		Name:       "log10",
		Fn:         func(x float64, _ ...float64) float64 { return math.Log10(x) },
		Derivative: func(x float64, _ ...float64) float64 { return 1 / (x * math.Ln10) },
		UFuncs:     []string{"log10"},
	})

	must(Operation{
		Name:       "sqrt",
		Fn:         func(x float64, _ ...float64) float64 { return math.Sqrt(x) },
		Derivative: func(x float64, _ ...float64) float64 { return 0.5 / math.Sqrt(x) },
		UFuncs:     []string{"sqrt"},
	})

	must(Operation{
		Name:       "sin",
		Fn:         func(x float64, _ ...float64) float64 { return math.Sin(x) },
		Derivative: func(x float64, _ ...float64) float64 { return math.Cos(x) },
		UFuncs:     []string{"sin"},
	})

	must(Operation{
		Name:       "cos",
		Fn:         func(x float64, _ ...float64) float64 { return math.Cos(x) },
		Derivative: func(x float64, _ ...float64) float64 { return -math.Sin(x) },
		UFuncs:     []string{"cos"},
	})

	must(Operation{
		Name:       "tan",
		Fn:         func(x float64, _ ...float64) float64 { return math.Tan(x) },
		Derivative: func(x float64, _ ...float64) float64 { c := math.Cos(x); return 1 / (c * c) },
		UFuncs:     []string{"tan"},
	})

	must(Operation{
		Name:       "asin",
		Fn:         func(x float64, _ ...float64) float64 { return math.Asin(x) },
		Derivative: func(x float64, _ ...float64) float64 { return 1 / math.Sqrt(1-x*x) },
		UFuncs:     []string{"arcsin"},
	})

	must(Operation{
		Name:       "acos",
		Fn:         func(x float64, _ ...float64) float64 { return math.Acos(x) },
		Derivative: func(x float64, _ ...float64) float64 { return -1 / math.Sqrt(1-x*x) },
		UFuncs:     []string{"arccos"},
	})

	must(Operation{
		Name:       "atan",
		Fn:         func(x float64, _ ...float64) float64 { return math.Atan(x) },
		Derivative: func(x float64, _ ...float64) float64 { return 1 / (1 + x*x) },
		UFuncs:     []string{"arctan"},
	})

	must(Operation{
		Name:       "sinh",
		Fn:         func(x float64, _ ...float64) float64 { return math.Sinh(x) },
		Derivative: func(x float64, _ ...float64) float64 { return math.Cosh(x) },
		UFuncs:     []string{"sinh"},
	})

	must(Operation{
		Name:       "cosh",
		Fn:         func(x float64, _ ...float64) float64 { return math.Cosh(x) },
		Derivative: func(x float64, _ ...float64) float64 { return math.Sinh(x) },
		UFuncs:     []string{"cosh"},
	})

	must(Operation{
		Name:       "tanh",
		Fn:         func(x float64, _ ...float64) float64 { return math.Tanh(x) },
		Derivative: func(x float64, _ ...float64) float64 { c := math.Cosh(x); return 1 / (c * c) },
		UFuncs:     []string{"tanh"},
	})

	// constant-argument arithmetic, bound so that backend dispatch of the
	// basic binary ufuncs with a plain constant lands on the registry
	must(Operation{
		Name:       "add",
		Fn:         func(x float64, args ...float64) float64 { return x + arg(args) },
		Derivative: func(_ float64, _ ...float64) float64 { return 1 },
		UFuncs:     []string{"add"},
	})

	must(Operation{
		Name:       "sub",
		Fn:         func(x float64, args ...float64) float64 { return x - arg(args) },
		Derivative: func(_ float64, _ ...float64) float64 { return 1 },
		UFuncs:     []string{"subtract"},
	})

	must(Operation{
		Name:       "mul",
		Fn:         func(x float64, args ...float64) float64 { return x * arg(args) },
		Derivative: func(_ float64, args ...float64) float64 { return arg(args) },
		UFuncs:     []string{"multiply"},
	})

	must(Operation{
		Name:       "div",
		Fn:         func(x float64, args ...float64) float64 { return x / arg(args) },
		Derivative: func(_ float64, args ...float64) float64 { return 1 / arg(args) },
		UFuncs:     []string{"divide", "true_divide"},
	})
}

// arg returns the first parameter, or NaN when the caller forgot it.
func arg(args []float64) float64 {
	if len(args) == 0 {
		return math.NaN()
	}
	return args[0]
}
