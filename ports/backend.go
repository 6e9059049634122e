package ports

// Component is one named contribution to a tagged float's uncertainty,
// expressed as a symmetric one-sigma magnitude.
type Component struct {
	Tag   string
	Sigma float64
}

// TaggedFloat is an external "nominal value plus tagged uncertainties"
// object. Importing one into a Number turns each tag into a named
// uncertainty source; components sharing a tag accumulate linearly.
type TaggedFloat interface {
	Nominal() float64
	Components() []Component
}

// ElementwiseDispatchable is implemented by value types that intercept the
// element-wise calls of a vectorized array backend and reroute them to a
// registered operation. Backends identify functions by name; unknown names
// fail with an unsupported-operation error.
type ElementwiseDispatchable interface {
	DispatchUFunc(name string, args ...float64) (ElementwiseDispatchable, error)
}
