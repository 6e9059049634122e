// Package ops maintains the process-wide catalogue of named mathematical
// operations. Every entry pairs a value function with an optional analytic
// derivative; operations may additionally be bound to the element-wise
// function identities of a vectorized backend so that backend dispatch can
// be rerouted to them. Registration is rare and serialized; lookups are
// read-mostly.
package ops

import (
	"fmt"
	"sort"
	"sync"

	"github.com/adavidzh/scinum/domain/core"
	"github.com/adavidzh/scinum/domain/number"
)

// Func is the signature shared by value functions and derivatives; see
// number.Func.
type Func = number.Func

// Operation is one registry entry: a named value function, its derivative
// with respect to the first argument (nil until attached), and the backend
// function identities it intercepts.
type Operation struct {
	Name       string
	Fn         Func
	Derivative Func
	UFuncs     []string
}

// Registry is a thread-safe catalogue of operations. Re-registering a name
// replaces the previous entry and releases its backend bindings.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Operation
	byUFunc map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  map[string]Operation{},
		byUFunc: map[string]string{},
	}
}

// Register adds or replaces an operation and returns a handle for the
// decorator-style second step of attaching a derivative later.
func (r *Registry) Register(op Operation) (*Handle, error) {
	if op.Name == "" {
		return nil, fmt.Errorf("ops: operation needs a name")
	}
	if op.Fn == nil {
		return nil, fmt.Errorf("ops: operation %q needs a value function", op.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[op.Name]; ok {
		for _, uf := range old.UFuncs {
			delete(r.byUFunc, uf)
		}
	}
	r.byName[op.Name] = op
	for _, uf := range op.UFuncs {
		r.byUFunc[uf] = op.Name
	}
	return &Handle{reg: r, name: op.Name}, nil
}

// Get returns the operation registered under name.
func (r *Registry) Get(name string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.byName[name]
	if !ok {
		return Operation{}, core.NewUnknownOperationError(name)
	}
	return op, nil
}

// GetUFunc resolves a backend element-wise function identity back to the
// operation bound to it.
func (r *Registry) GetUFunc(ufunc string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byUFunc[ufunc]
	if !ok {
		return Operation{}, core.NewUnboundUFuncError(ufunc)
	}
	return r.byName[name], nil
}

// Has reports whether an operation is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok
}

// Names returns all registered operation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply looks up name and propagates n through it. An operation registered
// without a derivative cannot propagate uncertainty and fails the call.
func (r *Registry) Apply(name string, n *number.Number, args ...float64) (*number.Number, error) {
	op, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if op.Derivative == nil {
		return nil, core.NewNoDerivativeError(name)
	}
	return number.Propagate(n, op.Fn, op.Derivative, args...)
}

// Handle refers to a registered operation, allowing the derivative to be
// attached after the initial registration.
type Handle struct {
	reg  *Registry
	name string
}

// Name returns the operation name the handle refers to.
func (h *Handle) Name() string {
	return h.name
}

// Derive attaches the derivative to the operation. It returns the handle
// for chaining.
func (h *Handle) Derive(fn Func) *Handle {
	h.reg.mu.Lock()
	defer h.reg.mu.Unlock()

	if op, ok := h.reg.byName[h.name]; ok {
		op.Derivative = fn
		h.reg.byName[h.name] = op
	}
	return h
}

// Default is the process-wide registry preloaded with the built-in
// elementary operations.
var Default = NewRegistry()

// Register adds an operation to the Default registry.
func Register(op Operation) (*Handle, error) {
	return Default.Register(op)
}

// Get returns an operation from the Default registry.
func Get(name string) (Operation, error) {
	return Default.Get(name)
}

// GetUFunc resolves a backend function identity in the Default registry.
func GetUFunc(ufunc string) (Operation, error) {
	return Default.GetUFunc(ufunc)
}

// Has reports whether the Default registry contains name.
func Has(name string) bool {
	return Default.Has(name)
}

// Apply propagates n through an operation of the Default registry.
func Apply(name string, n *number.Number, args ...float64) (*number.Number, error) {
	return Default.Apply(name, n, args...)
}
