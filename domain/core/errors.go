package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Specification errors
	ErrSpec = errors.New("invalid uncertainty specification")

	// Shape errors
	ErrShape = errors.New("incompatible shape")

	// Lookup errors
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnboundUFunc     = errors.New("no operation bound to backend function")
	ErrUnknownSource    = errors.New("unknown uncertainty source")

	// Composition errors
	ErrComposition = errors.New("invalid operand composition")

	// Propagation errors
	ErrNoDerivative = errors.New("operation has no derivative")
	ErrDirection    = errors.New("unknown direction")
)

// Error constructors with context
func NewSpecError(name string, reason string) error {
	return fmt.Errorf("%w for source %q: %s", ErrSpec, name, reason)
}

func NewShapeError(name string, got, want int) error {
	return fmt.Errorf("%w for source %q: length %d does not match nominal length %d",
		ErrShape, name, got, want)
}

func NewUnknownOperationError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

func NewUnboundUFuncError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnboundUFunc, name)
}

func NewUnknownSourceError(names ...string) error {
	return fmt.Errorf("%w: %v", ErrUnknownSource, names)
}

func NewCompositionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrComposition, reason)
}

func NewNoDerivativeError(op string) error {
	return fmt.Errorf("%w: %q", ErrNoDerivative, op)
}

// Error checking helpers
func IsSpecError(err error) bool {
	return errors.Is(err, ErrSpec)
}

func IsShapeError(err error) bool {
	return errors.Is(err, ErrShape)
}

func IsLookupError(err error) bool {
	return errors.Is(err, ErrUnknownOperation) ||
		errors.Is(err, ErrUnboundUFunc) ||
		errors.Is(err, ErrUnknownSource)
}

func IsCompositionError(err error) bool {
	return errors.Is(err, ErrComposition)
}
