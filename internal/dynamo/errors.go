package dynamo

import "errors"

// Domain errors for integration operations.
var (
	// ErrInvalidState indicates a state vector holding NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrUnknownParam indicates a parameter name the system does not expose.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownIntegrator indicates an integrator name with no registered implementation.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)
