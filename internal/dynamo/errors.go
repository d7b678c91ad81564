package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidInitialState indicates a launch height below the ground plane.
	ErrInvalidInitialState = errors.New("dynamo: initial height must be >= 0")

	// ErrInvalidAngle indicates a launch angle outside [0, 90] degrees.
	ErrInvalidAngle = errors.New("dynamo: launch angle must be within [0, 90] degrees")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnstable indicates the integration produced a non-finite state.
	ErrUnstable = errors.New("dynamo: simulation unstable (NaN or Inf detected)")

	// ErrNoLanding indicates the step cap was reached before ground contact.
	ErrNoLanding = errors.New("dynamo: projectile did not land within the step limit")
)

// ValidationError reports the parameter that failed validation.
type ValidationError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
