package dynamo

import (
	"fmt"
	"math"
	"strings"
)

// Basis selects the coordinate formulation used to advance a run.
type Basis int

const (
	// Cartesian advances (x, y, Vx, Vy, Ax, Ay) on fixed axes.
	Cartesian Basis = iota
	// Natural advances speed and heading with tangential/normal accelerations.
	Natural
)

func (b Basis) String() string {
	switch b {
	case Cartesian:
		return "cartesian"
	case Natural:
		return "natural"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

// ParseBasis accepts the names produced by Basis.String plus "polar".
func ParseBasis(name string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cartesian", "xy", "":
		return Cartesian, nil
	case "natural", "polar", "intrinsic":
		return Natural, nil
	}
	return Cartesian, fmt.Errorf("unknown basis: %s", name)
}

// MarshalText lets a Basis round-trip through YAML and JSON as its name.
func (b Basis) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Basis) UnmarshalText(text []byte) error {
	parsed, err := ParseBasis(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

const (
	DefaultGravity  = 9.81
	DefaultDt       = 0.01
	DefaultMaxSteps = 5_000_000

	// DegenerateEpsilon guards the heading and curvature computations.
	DegenerateEpsilon = 1e-6
)

// Params are fixed before the first sample is produced.
type Params struct {
	Y0       float64 // initial height (m)
	V0       float64 // initial speed (m/s)
	Theta0   float64 // launch angle (degrees)
	G        float64 // gravitational acceleration (m/s^2)
	K        float64 // drag coefficient
	N        int     // drag exponent, 1 or 2
	Dt       float64 // fixed time step (s)
	Basis    Basis
	MaxSteps int // 0 selects DefaultMaxSteps
}

func DefaultParams() Params {
	return Params{
		Y0:     0,
		V0:     100,
		Theta0: 60,
		G:      DefaultGravity,
		K:      0,
		N:      1,
		Dt:     DefaultDt,
		Basis:  Cartesian,
	}
}

// Validate checks every precondition of a run. NaN fails all comparisons, so
// each bound is written as a negated acceptance test.
func (p Params) Validate() error {
	if !(p.Y0 >= 0) || math.IsInf(p.Y0, 0) {
		return &ValidationError{Field: "y0", Value: p.Y0, Wrapped: ErrInvalidInitialState}
	}
	if !(p.Theta0 >= 0 && p.Theta0 <= 90) {
		return &ValidationError{Field: "theta0", Value: p.Theta0, Wrapped: ErrInvalidAngle}
	}
	if !(p.V0 >= 0) || math.IsInf(p.V0, 0) {
		return &ValidationError{Field: "v0", Value: p.V0, Wrapped: ErrParameterBounds}
	}
	if !(p.K >= 0) || math.IsInf(p.K, 0) {
		return &ValidationError{Field: "k", Value: p.K, Wrapped: ErrParameterBounds}
	}
	if p.N != 1 && p.N != 2 {
		return &ValidationError{Field: "n", Value: float64(p.N), Wrapped: ErrParameterBounds}
	}
	if !(p.Dt > 0) || math.IsInf(p.Dt, 0) {
		return &ValidationError{Field: "dt", Value: p.Dt, Wrapped: ErrParameterBounds}
	}
	if !(p.G > 0) || math.IsInf(p.G, 0) {
		return &ValidationError{Field: "g", Value: p.G, Wrapped: ErrParameterBounds}
	}
	if p.MaxSteps < 0 {
		return &ValidationError{Field: "max_steps", Value: float64(p.MaxSteps), Wrapped: ErrParameterBounds}
	}
	if p.Basis != Cartesian && p.Basis != Natural {
		return &ValidationError{Field: "basis", Value: float64(p.Basis), Wrapped: ErrParameterBounds}
	}
	return nil
}

// Theta0Rad returns the launch angle in radians.
func (p Params) Theta0Rad() float64 {
	return p.Theta0 * math.Pi / 180
}

// Vertical reports straight up-and-down flight: a 90 degree launch, or no
// launch speed at all, in which case gravity alone sets the direction.
func (p Params) Vertical() bool {
	return p.Theta0 == 90 || p.V0 == 0
}

// StepLimit is the number of steps after which a run gives up.
func (p Params) StepLimit() int {
	if p.MaxSteps > 0 {
		return p.MaxSteps
	}
	return DefaultMaxSteps
}

// Stepper is one formulation of the equations of motion. Implementations keep
// no state between calls, so one value may serve concurrent runs.
type Stepper interface {
	// Launch builds sample 0 from the parameters.
	Launch(p Params) Sample
	// Advance returns the sample one Dt after s.
	Advance(p Params, s Sample) Sample
}

// Observer is notified of every sample appended to a trajectory.
type Observer interface {
	OnSample(i int, s Sample)
}

// Metric reduces a trajectory to a scalar as samples arrive.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// ParamNames lists the names accepted by Params.With.
var ParamNames = []string{"y0", "v0", "theta0", "g", "k", "n", "dt"}

// With returns a copy of p with one named field replaced. The result is not
// validated.
func (p Params) With(name string, value float64) (Params, error) {
	switch strings.ToLower(name) {
	case "y0":
		p.Y0 = value
	case "v0":
		p.V0 = value
	case "theta0", "theta", "angle":
		p.Theta0 = value
	case "g", "gravity":
		p.G = value
	case "k", "drag":
		p.K = value
	case "n":
		if value != math.Trunc(value) {
			return p, &ValidationError{Field: "n", Value: value, Wrapped: ErrParameterBounds}
		}
		p.N = int(value)
	case "dt":
		p.Dt = value
	default:
		return p, fmt.Errorf("unknown parameter: %s", name)
	}
	return p, nil
}

// Get reads a field by the names accepted by With.
func (p Params) Get(name string) (float64, error) {
	switch strings.ToLower(name) {
	case "y0":
		return p.Y0, nil
	case "v0":
		return p.V0, nil
	case "theta0", "theta", "angle":
		return p.Theta0, nil
	case "g", "gravity":
		return p.G, nil
	case "k", "drag":
		return p.K, nil
	case "n":
		return float64(p.N), nil
	case "dt":
		return p.Dt, nil
	}
	return 0, fmt.Errorf("unknown parameter: %s", name)
}
