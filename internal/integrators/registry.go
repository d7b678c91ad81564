package integrators

import (
	"fmt"

	"github.com/san-kum/projsim/internal/dynamo"
)

// ForBasis returns the stepper implementing a coordinate basis.
func ForBasis(b dynamo.Basis) (dynamo.Stepper, error) {
	switch b {
	case dynamo.Cartesian:
		return NewCartesian(), nil
	case dynamo.Natural:
		return NewNatural(), nil
	}
	return nil, fmt.Errorf("no integrator for %s", b)
}
