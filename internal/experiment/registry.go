package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/integrators"
	"github.com/san-kum/projsim/internal/metrics"
	"github.com/san-kum/projsim/internal/sim"
)

type Registry struct {
	steppers map[string]func() dynamo.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func() dynamo.Stepper),
	}

	r.steppers[dynamo.Cartesian.String()] = func() dynamo.Stepper { return integrators.NewCartesian() }
	r.steppers[dynamo.Natural.String()] = func() dynamo.Stepper { return integrators.NewNatural() }

	return r
}

// Register adds or replaces a named stepper. Replacing "cartesian" or
// "natural" changes every run the registry prepares for that basis.
func (r *Registry) Register(name string, fn func() dynamo.Stepper) {
	r.steppers[name] = fn
}

// GetStepper accepts registered names and the aliases dynamo.ParseBasis knows.
func (r *Registry) GetStepper(name string) (dynamo.Stepper, error) {
	if fn, ok := r.steppers[name]; ok {
		return fn(), nil
	}
	if b, err := dynamo.ParseBasis(name); err == nil {
		if fn, ok := r.steppers[b.String()]; ok {
			return fn(), nil
		}
	}
	return nil, fmt.Errorf("unknown basis: %s", name)
}

// StepperFor returns the stepper registered under the basis name.
func (r *Registry) StepperFor(b dynamo.Basis) (dynamo.Stepper, error) {
	return r.GetStepper(b.String())
}

// Ensemble builds a concurrent runner whose runs take their steppers from the
// registry and carry the default metrics.
func (r *Registry) Ensemble() *sim.Ensemble {
	return sim.NewEnsemble(r.StepperFor, r.DefaultMetrics)
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(p dynamo.Params) []dynamo.Metric {
	return metrics.Standard(p)
}
