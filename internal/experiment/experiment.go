package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/sim"
)

// Experiment is one configured run: parameters, a stepper and its metrics.
type Experiment struct {
	params    dynamo.Params
	simulator *sim.Simulator
}

func New(p dynamo.Params) *Experiment {
	return &Experiment{params: p}
}

func (e *Experiment) Setup(stepper dynamo.Stepper, metrics []dynamo.Metric) error {
	if stepper == nil {
		return fmt.Errorf("experiment needs a stepper")
	}
	e.simulator = sim.New(stepper)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

// Run executes the experiment. A run cannot be interrupted once started; ctx
// is only checked before it begins.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.simulator.Run(e.params)
}

func (e *Experiment) Params() dynamo.Params { return e.params }

// Prepare builds an experiment for p with the stepper for p.Basis and the
// registry's default metrics.
func (r *Registry) Prepare(p dynamo.Params) (*Experiment, error) {
	stepper, err := r.StepperFor(p.Basis)
	if err != nil {
		return nil, err
	}
	e := New(p)
	if err := e.Setup(stepper, r.DefaultMetrics(p)); err != nil {
		return nil, err
	}
	return e, nil
}

// BasisComparison holds the same launch integrated in both bases.
type BasisComparison struct {
	Cartesian *sim.Result
	Natural   *sim.Result
	analysis.Comparison
}

// CompareBases runs p in both bases concurrently, ignoring p.Basis.
func (r *Registry) CompareBases(p dynamo.Params) (*BasisComparison, error) {
	cart, nat := p, p
	cart.Basis, nat.Basis = dynamo.Cartesian, dynamo.Natural

	results, err := r.Ensemble().Run([]dynamo.Params{cart, nat})
	if err != nil {
		return nil, err
	}
	return &BasisComparison{
		Cartesian:  results[0],
		Natural:    results[1],
		Comparison: analysis.Compare(results[0].Trajectory, results[1].Trajectory),
	}, nil
}
