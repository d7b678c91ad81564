package sim

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/integrators"
	"github.com/san-kum/projsim/internal/physics"
)

// maxPrealloc bounds the initial buffer; long drag-dominated flights grow it.
const maxPrealloc = 1 << 20

// Simulator folds a stepper over the launch sample until ground contact.
// A Simulator holds metric state, so give each concurrent run its own.
type Simulator struct {
	stepper   dynamo.Stepper
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(stepper dynamo.Stepper) *Simulator {
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Simulate runs p with the stepper for p.Basis and returns the frozen trajectory.
func Simulate(p dynamo.Params) (*dynamo.Trajectory, error) {
	stepper, err := integrators.ForBasis(p.Basis)
	if err != nil {
		return nil, err
	}
	res, err := New(stepper).Run(p)
	if err != nil {
		return nil, err
	}
	return res.Trajectory, nil
}

// Run validates p and integrates until the first sample below ground, which is
// kept. On error no partial trajectory is returned.
func (s *Simulator) Run(p dynamo.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	traj := dynamo.NewTrajectory(p, capacityHint(p))
	policy := dynamo.NewGroundContact()
	limit := p.StepLimit()

	x := s.stepper.Launch(p)
	if !x.IsValid() {
		return nil, &dynamo.SimulationError{Step: 0, Time: 0, Wrapped: dynamo.ErrUnstable}
	}
	s.record(traj, 0, x)

	step := 0
	for policy.Phase() == dynamo.Flying {
		step++
		t := float64(step) * p.Dt
		if step > limit {
			return nil, &dynamo.SimulationError{Step: step, Time: t, Wrapped: dynamo.ErrNoLanding}
		}

		next := s.stepper.Advance(p, x)
		next.T = t
		if !next.IsValid() {
			return nil, &dynamo.SimulationError{Step: step, Time: t, Wrapped: dynamo.ErrUnstable}
		}

		s.record(traj, step, next)
		policy.Observe(next)
		x = next
	}
	traj.Freeze()

	result := &Result{
		Trajectory: traj,
		Metrics:    make(map[string]float64, len(s.metrics)),
		StepsTaken: step,
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Simulator) record(traj *dynamo.Trajectory, i int, x dynamo.Sample) {
	traj.Append(x)
	for _, m := range s.metrics {
		m.Observe(x)
	}
	for _, obs := range s.observers {
		obs.OnSample(i, x)
	}
}

// capacityHint sizes the buffer from the drag-free flight time.
func capacityHint(p dynamo.Params) int {
	ref := physics.Ballistic{Y0: p.Y0, V0: p.V0, Theta0: p.Theta0, G: p.G}
	n := ref.FlightTime()/p.Dt + 2
	if math.IsNaN(n) || n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
