package sim

import "github.com/san-kum/projsim/internal/dynamo"

// Result is a finished run plus the values of any attached metrics.
type Result struct {
	Trajectory *dynamo.Trajectory
	Metrics    map[string]float64
	StepsTaken int
}

// Landed reports whether the run reached the ground.
func (r *Result) Landed() bool {
	return r != nil && r.Trajectory != nil && r.Trajectory.Last().Y < 0
}
