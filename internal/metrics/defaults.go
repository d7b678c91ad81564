package metrics

import "github.com/san-kum/projsim/internal/dynamo"

// Standard returns a fresh set of the metrics reported for every run.
func Standard(p dynamo.Params) []dynamo.Metric {
	return []dynamo.Metric{
		NewPeakHeight(),
		NewFlightTime(),
		NewRange(),
		NewMaxSpeed(),
		NewEnergyDrift(p.G),
		NewEnergyLoss(p.G),
		NewMinCurvatureRadius(),
		NewTimeAbove(p.Y0, p.Dt),
	}
}
