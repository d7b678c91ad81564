package analysis

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/physics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the headline numbers of a run.
type Summary struct {
	Basis       dynamo.Basis
	Samples     int
	PeakHeight  float64
	ApexTime    float64
	FlightTime  float64 // time of the last sample
	Range       float64 // x of the last sample
	Landed      bool
	LandingX    float64 // interpolated
	LandingT    float64 // interpolated
	MaxSpeed    float64
	MeanSpeed   float64
	ImpactSpeed float64
	// ImpactAngle is in degrees below the horizontal.
	ImpactAngle float64
	EnergyDrift float64 // relative, largest over the run
	MinRadius   float64 // natural basis only, +Inf otherwise

	// TerminalSpeed is where drag balances gravity, +Inf without drag.
	TerminalSpeed float64
	// VacuumDeviation is the largest distance between a sample and the
	// drag-free parabola at the same time: the effect of drag, or the
	// integration error when k = 0.
	VacuumDeviation float64
}

// Summarize computes a Summary. It returns the zero value for an empty run.
func Summarize(tr *dynamo.Trajectory) Summary {
	if tr == nil || tr.Len() == 0 {
		return Summary{}
	}
	p := tr.Params()
	last := tr.Last()
	_, apex := Apex(tr)

	speeds := tr.Series(dynamo.Sample.Speed)
	energies := tr.Series(func(s dynamo.Sample) float64 { return s.Energy(p.G) })

	s := Summary{
		Basis:      p.Basis,
		Samples:    tr.Len(),
		PeakHeight: apex.Y,
		ApexTime:   apex.T,
		FlightTime: last.T,
		Range:      last.X,
		MaxSpeed:   floats.Max(speeds),
		MeanSpeed:  stat.Mean(speeds, nil),
		MinRadius:  math.Inf(1),

		TerminalSpeed: physics.TerminalSpeed(p.K, p.G, p.N),
	}

	if e0 := energies[0]; e0 != 0 {
		floats.AddConst(-e0, energies)
		s.EnergyDrift = math.Max(floats.Max(energies), -floats.Min(energies)) / math.Abs(e0)
	}

	if landing, ok := Landing(tr); ok {
		s.Landed = true
		s.LandingX, s.LandingT = landing.X, landing.T
		s.ImpactSpeed = landing.Speed
		s.ImpactAngle = -landing.Angle * 180 / math.Pi
	}

	vacuum := physics.Ballistic{Y0: p.Y0, V0: p.V0, Theta0: p.Theta0, G: p.G}
	for i := 0; i < tr.Len(); i++ {
		sm := tr.At(i)
		if c := sm.Circle; c != nil && c.R < s.MinRadius {
			s.MinRadius = c.R
		}
		x, y := vacuum.At(sm.T)
		s.VacuumDeviation = math.Max(s.VacuumDeviation, math.Hypot(sm.X-x, sm.Y-y))
	}
	return s
}
