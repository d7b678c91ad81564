package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
)

// EnergyDrift is the largest relative departure of specific mechanical
// energy from its launch value. Without drag it measures integration error;
// with drag it measures dissipation.
type EnergyDrift struct {
	name          string
	gravity       float64
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(gravity float64) *EnergyDrift {
	return &EnergyDrift{
		name:    "energy_drift",
		gravity: gravity,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s dynamo.Sample) {
	energy := s.Energy(e.gravity)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// EnergyLoss is the fraction of launch energy missing at the latest sample.
// It is negative when the integrator gains energy.
type EnergyLoss struct {
	name    string
	gravity float64
	first   float64
	last    float64
	samples int
}

func NewEnergyLoss(gravity float64) *EnergyLoss {
	return &EnergyLoss{name: "energy_loss", gravity: gravity}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(s dynamo.Sample) {
	energy := s.Energy(e.gravity)
	if e.samples == 0 {
		e.first = energy
	}
	e.last = energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.samples == 0 || e.first == 0 {
		return 0
	}
	return (e.first - e.last) / math.Abs(e.first)
}

func (e *EnergyLoss) Reset() {
	e.first, e.last = 0, 0
	e.samples = 0
}
