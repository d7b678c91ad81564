package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/integrators"
	"github.com/san-kum/projsim/internal/sim"
)

func TestPeakHeightReset(t *testing.T) {
	m := NewPeakHeight()
	m.Observe(dynamo.Sample{Y: 5})
	m.Observe(dynamo.Sample{Y: 12})
	m.Observe(dynamo.Sample{Y: -1})
	if m.Value() != 12 {
		t.Errorf("expected peak 12, got %f", m.Value())
	}

	m.Reset()
	m.Observe(dynamo.Sample{Y: -3})
	if m.Value() != -3 {
		t.Errorf("expected peak -3 after reset, got %f", m.Value())
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift(10)

	m.Observe(dynamo.Sample{Vx: 10, Y: 5}) // 50 + 50
	m.Observe(dynamo.Sample{Vx: 10, Y: 6}) // 110
	m.Observe(dynamo.Sample{Vx: 10, Y: 4}) // 90
	if math.Abs(m.Value()-0.1) > 1e-12 {
		t.Errorf("expected drift 0.1, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestEnergyLoss(t *testing.T) {
	m := NewEnergyLoss(10)
	m.Observe(dynamo.Sample{Vx: 10, Y: 5})
	m.Observe(dynamo.Sample{Vx: 0, Y: 5})
	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected loss 0.5, got %f", m.Value())
	}
}

func TestMinCurvatureRadius(t *testing.T) {
	m := NewMinCurvatureRadius()
	m.Observe(dynamo.Sample{})
	if m.Value() != 0 {
		t.Errorf("expected 0 without circles, got %f", m.Value())
	}
	m.Observe(dynamo.Sample{Circle: &dynamo.Circle{R: 40}})
	m.Observe(dynamo.Sample{Circle: &dynamo.Circle{R: 25}})
	m.Observe(dynamo.Sample{Circle: &dynamo.Circle{R: 90}})
	if m.Value() != 25 {
		t.Errorf("expected 25, got %f", m.Value())
	}
}

func TestTimeAbove(t *testing.T) {
	m := NewTimeAbove(10, 0.5)
	for _, y := range []float64{0, 8, 10, 12, 9} {
		m.Observe(dynamo.Sample{Y: y})
	}
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 s above, got %f", m.Value())
	}
}

func TestStandardMetricsOnRun(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0, p.K, p.N = 60, 50, 0.01, 1
	p.Basis = dynamo.Natural

	s := sim.New(integrators.NewNatural())
	for _, m := range Standard(p) {
		s.AddMetric(m)
	}
	res, err := s.Run(p)
	if err != nil {
		t.Fatal(err)
	}

	last := res.Trajectory.Last()
	if res.Metrics["flight_time"] != last.T || res.Metrics["range"] != last.X {
		t.Errorf("flight metrics %v, last sample t=%f x=%f", res.Metrics, last.T, last.X)
	}
	if res.Metrics["peak_height"] <= 0 {
		t.Error("expected positive peak height")
	}
	if loss := res.Metrics["energy_loss"]; loss <= 0 || loss >= 1 {
		t.Errorf("drag should dissipate part of the energy, loss %f", loss)
	}
	above := res.Metrics["time_above"]
	if above <= 0 || above > res.Metrics["flight_time"] {
		t.Errorf("time above launch height %f outside (0, %f]", above, res.Metrics["flight_time"])
	}
	if res.Metrics["min_curvature_radius"] <= 0 {
		t.Error("expected a curvature radius from the natural basis")
	}
}
