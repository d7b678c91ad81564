package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/sim"
)

// line builds a frozen trajectory from (x, y) pairs one Dt apart.
func line(pts ...[2]float64) *dynamo.Trajectory {
	p := dynamo.DefaultParams()
	tr := dynamo.NewTrajectory(p, len(pts))
	for i, pt := range pts {
		tr.Append(dynamo.FromCartesian(float64(i)*p.Dt, pt[0], pt[1], 1, 0, 0, -p.G, 0))
	}
	tr.Freeze()
	return tr
}

func TestApex(t *testing.T) {
	tr := line([2]float64{0, 0}, [2]float64{1, 3}, [2]float64{2, 5}, [2]float64{3, 5}, [2]float64{4, -1})
	i, s := Apex(tr)
	if i != 2 || s.Y != 5 {
		t.Errorf("apex at %d (y=%f), want 2 (y=5)", i, s.Y)
	}

	if i, _ := Apex(nil); i != -1 {
		t.Errorf("apex of nil trajectory at %d", i)
	}
}

func TestLandingInterpolates(t *testing.T) {
	tr := line([2]float64{0, 0}, [2]float64{1, 4}, [2]float64{2, 1}, [2]float64{3, -3})
	landing, ok := Landing(tr)
	if !ok {
		t.Fatal("expected a landing")
	}
	if math.Abs(landing.X-2.25) > 1e-12 {
		t.Errorf("landing x %f, want 2.25", landing.X)
	}
	if math.Abs(landing.T-0.0225) > 1e-12 {
		t.Errorf("landing t %f, want 0.0225", landing.T)
	}
	if landing.Before != 2 || landing.After != 3 {
		t.Errorf("bracket %d..%d", landing.Before, landing.After)
	}
}

func TestLandingExactlyOnGround(t *testing.T) {
	tr := line([2]float64{0, 0}, [2]float64{1, 2}, [2]float64{2, 0})
	landing, ok := Landing(tr)
	if !ok || landing.X != 2 || landing.Before != 2 {
		t.Errorf("got %+v, %v", landing, ok)
	}
}

func TestLandingStillFlying(t *testing.T) {
	tr := line([2]float64{0, 0}, [2]float64{1, 2})
	if _, ok := Landing(tr); ok {
		t.Error("landing reported for a run still in the air")
	}
}

func TestMarkers(t *testing.T) {
	pts := make([][2]float64, 251)
	for i := range pts {
		pts[i] = [2]float64{float64(i), 1}
	}
	tr := line(pts...)

	got := Markers(tr, 0.5)
	want := []int{0, 50, 100, 150, 200, 250}
	if len(got) != len(want) {
		t.Fatalf("markers %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("marker %d = %d, want %d", i, got[i], want[i])
		}
	}

	if Markers(tr, 0) != nil {
		t.Error("expected no markers for zero interval")
	}
	if n := len(Markers(tr, 0.001)); n != tr.Len() {
		t.Errorf("interval below dt gave %d markers, want %d", n, tr.Len())
	}
}

func TestDeviation(t *testing.T) {
	a := line([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 0})
	b := line([2]float64{0, 0}, [2]float64{1, 4}, [2]float64{6, 3}, [2]float64{9, 9})

	if d := Deviation(a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("deviation %f, want 5", d)
	}
	if d := Deviation(a, a); d != 0 {
		t.Errorf("self deviation %f", d)
	}

	c := Compare(a, b)
	if c.WorstIndex != 2 || c.LenDelta != 1 || c.PeakDelta != 8 {
		t.Errorf("comparison %+v", c)
	}
}

func TestSummarize(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0 = 50, 45

	tr, err := sim.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(tr)

	if !s.Landed {
		t.Fatal("expected landed summary")
	}
	if s.Samples != tr.Len() || s.FlightTime != tr.Last().T {
		t.Errorf("summary %+v does not match trajectory", s)
	}
	if s.LandingX > s.Range || s.LandingT > s.FlightTime {
		t.Errorf("interpolated landing (%f, %f) past the last sample (%f, %f)",
			s.LandingX, s.LandingT, s.Range, s.FlightTime)
	}
	if math.Abs(s.ImpactAngle-45) > 0.5 {
		t.Errorf("impact angle %f, want about 45", s.ImpactAngle)
	}
	if s.EnergyDrift > 1e-9 {
		t.Errorf("cartesian energy drift %g", s.EnergyDrift)
	}
	if s.MaxSpeed < p.V0 || s.MeanSpeed >= s.MaxSpeed {
		t.Errorf("speeds max=%f mean=%f", s.MaxSpeed, s.MeanSpeed)
	}
	if !math.IsInf(s.MinRadius, 1) {
		t.Errorf("cartesian run has a curvature radius %f", s.MinRadius)
	}
	if !math.IsInf(s.TerminalSpeed, 1) || s.VacuumDeviation > 1e-6 {
		t.Errorf("drag-free run: terminal %f, deviation from parabola %g", s.TerminalSpeed, s.VacuumDeviation)
	}

	dragged := p
	dragged.K, dragged.N = 0.01, 2
	tr, err = sim.Simulate(dragged)
	if err != nil {
		t.Fatal(err)
	}
	ds := Summarize(tr)
	if want := math.Sqrt(p.G / 0.01); math.Abs(ds.TerminalSpeed-want) > 1e-9 {
		t.Errorf("terminal speed %f, want %f", ds.TerminalSpeed, want)
	}
	if ds.VacuumDeviation < 1 {
		t.Errorf("drag should pull the path off the parabola, deviation %f", ds.VacuumDeviation)
	}

	p.Basis = dynamo.Natural
	tr, err = sim.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}
	// tightest turn is at the apex: v^2/g with v = V0 cos(45)
	want := math.Pow(p.V0*math.Cos(math.Pi/4), 2) / p.G
	if got := Summarize(tr).MinRadius; math.Abs(got-want) > 0.01*want {
		t.Errorf("min radius %f, want about %f", got, want)
	}
}

func TestPortraitASCII(t *testing.T) {
	tr := line([2]float64{-1, 0}, [2]float64{0, 2}, [2]float64{1, 0})
	out := NewPortrait(tr, FieldX, FieldY).ASCII(20, 10)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != 10 {
		t.Fatalf("got %d rows", len(rows))
	}
	if strings.Count(out, "•") != 3 {
		t.Errorf("expected 3 points:\n%s", out)
	}
	if !strings.Contains(out, "│") {
		t.Errorf("expected a vertical axis:\n%s", out)
	}

	if NewPortrait(nil, FieldX, FieldY).ASCII(20, 10) != "" {
		t.Error("expected empty render")
	}
}
