package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/projsim/internal/dynamo"
	"gonum.org/v1/gonum/floats/scalar"
)

func flyNatural(p dynamo.Params, steps int) []dynamo.Sample {
	integ := NewNatural()
	out := []dynamo.Sample{integ.Launch(p)}
	for i := 0; i < steps; i++ {
		out = append(out, integ.Advance(p, out[len(out)-1]))
	}
	return out
}

func TestNaturalLaunch(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0, p.K = 50, 30, 0.1

	s := NewNatural().Launch(p)

	if !scalar.EqualWithinAbs(s.APar, -5-p.G*0.5, 1e-9) {
		t.Errorf("a_par = %f", s.APar)
	}
	if !scalar.EqualWithinAbs(s.APerp, -p.G*math.Cos(math.Pi/6), 1e-9) {
		t.Errorf("a_perp = %f", s.APerp)
	}
	if s.Circle == nil {
		t.Fatal("natural samples carry an osculating circle")
	}
	wantR := 2500 / (p.G*math.Cos(math.Pi/6) + dynamo.DegenerateEpsilon)
	if !scalar.EqualWithinRel(s.Circle.R, wantR, 1e-12) {
		t.Errorf("R = %f, want %f", s.Circle.R, wantR)
	}
	// centre sits below and ahead of a rising projectile
	if s.Circle.Cx <= 0 || s.Circle.Cy >= 0 {
		t.Errorf("centre = (%f, %f)", s.Circle.Cx, s.Circle.Cy)
	}
}

func TestNaturalHeadingTurnsDown(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0 = 70, 50

	samples := flyNatural(p, 1000)
	for i := 1; i < len(samples); i++ {
		if samples[i].Theta >= samples[i-1].Theta {
			t.Fatalf("step %d: heading did not decrease (%f -> %f)", i, samples[i-1].Theta, samples[i].Theta)
		}
		if samples[i].Theta <= -math.Pi/2 {
			t.Fatalf("step %d: heading passed straight down", i)
		}
	}
}

func TestNaturalVertical(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0 = 49.05, 90

	samples := flyNatural(p, 1000)
	peak := 0.0
	for i, s := range samples {
		if s.X != 0 || s.Vx != 0 {
			t.Fatalf("step %d: horizontal motion (%g, %g)", i, s.X, s.Vx)
		}
		if s.APerp != 0 {
			t.Fatalf("step %d: a_perp = %g", i, s.APerp)
		}
		peak = math.Max(peak, s.Y)
	}
	// constant acceleration is integrated exactly
	want := p.V0 * p.V0 / (2 * p.G)
	if !scalar.EqualWithinAbs(peak, want, 0.01) {
		t.Errorf("peak = %f, want %f", peak, want)
	}
}

func TestNaturalDropFromRest(t *testing.T) {
	p := dynamo.DefaultParams()
	p.Y0, p.V0, p.Theta0, p.K = 100, 0, 45, 0.5

	samples := flyNatural(p, 2000)
	last := samples[len(samples)-1]
	if last.X != 0 {
		t.Errorf("x = %g after a drop from rest", last.X)
	}
	// linear drag caps the fall speed at g/k
	if last.Speed() > p.G/p.K+1e-6 {
		t.Errorf("speed %f above terminal %f", last.Speed(), p.G/p.K)
	}
	if last.Vy >= 0 {
		t.Errorf("vy = %f, want falling", last.Vy)
	}
}

func TestNaturalVerticalDragOpposesFall(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0, p.K, p.N = 30, 90, 0.01, 2

	for i, s := range flyNatural(p, 1500) {
		if s.V < 0 && s.APar < -p.G {
			t.Fatalf("step %d: drag accelerates the fall (a_par = %f)", i, s.APar)
		}
	}
}
