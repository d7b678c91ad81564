package experiment

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/integrators"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	names := r.ListSteppers()
	if len(names) != 2 || names[0] != "cartesian" || names[1] != "natural" {
		t.Errorf("unexpected steppers %v", names)
	}

	for _, name := range []string{"cartesian", "xy", "natural", "polar"} {
		if _, err := r.GetStepper(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, ok := mustStepper(t, r, "polar").(*integrators.Natural); !ok {
		t.Error("polar should resolve to the natural stepper")
	}
	if _, err := r.GetStepper("rk4"); err == nil {
		t.Error("expected error for unknown stepper")
	}
}

func mustStepper(t *testing.T, r *Registry, name string) dynamo.Stepper {
	t.Helper()
	s, err := r.GetStepper(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExperimentRun(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0 = 40, 35

	e, err := NewRegistry().Prepare(p)
	if err != nil {
		t.Fatal(err)
	}
	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Landed() {
		t.Error("expected run to land")
	}
	if _, ok := res.Metrics["peak_height"]; !ok {
		t.Errorf("default metrics missing: %v", res.Metrics)
	}
}

func TestExperimentNotSetup(t *testing.T) {
	if _, err := New(dynamo.DefaultParams()).Run(context.Background()); err == nil {
		t.Error("expected error running an experiment without setup")
	}
}

func TestExperimentCancelled(t *testing.T) {
	e, err := NewRegistry().Prepare(dynamo.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCompareBases(t *testing.T) {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0, p.K, p.N = 50, 45, 0.02, 1

	c, err := NewRegistry().CompareBases(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Cartesian.Trajectory.Params().Basis != dynamo.Cartesian ||
		c.Natural.Trajectory.Params().Basis != dynamo.Natural {
		t.Fatal("bases not assigned")
	}
	if c.Deviation <= 0 || c.Deviation > 2.5 {
		t.Errorf("deviation %f outside (0, 2.5]", c.Deviation)
	}
}

type countingStepper struct {
	dynamo.Stepper
	launches *atomic.Int64
}

func (c countingStepper) Launch(p dynamo.Params) dynamo.Sample {
	c.launches.Add(1)
	return c.Stepper.Launch(p)
}

func TestRegisteredStepperReachesEveryRun(t *testing.T) {
	var launches atomic.Int64
	r := NewRegistry()
	r.Register("natural", func() dynamo.Stepper {
		return countingStepper{Stepper: integrators.NewNatural(), launches: &launches}
	})

	p := dynamo.DefaultParams()
	p.V0, p.Basis = 20, dynamo.Natural

	e, err := r.Prepare(p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := r.CompareBases(p); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Ensemble().Run([]dynamo.Params{p, p, p}); err != nil {
		t.Fatal(err)
	}
	if got := launches.Load(); got != 5 {
		t.Errorf("registered stepper launched %d times, want 5", got)
	}
}
