package automation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/experiment"
	"github.com/san-kum/projsim/internal/sim"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MonteCarloConfig scatters a launch with uniform perturbations of speed,
// angle and drag.
type MonteCarloConfig struct {
	Base        dynamo.Params
	V0Spread    float64 // m/s, +/-
	ThetaSpread float64 // degrees, +/-
	KSpread     float64 // fraction of Base.K, +/-
	NumTrials   int
	Seed        int64
}

// MonteCarloResult is one perturbed trial.
type MonteCarloResult struct {
	TrialID int
	Params  dynamo.Params
	Landed  bool
	Range   float64 // interpolated landing x
	Time    float64 // interpolated landing t
	Peak    float64
}

// Dispersion summarizes where the trials came down.
type Dispersion struct {
	Trials    int
	MeanRange float64
	StdRange  float64
	MinRange  float64
	MaxRange  float64
	MeanTime  float64
	StdTime   float64
}

// RunMonteCarlo executes the trials concurrently, reducing each run to its
// landing as soon as it finishes. Perturbed values are clamped into their
// valid ranges.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry, log logrus.FieldLogger) ([]MonteCarloResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("monte carlo needs at least one trial, got %d", cfg.NumTrials)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	jitter := func(spread float64) float64 { return (rng.Float64() - 0.5) * 2 * spread }

	params := make([]dynamo.Params, cfg.NumTrials)
	for i := range params {
		p := cfg.Base
		p.V0 = math.Max(0, p.V0+jitter(cfg.V0Spread))
		p.Theta0 = math.Min(90, math.Max(0, p.Theta0+jitter(cfg.ThetaSpread)))
		p.K = math.Max(0, p.K*(1+jitter(cfg.KSpread)))
		params[i] = p
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"trials": cfg.NumTrials, "seed": cfg.Seed}).Info("starting monte carlo")

	var done atomic.Int64
	results := make([]MonteCarloResult, len(params))
	err := registry.Ensemble().Visit(params, func(i int, r *sim.Result) {
		landing, ok := analysis.Landing(r.Trajectory)
		_, apex := analysis.Apex(r.Trajectory)
		results[i] = MonteCarloResult{
			TrialID: i,
			Params:  params[i],
			Landed:  ok,
			Range:   landing.X,
			Time:    landing.T,
			Peak:    apex.Y,
		}
		if n := done.Add(1); n%100 == 0 {
			log.Debugf("monte carlo: %d/%d trials summarized", n, len(params))
		}
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// MonteCarloStats computes the landing dispersion of the trials that landed.
func MonteCarloStats(results []MonteCarloResult) Dispersion {
	ranges := make([]float64, 0, len(results))
	times := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Landed {
			ranges = append(ranges, r.Range)
			times = append(times, r.Time)
		}
	}
	d := Dispersion{Trials: len(ranges)}
	if len(ranges) == 0 {
		return d
	}
	d.MinRange, d.MaxRange = floats.Min(ranges), floats.Max(ranges)
	if len(ranges) == 1 {
		d.MeanRange, d.MeanTime = ranges[0], times[0]
		return d
	}
	d.MeanRange, d.StdRange = stat.MeanStdDev(ranges, nil)
	d.MeanTime, d.StdTime = stat.MeanStdDev(times, nil)
	return d
}
