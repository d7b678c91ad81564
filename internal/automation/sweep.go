package automation

import (
	"context"
	"fmt"

	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/experiment"
	"github.com/san-kum/projsim/internal/sim"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// ParameterSweep runs one launch across evenly spaced values of a parameter.
type ParameterSweep struct {
	Base      dynamo.Params
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds one point of a parameter sweep
type SweepResult struct {
	ParamValue float64
	Summary    analysis.Summary
	Metrics    map[string]float64
}

// Values lists the parameter values the sweep visits.
func (s *ParameterSweep) Values() []float64 {
	if s.NumSteps <= 1 {
		return []float64{s.ParamMin}
	}
	return floats.Span(make([]float64, s.NumSteps), s.ParamMin, s.ParamMax)
}

// RunSweep executes a parameter sweep. The runs are independent and execute
// concurrently; results come back in parameter order.
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry, log logrus.FieldLogger) ([]SweepResult, error) {
	values := sweep.Values()
	params := make([]dynamo.Params, len(values))
	for i, v := range values {
		p, err := sweep.Base.With(sweep.ParamName, v)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sweep.ParamName, v, err)
		}
		params[i] = p
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"param": sweep.ParamName,
		"from":  sweep.ParamMin,
		"to":    sweep.ParamMax,
		"runs":  len(params),
	}).Info("starting sweep")

	results := make([]SweepResult, len(params))
	err := registry.Ensemble().Visit(params, func(i int, r *sim.Result) {
		results[i] = SweepResult{
			ParamValue: values[i],
			Summary:    analysis.Summarize(r.Trajectory),
			Metrics:    r.Metrics,
		}
		log.WithFields(logrus.Fields{
			sweep.ParamName: values[i],
			"peak":          results[i].Summary.PeakHeight,
			"range":         results[i].Summary.LandingX,
		}).Debug("sweep point")
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Best returns the index of the result maximizing score.
func Best(results []SweepResult, score func(SweepResult) float64) int {
	if len(results) == 0 {
		return -1
	}
	vals := make([]float64, len(results))
	for i, r := range results {
		vals[i] = score(r)
	}
	return floats.MaxIdx(vals)
}
