package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/experiment"
	"github.com/san-kum/projsim/internal/export"
	"github.com/san-kum/projsim/internal/sim"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. It starts from Preset (or the defaults),
// switches to Basis if set, then applies Params by name.
type ScenarioStep struct {
	Name   string             `yaml:"name"`
	Preset string             `yaml:"preset"`
	Basis  string             `yaml:"basis"`
	Params map[string]float64 `yaml:"params"`
	// SaveAs writes the trajectory; the format follows the extension.
	SaveAs string `yaml:"save_as"`
}

// StepResult is one finished scenario step.
type StepResult struct {
	Name    string
	Params  dynamo.Params
	Result  *sim.Result
	Summary analysis.Summary
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Resolve turns a step into run parameters.
func (s ScenarioStep) Resolve() (dynamo.Params, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return dynamo.Params{}, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Basis != "" {
		cfg.Basis = s.Basis
	}
	p, err := cfg.Params()
	if err != nil {
		return p, err
	}
	for name, v := range s.Params {
		if p, err = p.With(name, v); err != nil {
			return p, err
		}
	}
	return p, nil
}

// RunScenario executes the steps in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, log logrus.FieldLogger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	log = log.WithField("scenario", scenario.Name)

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		stepLog := log.WithFields(logrus.Fields{"step": i + 1, "of": len(scenario.Steps), "name": name})

		p, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp, err := registry.Prepare(p)
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		stepLog.WithField("basis", p.Basis).Debug("running")
		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		if step.SaveAs != "" {
			if err := export.WriteFile(step.SaveAs, result.Trajectory); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			stepLog.WithField("path", step.SaveAs).Info("saved trajectory")
		}

		summary := analysis.Summarize(result.Trajectory)
		stepLog.WithFields(logrus.Fields{
			"peak":  summary.PeakHeight,
			"range": summary.LandingX,
			"time":  summary.LandingT,
		}).Info("step complete")

		results = append(results, StepResult{
			Name:    name,
			Params:  p,
			Result:  result,
			Summary: summary,
		})
	}

	return results, nil
}
