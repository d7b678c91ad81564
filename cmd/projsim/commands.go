package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/automation"
	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/experiment"
	"github.com/san-kum/projsim/internal/export"
	"github.com/san-kum/projsim/internal/sim"
	"github.com/san-kum/projsim/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func seriesList() string {
	return strings.Join(viz.SeriesNames, ", ")
}

// simulate runs p with the default metrics.
func simulate(p dynamo.Params) (*sim.Result, error) {
	e, err := experiment.NewRegistry().Prepare(p)
	if err != nil {
		return nil, err
	}
	return e.Run(context.Background())
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, _, err := resolve(cmd)
	if err != nil {
		return err
	}
	res, err := simulate(p)
	if err != nil {
		return err
	}
	log.WithField("steps", res.StepsTaken).Debug("run complete")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.SummaryPanel(res.Trajectory))
	fmt.Fprintln(out, viz.Panel.Render(viz.Title.Render("METRICS")+"\n"+strings.TrimRight(viz.MetricsBlock(res.Metrics), "\n")))

	every, _ := cmd.Flags().GetInt("every")
	if every <= 0 {
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "i\tt\tx\ty\tV\ttheta\ta_par\ta_perp\t")
	tr := res.Trajectory
	for i := 0; i < tr.Len(); i++ {
		if i%every != 0 && i != tr.Len()-1 {
			continue
		}
		s := tr.At(i)
		fmt.Fprintf(w, "%d\t%.2f\t%.3f\t%.3f\t%.3f\t%.4f\t%.3f\t%.3f\t\n",
			i, s.T, s.X, s.Y, s.V, s.Theta, s.APar, s.APerp)
	}
	return w.Flush()
}

func compareBases(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	c, err := experiment.NewRegistry().CompareBases(p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.ComparisonPanel(c.Cartesian.Trajectory, c.Natural.Trajectory))
	fmt.Fprintln(out, viz.PlotHeights(
		[]*dynamo.Trajectory{c.Cartesian.Trajectory, c.Natural.Trajectory},
		cfg.Display.Width, cfg.Display.Height/2))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	tr, err := sim.Simulate(p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	width, height := cfg.Display.Width, cfg.Display.Height

	if drawPath, _ := cmd.Flags().GetBool("path"); drawPath {
		canvas := viz.NewCanvas(width, height)
		viz.NewScene(tr, layersFor(cfg), cfg.Display.MarkerInterval).Draw(canvas, -1)
		fmt.Fprintln(out, viz.PathStyle.Render(canvas.String()))
	}

	if pair, _ := cmd.Flags().GetString("portrait"); pair != "" {
		fx, fy, err := portraitFields(pair)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, analysis.NewPortrait(tr, fx, fy).ASCII(width, height))
	}

	series := args
	if len(series) == 0 {
		series = []string{"y", "v"}
	}
	for _, name := range series {
		chart, err := viz.Plot(tr, name, width, height/3)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, chart)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, viz.PlotSpeeds(tr, width, height/3))
	return nil
}

func portraitFields(pair string) (analysis.Field, analysis.Field, error) {
	parts := strings.Split(pair, ":")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("portrait wants two fields, got %q", pair)
	}
	fx, okx := analysis.Fields[parts[0]]
	fy, oky := analysis.Fields[parts[1]]
	if !okx || !oky {
		names := make([]string, 0, len(analysis.Fields))
		for name := range analysis.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, nil, fmt.Errorf("unknown field in %q (have %s)", pair, strings.Join(names, ", "))
	}
	return fx, fy, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	tr, err := sim.Simulate(p)
	if err != nil {
		return err
	}
	m := viz.NewReplay(tr, viz.ReplayOptions{
		Layers:         layersFor(cfg),
		MarkerInterval: cfg.Display.MarkerInterval,
		Rate:           cfg.Display.PlaybackRate,
		Width:          cfg.Display.Width,
		Height:         cfg.Display.Height,
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolve(cmd)
	if err != nil {
		return err
	}
	param, _ := cmd.Flags().GetString("param")
	from, _ := cmd.Flags().GetFloat64("from")
	to, _ := cmd.Flags().GetFloat64("to")
	steps, _ := cmd.Flags().GetInt("steps")

	sweep := &automation.ParameterSweep{Base: p, ParamName: param, ParamMin: from, ParamMax: to, NumSteps: steps}
	results, err := automation.RunSweep(cmd.Context(), sweep, experiment.NewRegistry(), log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\tpeak (m)\tapex t (s)\tlanding x (m)\tlanding t (s)\timpact (m/s)\t\n", param)
	for _, r := range results {
		s := r.Summary
		fmt.Fprintf(w, "%g\t%.2f\t%.2f\t%.2f\t%.3f\t%.2f\t\n",
			r.ParamValue, s.PeakHeight, s.ApexTime, s.LandingX, s.LandingT, s.ImpactSpeed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best := results[automation.Best(results, func(r automation.SweepResult) float64 { return r.Summary.LandingX })]
	fmt.Fprintf(out, "\nlongest range %.2f m at %s=%g\n", best.Summary.LandingX, param, best.ParamValue)

	if chart, _ := cmd.Flags().GetBool("chart"); chart {
		trs := make([]*dynamo.Trajectory, 0, len(results))
		for _, r := range results {
			q, err := p.With(param, r.ParamValue)
			if err != nil {
				return err
			}
			tr, err := sim.Simulate(q)
			if err != nil {
				return err
			}
			trs = append(trs, tr)
		}
		fmt.Fprintln(out, viz.PlotHeights(trs, cfg.Display.Width, cfg.Display.Height/2))
	}
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	p, _, err := resolve(cmd)
	if err != nil {
		return err
	}
	mc := &automation.MonteCarloConfig{Base: p}
	mc.NumTrials, _ = cmd.Flags().GetInt("trials")
	mc.V0Spread, _ = cmd.Flags().GetFloat64("v0-spread")
	mc.ThetaSpread, _ = cmd.Flags().GetFloat64("theta-spread")
	mc.KSpread, _ = cmd.Flags().GetFloat64("k-spread")
	mc.Seed, _ = cmd.Flags().GetInt64("seed")
	if mc.NumTrials < 1 {
		return fmt.Errorf("--trials must be at least 1, got %d", mc.NumTrials)
	}
	if mc.V0Spread < 0 || mc.ThetaSpread < 0 || mc.KSpread < 0 {
		return fmt.Errorf("spreads must not be negative")
	}

	results, err := automation.RunMonteCarlo(cmd.Context(), mc, experiment.NewRegistry(), log)
	if err != nil {
		return err
	}
	d := automation.MonteCarloStats(results)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "trials landed\t%d of %d\n", d.Trials, len(results))
	fmt.Fprintf(w, "range\t%.2f ± %.2f m\n", d.MeanRange, d.StdRange)
	fmt.Fprintf(w, "range spread\t%.2f .. %.2f m\n", d.MinRange, d.MaxRange)
	fmt.Fprintf(w, "flight time\t%.3f ± %.3f s\n", d.MeanTime, d.StdTime)
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if sc.Description != "" {
		log.Info(sc.Description)
	}
	results, err := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry(), log)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "step\tbasis\tv0\ttheta0\tk\tn\tpeak (m)\tlanding x (m)\tlanding t (s)")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%.2f\t%.2f\t%.3f\n",
			r.Name, r.Params.Basis, r.Params.V0, r.Params.Theta0, r.Params.K, r.Params.N,
			r.Summary.PeakHeight, r.Summary.LandingX, r.Summary.LandingT)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("save"); path != "" {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		log.WithField("path", path).Info("configuration saved")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "name\tbasis\ty0\tv0\ttheta0\tk\tn")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%d\n",
			name, c.Basis, c.Launch.Y0, c.Launch.V0, c.Launch.Theta0, c.Drag.K, c.Drag.N)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolve(cmd)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	var format export.Format
	switch {
	case formatName != "":
		format, err = export.ParseFormat(formatName)
	case len(args) == 1:
		format, err = export.FormatFromPath(args[0])
	default:
		format = export.CSV
	}
	if err != nil {
		return err
	}

	res, err := simulate(p)
	if err != nil {
		return err
	}
	opts := exportOptions(cfg)
	opts.Metrics = res.Metrics

	out := cmd.OutOrStdout()
	var file *os.File
	if len(args) == 1 && args[0] != "-" {
		if file, err = os.Create(args[0]); err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	if both, _ := cmd.Flags().GetBool("both"); both && format == export.HTML {
		c, err := experiment.NewRegistry().CompareBases(p)
		if err != nil {
			return err
		}
		err = export.WriteHTML(out, opts, c.Cartesian.Trajectory, c.Natural.Trajectory)
		if err != nil {
			return err
		}
	} else if err := export.Write(out, format, res.Trajectory, opts); err != nil {
		return err
	}

	if file != nil {
		log.WithFields(logrus.Fields{"path": file.Name(), "format": format, "samples": res.Trajectory.Len()}).Info("exported")
		return file.Close()
	}
	return nil
}
