package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	presetName string
	verbose    bool

	log = logrus.New()
)

// main registers the commands and exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "projsim",
		Short:         "projectile flight simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "start from a preset (see presets)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addLaunchFlags(rootCmd.PersistentFlags())

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one launch and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().Int("every", 0, "also print every n-th sample")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "simulate in both coordinate bases and compare",
		Args:  cobra.NoArgs,
		RunE:  compareBases,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [series...]",
		Short: "chart sample fields against time (" + seriesList() + ")",
		RunE:  plotRun,
	}
	plotCmd.Flags().String("portrait", "", "plot one field against another, e.g. x:y or vx:vy")
	plotCmd.Flags().Bool("path", false, "draw the flight path on a braille canvas")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay a launch in real time; tune parameters while watching",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a launch across a range of one parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().String("param", "theta0", "parameter to sweep")
	sweepCmd.Flags().Float64("from", 15, "first value")
	sweepCmd.Flags().Float64("to", 75, "last value")
	sweepCmd.Flags().Int("steps", 13, "number of values")
	sweepCmd.Flags().Bool("chart", false, "overlay the heights of every run")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "scatter a launch and report the landing dispersion",
		Args:  cobra.NoArgs,
		RunE:  runMonteCarlo,
	}
	monteCarloCmd.Flags().Int("trials", 200, "number of trials")
	monteCarloCmd.Flags().Float64("v0-spread", 1, "uniform speed perturbation (+/- m/s)")
	monteCarloCmd.Flags().Float64("theta-spread", 1, "uniform angle perturbation (+/- degrees)")
	monteCarloCmd.Flags().Float64("k-spread", 0.1, "uniform drag perturbation (+/- fraction)")
	monteCarloCmd.Flags().Int64("seed", 0, "random seed (0 = time based)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a scripted sequence of launches",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().String("save", "", "write the resolved configuration to this yaml file")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write a trajectory as csv, json, svg or html",
		Long: "Writes the trajectory to file, choosing the format from the extension\n" +
			"unless --format is given. Without a file the output goes to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: exportRun,
	}
	exportCmd.Flags().StringP("format", "f", "", "csv, json, svg or html")
	exportCmd.Flags().Bool("both", false, "html only: chart both bases")

	rootCmd.AddCommand(runCmd, compareCmd, plotCmd, liveCmd, sweepCmd, monteCarloCmd,
		scenarioCmd, presetsCmd, exportCmd)
	return rootCmd
}
