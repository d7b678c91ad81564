package main

import (
	"fmt"
	"strings"

	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/export"
	"github.com/san-kum/projsim/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// launchFlags are the run parameters settable from flags and PROJSIM_*
// environment variables. Keys double as viper keys.
var launchFlags = []struct {
	key   string
	usage string
}{
	{"y0", "launch height (m)"},
	{"v0", "launch speed (m/s)"},
	{"theta0", "launch angle (degrees, 0-90)"},
	{"g", "gravitational acceleration (m/s^2)"},
	{"k", "drag coefficient"},
	{"n", "drag exponent (1 or 2)"},
	{"dt", "time step (s)"},
	{"max-steps", "give up after this many steps (0 = default)"},
	{"basis", "coordinate basis: cartesian or natural"},
}

func addLaunchFlags(fs *pflag.FlagSet) {
	def := config.DefaultConfig()
	fs.Float64("y0", def.Launch.Y0, launchFlags[0].usage)
	fs.Float64("v0", def.Launch.V0, launchFlags[1].usage)
	fs.Float64("theta0", def.Launch.Theta0, launchFlags[2].usage)
	fs.Float64("g", def.Gravity, launchFlags[3].usage)
	fs.Float64("k", def.Drag.K, launchFlags[4].usage)
	fs.Int("n", def.Drag.N, launchFlags[5].usage)
	fs.Float64("dt", def.Dt, launchFlags[6].usage)
	fs.Int("max-steps", def.MaxSteps, launchFlags[7].usage)
	fs.String("basis", def.Basis, launchFlags[8].usage)

	fs.String("layers", def.Display.Layers, "overlays: path,markers,vectors,circles, all or none")
	fs.Float64("rate", def.Display.PlaybackRate, "playback speed for live (simulated s per s)")
	fs.Float64("markers", def.Display.MarkerInterval, "key-point marker interval (s)")
	fs.Int("width", def.Display.Width, "chart width")
	fs.Int("height", def.Display.Height, "chart height")
}

// newViper binds the command's flags and the PROJSIM_* environment.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("projsim")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// resolveConfig layers defaults, --preset, --config, environment and flags,
// in increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		if cfg = config.GetPreset(presetName); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}
	if configFile != "" {
		var err error
		if cfg, err = config.LoadOver(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	v, err := newViper(cmd)
	if err != nil {
		return nil, err
	}
	if v.IsSet("y0") {
		cfg.Launch.Y0 = v.GetFloat64("y0")
	}
	if v.IsSet("v0") {
		cfg.Launch.V0 = v.GetFloat64("v0")
	}
	if v.IsSet("theta0") {
		cfg.Launch.Theta0 = v.GetFloat64("theta0")
	}
	if v.IsSet("g") {
		cfg.Gravity = v.GetFloat64("g")
	}
	if v.IsSet("k") {
		cfg.Drag.K = v.GetFloat64("k")
	}
	if v.IsSet("n") {
		cfg.Drag.N = v.GetInt("n")
	}
	if v.IsSet("dt") {
		cfg.Dt = v.GetFloat64("dt")
	}
	if v.IsSet("max-steps") {
		cfg.MaxSteps = v.GetInt("max-steps")
	}
	if v.IsSet("basis") {
		cfg.Basis = v.GetString("basis")
	}
	if v.IsSet("markers") {
		cfg.Display.MarkerInterval = v.GetFloat64("markers")
	}
	if v.IsSet("width") {
		cfg.Display.Width = v.GetInt("width")
	}
	if v.IsSet("height") {
		cfg.Display.Height = v.GetInt("height")
	}
	if v.IsSet("rate") {
		cfg.Display.PlaybackRate = v.GetFloat64("rate")
	}
	if v.IsSet("layers") {
		cfg.Display.Layers = v.GetString("layers")
	}
	if _, err := viz.ParseLayers(cfg.Display.Layers); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve returns validated parameters and the display settings.
func resolve(cmd *cobra.Command) (dynamo.Params, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return dynamo.Params{}, nil, err
	}
	p, err := cfg.Params()
	if err != nil {
		return p, nil, err
	}
	if err := p.Validate(); err != nil {
		return p, nil, err
	}
	log.WithFields(logrus.Fields{
		"basis": p.Basis, "y0": p.Y0, "v0": p.V0, "theta0": p.Theta0,
		"k": p.K, "n": p.N, "g": p.G, "dt": p.Dt,
	}).Debug("resolved parameters")
	return p, cfg, nil
}

// layersFor parses the display layers; resolveConfig has already checked them.
func layersFor(cfg *config.Config) viz.Layers {
	l, err := viz.ParseLayers(cfg.Display.Layers)
	if err != nil {
		return viz.DefaultLayers()
	}
	return l
}

func exportOptions(cfg *config.Config) export.Options {
	opts := export.DefaultOptions()
	opts.Layers = layersFor(cfg)
	opts.MarkerInterval = cfg.Display.MarkerInterval
	return opts
}
