package config

import (
	"fmt"
	"os"

	"github.com/san-kum/projsim/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultV0             = 100.0
	DefaultTheta0         = 60.0
	DefaultMarkerInterval = 1.5
	DefaultWidth          = 80
	DefaultHeight         = 24
	DefaultPlaybackRate   = 1.0
	DefaultLayers         = "path,markers"
)

type Config struct {
	Basis    string       `yaml:"basis"`
	Launch   LaunchConfig `yaml:"launch"`
	Drag     DragConfig   `yaml:"drag"`
	Gravity  float64      `yaml:"gravity"`
	Dt       float64      `yaml:"dt"`
	MaxSteps int          `yaml:"max_steps"`
	Display  Display      `yaml:"display"`
}

type LaunchConfig struct {
	Y0     float64 `yaml:"y0"`
	V0     float64 `yaml:"v0"`
	Theta0 float64 `yaml:"theta0"` // degrees
}

type DragConfig struct {
	K float64 `yaml:"k"`
	N int     `yaml:"n"`
}

// Display holds presentation settings; none of them affect a run.
type Display struct {
	MarkerInterval float64 `yaml:"marker_interval"` // seconds
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	PlaybackRate   float64 `yaml:"playback_rate"` // simulated seconds per wall second
	// Layers is a comma separated overlay list, e.g. "path,markers,vectors".
	Layers string `yaml:"layers"`
}

func DefaultConfig() *Config {
	return &Config{
		Basis: dynamo.Cartesian.String(),
		Launch: LaunchConfig{
			V0:     DefaultV0,
			Theta0: DefaultTheta0,
		},
		Drag:    DragConfig{N: 1},
		Gravity: dynamo.DefaultGravity,
		Dt:      dynamo.DefaultDt,
		Display: Display{
			MarkerInterval: DefaultMarkerInterval,
			Width:          DefaultWidth,
			Height:         DefaultHeight,
			PlaybackRate:   DefaultPlaybackRate,
			Layers:         DefaultLayers,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// their values from base. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into run parameters. Range checks are left to
// dynamo.Params.Validate; only the basis name is checked here.
func (c *Config) Params() (dynamo.Params, error) {
	basis, err := dynamo.ParseBasis(c.Basis)
	if err != nil {
		return dynamo.Params{}, err
	}
	return dynamo.Params{
		Y0:       c.Launch.Y0,
		V0:       c.Launch.V0,
		Theta0:   c.Launch.Theta0,
		G:        c.Gravity,
		K:        c.Drag.K,
		N:        c.Drag.N,
		Dt:       c.Dt,
		Basis:    basis,
		MaxSteps: c.MaxSteps,
	}, nil
}

// FromParams is the inverse of Params; display settings are defaulted.
func FromParams(p dynamo.Params) *Config {
	cfg := DefaultConfig()
	cfg.Basis = p.Basis.String()
	cfg.Launch = LaunchConfig{Y0: p.Y0, V0: p.V0, Theta0: p.Theta0}
	cfg.Drag = DragConfig{K: p.K, N: p.N}
	cfg.Gravity = p.G
	cfg.Dt = p.Dt
	cfg.MaxSteps = p.MaxSteps
	return cfg
}
