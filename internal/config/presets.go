package config

import "sort"

var Presets = map[string]*Config{
	"example": {
		Basis:  "cartesian",
		Launch: LaunchConfig{Y0: 0, V0: 150, Theta0: 80},
		Drag:   DragConfig{K: 0, N: 1},
	},
	"vertical": {
		Basis:  "natural",
		Launch: LaunchConfig{Y0: 0, V0: 50, Theta0: 90},
		Drag:   DragConfig{K: 0.01, N: 1},
	},
	"cliff": {
		Basis:  "cartesian",
		Launch: LaunchConfig{Y0: 100, V0: 40, Theta0: 20},
		Drag:   DragConfig{K: 0.001, N: 2},
	},
	"linear_drag": {
		Basis:  "natural",
		Launch: LaunchConfig{Y0: 0, V0: 50, Theta0: 45},
		Drag:   DragConfig{K: 0.02, N: 1},
	},
	"quadratic_drag": {
		Basis:  "natural",
		Launch: LaunchConfig{Y0: 0, V0: 100, Theta0: 60},
		Drag:   DragConfig{K: 0.0005, N: 2},
	},
	"flat": {
		Basis:  "cartesian",
		Launch: LaunchConfig{Y0: 20, V0: 80, Theta0: 0},
		Drag:   DragConfig{K: 0.001, N: 2},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in for
// the fields it leaves unset, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Basis = p.Basis
	cfg.Launch = p.Launch
	cfg.Drag = p.Drag
	if p.Gravity > 0 {
		cfg.Gravity = p.Gravity
	}
	if p.Dt > 0 {
		cfg.Dt = p.Dt
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
