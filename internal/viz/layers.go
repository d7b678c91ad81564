package viz

import (
	"fmt"
	"strings"
)

// Layers selects which overlays are drawn. It is passed to renderers by value.
type Layers struct {
	Path    bool
	Markers bool
	Vectors bool
	Circles bool
}

// DefaultLayers shows the path and markers only.
func DefaultLayers() Layers {
	return Layers{Path: true, Markers: true}
}

func (l *Layers) field(name string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "path":
		return &l.Path, nil
	case "markers":
		return &l.Markers, nil
	case "vectors":
		return &l.Vectors, nil
	case "circles":
		return &l.Circles, nil
	}
	return nil, fmt.Errorf("unknown layer: %s", name)
}

// Toggle flips a layer by name.
func (l Layers) Toggle(name string) (Layers, error) {
	f, err := l.field(name)
	if err != nil {
		return l, err
	}
	*f = !*f
	return l, nil
}

// ParseLayers enables the layers in a comma separated list such as
// "path,vectors". "all" and "none" are accepted.
func ParseLayers(list string) (Layers, error) {
	switch strings.TrimSpace(list) {
	case "all":
		return Layers{Path: true, Markers: true, Vectors: true, Circles: true}, nil
	case "none", "":
		return Layers{}, nil
	}
	var l Layers
	for _, name := range strings.Split(list, ",") {
		f, err := l.field(name)
		if err != nil {
			return Layers{}, err
		}
		*f = true
	}
	return l, nil
}

func (l Layers) String() string {
	var on []string
	for _, layer := range []struct {
		name string
		on   bool
	}{{"path", l.Path}, {"markers", l.Markers}, {"vectors", l.Vectors}, {"circles", l.Circles}} {
		if layer.on {
			on = append(on, layer.name)
		}
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ",")
}
