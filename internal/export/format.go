package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/viz"
)

// Format is an output encoding for a trajectory.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	SVG  Format = "svg"
	HTML Format = "html"
)

var Formats = []Format{CSV, JSON, SVG, HTML}

func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	if f == "htm" {
		return HTML, nil
	}
	return "", fmt.Errorf("unknown export format: %s", name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return ParseFormat(ext)
}

// Options tune the drawn formats; CSV and JSON ignore them.
type Options struct {
	Layers         viz.Layers
	MarkerInterval float64 // seconds
	Width, Height  int
	Metrics        map[string]float64
}

func DefaultOptions() Options {
	return Options{
		Layers:         viz.DefaultLayers(),
		MarkerInterval: 1.5,
		Width:          800,
		Height:         500,
	}
}

// Write encodes tr to w.
func Write(w io.Writer, f Format, tr *dynamo.Trajectory, opts Options) error {
	if tr == nil || tr.Len() == 0 {
		return fmt.Errorf("export: empty trajectory")
	}
	switch f {
	case CSV:
		return WriteCSV(w, tr)
	case JSON:
		return WriteJSON(w, tr, opts.Metrics)
	case SVG:
		return WriteSVG(w, tr, opts)
	case HTML:
		return WriteHTML(w, opts, tr)
	}
	return fmt.Errorf("unknown export format: %s", f)
}

// WriteFile writes tr to path in the format named by its extension, with
// default options.
func WriteFile(path string, tr *dynamo.Trajectory) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFileWith(path, f, tr, DefaultOptions())
}

func WriteFileWith(path string, f Format, tr *dynamo.Trajectory, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, f, tr, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
