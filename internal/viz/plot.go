package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
)

// Series names accepted by Plot, in display order.
var SeriesNames = []string{"y", "x", "v", "vx", "vy", "theta", "apar", "aperp"}

var seriesUnits = map[string]string{
	"y": "m", "x": "m", "v": "m/s", "vx": "m/s", "vy": "m/s",
	"theta": "rad", "apar": "m/s^2", "aperp": "m/s^2",
}

// downsample keeps at most n evenly spaced values so asciigraph does not
// interpolate tens of thousands of points into a narrow chart.
func downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}

// Plot charts one named sample field against time.
func Plot(tr *dynamo.Trajectory, name string, width, height int) (string, error) {
	field, ok := analysis.Fields[name]
	if !ok {
		return "", fmt.Errorf("unknown series: %s", name)
	}
	if tr == nil || tr.Len() < 2 {
		return "", fmt.Errorf("nothing to plot")
	}
	caption := fmt.Sprintf("%s (%s) over %.2f s", name, seriesUnits[name], tr.Duration())
	return asciigraph.Plot(downsample(tr.Series(field), width),
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	), nil
}

// PlotSpeeds charts speed with its horizontal and vertical components.
func PlotSpeeds(tr *dynamo.Trajectory, width, height int) string {
	if tr == nil || tr.Len() < 2 {
		return ""
	}
	return asciigraph.PlotMany([][]float64{
		downsample(tr.Series(dynamo.Sample.Speed), width),
		downsample(tr.Series(analysis.FieldVx), width),
		downsample(tr.Series(analysis.FieldVy), width),
	},
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.SeriesColors(asciigraph.White, asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption("speed (white), vx (cyan), vy (magenta) in m/s"),
	)
}

// PlotHeights overlays the height of several runs against sample index.
func PlotHeights(trs []*dynamo.Trajectory, width, height int) string {
	colors := []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Yellow, asciigraph.Blue, asciigraph.Red}
	data := make([][]float64, 0, len(trs))
	used := make([]asciigraph.AnsiColor, 0, len(trs))
	for i, tr := range trs {
		if tr == nil || tr.Len() < 2 {
			continue
		}
		data = append(data, downsample(tr.Ys(), width))
		used = append(used, colors[i%len(colors)])
	}
	if len(data) == 0 {
		return ""
	}
	return asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.SeriesColors(used...),
		asciigraph.Caption("height (m)"),
	)
}
