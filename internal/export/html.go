package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
)

// maxChartPoints bounds the points per series handed to the browser.
const maxChartPoints = 2000

func pairs(tr *dynamo.Trajectory, fx, fy analysis.Field) []opts.LineData {
	stride := max(1, tr.Len()/maxChartPoints)
	out := make([]opts.LineData, 0, tr.Len()/stride+1)
	for i := 0; i < tr.Len(); i += stride {
		s := tr.At(i)
		out = append(out, opts.LineData{Value: []interface{}{fx(s), fy(s)}})
	}
	if (tr.Len()-1)%stride != 0 {
		s := tr.Last()
		out = append(out, opts.LineData{Value: []interface{}{fx(s), fy(s)}})
	}
	return out
}

func newChart(title, xName, yName string, o Options) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "projsim",
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
	)
	return line
}

func seriesName(tr *dynamo.Trajectory) string {
	p := tr.Params()
	return fmt.Sprintf("%s v0=%g θ=%g k=%g n=%d", p.Basis, p.V0, p.Theta0, p.K, p.N)
}

// WriteHTML renders an interactive page with the flight path, speed and
// heading of each trajectory.
func WriteHTML(w io.Writer, o Options, trs ...*dynamo.Trajectory) error {
	if len(trs) == 0 {
		return fmt.Errorf("export: no trajectories")
	}
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = 800, 500
	}

	path := newChart("Flight path", "x (m)", "y (m)", o)
	speed := newChart("Speed", "t (s)", "|v| (m/s)", o)
	heading := newChart("Heading", "t (s)", "θ (rad)", o)

	for _, tr := range trs {
		if tr == nil || tr.Len() == 0 {
			return fmt.Errorf("export: empty trajectory")
		}
		name := seriesName(tr)
		path.AddSeries(name, pairs(tr, analysis.FieldX, analysis.FieldY))
		speed.AddSeries(name, pairs(tr, analysis.FieldT, dynamo.Sample.Speed))
		heading.AddSeries(name, pairs(tr, analysis.FieldT, analysis.FieldTheta))
	}

	page := components.NewPage()
	page.PageTitle = "projsim"
	page.AddCharts(path, speed, heading)
	return page.Render(w)
}
