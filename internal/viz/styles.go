package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(16)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Active = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffaa00")).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	PathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

func row(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value) + "\n"
}

// ParamsBlock lists the launch parameters.
func ParamsBlock(p dynamo.Params) string {
	var b strings.Builder
	b.WriteString(row("basis", p.Basis.String()))
	b.WriteString(row("y0", fmt.Sprintf("%.2f m", p.Y0)))
	b.WriteString(row("v0", fmt.Sprintf("%.2f m/s", p.V0)))
	b.WriteString(row("theta0", fmt.Sprintf("%.2f°", p.Theta0)))
	b.WriteString(row("drag", fmt.Sprintf("k=%g n=%d", p.K, p.N)))
	b.WriteString(row("g, dt", fmt.Sprintf("%g m/s², %g s", p.G, p.Dt)))
	return b.String()
}

// SummaryBlock lists the headline numbers of a run.
func SummaryBlock(s analysis.Summary) string {
	var b strings.Builder
	b.WriteString(row("samples", fmt.Sprintf("%d", s.Samples)))
	b.WriteString(row("peak height", fmt.Sprintf("%.2f m at t=%.2f s", s.PeakHeight, s.ApexTime)))
	b.WriteString(row("last sample", fmt.Sprintf("x=%.2f m at t=%.2f s", s.Range, s.FlightTime)))
	if s.Landed {
		b.WriteString(row("landing", fmt.Sprintf("x=%.2f m at t=%.3f s", s.LandingX, s.LandingT)))
		b.WriteString(row("impact", fmt.Sprintf("%.2f m/s, %.1f° down", s.ImpactSpeed, s.ImpactAngle)))
	}
	b.WriteString(row("max speed", fmt.Sprintf("%.2f m/s", s.MaxSpeed)))
	b.WriteString(row("energy drift", fmt.Sprintf("%.3g%%", 100*s.EnergyDrift)))
	if !math.IsInf(s.MinRadius, 1) {
		b.WriteString(row("min radius", fmt.Sprintf("%.2f m", s.MinRadius)))
	}
	if !math.IsInf(s.TerminalSpeed, 1) {
		b.WriteString(row("terminal speed", fmt.Sprintf("%.2f m/s", s.TerminalSpeed)))
	}
	b.WriteString(row("vs no drag", fmt.Sprintf("%.3f m", s.VacuumDeviation)))
	return b.String()
}

// MetricsBlock lists metric values sorted by name.
func MetricsBlock(metrics map[string]float64) string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(row(name, fmt.Sprintf("%.6g", metrics[name])))
	}
	return b.String()
}

// SummaryPanel renders the launch and its results in a bordered panel.
func SummaryPanel(tr *dynamo.Trajectory) string {
	if tr == nil || tr.Len() == 0 {
		return Panel.Render(Subtle.Render("no samples"))
	}
	body := Title.Render("LAUNCH") + "\n" + ParamsBlock(tr.Params()) +
		"\n" + Title.Render("FLIGHT") + "\n" + SummaryBlock(analysis.Summarize(tr))
	return Panel.Render(strings.TrimRight(body, "\n"))
}

// ComparisonPanel renders two runs of one launch side by side.
func ComparisonPanel(a, b *dynamo.Trajectory) string {
	c := analysis.Compare(a, b)
	left := SummaryPanel(a)
	right := SummaryPanel(b)
	diff := Title.Render("DIFFERENCE") + "\n" +
		row("max deviation", fmt.Sprintf("%.4f m (sample %d)", c.Deviation, c.WorstIndex)) +
		row("peak", fmt.Sprintf("%+.4f m", c.PeakDelta)) +
		row("landing x", fmt.Sprintf("%+.4f m", c.RangeDelta)) +
		row("landing t", fmt.Sprintf("%+.4f s", c.TimeDelta)) +
		row("samples", fmt.Sprintf("%+d", c.LenDelta))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		Panel.Render(strings.TrimRight(diff, "\n")),
	)
}

// ProgressBar renders playback progress.
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(width, filled))
	return PathStyle.Render(strings.Repeat("█", filled)) + Subtle.Render(strings.Repeat("░", width-filled))
}
