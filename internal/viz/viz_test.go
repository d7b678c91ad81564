package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/sim"
)

func mustRun(t *testing.T, p dynamo.Params) *dynamo.Trajectory {
	t.Helper()
	tr, err := sim.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func launch(basis dynamo.Basis) dynamo.Params {
	p := dynamo.DefaultParams()
	p.V0, p.Theta0, p.Basis = 40, 50, basis
	return p
}

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(7, 7)
	c.Set(-1, 3)
	c.Set(8, 0)

	if !c.IsSet(0, 0) || !c.IsSet(7, 7) {
		t.Error("dots not set")
	}
	if c.Grid[0][0] != 0x2801 || c.Grid[1][3] != 0x2880 {
		t.Errorf("unexpected cells %U %U", c.Grid[0][0], c.Grid[1][3])
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("clear left a dot")
	}
	if lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 10)
	for _, p := range [][2]int{{30, 20}, {10, 20}, {20, 30}, {20, 10}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("circle misses (%d, %d)", p[0], p[1])
		}
	}
	if c.IsSet(20, 20) {
		t.Error("circle filled its centre")
	}
}

func TestViewportKeepsAspect(t *testing.T) {
	c := NewCanvas(50, 10) // 100 x 40 dots
	vp := Fit(c, mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10})

	x0, y0 := vp.Project(mgl64.Vec2{0, 0})
	x1, y1 := vp.Project(mgl64.Vec2{10, 10})
	if x1-x0 != y0-y1 {
		t.Errorf("unequal scales: dx=%d dy=%d", x1-x0, y0-y1)
	}
	if y1 >= y0 {
		t.Error("y should grow upwards in the world")
	}
}

func TestLayers(t *testing.T) {
	l, err := DefaultLayers().Toggle("vectors")
	if err != nil || !l.Vectors || !l.Path {
		t.Errorf("toggle: %+v, %v", l, err)
	}
	if _, err := l.Toggle("labels"); err == nil {
		t.Error("expected error for unknown layer")
	}

	l, err = ParseLayers("path, circles")
	if err != nil || !l.Path || !l.Circles || l.Markers {
		t.Errorf("parse: %+v, %v", l, err)
	}
	if l.String() != "path,circles" {
		t.Errorf("string %q", l.String())
	}
	if all, _ := ParseLayers("all"); all.String() != "path,markers,vectors,circles" {
		t.Errorf("all = %s", all)
	}
}

func TestSceneLayersChangeOutput(t *testing.T) {
	tr := mustRun(t, launch(dynamo.Natural))
	c := NewCanvas(60, 20)

	bare := NewScene(tr, Layers{Path: true}, 1)
	bare.Draw(c, -1)
	plain := c.String()

	full := NewScene(tr, Layers{Path: true, Markers: true, Vectors: true, Circles: true}, 1)
	full.Draw(c, -1)
	if c.String() == plain {
		t.Error("overlays did not change the drawing")
	}
	if len(full.Markers()) != int(tr.Duration())+1 {
		t.Errorf("expected a marker per second, got %d", len(full.Markers()))
	}

	// a prefix draws less than the full path
	bare.Draw(c, 10)
	if c.String() == plain {
		t.Error("prefix drawing matches full drawing")
	}
}

func TestPlot(t *testing.T) {
	tr := mustRun(t, launch(dynamo.Cartesian))
	out, err := Plot(tr, "y", 40, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "y (m)") {
		t.Errorf("caption missing:\n%s", out)
	}
	if _, err := Plot(tr, "jerk", 40, 8); err == nil {
		t.Error("expected error for unknown series")
	}
	if PlotSpeeds(tr, 40, 8) == "" {
		t.Error("empty speed plot")
	}
	if PlotHeights([]*dynamo.Trajectory{tr, tr}, 40, 8) == "" {
		t.Error("empty height plot")
	}
}

func TestDownsample(t *testing.T) {
	in := make([]float64, 1001)
	for i := range in {
		in[i] = float64(i)
	}
	out := downsample(in, 11)
	if len(out) != 11 || out[0] != 0 || out[10] != 1000 || out[5] != 500 {
		t.Errorf("downsample %v", out)
	}
}

func TestSummaryPanel(t *testing.T) {
	tr := mustRun(t, launch(dynamo.Natural))
	out := SummaryPanel(tr)
	for _, want := range []string{"LAUNCH", "natural", "peak height", "landing", "min radius"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q", want)
		}
	}

	cmp := ComparisonPanel(mustRun(t, launch(dynamo.Cartesian)), tr)
	if !strings.Contains(cmp, "max deviation") {
		t.Error("comparison panel missing deviation")
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(r Replay, msgs ...tea.Msg) Replay {
	for _, msg := range msgs {
		m, _ := r.Update(msg)
		r = m.(Replay)
	}
	return r
}

func TestReplayPlaysToLanding(t *testing.T) {
	tr := mustRun(t, launch(dynamo.Cartesian))
	r := NewReplay(tr, ReplayOptions{Layers: DefaultLayers(), MarkerInterval: 1, Rate: 1})

	for i := 0; i < frameRate; i++ {
		r = send(r, TickMsg{})
	}
	if h := r.PlayHead(); h < 98 || h > 100 {
		t.Errorf("after one second play head at %d, want about 100", h)
	}

	r = send(r, key("+"), key("+"), key("+"), key("+"), key("+"), key("+"))
	for i := 0; i < 10*frameRate; i++ {
		r = send(r, TickMsg{})
	}
	if r.PlayHead() != tr.Len()-1 {
		t.Errorf("play head %d, want last sample %d", r.PlayHead(), tr.Len()-1)
	}
	if !strings.Contains(r.View(), "LANDED") {
		t.Error("view does not report landing")
	}
}

func TestReplayToggleLayers(t *testing.T) {
	r := NewReplay(mustRun(t, launch(dynamo.Natural)), ReplayOptions{Layers: DefaultLayers()})
	r = send(r, key("v"), key("c"), key("m"))
	l := r.Layers()
	if !l.Vectors || !l.Circles || l.Markers || !l.Path {
		t.Errorf("layers %+v", l)
	}
}

func TestReplayNudgeReruns(t *testing.T) {
	var seen []dynamo.Params
	rerun := func(p dynamo.Params) (*dynamo.Trajectory, error) {
		seen = append(seen, p)
		return sim.Simulate(p)
	}
	first := mustRun(t, launch(dynamo.Cartesian))
	r := NewReplay(first, ReplayOptions{Rerun: rerun})
	r = send(r, TickMsg{}, TickMsg{})

	r = send(r, key("up")) // v0
	if len(seen) != 1 || seen[0].V0 != 42 {
		t.Fatalf("rerun params %+v", seen)
	}
	if r.Trajectory() == first || r.PlayHead() != 0 {
		t.Error("nudge did not start a fresh run")
	}

	r = send(r, key("b"))
	if r.Trajectory().Params().Basis != dynamo.Natural {
		t.Error("basis switch did not rerun in the natural basis")
	}
}

func TestReplayRejectsInvalidNudge(t *testing.T) {
	p := launch(dynamo.Cartesian)
	p.Theta0 = 90
	tr := mustRun(t, p)

	calls := 0
	r := NewReplay(tr, ReplayOptions{Rerun: func(p dynamo.Params) (*dynamo.Trajectory, error) {
		calls++
		return nil, errors.New("unexpected")
	}})
	r = send(r, key("tab"), key("up")) // theta0 to 91

	if calls != 0 {
		t.Error("invalid parameters reached the simulator")
	}
	if !errors.Is(r.Err(), dynamo.ErrInvalidAngle) {
		t.Errorf("expected invalid angle, got %v", r.Err())
	}
	if r.Trajectory() != tr {
		t.Error("trajectory replaced after a rejected change")
	}
	if !strings.Contains(r.View(), "rejected") {
		t.Error("view does not show the rejection")
	}
}
