package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/sim"
)

const frameRate = 60

var tunable = []string{"v0", "theta0", "y0", "k", "n", "dt"}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// ReplayOptions configures a Replay.
type ReplayOptions struct {
	Layers         Layers
	MarkerInterval float64
	// Rate is simulated seconds per wall-clock second.
	Rate          float64
	Width, Height int
	// Rerun produces the trajectory for nudged parameters. Nil uses
	// sim.Simulate.
	Rerun func(dynamo.Params) (*dynamo.Trajectory, error)
}

// Replay plays a finished trajectory back in real time. Changing a parameter
// discards the trajectory and runs a fresh simulation from the launch.
type Replay struct {
	params   dynamo.Params
	traj     *dynamo.Trajectory
	scene    *Scene
	canvas   *Canvas
	opts     ReplayOptions
	clock    float64
	playHead int
	running  bool
	selected int
	runs     int
	err      error
	showHelp bool
}

func NewReplay(tr *dynamo.Trajectory, opts ReplayOptions) Replay {
	if opts.Rate <= 0 {
		opts.Rate = 1
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Rerun == nil {
		opts.Rerun = sim.Simulate
	}
	r := Replay{
		opts:    opts,
		canvas:  NewCanvas(opts.Width, opts.Height),
		running: true,
		runs:    1,
	}
	r.load(tr)
	return r
}

func (r *Replay) load(tr *dynamo.Trajectory) {
	r.traj = tr
	r.params = tr.Params()
	r.scene = NewScene(tr, r.opts.Layers, r.opts.MarkerInterval)
	r.clock, r.playHead = 0, 0
}

// Trajectory returns the trajectory currently being played.
func (r Replay) Trajectory() *dynamo.Trajectory { return r.traj }

// PlayHead returns the index of the sample on screen.
func (r Replay) PlayHead() int { return r.playHead }

// Layers returns the overlays currently enabled.
func (r Replay) Layers() Layers { return r.opts.Layers }

// Err returns the error from the last rejected parameter change.
func (r Replay) Err() error { return r.err }

func (r Replay) Init() tea.Cmd {
	return tick()
}

func (r Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.handleKey(msg)
	case tea.WindowSizeMsg:
		w := max(20, msg.Width-50)
		h := max(8, msg.Height-4)
		r.canvas = NewCanvas(w, h)
	case TickMsg:
		if r.running {
			r.advance(r.opts.Rate / frameRate)
		}
		return r, tick()
	}
	return r, nil
}

func (r Replay) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return r, tea.Quit
	case " ":
		if r.atEnd() {
			r.clock, r.playHead = 0, 0
		}
		r.running = !r.running
	case "r":
		r.clock, r.playHead, r.running = 0, 0, true
	case "[":
		r.seek(r.playHead - r.stride())
	case "]":
		r.seek(r.playHead + r.stride())
	case "home":
		r.seek(0)
	case "end":
		r.seek(r.traj.Len() - 1)
	case "+", "=":
		r.opts.Rate = math.Min(r.opts.Rate*2, 64)
	case "-", "_":
		r.opts.Rate = math.Max(r.opts.Rate/2, 1.0/64)
	case "p":
		r.toggle("path")
	case "m":
		r.toggle("markers")
	case "v":
		r.toggle("vectors")
	case "c":
		r.toggle("circles")
	case "tab":
		r.selected = (r.selected + 1) % len(tunable)
	case "shift+tab":
		r.selected = (r.selected + len(tunable) - 1) % len(tunable)
	case "up", "k":
		r.nudge(1)
	case "down", "j":
		r.nudge(-1)
	case "b":
		p := r.params
		if p.Basis == dynamo.Cartesian {
			p.Basis = dynamo.Natural
		} else {
			p.Basis = dynamo.Cartesian
		}
		r.rerun(p)
	case "?":
		r.showHelp = !r.showHelp
	}
	return r, nil
}

func (r *Replay) toggle(name string) {
	// names are fixed above, so Toggle cannot fail
	r.opts.Layers, _ = r.opts.Layers.Toggle(name)
	r.scene.Layers = r.opts.Layers
}

// stride is one marker interval's worth of samples.
func (r *Replay) stride() int {
	return max(1, int(math.Round(r.opts.MarkerInterval/r.params.Dt)))
}

func (r *Replay) atEnd() bool { return r.playHead >= r.traj.Len()-1 }

func (r *Replay) seek(i int) {
	i = max(0, min(r.traj.Len()-1, i))
	r.playHead = i
	r.clock = r.traj.At(i).T
	r.running = false
}

// advance moves the simulated clock forward and stops at the last sample.
func (r *Replay) advance(dt float64) {
	r.clock += dt
	last := r.traj.Len() - 1
	r.playHead = min(last, int(r.clock/r.params.Dt))
	if r.playHead == last {
		r.clock = r.traj.At(last).T
		r.running = false
	}
}

// nudge steps the selected parameter up (dir > 0) or down and reruns.
func (r *Replay) nudge(dir int) {
	name := tunable[r.selected]
	cur, _ := r.params.Get(name)
	up := dir > 0

	var next float64
	switch name {
	case "v0", "y0":
		next = cur + float64(dir)*math.Max(1, math.Round(cur*0.05))
	case "theta0":
		next = cur + float64(dir)
	case "k":
		switch {
		case up && cur == 0:
			next = 0.001
		case up:
			next = cur * 1.25
		case cur < 0.001:
			next = 0
		default:
			next = cur / 1.25
		}
	case "n":
		next = 3 - cur
	case "dt":
		if up {
			next = cur * 2
		} else {
			next = cur / 2
		}
	}

	p, err := r.params.With(name, next)
	if err != nil {
		r.err = err
		return
	}
	r.rerun(p)
}

// rerun validates p and replaces the trajectory with a fresh run. On failure
// the current run stays on screen and the error is shown.
func (r *Replay) rerun(p dynamo.Params) {
	if err := p.Validate(); err != nil {
		r.err = err
		return
	}
	tr, err := r.opts.Rerun(p)
	if err != nil {
		r.err = err
		return
	}
	r.err = nil
	r.runs++
	r.load(tr)
	r.running = true
}

func (r Replay) View() string {
	r.scene.Draw(r.canvas, r.playHead)
	canvasView := lipgloss.NewStyle().Padding(1, 1).Render(PathStyle.Render(r.canvas.String()))

	s := r.traj.At(r.playHead)
	var b strings.Builder
	status := "PLAYING"
	if !r.running {
		status = "PAUSED"
		if r.atEnd() {
			status = "LANDED"
		}
	}
	b.WriteString(Title.Render(fmt.Sprintf("PROJSIM  %s  run %d", strings.ToUpper(r.params.Basis.String()), r.runs)) + "\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("%s  x%.3g", status, r.opts.Rate)) + "\n")
	b.WriteString(ProgressBar(float64(r.playHead)/float64(max(1, r.traj.Len()-1)), 30) + "\n\n")

	b.WriteString(row("t", fmt.Sprintf("%.2f s", s.T)))
	b.WriteString(row("x, y", fmt.Sprintf("%.1f, %.1f m", s.X, s.Y)))
	b.WriteString(row("V", fmt.Sprintf("%.2f m/s", s.V)))
	b.WriteString(row("Vx, Vy", fmt.Sprintf("%.2f, %.2f", s.Vx, s.Vy)))
	b.WriteString(row("heading", fmt.Sprintf("%.2f°", s.Theta*180/math.Pi)))
	b.WriteString(row("A par, perp", fmt.Sprintf("%.2f, %.2f", s.APar, s.APerp)))
	if s.Circle != nil {
		b.WriteString(row("radius", fmt.Sprintf("%.1f m", s.Circle.R)))
	}

	b.WriteString("\n" + Title.Render("PARAMETERS") + "\n")
	for i, name := range tunable {
		v, _ := r.params.Get(name)
		line := fmt.Sprintf("%-8s %g", name, v)
		if i == r.selected {
			b.WriteString(Active.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + Subtle.Render(line) + "\n")
		}
	}
	if r.err != nil {
		b.WriteString(Warning.Render("rejected: "+r.err.Error()) + "\n")
	}

	if landing, ok := analysis.Landing(r.traj); ok && r.atEnd() {
		b.WriteString("\n" + row("landing", fmt.Sprintf("x=%.2f m t=%.3f s", landing.X, landing.T)))
	}

	b.WriteString("\n" + Subtle.Render("layers: "+r.opts.Layers.String()) + "\n")
	b.WriteString(KeyHint.Render("space pause  [ ] seek  tab/↑↓ tune  b basis\np m v c layers  +/- speed  ? help  q quit"))

	side := Panel.Render(b.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, side)
	if r.showHelp {
		return Panel.Render(helpText) + "\n" + body
	}
	return body
}

const helpText = `space      pause / resume (restarts when landed)
r          restart playback
[ ]        step back / forward one marker interval
home end   jump to launch / landing
+ -        double / halve playback speed
tab        select parameter
up down    change parameter and rerun from launch
b          switch coordinate basis and rerun
p m v c    toggle path, markers, vectors, circles
q          quit`
