package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
)

// Scene draws a trajectory, or a prefix of it, onto a braille canvas.
type Scene struct {
	Trajectory *dynamo.Trajectory
	Layers     Layers
	// MarkerInterval is the spacing of key-point markers in seconds.
	MarkerInterval float64

	markers []int
	min     mgl64.Vec2
	max     mgl64.Vec2
	vScale  float64 // metres drawn per m/s
	aScale  float64 // metres drawn per m/s^2
}

func NewScene(tr *dynamo.Trajectory, layers Layers, markerInterval float64) *Scene {
	s := &Scene{Trajectory: tr, Layers: layers, MarkerInterval: markerInterval}
	s.markers = analysis.Markers(tr, markerInterval)
	s.bounds()
	return s
}

// bounds covers every sample and the ground line, and sizes the vector
// overlays to a tenth of the larger extent.
func (s *Scene) bounds() {
	tr := s.Trajectory
	if tr == nil || tr.Len() == 0 {
		s.max = mgl64.Vec2{1, 1}
		return
	}
	s.min = mgl64.Vec2{math.Inf(1), 0}
	s.max = mgl64.Vec2{math.Inf(-1), 0}
	maxSpeed, maxAccel := 0.0, 0.0
	for i := 0; i < tr.Len(); i++ {
		sm := tr.At(i)
		s.min = mgl64.Vec2{math.Min(s.min[0], sm.X), math.Min(s.min[1], sm.Y)}
		s.max = mgl64.Vec2{math.Max(s.max[0], sm.X), math.Max(s.max[1], sm.Y)}
		maxSpeed = math.Max(maxSpeed, sm.Speed())
		maxAccel = math.Max(maxAccel, sm.Acceleration().Len())
	}
	if s.max[0]-s.min[0] < 1 {
		s.min[0] -= 0.5
		s.max[0] += 0.5
	}
	span := s.max.Sub(s.min)
	extent := math.Max(span[0], span[1]) / 10
	if maxSpeed > 0 {
		s.vScale = extent / maxSpeed
	}
	if maxAccel > 0 {
		s.aScale = extent / maxAccel
	}
}

// Markers returns the indices of the key-point samples.
func (s *Scene) Markers() []int { return s.markers }

// VectorScales returns the metres drawn per unit of velocity and acceleration.
func (s *Scene) VectorScales() (velocity, accel float64) { return s.vScale, s.aScale }

// Bounds returns the world rectangle the scene occupies.
func (s *Scene) Bounds() (min, max mgl64.Vec2) { return s.min, s.max }

// Draw renders samples 0..upto. A negative upto draws everything.
func (s *Scene) Draw(c *Canvas, upto int) *Viewport {
	c.Clear()
	vp := Fit(c, s.min, s.max)
	tr := s.Trajectory
	if tr == nil || tr.Len() == 0 {
		return vp
	}
	if upto < 0 || upto >= tr.Len() {
		upto = tr.Len() - 1
	}

	gx0, gy := vp.Project(mgl64.Vec2{s.min[0], 0})
	gx1, _ := vp.Project(mgl64.Vec2{s.max[0], 0})
	for x := gx0; x <= gx1; x += 2 {
		c.Set(x, gy)
	}

	if s.Layers.Path {
		px, py := vp.Project(tr.At(0).Position())
		for i := 1; i <= upto; i++ {
			x, y := vp.Project(tr.At(i).Position())
			c.DrawLine(px, py, x, y)
			px, py = x, y
		}
	}

	for _, i := range s.markers {
		if i > upto {
			break
		}
		if s.Layers.Markers {
			x, y := vp.Project(tr.At(i).Position())
			c.DrawCross(x, y, 2)
		}
		if s.Layers.Vectors {
			s.drawVectors(c, vp, tr.At(i))
		}
	}

	current := tr.At(upto)
	if s.Layers.Vectors {
		s.drawVectors(c, vp, current)
	}
	if s.Layers.Circles && current.Circle != nil {
		cx, cy := vp.Project(mgl64.Vec2{current.Circle.Cx, current.Circle.Cy})
		r := current.Circle.R * vp.Scale()
		w, h := c.Dots()
		if r < float64(4*max(w, h)) {
			c.DrawCircle(cx, cy, int(math.Round(r)))
		}
	}
	if !s.Layers.Path {
		x, y := vp.Project(current.Position())
		c.DrawCross(x, y, 1)
	}
	return vp
}

func (s *Scene) drawVectors(c *Canvas, vp *Viewport, sm dynamo.Sample) {
	from := sm.Position()
	x0, y0 := vp.Project(from)
	if s.vScale > 0 {
		x1, y1 := vp.Project(from.Add(sm.Velocity().Mul(s.vScale)))
		c.DrawLine(x0, y0, x1, y1)
	}
	if s.aScale > 0 {
		x1, y1 := vp.Project(from.Add(sm.Acceleration().Mul(s.aScale)))
		c.DrawLine(x0, y0, x1, y1)
	}
}
