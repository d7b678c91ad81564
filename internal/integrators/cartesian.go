package integrators

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/physics"
)

// Cartesian advances position and velocity on fixed x/y axes using the
// acceleration evaluated at the start of each step.
type Cartesian struct{}

func NewCartesian() *Cartesian {
	return &Cartesian{}
}

func (c *Cartesian) Launch(p dynamo.Params) dynamo.Sample {
	sin, cos := math.Sincos(p.Theta0Rad())
	vx, vy := p.V0*cos, p.V0*sin
	if p.Theta0 == 90 {
		vx = 0
	}
	ax, ay, theta := c.acceleration(p, vx, vy)
	return dynamo.FromCartesian(0, 0, p.Y0, vx, vy, ax, ay, theta)
}

func (c *Cartesian) Advance(p dynamo.Params, s dynamo.Sample) dynamo.Sample {
	dt := p.Dt
	halfDt2 := 0.5 * dt * dt

	y := s.Y + s.Vy*dt + s.Ay*halfDt2
	x := s.X + s.Vx*dt + s.Ax*halfDt2

	vy := s.Vy + s.Ay*dt
	vx := s.Vx + s.Ax*dt

	ax, ay, theta := c.acceleration(p, vx, vy)
	return dynamo.FromCartesian(s.T+dt, x, y, vx, vy, ax, ay, theta)
}

// acceleration applies drag against the velocity direction plus gravity.
func (c *Cartesian) acceleration(p dynamo.Params, vx, vy float64) (ax, ay, theta float64) {
	f := physics.Drag(p.K, math.Hypot(vx, vy), p.N)
	theta, sin, cos := heading(vx, vy)
	return -f * cos, -f*sin - p.G, theta
}

// heading returns the direction of (vx, vy). With a near-zero horizontal
// component the direction is snapped to straight up or down, with exact unit
// components so vertical flight never leaks into x.
func heading(vx, vy float64) (theta, sin, cos float64) {
	if math.Abs(vx) < dynamo.DegenerateEpsilon {
		if vy > 0 {
			return math.Pi / 2, 1, 0
		}
		return -math.Pi / 2, -1, 0
	}
	theta = math.Atan2(vy, vx)
	sin, cos = math.Sincos(theta)
	return theta, sin, cos
}
