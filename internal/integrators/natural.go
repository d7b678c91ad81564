package integrators

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/physics"
)

// Natural advances speed and heading, splitting acceleration into a component
// along the velocity and one normal to it. The normal component fixes the
// local radius of curvature, which is reported as the osculating circle.
type Natural struct{}

func NewNatural() *Natural {
	return &Natural{}
}

func (n *Natural) Launch(p dynamo.Params) dynamo.Sample {
	v := p.V0
	theta := p.Theta0Rad()
	if p.V0 == 0 {
		// No speed, no heading: gravity pulls the projectile straight down.
		theta = -math.Pi / 2
	}
	sin, cos := direction(p, theta)

	apar := physics.OpposingDrag(p.K, v, p.N) - p.G*sin
	aperp := normalAccel(p, cos)

	r := v * v / (math.Abs(aperp) + dynamo.DegenerateEpsilon)
	c := &dynamo.Circle{R: r, Cx: r * sin, Cy: p.Y0 - r*cos}
	return dynamo.FromNatural(0, 0, p.Y0, v, theta, sin, cos, apar, aperp, c)
}

func (n *Natural) Advance(p dynamo.Params, s dynamo.Sample) dynamo.Sample {
	dt := p.Dt
	sin, cos := direction(p, s.Theta)

	// Tangential acceleration changes speed only.
	v := s.V + s.APar*dt
	apar := physics.OpposingDrag(p.K, v, p.N) - p.G*sin
	aperp := normalAccel(p, cos)

	ds := s.V*dt + 0.5*s.APar*dt*dt

	r := v * v / (math.Abs(aperp) + dynamo.DegenerateEpsilon)
	c := &dynamo.Circle{R: r, Cx: s.X + r*sin, Cy: s.Y - r*cos}

	theta := s.Theta
	if !p.Vertical() && r > dynamo.DegenerateEpsilon {
		theta -= ds / r
	}

	nsin, ncos := direction(p, theta)
	x := s.X + ds*ncos
	y := s.Y + ds*nsin
	return dynamo.FromNatural(s.T+dt, x, y, v, theta, nsin, ncos, apar, aperp, c)
}

// normalAccel is gravity's component along the left normal; zero for
// straight vertical flight, which has no curvature.
func normalAccel(p dynamo.Params, cos float64) float64 {
	if p.Vertical() {
		return 0
	}
	return -p.G * cos
}

// direction returns exact unit components for vertical flight.
func direction(p dynamo.Params, theta float64) (sin, cos float64) {
	if p.Vertical() {
		if theta > 0 {
			return 1, 0
		}
		return -1, 0
	}
	return math.Sincos(theta)
}
