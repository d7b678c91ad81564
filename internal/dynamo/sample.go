package dynamo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is the osculating circle at a sample.
type Circle struct {
	R  float64
	Cx float64
	Cy float64
}

// Sample is the state after one integration step. Both velocity bases and both
// acceleration bases are populated regardless of the formulation that produced
// it. V is the signed tangential velocity along Theta.
type Sample struct {
	T     float64
	X, Y  float64
	Vx    float64
	Vy    float64
	V     float64
	Theta float64
	Ax    float64
	Ay    float64
	APar  float64
	APerp float64

	// Circle is set only by the natural formulation.
	Circle *Circle
}

// FromCartesian completes a sample given Cartesian velocity and acceleration.
func FromCartesian(t, x, y, vx, vy, ax, ay, theta float64) Sample {
	sin, cos := math.Sincos(theta)
	return Sample{
		T: t, X: x, Y: y,
		Vx: vx, Vy: vy,
		V:     math.Hypot(vx, vy),
		Theta: theta,
		Ax:    ax, Ay: ay,
		APar:  ax*cos + ay*sin,
		APerp: -ax*sin + ay*cos,
	}
}

// FromNatural completes a sample given tangential velocity and intrinsic
// accelerations. sin and cos are passed in so vertical flight can supply
// exact unit components.
func FromNatural(t, x, y, v, theta, sin, cos, apar, aperp float64, c *Circle) Sample {
	return Sample{
		T: t, X: x, Y: y,
		Vx: v * cos, Vy: v * sin,
		V:      v,
		Theta:  theta,
		Ax:     apar*cos - aperp*sin,
		Ay:     apar*sin + aperp*cos,
		APar:   apar,
		APerp:  aperp,
		Circle: c,
	}
}

func (s Sample) Position() mgl64.Vec2     { return mgl64.Vec2{s.X, s.Y} }
func (s Sample) Velocity() mgl64.Vec2     { return mgl64.Vec2{s.Vx, s.Vy} }
func (s Sample) Acceleration() mgl64.Vec2 { return mgl64.Vec2{s.Ax, s.Ay} }

// Speed is the magnitude of the velocity.
func (s Sample) Speed() float64 {
	return math.Abs(s.V)
}

// Energy is the specific mechanical energy 0.5*v^2 + g*y.
func (s Sample) Energy(g float64) float64 {
	return 0.5*(s.Vx*s.Vx+s.Vy*s.Vy) + g*s.Y
}

// IsValid reports whether every field is finite.
func (s Sample) IsValid() bool {
	vals := [...]float64{s.T, s.X, s.Y, s.Vx, s.Vy, s.V, s.Theta, s.Ax, s.Ay, s.APar, s.APerp}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if s.Circle != nil {
		for _, v := range [...]float64{s.Circle.R, s.Circle.Cx, s.Circle.Cy} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
