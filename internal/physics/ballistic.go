package physics

import "math"

// Ballistic is drag-free flight from height Y0, solved in closed form.
type Ballistic struct {
	Y0     float64
	V0     float64
	Theta0 float64 // degrees
	G      float64
}

func (b Ballistic) components() (vx, vy float64) {
	sin, cos := math.Sincos(b.Theta0 * math.Pi / 180)
	if b.Theta0 == 90 {
		cos = 0
	}
	return b.V0 * cos, b.V0 * sin
}

// ApexTime is when vertical velocity reaches zero.
func (b Ballistic) ApexTime() float64 {
	_, vy := b.components()
	return vy / b.G
}

// PeakHeight is the maximum height above the ground.
func (b Ballistic) PeakHeight() float64 {
	_, vy := b.components()
	return b.Y0 + vy*vy/(2*b.G)
}

// FlightTime is the positive root of y0 + vy*t - g*t^2/2 = 0.
func (b Ballistic) FlightTime() float64 {
	_, vy := b.components()
	return (vy + math.Sqrt(vy*vy+2*b.G*b.Y0)) / b.G
}

// Range is the horizontal distance at ground contact.
func (b Ballistic) Range() float64 {
	vx, _ := b.components()
	return vx * b.FlightTime()
}

// At returns the exact position at time t.
func (b Ballistic) At(t float64) (x, y float64) {
	vx, vy := b.components()
	return vx * t, b.Y0 + vy*t - 0.5*b.G*t*t
}
