package physics

import "math"

// Gravity is standard gravitational acceleration at the surface, m/s^2.
const Gravity = 9.81

// Drag returns the resistive force magnitude k*|speed|^n. The sign of speed is
// discarded so a fractional exponent never sees a negative base; callers apply
// the direction opposing motion.
func Drag(k, speed float64, n int) float64 {
	speed = math.Abs(speed)
	switch n {
	case 1:
		return k * speed
	case 2:
		return k * speed * speed
	default:
		return k * math.Pow(speed, float64(n))
	}
}

// OpposingDrag is the tangential drag acceleration for a signed tangential
// velocity v: it always points against v.
func OpposingDrag(k, v float64, n int) float64 {
	f := Drag(k, v, n)
	if v < 0 {
		return f
	}
	return -f
}

// TerminalSpeed is the speed at which drag balances gravity, or +Inf with no drag.
func TerminalSpeed(k, g float64, n int) float64 {
	if k <= 0 {
		return math.Inf(1)
	}
	return math.Pow(g/k, 1/float64(n))
}
