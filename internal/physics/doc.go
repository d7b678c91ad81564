// Package physics holds the force laws shared by every formulation of the
// projectile equations of motion:
//
//   - [Drag]: speed-dependent resistive force magnitude k*|v|^n
//   - [Ballistic]: closed-form drag-free reference flight
//
// # Reference values
//
// [Ballistic] is the ground truth the zero-drag integrations must approach:
//
//	ref := physics.Ballistic{V0: 150, Theta0: 80, G: physics.Gravity}
//	ref.PeakHeight() // ~1112 m
//	ref.Range()      // ~784 m
package physics
