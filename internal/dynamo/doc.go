// Package dynamo provides the core primitives of a projectile flight run.
//
// The package defines the data that flows between the integrators and the
// presentation layers:
//
//   - [Params]: immutable launch and integration settings
//   - [Sample]: one integration step, carrying both coordinate bases
//   - [Trajectory]: append-only, ordered sequence of samples
//   - [Stepper]: one formulation of the equations of motion
//   - [GroundContact]: Flying/Landed termination policy
//
// # Example
//
//	p := dynamo.DefaultParams()
//	p.V0, p.Theta0 = 150, 80
//	traj, err := sim.Simulate(p)
//
// # Thread Safety
//
// A Trajectory is owned by the run that produced it. Once returned it is never
// mutated, so any number of readers may share it. Steppers are stateless.
package dynamo
