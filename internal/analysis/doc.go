// Package analysis derives quantities from finished trajectories.
//
//   - [Apex]: the highest sample of a run
//   - [Landing]: the ground crossing, interpolated between the last two samples
//   - [Deviation]: largest position gap between two runs of the same launch
//   - [Markers]: sample indices at a fixed time interval
//   - [Summarize]: the headline numbers of a run
//   - [Portrait]: any two sample fields against each other, e.g. the hodograph
//
// The simulator keeps the sample that first goes below ground. Callers that
// want the ground-crossing point rather than the last sample use Landing:
//
//	landing, ok := analysis.Landing(traj)
//	if ok {
//	    fmt.Printf("range %.1f m at t=%.3f s\n", landing.X, landing.T)
//	}
package analysis
