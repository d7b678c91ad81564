package analysis

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
)

// Apex returns the index and value of the sample with the greatest height.
// Ties keep the earliest sample.
func Apex(tr *dynamo.Trajectory) (int, dynamo.Sample) {
	if tr == nil || tr.Len() == 0 {
		return -1, dynamo.Sample{}
	}
	best := 0
	for i := 1; i < tr.Len(); i++ {
		if tr.At(i).Y > tr.At(best).Y {
			best = i
		}
	}
	return best, tr.At(best)
}

// GroundCrossing is where the path meets y = 0.
type GroundCrossing struct {
	X, T float64
	// Before and After bracket the crossing. Both are the last index when the
	// run ended exactly on the ground.
	Before, After int
	// Speed and Angle describe the impact, interpolated like X and T. Angle
	// is the heading in radians, negative on the way down.
	Speed float64
	Angle float64
}

// Landing interpolates linearly between the last sample at or above the
// ground and the first sample below it. It reports false when the run never
// reached the ground.
func Landing(tr *dynamo.Trajectory) (GroundCrossing, bool) {
	if tr == nil || tr.Len() == 0 {
		return GroundCrossing{}, false
	}
	last := tr.Len() - 1
	end := tr.At(last)
	if end.Y == 0 && last > 0 {
		return GroundCrossing{
			X: end.X, T: end.T, Before: last, After: last,
			Speed: end.Speed(), Angle: end.Theta,
		}, true
	}
	if end.Y > 0 || last == 0 {
		return GroundCrossing{}, false
	}

	before := tr.At(last - 1)
	frac := before.Y / (before.Y - end.Y)
	if math.IsNaN(frac) || math.IsInf(frac, 0) {
		frac = 1
	}
	lerp := func(a, b float64) float64 { return a + frac*(b-a) }
	return GroundCrossing{
		X:      lerp(before.X, end.X),
		T:      lerp(before.T, end.T),
		Before: last - 1,
		After:  last,
		Speed:  lerp(before.Speed(), end.Speed()),
		Angle:  lerp(before.Theta, end.Theta),
	}, true
}

// Markers returns the indices of the samples nearest to multiples of interval
// seconds, starting with sample 0. A non-positive interval yields nil.
func Markers(tr *dynamo.Trajectory, interval float64) []int {
	if tr == nil || tr.Len() == 0 || !(interval > 0) {
		return nil
	}
	dt := tr.Params().Dt
	every := int(math.Round(interval / dt))
	if every < 1 {
		every = 1
	}
	idx := make([]int, 0, tr.Len()/every+1)
	for i := 0; i < tr.Len(); i += every {
		idx = append(idx, i)
	}
	return idx
}
