package analysis

import (
	"github.com/san-kum/projsim/internal/dynamo"
)

// Deviation is the largest distance between positions at the same sample
// index, over the indices both runs share.
func Deviation(a, b *dynamo.Trajectory) float64 {
	if a == nil || b == nil {
		return 0
	}
	n := min(a.Len(), b.Len())
	worst := 0.0
	for i := 0; i < n; i++ {
		d := a.At(i).Position().Sub(b.At(i).Position()).Len()
		if d > worst {
			worst = d
		}
	}
	return worst
}

// Comparison lines up two runs of the same launch.
type Comparison struct {
	Deviation  float64
	WorstIndex int
	PeakDelta  float64 // b minus a
	RangeDelta float64 // b minus a, from interpolated landings
	TimeDelta  float64 // b minus a, from interpolated landings
	LenDelta   int
}

// Compare reports how far b strays from a.
func Compare(a, b *dynamo.Trajectory) Comparison {
	var c Comparison
	if a == nil || b == nil {
		return c
	}
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		d := a.At(i).Position().Sub(b.At(i).Position()).Len()
		if d > c.Deviation {
			c.Deviation, c.WorstIndex = d, i
		}
	}
	_, pa := Apex(a)
	_, pb := Apex(b)
	c.PeakDelta = pb.Y - pa.Y
	la, oka := Landing(a)
	lb, okb := Landing(b)
	if oka && okb {
		c.RangeDelta = lb.X - la.X
		c.TimeDelta = lb.T - la.T
	}
	c.LenDelta = b.Len() - a.Len()
	return c
}
