package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
)

// MinCurvatureRadius is the tightest osculating circle seen. Samples without a
// circle are ignored, so Cartesian runs report 0.
type MinCurvatureRadius struct {
	name string
	min  float64
}

func NewMinCurvatureRadius() *MinCurvatureRadius {
	return &MinCurvatureRadius{name: "min_curvature_radius", min: math.Inf(1)}
}

func (c *MinCurvatureRadius) Name() string { return c.name }

func (c *MinCurvatureRadius) Observe(s dynamo.Sample) {
	if s.Circle != nil {
		c.min = math.Min(c.min, s.Circle.R)
	}
}

func (c *MinCurvatureRadius) Value() float64 {
	if math.IsInf(c.min, 1) {
		return 0
	}
	return c.min
}

func (c *MinCurvatureRadius) Reset() {
	c.min = math.Inf(1)
}

// TimeAbove counts the time spent at or above a height. The standard set
// measures it against the launch height.
type TimeAbove struct {
	name   string
	height float64
	dt     float64
	above  int
}

func NewTimeAbove(height, dt float64) *TimeAbove {
	return &TimeAbove{name: "time_above", height: height, dt: dt}
}

func (t *TimeAbove) Name() string { return t.name }

func (t *TimeAbove) Observe(s dynamo.Sample) {
	if s.Y >= t.height {
		t.above++
	}
}

func (t *TimeAbove) Value() float64 {
	return float64(t.above) * t.dt
}

func (t *TimeAbove) Reset() {
	t.above = 0
}
