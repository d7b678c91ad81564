package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/dynamo"
)

// PeakHeight is the greatest height seen.
type PeakHeight struct {
	name string
	peak float64
	seen bool
}

func NewPeakHeight() *PeakHeight {
	return &PeakHeight{name: "peak_height"}
}

func (m *PeakHeight) Name() string { return m.name }

func (m *PeakHeight) Observe(s dynamo.Sample) {
	if !m.seen || s.Y > m.peak {
		m.peak = s.Y
	}
	m.seen = true
}

func (m *PeakHeight) Value() float64 { return m.peak }

func (m *PeakHeight) Reset() {
	m.peak = 0
	m.seen = false
}

// FlightTime is the time of the most recent sample.
type FlightTime struct {
	name string
	t    float64
}

func NewFlightTime() *FlightTime {
	return &FlightTime{name: "flight_time"}
}

func (m *FlightTime) Name() string            { return m.name }
func (m *FlightTime) Observe(s dynamo.Sample) { m.t = s.T }
func (m *FlightTime) Value() float64          { return m.t }
func (m *FlightTime) Reset()                  { m.t = 0 }

// Range is the horizontal position of the most recent sample.
type Range struct {
	name string
	x    float64
}

func NewRange() *Range {
	return &Range{name: "range"}
}

func (m *Range) Name() string            { return m.name }
func (m *Range) Observe(s dynamo.Sample) { m.x = s.X }
func (m *Range) Value() float64          { return m.x }
func (m *Range) Reset()                  { m.x = 0 }

// MaxSpeed is the largest speed seen.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(s dynamo.Sample) {
	m.max = math.Max(m.max, s.Speed())
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
