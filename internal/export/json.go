package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
)

// Document is the JSON form of a run.
type Document struct {
	Params  ParamsDoc          `json:"params"`
	Summary SummaryDoc         `json:"summary"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
	Samples []SampleDoc        `json:"samples"`
}

type ParamsDoc struct {
	Basis    dynamo.Basis `json:"basis"`
	Y0       float64      `json:"y0"`
	V0       float64      `json:"v0"`
	Theta0   float64      `json:"theta0_deg"`
	G        float64      `json:"g"`
	K        float64      `json:"k"`
	N        int          `json:"n"`
	Dt       float64      `json:"dt"`
	MaxSteps int          `json:"max_steps,omitempty"`
}

type SummaryDoc struct {
	Steps      int     `json:"steps"`
	PeakHeight float64 `json:"peak_height"`
	ApexTime   float64 `json:"apex_time"`
	FlightTime float64 `json:"flight_time"`
	Range      float64 `json:"range"`
	Landed     bool    `json:"landed"`
	LandingX   float64 `json:"landing_x"`
	LandingT   float64 `json:"landing_t"`
}

type SampleDoc struct {
	T      float64    `json:"t"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Vx     float64    `json:"vx"`
	Vy     float64    `json:"vy"`
	V      float64    `json:"v"`
	Theta  float64    `json:"theta"`
	Ax     float64    `json:"ax"`
	Ay     float64    `json:"ay"`
	APar   float64    `json:"a_par"`
	APerp  float64    `json:"a_perp"`
	Circle *CircleDoc `json:"circle,omitempty"`
}

type CircleDoc struct {
	R  float64 `json:"r"`
	Cx float64 `json:"cx"`
	Cy float64 `json:"cy"`
}

// NewDocument builds the JSON form of tr.
func NewDocument(tr *dynamo.Trajectory, metrics map[string]float64) Document {
	p := tr.Params()
	sum := analysis.Summarize(tr)
	doc := Document{
		Params: ParamsDoc{
			Basis: p.Basis, Y0: p.Y0, V0: p.V0, Theta0: p.Theta0,
			G: p.G, K: p.K, N: p.N, Dt: p.Dt, MaxSteps: p.MaxSteps,
		},
		Summary: SummaryDoc{
			Steps:      tr.Len() - 1,
			PeakHeight: sum.PeakHeight,
			ApexTime:   sum.ApexTime,
			FlightTime: sum.FlightTime,
			Range:      sum.Range,
			Landed:     sum.Landed,
			LandingX:   sum.LandingX,
			LandingT:   sum.LandingT,
		},
		Metrics: metrics,
		Samples: make([]SampleDoc, tr.Len()),
	}
	for i := range doc.Samples {
		s := tr.At(i)
		doc.Samples[i] = SampleDoc{
			T: s.T, X: s.X, Y: s.Y, Vx: s.Vx, Vy: s.Vy, V: s.V, Theta: s.Theta,
			Ax: s.Ax, Ay: s.Ay, APar: s.APar, APerp: s.APerp,
		}
		if s.Circle != nil {
			doc.Samples[i].Circle = &CircleDoc{R: s.Circle.R, Cx: s.Circle.Cx, Cy: s.Circle.Cy}
		}
	}
	return doc
}

func WriteJSON(w io.Writer, tr *dynamo.Trajectory, metrics map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(tr, metrics))
}
