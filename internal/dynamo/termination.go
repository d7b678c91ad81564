package dynamo

// Phase is the state of the termination policy.
type Phase int

const (
	Flying Phase = iota
	Landed
)

func (p Phase) String() string {
	if p == Landed {
		return "landed"
	}
	return "flying"
}

// GroundContact stops a run at the first sample below the ground plane. That
// overshoot sample is kept as-is; no interpolation back to y = 0 happens here.
type GroundContact struct {
	phase Phase
	steps int
}

func NewGroundContact() *GroundContact {
	return &GroundContact{phase: Flying}
}

// Observe feeds the newest sample and returns the resulting phase. Landed is
// terminal: later samples are ignored.
func (g *GroundContact) Observe(s Sample) Phase {
	if g.phase == Landed {
		return Landed
	}
	g.steps++
	if s.Y < 0 {
		g.phase = Landed
	}
	return g.phase
}

func (g *GroundContact) Phase() Phase { return g.phase }

// Steps counts samples observed while flying, including the landing one.
func (g *GroundContact) Steps() int { return g.steps }
