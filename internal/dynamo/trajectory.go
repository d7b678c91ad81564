package dynamo

// Trajectory is the ordered, append-only record of one run. Index 0 is the
// launch sample. Only the run that created it appends; Freeze ends that.
// Sample i is stamped i*Dt rather than accumulated, so consecutive samples are
// Dt apart to within floating-point rounding, not bit-exactly.
type Trajectory struct {
	params  Params
	samples []Sample
	frozen  bool
}

// NewTrajectory creates an empty buffer sized for the expected flight.
func NewTrajectory(p Params, capacity int) *Trajectory {
	if capacity < 2 {
		capacity = 2
	}
	return &Trajectory{
		params:  p,
		samples: make([]Sample, 0, capacity),
	}
}

// Append adds the next sample. It reports false once the trajectory is frozen.
func (tr *Trajectory) Append(s Sample) bool {
	if tr.frozen {
		return false
	}
	tr.samples = append(tr.samples, s)
	return true
}

// Freeze makes the trajectory read-only.
func (tr *Trajectory) Freeze()        { tr.frozen = true }
func (tr *Trajectory) Frozen() bool   { return tr.frozen }
func (tr *Trajectory) Params() Params { return tr.params }
func (tr *Trajectory) Len() int       { return len(tr.samples) }
func (tr *Trajectory) At(i int) Sample {
	return tr.samples[i]
}

func (tr *Trajectory) First() Sample { return tr.samples[0] }
func (tr *Trajectory) Last() Sample  { return tr.samples[len(tr.samples)-1] }

// Duration is the time of the last retained sample.
func (tr *Trajectory) Duration() float64 {
	if len(tr.samples) == 0 {
		return 0
	}
	return tr.Last().T
}

// Samples returns a copy so callers cannot reach the backing array.
func (tr *Trajectory) Samples() []Sample {
	out := make([]Sample, len(tr.samples))
	copy(out, tr.samples)
	return out
}

// Series extracts one scalar per sample.
func (tr *Trajectory) Series(fn func(Sample) float64) []float64 {
	out := make([]float64, len(tr.samples))
	for i, s := range tr.samples {
		out[i] = fn(s)
	}
	return out
}

func (tr *Trajectory) Times() []float64 { return tr.Series(func(s Sample) float64 { return s.T }) }
func (tr *Trajectory) Xs() []float64    { return tr.Series(func(s Sample) float64 { return s.X }) }
func (tr *Trajectory) Ys() []float64    { return tr.Series(func(s Sample) float64 { return s.Y }) }
