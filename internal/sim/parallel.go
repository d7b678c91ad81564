package sim

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/integrators"
)

// StepperFactory returns a fresh stepper for a basis.
type StepperFactory func(b dynamo.Basis) (dynamo.Stepper, error)

// Ensemble runs independent parameter sets on a bounded pool of workers.
// Every run gets its own stepper, simulator, metrics and trajectory buffer;
// nothing is shared.
type Ensemble struct {
	steppers StepperFactory
	metrics  func(p dynamo.Params) []dynamo.Metric
	workers  int
}

// NewEnsemble takes factories producing a stepper and fresh metrics per run.
// A nil steppers falls back to integrators.ForBasis; nil metrics means none.
func NewEnsemble(steppers StepperFactory, metrics func(p dynamo.Params) []dynamo.Metric) *Ensemble {
	if steppers == nil {
		steppers = integrators.ForBasis
	}
	return &Ensemble{steppers: steppers, metrics: metrics, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers caps the number of concurrent runs. n < 1 is treated as 1.
func (e *Ensemble) WithWorkers(n int) *Ensemble {
	e.workers = max(n, 1)
	return e
}

// Run returns every result in input order.
func (e *Ensemble) Run(params []dynamo.Params) ([]*Result, error) {
	results := make([]*Result, len(params))
	err := e.Visit(params, func(i int, r *Result) {
		results[i] = r
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Visit hands each finished run to visit on the worker that produced it, so
// callers reducing a run to a few numbers never hold every trajectory at once.
// visit is called concurrently with distinct indices. The first failing run,
// by index, is returned.
func (e *Ensemble) Visit(params []dynamo.Params, visit func(i int, r *Result)) error {
	errs := make([]error, len(params))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(e.workers, len(params)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r, err := e.runOne(params[idx])
				if err != nil {
					errs[idx] = err
					continue
				}
				visit(idx, r)
			}
		}()
	}
	for i := range params {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}

func (e *Ensemble) runOne(p dynamo.Params) (*Result, error) {
	stepper, err := e.steppers(p.Basis)
	if err != nil {
		return nil, err
	}
	s := New(stepper)
	if e.metrics != nil {
		for _, m := range e.metrics(p) {
			s.AddMetric(m)
		}
	}
	return s.Run(p)
}
