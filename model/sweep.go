package model

import (
	"fmt"

	"github.com/lattiq/lattiq/ham"
	"github.com/lattiq/lattiq/parametric"
)

// Observer receives each rendered matrix during a sweep. The matrix is
// the engine's borrowed view: it is overwritten by the next point, so
// observers needing a snapshot must Clone it.
type Observer func(i int, p parametric.Params, h *ham.Hamiltonian) error

// Sweep evaluates ph at every point of the space, in order, handing each
// result to observe. The sweep stops at the first error — either from
// Evaluate (e.g. a missing parameter) or from the observer — and returns
// it wrapped with the point index.
// Sequential by design: Evaluate mutates ph's shared live matrix.
func Sweep(ph *parametric.ParametricHamiltonian, s *Space, observe Observer) error {
	if ph == nil {
		return ErrNilTarget
	}
	if observe == nil {
		return ErrNilObserver
	}
	points, err := s.Points()
	if err != nil {
		return err
	}
	for i, p := range points {
		out, err := ph.Evaluate(p)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		if err = observe(i, p, out); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}
