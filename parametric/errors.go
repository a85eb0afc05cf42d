// SPDX-License-Identifier: MIT
// Package parametric: sentinel error set. Public entry points return these
// sentinels, wrapped with fmt.Errorf("…: %w", Err) where context helps;
// tests match them via errors.Is.

package parametric

import "errors"

var (
	// ErrNilHamiltonian indicates construction from a nil base Hamiltonian.
	ErrNilHamiltonian = errors.New("parametric: base Hamiltonian is nil")

	// ErrNilModifier indicates a nil modifier passed to New.
	ErrNilModifier = errors.New("parametric: modifier is nil")

	// ErrNilFunc indicates a modifier built without an evaluation function.
	ErrNilFunc = errors.New("parametric: modifier function is nil")

	// ErrMissingParam indicates Evaluate was called without a parameter some
	// modifier declares. The instance stays usable for a corrected call.
	ErrMissingParam = errors.New("parametric: missing named parameter")

	// ErrStructure indicates the live matrix's sparsity layout diverged from
	// the baseline. Cached slots are invalid; the only remedy is rebuilding
	// the ParametricHamiltonian from a known-good base.
	ErrStructure = errors.New("parametric: live matrix structure diverged from baseline")
)
