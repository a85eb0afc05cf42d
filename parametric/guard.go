// SPDX-License-Identifier: MIT

package parametric

import "fmt"

// weakCheck is the cheap structural test run on every Evaluate: harmonic
// count and per-harmonic nonzero count of live vs baseline. It catches
// gross external mutation without scanning index arrays.
// Complexity: O(NumHarmonics).
func (ph *ParametricHamiltonian) weakCheck() error {
	baseH, liveH := ph.base.Harmonics(), ph.live.Harmonics()
	if len(baseH) != len(liveH) {
		return fmt.Errorf("harmonic count %d vs %d: %w", len(liveH), len(baseH), ErrStructure)
	}
	for h := range baseH {
		if baseH[h].Mat.NNZ() != liveH[h].Mat.NNZ() {
			return fmt.Errorf("harmonic %d nnz %d vs %d: %w",
				h, liveH[h].Mat.NNZ(), baseH[h].Mat.NNZ(), ErrStructure)
		}
	}

	return nil
}

// CheckStructure is the exhaustive on-demand test: per harmonic it
// compares displacement tags and the full sparse layout (nonzero count,
// row indices, column pointers) of live vs baseline.
// Any divergence means the live matrix was structurally mutated outside
// the engine; every cached slot is then invalid and the instance must be
// rebuilt — there is no repair.
// Complexity: O(total nnz).
func (ph *ParametricHamiltonian) CheckStructure() error {
	if err := ph.weakCheck(); err != nil {
		return err
	}
	baseH, liveH := ph.base.Harmonics(), ph.live.Harmonics()
	for h := range baseH {
		if len(baseH[h].Dn) != len(liveH[h].Dn) {
			return fmt.Errorf("harmonic %d displacement tag: %w", h, ErrStructure)
		}
		for d := range baseH[h].Dn {
			if baseH[h].Dn[d] != liveH[h].Dn[d] {
				return fmt.Errorf("harmonic %d displacement tag: %w", h, ErrStructure)
			}
		}
		if !baseH[h].Mat.SameLayout(liveH[h].Mat) {
			return fmt.Errorf("harmonic %d sparse layout: %w", h, ErrStructure)
		}
	}

	return nil
}
