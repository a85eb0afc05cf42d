// SPDX-License-Identifier: MIT

package parametric

import (
	"fmt"

	"github.com/lattiq/lattiq/ham"
)

// ParametricHamiltonian owns a read-only baseline Hamiltonian, a live
// structurally-identical copy mutated in place by Evaluate, the ordered
// modifiers with their slot caches, and the merged parameter-name list.
// Construction (New) is the expensive one-time step; Evaluate is cheap
// and repeatable. Not safe for concurrent use — see Copy.
type ParametricHamiltonian struct {
	base    *ham.Hamiltonian
	live    *ham.Hamiltonian
	mods    []*Modifier
	caches  [][][]slotEntry // [modifier][harmonic] → cached targets
	touched [][]int         // [harmonic] → sorted unique union of all slots
	names   []string        // distinct parameter names across modifiers, in order
}

// New resolves every modifier against h's lattice, scans h's sparse
// layout, and returns a ParametricHamiltonian ready for Evaluate.
// h is cloned twice (baseline and live); the caller's Hamiltonian stays
// untouched. A modifier whose selector matches nothing is legal and gets
// an empty cache.
// Returns ErrNilHamiltonian, ErrNilModifier, ErrNilFunc, or a selector
// resolution error.
func New(h *ham.Hamiltonian, mods ...*Modifier) (*ParametricHamiltonian, error) {
	if h == nil {
		return nil, ErrNilHamiltonian
	}
	for i, m := range mods {
		if m == nil {
			return nil, fmt.Errorf("modifier %d: %w", i, ErrNilModifier)
		}
		if !m.hasFunc() {
			return nil, fmt.Errorf("modifier %d: %w", i, ErrNilFunc)
		}
	}

	base := h.Clone()
	caches, touched, err := buildCache(base, mods)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]struct{})
	for _, m := range mods {
		for _, n := range m.names {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}

	return &ParametricHamiltonian{
		base:    base,
		live:    base.Clone(),
		mods:    mods,
		caches:  caches,
		touched: touched,
		names:   names,
	}, nil
}

// Evaluate renders the Hamiltonian at the given parameter assignment:
// it resets every touched slot to its baseline value, then reapplies all
// modifiers in construction order, composing sequentially on shared slots.
//
// The returned Hamiltonian is a borrowed view of internal storage — valid
// until the next Evaluate on this instance, never to be structurally
// modified. Missing declared parameters fail with ErrMissingParam before
// any mutation, leaving the instance usable for a corrected call.
// Complexity: O(touched slots + Σ cache sizes).
func (ph *ParametricHamiltonian) Evaluate(p Params) (*ham.Hamiltonian, error) {
	if err := ph.weakCheck(); err != nil {
		return nil, err
	}
	for _, m := range ph.mods {
		for _, name := range m.names {
			if _, ok := p[name]; !ok {
				return nil, fmt.Errorf("%q: %w", name, ErrMissingParam)
			}
		}
	}

	baseH, liveH := ph.base.Harmonics(), ph.live.Harmonics()
	for h := range liveH {
		bv, lv := baseH[h].Mat.Vals(), liveH[h].Mat.Vals()
		for _, slot := range ph.touched[h] {
			lv[slot] = bv[slot]
		}
	}

	for mi, m := range ph.mods {
		sub := m.subset(p)
		for h := range liveH {
			lv := liveH[h].Mat.Vals()
			switch m.arity {
			case ValueOnly:
				for _, e := range ph.caches[mi][h] {
					lv[e.slot] = m.fnV(lv[e.slot], sub)
				}
			case ValuePosition:
				for _, e := range ph.caches[mi][h] {
					lv[e.slot] = m.fnR(lv[e.slot], e.r, sub)
				}
			case ValuePositionBond:
				for _, e := range ph.caches[mi][h] {
					lv[e.slot] = m.fnRDR(lv[e.slot], e.r, e.dr, sub)
				}
			}
		}
	}

	return ph.live, nil
}

// subset filters p down to the modifier's declared names.
func (m *Modifier) subset(p Params) Params {
	sub := make(Params, len(m.names))
	for _, n := range m.names {
		sub[n] = p[n]
	}

	return sub
}

// ParameterNames returns the distinct parameter names declared across all
// modifiers, first-declared first. The returned slice is a copy.
func (ph *ParametricHamiltonian) ParameterNames() []string {
	out := make([]string, len(ph.names))
	copy(out, ph.names)

	return out
}

// TouchedSlots returns the sorted union of storage slots any modifier
// affects inside harmonic h — the exact set Evaluate resets to baseline.
// The returned slice is a copy; it is empty when h is out of range.
func (ph *ParametricHamiltonian) TouchedSlots(h int) []int {
	if h < 0 || h >= len(ph.touched) {
		return nil
	}
	out := make([]int, len(ph.touched[h]))
	copy(out, ph.touched[h])

	return out
}

// Copy returns an independently evolvable instance: baseline and live
// matrices are deep-copied, while the immutable modifier list, slot
// caches and touched sets are shared. This is the intended way to hand
// one instance per worker to a parallel parameter sweep.
// Complexity: O(total nnz).
func (ph *ParametricHamiltonian) Copy() *ParametricHamiltonian {
	return &ParametricHamiltonian{
		base:    ph.base.Clone(),
		live:    ph.live.Clone(),
		mods:    ph.mods,
		caches:  ph.caches,
		touched: ph.touched,
		names:   ph.names,
	}
}
