// SPDX-License-Identifier: MIT

package parametric

import (
	"sort"

	"github.com/lattiq/lattiq/ham"
	"github.com/lattiq/lattiq/lattice"
	"github.com/lattiq/lattiq/selector"
)

// slotEntry is one cached target of a modifier inside one harmonic: the
// storage slot plus whatever static geometric context the modifier's
// arity requires (r, dr stay nil below the arity that needs them).
type slotEntry struct {
	slot int
	r    []float64
	dr   []float64
}

// buildCache scans every stored entry of every harmonic once per modifier
// and records the slots its resolved selector accepts, together with the
// per-harmonic union of all touched slots.
// Slot identifiers index positions of storage, never values: the sparse
// layout must not be reordered after this runs.
// Complexity: O(total nnz × modifiers) — construction only.
func buildCache(base *ham.Hamiltonian, mods []*Modifier) (caches [][][]slotEntry, touched [][]int, err error) {
	lat := base.Lattice()
	harms := base.Harmonics()
	zero := make([]int, lat.NumVectors())

	caches = make([][][]slotEntry, len(mods))
	touchedSets := make([]map[int]struct{}, len(harms))
	for h := range harms {
		touchedSets[h] = make(map[int]struct{})
	}

	for mi, m := range mods {
		var rs *selector.ResolvedSite
		var rh *selector.ResolvedHop
		if m.onsite {
			if rs, err = m.site.Resolve(lat); err != nil {
				return nil, nil, err
			}
		} else {
			if rh, err = m.hop.Resolve(lat); err != nil {
				return nil, nil, err
			}
		}

		caches[mi] = make([][]slotEntry, len(harms))
		for h, harm := range harms {
			mat := harm.Mat
			rowIdx, colPtr := mat.RowIndices(), mat.ColPtr()
			var entries []slotEntry
			for j := 0; j < mat.Cols(); j++ {
				for slot := colPtr[j]; slot < colPtr[j+1]; slot++ {
					i := rowIdx[slot]
					e, ok, matchErr := matchEntry(m, rs, rh, lat, i, j, harm.Dn, zero, slot)
					if matchErr != nil {
						return nil, nil, matchErr
					}
					if !ok {
						continue
					}
					entries = append(entries, e)
					touchedSets[h][slot] = struct{}{}
				}
			}
			caches[mi][h] = entries
		}
	}

	touched = make([][]int, len(harms))
	for h, set := range touchedSets {
		slots := make([]int, 0, len(set))
		for s := range set {
			slots = append(slots, s)
		}
		sort.Ints(slots)
		touched[h] = slots
	}

	return caches, touched, nil
}

// matchEntry evaluates one modifier's resolved selector against the stored
// entry (i, j) of the harmonic displaced by dn, and assembles the cache
// record its arity requires.
func matchEntry(m *Modifier, rs *selector.ResolvedSite, rh *selector.ResolvedHop,
	lat *lattice.Lattice, i, j int, dn, zero []int, slot int) (slotEntry, bool, error) {
	if m.onsite {
		if !rs.Match(i, j, dn, zero) {
			return slotEntry{}, false, nil
		}
		e := slotEntry{slot: slot}
		if m.arity == ValuePosition {
			pos, err := lat.Position(j)
			if err != nil {
				return slotEntry{}, false, err
			}
			e.r = pos
		}

		return e, true, nil
	}

	if !rh.Match(i, j, dn) {
		return slotEntry{}, false, nil
	}
	e := slotEntry{slot: slot}
	if m.arity == ValuePositionBond {
		r, dr, err := rh.Bond(i, j, dn)
		if err != nil {
			return slotEntry{}, false, err
		}
		e.r, e.dr = r, dr
	}

	return e, true, nil
}
