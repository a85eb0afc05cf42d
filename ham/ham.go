package ham

import (
	"fmt"

	"github.com/lattiq/lattiq/lattice"
)

// New assembles a Hamiltonian directly from pre-built harmonic blocks.
// Harmonics keep the given order. Each Dn must have one component per
// Bravais vector and be unique; each block must be NumSites×NumSites.
// Most callers should prefer Build; New is the escape hatch for externally
// assembled matrices.
func New(lat *lattice.Lattice, harms []Harmonic) (*Hamiltonian, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	if len(harms) == 0 {
		return nil, ErrNoHarmonics
	}
	n := lat.NumSites()
	seen := make(map[string]struct{}, len(harms))
	for _, h := range harms {
		if len(h.Dn) != lat.NumVectors() {
			return nil, fmt.Errorf("dn %v with %d vectors: %w", h.Dn, lat.NumVectors(), ErrDnDim)
		}
		key := dnKey(h.Dn)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("dn %v: %w", h.Dn, ErrDuplicateDn)
		}
		seen[key] = struct{}{}
		if h.Mat == nil || h.Mat.Rows() != n || h.Mat.Cols() != n {
			return nil, fmt.Errorf("dn %v: %w", h.Dn, ErrBlockShape)
		}
	}

	own := make([]Harmonic, len(harms))
	for i, h := range harms {
		dn := make([]int, len(h.Dn))
		copy(dn, h.Dn)
		own[i] = Harmonic{Dn: dn, Mat: h.Mat.Clone()}
	}

	return &Hamiltonian{lat: lat, harms: own}, nil
}

// Lattice returns the lattice the Hamiltonian is defined over.
func (h *Hamiltonian) Lattice() *lattice.Lattice { return h.lat }

// NumHarmonics returns the number of harmonic blocks. Complexity: O(1).
func (h *Hamiltonian) NumHarmonics() int { return len(h.harms) }

// Harmonics returns the harmonic blocks in order. The slice and the
// blocks alias internal storage; callers may rewrite stored values but
// must never alter Dn tags or sparsity layouts.
func (h *Hamiltonian) Harmonics() []Harmonic { return h.harms }

// NNZ returns the total number of stored entries across all harmonics.
// Complexity: O(NumHarmonics).
func (h *Hamiltonian) NNZ() int {
	var total int
	for _, hm := range h.harms {
		total += hm.Mat.NNZ()
	}

	return total
}

// Clone returns a structural deep copy: every block and tag is duplicated,
// while the immutable lattice is shared.
// Complexity: O(total nnz).
func (h *Hamiltonian) Clone() *Hamiltonian {
	harms := make([]Harmonic, len(h.harms))
	for i, hm := range h.harms {
		dn := make([]int, len(hm.Dn))
		copy(dn, hm.Dn)
		harms[i] = Harmonic{Dn: dn, Mat: hm.Mat.Clone()}
	}

	return &Hamiltonian{lat: h.lat, harms: harms}
}
