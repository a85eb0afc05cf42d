// Package ham: core types and sentinel errors.
package ham

import (
	"errors"

	"github.com/lattiq/lattiq/lattice"
	"github.com/lattiq/lattiq/sparse"
)

// Sentinel errors for Hamiltonian construction and queries.
var (
	// ErrNilLattice indicates construction against a nil lattice.
	ErrNilLattice = errors.New("ham: lattice is nil")

	// ErrNoTerms indicates Build was called without any term.
	ErrNoTerms = errors.New("ham: at least one term is required")

	// ErrNoHarmonics indicates construction without any harmonic block,
	// or a term set that selected no matrix entry at all.
	ErrNoHarmonics = errors.New("ham: no harmonic produced any entry")

	// ErrDnDim indicates a harmonic displacement whose length differs from
	// the lattice's number of Bravais vectors.
	ErrDnDim = errors.New("ham: harmonic displacement dimensionality mismatch")

	// ErrDuplicateDn indicates two harmonics tagged with the same displacement.
	ErrDuplicateDn = errors.New("ham: duplicate harmonic displacement")

	// ErrBlockShape indicates a harmonic block that is not NumSites×NumSites.
	ErrBlockShape = errors.New("ham: harmonic block shape mismatch")

	// ErrMomentumDim indicates a Bloch momentum with the wrong dimensionality.
	ErrMomentumDim = errors.New("ham: momentum dimensionality mismatch")

	// ErrCellRadius indicates a negative cell-search radius.
	ErrCellRadius = errors.New("ham: cell radius must be non-negative")
)

// Harmonic is one displacement-tagged sparse block of a Hamiltonian.
// Dn has one component per Bravais vector; Mat is NumSites×NumSites.
// Dn and the layout of Mat are immutable once the Hamiltonian is built;
// only Mat's stored values change.
type Harmonic struct {
	Dn  []int
	Mat *sparse.CSC
}

// Hamiltonian is an ordered collection of harmonics over one lattice.
type Hamiltonian struct {
	lat   *lattice.Lattice
	harms []Harmonic
}
