// Package lattice: core types and sentinel errors.
package lattice

import "errors"

// Sentinel errors for lattice construction and queries.
var (
	// ErrNoSites indicates a lattice was built without any site.
	ErrNoSites = errors.New("lattice: at least one site is required")

	// ErrVectorDim indicates a Bravais vector or site position whose length
	// disagrees with the lattice's spatial dimensionality.
	ErrVectorDim = errors.New("lattice: vector dimensionality mismatch")

	// ErrTooManyVectors indicates more Bravais vectors than spatial dimensions.
	ErrTooManyVectors = errors.New("lattice: more Bravais vectors than dimensions")

	// ErrDuplicateSublat indicates two sublattices registered under one name.
	ErrDuplicateSublat = errors.New("lattice: duplicate sublattice name")

	// ErrSiteIndex indicates a site index outside [0, NumSites).
	ErrSiteIndex = errors.New("lattice: site index out of range")

	// ErrCellDim indicates an integer cell displacement whose length differs
	// from the number of Bravais vectors.
	ErrCellDim = errors.New("lattice: cell displacement dimensionality mismatch")
)

// Lattice describes one unit cell of a (possibly periodic) lattice:
// spatial dimensionality, Bravais vectors, and the sites of the cell
// with their sublattice membership. It is immutable once built.
//
// Site indices run 0..NumSites()-1 in registration order; sublattice
// indices run 0..NumSublats()-1 in registration order.
type Lattice struct {
	dim       int         // spatial dimensionality E
	vectors   [][]float64 // Bravais vectors, each of length dim; len ≤ dim
	positions [][]float64 // site positions, each of length dim
	sublatOf  []int       // site index → sublattice index
	sublats   []string    // sublattice index → name
}

// Option configures a Lattice before construction.
type Option func(*config)

// config accumulates option state; validated by New.
type config struct {
	vectors [][]float64
	names   []string
	sites   [][][]float64 // per sublattice, registered positions
}

// WithVectors sets the Bravais vectors of the lattice. The number of
// vectors is the number of periodic directions and may be smaller than
// the spatial dimensionality (e.g. a chain embedded in 2D).
func WithVectors(vs ...[]float64) Option {
	return func(c *config) { c.vectors = append(c.vectors, vs...) }
}

// WithSublat registers a named sublattice with the given site positions
// inside the unit cell. Registration order fixes site and sublattice
// indices.
func WithSublat(name string, positions ...[]float64) Option {
	return func(c *config) {
		c.names = append(c.names, name)
		c.sites = append(c.sites, positions)
	}
}
