// Package lattice models the geometry side of a tight-binding problem:
// a set of sites inside one unit cell, each belonging to a named
// sublattice, together with the Bravais vectors that tile the cell
// across space.
//
// A Lattice is immutable once built. It answers purely geometric
// questions — site positions, sublattice membership, cell translations —
// and carries no matrix data; Hamiltonian assembly lives in package ham.
//
// Construction goes through New with functional options:
//
//	lat, err := lattice.New(
//	    lattice.WithVectors([]float64{1, 0}, []float64{0, 1}),
//	    lattice.WithSublat("A", []float64{0, 0}),
//	    lattice.WithSublat("B", []float64{0.5, 0.5}),
//	)
//
// or through one of the ready-made builders: Chain, Square, Honeycomb.
package lattice
