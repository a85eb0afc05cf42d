package lattice

import "math"

// Ready-made lattices used across tests and examples. Each builder is a
// thin wrapper over New with a fixed, documented geometry.

// Chain returns a one-dimensional chain with n sites per unit cell at
// x = 0..n-1, unit spacing, Bravais vector (n), all sites in sublattice "A".
// n must be ≥ 1 (ErrNoSites otherwise).
func Chain(n int) (*Lattice, error) {
	positions := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		positions = append(positions, []float64{float64(i)})
	}

	return New(
		WithVectors([]float64{float64(n)}),
		WithSublat("A", positions...),
	)
}

// Square returns a two-dimensional square lattice with an nx×ny block of
// sites per unit cell at integer coordinates, unit spacing, Bravais
// vectors (nx,0) and (0,ny), all sites in sublattice "A".
// Sites are ordered row-major (y outer, x inner): index = y*nx + x.
func Square(nx, ny int) (*Lattice, error) {
	positions := make([][]float64, 0, nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			positions = append(positions, []float64{float64(x), float64(y)})
		}
	}

	return New(
		WithVectors([]float64{float64(nx), 0}, []float64{0, float64(ny)}),
		WithSublat("A", positions...),
	)
}

// Honeycomb returns the two-site honeycomb lattice with lattice constant
// a0: Bravais vectors a0·(cos±30°, sin±30°), sublattices "A" and "B" at
// ∓(a0/(2√3), 0). Nearest neighbours sit at distance a0/√3, reached at
// cell displacements (0,0), (-1,0) and (0,-1) from A to B.
func Honeycomb(a0 float64) (*Lattice, error) {
	sqrt3 := math.Sqrt(3)

	return New(
		WithVectors(
			[]float64{a0 * sqrt3 / 2, a0 / 2},
			[]float64{a0 * sqrt3 / 2, -a0 / 2},
		),
		WithSublat("A", []float64{-a0 / (2 * sqrt3), 0}),
		WithSublat("B", []float64{a0 / (2 * sqrt3), 0}),
	)
}
