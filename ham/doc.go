// Package ham assembles and represents base tight-binding Hamiltonians.
//
// A Hamiltonian is an ordered collection of harmonics: sparse blocks
// H(dn), each tagged by an integer unit-cell displacement dn, so that the
// full Bloch Hamiltonian at momentum k is
//
//	H(k) = Σ_dn exp(i k·(A·dn)) H(dn).
//
// Each block is a sparse.CSC over the unit cell's sites; the sparsity
// layout of every block is frozen at construction, which is what lets
// package parametric cache storage slots and re-evaluate entries cheaply.
//
// Assembly goes through Build with declarative terms that reuse the
// selector predicate language:
//
//	h, err := ham.Build(lat, []ham.Term{
//	    ham.Onsite(2, selector.WithSublats("A")),
//	    ham.Hopping(-1, selector.WithRange(1)),
//	})
//
// Candidate cell displacements are enumerated within a configurable
// radius (WithCellRadius, default 1); a harmonic is emitted only when at
// least one term produced an entry for its displacement, with the dn = 0
// harmonic always ordered first.
package ham
