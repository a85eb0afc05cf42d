// SPDX-License-Identifier: MIT

// Package parametric turns a base Hamiltonian into a cheaply re-evaluable
// function of named parameters.
//
// A Modifier pairs a selector with a parameterized function that
// recomputes the entries the selector accepts. New resolves every
// modifier's selector once against the Hamiltonian's lattice, scans the
// frozen sparse layout of each harmonic, and caches per modifier the
// storage slots it affects together with the static geometric context
// (site position, bond center and vector) its declared arity needs. That
// one-time cost makes every later Evaluate proportional to the number of
// affected entries only:
//
//	ph, err := parametric.New(h,
//	    parametric.Onsite(func(o complex128, p parametric.Params) complex128 {
//	        return o - complex(p["mu"], 0)
//	    }, []string{"mu"}),
//	)
//	hMu, err := ph.Evaluate(parametric.Params{"mu": 0.2})
//
// Evaluate resets every touched slot to its baseline value and reapplies
// all modifiers in construction order; modifiers sharing a slot compose
// sequentially, each reading the previous one's result. Entries no
// modifier touches keep their baseline value at all times.
//
// The matrix returned by Evaluate is a borrowed view of internal storage:
// it is overwritten in place by the next Evaluate on the same instance and
// must never be structurally modified by the caller. A structural check
// runs on every Evaluate (and exhaustively via CheckStructure); divergence
// from the baseline layout is fatal, because it invalidates every cached
// slot. Instances are not safe for concurrent use — parallel parameter
// sweeps should give each worker its own Copy, which duplicates the
// matrices and shares the immutable caches.
package parametric
