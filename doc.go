// Package lattiq builds parameterized sparse Hamiltonians for lattice
// models and re-renders them cheaply across parameter values.
//
// 🚀 What is lattiq?
//
//	A pure-Go library for tight-binding style models:
//		• Lattices: unit cells, named sublattices, Bravais vectors
//		• Selectors: geometric predicates picking sites and bonds
//		• Hamiltonians: displacement-tagged sparse harmonic blocks
//		• Parametric engine: slot-cached re-evaluation per parameter point
//		• Sweeps: declarative YAML parameter spaces
//
// ✨ Why choose lattiq?
//
//   - Re-evaluation cost proportional to affected entries, not matrix size
//   - Explicit structural guarantees — layout drift is detected, never repaired silently
//   - Per-concern packages with a minimal, option-driven API
//
// Everything is organized under six subpackages:
//
//	lattice/    — unit-cell geometry, sublattices, ready-made lattices
//	sparse/     — compressed-column complex matrices with frozen layouts
//	selector/   — site and hopping predicates + lattice resolution
//	ham/        — harmonic blocks, declarative assembly, Bloch export
//	parametric/ — modifiers, slot caches, the update engine
//	model/      — parameter spaces and sweeps
//
// Quick sketch:
//
//	lat, _ := lattice.Honeycomb(1)
//	h, _ := ham.Build(lat, []ham.Term{
//	    ham.Hopping(-1, selector.WithRange(0.58)),
//	})
//	ph, _ := parametric.New(h, parametric.Onsite(shift, []string{"mu"}))
//	hMu, _ := ph.Evaluate(parametric.Params{"mu": 0.2})
package lattiq
