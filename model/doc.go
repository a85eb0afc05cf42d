// Package model drives parametric Hamiltonians over declarative parameter
// spaces — the parameter-sweep side of the library.
//
// A Space combines fixed parameter assignments with swept axes, either
// enumerated explicitly or as linear ranges, and can be written in YAML:
//
//	fixed:
//	  t: 1.0
//	axes:
//	  - name: mu
//	    from: 0
//	    to: 2
//	    steps: 5
//	  - name: alpha
//	    values: [0.0, 0.1]
//
// Points expands a Space into the cartesian product of its axes in
// declaration order (the last axis varies fastest), and Sweep evaluates a
// ParametricHamiltonian at every point sequentially, handing each
// rendered matrix to an observer callback. Sweeps on one instance are
// deliberately sequential — Evaluate mutates shared storage; parallel
// sweeps should give each worker its own ParametricHamiltonian.Copy.
package model
