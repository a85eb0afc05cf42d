// Package model: types and sentinel errors.
package model

import "errors"

// Sentinel errors for parameter-space handling.
var (
	// ErrParse indicates malformed YAML input.
	ErrParse = errors.New("model: cannot parse parameter space")

	// ErrEmptyAxis indicates an axis without a name.
	ErrEmptyAxis = errors.New("model: axis name is empty")

	// ErrBadSteps indicates a ranged axis with fewer than one step.
	ErrBadSteps = errors.New("model: axis steps must be at least 1")

	// ErrDuplicateAxis indicates an axis name repeated, or colliding with a
	// fixed assignment.
	ErrDuplicateAxis = errors.New("model: duplicate axis name")

	// ErrNilTarget indicates a sweep over a nil ParametricHamiltonian.
	ErrNilTarget = errors.New("model: parametric Hamiltonian is nil")

	// ErrNilObserver indicates a sweep without an observer callback.
	ErrNilObserver = errors.New("model: observer is nil")
)

// Axis is one swept parameter: either an explicit value list, or the
// linear range [From, To] sampled at Steps points (Steps == 1 yields just
// From). Values wins when both are given.
type Axis struct {
	Name   string    `yaml:"name"`
	From   float64   `yaml:"from"`
	To     float64   `yaml:"to"`
	Steps  int       `yaml:"steps"`
	Values []float64 `yaml:"values"`
}

// Space is a declarative parameter space: assignments shared by every
// point plus the swept axes in declaration order.
type Space struct {
	Fixed map[string]float64 `yaml:"fixed"`
	Axes  []Axis             `yaml:"axes"`
}
