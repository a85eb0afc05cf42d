// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set. All public entry points return these
// sentinels (possibly wrapped with fmt.Errorf("…: %w", Err)); tests match
// them via errors.Is. No public API panics on user input.

package sparse

import "errors"

var (
	// ErrBadShape is returned for a requested shape with rows ≤ 0 or cols ≤ 0.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")
)
