// SPDX-License-Identifier: MIT

// Package sparse provides compressed-sparse-column (CSC) matrices of
// complex128 values with a fixed nonzero layout.
//
// The layout (row indices + column pointers) is frozen at construction;
// only the nonzero values may change afterwards. This split is what makes
// cheap parametric re-evaluation possible upstream: a "slot" — the index
// of one stored value inside Vals() — stays valid for the lifetime of the
// matrix, so callers may cache slots and rewrite values in place.
//
// Construction goes through FromTriplets, which sorts column-major and
// merges duplicate coordinates by summation. SameLayout implements the
// structural-equality primitive used by consistency checks upstream.
package sparse
