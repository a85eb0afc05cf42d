// Package selector: selector kinds, functional options, sentinel errors.
package selector

import "errors"

// Sentinel errors for selector resolution.
var (
	// ErrNilLattice indicates resolution against a nil lattice.
	ErrNilLattice = errors.New("selector: lattice is nil")

	// ErrDcellDim indicates a cell-displacement whitelist entry whose length
	// differs from the lattice's number of Bravais vectors.
	ErrDcellDim = errors.New("selector: cell displacement dimensionality mismatch")
)

// RegionFn accepts or rejects a site position.
type RegionFn func(r []float64) bool

// HopRegionFn accepts or rejects a bond by its center r and vector dr.
type HopRegionFn func(r, dr []float64) bool

// SiteSelector is a symbolic predicate over onsite entries.
// The zero value (or Sites() with no options) matches every site.
type SiteSelector struct {
	region  RegionFn
	sublats []string
}

// SiteOption configures a SiteSelector.
type SiteOption func(*SiteSelector)

// WithRegion keeps only sites whose position satisfies f.
func WithRegion(f RegionFn) SiteOption {
	return func(s *SiteSelector) { s.region = f }
}

// WithSublats keeps only sites belonging to one of the named sublattices.
// Names absent from the lattice are dropped silently during resolution;
// naming only absent sublattices yields a selector that matches nothing.
func WithSublats(names ...string) SiteOption {
	return func(s *SiteSelector) { s.sublats = append(s.sublats, names...) }
}

// Sites builds a SiteSelector from options.
func Sites(opts ...SiteOption) SiteSelector {
	var s SiteSelector
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// HopSelector is a symbolic predicate over hopping entries.
// The zero value (or Hops() with no options) matches every hopping.
type HopSelector struct {
	region   HopRegionFn
	pairs    [][2]string
	dcells   [][]int
	rng      float64
	hasRange bool
}

// HopOption configures a HopSelector.
type HopOption func(*HopSelector)

// WithHopRegion keeps only bonds whose (center, vector) satisfy f.
func WithHopRegion(f HopRegionFn) HopOption {
	return func(s *HopSelector) { s.region = f }
}

// WithPairs keeps only hops between the named sublattice pairs, given as
// (source, destination): the amplitude at (row, col) hops from the column
// site (source) to the row site (destination). Pairs naming an absent
// sublattice are dropped silently during resolution.
func WithPairs(pairs ...[2]string) HopOption {
	return func(s *HopSelector) { s.pairs = append(s.pairs, pairs...) }
}

// WithDcells keeps only hops whose integer cell displacement is listed.
// Each displacement must have one entry per Bravais vector; resolution
// fails with ErrDcellDim otherwise.
func WithDcells(dns ...[]int) HopOption {
	return func(s *HopSelector) { s.dcells = append(s.dcells, dns...) }
}

// WithRange keeps only bonds with Euclidean length ≤ rho. The boundary is
// widened by a small epsilon so hops landing exactly at rho survive
// floating-point round-off.
func WithRange(rho float64) HopOption {
	return func(s *HopSelector) { s.rng, s.hasRange = rho, true }
}

// Hops builds a HopSelector from options.
func Hops(opts ...HopOption) HopSelector {
	var s HopSelector
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
