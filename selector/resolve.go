package selector

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/lattiq/lattiq/lattice"
)

// rangeMargin widens the range boundary so bonds landing exactly at the
// requested range survive floating-point round-off.
const rangeMargin = 1e-9

// ResolvedSite is a SiteSelector bound to a concrete lattice: sublattice
// names are replaced by integer indices and site positions are reachable.
// Immutable and safe for concurrent reads.
type ResolvedSite struct {
	lat     *lattice.Lattice
	region  RegionFn
	sublats map[int]struct{} // nil = unconstrained
}

// Resolve binds the selector to lat. Sublattice names absent from lat are
// dropped silently; this is deliberate filtering, not an error.
// Returns ErrNilLattice when lat is nil.
func (s SiteSelector) Resolve(lat *lattice.Lattice) (*ResolvedSite, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	rs := &ResolvedSite{lat: lat, region: s.region}
	if len(s.sublats) > 0 {
		rs.sublats = make(map[int]struct{}, len(s.sublats))
		for _, name := range s.sublats {
			if idx, ok := lat.SublatIndex(name); ok {
				rs.sublats[idx] = struct{}{}
			}
		}
	}

	return rs, nil
}

// Match reports whether the candidate entry (row, col) with harmonic
// displacements dnRow, dnCol is an onsite entry accepted by the selector:
// the row and column must denote the exact same site in the same unit
// cell, and the optional region and sublattice constraints must hold.
// Out-of-range site indices never match.
func (rs *ResolvedSite) Match(row, col int, dnRow, dnCol []int) bool {
	if row != col || !equalInts(dnRow, dnCol) {
		return false
	}
	if rs.sublats != nil {
		sl, err := rs.lat.SublatOf(row)
		if err != nil {
			return false
		}
		if _, ok := rs.sublats[sl]; !ok {
			return false
		}
	}
	if rs.region != nil {
		pos, err := rs.lat.Position(row)
		if err != nil {
			return false
		}
		if !rs.region(pos) {
			return false
		}
	}

	return true
}

// ResolvedHop is a HopSelector bound to a concrete lattice.
// Immutable and safe for concurrent reads.
type ResolvedHop struct {
	lat      *lattice.Lattice
	region   HopRegionFn
	pairs    map[[2]int]struct{} // keyed (row-sublat, col-sublat); nil = unconstrained
	dcells   map[string]struct{} // keyed by dnKey; nil = unconstrained
	rng      float64
	hasRange bool
}

// Resolve binds the selector to lat. Pairs naming absent sublattices are
// dropped silently; displacement whitelist entries must have one component
// per Bravais vector (ErrDcellDim otherwise).
// Returns ErrNilLattice when lat is nil.
func (s HopSelector) Resolve(lat *lattice.Lattice) (*ResolvedHop, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	rh := &ResolvedHop{lat: lat, region: s.region, rng: s.rng, hasRange: s.hasRange}
	if len(s.pairs) > 0 {
		rh.pairs = make(map[[2]int]struct{}, len(s.pairs))
		for _, p := range s.pairs {
			src, okSrc := lat.SublatIndex(p[0])
			dst, okDst := lat.SublatIndex(p[1])
			if okSrc && okDst {
				// Stored as (destination, source) = (row sublat, col sublat).
				rh.pairs[[2]int{dst, src}] = struct{}{}
			}
		}
	}
	if len(s.dcells) > 0 {
		rh.dcells = make(map[string]struct{}, len(s.dcells))
		for _, dn := range s.dcells {
			if len(dn) != lat.NumVectors() {
				return nil, fmt.Errorf("displacement of length %d with %d vectors: %w",
					len(dn), lat.NumVectors(), ErrDcellDim)
			}
			rh.dcells[dnKey(dn)] = struct{}{}
		}
	}

	return rh, nil
}

// Match reports whether the hopping candidate — column site col to row
// site row displaced by the integer cell displacement dn — is accepted.
// The degenerate onsite case (same site, zero displacement) never matches.
func (rh *ResolvedHop) Match(row, col int, dn []int) bool {
	if row == col && allZero(dn) {
		return false
	}
	if rh.dcells != nil {
		if _, ok := rh.dcells[dnKey(dn)]; !ok {
			return false
		}
	}
	if rh.pairs != nil {
		slRow, errR := rh.lat.SublatOf(row)
		slCol, errC := rh.lat.SublatOf(col)
		if errR != nil || errC != nil {
			return false
		}
		if _, ok := rh.pairs[[2]int{slRow, slCol}]; !ok {
			return false
		}
	}
	if rh.hasRange || rh.region != nil {
		r, dr, err := rh.Bond(row, col, dn)
		if err != nil {
			return false
		}
		if rh.hasRange && floats.Norm(dr, 2) > rh.rng+rangeMargin*(1+rh.rng) {
			return false
		}
		if rh.region != nil && !rh.region(r, dr) {
			return false
		}
	}

	return true
}

// Bond returns the bond center r and bond vector dr of the candidate:
// dr = pos(row) + A·dn − pos(col), r = pos(col) + dr/2.
// This is the single bond convention used across the module.
func (rh *ResolvedHop) Bond(row, col int, dn []int) (r, dr []float64, err error) {
	posRow, err := rh.lat.Position(row)
	if err != nil {
		return nil, nil, err
	}
	posCol, err := rh.lat.Position(col)
	if err != nil {
		return nil, nil, err
	}
	shift, err := rh.lat.CellShift(dn)
	if err != nil {
		return nil, nil, err
	}
	dim := rh.lat.Dim()
	r = make([]float64, dim)
	dr = make([]float64, dim)
	for d := 0; d < dim; d++ {
		dr[d] = posRow[d] + shift[d] - posCol[d]
		r[d] = posCol[d] + dr[d]/2
	}

	return r, dr, nil
}

// dnKey encodes an integer displacement as a map key.
func dnKey(dn []int) string {
	var b strings.Builder
	for i, n := range dn {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// equalInts reports element-wise equality of two int slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// allZero reports whether every component of dn is zero.
func allZero(dn []int) bool {
	for _, n := range dn {
		if n != 0 {
			return false
		}
	}

	return true
}
