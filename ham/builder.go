package ham

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lattiq/lattiq/lattice"
	"github.com/lattiq/lattiq/selector"
	"github.com/lattiq/lattiq/sparse"
)

// defaultCellRadius bounds the cell displacements searched by Build:
// every dn with components in [-radius, radius] is a candidate. Radius 1
// covers nearest and next-nearest neighbours on all bundled lattices.
const defaultCellRadius = 1

// Term is one declarative contribution to a base Hamiltonian: a constant
// amplitude applied to every entry accepted by its selector.
type Term struct {
	onsite bool
	value  complex128
	site   selector.SiteSelector
	hop    selector.HopSelector
}

// Onsite contributes v to the diagonal entries selected by opts.
func Onsite(v complex128, opts ...selector.SiteOption) Term {
	return Term{onsite: true, value: v, site: selector.Sites(opts...)}
}

// Hopping contributes v to the hopping entries selected by opts.
func Hopping(v complex128, opts ...selector.HopOption) Term {
	return Term{value: v, hop: selector.Hops(opts...)}
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	cellRadius int
}

// WithCellRadius widens the displacement search to components in
// [-radius, radius]. Radius 0 restricts the Hamiltonian to the dn = 0
// block (a finite system).
func WithCellRadius(radius int) BuildOption {
	return func(c *buildConfig) { c.cellRadius = radius }
}

// Build assembles a base Hamiltonian from terms over lat.
//
// Candidate displacements are enumerated within the cell radius, dn = 0
// first and the remainder in lexicographic order; a harmonic is emitted
// only when some term produced an entry for it. Amplitudes of terms
// hitting the same entry accumulate by summation.
// Returns ErrNilLattice, ErrNoTerms, ErrCellRadius, ErrNoHarmonics, or a
// selector resolution error.
// Complexity: O(candidates × NumSites² × terms) — construction only.
func Build(lat *lattice.Lattice, terms []Term, opts ...BuildOption) (*Hamiltonian, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	cfg := buildConfig{cellRadius: defaultCellRadius}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cellRadius < 0 {
		return nil, fmt.Errorf("radius %d: %w", cfg.cellRadius, ErrCellRadius)
	}

	sites := make([]*selector.ResolvedSite, 0, len(terms))
	hops := make([]*selector.ResolvedHop, 0, len(terms))
	for _, t := range terms {
		if t.onsite {
			rs, err := t.site.Resolve(lat)
			if err != nil {
				return nil, err
			}
			sites = append(sites, rs)
			hops = append(hops, nil)
			continue
		}
		rh, err := t.hop.Resolve(lat)
		if err != nil {
			return nil, err
		}
		sites = append(sites, nil)
		hops = append(hops, rh)
	}

	n := lat.NumSites()
	zero := make([]int, lat.NumVectors())
	var harms []Harmonic
	for _, dn := range candidateCells(lat.NumVectors(), cfg.cellRadius) {
		var entries []sparse.Triplet
		for ti, t := range terms {
			switch {
			case t.onsite && allZero(dn):
				for i := 0; i < n; i++ {
					if sites[ti].Match(i, i, zero, zero) {
						entries = append(entries, sparse.Triplet{Row: i, Col: i, Val: t.value})
					}
				}
			case !t.onsite:
				for j := 0; j < n; j++ {
					for i := 0; i < n; i++ {
						if hops[ti].Match(i, j, dn) {
							entries = append(entries, sparse.Triplet{Row: i, Col: j, Val: t.value})
						}
					}
				}
			}
		}
		if len(entries) == 0 {
			continue
		}
		m, err := sparse.FromTriplets(n, n, entries)
		if err != nil {
			return nil, err
		}
		tag := make([]int, len(dn))
		copy(tag, dn)
		harms = append(harms, Harmonic{Dn: tag, Mat: m})
	}
	if len(harms) == 0 {
		return nil, ErrNoHarmonics
	}

	return &Hamiltonian{lat: lat, harms: harms}, nil
}

// candidateCells lists every displacement with components in
// [-radius, radius], the zero displacement first and the rest in
// lexicographic order.
func candidateCells(vectors, radius int) [][]int {
	if vectors == 0 {
		return [][]int{{}}
	}
	var all [][]int
	current := make([]int, vectors)
	var walk func(d int)
	walk = func(d int) {
		if d == vectors {
			dn := make([]int, vectors)
			copy(dn, current)
			all = append(all, dn)
			return
		}
		for v := -radius; v <= radius; v++ {
			current[d] = v
			walk(d + 1)
		}
	}
	walk(0)

	ordered := make([][]int, 0, len(all))
	for _, dn := range all {
		if allZero(dn) {
			ordered = append(ordered, dn)
		}
	}
	for _, dn := range all {
		if !allZero(dn) {
			ordered = append(ordered, dn)
		}
	}

	return ordered
}

// allZero reports whether every component of dn is zero.
func allZero(dn []int) bool {
	for _, v := range dn {
		if v != 0 {
			return false
		}
	}

	return true
}

// dnKey encodes a displacement as a map key for duplicate detection.
func dnKey(dn []int) string {
	var b strings.Builder
	for i, v := range dn {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
