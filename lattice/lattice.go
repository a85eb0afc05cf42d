package lattice

import "fmt"

// New constructs a Lattice from the given options.
// The spatial dimensionality is inferred from the first registered site
// position; every vector and position must share it.
// Returns ErrNoSites, ErrVectorDim, ErrTooManyVectors or ErrDuplicateSublat
// on malformed input.
// Complexity: O(sites + vectors).
func New(opts ...Option) (*Lattice, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	var total int
	for _, ps := range c.sites {
		total += len(ps)
	}
	if total == 0 {
		return nil, ErrNoSites
	}
	dim := len(c.sites[firstNonEmpty(c.sites)][0])
	if dim == 0 {
		return nil, fmt.Errorf("zero-dimensional site position: %w", ErrVectorDim)
	}
	if len(c.vectors) > dim {
		return nil, ErrTooManyVectors
	}
	for _, v := range c.vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("Bravais vector of length %d in %d dimensions: %w", len(v), dim, ErrVectorDim)
		}
	}

	lat := &Lattice{
		dim:       dim,
		vectors:   deepCopy(c.vectors),
		positions: make([][]float64, 0, total),
		sublatOf:  make([]int, 0, total),
		sublats:   make([]string, 0, len(c.names)),
	}
	seen := make(map[string]struct{}, len(c.names))
	for si, name := range c.names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("sublattice %q: %w", name, ErrDuplicateSublat)
		}
		seen[name] = struct{}{}
		lat.sublats = append(lat.sublats, name)
		for _, p := range c.sites[si] {
			if len(p) != dim {
				return nil, fmt.Errorf("site position of length %d in %d dimensions: %w", len(p), dim, ErrVectorDim)
			}
			cp := make([]float64, dim)
			copy(cp, p)
			lat.positions = append(lat.positions, cp)
			lat.sublatOf = append(lat.sublatOf, si)
		}
	}

	return lat, nil
}

// firstNonEmpty returns the index of the first sublattice holding a site.
// Callers guarantee total > 0.
func firstNonEmpty(sites [][][]float64) int {
	for i, ps := range sites {
		if len(ps) > 0 {
			return i
		}
	}
	return 0
}

// deepCopy clones a slice of float vectors.
func deepCopy(vs [][]float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = make([]float64, len(v))
		copy(out[i], v)
	}

	return out
}

// Dim returns the spatial dimensionality E.
// Complexity: O(1).
func (l *Lattice) Dim() int { return l.dim }

// NumSites returns the number of sites in the unit cell.
// Complexity: O(1).
func (l *Lattice) NumSites() int { return len(l.positions) }

// NumSublats returns the number of registered sublattices.
// Complexity: O(1).
func (l *Lattice) NumSublats() int { return len(l.sublats) }

// Sublats returns the sublattice names in registration order.
// The returned slice is a copy and safe to retain.
func (l *Lattice) Sublats() []string {
	out := make([]string, len(l.sublats))
	copy(out, l.sublats)

	return out
}

// Position returns the coordinate of site i.
// The returned slice aliases internal storage and must not be modified.
// Returns ErrSiteIndex for i outside [0, NumSites).
// Complexity: O(1).
func (l *Lattice) Position(i int) ([]float64, error) {
	if i < 0 || i >= len(l.positions) {
		return nil, fmt.Errorf("site %d of %d: %w", i, len(l.positions), ErrSiteIndex)
	}

	return l.positions[i], nil
}

// SublatOf returns the sublattice index of site i.
// Returns ErrSiteIndex for i outside [0, NumSites).
// Complexity: O(1).
func (l *Lattice) SublatOf(i int) (int, error) {
	if i < 0 || i >= len(l.sublatOf) {
		return 0, fmt.Errorf("site %d of %d: %w", i, len(l.sublatOf), ErrSiteIndex)
	}

	return l.sublatOf[i], nil
}

// SublatIndex resolves a sublattice name to its integer index.
// The second result reports whether the name exists; an unknown name is
// not an error at this layer (selector resolution drops it silently).
// Complexity: O(NumSublats).
func (l *Lattice) SublatIndex(name string) (int, bool) {
	for i, n := range l.sublats {
		if n == name {
			return i, true
		}
	}

	return 0, false
}

// NumVectors returns the number of Bravais vectors (periodic directions).
// Complexity: O(1).
func (l *Lattice) NumVectors() int { return len(l.vectors) }

// Vectors returns the Bravais vectors. The returned slices alias internal
// storage and must not be modified.
func (l *Lattice) Vectors() [][]float64 { return l.vectors }

// CellShift returns the Cartesian translation A·dn for the integer cell
// displacement dn, where A holds the Bravais vectors as columns.
// Returns ErrCellDim if len(dn) differs from NumVectors.
// Complexity: O(dim × NumVectors).
func (l *Lattice) CellShift(dn []int) ([]float64, error) {
	if len(dn) != len(l.vectors) {
		return nil, fmt.Errorf("displacement of length %d with %d vectors: %w", len(dn), len(l.vectors), ErrCellDim)
	}
	shift := make([]float64, l.dim)
	for vi, v := range l.vectors {
		if dn[vi] == 0 {
			continue
		}
		f := float64(dn[vi])
		for d := 0; d < l.dim; d++ {
			shift[d] += f * v[d]
		}
	}

	return shift, nil
}
