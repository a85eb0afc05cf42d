package lattice_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lattiq/lattiq/lattice"
)

//----------------------------------------------------------------------------//
// Construction tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed geometry.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []lattice.Option
		err  error
	}{
		{"NoSites", nil, lattice.ErrNoSites},
		{"NoSitesEmptySublat", []lattice.Option{lattice.WithSublat("A")}, lattice.ErrNoSites},
		{"VectorDim", []lattice.Option{
			lattice.WithVectors([]float64{1, 0, 0}),
			lattice.WithSublat("A", []float64{0, 0}),
		}, lattice.ErrVectorDim},
		{"PositionDim", []lattice.Option{
			lattice.WithVectors([]float64{1, 0}),
			lattice.WithSublat("A", []float64{0, 0}, []float64{1}),
		}, lattice.ErrVectorDim},
		{"TooManyVectors", []lattice.Option{
			lattice.WithVectors([]float64{1}, []float64{2}),
			lattice.WithSublat("A", []float64{0}),
		}, lattice.ErrTooManyVectors},
		{"DuplicateSublat", []lattice.Option{
			lattice.WithSublat("A", []float64{0}),
			lattice.WithSublat("A", []float64{1}),
		}, lattice.ErrDuplicateSublat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.New(tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_Accessors checks indices, names and positions on a two-sublattice cell.
func TestNew_Accessors(t *testing.T) {
	lat, err := lattice.New(
		lattice.WithVectors([]float64{2, 0}, []float64{0, 2}),
		lattice.WithSublat("A", []float64{0, 0}, []float64{1, 0}),
		lattice.WithSublat("B", []float64{0.5, 0.5}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := lat.Dim(); got != 2 {
		t.Errorf("Dim()=%d; want 2", got)
	}
	if got := lat.NumSites(); got != 3 {
		t.Errorf("NumSites()=%d; want 3", got)
	}
	if got := lat.NumSublats(); got != 2 {
		t.Errorf("NumSublats()=%d; want 2", got)
	}
	if got := lat.Sublats(); got[0] != "A" || got[1] != "B" {
		t.Errorf("Sublats()=%v; want [A B]", got)
	}

	sl, err := lat.SublatOf(2)
	if err != nil || sl != 1 {
		t.Errorf("SublatOf(2)=(%d,%v); want (1,nil)", sl, err)
	}
	if _, err = lat.SublatOf(3); !errors.Is(err, lattice.ErrSiteIndex) {
		t.Errorf("SublatOf(3) error = %v; want ErrSiteIndex", err)
	}

	p, err := lat.Position(1)
	if err != nil || p[0] != 1 || p[1] != 0 {
		t.Errorf("Position(1)=(%v,%v); want ([1 0],nil)", p, err)
	}
	if _, err = lat.Position(-1); !errors.Is(err, lattice.ErrSiteIndex) {
		t.Errorf("Position(-1) error = %v; want ErrSiteIndex", err)
	}

	if idx, ok := lat.SublatIndex("B"); !ok || idx != 1 {
		t.Errorf("SublatIndex(B)=(%d,%v); want (1,true)", idx, ok)
	}
	if _, ok := lat.SublatIndex("C"); ok {
		t.Error("SublatIndex(C) ok=true; want false")
	}
}

// TestCellShift verifies A·dn for a rectangular lattice and rejects
// mismatched displacement lengths.
func TestCellShift(t *testing.T) {
	lat, err := lattice.New(
		lattice.WithVectors([]float64{2, 0}, []float64{0, 3}),
		lattice.WithSublat("A", []float64{0, 0}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	shift, err := lat.CellShift([]int{1, -2})
	if err != nil {
		t.Fatalf("CellShift error: %v", err)
	}
	if shift[0] != 2 || shift[1] != -6 {
		t.Errorf("CellShift(1,-2)=%v; want [2 -6]", shift)
	}

	if _, err = lat.CellShift([]int{1}); !errors.Is(err, lattice.ErrCellDim) {
		t.Errorf("CellShift short dn error = %v; want ErrCellDim", err)
	}
}

//----------------------------------------------------------------------------//
// Builder tests
//----------------------------------------------------------------------------//

// TestChain checks positions and periodicity of the n-site chain.
func TestChain(t *testing.T) {
	lat, err := lattice.Chain(3)
	if err != nil {
		t.Fatalf("Chain error: %v", err)
	}
	if lat.Dim() != 1 || lat.NumSites() != 3 || lat.NumVectors() != 1 {
		t.Fatalf("Chain(3): dim=%d sites=%d vectors=%d", lat.Dim(), lat.NumSites(), lat.NumVectors())
	}
	for i := 0; i < 3; i++ {
		p, _ := lat.Position(i)
		if p[0] != float64(i) {
			t.Errorf("Position(%d)=%v; want [%d]", i, p, i)
		}
	}
	shift, _ := lat.CellShift([]int{1})
	if shift[0] != 3 {
		t.Errorf("CellShift(1)=%v; want [3]", shift)
	}
}

// TestSquare checks row-major site order on a 2×2 cell.
func TestSquare(t *testing.T) {
	lat, err := lattice.Square(2, 2)
	if err != nil {
		t.Fatalf("Square error: %v", err)
	}
	want := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, w := range want {
		p, _ := lat.Position(i)
		if p[0] != w[0] || p[1] != w[1] {
			t.Errorf("Position(%d)=%v; want %v", i, p, w)
		}
	}
}

// TestHoneycomb checks sublattice naming and the nearest-neighbour distance.
func TestHoneycomb(t *testing.T) {
	lat, err := lattice.Honeycomb(1)
	if err != nil {
		t.Fatalf("Honeycomb error: %v", err)
	}
	if lat.NumSublats() != 2 || lat.NumSites() != 2 {
		t.Fatalf("Honeycomb: sublats=%d sites=%d", lat.NumSublats(), lat.NumSites())
	}
	pa, _ := lat.Position(0)
	pb, _ := lat.Position(1)
	d := math.Hypot(pb[0]-pa[0], pb[1]-pa[1])
	want := 1 / math.Sqrt(3)
	if math.Abs(d-want) > 1e-12 {
		t.Errorf("A-B distance = %v; want %v", d, want)
	}
}
