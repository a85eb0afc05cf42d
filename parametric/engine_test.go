// SPDX-License-Identifier: MIT

package parametric_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattiq/lattiq/ham"
	"github.com/lattiq/lattiq/lattice"
	"github.com/lattiq/lattiq/parametric"
	"github.com/lattiq/lattiq/selector"
)

// diagonalChain returns a 3-site finite chain whose Hamiltonian is the
// 3×3 diagonal matrix diag(1,1,1) — the canonical scenario fixture.
func diagonalChain(t *testing.T) *ham.Hamiltonian {
	t.Helper()
	lat, err := lattice.Chain(3)
	require.NoError(t, err)
	h, err := ham.Build(lat, []ham.Term{ham.Onsite(1)}, ham.WithCellRadius(0))
	require.NoError(t, err)
	require.Equal(t, 1, h.NumHarmonics())
	require.Equal(t, 3, h.NNZ())

	return h
}

// muShift is the uniform onsite modifier f(o; mu) = o − mu over all sites.
func muShift() *parametric.Modifier {
	return parametric.Onsite(func(o complex128, p parametric.Params) complex128 {
		return o - complex(p["mu"], 0)
	}, []string{"mu"})
}

func diag(t *testing.T, h *ham.Hamiltonian) []complex128 {
	t.Helper()
	m := h.Harmonics()[0].Mat
	out := make([]complex128, m.Rows())
	for i := range out {
		v, err := m.At(i, i)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

//----------------------------------------------------------------------------//
// Scenario: uniform onsite shift with restoration
//----------------------------------------------------------------------------//

func TestEvaluate_OnsiteShiftAndRestore(t *testing.T) {
	ph, err := parametric.New(diagonalChain(t), muShift())
	require.NoError(t, err)

	out, err := ph.Evaluate(parametric.Params{"mu": 2})
	require.NoError(t, err)
	require.Equal(t, []complex128{-1, -1, -1}, diag(t, out))

	out, err = ph.Evaluate(parametric.Params{"mu": 0})
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 1, 1}, diag(t, out), "baseline restored at mu=0")
}

func TestEvaluate_Idempotent(t *testing.T) {
	ph, err := parametric.New(diagonalChain(t), muShift())
	require.NoError(t, err)

	first, err := ph.Evaluate(parametric.Params{"mu": 0.7})
	require.NoError(t, err)
	snapshot := first.Clone()

	second, err := ph.Evaluate(parametric.Params{"mu": 0.7})
	require.NoError(t, err)
	for h, hm := range second.Harmonics() {
		require.Equal(t, snapshot.Harmonics()[h].Mat.Vals(), hm.Mat.Vals())
	}
}

//----------------------------------------------------------------------------//
// Baseline outside the touched set
//----------------------------------------------------------------------------//

// TestEvaluate_UntouchedSlotsKeepBaseline applies an onsite-only modifier
// to a model that also has hoppings; the hopping entries must stay at
// their baseline value through repeated evaluations.
func TestEvaluate_UntouchedSlotsKeepBaseline(t *testing.T) {
	lat, err := lattice.Chain(3)
	require.NoError(t, err)
	h, err := ham.Build(lat, []ham.Term{
		ham.Onsite(1),
		ham.Hopping(-1, selector.WithRange(1)),
	})
	require.NoError(t, err)

	ph, err := parametric.New(h, muShift())
	require.NoError(t, err)

	for _, mu := range []float64{3, -1, 0.25} {
		out, err := ph.Evaluate(parametric.Params{"mu": mu})
		require.NoError(t, err)
		v, err := out.Harmonics()[0].Mat.At(0, 1)
		require.NoError(t, err)
		require.Equal(t, complex128(-1), v, "hopping untouched at mu=%v", mu)
		d, err := out.Harmonics()[0].Mat.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, complex(1-mu, 0), d)
	}
}

//----------------------------------------------------------------------------//
// Sequential composition
//----------------------------------------------------------------------------//

// TestEvaluate_CompositionOrder uses the non-commuting pair x→2x, x→x+1:
// modifiers compose sequentially in construction order, not from baseline.
func TestEvaluate_CompositionOrder(t *testing.T) {
	double := parametric.Onsite(func(o complex128, _ parametric.Params) complex128 {
		return 2 * o
	}, nil)
	increment := parametric.Onsite(func(o complex128, _ parametric.Params) complex128 {
		return o + 1
	}, nil)

	ph, err := parametric.New(diagonalChain(t), double, increment)
	require.NoError(t, err)
	out, err := ph.Evaluate(parametric.Params{})
	require.NoError(t, err)
	require.Equal(t, []complex128{3, 3, 3}, diag(t, out), "2·1 then +1")

	swapped, err := parametric.New(diagonalChain(t), increment, double)
	require.NoError(t, err)
	out, err = swapped.Evaluate(parametric.Params{})
	require.NoError(t, err)
	require.Equal(t, []complex128{4, 4, 4}, diag(t, out), "1+1 then ·2")
}

// TestEvaluate_DisjointModifiersOrderIndependent: two modifiers with
// disjoint targets give the same result in either order, and the touched
// set is exactly the union of both caches.
func TestEvaluate_DisjointModifiersOrderIndependent(t *testing.T) {
	lat, err := lattice.Chain(3)
	require.NoError(t, err)
	build := func() *ham.Hamiltonian {
		h, err := ham.Build(lat, []ham.Term{
			ham.Onsite(1),
			ham.Hopping(-1, selector.WithRange(1)),
		}, ham.WithCellRadius(0))
		require.NoError(t, err)

		return h
	}

	onsite := muShift()
	hop := parametric.Hopping(func(tv complex128, p parametric.Params) complex128 {
		return tv * complex(p["s"], 0)
	}, []string{"s"})
	p := parametric.Params{"mu": 2, "s": 3}

	ph1, err := parametric.New(build(), onsite, hop)
	require.NoError(t, err)
	out1, err := ph1.Evaluate(p)
	require.NoError(t, err)

	ph2, err := parametric.New(build(), hop, onsite)
	require.NoError(t, err)
	out2, err := ph2.Evaluate(p)
	require.NoError(t, err)

	require.Equal(t, out1.Harmonics()[0].Mat.Vals(), out2.Harmonics()[0].Mat.Vals())

	// dn=0 block stores 3 diagonal + 4 hopping entries; all are touched.
	require.Len(t, ph1.TouchedSlots(0), 7)
	require.Equal(t, ph1.TouchedSlots(0), ph2.TouchedSlots(0))
}

//----------------------------------------------------------------------------//
// Hopping modifiers with cached bond context
//----------------------------------------------------------------------------//

// TestEvaluate_PeierlsPhase applies f(t, r, dr; α) = t·exp(iα·dr_x) to a
// single-site chain: opposite harmonics pick up opposite phases because
// dr flips sign between them.
func TestEvaluate_PeierlsPhase(t *testing.T) {
	lat, err := lattice.Chain(1)
	require.NoError(t, err)
	h, err := ham.Build(lat, []ham.Term{ham.Hopping(1, selector.WithRange(1))})
	require.NoError(t, err)
	require.Equal(t, 2, h.NumHarmonics()) // dn = −1 and dn = +1

	phase := parametric.HoppingAt(func(tv complex128, _, dr []float64, p parametric.Params) complex128 {
		return tv * cmplx.Exp(complex(0, p["alpha"]*dr[0]))
	}, []string{"alpha"})

	ph, err := parametric.New(h, phase)
	require.NoError(t, err)

	alpha := 0.4
	out, err := ph.Evaluate(parametric.Params{"alpha": alpha})
	require.NoError(t, err)

	var forward, backward complex128
	for _, hm := range out.Harmonics() {
		v, err := hm.Mat.At(0, 0)
		require.NoError(t, err)
		if hm.Dn[0] == 1 {
			forward = v
		} else {
			backward = v
		}
	}
	require.InDelta(t, 0, cmplx.Abs(forward-cmplx.Exp(complex(0, alpha))), 1e-12)
	require.InDelta(t, 0, cmplx.Abs(backward-cmplx.Exp(complex(0, -alpha))), 1e-12)
	require.InDelta(t, 0, cmplx.Abs(forward-cmplx.Conj(backward)), 1e-12, "phases must be conjugate")
}

// TestEvaluate_RangeSelectsOnlyNearest: a range-1 hopping modifier must
// rescale nearest-neighbour entries and leave longer stored bonds alone.
func TestEvaluate_RangeSelectsOnlyNearest(t *testing.T) {
	lat, err := lattice.Chain(3)
	require.NoError(t, err)
	h, err := ham.Build(lat, []ham.Term{
		ham.Hopping(-1, selector.WithRange(2)), // stores NN and NNN bonds
	}, ham.WithCellRadius(0))
	require.NoError(t, err)

	kill := parametric.Hopping(func(complex128, parametric.Params) complex128 {
		return 0
	}, nil, selector.WithRange(1))

	ph, err := parametric.New(h, kill)
	require.NoError(t, err)
	out, err := ph.Evaluate(parametric.Params{})
	require.NoError(t, err)

	m := out.Harmonics()[0].Mat
	nn, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(0), nn, "|dr|=1 rescaled")
	nnn, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, complex128(-1), nnn, "|dr|=2 outside modifier range")
}

//----------------------------------------------------------------------------//
// Parameters
//----------------------------------------------------------------------------//

func TestEvaluate_MissingParam(t *testing.T) {
	ph, err := parametric.New(diagonalChain(t), muShift())
	require.NoError(t, err)

	_, err = ph.Evaluate(parametric.Params{})
	require.ErrorIs(t, err, parametric.ErrMissingParam)

	// The instance stays usable for a corrected call.
	out, err := ph.Evaluate(parametric.Params{"mu": 1})
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0, 0}, diag(t, out))
}

func TestParameterNames_MergedInOrder(t *testing.T) {
	m1 := parametric.Onsite(func(o complex128, _ parametric.Params) complex128 { return o },
		[]string{"mu", "beta"})
	m2 := parametric.Hopping(func(tv complex128, _ parametric.Params) complex128 { return tv },
		[]string{"beta", "alpha"})

	ph, err := parametric.New(diagonalChain(t), m1, m2)
	require.NoError(t, err)
	require.Equal(t, []string{"mu", "beta", "alpha"}, ph.ParameterNames())
}

//----------------------------------------------------------------------------//
// Construction errors and edge cases
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	_, err := parametric.New(nil, muShift())
	require.ErrorIs(t, err, parametric.ErrNilHamiltonian)

	_, err = parametric.New(diagonalChain(t), nil)
	require.ErrorIs(t, err, parametric.ErrNilModifier)

	_, err = parametric.New(diagonalChain(t), parametric.Onsite(nil, nil))
	require.ErrorIs(t, err, parametric.ErrNilFunc)

	bad := parametric.Hopping(func(tv complex128, _ parametric.Params) complex128 { return tv },
		nil, selector.WithDcells([]int{0, 0}))
	_, err = parametric.New(diagonalChain(t), bad)
	require.ErrorIs(t, err, selector.ErrDcellDim)
}

// TestNew_EmptyCacheIsLegal: a selector matching nothing is not an error;
// Evaluate just returns the baseline.
func TestNew_EmptyCacheIsLegal(t *testing.T) {
	nowhere := parametric.Onsite(func(o complex128, _ parametric.Params) complex128 {
		return o + 99
	}, nil, selector.WithSublats("ghost"))

	ph, err := parametric.New(diagonalChain(t), nowhere)
	require.NoError(t, err)
	require.Empty(t, ph.TouchedSlots(0))

	out, err := ph.Evaluate(parametric.Params{})
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 1, 1}, diag(t, out))
}

//----------------------------------------------------------------------------//
// Copy
//----------------------------------------------------------------------------//

func TestCopy_IndependentMatrices(t *testing.T) {
	ph, err := parametric.New(diagonalChain(t), muShift())
	require.NoError(t, err)

	cp := ph.Copy()
	outCp, err := cp.Evaluate(parametric.Params{"mu": 5})
	require.NoError(t, err)
	require.Equal(t, []complex128{-4, -4, -4}, diag(t, outCp))

	out, err := ph.Evaluate(parametric.Params{"mu": 0})
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 1, 1}, diag(t, out), "original unaffected by copy's evaluate")
	require.Equal(t, ph.ParameterNames(), cp.ParameterNames())
}
