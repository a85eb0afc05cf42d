// SPDX-License-Identifier: MIT

package parametric

import "github.com/lattiq/lattiq/selector"

// Params assigns values to named parameters. Parameters are bound late:
// Evaluate validates the assignment against every modifier's declared
// names at call time, and each modifier's function receives only the
// subset it declared.
type Params map[string]float64

// Arity is the closed set of modifier function forms. It is fixed at
// construction and decides which geometric context gets cached per slot.
type Arity int

const (
	// ValueOnly: f(value, params). Uniform modifiers — smallest cache record.
	ValueOnly Arity = iota
	// ValuePosition: f(value, position, params). Onsite, position-dependent.
	ValuePosition
	// ValuePositionBond: f(value, bondCenter, bondVector, params). Hopping.
	ValuePositionBond
)

// OnsiteFn recomputes a selected onsite value from its current value.
type OnsiteFn func(o complex128, p Params) complex128

// OnsiteAtFn additionally receives the site position r.
type OnsiteAtFn func(o complex128, r []float64, p Params) complex128

// HoppingFn recomputes a selected hopping value from its current value.
type HoppingFn func(t complex128, p Params) complex128

// HoppingAtFn additionally receives the bond center r and bond vector dr
// (dr points from the column site to the displaced row site).
type HoppingAtFn func(t complex128, r, dr []float64, p Params) complex128

// Modifier is a named-parameter rule: a selector choosing entries plus an
// arity-tagged function recomputing them. Build one with Onsite, OnsiteAt,
// Hopping or HoppingAt; the constructor fixes kind and arity for good.
type Modifier struct {
	arity  Arity
	onsite bool
	names  []string // declared parameter names, ordered, deduplicated
	site   selector.SiteSelector
	hop    selector.HopSelector
	fnV    func(complex128, Params) complex128
	fnR    func(complex128, []float64, Params) complex128
	fnRDR  func(complex128, []float64, []float64, Params) complex128
}

// Onsite builds a uniform onsite modifier applying fn wherever the site
// selector built from opts matches.
func Onsite(fn OnsiteFn, paramNames []string, opts ...selector.SiteOption) *Modifier {
	return &Modifier{
		arity:  ValueOnly,
		onsite: true,
		names:  dedupe(paramNames),
		site:   selector.Sites(opts...),
		fnV:    fn,
	}
}

// OnsiteAt builds a position-dependent onsite modifier.
func OnsiteAt(fn OnsiteAtFn, paramNames []string, opts ...selector.SiteOption) *Modifier {
	return &Modifier{
		arity:  ValuePosition,
		onsite: true,
		names:  dedupe(paramNames),
		site:   selector.Sites(opts...),
		fnR:    fn,
	}
}

// Hopping builds a uniform hopping modifier applying fn wherever the hop
// selector built from opts matches.
func Hopping(fn HoppingFn, paramNames []string, opts ...selector.HopOption) *Modifier {
	return &Modifier{
		arity: ValueOnly,
		names: dedupe(paramNames),
		hop:   selector.Hops(opts...),
		fnV:   fn,
	}
}

// HoppingAt builds a bond-dependent hopping modifier.
func HoppingAt(fn HoppingAtFn, paramNames []string, opts ...selector.HopOption) *Modifier {
	return &Modifier{
		arity: ValuePositionBond,
		names: dedupe(paramNames),
		hop:   selector.Hops(opts...),
		fnRDR: fn,
	}
}

// ParameterNames returns the modifier's declared names in declaration
// order. The returned slice is a copy.
func (m *Modifier) ParameterNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// hasFunc reports whether the constructor received a non-nil function.
func (m *Modifier) hasFunc() bool {
	switch m.arity {
	case ValuePosition:
		return m.fnR != nil
	case ValuePositionBond:
		return m.fnRDR != nil
	default:
		return m.fnV != nil
	}
}

// dedupe keeps the first occurrence of each name, preserving order.
func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
