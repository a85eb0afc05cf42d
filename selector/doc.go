// Package selector implements the predicate language that decides which
// matrix entries of a tight-binding Hamiltonian participate in a rule.
//
// Two predicate kinds exist, one per entry kind:
//
//   - SiteSelector — matches onsite entries (a single site). Optional
//     constraints: a spatial region over the site position, and a set of
//     allowed sublattice names.
//   - HopSelector — matches hopping entries (an ordered pair of sites plus
//     an integer unit-cell displacement). Optional constraints: a region
//     over (bond center, bond vector), allowed sublattice-name pairs, a
//     whitelist of cell displacements, and a maximum hopping range.
//
// Every constraint left unset imposes nothing on its axis; selectors are
// built with functional options so "unconstrained" is the zero value, not
// a sentinel.
//
// Selectors are symbolic: they speak in sublattice names and raw
// displacement vectors. Before use they are resolved once against a
// concrete lattice.Lattice, turning names into integer indices and
// validating displacement dimensionality. The resolved forms
// (ResolvedSite, ResolvedHop) expose the pure Match predicates consumed
// by Hamiltonian assembly and by the parametric cache builder.
//
// Bond convention, used consistently everywhere: for a hopping entry at
// (row, col) in the harmonic displaced by dn, the bond vector points from
// the column site to the displaced row site,
//
//	dr = pos(row) + A·dn − pos(col),
//
// and the bond center is the midpoint r = pos(col) + dr/2.
package selector
