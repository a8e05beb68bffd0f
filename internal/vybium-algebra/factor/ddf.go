package factor

import (
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// DegreeFactor is the product of all irreducible factors of one degree
type DegreeFactor struct {
	Poly   *core.FFPoly
	Degree int
}

// Count returns the number of irreducible factors in the product
func (d DegreeFactor) Count() int {
	return d.Poly.Degree() / d.Degree
}

// DistinctDegree groups the irreducible factors of a monic square-free
// polynomial f by degree. The product of irreducibles of degree d divides
// x^(q^d) - x, so gcd(f, x^(q^d) - x) isolates it once smaller degrees
// have been divided out.
func DistinctDegree(f *core.FFPoly) ([]DegreeFactor, error) {
	if f.IsZero() || !f.IsMonic() {
		return nil, utils.Errorf(utils.ErrDomain, "distinct-degree splitting expects a monic polynomial, got %s", f)
	}
	field := core.FieldOf(f)
	if field == nil {
		return nil, utils.Errorf(utils.ErrDomain, "distinct-degree splitting needs a finite field, got %s", f.Domain())
	}
	q := field.Order()

	x := core.X[*core.FiniteFieldElement](field).WithVariable(f.Variable())
	var groups []DegreeFactor

	rest := f
	h := x
	for d := 1; rest.Degree() >= 2*d; d++ {
		var err error
		// h = x^(q^d) mod rest
		if h, err = h.PowMod(q, rest); err != nil {
			return nil, err
		}
		diff, err := h.Sub(x)
		if err != nil {
			return nil, err
		}
		g, err := rest.GCD(diff)
		if err != nil {
			return nil, err
		}
		if g.IsOne() {
			continue
		}

		groups = append(groups, DegreeFactor{Poly: g, Degree: d})
		if rest, err = rest.Quo(g); err != nil {
			return nil, err
		}
		if h, err = h.Rem(rest); err != nil {
			return nil, err
		}
	}

	if rest.Degree() > 0 {
		groups = append(groups, DegreeFactor{Poly: rest, Degree: rest.Degree()})
	}
	return groups, nil
}
