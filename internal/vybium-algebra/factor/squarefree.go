package factor

import (
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// SquareFree splits a monic polynomial f into pairwise coprime square-free
// parts, f = prod Poly^Multiplicity. Parts equal to 1 are omitted.
//
// Repeated factors of multiplicity divisible by the characteristic p leave
// a remainder with zero derivative; that remainder is a p-th power and is
// decomposed recursively after taking the p-th root.
func SquareFree(f *core.FFPoly) ([]PolyFactor[*core.FiniteFieldElement], error) {
	if f.IsZero() {
		return nil, utils.Errorf(utils.ErrDomain, "cannot decompose the zero polynomial")
	}
	if !f.IsMonic() {
		return nil, utils.Errorf(utils.ErrDomain, "square-free decomposition expects a monic polynomial, got %s", f)
	}
	if f.Degree() == 0 {
		return nil, nil
	}

	field := core.FieldOf(f)
	if field == nil {
		return nil, utils.Errorf(utils.ErrDomain, "square-free decomposition needs a finite field, got %s", f.Domain())
	}
	p := int(field.Characteristic().Int64())

	var parts []PolyFactor[*core.FiniteFieldElement]

	c, err := f.GCD(f.Derivative())
	if err != nil {
		return nil, err
	}
	w, err := f.Quo(c)
	if err != nil {
		return nil, err
	}

	// w collects the factors not yet exhausted in c
	for i := 1; !w.IsOne(); i++ {
		y, err := w.GCD(c)
		if err != nil {
			return nil, err
		}
		part, err := w.Quo(y)
		if err != nil {
			return nil, err
		}
		if !part.IsOne() {
			parts = append(parts, PolyFactor[*core.FiniteFieldElement]{Poly: part, Multiplicity: i})
		}
		if c, err = c.Quo(y); err != nil {
			return nil, err
		}
		w = y
	}

	if c.IsOne() {
		return parts, nil
	}

	root, err := core.FrobeniusRoot(c)
	if err != nil {
		return nil, err
	}
	rootParts, err := SquareFree(root)
	if err != nil {
		return nil, err
	}
	for _, part := range rootParts {
		part.Multiplicity *= p
		parts = append(parts, part)
	}
	return parts, nil
}
