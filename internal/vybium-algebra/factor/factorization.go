package factor

import (
	"fmt"
	"strings"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
)

// PolyFactor is a monic irreducible polynomial with its multiplicity
type PolyFactor[E core.Element[E]] struct {
	Poly         *core.Polynomial[E]
	Multiplicity int
}

// Factorization is Unit times the product of Poly^Multiplicity over
// Factors. Factors are monic, irreducible and pairwise distinct, sorted by
// degree and then by coefficients.
type Factorization[E core.Element[E]] struct {
	Unit    E
	Factors []PolyFactor[E]

	domain core.Domain[E]
}

// Domain returns the coefficient domain of the factors
func (f *Factorization[E]) Domain() core.Domain[E] {
	return f.domain
}

// Len returns the number of distinct irreducible factors
func (f *Factorization[E]) Len() int {
	return len(f.Factors)
}

// Degree returns the degree of the factored polynomial
func (f *Factorization[E]) Degree() int {
	degree := 0
	for _, factor := range f.Factors {
		degree += factor.Poly.Degree() * factor.Multiplicity
	}
	return degree
}

// Multiplicity returns how often g divides the factored polynomial, 0 if
// g is not one of the factors
func (f *Factorization[E]) Multiplicity(g *core.Polynomial[E]) int {
	for _, factor := range f.Factors {
		if factor.Poly.Equal(g) {
			return factor.Multiplicity
		}
	}
	return 0
}

// IsIrreducible reports whether the factored polynomial was irreducible
func (f *Factorization[E]) IsIrreducible() bool {
	return len(f.Factors) == 1 && f.Factors[0].Multiplicity == 1
}

// Product multiplies the factorization back together
func (f *Factorization[E]) Product() (*core.Polynomial[E], error) {
	polys := make([]*core.Polynomial[E], len(f.Factors))
	multiplicities := make([]int, len(f.Factors))
	for i, factor := range f.Factors {
		polys[i] = factor.Poly
		multiplicities[i] = factor.Multiplicity
	}
	return core.ProductOf(f.domain, f.Unit, polys, multiplicities)
}

// String formats the factorization as "2 * (x + 1)^2 * (x^2 + x + 1)"
func (f *Factorization[E]) String() string {
	terms := make([]string, 0, len(f.Factors)+1)
	if !f.Unit.IsOne() || len(f.Factors) == 0 {
		terms = append(terms, f.Unit.String())
	}
	for _, factor := range f.Factors {
		term := "(" + factor.Poly.String() + ")"
		if factor.Multiplicity > 1 {
			term += fmt.Sprintf("^%d", factor.Multiplicity)
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, " * ")
}
