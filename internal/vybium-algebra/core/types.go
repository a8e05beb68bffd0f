package core

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// PFPoly is a polynomial over a prime field
type PFPoly = Polynomial[*PrimeFieldElement]

// FFPoly is a polynomial over a finite field extension
type FFPoly = Polynomial[*FiniteFieldElement]

// IntPoly is a polynomial over the integers
type IntPoly = Polynomial[*Integer]

// GaussianPoly is a polynomial over the Gaussian integers
type GaussianPoly = Polynomial[*GaussianInteger]

// NewPFPoly creates a polynomial over field from ascending integer coefficients
func NewPFPoly(field *PrimeField, coefficients []int64) *PFPoly {
	return NewPolynomialFromInt64[*PrimeFieldElement](field, coefficients)
}

// NewFFPoly creates a polynomial over field
func NewFFPoly(field *FiniteField, coefficients []*FiniteFieldElement) (*FFPoly, error) {
	return NewPolynomial[*FiniteFieldElement](field, coefficients)
}

// NewIntPoly creates an integer polynomial from ascending coefficients
func NewIntPoly(coefficients []int64) *IntPoly {
	return NewPolynomialFromInt64[*Integer](ZZ, coefficients)
}

// LiftToExtension embeds a prime field polynomial into an extension of the
// same characteristic
func LiftToExtension(p *PFPoly, field *FiniteField) (*FFPoly, error) {
	return Convert[*PrimeFieldElement, *FiniteFieldElement](p, field)
}

// DemoteToPrimeField maps an extension polynomial with prime subfield
// coefficients back to the prime field
func DemoteToPrimeField(p *FFPoly, field *PrimeField) (*PFPoly, error) {
	return Convert[*FiniteFieldElement, *PrimeFieldElement](p, field)
}

// FrobeniusRoot returns g with g^p = f for f whose exponents are all
// multiples of the characteristic p, which is exactly when f' = 0.
func FrobeniusRoot(f *FFPoly) (*FFPoly, error) {
	field, ok := f.domain.(*FiniteField)
	if !ok {
		return nil, utils.Errorf(utils.ErrDomain, "p-th roots need a finite field, got %s", f.domain)
	}
	if f.IsZero() {
		return f, nil
	}

	p := field.prime.modulus
	degree := f.Degree()
	if !p.IsInt64() || p.Int64() > int64(degree) {
		if degree > 0 {
			return nil, utils.Errorf(utils.ErrDomain, "%s is not a p-th power", f)
		}
		return f.derive([]*FiniteFieldElement{f.coefficients[0].PthRoot()}), nil
	}

	step := int(p.Int64())
	coefficients := make([]*FiniteFieldElement, degree/step+1)
	for i, coeff := range f.coefficients {
		if i%step != 0 {
			if !coeff.IsZero() {
				return nil, utils.Errorf(utils.ErrDomain, "%s is not a p-th power: x^%d has a nonzero coefficient", f, i)
			}
			continue
		}
		coefficients[i/step] = coeff.PthRoot()
	}
	return f.derive(coefficients), nil
}

// FieldOf returns the extension an FFPoly is defined over
func FieldOf(f *FFPoly) *FiniteField {
	field, _ := f.domain.(*FiniteField)
	return field
}

// CompareFFPoly orders polynomials over one field by degree, then by the
// indices of their coefficients from the top down
func CompareFFPoly(a, b *FFPoly) int {
	if a.Degree() != b.Degree() {
		if a.Degree() < b.Degree() {
			return -1
		}
		return 1
	}
	field := FieldOf(a)
	for i := len(a.coefficients) - 1; i >= 0; i-- {
		if c := field.Index(a.coefficients[i]).Cmp(field.Index(b.coefficients[i])); c != 0 {
			return c
		}
	}
	return 0
}

// ProductOf multiplies factors raised to their multiplicities, times unit
func ProductOf[E Element[E]](domain Domain[E], unit E, factors []*Polynomial[E], multiplicities []int) (*Polynomial[E], error) {
	result := newPolynomial(domain, []E{unit}, DefaultVariable)
	for i, factor := range factors {
		power, err := factor.Pow(big.NewInt(int64(multiplicities[i])))
		if err != nil {
			return nil, err
		}
		result, err = result.Mul(power)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
