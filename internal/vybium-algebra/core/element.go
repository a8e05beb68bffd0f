// Package core implements the algebraic type hierarchy: prime fields,
// finite field extensions, the integers, Gaussian integers, and dense
// polynomials generic over any of them.
//
// Every value is immutable. Elements of different domains never mix
// implicitly; mixed-domain expressions go through the coercion table in
// coerce.go.
package core

import (
	"fmt"
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// Element is the arithmetic capability a coefficient type must provide.
// Add, Sub and Mul panic with an IncompatibleDomainError when the operands
// come from different domains; Inv reports non-invertible values as errors.
//
// Callers holding values whose domains are not known to agree must use the
// checked entry points instead: AddValues, SubValues, MulValues and
// DivValues, the Polynomial methods, or Div. These return the
// IncompatibleDomainError, which also matches DomainError.
type Element[E any] interface {
	Add(other E) E
	Sub(other E) E
	Mul(other E) E
	Neg() E
	Inv() (E, error)
	IsZero() bool
	IsOne() bool
	Equal(other E) bool
	String() string
}

// Domain describes the set an element type lives in
type Domain[E Element[E]] interface {
	Zero() E
	One() E
	// FromInt64 maps an integer through the canonical ring homomorphism Z -> D
	FromInt64(n int64) E
	// Coerce converts a value of another domain following the coercion table
	Coerce(v any) (E, error)
	Contains(e E) bool
	Kind() Kind
	Characteristic() *big.Int
	// Order is the number of elements, or nil for infinite domains
	Order() *big.Int
	IsField() bool
	// ID identifies the domain; two domains with equal IDs are the same set
	ID() string
	String() string
}

// incompatible builds the panic value used by direct element operations
func incompatible(op string, a, b fmt.Stringer) *utils.AlgebraError {
	return utils.Errorf(utils.ErrIncompatibleDomain, "cannot %s elements of %s and %s", op, a, b)
}

// SameDomain reports whether two domains describe the same set
func SameDomain[E Element[E]](a, b Domain[E]) bool {
	return a.ID() == b.ID()
}
