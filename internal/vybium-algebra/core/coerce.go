package core

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// Kind classifies values for coercion
type Kind int

const (
	// KindInteger covers Go integers, *big.Int and *Integer
	KindInteger Kind = iota
	KindGaussian
	KindPrimeField
	// KindPrimePolynomial is a PFPoly; it only coerces into extension
	// fields, as a residue class
	KindPrimePolynomial
	KindFiniteField
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindGaussian:
		return "gaussian integer"
	case KindPrimeField:
		return "prime field element"
	case KindPrimePolynomial:
		return "prime field polynomial"
	case KindFiniteField:
		return "finite field element"
	default:
		return "unknown"
	}
}

// rank orders kinds for Unify; the operand of higher rank fixes the domain
func (k Kind) rank() int {
	switch k {
	case KindInteger:
		return 0
	case KindGaussian, KindPrimeField:
		return 1
	case KindPrimePolynomial:
		return 2
	default:
		return 3
	}
}

// Target is a domain values can be coerced into
type Target interface {
	Kind() Kind
	String() string
}

// KindOf classifies v. Nil pointers are rejected.
func KindOf(v any) (Kind, error) {
	var kind Kind
	var null bool
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger, nil
	case *big.Int:
		kind, null = KindInteger, n == nil
	case *Integer:
		kind, null = KindInteger, n == nil || n.value == nil
	case *GaussianInteger:
		kind, null = KindGaussian, n == nil || n.re == nil || n.im == nil
	case *PrimeFieldElement:
		kind, null = KindPrimeField, n == nil
	case *PFPoly:
		kind, null = KindPrimePolynomial, n == nil
	case *FiniteFieldElement:
		kind, null = KindFiniteField, n == nil
	default:
		return 0, utils.Errorf(utils.ErrIncompatibleDomain, "values of type %T cannot be coerced", v)
	}
	if null {
		return 0, utils.Errorf(utils.ErrIncompatibleDomain, "nil %T cannot be coerced", v)
	}
	return kind, nil
}

type coercionKey struct {
	from Kind
	to   Kind
}

type coercion func(v any, target Target) (any, error)

// coercions lists every permitted conversion; pairs not listed are
// incompatible
var coercions = map[coercionKey]coercion{
	{KindInteger, KindInteger}: func(v any, _ Target) (any, error) {
		return NewIntegerFromBig(toBig(v)), nil
	},
	{KindInteger, KindGaussian}: func(v any, _ Target) (any, error) {
		return NewGaussianIntegerFromBig(toBig(v), big.NewInt(0)), nil
	},
	{KindInteger, KindPrimeField}: func(v any, t Target) (any, error) {
		return t.(*PrimeField).NewElement(toBig(v)), nil
	},
	{KindInteger, KindFiniteField}: func(v any, t Target) (any, error) {
		return t.(*FiniteField).NewElementFromBig(toBig(v)), nil
	},
	{KindGaussian, KindGaussian}: func(v any, _ Target) (any, error) {
		return v, nil
	},
	{KindPrimeField, KindPrimeField}: func(v any, t Target) (any, error) {
		e, f := v.(*PrimeFieldElement), t.(*PrimeField)
		if !f.Equals(e.field) {
			return nil, incompatible("coerce", e.field, f)
		}
		return e, nil
	},
	{KindPrimeField, KindFiniteField}: func(v any, t Target) (any, error) {
		e, f := v.(*PrimeFieldElement), t.(*FiniteField)
		if !f.prime.Equals(e.field) {
			return nil, utils.Errorf(utils.ErrIncompatibleDomain,
				"cannot embed %s into %s: characteristics differ", e.field, f)
		}
		return f.Embed(e), nil
	},
	{KindFiniteField, KindPrimeField}: func(v any, t Target) (any, error) {
		e, f := v.(*FiniteFieldElement), t.(*PrimeField)
		if !f.Equals(e.field.prime) {
			return nil, utils.Errorf(utils.ErrIncompatibleDomain,
				"cannot demote from %s to %s: characteristics differ", e.field, f)
		}
		c, ok := e.PrimeSubfieldValue()
		if !ok {
			return nil, utils.Errorf(utils.ErrIncompatibleDomain,
				"%s does not lie in the prime subfield %s", e, f)
		}
		return c, nil
	},
	{KindFiniteField, KindFiniteField}: func(v any, t Target) (any, error) {
		e, f := v.(*FiniteFieldElement), t.(*FiniteField)
		if !f.Equals(e.field) {
			return nil, incompatible("coerce", e.field, f)
		}
		return e, nil
	},
	{KindPrimePolynomial, KindFiniteField}: func(v any, t Target) (any, error) {
		p, f := v.(*PFPoly), t.(*FiniteField)
		if p.domain.ID() != f.prime.ID() {
			return nil, utils.Errorf(utils.ErrIncompatibleDomain,
				"cannot reduce a polynomial over %s into %s", p.domain, f)
		}
		return f.Residue(p), nil
	},
}

func toBig(v any) *big.Int {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n))
	case int8:
		return big.NewInt(int64(n))
	case int16:
		return big.NewInt(int64(n))
	case int32:
		return big.NewInt(int64(n))
	case int64:
		return big.NewInt(n)
	case uint:
		return new(big.Int).SetUint64(uint64(n))
	case uint8:
		return new(big.Int).SetUint64(uint64(n))
	case uint16:
		return new(big.Int).SetUint64(uint64(n))
	case uint32:
		return new(big.Int).SetUint64(uint64(n))
	case uint64:
		return new(big.Int).SetUint64(n)
	case *big.Int:
		return n
	case *Integer:
		return n.value
	}
	return nil
}

// CoerceTo converts v into target following the coercion table
func CoerceTo(v any, target Target) (any, error) {
	from, err := KindOf(v)
	if err != nil {
		return nil, err
	}
	convert, ok := coercions[coercionKey{from, target.Kind()}]
	if !ok {
		return nil, utils.Errorf(utils.ErrIncompatibleDomain, "cannot coerce %s %v into %s", from, v, target)
	}
	return convert(v, target)
}

func coerceInto[E any](v any, target Target) (E, error) {
	var zero E
	out, err := CoerceTo(v, target)
	if err != nil {
		return zero, err
	}
	e, ok := out.(E)
	if !ok {
		return zero, utils.Errorf(utils.ErrIncompatibleDomain, "coercion into %s produced %T", target, out)
	}
	return e, nil
}

// DomainOf returns the domain v belongs to. Plain integers belong to ZZ.
func DomainOf(v any) (Target, error) {
	kind, err := KindOf(v)
	if err != nil {
		return nil, err
	}
	switch e := v.(type) {
	case *PrimeFieldElement:
		return e.field, nil
	case *FiniteFieldElement:
		return e.field, nil
	case *GaussianInteger:
		return ZZi, nil
	}
	if kind == KindInteger {
		return ZZ, nil
	}
	return nil, utils.Errorf(utils.ErrIncompatibleDomain, "a %s is not a coefficient domain element", kind)
}

// Unify coerces a and b into one common domain: the domain of the operand
// whose kind ranks higher (integer < prime field, gaussian < extension).
func Unify(a, b any) (any, any, error) {
	ka, err := KindOf(a)
	if err != nil {
		return nil, nil, err
	}
	kb, err := KindOf(b)
	if err != nil {
		return nil, nil, err
	}

	anchor := a
	if kb.rank() > ka.rank() {
		anchor = b
	}
	target, err := DomainOf(anchor)
	if err != nil {
		return nil, nil, err
	}

	x, err := CoerceTo(a, target)
	if err != nil {
		return nil, nil, err
	}
	y, err := CoerceTo(b, target)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

func apply[E Element[E]](x, y E, op arithOp) (any, error) {
	switch op {
	case opAdd:
		return x.Add(y), nil
	case opSub:
		return x.Sub(y), nil
	case opMul:
		return x.Mul(y), nil
	}

	divider, ok := any(x).(interface{ Div(E) (E, error) })
	if !ok {
		return nil, utils.Errorf(utils.ErrDomain, "division is not defined for %T", x)
	}
	q, err := divider.Div(y)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func mixed(a, b any, op arithOp) (any, error) {
	x, y, err := Unify(a, b)
	if err != nil {
		return nil, err
	}
	switch u := x.(type) {
	case *Integer:
		return apply(u, y.(*Integer), op)
	case *GaussianInteger:
		return apply(u, y.(*GaussianInteger), op)
	case *PrimeFieldElement:
		return apply(u, y.(*PrimeFieldElement), op)
	case *FiniteFieldElement:
		return apply(u, y.(*FiniteFieldElement), op)
	}
	return nil, utils.Errorf(utils.ErrIncompatibleDomain, "no arithmetic for %T", x)
}

// AddValues adds two values after unifying their domains
func AddValues(a, b any) (any, error) { return mixed(a, b, opAdd) }

// SubValues subtracts two values after unifying their domains
func SubValues(a, b any) (any, error) { return mixed(a, b, opSub) }

// MulValues multiplies two values after unifying their domains
func MulValues(a, b any) (any, error) { return mixed(a, b, opMul) }

// DivValues divides two values after unifying their domains. Over ZZ and
// ZZ[i] the division must be exact.
func DivValues(a, b any) (any, error) { return mixed(a, b, opDiv) }
