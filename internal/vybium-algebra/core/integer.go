package core

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// Integers is the ring Z
type Integers struct{}

// ZZ is the integer domain
var ZZ = Integers{}

// Integer is an element of Z
type Integer struct {
	value *big.Int
}

// NewInteger creates an integer from an int64
func NewInteger(n int64) *Integer {
	return &Integer{value: big.NewInt(n)}
}

// NewIntegerFromBig creates an integer from a big.Int
func NewIntegerFromBig(n *big.Int) *Integer {
	return &Integer{value: new(big.Int).Set(n)}
}

// Zero returns 0
func (Integers) Zero() *Integer { return NewInteger(0) }

// One returns 1
func (Integers) One() *Integer { return NewInteger(1) }

// FromInt64 returns n
func (Integers) FromInt64(n int64) *Integer { return NewInteger(n) }

// Coerce converts v into Z
func (z Integers) Coerce(v any) (*Integer, error) {
	return coerceInto[*Integer](v, z)
}

// Contains reports whether e is non-nil
func (Integers) Contains(e *Integer) bool { return e != nil && e.value != nil }

// Kind returns KindInteger
func (Integers) Kind() Kind { return KindInteger }

// Characteristic returns 0
func (Integers) Characteristic() *big.Int { return big.NewInt(0) }

// Order returns nil
func (Integers) Order() *big.Int { return nil }

// IsField returns false
func (Integers) IsField() bool { return false }

// ID returns "ZZ"
func (Integers) ID() string { return "ZZ" }

func (Integers) String() string { return "ZZ" }

// Big returns the value as a big.Int
func (n *Integer) Big() *big.Int {
	return new(big.Int).Set(n.value)
}

// Add returns n + other
func (n *Integer) Add(other *Integer) *Integer {
	return &Integer{value: new(big.Int).Add(n.value, other.value)}
}

// Sub returns n - other
func (n *Integer) Sub(other *Integer) *Integer {
	return &Integer{value: new(big.Int).Sub(n.value, other.value)}
}

// Mul returns n * other
func (n *Integer) Mul(other *Integer) *Integer {
	return &Integer{value: new(big.Int).Mul(n.value, other.value)}
}

// Neg returns -n
func (n *Integer) Neg() *Integer {
	return &Integer{value: new(big.Int).Neg(n.value)}
}

// Inv returns the inverse of the units 1 and -1
func (n *Integer) Inv() (*Integer, error) {
	if n.value.CmpAbs(big.NewInt(1)) != 0 {
		return nil, utils.Errorf(utils.ErrDomain, "%s is not a unit in ZZ", n)
	}
	return n, nil
}

// Div returns the exact quotient n / other
func (n *Integer) Div(other *Integer) (*Integer, error) {
	if other.value.Sign() == 0 {
		return nil, utils.Errorf(utils.ErrDomain, "division by zero in ZZ")
	}
	q, r := new(big.Int).QuoRem(n.value, other.value, new(big.Int))
	if r.Sign() != 0 {
		return nil, utils.Errorf(utils.ErrDomain, "%s is not divisible by %s in ZZ", n, other)
	}
	return &Integer{value: q}, nil
}

// IsZero reports n == 0
func (n *Integer) IsZero() bool { return n.value.Sign() == 0 }

// IsOne reports n == 1
func (n *Integer) IsOne() bool { return n.value.Cmp(big.NewInt(1)) == 0 }

// Equal compares values
func (n *Integer) Equal(other *Integer) bool { return n.value.Cmp(other.value) == 0 }

func (n *Integer) String() string { return n.value.String() }
