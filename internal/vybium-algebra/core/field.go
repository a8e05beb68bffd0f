package core

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/numbers"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// PrimeField represents the field of integers modulo a prime p
type PrimeField struct {
	modulus    *big.Int
	goldilocks bool
}

// PrimeFieldElement represents an element in a prime field
type PrimeFieldElement struct {
	field *PrimeField
	value *big.Int
}

// NewPrimeField creates the prime field of the given modulus.
// The modulus must be prime.
func NewPrimeField(modulus *big.Int) (*PrimeField, error) {
	if !numbers.IsPrime(modulus) {
		return nil, utils.Errorf(utils.ErrInvalidModulus, "modulus %s is not prime", modulus)
	}
	return &PrimeField{
		modulus:    new(big.Int).Set(modulus),
		goldilocks: isGoldilocks(modulus),
	}, nil
}

// NewPrimeFieldFromUint64 creates the prime field of the given modulus
func NewPrimeFieldFromUint64(modulus uint64) (*PrimeField, error) {
	return NewPrimeField(new(big.Int).SetUint64(modulus))
}

// MustPrimeField is NewPrimeField for moduli known to be prime; it panics otherwise
func MustPrimeField(modulus int64) *PrimeField {
	f, err := NewPrimeField(big.NewInt(modulus))
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns the field modulus
func (f *PrimeField) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// NewElement creates a new field element from a big.Int
func (f *PrimeField) NewElement(value *big.Int) *PrimeFieldElement {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &PrimeFieldElement{
		field: f,
		value: normalized,
	}
}

// NewElementFromInt64 creates a new field element from an int64
func (f *PrimeField) NewElementFromInt64(value int64) *PrimeFieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 creates a new field element from a uint64
func (f *PrimeField) NewElementFromUint64(value uint64) *PrimeFieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// RandomElement draws an element from source
func (f *PrimeField) RandomElement(source utils.Source) *PrimeFieldElement {
	return f.NewElement(source.Int(f.modulus))
}

// Zero returns the additive identity
func (f *PrimeField) Zero() *PrimeFieldElement {
	return f.NewElement(big.NewInt(0))
}

// One returns the multiplicative identity
func (f *PrimeField) One() *PrimeFieldElement {
	return f.NewElement(big.NewInt(1))
}

// FromInt64 reduces n modulo p
func (f *PrimeField) FromInt64(n int64) *PrimeFieldElement {
	return f.NewElementFromInt64(n)
}

// Coerce converts v into this field
func (f *PrimeField) Coerce(v any) (*PrimeFieldElement, error) {
	return coerceInto[*PrimeFieldElement](v, f)
}

// Contains reports whether e belongs to this field
func (f *PrimeField) Contains(e *PrimeFieldElement) bool {
	return e != nil && f.Equals(e.field)
}

// Kind returns KindPrimeField
func (f *PrimeField) Kind() Kind {
	return KindPrimeField
}

// Characteristic returns p
func (f *PrimeField) Characteristic() *big.Int {
	return f.Modulus()
}

// Order returns p
func (f *PrimeField) Order() *big.Int {
	return f.Modulus()
}

// IsField returns true
func (f *PrimeField) IsField() bool {
	return true
}

// ID returns "GF(p)"
func (f *PrimeField) ID() string {
	return "GF(" + f.modulus.String() + ")"
}

func (f *PrimeField) String() string {
	return f.ID()
}

// Equals reports whether two fields share a modulus
func (f *PrimeField) Equals(other *PrimeField) bool {
	return f == other || f.modulus.Cmp(other.modulus) == 0
}

// Big returns the value as a big.Int
func (fe *PrimeFieldElement) Big() *big.Int {
	return new(big.Int).Set(fe.value)
}

// Field returns the field this element belongs to
func (fe *PrimeFieldElement) Field() *PrimeField {
	return fe.field
}

func (fe *PrimeFieldElement) mustMatch(op string, other *PrimeFieldElement) {
	if !fe.field.Equals(other.field) {
		panic(incompatible(op, fe.field, other.field))
	}
}

// Add performs field addition
func (fe *PrimeFieldElement) Add(other *PrimeFieldElement) *PrimeFieldElement {
	fe.mustMatch("add", other)
	result := new(big.Int).Add(fe.value, other.value)
	return fe.field.NewElement(result)
}

// Sub performs field subtraction
func (fe *PrimeFieldElement) Sub(other *PrimeFieldElement) *PrimeFieldElement {
	fe.mustMatch("subtract", other)
	result := new(big.Int).Sub(fe.value, other.value)
	return fe.field.NewElement(result)
}

// Neg returns the additive inverse (negation) of the field element
func (fe *PrimeFieldElement) Neg() *PrimeFieldElement {
	result := new(big.Int).Neg(fe.value)
	return fe.field.NewElement(result)
}

// Mul performs field multiplication
func (fe *PrimeFieldElement) Mul(other *PrimeFieldElement) *PrimeFieldElement {
	fe.mustMatch("multiply", other)
	if fe.field.goldilocks {
		return &PrimeFieldElement{field: fe.field, value: goldilocksMul(fe.value, other.value)}
	}
	result := new(big.Int).Mul(fe.value, other.value)
	return fe.field.NewElement(result)
}

// Square computes the square of the field element
func (fe *PrimeFieldElement) Square() *PrimeFieldElement {
	return fe.Mul(fe)
}

// Div performs field division (multiplication by inverse)
func (fe *PrimeFieldElement) Div(other *PrimeFieldElement) (*PrimeFieldElement, error) {
	if !fe.field.Equals(other.field) {
		return nil, incompatible("divide", fe.field, other.field)
	}
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return fe.Mul(inv), nil
}

// Inv computes the multiplicative inverse
func (fe *PrimeFieldElement) Inv() (*PrimeFieldElement, error) {
	if fe.value.Sign() == 0 {
		return nil, utils.Errorf(utils.ErrDomain, "cannot invert zero in %s", fe.field)
	}
	if fe.field.goldilocks {
		return &PrimeFieldElement{field: fe.field, value: goldilocksInv(fe.value)}, nil
	}

	// Use extended Euclidean algorithm
	gcd := new(big.Int)
	x := new(big.Int)
	gcd.GCD(x, nil, fe.value, fe.field.modulus)

	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, utils.Errorf(utils.ErrDomain, "%s is not invertible in %s", fe, fe.field)
	}

	return fe.field.NewElement(x), nil
}

// Exp raises the element to exponent. A negative exponent inverts first,
// so it fails for zero.
func (fe *PrimeFieldElement) Exp(exponent *big.Int) (*PrimeFieldElement, error) {
	base := fe
	e := exponent
	if exponent.Sign() < 0 {
		inv, err := fe.Inv()
		if err != nil {
			return nil, err
		}
		base = inv
		e = new(big.Int).Neg(exponent)
	}
	if fe.field.goldilocks && e.IsUint64() {
		return &PrimeFieldElement{field: fe.field, value: goldilocksExp(base.value, e.Uint64())}, nil
	}
	result := new(big.Int).Exp(base.value, e, fe.field.modulus)
	return fe.field.NewElement(result), nil
}

// ExpInt64 is Exp with a machine-sized exponent
func (fe *PrimeFieldElement) ExpInt64(exponent int64) (*PrimeFieldElement, error) {
	return fe.Exp(big.NewInt(exponent))
}

// Equal checks if two field elements are equal
func (fe *PrimeFieldElement) Equal(other *PrimeFieldElement) bool {
	if !fe.field.Equals(other.field) {
		return false
	}
	return fe.value.Cmp(other.value) == 0
}

// LessThan orders elements by their canonical representative
func (fe *PrimeFieldElement) LessThan(other *PrimeFieldElement) bool {
	return fe.value.Cmp(other.value) < 0
}

// IsZero checks if the element is zero
func (fe *PrimeFieldElement) IsZero() bool {
	return fe.value.Sign() == 0
}

// IsOne checks if the element is one
func (fe *PrimeFieldElement) IsOne() bool {
	return fe.value.Cmp(big.NewInt(1)) == 0
}

// Key identifies the element together with its field
func (fe *PrimeFieldElement) Key() string {
	return fe.value.String() + " mod " + fe.field.modulus.String()
}

// String returns a string representation of the field element
func (fe *PrimeFieldElement) String() string {
	return fe.value.String()
}

// Bytes returns the byte representation of the field element
func (fe *PrimeFieldElement) Bytes() []byte {
	return fe.value.Bytes()
}
