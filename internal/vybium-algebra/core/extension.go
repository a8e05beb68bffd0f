package core

import (
	"math/big"
	"sync"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/numbers"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// DefaultElementVariable names the generator of an extension when printing
const DefaultElementVariable = "a"

// MaxEnumerableOrder bounds the fields Elements will list
const MaxEnumerableOrder = 1 << 16

// FiniteField represents GF(p^n) as GF(p)[a] modulo a monic irreducible
// polynomial of degree n. A FiniteField is read-only once built and may be
// shared between goroutines.
type FiniteField struct {
	prime    *PrimeField
	modulus  *PFPoly
	order    *big.Int
	variable string

	primitiveOnce sync.Once
	primitive     *FiniteFieldElement
	primitiveErr  error
}

// FiniteFieldElement is a residue class of degree below the field degree
type FiniteFieldElement struct {
	field *FiniteField
	value *PFPoly
}

// NewFiniteField creates the extension defined by modulus, made monic.
// It fails with an InvalidModulusError when modulus is constant or reducible.
func NewFiniteField(modulus *PFPoly) (*FiniteField, error) {
	return NewFiniteFieldWithVariable(modulus, DefaultElementVariable)
}

// NewFiniteFieldWithVariable is NewFiniteField printing elements in variable
func NewFiniteFieldWithVariable(modulus *PFPoly, variable string) (*FiniteField, error) {
	prime, ok := modulus.domain.(*PrimeField)
	if !ok {
		return nil, utils.Errorf(utils.ErrInvalidModulus, "modulus must have prime field coefficients, got %s", modulus.domain)
	}
	if modulus.Degree() < 1 {
		return nil, utils.Errorf(utils.ErrInvalidModulus, "modulus %s has degree below 1", modulus)
	}

	monic, err := modulus.Monic()
	if err != nil {
		return nil, err
	}
	monic = monic.WithVariable(variable)

	irreducible, err := monic.IsIrreducible()
	if err != nil {
		return nil, utils.Wrap(utils.ErrInvalidModulus, err, "cannot test %s", monic)
	}
	if !irreducible {
		return nil, utils.Errorf(utils.ErrInvalidModulus, "modulus %s is reducible over %s", monic, prime)
	}

	return &FiniteField{
		prime:    prime,
		modulus:  monic,
		order:    new(big.Int).Exp(prime.modulus, big.NewInt(int64(monic.Degree())), nil),
		variable: variable,
	}, nil
}

// NewFiniteFieldFromInt64 creates GF(p)[a]/(modulus) from ascending
// integer coefficients
func NewFiniteFieldFromInt64(p int64, coefficients []int64) (*FiniteField, error) {
	prime, err := NewPrimeField(big.NewInt(p))
	if err != nil {
		return nil, err
	}
	return NewFiniteField(NewPolynomialFromInt64[*PrimeFieldElement](prime, coefficients))
}

// PrimeExtension returns GF(p) presented as the degree-one extension
// GF(p)[a]/(a), so prime field polynomials can use extension algorithms
func PrimeExtension(prime *PrimeField) *FiniteField {
	modulus := X[*PrimeFieldElement](prime).WithVariable(DefaultElementVariable)
	return &FiniteField{
		prime:    prime,
		modulus:  modulus,
		order:    prime.Modulus(),
		variable: DefaultElementVariable,
	}
}

// PrimeField returns the prime subfield
func (f *FiniteField) PrimeField() *PrimeField {
	return f.prime
}

// Modulus returns the defining polynomial
func (f *FiniteField) Modulus() *PFPoly {
	return f.modulus
}

// Degree returns n, the dimension over the prime subfield
func (f *FiniteField) Degree() int {
	return f.modulus.Degree()
}

// Variable returns the printed name of the generator
func (f *FiniteField) Variable() string {
	return f.variable
}

// Order returns p^n
func (f *FiniteField) Order() *big.Int {
	return new(big.Int).Set(f.order)
}

// Characteristic returns p
func (f *FiniteField) Characteristic() *big.Int {
	return f.prime.Modulus()
}

// IsField returns true
func (f *FiniteField) IsField() bool {
	return true
}

// Kind returns KindFiniteField
func (f *FiniteField) Kind() Kind {
	return KindFiniteField
}

// ID returns "GF(p^n)/(modulus)"
func (f *FiniteField) ID() string {
	return "GF(" + f.prime.modulus.String() + "^" + big.NewInt(int64(f.Degree())).String() + ")/(" + f.modulus.WithVariable(DefaultElementVariable).String() + ")"
}

func (f *FiniteField) String() string {
	return f.ID()
}

// Equals compares characteristic and modulus
func (f *FiniteField) Equals(other *FiniteField) bool {
	if f == other {
		return true
	}
	return f.prime.Equals(other.prime) && f.modulus.Equal(other.modulus)
}

// element reduces p modulo the field modulus
func (f *FiniteField) element(p *PFPoly) *FiniteFieldElement {
	_, r := p.divMod(f.modulus, f.prime.One())
	return &FiniteFieldElement{field: f, value: r.WithVariable(f.variable)}
}

// Residue returns the class of a polynomial over the prime subfield
func (f *FiniteField) Residue(p *PFPoly) *FiniteFieldElement {
	return f.element(p)
}

// NewElement returns the class of p, failing if p is over another prime field
func (f *FiniteField) NewElement(p *PFPoly) (*FiniteFieldElement, error) {
	return f.Coerce(p)
}

// NewElementFromInt64 creates an element from ascending coefficients in a
func (f *FiniteField) NewElementFromInt64(coefficients ...int64) *FiniteFieldElement {
	return f.element(NewPolynomialFromInt64[*PrimeFieldElement](f.prime, coefficients))
}

// NewElementFromBig creates the constant n mod p
func (f *FiniteField) NewElementFromBig(n *big.Int) *FiniteFieldElement {
	return f.Embed(f.prime.NewElement(n))
}

// Embed maps a prime field element to the constant class
func (f *FiniteField) Embed(e *PrimeFieldElement) *FiniteFieldElement {
	return f.element(newPolynomial[*PrimeFieldElement](f.prime, []*PrimeFieldElement{e}, f.variable))
}

// Zero returns the additive identity
func (f *FiniteField) Zero() *FiniteFieldElement {
	return f.element(ZeroPolynomial[*PrimeFieldElement](f.prime))
}

// One returns the multiplicative identity
func (f *FiniteField) One() *FiniteFieldElement {
	return f.Embed(f.prime.One())
}

// FromInt64 returns the constant n mod p
func (f *FiniteField) FromInt64(n int64) *FiniteFieldElement {
	return f.Embed(f.prime.NewElementFromInt64(n))
}

// Generator returns the class of a. In the degree-one extension GF(p)[a]/(a)
// this is zero.
func (f *FiniteField) Generator() *FiniteFieldElement {
	return f.element(X[*PrimeFieldElement](f.prime))
}

// Coerce converts v into this field
func (f *FiniteField) Coerce(v any) (*FiniteFieldElement, error) {
	return coerceInto[*FiniteFieldElement](v, f)
}

// Contains reports whether e belongs to this field
func (f *FiniteField) Contains(e *FiniteFieldElement) bool {
	return e != nil && f.Equals(e.field)
}

// Index maps e to sum c_i p^i, a bijection onto [0, q)
func (f *FiniteField) Index(e *FiniteFieldElement) *big.Int {
	index := new(big.Int)
	for i := e.value.Degree(); i >= 0; i-- {
		index.Mul(index, f.prime.modulus)
		index.Add(index, e.value.Coefficient(i).value)
	}
	return index
}

// ElementAt inverts Index; index is reduced modulo q
func (f *FiniteField) ElementAt(index *big.Int) *FiniteFieldElement {
	rest := new(big.Int).Mod(index, f.order)
	digit := new(big.Int)
	coefficients := make([]*PrimeFieldElement, 0, f.Degree())
	for rest.Sign() > 0 {
		rest.QuoRem(rest, f.prime.modulus, digit)
		coefficients = append(coefficients, f.prime.NewElement(digit))
	}
	return f.element(newPolynomial[*PrimeFieldElement](f.prime, coefficients, f.variable))
}

// Elements lists the field in index order
func (f *FiniteField) Elements() ([]*FiniteFieldElement, error) {
	if f.order.Cmp(big.NewInt(MaxEnumerableOrder)) > 0 {
		return nil, utils.Errorf(utils.ErrDomain, "%s has too many elements to enumerate", f)
	}
	n := int(f.order.Int64())
	elements := make([]*FiniteFieldElement, n)
	for i := 0; i < n; i++ {
		elements[i] = f.ElementAt(big.NewInt(int64(i)))
	}
	return elements, nil
}

// RandomElement draws an element from source
func (f *FiniteField) RandomElement(source utils.Source) *FiniteFieldElement {
	return f.ElementAt(source.Int(f.order))
}

// PrimitiveElement returns the first element in index order generating the
// multiplicative group. It is computed once per field.
func (f *FiniteField) PrimitiveElement() (*FiniteFieldElement, error) {
	f.primitiveOnce.Do(func() {
		f.primitive, f.primitiveErr = f.findPrimitive()
	})
	return f.primitive, f.primitiveErr
}

func (f *FiniteField) findPrimitive() (*FiniteFieldElement, error) {
	groupOrder := new(big.Int).Sub(f.order, big.NewInt(1))
	primes, err := numbers.PrimeDivisors(groupOrder)
	if err != nil {
		return nil, err
	}

	exponents := make([]*big.Int, len(primes))
	for i, r := range primes {
		exponents[i] = new(big.Int).Quo(groupOrder, r)
	}

	for index := big.NewInt(1); index.Cmp(f.order) < 0; index.Add(index, big.NewInt(1)) {
		candidate := f.ElementAt(index)
		primitive := true
		for _, e := range exponents {
			if candidate.pow(e).IsOne() {
				primitive = false
				break
			}
		}
		if primitive {
			return candidate, nil
		}
	}
	return nil, utils.Errorf(utils.ErrDomain, "no primitive element found in %s", f)
}

// Field returns the field this element belongs to
func (e *FiniteFieldElement) Field() *FiniteField {
	return e.field
}

// Poly returns the canonical representative of degree below n
func (e *FiniteFieldElement) Poly() *PFPoly {
	return e.value
}

func (e *FiniteFieldElement) mustMatch(op string, other *FiniteFieldElement) {
	if !e.field.Equals(other.field) {
		panic(incompatible(op, e.field, other.field))
	}
}

// Add performs field addition
func (e *FiniteFieldElement) Add(other *FiniteFieldElement) *FiniteFieldElement {
	e.mustMatch("add", other)
	return &FiniteFieldElement{field: e.field, value: e.value.add(other.value)}
}

// Sub performs field subtraction
func (e *FiniteFieldElement) Sub(other *FiniteFieldElement) *FiniteFieldElement {
	e.mustMatch("subtract", other)
	return &FiniteFieldElement{field: e.field, value: e.value.sub(other.value)}
}

// Neg returns the additive inverse
func (e *FiniteFieldElement) Neg() *FiniteFieldElement {
	return &FiniteFieldElement{field: e.field, value: e.value.Neg()}
}

// Mul multiplies and reduces modulo the field modulus
func (e *FiniteFieldElement) Mul(other *FiniteFieldElement) *FiniteFieldElement {
	e.mustMatch("multiply", other)
	return e.field.element(e.value.mul(other.value))
}

// Square computes e * e
func (e *FiniteFieldElement) Square() *FiniteFieldElement {
	return e.Mul(e)
}

// Inv computes the inverse with the extended Euclidean algorithm
func (e *FiniteFieldElement) Inv() (*FiniteFieldElement, error) {
	if e.IsZero() {
		return nil, utils.Errorf(utils.ErrDomain, "cannot invert zero in %s", e.field)
	}
	inv, err := e.value.ModInverse(e.field.modulus)
	if err != nil {
		return nil, err
	}
	return e.field.element(inv), nil
}

// Div performs field division (multiplication by inverse)
func (e *FiniteFieldElement) Div(other *FiniteFieldElement) (*FiniteFieldElement, error) {
	if !e.field.Equals(other.field) {
		return nil, incompatible("divide", e.field, other.field)
	}
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv), nil
}

func (e *FiniteFieldElement) pow(exponent *big.Int) *FiniteFieldElement {
	result := e.field.One()
	base := e
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// Exp raises e to exponent; negative exponents invert first
func (e *FiniteFieldElement) Exp(exponent *big.Int) (*FiniteFieldElement, error) {
	if exponent.Sign() >= 0 {
		return e.pow(exponent), nil
	}
	inv, err := e.Inv()
	if err != nil {
		return nil, err
	}
	return inv.pow(new(big.Int).Neg(exponent)), nil
}

// Frobenius returns e^p
func (e *FiniteFieldElement) Frobenius() *FiniteFieldElement {
	return e.pow(e.field.prime.modulus)
}

// PthRoot returns the unique r with r^p = e, namely e^(p^(n-1))
func (e *FiniteFieldElement) PthRoot() *FiniteFieldElement {
	exponent := new(big.Int).Exp(e.field.prime.modulus, big.NewInt(int64(e.field.Degree()-1)), nil)
	return e.pow(exponent)
}

// MultiplicativeOrder returns the least k > 0 with e^k = 1
func (e *FiniteFieldElement) MultiplicativeOrder() (*big.Int, error) {
	if e.IsZero() {
		return nil, utils.Errorf(utils.ErrDomain, "zero has no multiplicative order")
	}
	order := new(big.Int).Sub(e.field.order, big.NewInt(1))
	primes, err := numbers.PrimeDivisors(order)
	if err != nil {
		return nil, err
	}

	q, r := new(big.Int), new(big.Int)
	for _, p := range primes {
		for {
			q.QuoRem(order, p, r)
			if r.Sign() != 0 || !e.pow(q).IsOne() {
				break
			}
			order.Set(q)
		}
	}
	return order, nil
}

// PrimeSubfieldValue returns e as a prime field element when it is constant
func (e *FiniteFieldElement) PrimeSubfieldValue() (*PrimeFieldElement, bool) {
	if e.value.Degree() > 0 {
		return nil, false
	}
	return e.value.Coefficient(0), true
}

// Index returns the position of e in the field's enumeration
func (e *FiniteFieldElement) Index() *big.Int {
	return e.field.Index(e)
}

// Equal compares field and representative
func (e *FiniteFieldElement) Equal(other *FiniteFieldElement) bool {
	return e.field.Equals(other.field) && e.value.Equal(other.value)
}

// IsZero checks if the element is zero
func (e *FiniteFieldElement) IsZero() bool {
	return e.value.IsZero()
}

// IsOne checks if the element is one
func (e *FiniteFieldElement) IsOne() bool {
	return e.value.IsOne()
}

// Key identifies the element together with its field
func (e *FiniteFieldElement) Key() string {
	return e.field.ID() + ":" + e.value.String()
}

// String prints the representative in the field variable
func (e *FiniteFieldElement) String() string {
	return e.value.String()
}
