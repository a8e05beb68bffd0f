package core

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// NegativeInfinity is the degree of the zero polynomial
const NegativeInfinity = math.MinInt

// DefaultVariable names the indeterminate when printing
const DefaultVariable = "x"

// Polynomial represents a dense polynomial with coefficients in a domain.
// Index i of the coefficient slice holds the coefficient of x^i; the
// highest stored coefficient is never zero.
type Polynomial[E Element[E]] struct {
	domain       Domain[E]
	coefficients []E
	variable     string
}

// NewPolynomial creates a polynomial from coefficients in ascending degree
func NewPolynomial[E Element[E]](domain Domain[E], coefficients []E) (*Polynomial[E], error) {
	for i, coeff := range coefficients {
		if !domain.Contains(coeff) {
			return nil, utils.Errorf(utils.ErrIncompatibleDomain,
				"coefficient %d is not an element of %s", i, domain)
		}
	}
	return newPolynomial(domain, coefficients, DefaultVariable), nil
}

// NewPolynomialFromInt64 creates a polynomial from integer coefficients
func NewPolynomialFromInt64[E Element[E]](domain Domain[E], coefficients []int64) *Polynomial[E] {
	coeffs := make([]E, len(coefficients))
	for i, coeff := range coefficients {
		coeffs[i] = domain.FromInt64(coeff)
	}
	return newPolynomial(domain, coeffs, DefaultVariable)
}

// NewPolynomialFromValues creates a polynomial whose coefficients are
// coerced into domain
func NewPolynomialFromValues[E Element[E]](domain Domain[E], values ...any) (*Polynomial[E], error) {
	coeffs := make([]E, len(values))
	for i, v := range values {
		c, err := domain.Coerce(v)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return newPolynomial(domain, coeffs, DefaultVariable), nil
}

// ZeroPolynomial returns the zero polynomial over domain
func ZeroPolynomial[E Element[E]](domain Domain[E]) *Polynomial[E] {
	return newPolynomial(domain, nil, DefaultVariable)
}

// OnePolynomial returns the constant 1 over domain
func OnePolynomial[E Element[E]](domain Domain[E]) *Polynomial[E] {
	return newPolynomial(domain, []E{domain.One()}, DefaultVariable)
}

// Monomial returns coeff * x^degree
func Monomial[E Element[E]](domain Domain[E], coeff E, degree int) *Polynomial[E] {
	coeffs := make([]E, degree+1)
	for i := range coeffs {
		coeffs[i] = domain.Zero()
	}
	coeffs[degree] = coeff
	return newPolynomial(domain, coeffs, DefaultVariable)
}

// X returns the polynomial x
func X[E Element[E]](domain Domain[E]) *Polynomial[E] {
	return Monomial(domain, domain.One(), 1)
}

// newPolynomial trims trailing zeros from a copy of coefficients
func newPolynomial[E Element[E]](domain Domain[E], coefficients []E, variable string) *Polynomial[E] {
	n := len(coefficients)
	for n > 0 && coefficients[n-1].IsZero() {
		n--
	}
	trimmed := make([]E, n)
	copy(trimmed, coefficients[:n])
	return &Polynomial[E]{domain: domain, coefficients: trimmed, variable: variable}
}

func (p *Polynomial[E]) derive(coefficients []E) *Polynomial[E] {
	return newPolynomial(p.domain, coefficients, p.variable)
}

// Domain returns the coefficient domain
func (p *Polynomial[E]) Domain() Domain[E] {
	return p.domain
}

// Variable returns the printed name of the indeterminate
func (p *Polynomial[E]) Variable() string {
	return p.variable
}

// WithVariable returns the same polynomial printed with another indeterminate
func (p *Polynomial[E]) WithVariable(variable string) *Polynomial[E] {
	return &Polynomial[E]{domain: p.domain, coefficients: p.coefficients, variable: variable}
}

// Degree returns the degree, NegativeInfinity for the zero polynomial
func (p *Polynomial[E]) Degree() int {
	if len(p.coefficients) == 0 {
		return NegativeInfinity
	}
	return len(p.coefficients) - 1
}

// IsZero reports whether p is the zero polynomial
func (p *Polynomial[E]) IsZero() bool {
	return len(p.coefficients) == 0
}

// IsOne reports whether p is the constant 1
func (p *Polynomial[E]) IsOne() bool {
	return len(p.coefficients) == 1 && p.coefficients[0].IsOne()
}

// IsConstant reports whether p has degree at most 0
func (p *Polynomial[E]) IsConstant() bool {
	return len(p.coefficients) <= 1
}

// Coefficient returns the coefficient of the given degree
func (p *Polynomial[E]) Coefficient(degree int) E {
	if degree < 0 || degree >= len(p.coefficients) {
		return p.domain.Zero()
	}
	return p.coefficients[degree]
}

// LeadingCoefficient returns the coefficient of the highest degree term,
// zero for the zero polynomial
func (p *Polynomial[E]) LeadingCoefficient() E {
	if p.IsZero() {
		return p.domain.Zero()
	}
	return p.coefficients[len(p.coefficients)-1]
}

// Coefficients returns a copy of the polynomial coefficients
func (p *Polynomial[E]) Coefficients() []E {
	coeffs := make([]E, len(p.coefficients))
	copy(coeffs, p.coefficients)
	return coeffs
}

func (p *Polynomial[E]) compatible(op string, other *Polynomial[E]) error {
	if !SameDomain(p.domain, other.domain) {
		return utils.Errorf(utils.ErrIncompatibleDomain,
			"cannot %s polynomials over %s and %s", op, p.domain, other.domain)
	}
	return nil
}

// Eval evaluates the polynomial at the given point
func (p *Polynomial[E]) Eval(point E) (E, error) {
	if !p.domain.Contains(point) {
		var zero E
		return zero, utils.Errorf(utils.ErrIncompatibleDomain,
			"cannot evaluate a polynomial over %s at %s", p.domain, point)
	}

	// Horner's rule
	result := p.domain.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(point).Add(p.coefficients[i])
	}
	return result, nil
}

// Add adds two polynomials
func (p *Polynomial[E]) Add(other *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible("add", other); err != nil {
		return nil, err
	}
	return p.add(other), nil
}

func (p *Polynomial[E]) add(other *Polynomial[E]) *Polynomial[E] {
	n := max(len(p.coefficients), len(other.coefficients))
	coefficients := make([]E, n)
	for i := 0; i < n; i++ {
		coefficients[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}
	return p.derive(coefficients)
}

// Sub subtracts two polynomials
func (p *Polynomial[E]) Sub(other *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible("subtract", other); err != nil {
		return nil, err
	}
	return p.sub(other), nil
}

func (p *Polynomial[E]) sub(other *Polynomial[E]) *Polynomial[E] {
	n := max(len(p.coefficients), len(other.coefficients))
	coefficients := make([]E, n)
	for i := 0; i < n; i++ {
		coefficients[i] = p.Coefficient(i).Sub(other.Coefficient(i))
	}
	return p.derive(coefficients)
}

// Neg returns -p
func (p *Polynomial[E]) Neg() *Polynomial[E] {
	coefficients := make([]E, len(p.coefficients))
	for i, coeff := range p.coefficients {
		coefficients[i] = coeff.Neg()
	}
	return p.derive(coefficients)
}

// Mul multiplies two polynomials
func (p *Polynomial[E]) Mul(other *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible("multiply", other); err != nil {
		return nil, err
	}
	return p.mul(other), nil
}

func (p *Polynomial[E]) mul(other *Polynomial[E]) *Polynomial[E] {
	if p.IsZero() || other.IsZero() {
		return p.derive(nil)
	}

	coefficients := make([]E, len(p.coefficients)+len(other.coefficients)-1)
	for i := range coefficients {
		coefficients[i] = p.domain.Zero()
	}

	for i, coeff1 := range p.coefficients {
		if coeff1.IsZero() {
			continue
		}
		for j, coeff2 := range other.coefficients {
			coefficients[i+j] = coefficients[i+j].Add(coeff1.Mul(coeff2))
		}
	}
	return p.derive(coefficients)
}

// MulScalar multiplies the polynomial by a scalar
func (p *Polynomial[E]) MulScalar(scalar E) (*Polynomial[E], error) {
	if !p.domain.Contains(scalar) {
		return nil, utils.Errorf(utils.ErrIncompatibleDomain,
			"cannot multiply a polynomial over %s by %s", p.domain, scalar)
	}
	return p.scale(scalar), nil
}

func (p *Polynomial[E]) scale(scalar E) *Polynomial[E] {
	coefficients := make([]E, len(p.coefficients))
	for i, coeff := range p.coefficients {
		coefficients[i] = coeff.Mul(scalar)
	}
	return p.derive(coefficients)
}

// Pow raises the polynomial to the given power
func (p *Polynomial[E]) Pow(exponent *big.Int) (*Polynomial[E], error) {
	if exponent.Sign() < 0 {
		return nil, utils.Errorf(utils.ErrDomain, "negative exponents not supported")
	}

	result := p.derive([]E{p.domain.One()})
	base := p
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result = result.mul(base)
		}
		if i+1 < exponent.BitLen() {
			base = base.mul(base)
		}
	}
	return result, nil
}

// Compose returns p(other(x))
func (p *Polynomial[E]) Compose(other *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible("compose", other); err != nil {
		return nil, err
	}

	result := p.derive(nil)
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.mul(other).add(p.derive([]E{p.coefficients[i]}))
	}
	return result, nil
}

// DivMod divides p by divisor and returns the quotient and remainder.
// The divisor's leading coefficient must be invertible in the domain.
func (p *Polynomial[E]) DivMod(divisor *Polynomial[E]) (*Polynomial[E], *Polynomial[E], error) {
	if err := p.compatible("divide", divisor); err != nil {
		return nil, nil, err
	}
	lcInv, err := divisor.leadingInverse()
	if err != nil {
		return nil, nil, err
	}
	q, r := p.divMod(divisor, lcInv)
	return q, r, nil
}

func (p *Polynomial[E]) leadingInverse() (E, error) {
	if p.IsZero() {
		var zero E
		return zero, utils.Errorf(utils.ErrDomain, "division by the zero polynomial")
	}
	lcInv, err := p.LeadingCoefficient().Inv()
	if err != nil {
		var zero E
		return zero, utils.Wrap(utils.ErrDomain, err,
			"leading coefficient of %s is not invertible", p)
	}
	return lcInv, nil
}

// divMod is schoolbook long division by a divisor whose leading
// coefficient has inverse lcInv
func (p *Polynomial[E]) divMod(divisor *Polynomial[E], lcInv E) (*Polynomial[E], *Polynomial[E]) {
	n := divisor.Degree()
	if p.Degree() < n {
		return p.derive(nil), p
	}

	remainder := make([]E, len(p.coefficients))
	copy(remainder, p.coefficients)
	quotient := make([]E, len(p.coefficients)-n)
	for i := range quotient {
		quotient[i] = p.domain.Zero()
	}

	for i := len(remainder) - 1; i >= n; i-- {
		if remainder[i].IsZero() {
			continue
		}
		factor := remainder[i].Mul(lcInv)
		quotient[i-n] = factor
		for j := 0; j <= n; j++ {
			remainder[i-n+j] = remainder[i-n+j].Sub(factor.Mul(divisor.coefficients[j]))
		}
	}

	return p.derive(quotient), p.derive(remainder[:n])
}

// Quo returns the quotient of DivMod
func (p *Polynomial[E]) Quo(divisor *Polynomial[E]) (*Polynomial[E], error) {
	q, _, err := p.DivMod(divisor)
	return q, err
}

// Rem returns the remainder of DivMod
func (p *Polynomial[E]) Rem(divisor *Polynomial[E]) (*Polynomial[E], error) {
	_, r, err := p.DivMod(divisor)
	return r, err
}

// Derivative returns the formal derivative
func (p *Polynomial[E]) Derivative() *Polynomial[E] {
	if len(p.coefficients) <= 1 {
		return p.derive(nil)
	}
	coefficients := make([]E, len(p.coefficients)-1)
	for i := 1; i < len(p.coefficients); i++ {
		coefficients[i-1] = p.coefficients[i].Mul(p.domain.FromInt64(int64(i)))
	}
	return p.derive(coefficients)
}

// Equal reports whether two polynomials share a domain and coefficients
func (p *Polynomial[E]) Equal(other *Polynomial[E]) bool {
	if !SameDomain(p.domain, other.domain) || len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i, coeff := range p.coefficients {
		if !coeff.Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}

// EvalValue coerces v into the domain and evaluates p there
func (p *Polynomial[E]) EvalValue(v any) (E, error) {
	point, err := p.domain.Coerce(v)
	if err != nil {
		var zero E
		return zero, err
	}
	return p.Eval(point)
}

// AddValue adds the constant v, coerced into the domain
func (p *Polynomial[E]) AddValue(v any) (*Polynomial[E], error) {
	c, err := p.domain.Coerce(v)
	if err != nil {
		return nil, err
	}
	return p.add(p.derive([]E{c})), nil
}

// MulValue multiplies by the constant v, coerced into the domain
func (p *Polynomial[E]) MulValue(v any) (*Polynomial[E], error) {
	c, err := p.domain.Coerce(v)
	if err != nil {
		return nil, err
	}
	return p.scale(c), nil
}

// Convert maps every coefficient of p into target through the coercion table
func Convert[S Element[S], T Element[T]](p *Polynomial[S], target Domain[T]) (*Polynomial[T], error) {
	coefficients := make([]T, len(p.coefficients))
	for i, coeff := range p.coefficients {
		c, err := target.Coerce(coeff)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coefficients[i] = c
	}
	return newPolynomial(target, coefficients, p.variable), nil
}

// Key identifies the polynomial together with its domain
func (p *Polynomial[E]) Key() string {
	return p.domain.ID() + ":" + p.String()
}

// String returns a string representation of the polynomial, highest
// degree first, e.g. "3x^2 - x + (a + 1)"
func (p *Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		coeff := p.coefficients[i]
		if coeff.IsZero() {
			continue
		}

		s := coeff.String()
		negative := isNegativeInteger(s)
		if negative {
			s = s[1:]
		}

		switch {
		case b.Len() == 0 && negative:
			b.WriteString("-")
		case b.Len() > 0 && negative:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(formatTerm(s, i, p.variable))
	}
	return b.String()
}

func formatTerm(coeff string, degree int, variable string) string {
	if !isDigits(coeff) {
		coeff = "(" + coeff + ")"
	}
	if degree == 0 {
		return coeff
	}

	power := variable
	if degree > 1 {
		power = fmt.Sprintf("%s^%d", variable, degree)
	}
	if coeff == "1" {
		return power
	}
	return coeff + power
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isNegativeInteger(s string) bool {
	return len(s) > 1 && s[0] == '-' && isDigits(s[1:])
}
