package core

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/numbers"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// Operations below need a coefficient field.

func (p *Polynomial[E]) requireField(op string) error {
	if !p.domain.IsField() {
		return utils.Errorf(utils.ErrDomain, "%s needs a field, %s is not one", op, p.domain)
	}
	return nil
}

// Monic divides every coefficient by the leading coefficient
func (p *Polynomial[E]) Monic() (*Polynomial[E], error) {
	lcInv, err := p.leadingInverse()
	if err != nil {
		return nil, err
	}
	return p.scale(lcInv), nil
}

// IsMonic reports whether the leading coefficient is one
func (p *Polynomial[E]) IsMonic() bool {
	return !p.IsZero() && p.LeadingCoefficient().IsOne()
}

// GCD returns the monic greatest common divisor. gcd(0, 0) is 0.
func (p *Polynomial[E]) GCD(other *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible("take the gcd of", other); err != nil {
		return nil, err
	}
	if err := p.requireField("gcd"); err != nil {
		return nil, err
	}

	a, b := p, other
	for !b.IsZero() {
		lcInv, err := b.leadingInverse()
		if err != nil {
			return nil, err
		}
		_, r := a.divMod(b, lcInv)
		a, b = b, r
	}
	if a.IsZero() {
		return a, nil
	}
	return a.Monic()
}

// ExtendedGCD returns g, s, t with s*p + t*other = g and g monic
func (p *Polynomial[E]) ExtendedGCD(other *Polynomial[E]) (g, s, t *Polynomial[E], err error) {
	if err := p.compatible("take the gcd of", other); err != nil {
		return nil, nil, nil, err
	}
	if err := p.requireField("extended gcd"); err != nil {
		return nil, nil, nil, err
	}

	zero := p.derive(nil)
	one := p.derive([]E{p.domain.One()})

	r0, r1 := p, other
	s0, s1 := one, zero
	t0, t1 := zero, one
	for !r1.IsZero() {
		lcInv, err := r1.leadingInverse()
		if err != nil {
			return nil, nil, nil, err
		}
		q, r := r0.divMod(r1, lcInv)
		r0, r1 = r1, r
		s0, s1 = s1, s0.sub(q.mul(s1))
		t0, t1 = t1, t0.sub(q.mul(t1))
	}

	if r0.IsZero() {
		return zero, zero, zero, nil
	}
	lcInv, err := r0.leadingInverse()
	if err != nil {
		return nil, nil, nil, err
	}
	return r0.scale(lcInv), s0.scale(lcInv), t0.scale(lcInv), nil
}

// ModInverse returns the inverse of p modulo modulus
func (p *Polynomial[E]) ModInverse(modulus *Polynomial[E]) (*Polynomial[E], error) {
	g, s, _, err := p.ExtendedGCD(modulus)
	if err != nil {
		return nil, err
	}
	if !g.IsOne() {
		return nil, utils.Errorf(utils.ErrDomain, "%s is not invertible modulo %s", p, modulus)
	}
	return s.Rem(modulus)
}

// PowMod returns p^exponent mod modulus
func (p *Polynomial[E]) PowMod(exponent *big.Int, modulus *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible("reduce", modulus); err != nil {
		return nil, err
	}
	if exponent.Sign() < 0 {
		return nil, utils.Errorf(utils.ErrDomain, "negative exponents not supported")
	}
	lcInv, err := modulus.leadingInverse()
	if err != nil {
		return nil, err
	}

	reduce := func(a *Polynomial[E]) *Polynomial[E] {
		_, r := a.divMod(modulus, lcInv)
		return r
	}

	result := reduce(p.derive([]E{p.domain.One()}))
	base := reduce(p)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result = reduce(result.mul(result))
		if exponent.Bit(i) == 1 {
			result = reduce(result.mul(base))
		}
	}
	return result, nil
}

// frobeniusPowers returns x^(q^k) mod p for k = 0..n where q is the order
// of the coefficient field
func (p *Polynomial[E]) frobeniusPowers(n int) ([]*Polynomial[E], error) {
	q := p.domain.Order()
	x := Monomial(p.domain, p.domain.One(), 1).WithVariable(p.variable)
	current, err := x.Rem(p)
	if err != nil {
		return nil, err
	}

	powers := []*Polynomial[E]{current}
	for k := 1; k <= n; k++ {
		current, err = current.PowMod(q, p)
		if err != nil {
			return nil, err
		}
		powers = append(powers, current)
	}
	return powers, nil
}

// IsIrreducible runs Rabin's test: p of degree n over GF(q) is irreducible
// iff x^(q^n) = x mod p and gcd(x^(q^(n/r)) - x, p) = 1 for every prime r | n.
// Constants are units and never irreducible.
func (p *Polynomial[E]) IsIrreducible() (bool, error) {
	if err := p.requireField("irreducibility test"); err != nil {
		return false, err
	}
	if p.domain.Order() == nil {
		return false, utils.Errorf(utils.ErrDomain, "irreducibility test needs a finite field, got %s", p.domain)
	}

	n := p.Degree()
	if n <= 0 {
		return false, nil
	}
	if n == 1 {
		return true, nil
	}

	f, err := p.Monic()
	if err != nil {
		return false, err
	}
	powers, err := f.frobeniusPowers(n)
	if err != nil {
		return false, err
	}
	x := powers[0]
	if !powers[n].Equal(x) {
		return false, nil
	}

	primes, err := numbers.PrimeDivisors(big.NewInt(int64(n)))
	if err != nil {
		return false, err
	}
	for _, r := range primes {
		h := powers[n/int(r.Int64())].sub(x)
		g, err := h.GCD(f)
		if err != nil {
			return false, err
		}
		if !g.IsOne() {
			return false, nil
		}
	}
	return true, nil
}
