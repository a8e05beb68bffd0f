package factor

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/numbers"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// EqualDegree splits a monic square-free f whose irreducible factors all
// have degree d, using the default retry bound
func EqualDegree(f *core.FFPoly, d int, source utils.Source) ([]*core.FFPoly, error) {
	return getDefaultFactorizer().EqualDegree(f, d, source)
}

// EqualDegree splits a monic square-free f whose irreducible factors all
// have degree d into those factors (Cantor-Zassenhaus).
//
// Each attempt draws h of degree < deg f from source and computes a
// splitting polynomial g: h^((q^d-1)/2) - 1 for odd q, or the trace
// h + h^2 + ... + h^(2^(kd-1)) for q = 2^k. Every pending product u is
// replaced by gcd(u, g) and u/gcd(u, g) when that gcd is proper. Attempts
// that split nothing are degenerate and retried, up to
// Config.SplitAttempts.
func (fz *Factorizer) EqualDegree(f *core.FFPoly, d int, source utils.Source) ([]*core.FFPoly, error) {
	if f.IsZero() || !f.IsMonic() {
		return nil, utils.Errorf(utils.ErrDomain, "equal-degree splitting expects a monic polynomial, got %s", f)
	}
	if d <= 0 || f.Degree()%d != 0 {
		return nil, utils.Errorf(utils.ErrDomain, "degree %d of %s is not a multiple of %d", f.Degree(), f, d)
	}
	field := core.FieldOf(f)
	if field == nil {
		return nil, utils.Errorf(utils.ErrDomain, "equal-degree splitting needs a finite field, got %s", f.Domain())
	}

	count := f.Degree() / d
	if count == 1 {
		return []*core.FFPoly{f}, nil
	}
	if source == nil {
		source = utils.NewSeededChannel(fz.config.HashFunction, []byte(f.Key()))
	}

	splitter, err := fz.splitter(field, d)
	if err != nil {
		return nil, err
	}

	pending := []*core.FFPoly{f}
	attempts := fz.config.SplitAttempts(count, field.Order())
	for attempt := 0; attempt < attempts && len(pending) < count; attempt++ {
		h := randomPolynomial(field, f.Degree(), f.Variable(), source)
		if h.Degree() <= 0 {
			log.Debugf("attempt %d on %s: constant h", attempt+1, f)
			continue
		}

		g, err := splitter(h, f)
		if err != nil {
			return nil, err
		}

		split := false
		next := make([]*core.FFPoly, 0, len(pending)+1)
		for _, u := range pending {
			if u.Degree() == d {
				next = append(next, u)
				continue
			}
			common, err := u.GCD(g)
			if err != nil {
				return nil, err
			}
			if common.Degree() <= 0 || common.Degree() == u.Degree() {
				next = append(next, u)
				continue
			}
			cofactor, err := u.Quo(common)
			if err != nil {
				return nil, err
			}
			next = append(next, common, cofactor)
			split = true
		}
		pending = next

		if !split {
			log.Debugf("attempt %d on %s: degenerate split with h = %s", attempt+1, f, h)
		}
	}

	if len(pending) < count {
		log.Warnf("equal-degree splitting of %s exhausted %d attempts with %d of %d factors",
			f, attempts, len(pending), count)
		return nil, utils.Errorf(utils.ErrDomain,
			"could not split %s into %d factors of degree %d within %d attempts; is it square-free?",
			f, count, d, attempts)
	}
	return pending, nil
}

type splitFunc func(h, f *core.FFPoly) (*core.FFPoly, error)

func (fz *Factorizer) splitter(field *core.FiniteField, d int) (splitFunc, error) {
	q := field.Order()

	if q.Bit(0) == 1 {
		// (q^d - 1) / 2
		exponent := new(big.Int).Exp(q, big.NewInt(int64(d)), nil)
		exponent.Sub(exponent, big.NewInt(1))
		exponent.Rsh(exponent, 1)

		return func(h, f *core.FFPoly) (*core.FFPoly, error) {
			power, err := h.PowMod(exponent, f)
			if err != nil {
				return nil, err
			}
			return power.AddValue(-1)
		}, nil
	}

	// q = 2^k; the trace to GF(2) runs over k*d squarings
	order, err := numbers.Factor(q)
	if err != nil {
		return nil, err
	}
	k := order.Exponent(big.NewInt(2))
	if order.Len() != 1 || k == 0 {
		return nil, utils.Errorf(utils.ErrDomain, "field order %s is neither odd nor a power of two", q)
	}
	two := big.NewInt(2)
	steps := k * d

	return func(h, f *core.FFPoly) (*core.FFPoly, error) {
		term, err := h.Rem(f)
		if err != nil {
			return nil, err
		}
		trace := term
		for i := 1; i < steps; i++ {
			if term, err = term.PowMod(two, f); err != nil {
				return nil, err
			}
			if trace, err = trace.Add(term); err != nil {
				return nil, err
			}
		}
		return trace, nil
	}, nil
}

// randomPolynomial draws the coefficients of x^0 .. x^(n-1) in turn
func randomPolynomial(field *core.FiniteField, n int, variable string, source utils.Source) *core.FFPoly {
	coefficients := make([]*core.FiniteFieldElement, n)
	for i := range coefficients {
		coefficients[i] = field.RandomElement(source)
	}
	h, _ := core.NewFFPoly(field, coefficients)
	return h.WithVariable(variable)
}
