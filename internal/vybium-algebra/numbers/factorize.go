// Package numbers factors integers into primes.
//
// Small prime factors are removed by trial division; the remaining cofactor
// is split with Brent's variant of Pollard rho. Cofactors that fit in 64 bits
// run on 128-bit modular products and a deterministic Miller-Rabin test.
package numbers

import (
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/dolthub/swiss"
	logging "github.com/ipfs/go-log/v2"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

var log = logging.Logger("numbers")

// PrimePower is a prime together with its multiplicity
type PrimePower struct {
	Prime    *big.Int
	Exponent int
}

// Factorization is the prime factorization of a positive integer, ordered
// by increasing prime. The factorization of 1 is empty.
type Factorization struct {
	n       *big.Int
	factors []PrimePower
}

// N returns the factored integer
func (f *Factorization) N() *big.Int {
	return new(big.Int).Set(f.n)
}

// Factors returns a copy of the prime powers
func (f *Factorization) Factors() []PrimePower {
	out := make([]PrimePower, len(f.factors))
	for i, factor := range f.factors {
		out[i] = PrimePower{Prime: new(big.Int).Set(factor.Prime), Exponent: factor.Exponent}
	}
	return out
}

// Len returns the number of distinct primes
func (f *Factorization) Len() int {
	return len(f.factors)
}

// Primes returns the distinct primes in increasing order
func (f *Factorization) Primes() []*big.Int {
	primes := make([]*big.Int, len(f.factors))
	for i, factor := range f.factors {
		primes[i] = new(big.Int).Set(factor.Prime)
	}
	return primes
}

// Exponent returns the multiplicity of p, or 0 if p does not divide n
func (f *Factorization) Exponent(p *big.Int) int {
	i := sort.Search(len(f.factors), func(i int) bool {
		return f.factors[i].Prime.Cmp(p) >= 0
	})
	if i < len(f.factors) && f.factors[i].Prime.Cmp(p) == 0 {
		return f.factors[i].Exponent
	}
	return 0
}

// Product multiplies the prime powers back together
func (f *Factorization) Product() *big.Int {
	product := big.NewInt(1)
	for _, factor := range f.factors {
		product.Mul(product, new(big.Int).Exp(factor.Prime, big.NewInt(int64(factor.Exponent)), nil))
	}
	return product
}

// String formats the factorization as "2^3 * 5"
func (f *Factorization) String() string {
	if len(f.factors) == 0 {
		return "1"
	}
	terms := make([]string, len(f.factors))
	for i, factor := range f.factors {
		if factor.Exponent == 1 {
			terms[i] = factor.Prime.String()
		} else {
			terms[i] = factor.Prime.String() + "^" + big.NewInt(int64(factor.Exponent)).String()
		}
	}
	return strings.Join(terms, " * ")
}

// Factorizer factors integers with a fixed configuration. The optional
// source picks Pollard rho constants; without one the constants 1, 2, 3, ...
// are used, which keeps results reproducible.
type Factorizer struct {
	config *utils.Config
	source utils.Source
	primes []uint64
}

// NewFactorizer creates a factorizer. A nil config selects the defaults.
func NewFactorizer(config *utils.Config, source utils.Source) (*Factorizer, error) {
	if config == nil {
		config = utils.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, utils.Wrap(utils.ErrDomain, err, "invalid factorizer configuration")
	}
	return &Factorizer{
		config: config.Clone(),
		source: source,
		primes: smallPrimes(config.TrialDivisionBound),
	}, nil
}

var (
	defaultFactorizer     *Factorizer
	defaultFactorizerOnce sync.Once
)

func getDefaultFactorizer() *Factorizer {
	defaultFactorizerOnce.Do(func() {
		defaultFactorizer, _ = NewFactorizer(nil, nil)
	})
	return defaultFactorizer
}

// Factor factors n with the default configuration
func Factor(n *big.Int) (*Factorization, error) {
	return getDefaultFactorizer().Factor(n)
}

// FactorInt64 factors n with the default configuration
func FactorInt64(n int64) (*Factorization, error) {
	return Factor(big.NewInt(n))
}

// PrimeDivisors returns the distinct primes dividing n in increasing order
func PrimeDivisors(n *big.Int) ([]*big.Int, error) {
	f, err := Factor(n)
	if err != nil {
		return nil, err
	}
	return f.Primes(), nil
}

type pendingFactor struct {
	value    *big.Int
	exponent int
}

// Factor returns the prime factorization of n. It fails with a DomainError
// for n <= 0 and returns the empty factorization for n = 1.
func (f *Factorizer) Factor(n *big.Int) (*Factorization, error) {
	if n.Sign() <= 0 {
		return nil, utils.Errorf(utils.ErrDomain, "cannot factor non-positive integer %s", n)
	}

	counts := swiss.NewMap[string, PrimePower](16)
	record := func(p *big.Int, e int) {
		key := p.String()
		if existing, ok := counts.Get(key); ok {
			existing.Exponent += e
			counts.Put(key, existing)
			return
		}
		counts.Put(key, PrimePower{Prime: new(big.Int).Set(p), Exponent: e})
	}

	m := new(big.Int).Set(n)
	m = f.trialDivide(m, record)

	pending := []pendingFactor{{value: m, exponent: 1}}
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		v := next.value
		if v.Cmp(big.NewInt(1)) == 0 {
			continue
		}
		if f.isPrime(v) {
			record(v, next.exponent)
			continue
		}
		if base, k := perfectPower(v); k > 1 {
			pending = append(pending, pendingFactor{value: base, exponent: next.exponent * k})
			continue
		}

		d, err := f.findDivisor(v)
		if err != nil {
			return nil, err
		}
		pending = append(pending,
			pendingFactor{value: d, exponent: next.exponent},
			pendingFactor{value: new(big.Int).Quo(v, d), exponent: next.exponent})
	}

	factors := make([]PrimePower, 0, counts.Count())
	counts.Iter(func(_ string, factor PrimePower) bool {
		factors = append(factors, factor)
		return false
	})
	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Prime.Cmp(factors[j].Prime) < 0
	})

	return &Factorization{n: new(big.Int).Set(n), factors: factors}, nil
}

// trialDivide strips the sieved primes from m and returns the cofactor
func (f *Factorizer) trialDivide(m *big.Int, record func(*big.Int, int)) *big.Int {
	bp := new(big.Int)
	q := new(big.Int)
	r := new(big.Int)

	for _, p := range f.primes {
		if m.IsUint64() && p*p > m.Uint64() {
			if m.Cmp(big.NewInt(1)) > 0 {
				record(m, 1)
			}
			return big.NewInt(1)
		}

		bp.SetUint64(p)
		e := 0
		for {
			q.QuoRem(m, bp, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			e++
		}
		if e > 0 {
			record(bp, e)
		}
	}
	return m
}

func (f *Factorizer) isPrime(v *big.Int) bool {
	if v.IsUint64() {
		return isPrime64(v.Uint64())
	}
	return v.ProbablyPrime(f.config.PrimalityRounds)
}

// rhoConstant picks the constant of f(x) = x^2 + c for a restart
func (f *Factorizer) rhoConstant(attempt int, v *big.Int) *big.Int {
	if f.source == nil {
		return big.NewInt(int64(attempt + 1))
	}
	c := f.source.Int(new(big.Int).Sub(v, big.NewInt(3)))
	return c.Add(c, big.NewInt(1))
}

// findDivisor returns a nontrivial divisor of the composite v
func (f *Factorizer) findDivisor(v *big.Int) (*big.Int, error) {
	if v.Bit(0) == 0 {
		return big.NewInt(2), nil
	}
	for attempt := 0; attempt < f.config.RhoRestarts; attempt++ {
		c := f.rhoConstant(attempt, v)
		if v.IsUint64() {
			if d, ok := rho64(v.Uint64(), c.Uint64(), f.config.RhoMaxIterations); ok {
				return new(big.Int).SetUint64(d), nil
			}
		} else if d, ok := rhoBig(v, c, f.config.RhoMaxIterations); ok {
			return d, nil
		}
		log.Debugf("pollard rho restart %d for %s (c = %s)", attempt+1, v, c)
	}

	log.Warnf("pollard rho exhausted %d restarts on %s", f.config.RhoRestarts, v)
	return nil, utils.Errorf(utils.ErrDomain,
		"pollard rho found no divisor of %s after %d restarts", v, f.config.RhoRestarts)
}

// rhoBig is rho64 on arbitrary-precision integers
func rhoBig(n, c *big.Int, maxIterations int) (*big.Int, bool) {
	const batch = 128

	f := func(v *big.Int) *big.Int {
		out := new(big.Int).Mul(v, v)
		out.Add(out, c)
		return out.Mod(out, n)
	}

	diff := new(big.Int)
	one := big.NewInt(1)
	y, g, q := big.NewInt(2), big.NewInt(1), big.NewInt(1)
	var x, ys *big.Int
	iterations := 0

	for r := 1; g.Cmp(one) == 0; r <<= 1 {
		x = y
		for i := 0; i < r; i++ {
			y = f(y)
		}
		for k := 0; k < r && g.Cmp(one) == 0; k += batch {
			ys = y
			for i := 0; i < min(batch, r-k); i++ {
				y = f(y)
				diff.Sub(x, y)
				diff.Abs(diff)
				q.Mul(q, diff)
				q.Mod(q, n)
			}
			g = new(big.Int).GCD(nil, nil, q, n)
		}
		iterations += 2 * r
		if g.Cmp(one) == 0 && iterations > maxIterations {
			return nil, false
		}
	}

	if g.Cmp(n) == 0 {
		for i := 0; i < maxIterations; i++ {
			ys = f(ys)
			diff.Sub(x, ys)
			diff.Abs(diff)
			g = new(big.Int).GCD(nil, nil, diff, n)
			if g.Cmp(one) > 0 {
				break
			}
		}
	}

	if g.Cmp(one) == 0 || g.Cmp(n) == 0 {
		return nil, false
	}
	return g, true
}
