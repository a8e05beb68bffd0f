package vybiumalgebra

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/factor"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/numbers"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/parse"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// ZZ is the ring of integers
var ZZ = core.ZZ

// ZZi is the ring of Gaussian integers
var ZZi = core.ZZi

// DefaultConfig returns the default factorization configuration
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// NewSeededSource returns a deterministic source drawing from a hash
// channel seeded with seed
func NewSeededSource(seed []byte) Source {
	return utils.NewSeededChannel(DefaultConfig().HashFunction, seed)
}

// NewCryptoSource returns a source backed by crypto/rand
func NewCryptoSource() Source {
	return utils.CryptoSource{}
}

// WithVariable names the polynomial variable when parsing
func WithVariable(variable string) ParseOption {
	return parse.WithVariable(variable)
}

// WithMaxDegree bounds the exponents accepted when parsing
func WithMaxDegree(degree int) ParseOption {
	return parse.WithMaxDegree(degree)
}

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, utils.Errorf(utils.ErrParse, "invalid integer %q", s)
	}
	return n, nil
}

// NewPrimeField creates GF(p) from a decimal modulus
func NewPrimeField(modulus string) (*PrimeField, error) {
	p, err := parseBig(modulus)
	if err != nil {
		return nil, err
	}
	return core.NewPrimeField(p)
}

// NewFiniteField creates GF(p)[a]/(modulus) with the modulus written in a
func NewFiniteField(p string, modulus string) (*FiniteField, error) {
	return NewFiniteFieldWithVariable(p, modulus, core.DefaultElementVariable)
}

// NewFiniteFieldWithVariable creates GF(p)[v]/(modulus) with the modulus
// written in variable
func NewFiniteFieldWithVariable(p string, modulus string, variable string) (*FiniteField, error) {
	prime, err := NewPrimeField(p)
	if err != nil {
		return nil, err
	}
	m, err := parse.Parse[*core.PrimeFieldElement](modulus, prime, parse.WithVariable(variable))
	if err != nil {
		return nil, err
	}
	return core.NewFiniteFieldWithVariable(m, variable)
}

// NewGaussianInteger creates re + im*i
func NewGaussianInteger(re, im int64) *GaussianInteger {
	return core.NewGaussianInteger(re, im)
}

// ParseIntPoly reads a polynomial over ZZ
func ParseIntPoly(text string, opts ...ParseOption) (*IntPoly, error) {
	return parse.Parse[*core.Integer](text, core.ZZ, opts...)
}

// ParseGaussianPoly reads a polynomial over ZZ[i]; coefficients are
// written as "(a + bi)"
func ParseGaussianPoly(text string, opts ...ParseOption) (*GaussianPoly, error) {
	return parse.Parse[*core.GaussianInteger](text, core.ZZi, opts...)
}

// ParsePrimePoly reads a polynomial over GF(p)
func ParsePrimePoly(text string, field *PrimeField, opts ...ParseOption) (*PFPoly, error) {
	return parse.Parse[*core.PrimeFieldElement](text, field, opts...)
}

// ParseFFPoly reads a polynomial over GF(p^n); coefficients outside GF(p)
// are written in parentheses in the field variable, e.g. "(a + 1)x^2"
func ParseFFPoly(text string, field *FiniteField, opts ...ParseOption) (*FFPoly, error) {
	return parse.Parse[*core.FiniteFieldElement](text, field, opts...)
}

// CoerceTo maps v into the domain of target
func CoerceTo(v any, target core.Target) (any, error) {
	return core.CoerceTo(v, target)
}

// Unify coerces a and b into their common domain
func Unify(a, b any) (any, any, error) {
	return core.Unify(a, b)
}

// Engine runs the factorization algorithms with a fixed configuration and
// source of randomness. An engine holding a source is not safe for
// concurrent use.
type Engine struct {
	config   *Config
	integers *numbers.Factorizer
	polys    *factor.Factorizer
}

// NewEngine creates an engine. A nil config selects the defaults; a nil
// source seeds a hash channel from every input.
func NewEngine(config *Config, source Source) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	integers, err := numbers.NewFactorizer(config, source)
	if err != nil {
		return nil, err
	}
	polys, err := factor.NewFactorizer(config, source)
	if err != nil {
		return nil, err
	}
	return &Engine{config: config.Clone(), integers: integers, polys: polys}, nil
}

// Config returns a copy of the engine configuration
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// FactorInteger factors a positive integer into primes
func (e *Engine) FactorInteger(n *big.Int) (*IntegerFactorization, error) {
	return e.integers.Factor(n)
}

// FactorIntegers factors several integers on the configured worker pool
func (e *Engine) FactorIntegers(ns []*big.Int) ([]*IntegerFactorization, error) {
	return e.integers.FactorBatch(ns)
}

// Factor factors a polynomial over GF(p^n)
func (e *Engine) Factor(f *FFPoly) (*FFFactorization, error) {
	return e.polys.Factor(f)
}

// FactorPrime factors a polynomial over GF(p)
func (e *Engine) FactorPrime(f *PFPoly) (*PFFactorization, error) {
	return e.polys.FactorPrime(f)
}

// FactorInteger factors n with the default configuration
func FactorInteger(n *big.Int) (*IntegerFactorization, error) {
	return numbers.Factor(n)
}

// Factor factors f with the default configuration
func Factor(f *FFPoly) (*FFFactorization, error) {
	return factor.Factor(f)
}

// FactorPrime factors f with the default configuration
func FactorPrime(f *PFPoly) (*PFFactorization, error) {
	return factor.FactorPrime(f)
}
