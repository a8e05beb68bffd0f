package vybiumalgebra

import (
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/factor"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/numbers"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/parse"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// PrimeField is GF(p)
type PrimeField = core.PrimeField

// PrimeFieldElement is an element of GF(p)
type PrimeFieldElement = core.PrimeFieldElement

// FiniteField is GF(p^n) presented as GF(p)[a]/(m)
type FiniteField = core.FiniteField

// FiniteFieldElement is an element of GF(p^n)
type FiniteFieldElement = core.FiniteFieldElement

// Integer is an element of ZZ
type Integer = core.Integer

// GaussianInteger is an element of ZZ[i]
type GaussianInteger = core.GaussianInteger

// IntPoly is a polynomial over ZZ
type IntPoly = core.IntPoly

// GaussianPoly is a polynomial over ZZ[i]
type GaussianPoly = core.GaussianPoly

// PFPoly is a polynomial over GF(p)
type PFPoly = core.PFPoly

// FFPoly is a polynomial over GF(p^n)
type FFPoly = core.FFPoly

// IntegerFactorization is the prime factorization of a positive integer
type IntegerFactorization = numbers.Factorization

// FFFactorization factors a polynomial over GF(p^n)
type FFFactorization = factor.Factorization[*core.FiniteFieldElement]

// PFFactorization factors a polynomial over GF(p)
type PFFactorization = factor.Factorization[*core.PrimeFieldElement]

// Config holds the tuning knobs of the factorization engines
type Config = utils.Config

// Source supplies the random choices of randomized algorithms
type Source = utils.Source

// ParseOption configures polynomial parsing
type ParseOption = parse.Option

// Kind classifies the values the coercion table accepts
type Kind = core.Kind
