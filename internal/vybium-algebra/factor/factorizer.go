// Package factor factors polynomials over finite fields.
//
// A polynomial is made monic, split into square-free parts, each part is
// grouped by the degree of its irreducible factors, and each group is split
// with the randomized Cantor-Zassenhaus algorithm. The randomness is an
// injected utils.Source; without one each call draws from a hash channel
// seeded by the input, so results are reproducible.
package factor

import (
	"sort"
	"sync"

	"github.com/dolthub/swiss"
	logging "github.com/ipfs/go-log/v2"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

var log = logging.Logger("factor")

// Factorizer factors polynomials over finite fields with a fixed
// configuration and randomness source. It is not safe for concurrent use
// when it holds a source.
type Factorizer struct {
	config *utils.Config
	source utils.Source
}

// NewFactorizer creates a factorizer. A nil config selects the defaults; a
// nil source selects a per-call channel seeded by the input.
func NewFactorizer(config *utils.Config, source utils.Source) (*Factorizer, error) {
	if config == nil {
		config = utils.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, utils.Wrap(utils.ErrDomain, err, "invalid factorizer configuration")
	}
	return &Factorizer{config: config.Clone(), source: source}, nil
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

// Factor factors f with the default configuration
func Factor(f *core.FFPoly) (*Factorization[*core.FiniteFieldElement], error) {
	return getDefaultFactorizer().Factor(f)
}

// FactorPrime factors a prime field polynomial with the default configuration
func FactorPrime(f *core.PFPoly) (*Factorization[*core.PrimeFieldElement], error) {
	return getDefaultFactorizer().FactorPrime(f)
}

// Factor writes f as its leading coefficient times a product of monic
// irreducible factors. The zero polynomial has no factorization; a
// constant is its own unit with no factors.
func (fz *Factorizer) Factor(f *core.FFPoly) (*Factorization[*core.FiniteFieldElement], error) {
	if f.IsZero() {
		return nil, utils.Errorf(utils.ErrDomain, "cannot factor the zero polynomial")
	}
	field := core.FieldOf(f)
	if field == nil {
		return nil, utils.Errorf(utils.ErrDomain, "factorization needs a finite field, got %s", f.Domain())
	}

	result := &Factorization[*core.FiniteFieldElement]{
		Unit:   f.LeadingCoefficient(),
		domain: field,
	}
	if f.Degree() == 0 {
		return result, nil
	}

	monic, err := f.Monic()
	if err != nil {
		return nil, err
	}

	source := fz.source
	if source == nil {
		source = utils.NewSeededChannel(fz.config.HashFunction, []byte(f.Key()))
	}

	parts, err := SquareFree(monic)
	if err != nil {
		return nil, err
	}

	merged := swiss.NewMap[string, PolyFactor[*core.FiniteFieldElement]](uint32(monic.Degree()))
	for _, part := range parts {
		groups, err := DistinctDegree(part.Poly)
		if err != nil {
			return nil, err
		}
		for _, group := range groups {
			irreducibles, err := fz.EqualDegree(group.Poly, group.Degree, source)
			if err != nil {
				return nil, err
			}
			for _, g := range irreducibles {
				key := g.String()
				if existing, ok := merged.Get(key); ok {
					existing.Multiplicity += part.Multiplicity
					merged.Put(key, existing)
					continue
				}
				merged.Put(key, PolyFactor[*core.FiniteFieldElement]{Poly: g, Multiplicity: part.Multiplicity})
			}
		}
	}

	result.Factors = make([]PolyFactor[*core.FiniteFieldElement], 0, merged.Count())
	merged.Iter(func(_ string, factor PolyFactor[*core.FiniteFieldElement]) bool {
		result.Factors = append(result.Factors, factor)
		return false
	})
	sort.Slice(result.Factors, func(i, j int) bool {
		return core.CompareFFPoly(result.Factors[i].Poly, result.Factors[j].Poly) < 0
	})

	log.Debugf("factored %s over %s into %d irreducible factors", f, field, len(result.Factors))
	return result, nil
}

// FactorPrime factors a polynomial over GF(p) by viewing GF(p) as the
// degree-one extension GF(p)[a]/(a) and mapping the factors back
func (fz *Factorizer) FactorPrime(f *core.PFPoly) (*Factorization[*core.PrimeFieldElement], error) {
	prime, ok := f.Domain().(*core.PrimeField)
	if !ok {
		return nil, utils.Errorf(utils.ErrDomain, "expected a prime field polynomial, got one over %s", f.Domain())
	}

	lifted, err := core.LiftToExtension(f, core.PrimeExtension(prime))
	if err != nil {
		return nil, err
	}
	factorization, err := fz.Factor(lifted)
	if err != nil {
		return nil, err
	}

	unit, _ := factorization.Unit.PrimeSubfieldValue()
	result := &Factorization[*core.PrimeFieldElement]{
		Unit:    unit,
		Factors: make([]PolyFactor[*core.PrimeFieldElement], len(factorization.Factors)),
		domain:  prime,
	}
	for i, factor := range factorization.Factors {
		poly, err := core.DemoteToPrimeField(factor.Poly, prime)
		if err != nil {
			return nil, err
		}
		result.Factors[i] = PolyFactor[*core.PrimeFieldElement]{Poly: poly, Multiplicity: factor.Multiplicity}
	}
	return result, nil
}
