package vybiumalgebra

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiniteFieldRoundTrip(t *testing.T) {
	gf9, err := NewFiniteField("3", "a^2 + 1")
	require.NoError(t, err)
	require.Equal(t, "GF(3^2)/(a^2 + 1)", gf9.ID())

	f, err := ParseFFPoly("(a + 1)x^2 + 2x + (2a)", gf9)
	require.NoError(t, err)
	g, err := ParseFFPoly(f.String(), gf9)
	require.NoError(t, err)
	require.True(t, f.Equal(g))

	_, err = NewFiniteField("3", "a^2 + 2")
	require.ErrorIs(t, err, InvalidModulusError)
	require.ErrorIs(t, err, DomainError)

	_, err = NewFiniteField("9", "a^2 + 1")
	require.ErrorIs(t, err, InvalidModulusError)

	_, err = NewFiniteField("three", "a^2 + 1")
	require.ErrorIs(t, err, ParseError)

	field, err := NewFiniteFieldWithVariable("2", "w^3 + w + 1", "w")
	require.NoError(t, err)
	require.Equal(t, "w", field.Variable())
}

func TestFactorPolynomial(t *testing.T) {
	gf9, err := NewFiniteField("3", "a^2 + 1")
	require.NoError(t, err)

	f, err := ParseFFPoly("x^2 + 1", gf9)
	require.NoError(t, err)

	factorization, err := Factor(f)
	require.NoError(t, err)
	require.Equal(t, "(x + (a)) * (x + (2a))", factorization.String())

	data, err := MarshalJSON(NewPolynomialResult(f, factorization))
	require.NoError(t, err)
	require.Equal(t,
		`{"input":"x^2 + 1","domain":"GF(3^2)/(a^2 + 1)","unit":"1","factors":[{"factor":"x + (a)","multiplicity":1},{"factor":"x + (2a)","multiplicity":1}]}`,
		string(data))

	var decoded FactorizationResult
	require.NoError(t, UnmarshalJSON(data, &decoded))
	require.Equal(t, *NewPolynomialResult(f, factorization), decoded)
}

func TestFactorPrimePolynomial(t *testing.T) {
	gf5, err := NewPrimeField("5")
	require.NoError(t, err)

	f, err := ParsePrimePoly("3t^3 + 3", gf5, WithVariable("t"))
	require.NoError(t, err)

	factorization, err := FactorPrime(f)
	require.NoError(t, err)
	product, err := factorization.Product()
	require.NoError(t, err)
	require.True(t, product.Equal(f))

	result := NewPolynomialResult(f, factorization)
	require.Equal(t, "3", result.Unit)
	require.Equal(t, "t + 1", result.Factors[0].Factor)
}

func TestEngine(t *testing.T) {
	engine, err := NewEngine(DefaultConfig().WithWorkers(2), NewSeededSource([]byte("engine")))
	require.NoError(t, err)
	require.Equal(t, 2, engine.Config().Workers)

	n, _ := new(big.Int).SetString("1000036000099", 10)
	factorization, err := engine.FactorInteger(n)
	require.NoError(t, err)
	require.Equal(t, "1000003 * 1000033", factorization.String())

	batch, err := engine.FactorIntegers([]*big.Int{big.NewInt(360), big.NewInt(97)})
	require.NoError(t, err)
	require.Equal(t, "2^3 * 3^2 * 5", batch[0].String())
	require.Equal(t, "97", batch[1].String())

	gf2, err := NewPrimeField("2")
	require.NoError(t, err)
	f, err := ParsePrimePoly("x^4 + 1", gf2)
	require.NoError(t, err)
	polyFactorization, err := engine.FactorPrime(f)
	require.NoError(t, err)
	require.Equal(t, "(x + 1)^4", polyFactorization.String())

	_, err = NewEngine(DefaultConfig().WithWorkers(0), nil)
	require.ErrorIs(t, err, DomainError)
}

func TestIntegerResultJSON(t *testing.T) {
	factorization, err := FactorInteger(big.NewInt(360))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(NewIntegerResult(factorization)))
	require.Equal(t,
		`{"input":"360","domain":"ZZ","factors":[{"factor":"2","multiplicity":3},{"factor":"3","multiplicity":2},{"factor":"5","multiplicity":1}]}`+"\n",
		buf.String())

	_, err = FactorInteger(big.NewInt(0))
	require.ErrorIs(t, err, DomainError)
}

func TestGaussianPolynomials(t *testing.T) {
	f, err := ParseGaussianPoly("(1 + i)x + 2")
	require.NoError(t, err)
	g, err := f.Mul(f)
	require.NoError(t, err)
	require.True(t, g.Coefficient(2).Equal(NewGaussianInteger(0, 2)))
	require.True(t, g.Coefficient(1).Equal(NewGaussianInteger(4, 4)))

	_, err = ParseIntPoly("x^3 +")
	require.ErrorIs(t, err, ParseError)
}

func TestCoercion(t *testing.T) {
	gf7, err := NewPrimeField("7")
	require.NoError(t, err)
	gf9, err := NewFiniteField("3", "a^2 + 1")
	require.NoError(t, err)

	v, err := CoerceTo(10, gf7)
	require.NoError(t, err)
	require.Equal(t, "3", v.(*PrimeFieldElement).String())

	_, _, err = Unify(gf7.One(), gf9.One())
	require.True(t, errors.Is(err, IncompatibleDomainError))
}
