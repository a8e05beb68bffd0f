package parse_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/parse"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

func assertNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err != nil {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Fatalf("%sunexpected err: %s", message, err)
	}
}

func assertParseError(t *testing.T, err error, msgAndArgs ...any) {
	if !errors.Is(err, utils.ParseError) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sexpected parse error, got: %v", message, err)
	}
}

func assertContains(t *testing.T, actual, expected string, msgAndArgs ...any) {
	if !strings.Contains(actual, expected) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func assertEqual(t *testing.T, actual, expected any, msgAndArgs ...any) {
	if !reflect.DeepEqual(actual, expected) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func mustFiniteField(t *testing.T, p int64, coefficients []int64) *core.FiniteField {
	f, err := core.NewFiniteFieldFromInt64(p, coefficients)
	assertNoError(t, err, "field construction")
	return f
}

func TestParser(t *testing.T) {
	spec.Run(t, "Integers", func(t *testing.T, when spec.G, it spec.S) {
		it("reads canonical form", func() {
			p, err := parse.Parse[*core.Integer]("3x^2 - x + 5", core.ZZ)
			assertNoError(t, err)
			assertEqual(t, p.Degree(), 2)
			assertEqual(t, p.Coefficient(1).String(), "-1")
			assertEqual(t, p.String(), "3x^2 - x + 5")
		})

		it("sums terms of equal degree", func() {
			p, err := parse.Parse[*core.Integer]("x + 2*x - 4 + x^3 + 4", core.ZZ)
			assertNoError(t, err)
			assertEqual(t, p.String(), "x^3 + 3x")
		})

		it("accepts a leading sign", func() {
			p, err := parse.Parse[*core.Integer]("-x^4 + 1", core.ZZ)
			assertNoError(t, err)
			assertEqual(t, p.String(), "-x^4 + 1")

			p, err = parse.Parse[*core.Integer]("+7", core.ZZ)
			assertNoError(t, err)
			assertEqual(t, p.String(), "7")
		})

		it("reads cancelling terms as zero", func() {
			p, err := parse.Parse[*core.Integer]("x - x", core.ZZ)
			assertNoError(t, err)
			assertEqual(t, p.IsZero(), true)
			assertEqual(t, p.Degree(), core.NegativeInfinity)
		})

		it("uses a custom variable", func() {
			p, err := parse.Parse[*core.Integer]("t^2 + 1", core.ZZ, parse.WithVariable("t"))
			assertNoError(t, err)
			assertEqual(t, p.Variable(), "t")
			assertEqual(t, p.String(), "t^2 + 1")

			_, err = parse.Parse[*core.Integer]("x^2 + 1", core.ZZ, parse.WithVariable("t"))
			assertParseError(t, err)
			assertContains(t, err.Error(), "unknown identifier")
		})

		it("accepts constant parenthesised coefficients", func() {
			p, err := parse.Parse[*core.Integer]("(2 + 3)x", core.ZZ)
			assertNoError(t, err)
			assertEqual(t, p.String(), "5x")
		})

		it("round-trips printed polynomials", func() {
			for _, coeffs := range [][]int64{{0}, {1}, {-1}, {0, 1}, {0, -1}, {5, 0, -3, 1}, {-2, 7, 0, 0, 12}} {
				p := core.NewIntPoly(coeffs)
				q, err := parse.Parse[*core.Integer](p.String(), core.ZZ)
				assertNoError(t, err, p.String())
				assertEqual(t, q.Equal(p), true, p.String())
			}
		})
	}, spec.Report(report.Terminal{}), spec.Parallel())

	spec.Run(t, "PrimeField", func(t *testing.T, when spec.G, it spec.S) {
		gf7 := core.MustPrimeField(7)

		it("reduces coefficients", func() {
			p, err := parse.Parse[*core.PrimeFieldElement]("8x^2 + 14x + 3", gf7)
			assertNoError(t, err)
			assertEqual(t, p.String(), "x^2 + 3")
		})

		it("negates into the field", func() {
			p, err := parse.Parse[*core.PrimeFieldElement]("-x - 1", gf7)
			assertNoError(t, err)
			assertEqual(t, p.String(), "6x + 6")
		})

		it("drops terms of the modulus", func() {
			p, err := parse.Parse[*core.PrimeFieldElement]("7x^3 + x", gf7)
			assertNoError(t, err)
			assertEqual(t, p.Degree(), 1)
		})

		it("round-trips every linear polynomial", func() {
			for a := int64(0); a < 7; a++ {
				for b := int64(0); b < 7; b++ {
					p := core.NewPFPoly(gf7, []int64{b, a, 1})
					q, err := parse.Parse[*core.PrimeFieldElement](p.String(), gf7)
					assertNoError(t, err, p.String())
					assertEqual(t, q.Equal(p), true, p.String())
				}
			}
		})
	}, spec.Report(report.Terminal{}), spec.Parallel())

	spec.Run(t, "FiniteField", func(t *testing.T, when spec.G, it spec.S) {
		when("GF(9)", func() {
			gf9 := mustFiniteField(t, 3, []int64{1, 0, 1})

			it("reads field elements in parentheses", func() {
				p, err := parse.Parse[*core.FiniteFieldElement]("(a + 1)x^2 + 2x + (2a)", gf9)
				assertNoError(t, err)
				assertEqual(t, p.Coefficient(2).String(), "a + 1")
				assertEqual(t, p.Coefficient(0).String(), "2a")
				assertEqual(t, p.String(), "(a + 1)x^2 + 2x + (2a)")
			})

			it("reduces coefficients modulo the field modulus", func() {
				p, err := parse.Parse[*core.FiniteFieldElement]("(a^2)x + (a^3 + a)", gf9)
				assertNoError(t, err)
				assertEqual(t, p.String(), "2x")
			})

			it("rejects the polynomial variable inside a coefficient", func() {
				_, err := parse.Parse[*core.FiniteFieldElement]("(x + 1)x", gf9)
				assertParseError(t, err)
			})
		})

		when("GF(4)", func() {
			gf4 := mustFiniteField(t, 2, []int64{1, 1, 1})

			it("round-trips every monic quadratic", func() {
				elements, err := gf4.Elements()
				assertNoError(t, err)
				for _, b := range elements {
					for _, c := range elements {
						p, err := core.NewFFPoly(gf4, []*core.FiniteFieldElement{c, b, gf4.One()})
						assertNoError(t, err)
						q, err := parse.Parse[*core.FiniteFieldElement](p.String(), gf4)
						assertNoError(t, err, p.String())
						assertEqual(t, q.Equal(p), true, p.String())
					}
				}
			})

			it("reads a field written with another variable", func() {
				modulus := core.NewPFPoly(core.MustPrimeField(2), []int64{1, 1, 1})
				field, err := core.NewFiniteFieldWithVariable(modulus, "w")
				assertNoError(t, err)
				p, err := parse.Parse[*core.FiniteFieldElement]("(w)y + 1", field, parse.WithVariable("y"))
				assertNoError(t, err)
				assertEqual(t, p.String(), "(w)y + 1")
			})
		})
	}, spec.Report(report.Terminal{}), spec.Parallel())

	spec.Run(t, "GaussianIntegers", func(t *testing.T, when spec.G, it spec.S) {
		it("reads a + bi coefficients", func() {
			p, err := parse.Parse[*core.GaussianInteger]("(2 + i)x - 3", core.ZZi)
			assertNoError(t, err)
			assertEqual(t, p.Coefficient(1).Equal(core.NewGaussianInteger(2, 1)), true)
			assertEqual(t, p.Coefficient(0).Equal(core.NewGaussianInteger(-3, 0)), true)

			q, err := parse.Parse[*core.GaussianInteger](p.String(), core.ZZi)
			assertNoError(t, err, p.String())
			assertEqual(t, q.Equal(p), true)
		})

		it("reads pure imaginary coefficients", func() {
			p, err := parse.Parse[*core.GaussianInteger]("(-i)x^2 + (3i)", core.ZZi)
			assertNoError(t, err)
			assertEqual(t, p.Coefficient(2).Equal(core.NewGaussianInteger(0, -1)), true)
			assertEqual(t, p.Coefficient(0).Equal(core.NewGaussianInteger(0, 3)), true)
		})

		it("rejects powers of i", func() {
			_, err := parse.Parse[*core.GaussianInteger]("(i^2)x", core.ZZi)
			assertParseError(t, err)
		})
	}, spec.Report(report.Terminal{}), spec.Parallel())

	spec.Run(t, "Errors", func(t *testing.T, when spec.G, it spec.S) {
		inputs := []struct {
			input string
			hint  string
		}{
			{"", "empty input"},
			{"   ", "empty input"},
			{"x +", "expected a term"},
			{"y + 1", "unknown identifier"},
			{"2*", "after '*'"},
			{"2 * 3", "after '*'"},
			{"x^", "expected an exponent"},
			{"x^-2", "negative exponent"},
			{"x^70000", "maximum degree"},
			{"x^99999999999999999999", "maximum degree"},
			{"(x + 1", "unbalanced"},
			{"x + 1)", "')'"},
			{"3 $ x", "unexpected character"},
			{"x^2^3", "'^'"},
			{"2 3", "number"},
			{"x x", "identifier"},
			{"(x)x", "not a constant"},
			{"()", "empty input"},
		}

		for _, tt := range inputs {
			it(fmt.Sprintf("rejects %q", tt.input), func() {
				_, err := parse.Parse[*core.Integer](tt.input, core.ZZ)
				assertParseError(t, err, tt.input)
				if err != nil {
					assertContains(t, err.Error(), tt.hint, tt.input)
				}
			})
		}

		it("honours a custom degree bound", func() {
			p := parse.NewParser[*core.Integer](core.ZZ, parse.WithMaxDegree(4))
			_, err := p.Parse("x^4")
			assertNoError(t, err)
			_, err = p.Parse("x^5")
			assertParseError(t, err)
		})
	}, spec.Report(report.Terminal{}), spec.Parallel(), spec.Random())
}
