package core

import (
	"errors"
	"math/big"
	"testing"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// TestPolynomialCanonicalForm tests trimming and the zero polynomial
func TestPolynomialCanonicalForm(t *testing.T) {
	f := MustPrimeField(7)

	p := NewPFPoly(f, []int64{1, 2, 0, 7, 14})
	if p.Degree() != 1 {
		t.Errorf("degree = %d, want 1", p.Degree())
	}
	if len(p.Coefficients()) != 2 {
		t.Errorf("trailing zeros not stripped: %v", p.Coefficients())
	}

	zero := NewPFPoly(f, []int64{0, 0, 0})
	if !zero.IsZero() || zero.Degree() != NegativeInfinity {
		t.Errorf("zero polynomial should have degree NegativeInfinity, got %d", zero.Degree())
	}
	constant := NewPFPoly(f, []int64{5})
	if constant.Degree() != 0 || constant.IsZero() {
		t.Error("a nonzero constant must have degree 0")
	}

	sum, err := NewPFPoly(f, []int64{1, 2, 3}).Add(NewPFPoly(f, []int64{6, 5, 4}))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !sum.IsZero() {
		t.Errorf("(3x^2 + 2x + 1) + (4x^2 + 5x + 6) = %s, want 0", sum)
	}
}

// TestPolynomialArithmetic tests ring operations over GF(7)
func TestPolynomialArithmetic(t *testing.T) {
	f := MustPrimeField(7)
	a := NewPFPoly(f, []int64{1, 1}) // x + 1
	b := NewPFPoly(f, []int64{2, 1}) // x + 2

	product, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if want := NewPFPoly(f, []int64{2, 3, 1}); !product.Equal(want) {
		t.Errorf("(x + 1)(x + 2) = %s, want %s", product, want)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if want := NewPFPoly(f, []int64{6}); !diff.Equal(want) {
		t.Errorf("(x + 1) - (x + 2) = %s, want 6", diff)
	}

	value, err := product.Eval(f.NewElementFromInt64(6))
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if !value.IsZero() {
		t.Errorf("(x + 1)(x + 2) at 6 = %s, want 0", value)
	}

	square := NewPFPoly(f, []int64{0, 0, 1})
	composed, err := square.Compose(a)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if want := NewPFPoly(f, []int64{1, 2, 1}); !composed.Equal(want) {
		t.Errorf("x^2 o (x + 1) = %s, want %s", composed, want)
	}

	scaled, err := a.MulScalar(f.NewElementFromInt64(3))
	if err != nil {
		t.Fatalf("MulScalar failed: %v", err)
	}
	if want := NewPFPoly(f, []int64{3, 3}); !scaled.Equal(want) {
		t.Errorf("3(x + 1) = %s", scaled)
	}

	cube, err := NewIntPoly([]int64{1, 1}).Pow(big.NewInt(3))
	if err != nil {
		t.Fatalf("Pow failed: %v", err)
	}
	if want := NewIntPoly([]int64{1, 3, 3, 1}); !cube.Equal(want) {
		t.Errorf("(x + 1)^3 = %s, want %s", cube, want)
	}
	if _, err := a.Pow(big.NewInt(-1)); !errors.Is(err, utils.DomainError) {
		t.Errorf("negative Pow should fail with DomainError, got %v", err)
	}
}

// TestPolynomialDivMod tests long division and its failure modes
func TestPolynomialDivMod(t *testing.T) {
	f := MustPrimeField(7)
	a := NewPFPoly(f, []int64{5, 2, 0, 1}) // x^3 + 2x + 5
	b := NewPFPoly(f, []int64{1, 3})       // 3x + 1

	q, r, err := a.DivMod(b)
	if err != nil {
		t.Fatalf("DivMod failed: %v", err)
	}
	if r.Degree() >= b.Degree() {
		t.Errorf("remainder degree %d not below divisor degree %d", r.Degree(), b.Degree())
	}
	qb, _ := q.Mul(b)
	back, _ := qb.Add(r)
	if !back.Equal(a) {
		t.Errorf("q*b + r = %s, want %s", back, a)
	}

	q, r, err = b.DivMod(a)
	if err != nil || !q.IsZero() || !r.Equal(b) {
		t.Errorf("dividing by a higher degree should return (0, b), got (%v, %v, %v)", q, r, err)
	}

	if _, _, err := a.DivMod(ZeroPolynomial[*PrimeFieldElement](f)); !errors.Is(err, utils.DomainError) {
		t.Errorf("division by zero should fail with DomainError, got %v", err)
	}

	// over ZZ the leading coefficient must be a unit
	if _, _, err := NewIntPoly([]int64{1, 2, 1}).DivMod(NewIntPoly([]int64{1, 2})); !errors.Is(err, utils.DomainError) {
		t.Errorf("division by 2x + 1 over ZZ should fail with DomainError, got %v", err)
	}
	iq, ir, err := NewIntPoly([]int64{-1, 0, 1}).DivMod(NewIntPoly([]int64{1, 1}))
	if err != nil || !iq.Equal(NewIntPoly([]int64{-1, 1})) || !ir.IsZero() {
		t.Errorf("(x^2 - 1) / (x + 1) = (%v, %v, %v), want (x - 1, 0)", iq, ir, err)
	}
}

// TestPolynomialGCD tests gcd, extended gcd and modular inverses
func TestPolynomialGCD(t *testing.T) {
	f := MustPrimeField(7)
	a := NewPFPoly(f, []int64{2, 3, 1}) // (x + 1)(x + 2)
	b := NewPFPoly(f, []int64{3, 4, 1}) // (x + 1)(x + 3)

	g, err := a.GCD(b)
	if err != nil {
		t.Fatalf("GCD failed: %v", err)
	}
	if want := NewPFPoly(f, []int64{1, 1}); !g.Equal(want) {
		t.Errorf("gcd = %s, want %s", g, want)
	}

	scaled, _ := a.MulScalar(f.NewElementFromInt64(4))
	if g, _ := scaled.GCD(ZeroPolynomial[*PrimeFieldElement](f)); !g.Equal(a) {
		t.Errorf("gcd(4a, 0) = %s, want monic a", g)
	}

	g, s, tt, err := a.ExtendedGCD(b)
	if err != nil {
		t.Fatalf("ExtendedGCD failed: %v", err)
	}
	sa, _ := s.Mul(a)
	tb, _ := tt.Mul(b)
	combo, _ := sa.Add(tb)
	if !combo.Equal(g) || !g.IsMonic() {
		t.Errorf("s*a + t*b = %s, want monic gcd %s", combo, g)
	}

	modulus := NewPFPoly(f, []int64{1, 0, 1})
	inv, err := NewPFPoly(f, []int64{1, 1}).ModInverse(modulus)
	if err != nil {
		t.Fatalf("ModInverse failed: %v", err)
	}
	check, _ := inv.Mul(NewPFPoly(f, []int64{1, 1}))
	if r, _ := check.Rem(modulus); !r.IsOne() {
		t.Errorf("(x + 1) * %s mod (x^2 + 1) = %s, want 1", inv, r)
	}

	if _, err := NewIntPoly([]int64{1, 1}).GCD(NewIntPoly([]int64{2, 1})); !errors.Is(err, utils.DomainError) {
		t.Errorf("gcd over ZZ should fail with DomainError, got %v", err)
	}
}

// TestPolynomialPowMod tests modular exponentiation against Pow
func TestPolynomialPowMod(t *testing.T) {
	f := MustPrimeField(7)
	x := X[*PrimeFieldElement](f)
	modulus := NewPFPoly(f, []int64{1, 0, 1})

	r, err := x.PowMod(big.NewInt(10), modulus)
	if err != nil {
		t.Fatalf("PowMod failed: %v", err)
	}
	if want := NewPFPoly(f, []int64{6}); !r.Equal(want) {
		t.Errorf("x^10 mod (x^2 + 1) = %s, want 6", r)
	}

	base := NewPFPoly(f, []int64{3, 2, 5})
	for e := int64(0); e < 12; e++ {
		direct, _ := base.Pow(big.NewInt(e))
		want, _ := direct.Rem(modulus)
		got, err := base.PowMod(big.NewInt(e), modulus)
		if err != nil {
			t.Fatalf("PowMod failed: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("exponent %d: PowMod = %s, want %s", e, got, want)
		}
	}
}

// TestPolynomialDerivative tests formal derivatives in characteristic p
func TestPolynomialDerivative(t *testing.T) {
	f := MustPrimeField(3)
	if d := NewPFPoly(f, []int64{0, 2, 0, 1}).Derivative(); !d.Equal(NewPFPoly(f, []int64{2})) {
		t.Errorf("d/dx (x^3 + 2x) = %s, want 2", d)
	}
	if d := NewPFPoly(f, []int64{1, 0, 0, 1, 0, 0, 1}).Derivative(); !d.IsZero() {
		t.Errorf("d/dx (x^6 + x^3 + 1) = %s, want 0", d)
	}
	if d := NewIntPoly([]int64{5, 3, 0, 4}).Derivative(); !d.Equal(NewIntPoly([]int64{3, 0, 12})) {
		t.Errorf("d/dx (4x^3 + 3x + 5) = %s", d)
	}
}

// TestPolynomialIsIrreducible tests Rabin's test on known polynomials
func TestPolynomialIsIrreducible(t *testing.T) {
	tests := []struct {
		name   string
		p      int64
		coeffs []int64
		want   bool
	}{
		{"x^2 + 1 over GF(3)", 3, []int64{1, 0, 1}, true},
		{"x^2 + 1 over GF(5)", 5, []int64{1, 0, 1}, false},
		{"x^2 + x + 1 over GF(2)", 2, []int64{1, 1, 1}, true},
		{"x^3 + x + 1 over GF(2)", 2, []int64{1, 1, 0, 1}, true},
		{"x^4 + x + 1 over GF(2)", 2, []int64{1, 1, 0, 0, 1}, true},
		{"x^4 + x^3 + x^2 + x + 1 over GF(2)", 2, []int64{1, 1, 1, 1, 1}, true},
		{"x^4 + x^2 + 1 over GF(2)", 2, []int64{1, 0, 1, 0, 1}, false},
		{"x^5 + x^4 + 1 over GF(2)", 2, []int64{1, 0, 0, 0, 1, 1}, false},
		{"3x + 4 over GF(7)", 7, []int64{4, 3}, true},
		{"constant", 7, []int64{4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPFPoly(MustPrimeField(tt.p), tt.coeffs).IsIrreducible()
			if err != nil {
				t.Fatalf("IsIrreducible failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsIrreducible = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NewIntPoly([]int64{1, 0, 1}).IsIrreducible(); !errors.Is(err, utils.DomainError) {
		t.Errorf("IsIrreducible over ZZ should fail with DomainError, got %v", err)
	}
}

// TestPolynomialString tests printing
func TestPolynomialString(t *testing.T) {
	f := MustPrimeField(7)
	tests := []struct {
		name string
		poly interface{ String() string }
		want string
	}{
		{"zero", NewIntPoly(nil), "0"},
		{"constant", NewIntPoly([]int64{5}), "5"},
		{"negative constant", NewIntPoly([]int64{-5}), "-5"},
		{"x", NewIntPoly([]int64{0, 1}), "x"},
		{"-x", NewIntPoly([]int64{0, -1}), "-x"},
		{"mixed signs", NewIntPoly([]int64{1, -1, 3}), "3x^2 - x + 1"},
		{"leading negative", NewIntPoly([]int64{-1, 0, -2}), "-2x^2 - 1"},
		{"prime field", NewPFPoly(f, []int64{6, 0, 1}), "x^2 + 6"},
		{"renamed", NewPFPoly(f, []int64{6, 0, 1}).WithVariable("y"), "y^2 + 6"},
	}
	for _, tt := range tests {
		if got := tt.poly.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}

	gp, err := NewPolynomial[*GaussianInteger](ZZi, []*GaussianInteger{NewGaussianInteger(2, 1), NewGaussianInteger(0, 1)})
	if err != nil {
		t.Fatalf("NewPolynomial failed: %v", err)
	}
	if got := gp.String(); got != "(i)x + (2 + i)" {
		t.Errorf("gaussian polynomial String() = %q", got)
	}
}

// TestPolynomialDomains tests domain checks and value helpers
func TestPolynomialDomains(t *testing.T) {
	f7 := MustPrimeField(7)
	f11 := MustPrimeField(11)

	if _, err := NewPFPoly(f7, []int64{1, 1}).Add(NewPFPoly(f11, []int64{1, 1})); !errors.Is(err, utils.IncompatibleDomainError) {
		t.Errorf("adding polynomials over GF(7) and GF(11) should fail, got %v", err)
	}
	if _, err := NewPolynomial[*PrimeFieldElement](f7, []*PrimeFieldElement{f11.One()}); !errors.Is(err, utils.IncompatibleDomainError) {
		t.Errorf("NewPolynomial with a foreign coefficient should fail, got %v", err)
	}
	if _, err := NewPFPoly(f7, []int64{1, 1}).Eval(f11.One()); !errors.Is(err, utils.IncompatibleDomainError) {
		t.Errorf("Eval at a foreign point should fail, got %v", err)
	}

	p := NewIntPoly([]int64{1, 1})
	shifted, err := p.AddValue(3)
	if err != nil || !shifted.Equal(NewIntPoly([]int64{4, 1})) {
		t.Errorf("AddValue(3) = %v (%v)", shifted, err)
	}
	v, err := p.EvalValue(big.NewInt(9))
	if err != nil || v.Big().Int64() != 10 {
		t.Errorf("EvalValue(9) = %v (%v), want 10", v, err)
	}

	tripled, err := NewPFPoly(f7, []int64{1, 1}).MulValue(10)
	if err != nil || !tripled.Equal(NewPFPoly(f7, []int64{3, 3})) {
		t.Errorf("MulValue(10) over GF(7) = %v (%v)", tripled, err)
	}

	reduced, err := Convert[*Integer, *PrimeFieldElement](NewIntPoly([]int64{7, -1, 3}), f7)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if want := NewPFPoly(f7, []int64{0, 6, 3}); !reduced.Equal(want) {
		t.Errorf("Convert = %s, want %s", reduced, want)
	}

	values, err := NewPolynomialFromValues[*PrimeFieldElement](f7, 1, f7.NewElementFromInt64(2), big.NewInt(10))
	if err != nil || !values.Equal(NewPFPoly(f7, []int64{1, 2, 3})) {
		t.Errorf("NewPolynomialFromValues = %v (%v)", values, err)
	}
	if _, err := NewPolynomialFromValues[*PrimeFieldElement](f7, f11.One()); !errors.Is(err, utils.IncompatibleDomainError) {
		t.Errorf("coercing a GF(11) value into GF(7) should fail, got %v", err)
	}
}
