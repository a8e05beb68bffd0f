package core

import (
	"errors"
	"math/big"
	"testing"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

func mustFiniteField(t *testing.T, p int64, coefficients []int64) *FiniteField {
	t.Helper()
	f, err := NewFiniteFieldFromInt64(p, coefficients)
	if err != nil {
		t.Fatalf("NewFiniteFieldFromInt64(%d, %v) failed: %v", p, coefficients, err)
	}
	return f
}

// TestGF4 checks the field with four elements
func TestGF4(t *testing.T) {
	f := mustFiniteField(t, 2, []int64{1, 1, 1})

	if f.Order().Int64() != 4 || f.Degree() != 2 || f.Characteristic().Int64() != 2 {
		t.Fatalf("GF(4) has order %s, degree %d", f.Order(), f.Degree())
	}
	if f.ID() != "GF(2^2)/(a^2 + a + 1)" {
		t.Errorf("ID = %q", f.ID())
	}

	elements, err := f.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	if len(elements) != 4 {
		t.Fatalf("GF(4) has %d elements, want 4", len(elements))
	}

	three := big.NewInt(3)
	for _, e := range elements {
		if e.IsZero() {
			continue
		}
		order, err := e.MultiplicativeOrder()
		if err != nil {
			t.Fatalf("MultiplicativeOrder(%s) failed: %v", e, err)
		}
		if new(big.Int).Mod(three, order).Sign() != 0 {
			t.Errorf("order of %s is %s, which does not divide 3", e, order)
		}
		cube, _ := e.Exp(three)
		if !cube.IsOne() {
			t.Errorf("%s^3 = %s, want 1", e, cube)
		}
	}

	a := f.Generator()
	if got := a.Square().String(); got != "a + 1" {
		t.Errorf("a^2 = %q, want a + 1", got)
	}
	inv, err := a.Exp(big.NewInt(-1))
	if err != nil || inv.String() != "a + 1" {
		t.Errorf("a^-1 = %v (%v), want a + 1", inv, err)
	}
	if _, err := f.Zero().MultiplicativeOrder(); !errors.Is(err, utils.DomainError) {
		t.Errorf("order of zero should fail with DomainError, got %v", err)
	}
}

// TestGF9Arithmetic tests inverses, indexing and p-th roots in GF(9)
func TestGF9Arithmetic(t *testing.T) {
	f := mustFiniteField(t, 3, []int64{1, 0, 1})

	elements, err := f.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	for i, e := range elements {
		if got := e.Index().Int64(); got != int64(i) {
			t.Errorf("Index(ElementAt(%d)) = %d", i, got)
		}
		if root := e.PthRoot(); !root.Frobenius().Equal(e) {
			t.Errorf("PthRoot(%s)^3 = %s", e, root.Frobenius())
		}
		if e.IsZero() {
			continue
		}
		inv, err := e.Inv()
		if err != nil {
			t.Fatalf("Inv(%s) failed: %v", e, err)
		}
		if !e.Mul(inv).IsOne() {
			t.Errorf("%s * %s != 1", e, inv)
		}
	}

	a := f.Generator()
	if got := a.Frobenius().String(); got != "2a" {
		t.Errorf("a^3 = %q, want 2a", got)
	}

	g, err := f.PrimitiveElement()
	if err != nil {
		t.Fatalf("PrimitiveElement failed: %v", err)
	}
	if g.String() != "a + 1" {
		t.Errorf("first primitive element = %s, want a + 1", g)
	}
	order, _ := g.MultiplicativeOrder()
	if order.Int64() != 8 {
		t.Errorf("primitive element has order %s, want 8", order)
	}
	again, _ := f.PrimitiveElement()
	if again != g {
		t.Error("PrimitiveElement should be computed once")
	}

	if _, err := f.Zero().Inv(); !errors.Is(err, utils.DomainError) {
		t.Errorf("Inv(0) should fail with DomainError, got %v", err)
	}
}

// TestGF8Generator tests that a generates GF(8)*
func TestGF8Generator(t *testing.T) {
	f := mustFiniteField(t, 2, []int64{1, 1, 0, 1})
	order, err := f.Generator().MultiplicativeOrder()
	if err != nil {
		t.Fatalf("MultiplicativeOrder failed: %v", err)
	}
	if order.Int64() != 7 {
		t.Errorf("order of a in GF(8) = %s, want 7", order)
	}
}

// TestFiniteFieldInvalidModulus tests construction failures
func TestFiniteFieldInvalidModulus(t *testing.T) {
	tests := []struct {
		name   string
		p      int64
		coeffs []int64
	}{
		{"reducible", 2, []int64{1, 0, 1}},
		{"product of linear factors", 5, []int64{1, 0, 1}},
		{"constant", 5, []int64{3}},
		{"composite characteristic", 4, []int64{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFiniteFieldFromInt64(tt.p, tt.coeffs)
			if !errors.Is(err, utils.InvalidModulusError) {
				t.Errorf("expected InvalidModulusError, got %v", err)
			}
		})
	}
}

// TestFiniteFieldMonicModulus tests that the modulus is normalized
func TestFiniteFieldMonicModulus(t *testing.T) {
	f := mustFiniteField(t, 3, []int64{2, 0, 2}) // 2x^2 + 2 = 2(x^2 + 1)
	g := mustFiniteField(t, 3, []int64{1, 0, 1})
	if !f.Equals(g) || !f.Modulus().IsMonic() {
		t.Errorf("modulus %s should be made monic", f.Modulus())
	}
	if !f.One().Equal(g.One()) {
		t.Error("elements of equal fields should compare equal")
	}
}

// TestFiniteFieldMixing tests that different extensions do not combine
func TestFiniteFieldMixing(t *testing.T) {
	gf4 := mustFiniteField(t, 2, []int64{1, 1, 1})
	gf8 := mustFiniteField(t, 2, []int64{1, 1, 0, 1})

	if _, err := gf4.One().Div(gf8.One()); !errors.Is(err, utils.IncompatibleDomainError) {
		t.Errorf("cross-field Div should fail with IncompatibleDomainError, got %v", err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, utils.IncompatibleDomainError) {
			t.Errorf("cross-field Mul should panic with IncompatibleDomainError, got %v", r)
		}
	}()
	gf4.Generator().Mul(gf8.Generator())
}

// TestPrimeExtension tests GF(p) presented as a degree-one extension
func TestPrimeExtension(t *testing.T) {
	f := PrimeExtension(MustPrimeField(5))
	if f.Degree() != 1 || f.Order().Int64() != 5 {
		t.Fatalf("degree %d, order %s", f.Degree(), f.Order())
	}
	if !f.Generator().IsZero() {
		t.Errorf("a mod a should be zero, got %s", f.Generator())
	}
	if got := f.FromInt64(8).String(); got != "3" {
		t.Errorf("FromInt64(8) = %s, want 3", got)
	}
	if got := f.RandomElement(utils.NewSequenceSource(7)); got.String() != "2" {
		t.Errorf("RandomElement = %s, want 2", got)
	}
	c, ok := f.FromInt64(4).PrimeSubfieldValue()
	if !ok || c.Big().Int64() != 4 {
		t.Errorf("PrimeSubfieldValue = %v, %v", c, ok)
	}
}
