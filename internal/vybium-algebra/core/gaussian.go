package core

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// GaussianIntegers is the ring Z[i]
type GaussianIntegers struct{}

// ZZi is the Gaussian integer domain
var ZZi = GaussianIntegers{}

// GaussianInteger represents re + im*i with integer parts
type GaussianInteger struct {
	re *big.Int
	im *big.Int
}

// NewGaussianInteger creates re + im*i
func NewGaussianInteger(re, im int64) *GaussianInteger {
	return &GaussianInteger{re: big.NewInt(re), im: big.NewInt(im)}
}

// NewGaussianIntegerFromBig creates re + im*i from big integers
func NewGaussianIntegerFromBig(re, im *big.Int) *GaussianInteger {
	return &GaussianInteger{re: new(big.Int).Set(re), im: new(big.Int).Set(im)}
}

// Zero returns 0
func (GaussianIntegers) Zero() *GaussianInteger { return NewGaussianInteger(0, 0) }

// One returns 1
func (GaussianIntegers) One() *GaussianInteger { return NewGaussianInteger(1, 0) }

// I returns the imaginary unit
func (GaussianIntegers) I() *GaussianInteger { return NewGaussianInteger(0, 1) }

// FromInt64 returns n + 0i
func (GaussianIntegers) FromInt64(n int64) *GaussianInteger { return NewGaussianInteger(n, 0) }

// Coerce converts v into Z[i]
func (g GaussianIntegers) Coerce(v any) (*GaussianInteger, error) {
	return coerceInto[*GaussianInteger](v, g)
}

// Contains reports whether e is non-nil
func (GaussianIntegers) Contains(e *GaussianInteger) bool {
	return e != nil && e.re != nil && e.im != nil
}

// Kind returns KindGaussian
func (GaussianIntegers) Kind() Kind { return KindGaussian }

// Characteristic returns 0
func (GaussianIntegers) Characteristic() *big.Int { return big.NewInt(0) }

// Order returns nil
func (GaussianIntegers) Order() *big.Int { return nil }

// IsField returns false
func (GaussianIntegers) IsField() bool { return false }

// ID returns "ZZ[i]"
func (GaussianIntegers) ID() string { return "ZZ[i]" }

func (GaussianIntegers) String() string { return "ZZ[i]" }

// Real returns the real part
func (z *GaussianInteger) Real() *big.Int { return new(big.Int).Set(z.re) }

// Imag returns the imaginary part
func (z *GaussianInteger) Imag() *big.Int { return new(big.Int).Set(z.im) }

// Add returns z + w
func (z *GaussianInteger) Add(w *GaussianInteger) *GaussianInteger {
	return &GaussianInteger{
		re: new(big.Int).Add(z.re, w.re),
		im: new(big.Int).Add(z.im, w.im),
	}
}

// Sub returns z - w
func (z *GaussianInteger) Sub(w *GaussianInteger) *GaussianInteger {
	return &GaussianInteger{
		re: new(big.Int).Sub(z.re, w.re),
		im: new(big.Int).Sub(z.im, w.im),
	}
}

// Mul returns z * w
func (z *GaussianInteger) Mul(w *GaussianInteger) *GaussianInteger {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	ac := new(big.Int).Mul(z.re, w.re)
	bd := new(big.Int).Mul(z.im, w.im)
	ad := new(big.Int).Mul(z.re, w.im)
	bc := new(big.Int).Mul(z.im, w.re)
	return &GaussianInteger{re: ac.Sub(ac, bd), im: ad.Add(ad, bc)}
}

// Neg returns -z
func (z *GaussianInteger) Neg() *GaussianInteger {
	return &GaussianInteger{re: new(big.Int).Neg(z.re), im: new(big.Int).Neg(z.im)}
}

// Conj returns the complex conjugate
func (z *GaussianInteger) Conj() *GaussianInteger {
	return &GaussianInteger{re: new(big.Int).Set(z.re), im: new(big.Int).Neg(z.im)}
}

// Norm returns re^2 + im^2
func (z *GaussianInteger) Norm() *big.Int {
	n := new(big.Int).Mul(z.re, z.re)
	return n.Add(n, new(big.Int).Mul(z.im, z.im))
}

// IsUnit reports whether z is one of 1, -1, i, -i
func (z *GaussianInteger) IsUnit() bool {
	return z.Norm().Cmp(big.NewInt(1)) == 0
}

// Inv returns the inverse of a unit
func (z *GaussianInteger) Inv() (*GaussianInteger, error) {
	if !z.IsUnit() {
		return nil, utils.Errorf(utils.ErrDomain, "%s is not a unit in ZZ[i]", z)
	}
	// for units conj(z) = 1/z
	return z.Conj(), nil
}

// roundHalfEven returns num/den rounded to the nearest integer, ties to
// even. den must be positive.
func roundHalfEven(num, den *big.Int) *big.Int {
	q, r := new(big.Int).DivMod(num, den, new(big.Int))
	twice := r.Lsh(r, 1)
	switch twice.Cmp(den) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// DivMod divides z by w and returns q, r with z = w*q + r and
// norm(r) < norm(w). Each component of the exact quotient z/w is rounded
// to the nearest integer with ties going to the even neighbour.
func (z *GaussianInteger) DivMod(w *GaussianInteger) (*GaussianInteger, *GaussianInteger, error) {
	if w.IsZero() {
		return nil, nil, utils.Errorf(utils.ErrDomain, "division by zero in ZZ[i]")
	}
	n := w.Norm()
	num := z.Mul(w.Conj())
	q := &GaussianInteger{re: roundHalfEven(num.re, n), im: roundHalfEven(num.im, n)}
	r := z.Sub(w.Mul(q))
	return q, r, nil
}

// Quo returns the rounded quotient of DivMod
func (z *GaussianInteger) Quo(w *GaussianInteger) (*GaussianInteger, error) {
	q, _, err := z.DivMod(w)
	return q, err
}

// Rem returns the remainder of DivMod
func (z *GaussianInteger) Rem(w *GaussianInteger) (*GaussianInteger, error) {
	_, r, err := z.DivMod(w)
	return r, err
}

// Div returns the exact quotient z / w
func (z *GaussianInteger) Div(w *GaussianInteger) (*GaussianInteger, error) {
	q, r, err := z.DivMod(w)
	if err != nil {
		return nil, err
	}
	if !r.IsZero() {
		return nil, utils.Errorf(utils.ErrDomain, "%s is not divisible by %s in ZZ[i]", z, w)
	}
	return q, nil
}

// Pow raises z to n. Negative powers exist only for units.
func (z *GaussianInteger) Pow(n int64) (*GaussianInteger, error) {
	base := z
	if n < 0 {
		inv, err := z.Inv()
		if err != nil {
			return nil, err
		}
		base, n = inv, -n
	}
	result := NewGaussianInteger(1, 0)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result, nil
}

// Normalize returns the associate of z with re > 0 and im >= 0
func (z *GaussianInteger) Normalize() *GaussianInteger {
	if z.IsZero() {
		return z
	}
	w := z
	for w.re.Sign() <= 0 || w.im.Sign() < 0 {
		// multiply by i: (a+bi)i = -b + ai
		w = &GaussianInteger{re: new(big.Int).Neg(w.im), im: new(big.Int).Set(w.re)}
	}
	return w
}

// GaussianGCD returns the normalized greatest common divisor of z and w
func GaussianGCD(z, w *GaussianInteger) *GaussianInteger {
	a, b := z, w
	for !b.IsZero() {
		_, r, _ := a.DivMod(b)
		a, b = b, r
	}
	return a.Normalize()
}

// IsZero reports z == 0
func (z *GaussianInteger) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// IsOne reports z == 1
func (z *GaussianInteger) IsOne() bool {
	return z.im.Sign() == 0 && z.re.Cmp(big.NewInt(1)) == 0
}

// Equal compares both parts
func (z *GaussianInteger) Equal(w *GaussianInteger) bool {
	return z.re.Cmp(w.re) == 0 && z.im.Cmp(w.im) == 0
}

// String formats z as "3 + 2i", "-i" or "4"
func (z *GaussianInteger) String() string {
	if z.im.Sign() == 0 {
		return z.re.String()
	}

	imag := func(v *big.Int) string {
		if v.Cmp(big.NewInt(1)) == 0 {
			return "i"
		}
		return v.String() + "i"
	}

	if z.re.Sign() == 0 {
		if z.im.Sign() < 0 {
			return "-" + imag(new(big.Int).Neg(z.im))
		}
		return imag(z.im)
	}
	if z.im.Sign() < 0 {
		return z.re.String() + " - " + imag(new(big.Int).Neg(z.im))
	}
	return z.re.String() + " + " + imag(z.im)
}
