// Package vybiumalgebra provides exact arithmetic over prime fields, finite
// field extensions and Gaussian integers, polynomials over those domains,
// and factorization of integers and of polynomials over finite fields.
//
// # Quick Start
//
// Building GF(9) and factoring a polynomial over it:
//
//	gf9, err := vybiumalgebra.NewFiniteField("3", "a^2 + 1")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	f, err := vybiumalgebra.ParseFFPoly("x^2 + 1", gf9)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	factorization, err := vybiumalgebra.Factor(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(factorization) // (x + (a)) * (x + (2a))
//
// Factoring integers:
//
//	n, _ := new(big.Int).SetString("1000036000099", 10)
//	factorization, err := vybiumalgebra.FactorInteger(n)
//	fmt.Println(factorization) // 1000003 * 1000033
//
// # Domains
//
//   - ZZ: the integers, as a coefficient domain (Integer)
//   - ZZ[i]: Gaussian integers with Euclidean division (GaussianInteger)
//   - GF(p): prime fields; p is checked for primality (PrimeField)
//   - GF(p^n): extensions GF(p)[a]/(m) for an irreducible m (FiniteField)
//
// Values from different domains combine through an explicit coercion
// table: integers reduce into any field, GF(p) embeds into GF(p^n), and
// anything else fails with IncompatibleDomainError.
//
// # Randomness
//
// Polynomial factorization is randomized. An Engine takes an explicit
// Source; NewSeededSource gives a reproducible hash channel. The package
// level functions seed a channel from each input, so repeated calls return
// identical factorizations.
//
// # Architecture
//
// - pkg/vybium-algebra/: Public API (this package)
// - internal/vybium-algebra/: Private implementation (not importable)
package vybiumalgebra
