package core

import (
	"math/big"

	gl "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Goldilocks is the prime field of p = 2^64 - 2^32 + 1. Its arithmetic runs
// on vybium-crypto's native 64-bit implementation.
var Goldilocks, _ = NewPrimeFieldFromUint64(gl.P)

func isGoldilocks(p *big.Int) bool {
	return p.IsUint64() && p.Uint64() == gl.P
}

func goldilocksMul(a, b *big.Int) *big.Int {
	product := gl.New(a.Uint64()).Mul(gl.New(b.Uint64()))
	return new(big.Int).SetUint64(product.Value())
}

func goldilocksExp(a *big.Int, exponent uint64) *big.Int {
	return new(big.Int).SetUint64(gl.New(a.Uint64()).ModPow(exponent).Value())
}

func goldilocksInv(a *big.Int) *big.Int {
	return new(big.Int).SetUint64(gl.New(a.Uint64()).Inverse().Value())
}
