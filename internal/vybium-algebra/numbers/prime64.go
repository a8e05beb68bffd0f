package numbers

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Bases that make Miller-Rabin deterministic below 3.3 * 10^24
var millerRabinBases64 = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

func mulMod64(a, b, n uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(n)
}

func addMod64(a, b, n uint64) uint64 {
	s := a + b
	if s < a || s >= n {
		s -= n
	}
	return s
}

func powMod64(base, exp, n uint64) uint64 {
	result := uint64(1) % n
	base %= n
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod64(result, base, n)
		}
		base = mulMod64(base, base, n)
		exp >>= 1
	}
	return result
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// isPrime64 is a deterministic primality test for 64-bit values
func isPrime64(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range millerRabinBases64 {
		if n%p == 0 {
			return n == p
		}
	}

	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range millerRabinBases64 {
		x := powMod64(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = mulMod64(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// rho64 runs Brent's variant of Pollard rho with f(x) = x^2 + c.
// It returns a nontrivial divisor of n, or false when the cycle closed on n
// or the iteration cap was reached.
func rho64(n, c uint64, maxIterations int) (uint64, bool) {
	const batch = 128

	f := func(v uint64) uint64 {
		return addMod64(mulMod64(v, v, n), c, n)
	}

	absDiff := func(a, b uint64) uint64 {
		if a > b {
			return a - b
		}
		return b - a
	}

	y, g, q := uint64(2), uint64(1), uint64(1)
	var x, ys uint64
	iterations := 0

	for r := 1; g == 1; r <<= 1 {
		x = y
		for i := 0; i < r; i++ {
			y = f(y)
		}
		for k := 0; k < r && g == 1; k += batch {
			ys = y
			for i := 0; i < min(batch, r-k); i++ {
				y = f(y)
				q = mulMod64(q, absDiff(x, y), n)
			}
			g = gcd64(q, n)
		}
		iterations += 2 * r
		if g == 1 && iterations > maxIterations {
			return 0, false
		}
	}

	if g == n {
		// the batched product overshot; step through it one by one
		for i := 0; i < maxIterations; i++ {
			ys = f(ys)
			g = gcd64(absDiff(x, ys), n)
			if g > 1 {
				break
			}
		}
	}

	if g == 1 || g == n {
		return 0, false
	}
	return g, true
}
