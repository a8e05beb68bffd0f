package numbers

import (
	"math/big"
	"sync"
)

var (
	sieveMu    sync.Mutex
	sieveCache = map[uint64][]uint64{}
)

// smallPrimes returns the primes below bound, sieving once per bound
func smallPrimes(bound uint64) []uint64 {
	sieveMu.Lock()
	defer sieveMu.Unlock()

	if primes, ok := sieveCache[bound]; ok {
		return primes
	}

	composite := make([]bool, bound)
	primes := make([]uint64, 0, bound/8+1)
	for i := uint64(2); i < bound; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j < bound; j += i {
			composite[j] = true
		}
	}

	sieveCache[bound] = primes
	return primes
}

// IsPrime reports whether n is prime. Values below 2^64 are decided
// deterministically; larger values use Baillie-PSW plus 20 Miller-Rabin rounds.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.IsUint64() {
		return isPrime64(n.Uint64())
	}
	return n.ProbablyPrime(20)
}

// integerRoot returns floor(n^(1/k)) for n >= 0 and k >= 1
func integerRoot(n *big.Int, k int) *big.Int {
	if n.Sign() == 0 || k == 1 {
		return new(big.Int).Set(n)
	}

	kBig := big.NewInt(int64(k))
	km1 := big.NewInt(int64(k - 1))

	// start above the root: 2^ceil(bitlen/k)
	x := new(big.Int).Lsh(big.NewInt(1), uint((n.BitLen()+k-1)/k))
	for {
		// y = ((k-1)x + n / x^(k-1)) / k
		y := new(big.Int).Exp(x, km1, nil)
		y.Quo(n, y)
		y.Add(y, new(big.Int).Mul(km1, x))
		y.Quo(y, kBig)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// perfectPower returns (b, k) with b^k = n and k maximal, or (n, 1)
func perfectPower(n *big.Int) (*big.Int, int) {
	for k := n.BitLen(); k >= 2; k-- {
		root := integerRoot(n, k)
		if root.Cmp(big.NewInt(1)) <= 0 {
			continue
		}
		if new(big.Int).Exp(root, big.NewInt(int64(k)), nil).Cmp(n) == 0 {
			return root, k
		}
	}
	return new(big.Int).Set(n), 1
}
