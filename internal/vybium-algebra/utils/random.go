package utils

import (
	"crypto/rand"
	"math/big"
)

// Source is the random-choice capability injected into randomized
// algorithms. Int returns a value in [0, max) for max > 0.
type Source interface {
	Int(max *big.Int) *big.Int
}

// CryptoSource draws from crypto/rand
type CryptoSource struct{}

// Int returns a uniformly random value in [0, max)
func (CryptoSource) Int(max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		return new(big.Int)
	}
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return v
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo the requested bound. It is meant for tests
// that need to steer a randomized algorithm down a particular branch.
type SequenceSource struct {
	values []int64
	calls  int
}

// NewSequenceSource creates a source replaying values
func NewSequenceSource(values ...int64) *SequenceSource {
	if len(values) == 0 {
		values = []int64{0}
	}
	return &SequenceSource{values: append([]int64(nil), values...)}
}

// Int returns the next value modulo max
func (s *SequenceSource) Int(max *big.Int) *big.Int {
	v := big.NewInt(s.values[s.calls%len(s.values)])
	s.calls++
	if max.Sign() <= 0 {
		return new(big.Int)
	}
	return v.Mod(v, max)
}

// Calls returns how many values have been drawn
func (s *SequenceSource) Calls() int {
	return s.calls
}
