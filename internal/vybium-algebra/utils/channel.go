package utils

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	fasthex "github.com/tmthrgd/go-hex"
	"golang.org/x/crypto/sha3"
)

// Channel is a deterministic transcript-driven randomness source. Every draw
// is derived from the hash state, so two channels fed the same seed produce
// the same sequence of values. A Channel is not safe for concurrent use.
type Channel struct {
	state    []byte
	proof    []string
	hashFunc string
}

// NewChannel creates a new channel
func NewChannel(hashFunc string) *Channel {
	if hashFunc == "" {
		hashFunc = "sha3"
	}
	return &Channel{
		state:    []byte{0},
		proof:    make([]string, 0, 64),
		hashFunc: hashFunc,
	}
}

// NewSeededChannel creates a channel whose state has absorbed seed
func NewSeededChannel(hashFunc string, seed []byte) *Channel {
	c := NewChannel(hashFunc)
	c.Send(seed)
	return c
}

// Send appends data to the channel state
func (c *Channel) Send(data []byte) {
	c.proof = append(c.proof, fmt.Sprintf("send:%s", fasthex.EncodeToString(data)))
	c.state = c.hash(append(c.state, data...))
}

// ReceiveRandomInt generates a random integer in the range [min, max]
// Returns nil if min > max (invalid range)
func (c *Channel) ReceiveRandomInt(min, max *big.Int) *big.Int {
	if min.Cmp(max) > 0 {
		return nil
	}

	rangeSize := new(big.Int).Sub(max, min)
	rangeSize.Add(rangeSize, big.NewInt(1))

	// 128 surplus bits keep the modular bias negligible for any range size
	expanded := make([]byte, (rangeSize.BitLen()+7)/8+16)
	sha3.ShakeSum128(expanded, c.state)

	random := new(big.Int).SetBytes(expanded)
	random.Mod(random, rangeSize)
	random.Add(random, min)

	c.proof = append(c.proof, fmt.Sprintf("receiveRandInt:%s", random.String()))
	c.state = c.hash(c.state)

	return random
}

// Int returns a value in [0, max). It implements Source.
func (c *Channel) Int(max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		return new(big.Int)
	}
	return c.ReceiveRandomInt(new(big.Int), new(big.Int).Sub(max, big.NewInt(1)))
}

// State returns the current channel state
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

// Proof returns the transcript of sends and draws
func (c *Channel) Proof() []string {
	return append([]string(nil), c.proof...)
}

// hash computes the hash of the input using the configured hash function
func (c *Channel) hash(data []byte) []byte {
	switch c.hashFunc {
	case "sha256":
		h := sha256.Sum256(data)
		return h[:]
	case "shake128":
		h := make([]byte, 32)
		sha3.ShakeSum128(h, data)
		return h
	default:
		h := sha3.Sum256(data)
		return h[:]
	}
}

// String returns a string representation of the channel transcript
func (c *Channel) String() string {
	return strings.Join(c.proof, " ")
}
