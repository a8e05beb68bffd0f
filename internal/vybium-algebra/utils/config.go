package utils

import (
	"fmt"
	"math/big"
)

// Config represents the tuning knobs of the factorization engines
type Config struct {
	// Integer factorization
	TrialDivisionBound uint64 // Primes below this bound are divided out first
	RhoMaxIterations   int    // Iteration cap for a single Pollard rho run
	RhoRestarts        int    // Number of rho constants tried before giving up
	PrimalityRounds    int    // Miller-Rabin rounds for cofactors above 64 bits

	// Polynomial factorization
	MaxSplitAttempts int // Equal-degree splitting retries; 0 derives a bound from the factor count

	// Batch factorization
	Workers int

	// Hash function of the deterministic randomness channel
	HashFunction string // "sha3", "sha256" or "shake128"
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TrialDivisionBound: 1 << 14,
		RhoMaxIterations:   1 << 22,
		RhoRestarts:        16,
		PrimalityRounds:    20,
		MaxSplitAttempts:   0,
		Workers:            4,
		HashFunction:       "sha3",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.TrialDivisionBound < 2 {
		return fmt.Errorf("trial division bound must be at least 2")
	}

	if c.TrialDivisionBound > 1<<26 {
		return fmt.Errorf("trial division bound (%d) must not exceed %d", c.TrialDivisionBound, 1<<26)
	}

	if c.RhoMaxIterations <= 0 {
		return fmt.Errorf("rho iterations must be positive")
	}

	if c.RhoRestarts <= 0 {
		return fmt.Errorf("rho restarts must be positive")
	}

	if c.PrimalityRounds <= 0 {
		return fmt.Errorf("primality rounds must be positive")
	}

	if c.MaxSplitAttempts < 0 {
		return fmt.Errorf("split attempts must not be negative")
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	if c.HashFunction != "sha256" && c.HashFunction != "sha3" && c.HashFunction != "shake128" {
		return fmt.Errorf("hash function must be 'sha256', 'sha3', or 'shake128', got '%s'", c.HashFunction)
	}

	return nil
}

// SplitAttempts returns the retry bound for splitting a product of
// factorCount equal-degree factors. Each attempt separates a given pair of
// factors with probability at least 1/2 - 1/(2q), so the derived bound
// grows linearly with the number of factors.
func (c *Config) SplitAttempts(factorCount int, fieldOrder *big.Int) int {
	if c.MaxSplitAttempts > 0 {
		return c.MaxSplitAttempts
	}
	attempts := 32 + 16*factorCount
	if fieldOrder != nil && fieldOrder.Cmp(big.NewInt(3)) <= 0 {
		attempts *= 2
	}
	return attempts
}

// WithTrialDivisionBound sets the trial division bound
func (c *Config) WithTrialDivisionBound(bound uint64) *Config {
	c.TrialDivisionBound = bound
	return c
}

// WithRhoMaxIterations sets the rho iteration cap
func (c *Config) WithRhoMaxIterations(iterations int) *Config {
	c.RhoMaxIterations = iterations
	return c
}

// WithRhoRestarts sets the number of rho restarts
func (c *Config) WithRhoRestarts(restarts int) *Config {
	c.RhoRestarts = restarts
	return c
}

// WithPrimalityRounds sets the number of Miller-Rabin rounds
func (c *Config) WithPrimalityRounds(rounds int) *Config {
	c.PrimalityRounds = rounds
	return c
}

// WithMaxSplitAttempts sets the equal-degree splitting retry bound
func (c *Config) WithMaxSplitAttempts(attempts int) *Config {
	c.MaxSplitAttempts = attempts
	return c
}

// WithWorkers sets the batch worker count
func (c *Config) WithWorkers(workers int) *Config {
	c.Workers = workers
	return c
}

// WithHashFunction sets the hash function
func (c *Config) WithHashFunction(hashFunc string) *Config {
	c.HashFunction = hashFunc
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	return &Config{
		TrialDivisionBound: c.TrialDivisionBound,
		RhoMaxIterations:   c.RhoMaxIterations,
		RhoRestarts:        c.RhoRestarts,
		PrimalityRounds:    c.PrimalityRounds,
		MaxSplitAttempts:   c.MaxSplitAttempts,
		Workers:            c.Workers,
		HashFunction:       c.HashFunction,
	}
}
