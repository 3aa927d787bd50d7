// SPDX-License-Identifier: MIT
// Package market: seeded random market generator.
//
// Model:
//   - Every (good, bidder) pair is an edge independently with probability p.
//   - Edge values are uniform in [min, max).
//
// Determinism:
//   - Trials run goods ascending, bidders ascending; one Bernoulli draw per
//     pair and one value draw per accepted edge, so a fixed seed reproduces
//     the same matrix.
//   - seed == 0 maps to a fixed default seed; no time-based randomness.

package market

import (
	"fmt"
	"math"
	"math/rand"
)

// Default reward range of generated markets.
const (
	DefaultMinValue = 1.0
	DefaultMaxValue = 10.0

	defaultSeed int64 = 1
)

// NewRand returns a deterministic generator; seed 0 selects a fixed default.
// A *rand.Rand is not goroutine-safe: create one per goroutine.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomValuations samples an n×m market with edge probability p and values
// uniform in [lo, hi).
//
// Errors: ErrBadShape (n or m < 1), ErrInvalidProbability, ErrInvalidRange.
//
// Complexity: O(n·m).
func RandomValuations(rng *rand.Rand, goods, bidders int, p, lo, hi float64) (*ValuationMatrix, error) {
	const method = "RandomValuations"
	if goods < 1 || bidders < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", method, goods, bidders, ErrBadShape)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", method, p, ErrInvalidProbability)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, fmt.Errorf("%s: [%g,%g): %w", method, lo, hi, ErrInvalidRange)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	rows := make([][]float64, goods)
	var i, j int
	for i = 0; i < goods; i++ {
		rows[i] = make([]float64, bidders)
		for j = 0; j < bidders; j++ {
			if rng.Float64() < p {
				rows[i][j] = lo + rng.Float64()*(hi-lo)
			} else {
				rows[i][j] = NoEdge
			}
		}
	}

	return NewValuationMatrix(rows)
}
