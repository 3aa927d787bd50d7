// SPDX-License-Identifier: MIT

// Package fixtures holds the reference markets and the brute-force oracle
// shared by the test suites of the solver packages.
package fixtures

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/unitmarket/market"
)

var inf = math.Inf(-1)

// Market0 is a 3×3 market where dummies connected to every good beat the
// bidder-restricted variants. Its approximated revenue is 126.66.
func Market0() *market.ValuationMatrix {
	return market.MustValuationMatrix([][]float64{
		{29.60, 18.66, inf},
		{inf, inf, 27.10},
		{inf, 58.66, 97.06},
	})
}

// Market1 is a 3×2 market whose approximated revenue is 73.16.
func Market1() *market.ValuationMatrix {
	return market.MustValuationMatrix([][]float64{
		{19.47, inf},
		{inf, 41.11},
		{inf, 73.16},
	})
}

// Market2 is the 3×2 market with two identical goods for bidder 1.
// Its approximated revenue is 79.84.
func Market2() *market.ValuationMatrix {
	return market.MustValuationMatrix([][]float64{
		{39.92, inf},
		{inf, 43.51},
		{inf, 43.51},
	})
}

// Market3 is a 3×2 market with a uniform bidder; approximated revenue 158.
func Market3() *market.ValuationMatrix {
	return market.MustValuationMatrix([][]float64{
		{inf, 62},
		{96, 62},
		{inf, 62},
	})
}

// Empty returns an n×m market without a single edge.
func Empty(goods, bidders int) *market.ValuationMatrix {
	rows := make([][]float64, goods)
	for i := range rows {
		rows[i] = make([]float64, bidders)
		for j := range rows[i] {
			rows[i][j] = inf
		}
	}

	return market.MustValuationMatrix(rows)
}

// Random returns a seeded random market with values in [1, 10).
func Random(rng *rand.Rand, goods, bidders int, p float64) *market.ValuationMatrix {
	v, err := market.RandomValuations(rng, goods, bidders, p, market.DefaultMinValue, market.DefaultMaxValue)
	if err != nil {
		panic(err)
	}

	return v
}

// BruteForceWelfare enumerates every feasible allocation of v and returns the
// maximum total value. Good i is given column π(i) of an injective map into
// m real bidders plus n "unmatched" slots, so partial matchings are covered.
//
// Complexity: O((n+m)!/m!·n); use only for n, m ≤ 4.
func BruteForceWelfare(v *market.ValuationMatrix) float64 {
	n, m := v.Goods(), v.Bidders()
	best := 0.0
	for _, perm := range combin.Permutations(n+m, n) {
		total, ok := 0.0, true
		for i, col := range perm {
			if col >= m {
				continue
			}
			if !v.Edge(i, col) {
				ok = false
				break
			}
			if x := v.At(i, col); x > 0 {
				total += x
			}
		}
		if ok && total > best {
			best = total
		}
	}

	return best
}
