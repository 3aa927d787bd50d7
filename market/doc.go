// SPDX-License-Identifier: MIT

// Package market defines the data model of a unit-demand assignment market:
// the valuation matrix, allocations, reserve prices and the priced outcome
// (Matching) that every solver in this module returns.
//
// 🚀 What is a unit-demand market?
//
//	A set of goods, each with one unit of supply, and a set of bidders, each
//	wanting at most one good. Bidder j values good i at V[i][j], or not at all
//	(V[i][j] = −∞, no edge). Rows are goods, columns are bidders:
//
//	          b0      b1
//	    g0 [ 39.92    −∞   ]
//	    g1 [  −∞     43.51 ]
//	    g2 [  −∞     43.51 ]
//
// ✨ Key types:
//   - ValuationMatrix: immutable n×m grid backed by gonum mat.Dense.
//   - Allocation:      a matching; row and column sums ≤ 1 by construction.
//   - ReservePrices:   a uniform or per-good price floor.
//   - Matching:        valuations + allocation + optional prices, with
//     cached derived quantities (welfare, revenue, envy, clearance).
//   - Link:            (bidder, good, value) triples that seed reserve-price search.
//
// Every type is safe for concurrent readers. Derivations (WithoutGood,
// WithColumns, WithPrices) always return fresh values.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
package market
