// SPDX-License-Identifier: MIT

// Package evp approximates revenue-maximizing envy-free prices in a
// unit-demand market by searching over uniform reserve prices.
//
// 🚀 Algorithm (Approximate / Evaluate):
//
//  1. Solve the welfare-maximizing allocation M0 of V.
//  2. Candidates: one Link per bidder matched in M0 (the value it receives),
//     sorted by value descending; with no matched bidder the search fails
//     with ErrNoFeasibleCandidate. A zero-reserve candidate (bidder
//     market.NoBidder, value 0) is appended by default, so the result is
//     never worse than plain marginal-value pricing.
//  3. Each candidate ℓ: reserve.Solve(V, uniform reserve ℓ.Value) with ℓ's
//     bidder as the augmentation candidate.
//  4. Return the outcome with the highest seller revenue; ties keep the
//     earliest candidate.
//
// Complexity: k+1 reserve solves for k matched bidders, each n+1
// assignment solves on an n×(m+2n) matrix.
//
// ⚙️ Options:
//
//   - WithZeroReserve  include the zero-reserve candidate (default true).
//   - WithWorkers      candidates evaluated concurrently (default 1).
//   - WithStrategy, WithEpsilon, WithPrecision, WithSolver forwarded to reserve.
//   - WithLogger       *zap.Logger receiving Debug events (default no-op).
//
// Concurrency: candidates fan out on an errgroup bounded by SetLimit; each
// outcome lands in its own slot and the reduction runs after Wait, so the
// selected outcome does not depend on the worker count.
package evp
