// SPDX-License-Identifier: MIT

// Package maxweq prices a unit-demand market by marginal value: every good
// is charged the welfare the rest of the market loses when that good is
// withdrawn. On an exact assignment solver these are the maximum Walrasian
// equilibrium prices, so the resulting outcome is envy-free and every unsold
// good is priced at zero.
//
// 🚀 Algorithm:
//
//  1. A* = Solver(V), w(V) = Σ V[i][j] over A*.
//  2. For each good i: w(V₋ᵢ), the optimal welfare of V with row i removed
//     (0 when V has a single good).
//  3. price[i] = round(w(V) − w(V₋ᵢ), Precision), clamped at 0.
//  4. Return Matching(V, A*, price).
//
// Complexity: n + 1 solver calls, O(n·max(n,m)³) with the Hungarian solver.
//
// ⚙️ Options:
//
//   - WithSolver    assignment backend (default assignment.Default).
//   - WithPrecision decimal places kept in prices (default 5).
//   - WithWorkers   number of concurrent w(V₋ᵢ) solves (default 1).
//   - WithLogger    *zap.Logger receiving Debug events (default no-op).
//
// Concurrency: with Workers > 1 the n removals run on an errgroup bounded by
// SetLimit. Each worker writes only its own price slot, so the result is
// identical to the sequential run.
//
// Errors:
//
//   - market.ErrNilMatrix for a nil matrix.
//   - ErrBadPrecision, ErrBadWorkers for invalid options.
//   - assignment.ErrAssignment (wrapped) when the solver fails.
package maxweq
