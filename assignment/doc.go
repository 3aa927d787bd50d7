// SPDX-License-Identifier: MIT

// Package assignment solves the maximum-weight bipartite matching problem on
// a market.ValuationMatrix: give every bidder at most one good and every good
// at most one bidder so that the total selected value is maximal.
//
// 🚀 Solvers:
//
//   - Hungarian: Kuhn–Munkres primal–dual algorithm with row/column
//     potentials and shortest augmenting paths on the max(n,m) square
//     padding of the matrix. O(max(n,m)³) time, O(max(n,m)²) memory.
//
// Any other algorithm can be plugged in behind the Solver interface; the
// pricing packages (maxweq, reserve, evp) only depend on the interface.
//
// ⚙️ Numerical policy:
//
//   - Absent edges (−∞) never enter arithmetic: they are mapped to weight 0
//     before solving and filtered from the result afterwards.
//   - Negative valuations never improve a maximum-weight matching and are
//     treated like absent edges for selection purposes.
//   - Zero-valued real edges may be selected.
//   - Ties are broken deterministically (lowest column index first).
//
// Usage:
//
//	alloc, err := assignment.Solve(v)
//	if err != nil { ... }               // wraps ErrAssignment
//	total := assignment.Weight(v, alloc)
package assignment
