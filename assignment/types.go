// SPDX-License-Identifier: MIT

package assignment

import (
	"errors"

	"github.com/katalvlaran/unitmarket/market"
)

// ErrAssignment is returned when a solver cannot produce a feasible matching
// for its input. For a well-formed matrix this indicates a broken internal
// invariant; callers should fail fast rather than retry.
var ErrAssignment = errors.New("assignment: solver failed to produce a feasible matching")

// Solver computes a maximum-weight matching of a valuation matrix.
//
// Implementations must be deterministic for a fixed input, must never select
// an absent (−∞) edge and must leave goods and bidders without any feasible
// edge unmatched. They must be safe for concurrent use.
type Solver interface {
	Solve(v *market.ValuationMatrix) (market.Allocation, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(v *market.ValuationMatrix) (market.Allocation, error)

// Solve calls f(v).
func (f SolverFunc) Solve(v *market.ValuationMatrix) (market.Allocation, error) {
	return f(v)
}

// Default is the solver used when callers do not supply one.
var Default Solver = Hungarian{}
