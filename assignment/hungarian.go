// SPDX-License-Identifier: MIT

package assignment

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/unitmarket/market"
)

// Hungarian is the Kuhn–Munkres assignment solver. The zero value is ready
// to use and holds no state, so one value may serve concurrent callers.
type Hungarian struct{}

// Solve returns a maximum-weight matching of v.
//
// Algorithm Outline:
//  1. Let d = max(n, m). Build a d×d cost matrix C with C[i][j] = −w(i,j),
//     where w(i,j) = V[i][j] for finite positive entries and 0 otherwise
//     (absent edges, negative values and padding).
//  2. For each row r = 1..d, grow a shortest augmenting path from r over the
//     reduced costs C[i][j] − u[i] − v[j], updating potentials by the minimal
//     slack δ until a free column is reached, then flip the path.
//  3. Map rows back to goods and keep pair (i, j) iff i < n, j < m, the edge
//     exists and V[i][j] ≥ 0.
//
// Complexity: O(d³) time, O(d²) memory.
//
// Errors: ErrAssignment (wrapped) for a nil matrix or if the augmenting step
// finds no candidate column, which cannot happen for finite costs.
func (Hungarian) Solve(v *market.ValuationMatrix) (market.Allocation, error) {
	if v == nil {
		return market.Allocation{}, fmt.Errorf("Hungarian.Solve: %w: %w", ErrAssignment, market.ErrNilMatrix)
	}
	n, m := v.Goods(), v.Bidders()
	d := max(n, m)

	// Stage 1: flat row-major cost matrix; every entry is finite.
	cost := make([]float64, d*d)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if v.Edge(i, j) && v.At(i, j) > 0 {
				cost[i*d+j] = -v.At(i, j)
			}
		}
	}

	// Stage 2: shortest augmenting paths with potentials, 1-indexed;
	// column 0 is the virtual root of every search.
	var (
		u    = make([]float64, d+1) // row potentials
		pot  = make([]float64, d+1) // column potentials
		p    = make([]int, d+1)     // p[j] = row matched to column j (0 = free)
		way  = make([]int, d+1)     // way[j] = previous column on the path
		minv = make([]float64, d+1) // minimal slack per column
		used = make([]bool, d+1)
	)
	for r := 1; r <= d; r++ {
		p[0] = r
		j0 := 0
		for j = 1; j <= d; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := -1
			for j = 1; j <= d; j++ {
				if used[j] {
					continue
				}
				cur := cost[(i0-1)*d+(j-1)] - u[i0] - pot[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				return market.Allocation{}, fmt.Errorf("Hungarian.Solve: row %d: no augmenting column: %w", r, ErrAssignment)
			}
			for j = 0; j <= d; j++ {
				if used[j] {
					u[p[j]] += delta
					pot[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	// Stage 3: extract pairs inside the original shape on real, non-negative edges.
	alloc := market.NewAllocation(n, m)
	for j = 1; j <= m; j++ {
		i = p[j] - 1
		if i < 0 || i >= n {
			continue
		}
		if !v.Edge(i, j-1) || v.At(i, j-1) < 0 {
			continue
		}
		if err := alloc.Assign(i, j-1); err != nil {
			return market.Allocation{}, fmt.Errorf("Hungarian.Solve: %w: %w", ErrAssignment, err)
		}
	}

	return alloc, nil
}

// Solve runs the Default solver on v.
func Solve(v *market.ValuationMatrix) (market.Allocation, error) {
	return Default.Solve(v)
}

// Weight returns Σ V[i][j] over the pairs of alloc. alloc must have v's shape.
func Weight(v *market.ValuationMatrix, alloc market.Allocation) float64 {
	values := make([]float64, 0, alloc.Size())
	for i := 0; i < alloc.Goods(); i++ {
		if j := alloc.BidderOf(i); j != market.Unassigned {
			values = append(values, v.At(i, j))
		}
	}

	return floats.Sum(values)
}

// SolveWeight runs solver on v and returns the allocation with its weight.
// A nil solver selects Default. Solver errors and results that violate the
// matching invariants for v are reported as ErrAssignment.
func SolveWeight(solver Solver, v *market.ValuationMatrix) (market.Allocation, float64, error) {
	if solver == nil {
		solver = Default
	}
	alloc, err := solver.Solve(v)
	if err != nil {
		if !errors.Is(err, ErrAssignment) {
			err = fmt.Errorf("%w: %w", ErrAssignment, err)
		}
		return market.Allocation{}, 0, err
	}
	if err = alloc.Validate(v); err != nil {
		return market.Allocation{}, 0, fmt.Errorf("SolveWeight: %w: %w", ErrAssignment, err)
	}

	return alloc, Weight(v, alloc), nil
}
