// SPDX-License-Identifier: MIT

// Package assignment_test validates the Kuhn–Munkres solver: matching
// feasibility, optimality against exhaustive enumeration, determinism and
// the handling of absent edges.
package assignment_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitmarket/assignment"
	"github.com/katalvlaran/unitmarket/internal/fixtures"
	"github.com/katalvlaran/unitmarket/market"
)

const weightTol = 1e-9

var inf = math.Inf(-1)

// requireFeasible checks the degree invariants and that no absent edge is used.
func requireFeasible(t *testing.T, v *market.ValuationMatrix, a market.Allocation) {
	t.Helper()
	require.Equal(t, v.Goods(), a.Goods())
	require.Equal(t, v.Bidders(), a.Bidders())
	grid := a.Matrix()
	for i := range grid {
		rowSum := 0
		for j := range grid[i] {
			rowSum += grid[i][j]
			if grid[i][j] == 1 {
				assert.True(t, v.Edge(i, j), "absent edge (%d,%d) selected", i, j)
			}
		}
		assert.LessOrEqual(t, rowSum, 1, "good %d sold twice", i)
	}
	for j := 0; j < v.Bidders(); j++ {
		colSum := 0
		for i := range grid {
			colSum += grid[i][j]
		}
		assert.LessOrEqual(t, colSum, 1, "bidder %d served twice", j)
	}
}

func TestHungarian_LibraryMarkets(t *testing.T) {
	// Market0 and Market1 have unique optima.
	a, err := assignment.Solve(fixtures.Market0())
	require.NoError(t, err)
	assert.Equal(t, 0, a.BidderOf(0))
	assert.Equal(t, market.Unassigned, a.BidderOf(1))
	assert.Equal(t, 2, a.BidderOf(2))
	assert.InDelta(t, 126.66, assignment.Weight(fixtures.Market0(), a), weightTol)

	a, err = assignment.Solve(fixtures.Market1())
	require.NoError(t, err)
	assert.Equal(t, []int{0, market.Unassigned, 1}, []int{a.BidderOf(0), a.BidderOf(1), a.BidderOf(2)})

	// Market2 and Market3 have ties; only the weight is determined.
	_, w, err := assignment.SolveWeight(nil, fixtures.Market2())
	require.NoError(t, err)
	assert.InDelta(t, 39.92+43.51, w, weightTol)

	_, w, err = assignment.SolveWeight(nil, fixtures.Market3())
	require.NoError(t, err)
	assert.InDelta(t, 96.0+62.0, w, weightTol)
}

func TestHungarian_EmptyMarket(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 2}, {2, 5}, {4, 4}} {
		v := fixtures.Empty(shape[0], shape[1])
		a, err := assignment.Solve(v)
		require.NoError(t, err)
		assert.Zero(t, a.Size(), "no edges must yield the empty allocation")
		for _, row := range a.Matrix() {
			for _, x := range row {
				assert.Zero(t, x)
			}
		}
	}
}

func TestHungarian_RectangularAndIsolated(t *testing.T) {
	// Bidder 2 has no edge at all; good 1 has no edge at all.
	v := market.MustValuationMatrix([][]float64{
		{5, 3, inf, 1},
		{inf, inf, inf, inf},
		{4, 6, inf, 2},
	})
	a, w, err := assignment.SolveWeight(assignment.Hungarian{}, v)
	require.NoError(t, err)
	requireFeasible(t, v, a)
	assert.InDelta(t, 11.0, w, weightTol)
	assert.False(t, a.GoodAllocated(1))
	assert.False(t, a.BidderAllocated(2))
}

func TestHungarian_NegativeAndZeroValues(t *testing.T) {
	v := market.MustValuationMatrix([][]float64{
		{-3, inf},
		{inf, 0},
	})
	a, w, err := assignment.SolveWeight(nil, v)
	require.NoError(t, err)
	assert.False(t, a.GoodAllocated(0), "negative edge must not be selected")
	assert.Equal(t, 1, a.BidderOf(1), "zero-valued real edge is kept")
	assert.Zero(t, w)
}

func TestHungarian_OptimalAgainstBruteForce(t *testing.T) {
	rng := market.NewRand(42)
	for n := 1; n <= 4; n++ {
		for m := 1; m <= 4; m++ {
			for _, p := range []float64{0.25, 0.5, 0.75, 1} {
				for trial := 0; trial < 5; trial++ {
					v := fixtures.Random(rng, n, m, p)
					a, w, err := assignment.SolveWeight(nil, v)
					require.NoError(t, err)
					requireFeasible(t, v, a)
					assert.InDelta(t, fixtures.BruteForceWelfare(v), w, weightTol,
						"n=%d m=%d p=%.2f trial=%d\n%v", n, m, p, trial, v)
				}
			}
		}
	}
}

func TestHungarian_FeasibleOnLargerMarkets(t *testing.T) {
	rng := market.NewRand(7)
	for _, shape := range [][2]int{{10, 3}, {3, 10}, {15, 15}, {30, 12}} {
		v := fixtures.Random(rng, shape[0], shape[1], 0.4)
		a, err := assignment.Solve(v)
		require.NoError(t, err)
		requireFeasible(t, v, a)
	}
}

func TestHungarian_Deterministic(t *testing.T) {
	v := fixtures.Random(market.NewRand(3), 8, 6, 0.6)
	first, err := assignment.Solve(v)
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		again, err := assignment.Solve(v)
		require.NoError(t, err)
		assert.Equal(t, first.Matrix(), again.Matrix())
	}
}

func TestHungarian_NilMatrix(t *testing.T) {
	_, err := assignment.Hungarian{}.Solve(nil)
	assert.ErrorIs(t, err, assignment.ErrAssignment)
	assert.ErrorIs(t, err, market.ErrNilMatrix)
}

func TestSolveWeight_WrapsSolverFailures(t *testing.T) {
	v := fixtures.Market1()
	boom := errors.New("boom")

	failing := assignment.SolverFunc(func(*market.ValuationMatrix) (market.Allocation, error) {
		return market.Allocation{}, boom
	})
	_, _, err := assignment.SolveWeight(failing, v)
	assert.ErrorIs(t, err, assignment.ErrAssignment)
	assert.ErrorIs(t, err, boom)

	// A solver that picks an absent edge violates the contract.
	cheating := assignment.SolverFunc(func(v *market.ValuationMatrix) (market.Allocation, error) {
		a := market.NewAllocation(v.Goods(), v.Bidders())
		return a, a.Assign(0, 1)
	})
	_, _, err = assignment.SolveWeight(cheating, v)
	assert.ErrorIs(t, err, assignment.ErrAssignment)
	assert.ErrorIs(t, err, market.ErrNoEdge)

	// A solver returning the wrong shape is rejected too.
	wrongShape := assignment.SolverFunc(func(*market.ValuationMatrix) (market.Allocation, error) {
		return market.NewAllocation(1, 1), nil
	})
	_, _, err = assignment.SolveWeight(wrongShape, v)
	assert.ErrorIs(t, err, market.ErrDimensionMismatch)
}
