// SPDX-License-Identifier: MIT

package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitmarket/market"
)

func TestAllocation_AssignAndQuery(t *testing.T) {
	a := market.NewAllocation(3, 2)
	assert.Equal(t, 0, a.Size())
	require.NoError(t, a.Assign(2, 1))

	assert.Equal(t, 1, a.BidderOf(2))
	assert.Equal(t, 2, a.GoodOf(1))
	assert.True(t, a.IsAllocated(2, 1))
	assert.False(t, a.GoodAllocated(0))
	assert.False(t, a.BidderAllocated(0))
	assert.Equal(t, market.Unassigned, a.BidderOf(0))

	assert.ErrorIs(t, a.Assign(2, 0), market.ErrAlreadyAssigned)
	assert.ErrorIs(t, a.Assign(0, 1), market.ErrAlreadyAssigned)
	assert.ErrorIs(t, a.Assign(3, 0), market.ErrOutOfRange)
	assert.ErrorIs(t, a.Assign(0, -1), market.ErrOutOfRange)

	assert.Equal(t, [][]int{{0, 0}, {0, 0}, {0, 1}}, a.Matrix())
}

func TestAllocation_CloneIsIndependent(t *testing.T) {
	a := market.NewAllocation(2, 2)
	require.NoError(t, a.Assign(0, 0))
	b := a.Clone()
	require.NoError(t, b.Assign(1, 1))
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 2, b.Size())
}

func TestAllocationFromMatrix(t *testing.T) {
	a, err := market.AllocationFromMatrix([][]int{{0, 1, 0}, {0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, a.BidderOf(0))
	assert.Equal(t, 3, a.Bidders())

	_, err = market.AllocationFromMatrix([][]int{{1, 1}})
	assert.ErrorIs(t, err, market.ErrAlreadyAssigned)
	_, err = market.AllocationFromMatrix([][]int{{1}, {1}})
	assert.ErrorIs(t, err, market.ErrAlreadyAssigned)
	_, err = market.AllocationFromMatrix([][]int{{2}})
	assert.ErrorIs(t, err, market.ErrOutOfRange)
	_, err = market.AllocationFromMatrix([][]int{{0, 0}, {0}})
	assert.ErrorIs(t, err, market.ErrBadShape)
	_, err = market.AllocationFromMatrix(nil)
	assert.ErrorIs(t, err, market.ErrBadShape)
}

func TestAllocation_Restrict(t *testing.T) {
	a := market.NewAllocation(3, 5)
	require.NoError(t, a.Assign(0, 1))
	require.NoError(t, a.Assign(1, 3))
	require.NoError(t, a.Assign(2, 4))

	r, err := a.Restrict(2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Bidders())
	assert.Equal(t, 1, r.BidderOf(0))
	assert.False(t, r.GoodAllocated(1))
	assert.False(t, r.GoodAllocated(2))

	_, err = a.Restrict(6)
	assert.ErrorIs(t, err, market.ErrDimensionMismatch)
	_, err = a.Restrict(0)
	assert.ErrorIs(t, err, market.ErrDimensionMismatch)
}

func TestAllocation_Validate(t *testing.T) {
	v := market.MustValuationMatrix([][]float64{
		{1, inf},
		{inf, 2},
	})
	a := market.NewAllocation(2, 2)
	require.NoError(t, a.Assign(0, 0))
	assert.NoError(t, a.Validate(v))

	assert.ErrorIs(t, a.Validate(nil), market.ErrNilMatrix)
	assert.ErrorIs(t, market.NewAllocation(2, 3).Validate(v), market.ErrDimensionMismatch)

	bad := market.NewAllocation(2, 2)
	require.NoError(t, bad.Assign(0, 1))
	assert.ErrorIs(t, bad.Validate(v), market.ErrNoEdge)
}
