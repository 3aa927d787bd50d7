// SPDX-License-Identifier: MIT

package market_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitmarket/market"
)

func TestReservePrices_Uniform(t *testing.T) {
	r, err := market.UniformReserve(2.5)
	require.NoError(t, err)
	assert.True(t, r.IsUniform())
	assert.Equal(t, 2.5, r.Uniform())

	rs, err := r.Expand(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, rs)
	assert.Equal(t, "uniform(2.5)", r.String())

	// The zero value is the zero reserve.
	zero, err := market.ReservePrices{}.Expand(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, zero)
}

func TestReservePrices_PerGood(t *testing.T) {
	in := []float64{1, 0, 3}
	r, err := market.PerGoodReserve(in)
	require.NoError(t, err)
	in[0] = 9
	assert.False(t, r.IsUniform())

	rs, err := r.Expand(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 3}, rs)

	_, err = r.Expand(2)
	assert.ErrorIs(t, err, market.ErrDimensionMismatch)
	_, err = r.Expand(4)
	assert.ErrorIs(t, err, market.ErrDimensionMismatch)
}

func TestReservePrices_Rejects(t *testing.T) {
	_, err := market.UniformReserve(-1)
	assert.ErrorIs(t, err, market.ErrNegativeReserve)
	_, err = market.UniformReserve(math.NaN())
	assert.ErrorIs(t, err, market.ErrNaNInf)
	_, err = market.PerGoodReserve([]float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, market.ErrNaNInf)
	_, err = market.PerGoodReserve(nil)
	assert.ErrorIs(t, err, market.ErrBadShape)
}
