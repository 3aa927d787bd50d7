// SPDX-License-Identifier: MIT

// Package market_test covers the market data model: construction and
// validation of valuation matrices, allocations, reserves and matchings.
package market_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitmarket/market"
)

var inf = math.Inf(-1)

func TestNewValuationMatrix_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"NoGoods", nil, market.ErrBadShape},
		{"NoBidders", [][]float64{{}}, market.ErrBadShape},
		{"Ragged", [][]float64{{1, 2}, {3}}, market.ErrBadShape},
		{"NaN", [][]float64{{1, math.NaN()}}, market.ErrNaNInf},
		{"PlusInf", [][]float64{{math.Inf(1)}}, market.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := market.NewValuationMatrix(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Panics(t, func() { market.MustValuationMatrix(nil) })
}

func TestValuationMatrix_Accessors(t *testing.T) {
	rows := [][]float64{
		{29.60, 18.66, inf},
		{inf, inf, 27.10},
	}
	v, err := market.NewValuationMatrix(rows)
	require.NoError(t, err)

	// The constructor copies its input.
	rows[0][0] = 0
	assert.Equal(t, 29.60, v.At(0, 0))

	assert.Equal(t, 2, v.Goods())
	assert.Equal(t, 3, v.Bidders())
	assert.True(t, v.Edge(0, 1))
	assert.False(t, v.Edge(1, 0))
	assert.Equal(t, 3, v.EdgeCount())
	assert.Equal(t, []float64{inf, inf, 27.10}, v.Row(1))

	out := v.Rows()
	out[1][2] = 1
	assert.Equal(t, 27.10, v.At(1, 2), "Rows must return a deep copy")

	d := v.Dense()
	d.Set(0, 1, 99)
	assert.Equal(t, 18.66, v.At(0, 1), "Dense must return a copy")
}

func TestValuationMatrix_WithoutGood(t *testing.T) {
	v := market.MustValuationMatrix([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	w, err := v.WithoutGood(1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {5, 6}}, w.Rows())
	assert.Equal(t, 3, v.Goods(), "receiver is unchanged")

	_, err = v.WithoutGood(3)
	assert.ErrorIs(t, err, market.ErrOutOfRange)
	_, err = v.WithoutGood(-1)
	assert.ErrorIs(t, err, market.ErrOutOfRange)

	single := market.MustValuationMatrix([][]float64{{1, 2}})
	_, err = single.WithoutGood(0)
	assert.ErrorIs(t, err, market.ErrBadShape)
}

func TestValuationMatrix_WithColumns(t *testing.T) {
	v := market.MustValuationMatrix([][]float64{
		{1, inf},
		{inf, 2},
	})
	w, err := v.WithColumns([][]float64{{7, 0}, {0, 8}})
	require.NoError(t, err)
	assert.Equal(t, 2, w.Goods())
	assert.Equal(t, 4, w.Bidders())
	assert.Equal(t, []float64{1, inf, 7, 0}, w.Row(0))
	assert.Equal(t, []float64{inf, 2, 0, 8}, w.Row(1))
	assert.Equal(t, 2, v.Bidders(), "receiver is unchanged")

	same, err := v.WithColumns([][]float64{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, v.Rows(), same.Rows())

	_, err = v.WithColumns([][]float64{{1}})
	assert.ErrorIs(t, err, market.ErrDimensionMismatch)
	_, err = v.WithColumns([][]float64{{1}, {1, 2}})
	assert.ErrorIs(t, err, market.ErrBadShape)
	_, err = v.WithColumns([][]float64{{math.NaN()}, {1}})
	assert.ErrorIs(t, err, market.ErrNaNInf)
}
