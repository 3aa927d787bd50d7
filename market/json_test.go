// SPDX-License-Identifier: MIT

package market_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitmarket/internal/fixtures"
	"github.com/katalvlaran/unitmarket/market"
)

func TestValuationMatrix_JSON(t *testing.T) {
	var v market.ValuationMatrix
	require.NoError(t, json.Unmarshal([]byte(`[[39.92,null],[null,43.51]]`), &v))
	assert.Equal(t, 2, v.Goods())
	assert.Equal(t, 39.92, v.At(0, 0))
	assert.False(t, v.Edge(0, 1))

	out, err := json.Marshal(&v)
	require.NoError(t, err)
	assert.JSONEq(t, `[[39.92,null],[null,43.51]]`, string(out))

	assert.ErrorIs(t, json.Unmarshal([]byte(`[[1,2],[3]]`), &v), market.ErrBadShape)
	assert.Error(t, json.Unmarshal([]byte(`{"rows":1}`), &v))
}

func TestMatching_JSON(t *testing.T) {
	a, err := market.AllocationFromMatrix([][]int{{1, 0}, {0, 0}, {0, 1}})
	require.NoError(t, err)
	m, err := market.NewMatching(fixtures.Market1(), a, []float64{19.47, 0, 32.05})
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)

	var got market.Outcome
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, [][]int{{1, 0}, {0, 0}, {0, 1}}, got.Allocation)
	assert.Equal(t, []float64{19.47, 0, 32.05}, got.Prices)
	assert.InDelta(t, 51.52, got.SellerRevenue, 1e-9)
	assert.InDelta(t, 92.63, got.Welfare, 1e-9)
	assert.Empty(t, got.EnvyBidders)
	assert.Zero(t, got.MCViolations)

	plain, err := market.NewMatching(fixtures.Market1(), a, nil)
	require.NoError(t, err)
	out, err = json.Marshal(plain)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"prices"`)
}
