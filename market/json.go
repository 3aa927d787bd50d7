// SPDX-License-Identifier: MIT

package market

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes V as an array of rows; absent edges become null.
func (v *ValuationMatrix) MarshalJSON() ([]byte, error) {
	rows := make([][]*float64, v.Goods())
	var i, j int
	for i = range rows {
		rows[i] = make([]*float64, v.Bidders())
		for j = range rows[i] {
			if v.Edge(i, j) {
				x := v.At(i, j)
				rows[i][j] = &x
			}
		}
	}

	return json.Marshal(rows)
}

// UnmarshalJSON decodes an array of rows where null marks an absent edge.
func (v *ValuationMatrix) UnmarshalJSON(data []byte) error {
	var rows [][]*float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("ValuationMatrix.UnmarshalJSON: %w", err)
	}
	grid := make([][]float64, len(rows))
	var i, j int
	for i = range rows {
		grid[i] = make([]float64, len(rows[i]))
		for j = range rows[i] {
			if rows[i][j] == nil {
				grid[i][j] = NoEdge
			} else {
				grid[i][j] = *rows[i][j]
			}
		}
	}
	parsed, err := NewValuationMatrix(grid)
	if err != nil {
		return err
	}
	*v = *parsed

	return nil
}

// Outcome is the serialized form of a Matching.
type Outcome struct {
	Allocation    [][]int   `json:"allocation"`
	Prices        []float64 `json:"prices,omitempty"`
	Welfare       float64   `json:"welfare"`
	SellerRevenue float64   `json:"seller_revenue"`
	EnvyBidders   []int     `json:"envy_bidders"`
	MCViolations  int       `json:"mc_violations"`
}

// Outcome reports the matching and its derived quantities.
func (m *Matching) Outcome() Outcome {
	return Outcome{
		Allocation:    m.alloc.Matrix(),
		Prices:        m.Prices(),
		Welfare:       m.Welfare(),
		SellerRevenue: m.SellerRevenue(),
		EnvyBidders:   m.EnvyBidders(),
		MCViolations:  m.MarketClearanceViolations(),
	}
}

// MarshalJSON encodes the Outcome of m.
func (m *Matching) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Outcome())
}

