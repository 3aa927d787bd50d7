// SPDX-License-Identifier: MIT

package market

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// EnvyTolerance is the slack below which a utility gain does not count as
// envy. It absorbs the 5-decimal price rounding of the pricing algorithms.
const EnvyTolerance = 1e-5

// ErrNegativePrice is returned when a price vector contains a negative entry.
var ErrNegativePrice = errors.New("market: price must be non-negative")

// Matching is a market outcome: one ValuationMatrix, one Allocation of the
// same shape and, optionally, a per-good price vector.
//
// A Matching is never mutated after construction; derived quantities are
// computed on first use and cached, which makes it safe for concurrent use.
// When no prices are attached, derived quantities treat every price as 0.
type Matching struct {
	v      *ValuationMatrix
	alloc  Allocation
	prices []float64 // nil when absent

	welfareOnce sync.Once
	welfare     float64

	revenueOnce sync.Once
	revenue     float64

	envyOnce sync.Once
	envy     []int
}

// NewMatching validates and bundles an outcome. alloc and prices are copied.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNoEdge from Allocation.Validate.
//   - ErrDimensionMismatch if prices != nil and len(prices) != v.Goods().
//   - ErrNaNInf / ErrNegativePrice on invalid price entries.
func NewMatching(v *ValuationMatrix, alloc Allocation, prices []float64) (*Matching, error) {
	if err := alloc.Validate(v); err != nil {
		return nil, fmt.Errorf("NewMatching: %w", err)
	}
	if prices != nil {
		if err := checkPrices(prices, v.Goods()); err != nil {
			return nil, fmt.Errorf("NewMatching: %w", err)
		}
		prices = append([]float64(nil), prices...)
	}

	return &Matching{v: v, alloc: alloc.Clone(), prices: prices}, nil
}

func checkPrices(prices []float64, goods int) error {
	if len(prices) != goods {
		return fmt.Errorf("%d prices for %d goods: %w", len(prices), goods, ErrDimensionMismatch)
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("price[%d]: %w", i, ErrNaNInf)
		}
		if p < 0 {
			return fmt.Errorf("price[%d]=%g: %w", i, p, ErrNegativePrice)
		}
	}

	return nil
}

// WithPrices returns a new Matching with the same valuations and allocation
// and the given prices.
func (m *Matching) WithPrices(prices []float64) (*Matching, error) {
	return NewMatching(m.v, m.alloc, prices)
}

// Valuations returns the (immutable) valuation matrix.
func (m *Matching) Valuations() *ValuationMatrix { return m.v }

// Goods returns n.
func (m *Matching) Goods() int { return m.v.Goods() }

// Bidders returns m.
func (m *Matching) Bidders() int { return m.v.Bidders() }

// Allocation returns a copy of the allocation.
func (m *Matching) Allocation() Allocation { return m.alloc.Clone() }

// HasPrices reports whether a price vector is attached.
func (m *Matching) HasPrices() bool { return m.prices != nil }

// Prices returns a copy of the price vector, or nil when absent.
func (m *Matching) Prices() []float64 {
	if m.prices == nil {
		return nil
	}

	return append([]float64(nil), m.prices...)
}

// Price returns the price of good i (0 when no prices are attached).
func (m *Matching) Price(i int) float64 {
	if m.prices == nil {
		return 0
	}

	return m.prices[i]
}

// Welfare returns the total matched value, Σ V[i][j] over allocated pairs.
func (m *Matching) Welfare() float64 {
	m.welfareOnce.Do(func() {
		values := make([]float64, 0, m.alloc.Size())
		for i := 0; i < m.alloc.Goods(); i++ {
			if j := m.alloc.BidderOf(i); j != Unassigned {
				values = append(values, m.v.At(i, j))
			}
		}
		m.welfare = floats.Sum(values)
	})

	return m.welfare
}

// SellerRevenue returns Σ price[i] over allocated goods.
func (m *Matching) SellerRevenue() float64 {
	m.revenueOnce.Do(func() {
		if m.prices == nil {
			return
		}
		sold := make([]float64, 0, m.alloc.Size())
		for i, p := range m.prices {
			if m.alloc.GoodAllocated(i) {
				sold = append(sold, p)
			}
		}
		m.revenue = floats.Sum(sold)
	})

	return m.revenue
}

// BidderUtility returns V[i][j] − price[i] for the good i held by bidder j,
// or 0 when j holds nothing.
func (m *Matching) BidderUtility(j int) float64 {
	i := m.alloc.GoodOf(j)
	if i == Unassigned {
		return 0
	}

	return m.v.At(i, j) - m.Price(i)
}

// EnvyBidders lists, in ascending order, the bidders that strictly prefer
// some good at its price to their own outcome (by more than EnvyTolerance).
func (m *Matching) EnvyBidders() []int {
	m.envyOnce.Do(func() {
		m.envy = []int{}
		var i, j int
		for j = 0; j < m.v.Bidders(); j++ {
			u := m.BidderUtility(j)
			for i = 0; i < m.v.Goods(); i++ {
				if !m.v.Edge(i, j) {
					continue
				}
				if (m.v.At(i, j)-m.Price(i))-u > EnvyTolerance {
					m.envy = append(m.envy, j)
					break
				}
			}
		}
	})

	return append([]int(nil), m.envy...)
}

// EnvyCount returns len(EnvyBidders()).
func (m *Matching) EnvyCount() int {
	m.EnvyBidders()
	return len(m.envy)
}

// MarketClearanceViolations counts goods that are unsold yet priced above 0.
func (m *Matching) MarketClearanceViolations() int {
	violations := 0
	for i := 0; i < m.v.Goods(); i++ {
		if !m.alloc.GoodAllocated(i) && m.Price(i) > 0 {
			violations++
		}
	}

	return violations
}

// EFViolationsRatio returns EnvyCount divided by the number of bidders.
func (m *Matching) EFViolationsRatio() float64 {
	return float64(m.EnvyCount()) / float64(m.v.Bidders())
}

// MCViolationsRatio returns MarketClearanceViolations divided by the number of goods.
func (m *Matching) MCViolationsRatio() float64 {
	return float64(m.MarketClearanceViolations()) / float64(m.v.Goods())
}

// Links returns the value every matched bidder receives, best first.
func (m *Matching) Links() []Link {
	return Links(m.v, m.alloc)
}

// String summarizes the outcome.
func (m *Matching) String() string {
	return fmt.Sprintf("Matching{goods=%d bidders=%d matched=%d welfare=%g revenue=%g}",
		m.v.Goods(), m.v.Bidders(), m.alloc.Size(), m.Welfare(), m.SellerRevenue())
}
