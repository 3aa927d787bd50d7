// SPDX-License-Identifier: MIT

package reserve

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/market"
	"github.com/katalvlaran/unitmarket/maxweq"
)

// Augment returns V with two dummy bidders per good valuing it at the
// reserve (the TwoDummies strategy).
//
// Errors: market.ErrNilMatrix, market.ErrDimensionMismatch for a per-good
// reserve whose length is not n.
func Augment(v *market.ValuationMatrix, r market.ReservePrices) (*market.ValuationMatrix, error) {
	if v == nil {
		return nil, fmt.Errorf("Augment: %w", market.ErrNilMatrix)
	}
	rs, err := r.Expand(v.Goods())
	if err != nil {
		return nil, fmt.Errorf("Augment: %w", err)
	}

	return TwoDummies{}.Augment(v, rs, market.NoBidder)
}

// Deduce maps a matching of an augmented market back onto v.
//
// Algorithm Outline:
//  1. Keep the pairs of augmented whose bidder is a real column (< m).
//  2. Take prices from augmented; when it carries none, use r.
//  3. For goods i ascending that are unsold, scan bidders j ascending that
//     are unallocated; the first j with an edge and |V[i][j] − price[i]| <
//     Epsilon receives i.
//
// Deducing an already deduced matching returns an equal matching.
//
// Errors: market.ErrNilMatrix, market.ErrDimensionMismatch when augmented has
// a different number of goods or fewer bidders than v, ErrBadEpsilon.
func Deduce(v *market.ValuationMatrix, r market.ReservePrices, augmented *market.Matching, opts ...Option) (*market.Matching, error) {
	const method = "Deduce"
	if v == nil || augmented == nil {
		return nil, fmt.Errorf("%s: %w", method, market.ErrNilMatrix)
	}
	o, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	rs, err := r.Expand(v.Goods())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	m, err := deduce(v, rs, augmented, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}

func deduce(v *market.ValuationMatrix, rs []float64, augmented *market.Matching, o Options) (*market.Matching, error) {
	n, m := v.Goods(), v.Bidders()
	if augmented.Goods() != n || augmented.Bidders() < m {
		return nil, fmt.Errorf("augmented %dx%d for market %dx%d: %w",
			augmented.Goods(), augmented.Bidders(), n, m, market.ErrDimensionMismatch)
	}

	alloc, err := augmented.Allocation().Restrict(m)
	if err != nil {
		return nil, err
	}
	prices := rs
	if augmented.HasPrices() {
		prices = augmented.Prices()
	}

	repaired := 0
	var i, j int
	for i = 0; i < n; i++ {
		if alloc.GoodAllocated(i) {
			continue
		}
		for j = 0; j < m; j++ {
			if alloc.BidderAllocated(j) || !v.Edge(i, j) {
				continue
			}
			if math.Abs(v.At(i, j)-prices[i]) < o.Epsilon {
				if err = alloc.Assign(i, j); err != nil {
					return nil, err
				}
				repaired++
				break
			}
		}
	}

	out, err := market.NewMatching(v, alloc, prices)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("reserve: deduced matching",
		zap.Int("goods", n),
		zap.Int("bidders", m),
		zap.Int("dummy_columns", augmented.Bidders()-m),
		zap.Int("repaired", repaired),
		zap.Float64("revenue", out.SellerRevenue()),
	)

	return out, nil
}

// Solve runs the reserve pipeline: augment v with the configured Strategy,
// price the augmented market by marginal value, and deduce the outcome on v.
// The returned Matching owns v, an allocation restricted to real bidders and
// the augmented market's price vector.
//
// Errors: see the package documentation.
func Solve(v *market.ValuationMatrix, r market.ReservePrices, opts ...Option) (*market.Matching, error) {
	const method = "reserve.Solve"
	if v == nil {
		return nil, fmt.Errorf("%s: %w", method, market.ErrNilMatrix)
	}
	o, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	rs, err := r.Expand(v.Goods())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	augmented, err := o.Strategy.Augment(v, rs, o.Bidder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	priced, err := maxweq.PriceByMarginalValue(augmented, o.pricerOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", method, o.Strategy.Name(), err)
	}
	m, err := deduce(v, rs, priced, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}
