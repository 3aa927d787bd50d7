// SPDX-License-Identifier: MIT

package maxweq

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/unitmarket/assignment"
	"github.com/katalvlaran/unitmarket/market"
)

// PriceByMarginalValue returns the welfare-maximizing allocation of v priced
// at the marginal value of every good. The input matrix is never modified.
//
// Guarantees: every price is ≥ 0 and every unsold good is priced at 0.
func PriceByMarginalValue(v *market.ValuationMatrix, opts ...Option) (*market.Matching, error) {
	const method = "PriceByMarginalValue"
	if v == nil {
		return nil, fmt.Errorf("%s: %w", method, market.ErrNilMatrix)
	}
	o, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	alloc, w, err := assignment.SolveWeight(o.Solver, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	prices, err := marginalPrices(v, w, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	m, err := market.NewMatching(v, alloc, prices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	o.Logger.Debug("maxweq: priced market",
		zap.Int("goods", v.Goods()),
		zap.Int("bidders", v.Bidders()),
		zap.Int("workers", o.Workers),
		zap.Float64("welfare", w),
		zap.Float64("revenue", m.SellerRevenue()),
	)

	return m, nil
}

// marginalPrices computes round(w − w(V₋ᵢ)) for every good. Worker k only
// writes prices[i] for the goods it was handed.
func marginalPrices(v *market.ValuationMatrix, w float64, o Options) ([]float64, error) {
	n := v.Goods()
	prices := make([]float64, n)
	priceOf := func(i int) error {
		wi, err := welfareWithout(v, i, o.Solver)
		if err != nil {
			return fmt.Errorf("good %d: %w", i, err)
		}
		// Removing a good never raises welfare; the clamp absorbs float noise.
		prices[i] = max(scalar.Round(w-wi, o.Precision), 0)
		return nil
	}

	if o.Workers == 1 {
		for i := 0; i < n; i++ {
			if err := priceOf(i); err != nil {
				return nil, err
			}
		}
		return prices, nil
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return priceOf(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return prices, nil
}

// welfareWithout returns w(V₋ᵢ); a market reduced to no goods has welfare 0.
func welfareWithout(v *market.ValuationMatrix, i int, solver assignment.Solver) (float64, error) {
	if v.Goods() == 1 {
		return 0, nil
	}
	reduced, err := v.WithoutGood(i)
	if err != nil {
		return 0, err
	}

	return Welfare(reduced, solver)
}

// Welfare returns the optimal total value of v under solver (nil selects
// assignment.Default).
func Welfare(v *market.ValuationMatrix, solver assignment.Solver) (float64, error) {
	_, w, err := assignment.SolveWeight(solver, v)
	return w, err
}
