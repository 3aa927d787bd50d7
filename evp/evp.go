// SPDX-License-Identifier: MIT

package evp

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unitmarket/assignment"
	"github.com/katalvlaran/unitmarket/market"
	"github.com/katalvlaran/unitmarket/reserve"
)

// Approximate returns the highest-revenue outcome among the reserve
// candidates of v.
//
// Errors: market.ErrNilMatrix, ErrNoFeasibleCandidate, ErrBadWorkers, and
// the errors of reserve.Solve.
func Approximate(v *market.ValuationMatrix, opts ...Option) (*market.Matching, error) {
	rep, err := Evaluate(v, opts...)
	if err != nil {
		return nil, err
	}

	return rep.Outcome(), nil
}

// Candidates returns the reserve candidates of v in search order: the links
// of the welfare-maximizing allocation, best first, followed by the
// zero-reserve candidate when enabled.
func Candidates(v *market.ValuationMatrix, opts ...Option) ([]market.Link, error) {
	const method = "evp.Candidates"
	if v == nil {
		return nil, fmt.Errorf("%s: %w", method, market.ErrNilMatrix)
	}
	o, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	links, err := candidates(v, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return links, nil
}

func candidates(v *market.ValuationMatrix, o Options) ([]market.Link, error) {
	alloc, _, err := assignment.SolveWeight(o.Solver, v)
	if err != nil {
		return nil, err
	}
	links := market.Links(v, alloc)
	if len(links) == 0 {
		return nil, ErrNoFeasibleCandidate
	}
	if o.ZeroReserve {
		links = append(links, market.Link{Bidder: market.NoBidder, Good: market.Unassigned, Value: 0})
	}

	return links, nil
}

// Evaluate runs every reserve candidate of v and reports all outcomes with
// the index of the best one.
func Evaluate(v *market.ValuationMatrix, opts ...Option) (Report, error) {
	const method = "evp.Evaluate"
	if v == nil {
		return Report{}, fmt.Errorf("%s: %w", method, market.ErrNilMatrix)
	}
	o, err := build(opts)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", method, err)
	}
	links, err := candidates(v, o)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", method, err)
	}

	outcomes := make([]*market.Matching, len(links))
	solveOne := func(k int) error {
		r, err := market.UniformReserve(links[k].Value)
		if err != nil {
			return fmt.Errorf("candidate %d: %w", k, err)
		}
		m, err := reserve.Solve(v, r, o.reserveOptions(links[k].Bidder)...)
		if err != nil {
			return fmt.Errorf("candidate %d (%v): %w", k, links[k], err)
		}
		outcomes[k] = m
		o.Logger.Debug("evp: candidate evaluated",
			zap.Int("candidate", k),
			zap.Int("bidder", links[k].Bidder),
			zap.Float64("reserve", links[k].Value),
			zap.Float64("revenue", m.SellerRevenue()),
		)
		return nil
	}

	if o.Workers == 1 {
		for k := range links {
			if err = solveOne(k); err != nil {
				return Report{}, fmt.Errorf("%s: %w", method, err)
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for k := range links {
			k := k
			g.Go(func() error { return solveOne(k) })
		}
		if err = g.Wait(); err != nil {
			return Report{}, fmt.Errorf("%s: %w", method, err)
		}
	}

	rep := Report{Candidates: make([]Candidate, len(links))}
	for k := range links {
		rep.Candidates[k] = Candidate{Link: links[k], Outcome: outcomes[k]}
		if outcomes[k].SellerRevenue() > outcomes[rep.Best].SellerRevenue() {
			rep.Best = k
		}
	}
	o.Logger.Debug("evp: best candidate",
		zap.Int("candidates", len(links)),
		zap.Int("best", rep.Best),
		zap.Float64("reserve", rep.Reserve()),
		zap.Float64("revenue", rep.Outcome().SellerRevenue()),
	)

	return rep, nil
}
