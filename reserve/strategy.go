// SPDX-License-Identifier: MIT

package reserve

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/unitmarket/market"
)

// Strategy appends dummy bidder columns to a valuation matrix so that a
// marginal-value pricing of the result honors the per-good reserve r.
// Implementations keep the rows and the first m columns of v unchanged and
// must be safe for concurrent use.
type Strategy interface {
	// Name is the registry key of the strategy.
	Name() string
	// Augment returns V′ for reserve vector r (len n) and candidate bidder
	// (market.NoBidder or an index in [0, m)).
	Augment(v *market.ValuationMatrix, r []float64, bidder int) (*market.ValuationMatrix, error)
}

// Registry keys.
const (
	NameTwoDummies       = "two-dummies"
	NameOneDummy         = "one-dummy"
	NameBidderConnected  = "bidder-connected"
	NamePlusOneConnected = "plus-one-connected"
	NameBidderCopy       = "bidder-copy"
)

var registry = map[string]Strategy{
	NameTwoDummies:       TwoDummies{},
	NameOneDummy:         OneDummy{},
	NameBidderConnected:  BidderConnected{},
	NamePlusOneConnected: PlusOneConnected{},
	NameBidderCopy:       BidderCopy{},
}

// StrategyByName returns the registered strategy called name.
func StrategyByName(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("StrategyByName(%q): %w", name, ErrUnknownStrategy)
	}

	return s, nil
}

// StrategyNames lists the registry keys in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// TwoDummies connects two dummies to every good: columns m+2i and m+2i+1
// value good i at r[i] and every other good at 0.
type TwoDummies struct{}

// Name implements Strategy.
func (TwoDummies) Name() string { return NameTwoDummies }

// Augment implements Strategy. The bidder is ignored.
func (TwoDummies) Augment(v *market.ValuationMatrix, r []float64, bidder int) (*market.ValuationMatrix, error) {
	return withDummies("TwoDummies.Augment", v, r, bidder, 2, func(int) bool { return true })
}

// OneDummy connects a single dummy to every good (column m+i).
type OneDummy struct{}

// Name implements Strategy.
func (OneDummy) Name() string { return NameOneDummy }

// Augment implements Strategy. The bidder is ignored.
func (OneDummy) Augment(v *market.ValuationMatrix, r []float64, bidder int) (*market.ValuationMatrix, error) {
	return withDummies("OneDummy.Augment", v, r, bidder, 1, func(int) bool { return true })
}

// BidderConnected gives two dummies only to the goods the candidate bidder
// has an edge to. The matrix always grows by 2n columns.
type BidderConnected struct{}

// Name implements Strategy.
func (BidderConnected) Name() string { return NameBidderConnected }

// Augment implements Strategy.
func (BidderConnected) Augment(v *market.ValuationMatrix, r []float64, bidder int) (*market.ValuationMatrix, error) {
	return withDummies("BidderConnected.Augment", v, r, bidder, 2, func(i int) bool {
		return bidder != market.NoBidder && v.Edge(i, bidder)
	})
}

// PlusOneConnected gives two dummies to good i iff some bidder j′ connected
// to i is also connected to a good the candidate bidder has an edge to.
type PlusOneConnected struct{}

// Name implements Strategy.
func (PlusOneConnected) Name() string { return NamePlusOneConnected }

// Augment implements Strategy.
func (PlusOneConnected) Augment(v *market.ValuationMatrix, r []float64, bidder int) (*market.ValuationMatrix, error) {
	return withDummies("PlusOneConnected.Augment", v, r, bidder, 2, func(i int) bool {
		return twoHop(v, i, bidder)
	})
}

// twoHop reports whether good i reaches the candidate bidder in the path
// i – j′ – i″ – bidder.
func twoHop(v *market.ValuationMatrix, i, bidder int) bool {
	if bidder == market.NoBidder {
		return false
	}
	var j, k int
	for j = 0; j < v.Bidders(); j++ {
		if !v.Edge(i, j) {
			continue
		}
		for k = 0; k < v.Goods(); k++ {
			if v.Edge(k, j) && v.Edge(k, bidder) {
				return true
			}
		}
	}

	return false
}

// BidderCopy appends one column duplicating the candidate bidder, absent
// edges included. It ignores r. With market.NoBidder V is returned as a copy.
type BidderCopy struct{}

// Name implements Strategy.
func (BidderCopy) Name() string { return NameBidderCopy }

// Augment implements Strategy.
func (BidderCopy) Augment(v *market.ValuationMatrix, r []float64, bidder int) (*market.ValuationMatrix, error) {
	const method = "BidderCopy.Augment"
	if err := checkInputs(v, r, bidder); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	extra := make([][]float64, v.Goods())
	for i := range extra {
		if bidder == market.NoBidder {
			extra[i] = []float64{}
		} else {
			extra[i] = []float64{v.At(i, bidder)}
		}
	}

	return v.WithColumns(extra)
}

// withDummies appends perGood dummy columns per good. Column m+perGood·i+k
// values good i at r[i] when include(i) holds; all other dummy entries are 0.
func withDummies(method string, v *market.ValuationMatrix, r []float64, bidder, perGood int,
	include func(i int) bool) (*market.ValuationMatrix, error) {
	if err := checkInputs(v, r, bidder); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	n := v.Goods()
	extra := make([][]float64, n)
	var i, k int
	for i = 0; i < n; i++ {
		extra[i] = make([]float64, perGood*n)
		if !include(i) {
			continue
		}
		for k = 0; k < perGood; k++ {
			extra[i][perGood*i+k] = r[i]
		}
	}

	out, err := v.WithColumns(extra)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return out, nil
}

// checkInputs validates the common Augment arguments.
func checkInputs(v *market.ValuationMatrix, r []float64, bidder int) error {
	if v == nil {
		return market.ErrNilMatrix
	}
	if len(r) != v.Goods() {
		return fmt.Errorf("%d reserve prices for %d goods: %w", len(r), v.Goods(), market.ErrDimensionMismatch)
	}
	if bidder != market.NoBidder && (bidder < 0 || bidder >= v.Bidders()) {
		return fmt.Errorf("bidder %d of %d: %w", bidder, v.Bidders(), market.ErrOutOfRange)
	}

	return nil
}
