// SPDX-License-Identifier: MIT

package market

import "fmt"

// Unassigned marks a good without a bidder or a bidder without a good.
const Unassigned = -1

// Allocation is a matching between n goods and m bidders. It is the n×m 0/1
// allocation grid stored as two index arrays, so that every row and every
// column sums to at most one by construction.
//
// Allocation is a value type; Clone before mutating a shared copy.
type Allocation struct {
	bidderOf []int // per good: assigned bidder or Unassigned
	goodOf   []int // per bidder: assigned good or Unassigned
}

// NewAllocation returns the empty allocation over n goods and m bidders.
func NewAllocation(goods, bidders int) Allocation {
	a := Allocation{
		bidderOf: make([]int, goods),
		goodOf:   make([]int, bidders),
	}
	for i := range a.bidderOf {
		a.bidderOf[i] = Unassigned
	}
	for j := range a.goodOf {
		a.goodOf[j] = Unassigned
	}

	return a
}

// AllocationFromMatrix builds an Allocation from a 0/1 grid.
//
// Errors: ErrBadShape on ragged or empty grids, ErrAlreadyAssigned when a row
// or column sums to more than one, ErrOutOfRange on entries other than 0/1.
func AllocationFromMatrix(grid [][]int) (Allocation, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Allocation{}, fmt.Errorf("AllocationFromMatrix: %w", ErrBadShape)
	}
	a := NewAllocation(len(grid), len(grid[0]))
	var i, j int
	for i = range grid {
		if len(grid[i]) != len(a.goodOf) {
			return Allocation{}, fmt.Errorf("AllocationFromMatrix: row %d: %w", i, ErrBadShape)
		}
		for j = range grid[i] {
			switch grid[i][j] {
			case 0:
			case 1:
				if err := a.Assign(i, j); err != nil {
					return Allocation{}, fmt.Errorf("AllocationFromMatrix: %w", err)
				}
			default:
				return Allocation{}, fmt.Errorf("AllocationFromMatrix(%d,%d)=%d: %w", i, j, grid[i][j], ErrOutOfRange)
			}
		}
	}

	return a, nil
}

// Goods returns the number of goods n.
func (a Allocation) Goods() int { return len(a.bidderOf) }

// Bidders returns the number of bidders m.
func (a Allocation) Bidders() int { return len(a.goodOf) }

// BidderOf returns the bidder holding good i, or Unassigned.
func (a Allocation) BidderOf(i int) int { return a.bidderOf[i] }

// GoodOf returns the good held by bidder j, or Unassigned.
func (a Allocation) GoodOf(j int) int { return a.goodOf[j] }

// IsAllocated reports whether good i is assigned to bidder j.
func (a Allocation) IsAllocated(i, j int) bool { return a.bidderOf[i] == j }

// GoodAllocated reports whether good i has a bidder.
func (a Allocation) GoodAllocated(i int) bool { return a.bidderOf[i] != Unassigned }

// BidderAllocated reports whether bidder j has a good.
func (a Allocation) BidderAllocated(j int) bool { return a.goodOf[j] != Unassigned }

// Size returns the number of matched pairs.
func (a Allocation) Size() int {
	size := 0
	for _, j := range a.bidderOf {
		if j != Unassigned {
			size++
		}
	}

	return size
}

// Assign records the pair (i, j).
//
// Errors: ErrOutOfRange for bad indices, ErrAlreadyAssigned if either side is
// already matched (including to each other).
func (a Allocation) Assign(i, j int) error {
	if i < 0 || i >= len(a.bidderOf) || j < 0 || j >= len(a.goodOf) {
		return fmt.Errorf("Assign(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if a.bidderOf[i] != Unassigned || a.goodOf[j] != Unassigned {
		return fmt.Errorf("Assign(%d,%d): %w", i, j, ErrAlreadyAssigned)
	}
	a.bidderOf[i] = j
	a.goodOf[j] = i

	return nil
}

// Clone returns an independent copy.
func (a Allocation) Clone() Allocation {
	return Allocation{
		bidderOf: append([]int(nil), a.bidderOf...),
		goodOf:   append([]int(nil), a.goodOf...),
	}
}

// Restrict returns the allocation over the first m bidders only; pairs with
// bidders ≥ m are dropped and their goods become unassigned. Used to strip
// synthetic bidder columns after an augmented solve.
func (a Allocation) Restrict(bidders int) (Allocation, error) {
	if bidders < 1 || bidders > len(a.goodOf) {
		return Allocation{}, fmt.Errorf("Restrict(%d) of %d bidders: %w", bidders, len(a.goodOf), ErrDimensionMismatch)
	}
	out := NewAllocation(len(a.bidderOf), bidders)
	for i, j := range a.bidderOf {
		if j != Unassigned && j < bidders {
			out.bidderOf[i] = j
			out.goodOf[j] = i
		}
	}

	return out, nil
}

// Matrix exports the n×m 0/1 allocation grid.
func (a Allocation) Matrix() [][]int {
	grid := make([][]int, len(a.bidderOf))
	for i, j := range a.bidderOf {
		grid[i] = make([]int, len(a.goodOf))
		if j != Unassigned {
			grid[i][j] = 1
		}
	}

	return grid
}

// Validate checks that a has V's shape and selects only existing edges.
func (a Allocation) Validate(v *ValuationMatrix) error {
	if v == nil {
		return ErrNilMatrix
	}
	if a.Goods() != v.Goods() || a.Bidders() != v.Bidders() {
		return fmt.Errorf("Validate: allocation %dx%d vs valuations %dx%d: %w",
			a.Goods(), a.Bidders(), v.Goods(), v.Bidders(), ErrDimensionMismatch)
	}
	for i, j := range a.bidderOf {
		if j == Unassigned {
			continue
		}
		if a.goodOf[j] != i {
			return fmt.Errorf("Validate: good %d / bidder %d: %w", i, j, ErrAlreadyAssigned)
		}
		if !v.Edge(i, j) {
			return fmt.Errorf("Validate(%d,%d): %w", i, j, ErrNoEdge)
		}
	}

	return nil
}
