// SPDX-License-Identifier: MIT

package market

import (
	"cmp"
	"fmt"
	"slices"
)

// NoBidder tags a Link that is not backed by a real bidder, such as the
// zero-reserve candidate of the price search.
const NoBidder = -1

// Link is the value a bidder obtained in a matching.
type Link struct {
	Bidder int     // bidder index, or NoBidder
	Good   int     // good the bidder holds, or Unassigned
	Value  float64 // V[Good][Bidder]
}

// Links lists a Link for every matched bidder of alloc, sorted by value in
// descending order. The sort is stable over ascending good index, so the
// result is fully determined by (v, alloc).
//
// Complexity: O(n log n).
func Links(v *ValuationMatrix, alloc Allocation) []Link {
	links := make([]Link, 0, alloc.Size())
	for i := 0; i < alloc.Goods(); i++ {
		if j := alloc.BidderOf(i); j != Unassigned {
			links = append(links, Link{Bidder: j, Good: i, Value: v.At(i, j)})
		}
	}
	slices.SortStableFunc(links, func(a, b Link) int {
		return cmp.Compare(b.Value, a.Value)
	})

	return links
}

// String implements fmt.Stringer.
func (l Link) String() string {
	return fmt.Sprintf("(j = %d, value = %g)", l.Bidder, l.Value)
}
