// SPDX-License-Identifier: MIT

// Package reserve enforces a price floor on marginal-value pricing by market
// augmentation: synthetic "dummy" bidders willing to pay exactly the reserve
// are appended to the valuation matrix, the augmented market is priced with
// maxweq, and the dummies are stripped again.
//
// 🚀 Pipeline (Solve):
//
//  1. Augment  V → V′ with a Strategy (rows unchanged, columns appended).
//  2. Price    V′ with maxweq.PriceByMarginalValue.
//  3. Deduce   drop every dummy column; then, for goods ascending and bidders
//     ascending, give an unsold good i to an unallocated real bidder j when
//     the edge exists and |V[i][j] − price[i]| < Epsilon, moving on to the
//     next good after the first such bidder.
//
// With the default TwoDummies strategy every good has two dummies valuing it
// at r[i]: a good taken by a dummy is priced exactly at r[i] and a good sold
// to a real bidder at least at r[i], so the final price vector respects the
// reserve.
//
// ✨ Strategies:
//
//   - TwoDummies        two dummies per good (default).
//   - OneDummy          a single dummy per good.
//   - BidderConnected   two dummies for the goods the candidate bidder is
//     connected to; every other dummy column is all zero.
//   - PlusOneConnected  two dummies for the goods that share a bidder with
//     some good the candidate bidder is connected to.
//   - BidderCopy        one extra column duplicating the candidate bidder.
//
// The candidate bidder is set with WithBidder; market.NoBidder (default)
// disables every bidder-dependent dummy.
//
// Errors:
//
//   - market.ErrDimensionMismatch when a per-good reserve does not match n,
//     or when the matching handed to Deduce has the wrong shape.
//   - market.ErrOutOfRange for a candidate bidder outside [0, m).
//   - ErrBadEpsilon, ErrUnknownStrategy for invalid options.
//   - assignment.ErrAssignment (wrapped) when the solver fails.
package reserve
