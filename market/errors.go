// SPDX-License-Identifier: MIT
// Package market: sentinel error set.
// All constructors and derivations return these sentinels (possibly wrapped
// with method context via fmt.Errorf("...: %w", ErrX)); callers match them
// with errors.Is. Nothing in this package panics on user input except the
// raw indexers At/Row, which follow gonum's bounds-panic contract.

package market

import "errors"

var (
	// ErrBadShape is returned when a matrix would have no goods or no bidders,
	// or when its rows have different lengths.
	ErrBadShape = errors.New("market: invalid shape")

	// ErrDimensionMismatch indicates incompatible lengths between a valuation
	// matrix and a companion value (reserve vector, price vector, allocation).
	ErrDimensionMismatch = errors.New("market: dimension mismatch")

	// ErrNaNInf signals a NaN or +Inf valuation, or a non-finite price.
	// −Inf is the only non-finite valuation accepted (absent edge).
	ErrNaNInf = errors.New("market: NaN or Inf encountered")

	// ErrNegativeReserve is returned for reserve prices below zero.
	ErrNegativeReserve = errors.New("market: reserve price must be non-negative")

	// ErrOutOfRange indicates a good or bidder index outside valid bounds.
	ErrOutOfRange = errors.New("market: index out of range")

	// ErrAlreadyAssigned is returned when assigning a good or a bidder that
	// already participates in the allocation.
	ErrAlreadyAssigned = errors.New("market: good or bidder already assigned")

	// ErrNoEdge is returned when an allocation selects an absent (−∞) edge.
	ErrNoEdge = errors.New("market: allocation selects an absent edge")

	// ErrNilMatrix indicates that a nil *ValuationMatrix was supplied.
	ErrNilMatrix = errors.New("market: nil valuation matrix")

	// ErrInvalidProbability is returned by the random generator for p ∉ [0,1].
	ErrInvalidProbability = errors.New("market: probability must be in [0,1]")

	// ErrInvalidRange is returned by the random generator when min > max
	// or a bound is not finite.
	ErrInvalidRange = errors.New("market: invalid value range")
)
