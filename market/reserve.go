// SPDX-License-Identifier: MIT

package market

import (
	"fmt"
	"math"
)

// ReservePrices is a price floor: either one scalar applied to every good or
// one value per good. All values are finite and non-negative.
type ReservePrices struct {
	uniform float64
	perGood []float64 // nil for a uniform reserve
}

// UniformReserve returns a reserve of r on every good.
func UniformReserve(r float64) (ReservePrices, error) {
	if err := checkReserve(r); err != nil {
		return ReservePrices{}, fmt.Errorf("UniformReserve(%g): %w", r, err)
	}

	return ReservePrices{uniform: r}, nil
}

// PerGoodReserve returns a reserve with one value per good. The slice is copied.
func PerGoodReserve(rs []float64) (ReservePrices, error) {
	if len(rs) == 0 {
		return ReservePrices{}, fmt.Errorf("PerGoodReserve: %w", ErrBadShape)
	}
	for i, r := range rs {
		if err := checkReserve(r); err != nil {
			return ReservePrices{}, fmt.Errorf("PerGoodReserve[%d]=%g: %w", i, r, err)
		}
	}

	return ReservePrices{perGood: append([]float64(nil), rs...)}, nil
}

func checkReserve(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return ErrNaNInf
	}
	if r < 0 {
		return ErrNegativeReserve
	}

	return nil
}

// IsUniform reports whether the reserve is a single scalar.
func (r ReservePrices) IsUniform() bool { return r.perGood == nil }

// Uniform returns the scalar reserve; meaningful only when IsUniform.
func (r ReservePrices) Uniform() float64 { return r.uniform }

// Expand returns the per-good reserve vector for a market of n goods.
// A per-good reserve whose length differs from n fails with
// ErrDimensionMismatch; it is never truncated or padded.
func (r ReservePrices) Expand(goods int) ([]float64, error) {
	if r.perGood == nil {
		out := make([]float64, goods)
		for i := range out {
			out[i] = r.uniform
		}

		return out, nil
	}
	if len(r.perGood) != goods {
		return nil, fmt.Errorf("Expand: %d reserve prices for %d goods: %w", len(r.perGood), goods, ErrDimensionMismatch)
	}

	return append([]float64(nil), r.perGood...), nil
}

// String implements fmt.Stringer.
func (r ReservePrices) String() string {
	if r.perGood == nil {
		return fmt.Sprintf("uniform(%g)", r.uniform)
	}

	return fmt.Sprintf("%v", r.perGood)
}
