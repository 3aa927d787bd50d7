// SPDX-License-Identifier: MIT

package market

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NoEdge is the valuation of an absent edge: the bidder is not eligible for
// (or not interested in) the good.
var NoEdge = math.Inf(-1)

// ValuationMatrix is an immutable n×m grid of valuations, row = good,
// column = bidder. Entry (i, j) is bidder j's value for one unit of good i,
// or NoEdge (−∞) if there is no edge.
//
// The zero value is not usable; construct with NewValuationMatrix.
type ValuationMatrix struct {
	d *mat.Dense // n×m, never exposed mutably
}

// NewValuationMatrix validates rows and copies them into a new matrix.
//
// Contract:
//   - len(rows) ≥ 1 and len(rows[0]) ≥ 1, all rows of equal length (ErrBadShape).
//   - Entries are finite or −∞; NaN and +Inf are rejected (ErrNaNInf).
//
// Complexity: O(n·m) time and memory.
func NewValuationMatrix(rows [][]float64) (*ValuationMatrix, error) {
	n := len(rows)
	if n == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewValuationMatrix: %d goods: %w", n, ErrBadShape)
	}
	m := len(rows[0])

	data := make([]float64, 0, n*m)
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != m {
			return nil, fmt.Errorf("NewValuationMatrix: row %d has %d bidders, want %d: %w",
				i, len(rows[i]), m, ErrBadShape)
		}
		for j = 0; j < m; j++ {
			if err := checkValuation(rows[i][j]); err != nil {
				return nil, fmt.Errorf("NewValuationMatrix(%d,%d): %w", i, j, err)
			}
		}
		data = append(data, rows[i]...)
	}

	return &ValuationMatrix{d: mat.NewDense(n, m, data)}, nil
}

// MustValuationMatrix is like NewValuationMatrix but panics on error.
// Intended for literals in tests and examples.
func MustValuationMatrix(rows [][]float64) *ValuationMatrix {
	v, err := NewValuationMatrix(rows)
	if err != nil {
		panic(err)
	}

	return v
}

// checkValuation accepts finite values and −∞.
func checkValuation(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 1) {
		return ErrNaNInf
	}

	return nil
}

// Goods returns n, the number of rows.
func (v *ValuationMatrix) Goods() int {
	r, _ := v.d.Dims()
	return r
}

// Bidders returns m, the number of columns.
func (v *ValuationMatrix) Bidders() int {
	_, c := v.d.Dims()
	return c
}

// At returns V[i][j]. It panics when (i, j) is out of range, as gonum does.
func (v *ValuationMatrix) At(i, j int) float64 {
	return v.d.At(i, j)
}

// Edge reports whether bidder j is connected to good i (V[i][j] > −∞).
func (v *ValuationMatrix) Edge(i, j int) bool {
	return !math.IsInf(v.d.At(i, j), -1)
}

// Row returns a copy of good i's valuations.
func (v *ValuationMatrix) Row(i int) []float64 {
	return mat.Row(nil, i, v.d)
}

// Rows returns a deep copy of the matrix as a slice of rows.
//
// Complexity: O(n·m).
func (v *ValuationMatrix) Rows() [][]float64 {
	n := v.Goods()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.Row(i)
	}

	return out
}

// EdgeCount returns the number of finite entries.
func (v *ValuationMatrix) EdgeCount() int {
	n, m := v.d.Dims()
	count := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if v.Edge(i, j) {
				count++
			}
		}
	}

	return count
}

// Dense returns a copy of the backing matrix for use with gonum routines.
func (v *ValuationMatrix) Dense() *mat.Dense {
	return mat.DenseCopyOf(v.d)
}

// WithoutGood returns V with row i removed (V₋ᵢ in marginal pricing).
//
// Errors:
//   - ErrOutOfRange if i ∉ [0, n).
//   - ErrBadShape if V has a single good (the result would be empty).
//
// Complexity: O(n·m).
func (v *ValuationMatrix) WithoutGood(i int) (*ValuationMatrix, error) {
	n, m := v.d.Dims()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("WithoutGood(%d): %w", i, ErrOutOfRange)
	}
	if n == 1 {
		return nil, fmt.Errorf("WithoutGood(%d): single good: %w", i, ErrBadShape)
	}

	data := make([]float64, 0, (n-1)*m)
	for k := 0; k < n; k++ {
		if k == i {
			continue
		}
		data = append(data, v.d.RawRowView(k)...)
	}

	return &ValuationMatrix{d: mat.NewDense(n-1, m, data)}, nil
}

// WithColumns returns a new matrix with extra bidder columns appended on the
// right. extra[i] holds good i's valuations for the new bidders; all rows must
// have the same length. An extra of zero width returns a copy of V.
//
// Errors:
//   - ErrDimensionMismatch if len(extra) != n.
//   - ErrBadShape if the rows of extra differ in length.
//   - ErrNaNInf on NaN/+Inf entries.
//
// Complexity: O(n·(m+k)).
func (v *ValuationMatrix) WithColumns(extra [][]float64) (*ValuationMatrix, error) {
	n, _ := v.d.Dims()
	if len(extra) != n {
		return nil, fmt.Errorf("WithColumns: %d rows for %d goods: %w", len(extra), n, ErrDimensionMismatch)
	}
	k := len(extra[0])
	if k == 0 {
		return &ValuationMatrix{d: mat.DenseCopyOf(v.d)}, nil
	}

	data := make([]float64, 0, n*k)
	var i, j int
	for i = 0; i < n; i++ {
		if len(extra[i]) != k {
			return nil, fmt.Errorf("WithColumns: row %d has %d columns, want %d: %w", i, len(extra[i]), k, ErrBadShape)
		}
		for j = 0; j < k; j++ {
			if err := checkValuation(extra[i][j]); err != nil {
				return nil, fmt.Errorf("WithColumns(%d,%d): %w", i, j, err)
			}
		}
		data = append(data, extra[i]...)
	}

	var out mat.Dense
	out.Augment(v.d, mat.NewDense(n, k, data))

	return &ValuationMatrix{d: &out}, nil
}

// String renders the matrix one good per line, absent edges as "-Inf".
func (v *ValuationMatrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(v.d, mat.Squeeze()))
}
