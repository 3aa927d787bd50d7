// SPDX-License-Identifier: MIT

package maxweq

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/assignment"
)

var (
	// ErrBadPrecision indicates a price precision outside [0, MaxPrecision].
	ErrBadPrecision = errors.New("maxweq: precision out of range")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("maxweq: workers must be at least 1")
)

const (
	// DefaultPrecision is the number of decimal places kept in prices.
	DefaultPrecision = 5

	// MaxPrecision bounds the precision to what a float64 can represent.
	MaxPrecision = 15
)

// Options configures PriceByMarginalValue.
//
// Solver    – assignment backend; nil selects assignment.Default.
// Precision – decimal places kept in prices, in [0, MaxPrecision].
// Workers   – concurrent marginal solves; 1 runs sequentially.
// Logger    – Debug sink; nil selects zap.NewNop().
type Options struct {
	Solver    assignment.Solver
	Precision int
	Workers   int
	Logger    *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the sequential 5-decimal configuration.
func DefaultOptions() Options {
	return Options{
		Solver:    assignment.Default,
		Precision: DefaultPrecision,
		Workers:   1,
		Logger:    zap.NewNop(),
	}
}

// WithSolver selects the assignment backend.
func WithSolver(s assignment.Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// WithPrecision sets the number of decimal places kept in prices.
func WithPrecision(p int) Option {
	return func(o *Options) { o.Precision = p }
}

// WithWorkers sets the number of concurrent marginal solves.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes Debug events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// build applies opts over DefaultOptions and validates the result.
func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Solver == nil {
		o.Solver = assignment.Default
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Precision < 0 || o.Precision > MaxPrecision {
		return o, fmt.Errorf("precision %d: %w", o.Precision, ErrBadPrecision)
	}
	if o.Workers < 1 {
		return o, fmt.Errorf("workers %d: %w", o.Workers, ErrBadWorkers)
	}

	return o, nil
}
