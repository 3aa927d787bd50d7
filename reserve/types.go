// SPDX-License-Identifier: MIT

package reserve

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/assignment"
	"github.com/katalvlaran/unitmarket/market"
	"github.com/katalvlaran/unitmarket/maxweq"
)

var (
	// ErrBadEpsilon indicates a non-positive or non-finite deduction tolerance.
	ErrBadEpsilon = errors.New("reserve: epsilon must be positive and finite")

	// ErrUnknownStrategy is returned by StrategyByName for unregistered names.
	ErrUnknownStrategy = errors.New("reserve: unknown augmentation strategy")
)

// DefaultEpsilon is the tolerance used by Deduce to decide that a bidder is
// indifferent between a good at its price and staying out.
const DefaultEpsilon = 1e-4

// Options configures Solve and Deduce.
//
// Strategy  – augmentation used by Solve (default TwoDummies).
// Bidder    – candidate bidder for bidder-dependent strategies, or market.NoBidder.
// Epsilon   – Deduce tolerance, > 0 (default DefaultEpsilon).
// Solver    – assignment backend; nil selects assignment.Default.
// Precision – decimal places kept in prices (default maxweq.DefaultPrecision).
// Workers   – concurrent marginal solves inside maxweq (default 1).
// Logger    – Debug sink; nil selects zap.NewNop().
type Options struct {
	Strategy  Strategy
	Bidder    int
	Epsilon   float64
	Solver    assignment.Solver
	Precision int
	Workers   int
	Logger    *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the two-dummy, sequential configuration.
func DefaultOptions() Options {
	return Options{
		Strategy:  TwoDummies{},
		Bidder:    market.NoBidder,
		Epsilon:   DefaultEpsilon,
		Solver:    assignment.Default,
		Precision: maxweq.DefaultPrecision,
		Workers:   1,
		Logger:    zap.NewNop(),
	}
}

// WithStrategy selects the augmentation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithBidder sets the candidate bidder for bidder-dependent strategies.
func WithBidder(j int) Option {
	return func(o *Options) { o.Bidder = j }
}

// WithEpsilon sets the Deduce tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
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

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Strategy == nil {
		o.Strategy = TwoDummies{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon <= 0 {
		return o, fmt.Errorf("epsilon %g: %w", o.Epsilon, ErrBadEpsilon)
	}

	return o, nil
}

// pricerOptions forwards the shared settings to maxweq, which validates
// precision and workers.
func (o Options) pricerOptions() []maxweq.Option {
	return []maxweq.Option{
		maxweq.WithSolver(o.Solver),
		maxweq.WithPrecision(o.Precision),
		maxweq.WithWorkers(o.Workers),
		maxweq.WithLogger(o.Logger),
	}
}
