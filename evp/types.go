// SPDX-License-Identifier: MIT

package evp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/assignment"
	"github.com/katalvlaran/unitmarket/market"
	"github.com/katalvlaran/unitmarket/maxweq"
	"github.com/katalvlaran/unitmarket/reserve"
)

var (
	// ErrNoFeasibleCandidate is returned when the welfare-maximizing
	// allocation matches no bidder, leaving no reserve to try.
	ErrNoFeasibleCandidate = errors.New("evp: no feasible reserve candidate")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("evp: workers must be at least 1")
)

// Options configures Approximate and Evaluate.
//
// ZeroReserve – append the (market.NoBidder, 0) candidate.
// Workers     – candidates evaluated concurrently; 1 runs sequentially.
// Strategy    – augmentation used for every candidate (default reserve.TwoDummies).
// Epsilon     – Deduce tolerance (default reserve.DefaultEpsilon).
// Precision   – decimal places kept in prices (default maxweq.DefaultPrecision).
// Solver      – assignment backend; nil selects assignment.Default.
// Logger      – Debug sink; nil selects zap.NewNop().
type Options struct {
	ZeroReserve bool
	Workers     int
	Strategy    reserve.Strategy
	Epsilon     float64
	Precision   int
	Solver      assignment.Solver
	Logger      *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the sequential two-dummy search with the
// zero-reserve candidate enabled.
func DefaultOptions() Options {
	return Options{
		ZeroReserve: true,
		Workers:     1,
		Strategy:    reserve.TwoDummies{},
		Epsilon:     reserve.DefaultEpsilon,
		Precision:   maxweq.DefaultPrecision,
		Solver:      assignment.Default,
		Logger:      zap.NewNop(),
	}
}

// WithZeroReserve toggles the zero-reserve candidate.
func WithZeroReserve(on bool) Option {
	return func(o *Options) { o.ZeroReserve = on }
}

// WithWorkers sets the number of candidates evaluated concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrategy selects the augmentation strategy.
func WithStrategy(s reserve.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithEpsilon sets the Deduce tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithPrecision sets the number of decimal places kept in prices.
func WithPrecision(p int) Option {
	return func(o *Options) { o.Precision = p }
}

// WithSolver selects the assignment backend.
func WithSolver(s assignment.Solver) Option {
	return func(o *Options) { o.Solver = s }
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
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Solver == nil {
		o.Solver = assignment.Default
	}
	if o.Workers < 1 {
		return o, fmt.Errorf("workers %d: %w", o.Workers, ErrBadWorkers)
	}

	return o, nil
}

// reserveOptions configures one candidate's reserve solve. The solve itself
// stays sequential; concurrency lives at the candidate level.
func (o Options) reserveOptions(bidder int) []reserve.Option {
	return []reserve.Option{
		reserve.WithStrategy(o.Strategy),
		reserve.WithBidder(bidder),
		reserve.WithEpsilon(o.Epsilon),
		reserve.WithPrecision(o.Precision),
		reserve.WithSolver(o.Solver),
		reserve.WithLogger(o.Logger),
	}
}

// Candidate is one evaluated reserve.
type Candidate struct {
	Link    market.Link      // bidder and value that set the reserve
	Outcome *market.Matching // reserve.Solve result at Link.Value
}

// Revenue returns the seller revenue of the candidate's outcome.
func (c Candidate) Revenue() float64 { return c.Outcome.SellerRevenue() }

// Report lists every evaluated candidate in search order and the index of
// the selected one.
type Report struct {
	Candidates []Candidate
	Best       int
}

// Outcome returns the selected matching.
func (r Report) Outcome() *market.Matching { return r.Candidates[r.Best].Outcome }

// Reserve returns the uniform reserve of the selected candidate.
func (r Report) Reserve() float64 { return r.Candidates[r.Best].Link.Value }
