// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/assignment"
	"github.com/katalvlaran/unitmarket/evp"
	"github.com/katalvlaran/unitmarket/market"
	"github.com/katalvlaran/unitmarket/maxweq"
	"github.com/katalvlaran/unitmarket/reserve"
)

var (
	inFlag = &cli.StringFlag{
		Name:     "in",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "specify the input market.json",
	}
	outFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "specify the output file (default stdout)",
	}
)

func assignCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:    "assign",
		Usage:   "Compute a welfare-maximizing allocation",
		Aliases: []string{"a"},
		Flags:   []cli.Flag{inFlag, outFlag},
		Action: func(ctx *cli.Context) error {
			v, err := loadMarket(ctx.String("in"))
			if err != nil {
				return fmt.Errorf("load market file failed: %w", err)
			}
			alloc, err := assignment.Solve(v)
			if err != nil {
				return err
			}
			m, err := market.NewMatching(v, alloc, nil)
			if err != nil {
				return err
			}
			e.log.Info("assigned", zap.Int("matched", alloc.Size()), zap.Float64("welfare", m.Welfare()))
			return writeJSON(ctx.App.Writer, ctx.String("out"), m.Outcome())
		},
	}
}

func maxweqCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:    "maxweq",
		Usage:   "Price the market by marginal value",
		Aliases: []string{"m"},
		Flags:   []cli.Flag{inFlag, outFlag},
		Action: func(ctx *cli.Context) error {
			v, err := loadMarket(ctx.String("in"))
			if err != nil {
				return fmt.Errorf("load market file failed: %w", err)
			}
			m, err := maxweq.PriceByMarginalValue(v, e.cfg.MaxWEQOptions(e.log)...)
			if err != nil {
				return err
			}
			e.log.Info("priced", zap.Float64("revenue", m.SellerRevenue()))
			return writeJSON(ctx.App.Writer, ctx.String("out"), m.Outcome())
		},
	}
}

func reserveCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:    "reserve",
		Usage:   "Price the market by marginal value above a uniform reserve",
		Aliases: []string{"r"},
		Flags: []cli.Flag{
			inFlag,
			outFlag,
			&cli.Float64Flag{
				Name:     "reserve",
				Required: true,
				Usage:    "specify the uniform reserve price (>= 0)",
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "override engine.strategy",
			},
			&cli.IntFlag{
				Name:  "bidder",
				Value: market.NoBidder,
				Usage: "specify the candidate bidder of bidder-dependent strategies",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := e.cfg
			if s := ctx.String("strategy"); s != "" {
				cfg.Strategy = s
			}
			opts, err := cfg.ReserveOptions(e.log)
			if err != nil {
				return err
			}
			r, err := market.UniformReserve(ctx.Float64("reserve"))
			if err != nil {
				return err
			}
			v, err := loadMarket(ctx.String("in"))
			if err != nil {
				return fmt.Errorf("load market file failed: %w", err)
			}
			m, err := reserve.Solve(v, r, append(opts, reserve.WithBidder(ctx.Int("bidder")))...)
			if err != nil {
				return err
			}
			e.log.Info("priced with reserve", zap.Stringer("reserve", r), zap.Float64("revenue", m.SellerRevenue()))
			return writeJSON(ctx.App.Writer, ctx.String("out"), m.Outcome())
		},
	}
}

func evpCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:    "evp",
		Usage:   "Search uniform reserves for the highest envy-free revenue",
		Aliases: []string{"e"},
		Flags:   []cli.Flag{inFlag, outFlag},
		Action: func(ctx *cli.Context) error {
			v, err := loadMarket(ctx.String("in"))
			if err != nil {
				return fmt.Errorf("load market file failed: %w", err)
			}
			opts, err := e.cfg.EVPOptions(e.log)
			if err != nil {
				return err
			}
			rep, err := evp.Evaluate(v, opts...)
			if err != nil {
				return err
			}

			out := Report{
				Best:       rep.Best,
				Reserve:    rep.Reserve(),
				Candidates: make([]CandidateEntry, len(rep.Candidates)),
				Outcome:    rep.Outcome().Outcome(),
			}
			for k, c := range rep.Candidates {
				out.Candidates[k] = CandidateEntry{Bidder: c.Link.Bidder, Reserve: c.Link.Value, Revenue: c.Revenue()}
			}
			e.log.Info("searched reserves", zap.Int("candidates", len(out.Candidates)), zap.Float64("revenue", out.Outcome.SellerRevenue))
			return writeJSON(ctx.App.Writer, ctx.String("out"), out)
		},
	}
}

func generateCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Usage:   "Generate a random market",
		Aliases: []string{"g"},
		Flags: []cli.Flag{
			outFlag,
			&cli.IntFlag{Name: "goods", Required: true, Usage: "specify the number of goods"},
			&cli.IntFlag{Name: "bidders", Required: true, Usage: "specify the number of bidders"},
			&cli.Float64Flag{Name: "prob", Value: 0.5, Usage: "specify the edge probability (0.0-1.0)"},
			&cli.Int64Flag{Name: "seed", Usage: "specify the random seed (0 = fixed default)"},
			&cli.Float64Flag{Name: "min", Value: market.DefaultMinValue, Usage: "specify the minimum valuation"},
			&cli.Float64Flag{Name: "max", Value: market.DefaultMaxValue, Usage: "specify the maximum valuation"},
		},
		Action: func(ctx *cli.Context) error {
			var (
				goods   = ctx.Int("goods")
				bidders = ctx.Int("bidders")
				prob    = ctx.Float64("prob")
			)
			if goods < 1 || bidders < 1 {
				return errors.New("invalid goods or bidders")
			}
			v, err := market.RandomValuations(market.NewRand(ctx.Int64("seed")), goods, bidders, prob,
				ctx.Float64("min"), ctx.Float64("max"))
			if err != nil {
				return err
			}
			e.log.Debug("generated market", zap.Int("edges", v.EdgeCount()))
			return writeJSON(ctx.App.Writer, ctx.String("out"), MarketFile{Valuations: v})
		},
	}
}
