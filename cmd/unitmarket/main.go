// SPDX-License-Identifier: MIT

// Command unitmarket runs the clearing algorithms on JSON market files and
// generates random markets for experiments.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/unitmarket/internal/config"
	"github.com/katalvlaran/unitmarket/internal/logger"
)

// env is the per-run state shared by the commands.
type env struct {
	cfg config.Config
	log *zap.Logger
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	e := &env{log: zap.NewNop()}

	return &cli.App{
		Name:  "unitmarket",
		Usage: "Clear unit-demand assignment markets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "specify an engine config file (yaml, json or toml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override log.level (debug, info, warn, error)",
			},
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := config.Load(ctx.String("config"))
			if err != nil {
				return err
			}
			if lvl := ctx.String("log-level"); lvl != "" {
				cfg.LogLevel = lvl
			}
			log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, log
			return nil
		},
		After: func(*cli.Context) error {
			// Sync on stderr fails on some platforms; nothing to do about it.
			_ = e.log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			assignCmd(e),
			maxweqCmd(e),
			reserveCmd(e),
			evpCmd(e),
			generateCmd(e),
		},
	}
}
