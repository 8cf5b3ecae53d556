package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	GameFlags `embed:""`

	Sessions *int `short:"s" help:"Number of independent sessions to run concurrently"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if c.Sessions != nil {
		cfg.Game.Sessions = *c.Sessions
		if cfg.Game.Sessions < 1 {
			return fmt.Errorf("sessions must be at least 1, got %d", cfg.Game.Sessions)
		}
	}
	logger := newLogger(cfg)

	ctx, cancel := signalContext()
	defer cancel()

	report, err := simulator.New(simulatorConfig(cfg, logger)).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, c.colorMode(), report)

	if c.Report != "" {
		if err := fileutil.WriteJSONAtomic(c.Report, report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
