package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
)

type PlayCmd struct {
	GameFlags `embed:""`

	Verbose bool `short:"V" help:"Narrate every round"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	simCfg := simulatorConfig(cfg, logger)
	simCfg.Sessions = 1
	if c.Verbose || cfg.Interactive() {
		simCfg.Subscribers = []game.EventSubscriber{display.NewPrinter(os.Stdout, c.colorMode())}
	} else {
		// narration still reaches the log at --log-level info
		simCfg.Subscribers = []game.EventSubscriber{game.NewLogSubscriber(logger, log.InfoLevel)}
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}

	display.PrintBankrolls(os.Stdout, c.colorMode(), report.Sessions[0].Bankrolls)

	if c.Report != "" {
		if err := fileutil.WriteJSONAtomic(c.Report, report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
