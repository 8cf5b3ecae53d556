// Package simulator plays many rounds of blackjack across one or more
// independent sessions and gathers per-player statistics.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrInteractiveSessions is returned when a console player is asked to play
// several concurrent sessions
var ErrInteractiveSessions = errors.New("console players can only play a single session")

// Config holds configuration for running simulations
type Config struct {
	Rounds    int
	Sessions  int
	Seed      int64 // zero picks a time based seed
	Decks     int
	HitSoft17 bool
	Players   []config.PlayerConfig

	Logger *log.Logger
	Clock  quartz.Clock

	// Subscribers observe the first session's events, e.g. a narrating
	// display.Printer.
	Subscribers []game.EventSubscriber

	// In and Out are handed to console strategies
	In  io.Reader
	Out io.Writer
}

// SessionResult is the outcome of one independent session
type SessionResult struct {
	Index     int                `json:"index"`
	ID        string             `json:"id"`
	Seed      int64              `json:"seed"`
	Rounds    int                `json:"rounds"`
	Bankrolls map[string]float64 `json:"bankrolls"`
}

// Report aggregates a complete run
type Report struct {
	Seed      int64                 `json:"seed"`
	Rounds    int                   `json:"rounds"`
	Decks     int                   `json:"decks"`
	HitSoft17 bool                  `json:"dealer_hits_soft_17"`
	StartedAt time.Time             `json:"started_at"`
	Duration  time.Duration         `json:"duration_ns"`
	Sessions  []SessionResult       `json:"sessions"`
	Players   []PlayerSummary       `json:"players"`
	Stats     *statistics.Collector `json:"-"`
}

// PlayerSummary condenses one player's statistics for reporting
type PlayerSummary struct {
	Name             string  `json:"name"`
	Strategy         string  `json:"strategy"`
	StartingBankroll float64 `json:"starting_bankroll"`
	FinalBankroll    float64 `json:"final_bankroll"` // mean across sessions
	Rounds           int     `json:"rounds"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Pushes           int     `json:"pushes"`
	Blackjacks       int     `json:"blackjacks"`
	Skipped          int     `json:"skipped"`
	Doubles          int     `json:"doubles"`
	Busts            int     `json:"busts"`
	Net              float64 `json:"net"`
	Mean             float64 `json:"mean"`
	StdDev           float64 `json:"stddev"`
	CILow            float64 `json:"ci95_low"`
	CIHigh           float64 `json:"ci95_high"`
	HouseEdge        float64 `json:"house_edge"`
}

// Simulator runs blackjack sessions
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Sessions < 1 {
		cfg.Sessions = 1
	}
	if cfg.Decks < 1 {
		cfg.Decks = game.DefaultDecks
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{config: cfg, logger: logger.WithPrefix("simulator"), clock: clock}
}

// Run plays every session and returns the aggregated report. Sessions run
// concurrently, each with its own shoe, players and seed. Cancelling ctx
// stops every session before its next round.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if len(cfg.Players) == 0 {
		return nil, game.ErrNoPlayers
	}
	if cfg.Sessions > 1 {
		for _, p := range cfg.Players {
			if bot.IsInteractive(p.Strategy) {
				return nil, fmt.Errorf("%w: %s", ErrInteractiveSessions, p.Name)
			}
		}
	}

	seed := randutil.SeedOrNow(cfg.Seed)
	start := s.clock.Now()
	s.logger.Info("Starting simulation", "sessions", cfg.Sessions, "rounds", cfg.Rounds, "seed", seed)

	sessions := make([]SessionResult, cfg.Sessions)
	collectors := make([]*statistics.Collector, cfg.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Sessions {
		sessionSeed := seed
		if cfg.Sessions > 1 {
			sessionSeed = randutil.Derive(seed, i)
		}
		g.Go(func() error {
			result, stats, err := s.runSession(ctx, i, sessionSeed)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			sessions[i] = result
			collectors[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.NewCollector()
	for _, c := range collectors {
		merged.Merge(c)
	}
	for _, p := range cfg.Players {
		if stats := merged.Player(p.Name); stats != nil {
			if err := stats.Validate(); err != nil {
				return nil, fmt.Errorf("statistics validation failed for %s: %w", p.Name, err)
			}
		}
	}

	report := &Report{
		Seed:      seed,
		Rounds:    cfg.Rounds,
		Decks:     cfg.Decks,
		HitSoft17: cfg.HitSoft17,
		StartedAt: start,
		Duration:  s.clock.Since(start),
		Sessions:  sessions,
		Stats:     merged,
	}
	report.Players = summarize(cfg.Players, sessions, merged)

	s.logger.Info("Simulation complete", "duration", report.Duration)
	return report, nil
}

func (s *Simulator) runSession(ctx context.Context, index int, seed int64) (SessionResult, *statistics.Collector, error) {
	cfg := s.config
	stats := statistics.NewCollector()

	players, err := config.BuildPlayers(cfg.Players, bot.Options{
		Rng:    randutil.New(randutil.Derive(seed, -1)),
		Logger: s.logger,
		In:     cfg.In,
		Out:    cfg.Out,
	})
	if err != nil {
		return SessionResult{}, nil, err
	}

	opts := []game.Option{
		game.WithDecks(cfg.Decks),
		game.WithDealerHitsSoft17(cfg.HitSoft17),
		game.WithSeed(seed),
		game.WithLogger(s.logger),
		game.WithClock(s.clock),
		game.WithSubscriber(stats),
	}
	if index == 0 {
		for _, sub := range cfg.Subscribers {
			opts = append(opts, game.WithSubscriber(sub))
		}
	}

	engine, err := game.NewEngine(players, opts...)
	if err != nil {
		return SessionResult{}, nil, err
	}

	logger := s.logger.With("session", engine.ID())
	logger.Debug("Session started", "index", index, "seed", seed)

	for engine.Round() < cfg.Rounds {
		if err := ctx.Err(); err != nil {
			return SessionResult{}, nil, err
		}
		if _, err := engine.PlayRound(); err != nil {
			return SessionResult{}, nil, err
		}
	}

	logger.Debug("Session finished", "rounds", engine.Round())
	return SessionResult{
		Index:     index,
		ID:        engine.ID(),
		Seed:      seed,
		Rounds:    engine.Round(),
		Bankrolls: engine.Bankrolls(),
	}, stats, nil
}

func summarize(players []config.PlayerConfig, sessions []SessionResult, stats *statistics.Collector) []PlayerSummary {
	summaries := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		var final float64
		for _, session := range sessions {
			final += session.Bankrolls[p.Name]
		}
		final /= float64(len(sessions))

		summary := PlayerSummary{
			Name:             p.Name,
			Strategy:         p.Strategy,
			StartingBankroll: p.Bankroll,
			FinalBankroll:    final,
		}
		if st := stats.Player(p.Name); st != nil {
			low, high := st.ConfidenceInterval95()
			summary.Rounds = st.Rounds
			summary.Wins = st.Wins
			summary.Losses = st.Losses
			summary.Pushes = st.Pushes
			summary.Blackjacks = st.Blackjacks
			summary.Skipped = st.Skipped
			summary.Doubles = st.Doubles
			summary.Busts = st.Busts
			summary.Net = st.SumNet
			summary.Mean = st.Mean()
			summary.StdDev = st.StdDev()
			summary.CILow = low
			summary.CIHigh = high
			summary.HouseEdge = st.HouseEdge()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
