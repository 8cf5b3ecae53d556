// Package statistics accumulates per-player results across many rounds and
// reports the usual summary figures for a simulation run.
package statistics

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"sync"

	"github.com/lox/blackjack/internal/game"
)

// Statistics tracks the results of one player across played rounds.
// Skipped rounds are counted separately and excluded from the payout figures.
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Every payout, for median/percentile

	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Skipped    int
	Doubles    int
	Busts      int

	TotalWagered float64
	DoubleNet    float64 // Net payout from doubled hands
	BiggestWin   float64
	BiggestLoss  float64
}

// Add incorporates a round result
func (s *Statistics) Add(result game.GameResult) {
	if result.Outcome == game.OutcomeSkip {
		s.Skipped++
		return
	}

	net := result.Payout
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.TotalWagered += result.Bet

	switch result.Outcome {
	case game.OutcomeWin:
		s.Wins++
	case game.OutcomeLose:
		s.Losses++
	case game.OutcomePush:
		s.Pushes++
	case game.OutcomeBlackjack:
		s.Blackjacks++
	}

	if result.Doubled {
		s.Doubles++
		s.DoubleNet += net
	}
	if result.PlayerTotal > 21 {
		s.Busts++
	}

	if net > s.BiggestWin {
		s.BiggestWin = net
	}
	if net < s.BiggestLoss {
		s.BiggestLoss = net
	}
}

// Mean returns the average payout per played round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of payouts
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of payouts
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the share of played rounds won, naturals included
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins+s.Blackjacks) / float64(s.Rounds)
}

// HouseEdge returns the player's loss per unit wagered. Negative means the
// player is ahead.
func (s *Statistics) HouseEdge() float64 {
	if s.TotalWagered == 0 {
		return 0
	}
	return -s.SumNet / s.TotalWagered
}

// Median returns the median payout
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the payout at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := slices.Clone(s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Skipped += other.Skipped
	s.Doubles += other.Doubles
	s.Busts += other.Busts
	s.TotalWagered += other.TotalWagered
	s.DoubleNet += other.DoubleNet
	s.BiggestWin = max(s.BiggestWin, other.BiggestWin)
	s.BiggestLoss = min(s.BiggestLoss, other.BiggestLoss)
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}

	outcomes := s.Wins + s.Losses + s.Pushes + s.Blackjacks
	if outcomes != s.Rounds {
		return fmt.Errorf("outcome total (%d) does not match rounds (%d)", outcomes, s.Rounds)
	}

	if s.Doubles > s.Rounds {
		return fmt.Errorf("doubles (%d) exceed rounds (%d)", s.Doubles, s.Rounds)
	}

	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	if math.Abs(sum-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: values sum %.6f, SumNet %.6f", sum, s.SumNet)
	}
	return nil
}

// Collector keeps one Statistics per player name. It is safe for concurrent
// use and implements game.EventSubscriber so it can sit on an engine's bus.
type Collector struct {
	mu      sync.Mutex
	players map[string]*Statistics
	order   []string
}

// NewCollector creates an empty Collector
func NewCollector() *Collector {
	return &Collector{players: make(map[string]*Statistics)}
}

// Add records a result against its player
func (c *Collector) Add(result game.GameResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.get(result.PlayerName).Add(result)
}

// OnEvent implements game.EventSubscriber
func (c *Collector) OnEvent(event game.GameEvent) {
	if e, ok := event.(game.PlayerResultEvent); ok {
		c.Add(e.Result)
	}
}

// Merge folds another collector's results into c
func (c *Collector) Merge(other *Collector) {
	other.mu.Lock()
	names := slices.Clone(other.order)
	stats := make([]*Statistics, len(names))
	for i, name := range names {
		stats[i] = other.players[name]
	}
	other.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, name := range names {
		c.get(name).Merge(stats[i])
	}
}

// Player returns the statistics for name, or nil if none were recorded
func (c *Collector) Player(name string) *Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.players[name]
}

// Names returns player names in the order they were first seen
func (c *Collector) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.order)
}

func (c *Collector) get(name string) *Statistics {
	s, ok := c.players[name]
	if !ok {
		s = &Statistics{}
		c.players[name] = s
		c.order = append(c.order, name)
	}
	return s
}
