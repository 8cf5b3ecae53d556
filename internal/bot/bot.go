// Package bot provides the built-in blackjack strategies and a registry
// to construct them by name.
package bot

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// Options carries the dependencies a strategy may need
type Options struct {
	Rng    *rand.Rand
	Logger *log.Logger
	In     io.Reader
	Out    io.Writer
}

type factory func(opts Options) game.Strategy

var registry = map[string]factory{
	"basic":  func(o Options) game.Strategy { return NewBasicBot(o.Logger) },
	"dealer": func(o Options) game.Strategy { return NewDealerBot(o.Logger) },
	"simple": func(o Options) game.Strategy { return NewSimpleBot(o.Logger) },
	"random": func(o Options) game.Strategy {
		rng := o.Rng
		if rng == nil {
			rng = randutil.New(randutil.SeedOrNow(0))
		}
		return NewRandBot(rng, o.Logger)
	},
	"console": func(o Options) game.Strategy {
		in, out := o.In, o.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return NewConsoleBot(in, out, o.Logger)
	},
}

// New constructs the strategy registered under name (case-insensitive)
func New(name string, opts Options) (game.Strategy, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(opts), nil
}

// Names returns the registered strategy names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsInteractive reports whether the named strategy reads from a terminal
func IsInteractive(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), "console")
}
