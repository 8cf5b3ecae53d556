package bot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// ConsoleBot asks a human at the terminal for each decision
type ConsoleBot struct {
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// NewConsoleBot creates a console strategy reading answers from in and
// writing prompts to out
func NewConsoleBot(in io.Reader, out io.Writer, logger *log.Logger) *ConsoleBot {
	return &ConsoleBot{
		in:     bufio.NewReader(in),
		out:    out,
		logger: orDiscard(logger),
	}
}

func (c *ConsoleBot) Name() string { return "Console Player" }

// Decide prompts until a legal action is entered. End of input stands.
func (c *ConsoleBot) Decide(snapshot game.RoundSnapshot) game.Action {
	choices := actionNames(snapshot.AllowedActions)
	fmt.Fprintf(c.out, "Your hand %s (total %d)\n", snapshot.Hand, snapshot.Hand.Best())
	fmt.Fprintf(c.out, "Dealer showing %s\n", snapshot.DealerUpcard)

	for {
		fmt.Fprintf(c.out, "Choose action [%s]: ", strings.Join(choices, "/"))
		line, err := c.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if input == "" && err != nil {
			if !errors.Is(err, io.EOF) {
				c.logger.Warn("Failed to read action", "error", err)
			} else {
				c.logger.Warn("Input closed, standing")
			}
			return game.Stand
		}

		action, perr := game.ParseAction(input)
		if perr == nil && snapshot.Allows(action) {
			return action
		}
		fmt.Fprintf(c.out, "Invalid action '%s'. Please choose from: %s\n", input, strings.Join(choices, ", "))
		if err != nil {
			return game.Stand
		}
	}
}

func actionNames(actions []game.Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}
