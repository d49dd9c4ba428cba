package builtin

import (
	"fmt"
	"io"

	"cookbook/internal/state"
)

// StockCommand prints every ingredient in stock as "<name>: <amount> <unit>".
type StockCommand struct {
	state *state.State
	out   io.Writer
}

// Name returns the command name "stock" for registration and lookup.
func (c *StockCommand) Name() string {
	return "stock"
}

// Description returns a brief description of what the stock command does.
func (c *StockCommand) Description() string {
	return "Prints all ingredients in stock."
}

// Usage returns the syntax of the stock command.
func (c *StockCommand) Usage() string {
	return "stock"
}

// Execute prints one line per stock entry. Arguments are ignored.
func (c *StockCommand) Execute(_ []string) error {
	for _, ingredient := range c.state.Stock() {
		fmt.Fprintf(c.out, "%s: %s %s\n", ingredient.Name, ingredient.FormattedAmount(), ingredient.Unit)
	}
	return nil
}
