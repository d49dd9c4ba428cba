package builtin

import (
	"fmt"
	"io"

	"cookbook/internal/console"
	"cookbook/internal/logger"
	"cookbook/internal/state"
	"cookbook/pkg/cooktypes"
)

const (
	stockNamePrompt = "Enter the name of the ingredient >> "
	stockNameEmpty  = "Ingredient name cannot be empty."
	stockUnitPrompt = "What unit is this ingredient measured in? >> "
	stockUnitEmpty  = "Unit name cannot be empty."
	stockAmtPrompt  = "How much would you like to add? >> "
	stockAmtInvalid = "Input must be a value."
)

// NewStockCommand adds to the stock of an ingredient, creating the ingredient
// (and asking for its unit) when it is not in stock yet.
type NewStockCommand struct {
	state    *state.State
	prompter console.Prompter
	out      io.Writer
}

// Name returns the command name "newstock" for registration and lookup.
func (c *NewStockCommand) Name() string {
	return "newstock"
}

// Description returns a brief description of what the newstock command does.
func (c *NewStockCommand) Description() string {
	return "Adds to the existing stock of an ingredient. If not posessed, creates that ingredient."
}

// Usage returns the syntax of the newstock command.
func (c *NewStockCommand) Usage() string {
	return `newstock ["ingredient name"]`
}

// Execute asks for a unit only when the ingredient is new, then adds the entered amount.
func (c *NewStockCommand) Execute(args []string) error {
	name, err := promptName(args, c.prompter, c.out, stockNamePrompt, stockNameEmpty)
	if err != nil {
		return fmt.Errorf("failed to read ingredient name: %w", err)
	}

	ingredient := c.state.FindStock(name)
	if ingredient == nil {
		unit, err := console.PromptNonEmpty(c.prompter, c.out, stockUnitPrompt, stockUnitEmpty)
		if err != nil {
			return fmt.Errorf("failed to read unit: %w", err)
		}
		ingredient = c.state.CreateStock(name, unit)
		logger.Debug("Stock entry created", "name", name, "unit", unit)
	}

	amount, err := console.PromptAmount(c.prompter, c.out, stockAmtPrompt, stockAmtInvalid, func() {
		c.printCurrent(ingredient)
	})
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}

	ingredient.Amount += amount
	fmt.Fprintf(c.out, "You have %s %s of %s in stock.\n", ingredient.FormattedAmount(), ingredient.Unit, ingredient.Name)
	return nil
}

func (c *NewStockCommand) printCurrent(ingredient *cooktypes.Ingredient) {
	fmt.Fprintf(c.out, "Current stock of %s: %s %s\n", ingredient.Name, ingredient.FormattedAmount(), ingredient.Unit)
	fmt.Fprintln(c.out)
}
