package builtin

import (
	"fmt"
	"io"

	"cookbook/internal/state"
)

// RecipesCommand prints the name of every recipe, one per line.
type RecipesCommand struct {
	state *state.State
	out   io.Writer
}

// Name returns the command name "recipes" for registration and lookup.
func (c *RecipesCommand) Name() string {
	return "recipes"
}

// Description returns a brief description of what the recipes command does.
func (c *RecipesCommand) Description() string {
	return "Prints the names of all loaded recipes."
}

// Usage returns the syntax of the recipes command.
func (c *RecipesCommand) Usage() string {
	return "recipes"
}

// Execute prints every recipe name, one per line. Arguments are ignored.
func (c *RecipesCommand) Execute(_ []string) error {
	for _, recipe := range c.state.Recipes() {
		fmt.Fprintln(c.out, recipe.Name)
	}
	return nil
}
