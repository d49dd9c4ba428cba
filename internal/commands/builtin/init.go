// Package builtin provides the Cookbook commands available in every session.
// Commands receive their collaborators (state, input stream, output) at construction;
// RegisterAll adds them to a registry in the order the help listing shows them.
package builtin

import (
	"fmt"
	"io"

	"cookbook/internal/commands"
	"cookbook/internal/console"
	"cookbook/internal/data/embedded"
	"cookbook/internal/state"
	"cookbook/pkg/cooktypes"
)

// DefaultHelpWidth is the column width of command names in the help listing.
const DefaultHelpWidth = 16

// Env carries what the builtin commands need from the running session.
type Env struct {
	Registry  *commands.Registry
	State     *state.State
	Prompter  console.Prompter
	Out       io.Writer
	AppInfo   embedded.AppInfo
	HelpWidth int
}

// RegisterAll registers every builtin command with env.Registry.
func RegisterAll(env *Env) error {
	width := env.HelpWidth
	if width <= 0 {
		width = DefaultHelpWidth
	}

	cmds := []cooktypes.Command{
		&HelpCommand{registry: env.Registry, out: env.Out, width: width},
		&ExitCommand{},
		&AppInfoCommand{info: env.AppInfo, out: env.Out},
		&NewRecipeCommand{state: env.State, prompter: env.Prompter, out: env.Out},
		&RecipesCommand{state: env.State, out: env.Out},
		&NewStockCommand{state: env.State, prompter: env.Prompter, out: env.Out},
		&StockCommand{state: env.State, out: env.Out},
	}

	for _, cmd := range cmds {
		if err := env.Registry.Register(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.Name(), err)
		}
	}
	return nil
}
