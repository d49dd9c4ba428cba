// Package cooktypes defines the types shared between the Cookbook shell core and its commands.
// This file contains the command contract the dispatch loop invokes.
package cooktypes

// Command is a single entry of the command registry.
// Commands receive the full token sequence of the input line: args[0] is the command name
// as typed, args[1:] are the positional arguments. A command decides on its own whether it
// needs to prompt for missing arguments.
type Command interface {
	// Name returns the canonical, lowercase command name used for lookup.
	Name() string
	// Description returns the one-line text shown by the help listing.
	Description() string
	// Usage returns the syntax of the command.
	Usage() string
	// Execute runs the command with the tokenized input line.
	Execute(args []string) error
}
