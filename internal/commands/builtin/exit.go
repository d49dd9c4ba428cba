package builtin

import (
	"cookbook/internal/commands"
)

// ExitCommand implements the exit command for ending the session.
// It returns commands.ErrExit; the shell stops and the process exits with status 0.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Exits the program."
}

// Usage returns the syntax of the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// Execute requests the end of the session. Arguments are ignored.
func (c *ExitCommand) Execute(_ []string) error {
	return commands.ErrExit
}
