package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cookbook/internal/commands"
)

var (
	helpHeaderStyle = lipgloss.NewStyle().Bold(true)
	helpNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// HelpCommand implements the help command: it lists every registered command
// with its description, in registration order.
type HelpCommand struct {
	registry *commands.Registry
	out      io.Writer
	width    int
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Prints help for UI commands."
}

// Usage returns the syntax of the help command.
func (c *HelpCommand) Usage() string {
	return "help"
}

// Execute prints the command listing. Arguments are ignored.
func (c *HelpCommand) Execute(_ []string) error {
	fmt.Fprintln(c.out, helpHeaderStyle.Render("Commands:"))
	for _, cmd := range c.registry.GetAll() {
		fmt.Fprintln(c.out, c.row(cmd.Name(), cmd.Description()))
	}
	return nil
}

// row pads the styled name to the column width by its display width, so
// colour codes do not shift the description column. Names wider than the
// column keep one space before the description.
func (c *HelpCommand) row(name, description string) string {
	styled := helpNameStyle.Render(name)
	padding := c.width - ansi.StringWidth(styled)
	if padding < 1 {
		padding = 1
	}
	return styled + strings.Repeat(" ", padding) + description
}
