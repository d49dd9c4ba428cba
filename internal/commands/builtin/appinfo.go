package builtin

import (
	"fmt"
	"io"

	"cookbook/internal/data/embedded"
	"cookbook/internal/version"
)

// AppInfoCommand prints the application name, short version and author.
type AppInfoCommand struct {
	info embedded.AppInfo
	out  io.Writer
}

// Name returns the command name "appinfo" for registration and lookup.
func (c *AppInfoCommand) Name() string {
	return "appinfo"
}

// Description returns a brief description of what the appinfo command does.
func (c *AppInfoCommand) Description() string {
	return "Displays information about the program."
}

// Usage returns the syntax of the appinfo command.
func (c *AppInfoCommand) Usage() string {
	return "appinfo"
}

// Execute prints "<name>, v. <major>.<minor>" and "By <author>".
func (c *AppInfoCommand) Execute(_ []string) error {
	fmt.Fprintf(c.out, "%s, v. %s\n", c.info.Name, version.GetShortVersion())
	if c.info.Author != "" {
		fmt.Fprintf(c.out, "By %s\n", c.info.Author)
	}
	return nil
}
