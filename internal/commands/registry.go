// Package commands provides command registration and lookup for the Cookbook shell.
// The registry maps lowercase command names to commands and remembers registration order,
// which is the order the help listing uses.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"cookbook/pkg/cooktypes"
)

// ErrExit is returned by a command that ends the shell session.
var ErrExit = errors.New("exit requested")

// Registry manages command registration and lookup.
// It is populated once at start-up and only read while the shell runs.
type Registry struct {
	commands map[string]cooktypes.Command
	order    []string
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]cooktypes.Command),
	}
}

// Register adds a command to the registry. Returns an error if the command
// name is empty, not lowercase, or already registered.
func (r *Registry) Register(cmd cooktypes.Command) error {
	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if name != strings.ToLower(name) {
		return fmt.Errorf("command name %s must be lowercase", name)
	}

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	r.commands[name] = cmd
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a command by name. The name is lower-cased before lookup,
// so "EXIT" and "Exit" both find "exit".
func (r *Registry) Get(name string) (cooktypes.Command, bool) {
	cmd, exists := r.commands[strings.ToLower(name)]
	return cmd, exists
}

// GetAll returns all registered commands in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) GetAll() []cooktypes.Command {
	commands := make([]cooktypes.Command, 0, len(r.order))
	for _, name := range r.order {
		commands = append(commands, r.commands[name])
	}
	return commands
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}
