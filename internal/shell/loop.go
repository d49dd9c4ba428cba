// Package shell provides the read-eval-print loop of Cookbook.
// Each input line is tokenized, its first token is looked up case-insensitively in the
// command registry, and the matching command runs with the full token sequence.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"cookbook/internal/commands"
	"cookbook/internal/console"
	"cookbook/internal/logger"
	"cookbook/internal/parser"
)

// DefaultPrompt is printed before every top-level read.
const DefaultPrompt = ">>> "

// bannerCommand is run at start-up when the banner is enabled.
const bannerCommand = "appinfo"

// Loop dispatches input lines to registered commands until a command asks to exit
// or the input ends.
type Loop struct {
	registry     *commands.Registry
	prompter     console.Prompter
	out          io.Writer
	prompt       string
	strictQuotes bool
	banner       bool
	log          *log.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) Option {
	return func(l *Loop) {
		l.prompt = prompt
	}
}

// WithStrictQuotes makes an unterminated quoted argument an error instead of
// silently dropping it.
func WithStrictQuotes(strict bool) Option {
	return func(l *Loop) {
		l.strictQuotes = strict
	}
}

// WithBanner runs the appinfo command, followed by a blank line, before the first prompt.
func WithBanner(show bool) Option {
	return func(l *Loop) {
		l.banner = show
	}
}

// WithLogger replaces the component logger.
func WithLogger(lg *log.Logger) Option {
	return func(l *Loop) {
		l.log = lg
	}
}

// New creates a loop reading from prompter and writing separators and errors to out.
func New(registry *commands.Registry, prompter console.Prompter, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		registry: registry,
		prompter: prompter,
		out:      out,
		prompt:   DefaultPrompt,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.NewStyledLogger("Shell")
	}
	return l
}

// Run reads and dispatches lines. It returns nil when a command requests exit or
// the input ends, and an error only if the input stream fails.
func (l *Loop) Run() error {
	if l.banner {
		if err := l.showBanner(); err != nil {
			return err
		}
	}

	for {
		line, err := l.prompter.ReadLine(l.prompt)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				l.log.Debug("End of input")
				return nil
			case errors.Is(err, console.ErrInterrupt):
				continue
			default:
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		if err := l.Process(line); errors.Is(err, commands.ErrExit) {
			l.log.Debug("Exit requested")
			return nil
		}
	}
}

// Process dispatches a single input line. Unknown commands and blank lines are
// no-ops. A blank separator line follows every line whose command token is not
// empty. The only error returned is commands.ErrExit.
func (l *Loop) Process(line string) error {
	tokens, err := l.tokenize(line)
	if err != nil {
		l.log.Warn("Rejected input", "input", line, "error", err)
		fmt.Fprintf(l.out, "Error: %s\n", err)
		fmt.Fprintln(l.out)
		return nil
	}

	if len(tokens) == 0 {
		return nil
	}

	name := strings.ToLower(tokens[0])
	if cmd, ok := l.registry.Get(name); ok {
		logger.CommandExecution(name, tokens[1:])
		if err := cmd.Execute(tokens); err != nil {
			if errors.Is(err, commands.ErrExit) {
				return err
			}
			l.log.Error("Command failed", "command", name, "error", err)
			fmt.Fprintf(l.out, "Error: %s\n", err)
		}
	} else if name != "" {
		l.log.Debug("Ignoring unknown command", "command", name)
	}

	if name != "" {
		fmt.Fprintln(l.out)
	}
	return nil
}

func (l *Loop) tokenize(line string) ([]string, error) {
	if l.strictQuotes {
		return parser.TokenizeStrict(line)
	}
	return parser.Tokenize(line), nil
}

func (l *Loop) showBanner() error {
	cmd, ok := l.registry.Get(bannerCommand)
	if !ok {
		return nil
	}
	if err := cmd.Execute([]string{bannerCommand}); err != nil {
		return fmt.Errorf("failed to show banner: %w", err)
	}
	fmt.Fprintln(l.out)
	return nil
}
