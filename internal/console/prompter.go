// Package console provides the input stream the shell and its commands read from.
// The dispatch loop and every nested prompt inside a command read through the same
// Prompter, so tests can substitute a scripted stream for the terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by ReadLine when the user presses Ctrl-C at a prompt.
var ErrInterrupt = errors.New("interrupted")

// Prompter displays a prompt and blocks until one line of input is available.
// The returned line has no trailing newline. io.EOF signals the end of input; before
// returning it the prompter moves output to a fresh line.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

// ReaderPrompter reads lines from a plain io.Reader, writing prompts to out.
// It is used when standard input is not a terminal (pipes, here-documents).
type ReaderPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewReaderPrompter creates a prompter over r that echoes prompts to out.
func NewReaderPrompter(r io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{
		reader: bufio.NewReader(r),
		out:    out,
	}
}

// ReadLine writes prompt and returns the next line. A final line without a
// newline is returned normally; the following call ends the prompt line and
// returns io.EOF.
func (p *ReaderPrompter) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadlineOptions configures the interactive terminal prompter.
type ReadlineOptions struct {
	HistoryFile string    // Path of the history file; empty disables history persistence
	Stdout      io.Writer // Where prompts and echo are written; nil means os.Stdout
}

// ReadlinePrompter reads lines from the terminal with line editing and history.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a terminal prompter. Call Close when done.
func NewReadlinePrompter(opts ReadlineOptions) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(readlineConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// readlineConfig sets EOFPrompt to "\n", which readline treats as "echo nothing but the
// line break" on Ctrl-D.
func readlineConfig(opts ReadlineOptions) *readline.Config {
	return &readline.Config{
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "\n",
		Stdout:          opts.Stdout,
	}
}

// ReadLine sets the prompt and reads one edited line.
func (p *ReadlinePrompter) ReadLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

// Close restores the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

// IsTerminal reports whether fd refers to an interactive terminal.
func IsTerminal(fd uintptr) bool {
	return readline.IsTerminal(int(fd))
}
