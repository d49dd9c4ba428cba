// Package testutils provides fakes for exercising the Cookbook shell without a terminal.
package testutils

import (
	"io"
)

// ScriptedPrompter replays a fixed list of input lines and records every prompt it was asked
// to display. Once the script is exhausted ReadLine returns io.EOF, or Err if it is set.
type ScriptedPrompter struct {
	lines   []string
	next    int
	Prompts []string
	Err     error
}

// NewScriptedPrompter creates a prompter that answers with lines in order.
func NewScriptedPrompter(lines ...string) *ScriptedPrompter {
	return &ScriptedPrompter{lines: lines}
}

// ReadLine records prompt and returns the next scripted line.
func (s *ScriptedPrompter) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.lines) {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Remaining returns how many scripted lines have not been consumed.
func (s *ScriptedPrompter) Remaining() int {
	return len(s.lines) - s.next
}
