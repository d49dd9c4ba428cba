package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseAmount parses a quantity typed by the user. Surrounding whitespace is ignored.
func ParseAmount(s string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// PromptNonEmpty asks until the answer is not blank. Each blank answer prints
// emptyMessage followed by an empty line.
func PromptNonEmpty(p Prompter, out io.Writer, prompt, emptyMessage string) (string, error) {
	for {
		answer, err := p.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if !IsBlank(answer) {
			return answer, nil
		}
		fmt.Fprintln(out, emptyMessage)
		fmt.Fprintln(out)
	}
}

// PromptAmount asks until the answer parses as a number. Each invalid answer
// prints invalidMessage followed by an empty line. before, if not nil, runs
// ahead of every attempt.
func PromptAmount(p Prompter, out io.Writer, prompt, invalidMessage string, before func()) (float64, error) {
	for {
		if before != nil {
			before()
		}
		answer, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if value, ok := ParseAmount(answer); ok {
			return value, nil
		}
		fmt.Fprintln(out, invalidMessage)
		fmt.Fprintln(out)
	}
}
