// Package parser turns a raw input line into the token sequence handed to commands.
// Arguments are separated by single spaces; a double-quoted run of words forms one argument.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminatedQuote is reported by TokenizeStrict when a quoted span is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quoted argument")

// MalformedInputError describes input that TokenizeStrict refuses to tokenize.
type MalformedInputError struct {
	Input  string // The raw line
	Column int    // Byte offset of the opening quote
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%v at column %d", e.Err, e.Column+1)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Tokenize splits line into tokens. It never fails: an unterminated quoted span is dropped.
//
//	Tokenize(`newrecipe "Banana Bread"`) // ["newrecipe", "Banana Bread"]
//	Tokenize("a  b")                     // ["a", "", "b"]
//	Tokenize("")                         // [""]
func Tokenize(line string) []string {
	tokens, _ := tokenize(line)
	return tokens
}

// TokenizeStrict splits line like Tokenize but returns a *MalformedInputError
// instead of dropping an unterminated quoted span.
func TokenizeStrict(line string) ([]string, error) {
	tokens, open := tokenize(line)
	if open >= 0 {
		return nil, &MalformedInputError{Input: line, Column: open, Err: ErrUnterminatedQuote}
	}
	return tokens, nil
}

// tokenize returns the tokens and the byte offset of an unterminated opening quote, or -1.
func tokenize(line string) ([]string, int) {
	fragments := strings.Split(line, " ")
	tokens := make([]string, 0, len(fragments))

	spanStart := -1
	for i, fragment := range fragments {
		if spanStart < 0 {
			switch {
			case !strings.HasPrefix(fragment, `"`):
				tokens = append(tokens, fragment)
			case len(fragment) >= 2 && strings.HasSuffix(fragment, `"`):
				tokens = append(tokens, fragment[1:len(fragment)-1])
			default:
				spanStart = i
			}
			continue
		}

		if strings.HasSuffix(fragment, `"`) {
			joined := strings.Join(fragments[spanStart:i+1], " ")
			tokens = append(tokens, joined[1:len(joined)-1])
			spanStart = -1
		}
	}

	if spanStart >= 0 {
		return tokens, offsetOf(fragments, spanStart)
	}
	return tokens, -1
}

// offsetOf returns the byte offset in the original line of fragments[index].
func offsetOf(fragments []string, index int) int {
	offset := 0
	for _, f := range fragments[:index] {
		offset += len(f) + 1
	}
	return offset
}
