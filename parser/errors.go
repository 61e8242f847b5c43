package parser

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every error returned from Parse.
var ErrParse = errors.New("parser: malformed script")

// SyntaxError locates a parse failure in the input.
type SyntaxError struct {
	// Input is the full text being parsed.
	Input string
	// Offset is the byte offset of the offending rune.
	Offset int
	// Msg describes the failure.
	Msg string
	// Err is an underlying construction error, if any.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parser: %s at offset %d in %q: %v", e.Msg, e.Offset, e.Input, e.Err)
	}

	return fmt.Sprintf("parser: %s at offset %d in %q", e.Msg, e.Offset, e.Input)
}

// Unwrap exposes ErrParse and the underlying construction error.
func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}

	return []error{ErrParse}
}
