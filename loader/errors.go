package loader

import (
	"errors"
	"fmt"
)

// ErrInvalidUniverse classifies documents that decode but cannot seed a
// rebuild.
var ErrInvalidUniverse = errors.New("loader: invalid universe")

// OpError wraps a failure with the operation and, when known, the file.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
