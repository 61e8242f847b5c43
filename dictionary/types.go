package dictionary

import (
	"errors"

	"github.com/katalvlaran/ieml/table"
)

// Sentinel errors for dictionary construction and lookup.
var (
	// ErrNotFound indicates a script absent from the dictionary.
	ErrNotFound = errors.New("dictionary: script not found")

	// ErrNotARootParadigm indicates a root-only query on a non-root, or a
	// singular script offered as root.
	ErrNotARootParadigm = errors.New("dictionary: not a root paradigm")

	// ErrOverlappingRoots indicates two roots sharing a singular sequence.
	ErrOverlappingRoots = errors.New("dictionary: root paradigms overlap")
)

// Options configures New.
type Options struct {
	// Builder derives the tables whose headers enter the closure.
	Builder *table.Builder
}

// Option mutates Options.
type Option func(*Options)

// WithBuilder shares a table builder (and its cache) with the caller.
func WithBuilder(b *table.Builder) Option {
	return func(o *Options) { o.Builder = b }
}
