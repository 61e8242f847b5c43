package relation

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/ieml/dictionary"
	"github.com/katalvlaran/ieml/script"
	"github.com/katalvlaran/ieml/table"
)

// Sentinel errors for relation queries.
var (
	// ErrNotFound is returned for scripts outside the current dictionary.
	ErrNotFound = dictionary.ErrNotFound

	// ErrNotARootParadigm is returned for root-only operations on a non-root.
	ErrNotARootParadigm = dictionary.ErrNotARootParadigm

	// ErrUnknownKind is returned for undeclared relation kinds.
	ErrUnknownKind = errors.New("relation: unknown relation kind")

	// ErrNoSnapshot is returned when a Graph is queried before its first
	// successful Rebuild.
	ErrNoSnapshot = errors.New("relation: no snapshot built")

	// ErrNoRemarkableSibling marks a script without an opposed pattern. It
	// only short-circuits sibling tests and never leaves this package.
	ErrNoRemarkableSibling = errors.New("relation: no remarkable sibling")
)

// Root seeds a rebuild: a root paradigm and the relation kinds suppressed on
// its members.
type Root struct {
	Script      *script.Script
	Inhibitions []Kind
}

// Options configures a Graph.
type Options struct {
	// Logger receives rebuild progress; defaults to a discarding logger.
	Logger *slog.Logger

	// Parallelism bounds concurrent per-root passes; ≤ 0 means GOMAXPROCS.
	Parallelism int

	// Builder derives tables for the closure and the table ranks.
	Builder *table.Builder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discarding logger, GOMAXPROCS parallelism and a
// fresh table builder.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Parallelism: runtime.GOMAXPROCS(0),
		Builder:     table.NewBuilder(),
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism bounds concurrent per-root passes.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithBuilder shares a table builder.
func WithBuilder(b *table.Builder) Option {
	return func(o *Options) {
		if b != nil {
			o.Builder = b
		}
	}
}
