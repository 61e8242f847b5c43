package factorize

import (
	"errors"

	"github.com/katalvlaran/ieml/script"
)

// Sentinel errors for factorization inputs.
var (
	// ErrEmpty indicates an empty input set.
	ErrEmpty = errors.New("factorize: empty input")

	// ErrMixedLayers indicates sequences of different layers.
	ErrMixedLayers = errors.New("factorize: sequences of different layers")

	// ErrNotSingular indicates a paradigm (or nil) among the inputs.
	ErrNotSingular = errors.New("factorize: input is not a singular sequence")
)

// Defaults for Options.
const (
	DefaultMaxNodes      = 1 << 16
	DefaultCacheSize     = 4096
	defaultMaxCandidates = 4096
)

// Result is a factorization and its cost.
type Result struct {
	Script *script.Script
	Cost   int
}

// Options configures a Factorizer.
type Options struct {
	// MaxNodes bounds search nodes per factorized set; ≤ 0 means unbounded.
	MaxNodes int

	// CacheSize bounds the LRU cache of results; ≤ 0 disables caching.
	CacheSize int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MaxNodes = DefaultMaxNodes and
// CacheSize = DefaultCacheSize.
func DefaultOptions() Options {
	return Options{MaxNodes: DefaultMaxNodes, CacheSize: DefaultCacheSize}
}

// WithMaxNodes sets the node budget.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithCacheSize sets the cache capacity.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}
