package table

// DefaultCacheSize is the number of scripts whose tables a Builder keeps.
const DefaultCacheSize = 1024

// Options configures a Builder.
type Options struct {
	// CacheSize bounds the LRU cache of built tables; ≤ 0 disables caching.
	CacheSize int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with CacheSize = DefaultCacheSize.
func DefaultOptions() Options {
	return Options{CacheSize: DefaultCacheSize}
}

// WithCacheSize sets the LRU capacity.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}
