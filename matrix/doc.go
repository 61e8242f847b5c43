// Package matrix provides the square adjacency stores used by the relation
// engine: Bits, a boolean relation kept as one bitset per row, and Sparse, a
// weighted relation kept as one map per row.
//
// Both stores index rows and columns by the dense indices of a dictionary
// snapshot. Rows are independent: distinct goroutines may write distinct
// rows concurrently, which is how per-root relation passes run in parallel.
// Whole-matrix operations (Transpose, Clone) must not race with writers.
//
// Public indexers return ErrOutOfRange instead of panicking.
package matrix
