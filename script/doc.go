// Package script defines the IEML script algebra: an immutable, recursive
// value type denoting one or more concrete instances ("singular sequences").
//
// A *Script is a closed tagged union over four kinds:
//
//	Null            the empty script of a layer (E: at layer 0, E:. at layer 1, …)
//	Primitive       one of the layer-0 letters U A S B T
//	Multiplicative  exactly three children (substance, attribute, mode) of layer L-1
//	Additive        two or more pairwise-disjoint children of the same layer
//
// Every Script carries, computed once at construction:
//
//   - Layer: recursion depth (0 = primitive level, at most MaxLayer).
//   - Cardinal: number of singular sequences it denotes.
//   - Canonical: 3^layer bytes, the per-position union of primitive bits.
//   - Class: grammatical class (auxiliary, verb, noun).
//   - String: the canonical text form; identity is defined by it.
//
// Scripts are ordered by a strict total order (Compare): layer, then Null
// first, then cardinal, then canonical bytes, then kind (multiplicative before
// additive) and children, then primitive weights.
//
// Constructors normalize: nested additions are flattened, sorted and
// de-duplicated; a multiplication of three Nulls is the Null of the next
// layer; an addition of one child is that child. Construction never repairs a
// broken invariant silently: it fails with an error wrapping
// ErrInvalidStructure.
//
// Text parsing lives in the parser package; String is its inverse.
package script
