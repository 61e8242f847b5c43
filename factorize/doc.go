// Package factorize synthesizes a minimal script denoting a given set of
// singular sequences.
//
// Factorize(S) returns a script t with expand(t) == S. Above layer 0 the
// sequences are covered by disjoint "boxes" A₀×A₁×A₂ ⊆ S, each printed as
// one multiplication whose children are the recursive factorizations of its
// axes; sequences left uncovered stay as members of the final addition.
//
// Cost function (minimized):
//
//	singleton set or layer-0 union   0
//	sequence left uncovered          1
//	box                              1 + Σ cost(factorize(Aᵢ)) over |Aᵢ| > 1
//
// Candidate boxes:
//  1. cubes: for each position, sequences grouped by the other two
//     coordinates; groups of two or more values;
//  2. merges: boxes agreeing on two axes are united along the third, to a
//     fixpoint;
//  3. restrictions: for overlapping candidates, one candidate minus the
//     other's values along one axis.
//
// Search: an exact-cover style depth-first branch-and-bound. It branches on
// the uncovered sequence with the fewest compatible candidates, tries
// candidates with the most remaining compatible neighbours first (then larger
// coverage, then text order) and finally leaves the sequence uncovered. The
// incumbent is seeded greedily; a branch is pruned when
// cost + ⌈uncovered / largest box⌉ ≥ incumbent. A node budget bounds the
// search deterministically; when it is exhausted the incumbent is returned,
// which is still an exact (if possibly non-minimal) factorization.
//
// Inputs are sorted and de-duplicated first, so results do not depend on
// input order. A Factorizer is pure apart from its result cache and is safe
// for concurrent use.
package factorize
