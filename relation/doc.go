// Package relation computes the structural relations between every member
// of a dictionary snapshot.
//
// Relation kinds:
//
//	contains / contained        expansion inclusion, reflexive
//	father_* / child_*          depth-weighted ancestry through substance,
//	                            attribute or mode, weight 1/depth²
//	opposed                     substance and attribute swapped
//	associated                  same substance and attribute, other mode
//	crossed                     substances opposed and attributes opposed
//	twin                        substance equals attribute (reflexive clique)
//	table_1 … table_5           highest rank of a paradigm holding both terms
//
// A Graph holds the current Snapshot. Rebuild computes a fresh dictionary
// and every relation in one batch; the new snapshot replaces the old one
// only when the whole computation succeeds, so readers never observe a
// partial state. Per-root passes run concurrently (WithParallelism); the
// passes of distinct roots touch disjoint matrix rows.
//
// Inhibitions are applied last: for each root, the listed kinds are cleared
// from the rows of every member of that root.
package relation
