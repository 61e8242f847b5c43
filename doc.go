// Package ieml is the root of an IEML script algebra toolkit: terms, their
// paradigm tables, a relation graph over a universe of root paradigms and a
// minimal factorizer.
//
// Packages:
//
//	script      Script values: construction, canonical form, order, expansion
//	parser      text form → Script
//	table       paradigm tables (1D/2D/3D) and table ranks
//	dictionary  closure of root paradigms with dense indices
//	matrix      bitset and sparse square adjacency stores
//	relation    relation snapshots and the atomically rebuilt Graph
//	factorize   minimal factorization of a set of singular sequences
//	loader      YAML universe documents
//	cmd/ieml    command-line front end
//
// Quick start:
//
//	s := parser.MustParse("M:.E:A:M:.-")
//	tables, _ := table.NewBuilder().Build(s)  // one 3×3 table
//	t, _ := factorize.Factorize(s.Expand())     // t prints as M:.E:A:M:.-
//
//	g := relation.NewGraph()
//	_ = g.Rebuild(ctx, []relation.Root{{Script: s}})
//	rel, _ := g.Relations(parser.MustParse("S:.E:A:S:.-"), relation.Contained)
//
// Every library package reports failures with sentinel errors matched by
// errors.Is, takes functional options where it is configurable, and is safe
// for concurrent reads.
package ieml
