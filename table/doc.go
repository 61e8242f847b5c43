// Package table derives paradigm tables from IEML scripts and classifies
// sub-paradigms by rank.
//
// A Table is a dense 1-, 2- or 3-dimensional grid of singular sequences with
// one list of header paradigms per axis:
//
//	1D  layer-0 paradigms, or a layer-1 product with one plural position:
//	    a single row header (the paradigm itself), the expansion as cells.
//	2D  two plural positions: rows vary the lower position, columns the other.
//	3D  three plural positions: rows = substance, columns = attribute,
//	    tabs = mode.
//
// A product whose only plural position holds a paradigm above layer 0 reuses
// the tables of that child, re-composing every header and cell with the two
// fixed siblings. Additions concatenate the tables of their members.
//
// Builder caches built tables per script text; Rank classifies a paradigm
// relative to the tables of its root on a 1..5 scale.
package table
