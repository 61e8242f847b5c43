// Package dictionary builds the universe of scripts the relation engine
// works on: a finite set closed under containment, derived from a list of
// root paradigms.
//
// The closure of a root holds the root itself, its additive members, every
// paradigm header of its tables (recursively, through the headers' own
// tables) and every singular sequence it denotes. Members are ordered by the
// script total order and addressed by a dense index in [0, Len()).
//
// A Dictionary is immutable. Membership changes are made by building a new
// one; indices are not stable across builds.
package dictionary
