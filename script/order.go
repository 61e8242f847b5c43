package script

import (
	"bytes"
	"cmp"
	"slices"
)

// Compare orders scripts by a strict total order and returns -1, 0 or +1.
//
// Keys, in precedence:
//  1. layer; within a layer the Null script is the least;
//  2. cardinal;
//  3. canonical bytes, lexicographically;
//  4. above layer 0: multiplicative before additive, then children
//     lexicographically (shorter child list first on a common prefix);
//  5. at layer 0: sum of primitive weights.
//
// Compare(a, b) == 0 exactly when a and b print the same text. A nil script
// orders before every non-nil one.
func Compare(a, b *Script) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.layer, b.layer); c != 0 {
		return c
	}
	if a.kind == Null || b.kind == Null {
		switch {
		case a.kind == b.kind:
			return 0
		case a.kind == Null:
			return -1
		default:
			return 1
		}
	}
	if c := cmp.Compare(a.cardinal, b.cardinal); c != 0 {
		return c
	}
	if c := bytes.Compare(a.canonical, b.canonical); c != 0 {
		return c
	}
	if a.layer > 0 {
		if a.kind != b.kind {
			if a.kind == Multiplicative {
				return -1
			}

			return 1
		}

		return slices.CompareFunc(a.children, b.children, Compare)
	}

	return cmp.Compare(weight(a), weight(b))
}

// weight sums the primitive weights of a layer-0 script.
func weight(s *Script) int {
	w := 0
	for _, l := range primitiveLetters {
		if s.canonical[0]&letterBits[l] != 0 {
			w += letterWeights[l]
		}
	}

	return w
}

// Compare is the method form of the package-level Compare.
func (s *Script) Compare(o *Script) int { return Compare(s, o) }

// Equal reports whether a and b are the same script.
func Equal(a, b *Script) bool { return Compare(a, b) == 0 }

// Equal is the method form of the package-level Equal.
func (s *Script) Equal(o *Script) bool { return Compare(s, o) == 0 }

// Less reports whether a orders strictly before b.
func Less(a, b *Script) bool { return Compare(a, b) < 0 }

// Sort sorts ss in place by the script order.
func Sort(ss []*Script) { slices.SortFunc(ss, Compare) }
