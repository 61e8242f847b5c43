package script

import "slices"

// Expand returns the singular sequences denoted by s, sorted by the script
// order. A singular script expands to itself. The result is derived once per
// script and copied on every call.
//
// Complexity: O(Cardinal · log Cardinal) on first call.
func (s *Script) Expand() []*Script {
	s.seqOnce.Do(func() { s.seqs = s.expand() })
	out := make([]*Script, len(s.seqs))
	copy(out, s.seqs)

	return out
}

// SingularSequences is an alias of Expand.
func (s *Script) SingularSequences() []*Script { return s.Expand() }

func (s *Script) expand() []*Script {
	if s.cardinal == 1 {
		return []*Script{s}
	}
	var out []*Script
	switch s.kind {
	case Additive:
		out = make([]*Script, 0, s.cardinal)
		for _, c := range s.children {
			out = append(out, c.Expand()...)
		}
	case Multiplicative:
		out = make([]*Script, 0, s.cardinal)
		subs := s.children[0].Expand()
		attrs := s.children[1].Expand()
		modes := s.children[2].Expand()
		for _, a := range subs {
			for _, b := range attrs {
				for _, c := range modes {
					out = append(out, Must(NewMultiplicative(a, b, c)))
				}
			}
		}
	}
	slices.SortFunc(out, Compare)

	return out
}
