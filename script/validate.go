package script

import (
	"fmt"
	"strings"
)

// Validate re-checks the structural invariants of s and its descendants:
// arity, layer of children, member order and disjointness of additions.
// Scripts built by this package always validate; Validate exists for values
// assembled elsewhere and for tests.
func (s *Script) Validate() error {
	if s == nil {
		return fmt.Errorf("nil script: %w", ErrInvalidStructure)
	}
	if s.layer < 0 || s.layer > MaxLayer {
		return fmt.Errorf("layer %d out of range: %w", s.layer, ErrInvalidStructure)
	}
	if len(s.canonical) != canonicalLen(s.layer) {
		return fmt.Errorf("canonical form of %q has %d bytes, want %d: %w",
			s.text, len(s.canonical), canonicalLen(s.layer), ErrInvalidStructure)
	}
	switch s.kind {
	case Null:
		if len(s.children) != 0 {
			return fmt.Errorf("null script with children: %w", ErrInvalidStructure)
		}
	case Primitive:
		if s.layer != 0 || !strings.ContainsRune("UASBT", rune(s.char)) {
			return fmt.Errorf("primitive %q: %w", s.char, ErrInvalidStructure)
		}
	case Multiplicative:
		if len(s.children) != 3 {
			return fmt.Errorf("multiplication %q has %d children: %w", s.text, len(s.children), ErrInvalidStructure)
		}
		allNull := true
		for i, c := range s.children {
			if c == nil || c.layer != s.layer-1 {
				return fmt.Errorf("multiplication %q: bad %s: %w", s.text, Positions[i], ErrInvalidStructure)
			}
			if err := c.Validate(); err != nil {
				return err
			}
			allNull = allNull && c.kind == Null
		}
		if allNull {
			return fmt.Errorf("multiplication of three nulls: %w", ErrInvalidStructure)
		}
	case Additive:
		if len(s.children) < 2 {
			return fmt.Errorf("addition %q has %d members: %w", s.text, len(s.children), ErrInvalidStructure)
		}
		for i, c := range s.children {
			if c == nil || c.layer != s.layer || c.kind == Additive {
				return fmt.Errorf("addition %q: bad member %d: %w", s.text, i, ErrInvalidStructure)
			}
			if err := c.Validate(); err != nil {
				return err
			}
			if i > 0 && Compare(s.children[i-1], c) >= 0 {
				return fmt.Errorf("addition %q: members out of order: %w", s.text, ErrInvalidStructure)
			}
			for _, d := range s.children[:i] {
				if overlaps(c, d) {
					return fmt.Errorf("addition %q: members %s and %s overlap: %w", s.text, d, c, ErrInvalidStructure)
				}
			}
		}
	default:
		return fmt.Errorf("unknown kind %d: %w", s.kind, ErrInvalidStructure)
	}

	return nil
}
