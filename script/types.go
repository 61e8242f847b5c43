package script

import (
	"errors"
	"sync"
)

// Sentinel errors for script construction.
var (
	// ErrInvalidStructure is wrapped by every construction failure: wrong
	// arity, mismatched child layers, overlapping additive children.
	ErrInvalidStructure = errors.New("script: invalid structure")

	// ErrUnknownSymbol indicates a letter or shorthand word outside the alphabet.
	ErrUnknownSymbol = errors.New("script: unknown symbol")
)

// Kind tags the variant of a Script.
type Kind uint8

const (
	// Null is the empty script of a layer.
	Null Kind = iota
	// Primitive is a non-empty layer-0 letter.
	Primitive
	// Multiplicative is a substance × attribute × mode product.
	Multiplicative
	// Additive is a union of disjoint same-layer scripts.
	Additive
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Primitive:
		return "primitive"
	case Multiplicative:
		return "multiplicative"
	case Additive:
		return "additive"
	default:
		return "unknown"
	}
}

// Class is the grammatical class of a script, derived bottom-up from the
// layer-0 letters it uses. Classes are ordered: Auxiliary < Verb < Noun.
type Class uint8

const (
	// Auxiliary scripts are rooted on the empty letter E.
	Auxiliary Class = iota
	// Verb scripts are rooted on the virtual letters U and A.
	Verb
	// Noun scripts are rooted on the actual letters S, B and T.
	Noun
)

// String returns the lower-case name of the class.
func (c Class) String() string {
	switch c {
	case Auxiliary:
		return "auxiliary"
	case Verb:
		return "verb"
	case Noun:
		return "noun"
	default:
		return "unknown"
	}
}

// Position indexes the three children of a multiplicative script.
type Position int

const (
	// Substance is the first child.
	Substance Position = iota
	// Attribute is the second child.
	Attribute
	// Mode is the third child.
	Mode
)

// Positions lists the three positions in order.
var Positions = [3]Position{Substance, Attribute, Mode}

// String returns the lower-case name of the position.
func (p Position) String() string {
	switch p {
	case Substance:
		return "substance"
	case Attribute:
		return "attribute"
	case Mode:
		return "mode"
	default:
		return "unknown"
	}
}

// Script is an immutable IEML script. The zero value is not usable; build
// scripts with NewNull, NewLetter, NewMultiplicative, NewAdditive or the
// parser package.
type Script struct {
	kind     Kind
	layer    int
	char     byte      // letter for primitives
	children []*Script // 3 for multiplicative, ≥2 for additive

	cardinal  int
	canonical []byte
	class     Class
	text      string

	// singular sequences, derived on first use
	seqOnce sync.Once
	seqs    []*Script
}

// Kind returns the variant tag.
func (s *Script) Kind() Kind { return s.kind }

// Layer returns the recursion depth (0 for letters).
func (s *Script) Layer() int { return s.layer }

// Cardinal returns the number of singular sequences denoted by s.
func (s *Script) Cardinal() int { return s.cardinal }

// IsParadigm reports whether s denotes more than one singular sequence.
func (s *Script) IsParadigm() bool { return s.cardinal > 1 }

// IsSingular reports whether s denotes exactly one singular sequence.
func (s *Script) IsSingular() bool { return s.cardinal == 1 }

// IsNull reports whether s is the empty script of its layer.
func (s *Script) IsNull() bool { return s.kind == Null }

// Class returns the grammatical class.
func (s *Script) Class() Class { return s.class }

// String returns the canonical text form.
func (s *Script) String() string { return s.text }

// Canonical returns a copy of the canonical byte form (3^layer bytes).
func (s *Script) Canonical() []byte {
	out := make([]byte, len(s.canonical))
	copy(out, s.canonical)

	return out
}

// Children returns a copy of the child list: three entries for a
// multiplicative script, the sorted members for an additive one, nil otherwise.
func (s *Script) Children() []*Script {
	if len(s.children) == 0 {
		return nil
	}
	out := make([]*Script, len(s.children))
	copy(out, s.children)

	return out
}

// Child returns the child at position p of a multiplicative script. For a
// Null script above layer 0 it returns the Null of the layer below, which
// matches the product Null×Null×Null it stands for. Other kinds return nil.
func (s *Script) Child(p Position) *Script {
	switch {
	case s.kind == Multiplicative:
		return s.children[p]
	case s.kind == Null && s.layer > 0:
		return NewNull(s.layer - 1)
	default:
		return nil
	}
}

// Substance is shorthand for Child(Substance).
func (s *Script) Substance() *Script { return s.Child(Substance) }

// Attribute is shorthand for Child(Attribute).
func (s *Script) Attribute() *Script { return s.Child(Attribute) }

// Mode is shorthand for Child(Mode).
func (s *Script) Mode() *Script { return s.Child(Mode) }

// Letter returns the primitive letter of a Primitive or layer-0 Null script,
// and 0 for every other script.
func (s *Script) Letter() byte {
	switch {
	case s.kind == Primitive:
		return s.char
	case s.kind == Null && s.layer == 0:
		return 'E'
	default:
		return 0
	}
}
