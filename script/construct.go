package script

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// nulls holds the unique Null script of every layer.
var nulls = func() [MaxLayer + 1]*Script {
	var out [MaxLayer + 1]*Script
	text := "E"
	for l := 0; l <= MaxLayer; l++ {
		text += layerMarks[l]
		canon := make([]byte, canonicalLen(l))
		for i := range canon {
			canon[i] = bitE
		}
		out[l] = &Script{
			kind:      Null,
			layer:     l,
			cardinal:  1,
			canonical: canon,
			class:     Auxiliary,
			text:      text,
		}
	}

	return out
}()

// primitives holds the five non-empty layer-0 letters.
var primitives = func() map[byte]*Script {
	out := make(map[byte]*Script, 5)
	for _, c := range primitiveLetters[1:] {
		out[c] = &Script{
			kind:      Primitive,
			layer:     0,
			char:      c,
			cardinal:  1,
			canonical: []byte{letterBits[c]},
			class:     letterClasses[c],
			text:      string(c) + layerMarks[0],
		}
	}

	return out
}()

// NewNull returns the Null script of the given layer, or nil when the layer
// is outside [0, MaxLayer].
func NewNull(layer int) *Script {
	if layer < 0 || layer > MaxLayer {
		return nil
	}

	return nulls[layer]
}

// NewLetter returns the layer-0 script spelled by c: E (Null), U A S B T
// (primitives) or the shorthand unions O M F I.
func NewLetter(c byte) (*Script, error) {
	if c == 'E' {
		return nulls[0], nil
	}
	if p, ok := primitives[c]; ok {
		return p, nil
	}
	mask, ok := remarkableAdditions[c]
	if !ok {
		return nil, fmt.Errorf("letter %q: %w", c, ErrUnknownSymbol)
	}
	members := make([]*Script, 0, 6)
	for _, l := range primitiveLetters {
		if mask&letterBits[l] != 0 {
			m, _ := NewLetter(l)
			members = append(members, m)
		}
	}

	return NewAdditive(members...)
}

// NewMultiplicative builds substance × attribute × mode. A nil attribute or
// mode stands for the Null of the substance's layer. Three Null children
// collapse into the Null of the next layer.
func NewMultiplicative(substance, attribute, mode *Script) (*Script, error) {
	if substance == nil {
		return nil, fmt.Errorf("multiplication without substance: %w", ErrInvalidStructure)
	}
	layer := substance.layer
	if layer+1 > MaxLayer {
		return nil, fmt.Errorf("multiplication above layer %d: %w", MaxLayer, ErrInvalidStructure)
	}
	if attribute == nil {
		attribute = nulls[layer]
	}
	if mode == nil {
		mode = nulls[layer]
	}
	children := []*Script{substance, attribute, mode}
	for i, c := range children {
		if c.layer != layer {
			return nil, fmt.Errorf("%s %s has layer %d, substance has %d: %w",
				Positions[i], c, c.layer, layer, ErrInvalidStructure)
		}
	}
	if substance.kind == Null && attribute.kind == Null && mode.kind == Null {
		return nulls[layer+1], nil
	}

	card := 1
	canon := make([]byte, 0, 3*len(substance.canonical))
	for _, c := range children {
		if card > math.MaxInt/c.cardinal {
			return nil, fmt.Errorf("cardinal overflow: %w", ErrInvalidStructure)
		}
		card *= c.cardinal
		canon = append(canon, c.canonical...)
	}

	s := &Script{
		kind:      Multiplicative,
		layer:     layer + 1,
		children:  children,
		cardinal:  card,
		canonical: canon,
		class:     substance.class,
	}
	s.text = multiplicativeText(s)

	return s, nil
}

// NewAdditive builds the union of children. Identical arguments are dropped,
// nested unions flattened and members sorted; a single remaining member is
// returned as is. Members must share a layer and denote disjoint sets, so an
// argument that repeats part of another argument is rejected.
func NewAdditive(children ...*Script) (*Script, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("empty addition: %w", ErrInvalidStructure)
	}
	if slices.Contains(children, nil) {
		return nil, fmt.Errorf("nil addition member: %w", ErrInvalidStructure)
	}
	args := slices.Clone(children)
	slices.SortFunc(args, Compare)
	args = slices.CompactFunc(args, Equal)
	if len(args) == 1 {
		return args[0], nil
	}

	flat := make([]*Script, 0, len(args))
	for _, c := range args {
		if c.kind == Additive {
			flat = append(flat, c.children...)
		} else {
			flat = append(flat, c)
		}
	}
	layer := flat[0].layer
	for _, c := range flat[1:] {
		if c.layer != layer {
			return nil, fmt.Errorf("addition mixes layers %d and %d (%s): %w",
				layer, c.layer, c, ErrInvalidStructure)
		}
	}
	slices.SortFunc(flat, Compare)
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if overlaps(flat[i], flat[j]) {
				return nil, fmt.Errorf("addition members %s and %s overlap: %w",
					flat[i], flat[j], ErrInvalidStructure)
			}
		}
	}

	card := 0
	canon := make([]byte, len(flat[0].canonical))
	class := Auxiliary
	for _, c := range flat {
		if card > math.MaxInt-c.cardinal {
			return nil, fmt.Errorf("cardinal overflow: %w", ErrInvalidStructure)
		}
		card += c.cardinal
		for i, b := range c.canonical {
			canon[i] |= b
		}
		if c.class > class {
			class = c.class
		}
	}

	s := &Script{
		kind:      Additive,
		layer:     layer,
		children:  flat,
		cardinal:  card,
		canonical: canon,
		class:     class,
	}
	s.text = additiveText(s)

	return s, nil
}

// Must panics when err is non-nil. It is meant for fixed tables and tests.
func Must(s *Script, err error) *Script {
	if err != nil {
		panic(err)
	}

	return s
}

// overlaps reports whether x and y share a singular sequence, without
// expanding either side.
func overlaps(x, y *Script) bool {
	if x.kind == Additive {
		for _, c := range x.children {
			if overlaps(c, y) {
				return true
			}
		}

		return false
	}
	if y.kind == Additive {
		return overlaps(y, x)
	}
	if x.layer == 0 {
		return x.canonical[0]&y.canonical[0] != 0
	}
	for _, p := range Positions {
		if !overlaps(x.Child(p), y.Child(p)) {
			return false
		}
	}

	return true
}

// Includes reports whether every singular sequence of o is also denoted by s.
// Both scripts must share a layer; otherwise Includes returns false.
func (s *Script) Includes(o *Script) bool {
	if s.layer != o.layer || o.cardinal > s.cardinal {
		return false
	}
	for _, seq := range o.Expand() {
		if !overlaps(seq, s) {
			return false
		}
	}

	return true
}

func multiplicativeText(s *Script) string {
	sub, attr, mode := s.children[0], s.children[1], s.children[2]
	if s.layer == 1 {
		if w, ok := shorthandOf(sub, attr, mode); ok {
			return w + layerMarks[1]
		}
	}
	last := 2
	for last > 0 && s.children[last].kind == Null {
		last--
	}
	var b strings.Builder
	for _, c := range s.children[:last+1] {
		if c.kind == Additive && strings.Contains(c.text, "+") {
			b.WriteByte('(')
			b.WriteString(c.text)
			b.WriteByte(')')
		} else {
			b.WriteString(c.text)
		}
	}
	b.WriteString(layerMarks[s.layer])

	return b.String()
}

func additiveText(s *Script) string {
	if s.layer == 0 {
		if c, ok := additionLetter(s.canonical[0]); ok {
			return string(c) + layerMarks[0]
		}
	}
	parts := make([]string, len(s.children))
	for i, c := range s.children {
		parts[i] = c.text
	}

	return strings.Join(parts, "+")
}
