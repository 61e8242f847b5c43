package relation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ieml/script"
)

// Kind names a relation.
type Kind uint8

// Relation kinds. Father and child kinds are weighted; the others are
// boolean. Table kinds share one rank matrix.
const (
	Contains Kind = iota
	Contained
	FatherSubstance
	FatherAttribute
	FatherMode
	ChildSubstance
	ChildAttribute
	ChildMode
	Opposed
	Associated
	Crossed
	Twin
	Table1
	Table2
	Table3
	Table4
	Table5

	kindCount
)

var kindNames = [kindCount]string{
	"contains",
	"contained",
	"father_substance",
	"father_attribute",
	"father_mode",
	"child_substance",
	"child_attribute",
	"child_mode",
	"opposed",
	"associated",
	"crossed",
	"twin",
	"table_1",
	"table_2",
	"table_3",
	"table_4",
	"table_5",
}

// kindGroups are accepted by ParseKinds as shorthands.
var kindGroups = map[string][]Kind{
	"father":   {FatherSubstance, FatherAttribute, FatherMode},
	"child":    {ChildSubstance, ChildAttribute, ChildMode},
	"siblings": {Opposed, Associated, Crossed, Twin},
	"table":    {Table1, Table2, Table3, Table4, Table5},
}

// Kinds lists every relation kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for k := range out {
		out[k] = Kind(k)
	}

	return out
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k < kindCount }

// IsFather reports whether k is one of the father kinds.
func (k Kind) IsFather() bool { return k >= FatherSubstance && k <= FatherMode }

// IsChild reports whether k is one of the child kinds.
func (k Kind) IsChild() bool { return k >= ChildSubstance && k <= ChildMode }

// IsTable reports whether k is one of the table kinds.
func (k Kind) IsTable() bool { return k >= Table1 && k <= Table5 }

// Position returns the script position a father or child kind goes through.
func (k Kind) Position() (script.Position, bool) {
	switch {
	case k.IsFather():
		return script.Position(k - FatherSubstance), true
	case k.IsChild():
		return script.Position(k - ChildSubstance), true
	default:
		return 0, false
	}
}

// Rank returns the table rank of a table kind.
func (k Kind) Rank() (int, bool) {
	if !k.IsTable() {
		return 0, false
	}

	return int(k-Table1) + 1, true
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// ParseKinds maps names to kinds, expanding the group names father, child,
// siblings and table. Duplicates are dropped; order follows first mention.
func ParseKinds(names []string) ([]Kind, error) {
	var (
		out  []Kind
		seen [kindCount]bool
	)
	add := func(k Kind) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, n := range names {
		if g, ok := kindGroups[strings.ToLower(strings.TrimSpace(n))]; ok {
			for _, k := range g {
				add(k)
			}
			continue
		}
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		add(k)
	}

	return out, nil
}
