package relation

import (
	"fmt"

	"github.com/katalvlaran/ieml/dictionary"
	"github.com/katalvlaran/ieml/matrix"
	"github.com/katalvlaran/ieml/script"
	"github.com/katalvlaran/ieml/table"
)

// Snapshot is one immutable set of relation matrices over one dictionary.
type Snapshot struct {
	dict    *dictionary.Dictionary
	builder *table.Builder

	contains  *matrix.Bits
	contained *matrix.Bits
	father    [3]*matrix.Sparse
	child     [3]*matrix.Sparse
	siblings  map[Kind]*matrix.Bits // Opposed, Associated, Crossed, Twin
	ranks     *matrix.Sparse        // symmetric, values 1..5

	inhibitions map[int][]Kind // root index → suppressed kinds
}

// Dictionary returns the universe the snapshot was built on.
func (s *Snapshot) Dictionary() *dictionary.Dictionary { return s.dict }

// Relations returns the members related to x by kind, in index order.
func (s *Snapshot) Relations(x *script.Script, kind Kind) ([]*script.Script, error) {
	i, err := s.dict.Index(x)
	if err != nil {
		return nil, err
	}
	cols, err := s.row(i, kind)
	if err != nil {
		return nil, err
	}
	out := make([]*script.Script, len(cols))
	for k, j := range cols {
		out[k], _ = s.dict.At(j)
	}

	return out, nil
}

// Has reports whether (a, b) is in relation kind.
func (s *Snapshot) Has(a, b *script.Script, kind Kind) (bool, error) {
	w, err := s.Weight(a, b, kind)

	return w != 0, err
}

// Weight returns the value of (a, b) in relation kind: the depth weight for
// father and child kinds, 1 or 0 otherwise.
func (s *Snapshot) Weight(a, b *script.Script, kind Kind) (float64, error) {
	i, err := s.dict.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := s.dict.Index(b)
	if err != nil {
		return 0, err
	}
	switch {
	case !kind.Valid():
		return 0, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	case kind.IsFather():
		p, _ := kind.Position()
		return s.father[p].At(i, j)
	case kind.IsChild():
		p, _ := kind.Position()
		return s.child[p].At(i, j)
	case kind.IsTable():
		r, _ := kind.Rank()
		v, err := s.ranks.At(i, j)
		if err != nil || int(v) != r {
			return 0, err
		}
		return 1, nil
	default:
		ok, err := s.bits(kind).Test(i, j)
		if ok {
			return 1, err
		}
		return 0, err
	}
}

// PairRank returns the highest rank of a paradigm of their root holding both
// a and b, or 0 when they share no root. Inhibited table kinds read as 0.
func (s *Snapshot) PairRank(a, b *script.Script) (int, error) {
	i, err := s.dict.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := s.dict.Index(b)
	if err != nil {
		return 0, err
	}
	v, err := s.ranks.At(i, j)

	return int(v), err
}

// TableRank ranks paradigm p against the tables of its own root.
func (s *Snapshot) TableRank(p *script.Script) (int, error) {
	root, err := s.dict.RootOf(p)
	if err != nil {
		return 0, err
	}

	return s.builder.Rank(p, root)
}

// Tables returns the tables of a paradigm member.
func (s *Snapshot) Tables(p *script.Script) ([]*table.Table, error) {
	if !s.dict.Has(p) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}

	return s.builder.Build(p)
}

// Inhibitions returns the kinds suppressed on the members of root.
func (s *Snapshot) Inhibitions(root *script.Script) ([]Kind, error) {
	i, err := s.dict.Index(root)
	if err != nil {
		return nil, err
	}
	if !s.dict.IsRoot(root) {
		return nil, fmt.Errorf("%s: %w", root, ErrNotARootParadigm)
	}

	return append([]Kind(nil), s.inhibitions[i]...), nil
}

func (s *Snapshot) bits(kind Kind) *matrix.Bits {
	switch kind {
	case Contains:
		return s.contains
	case Contained:
		return s.contained
	default:
		return s.siblings[kind]
	}
}

// row returns the related column indices of row i, ascending.
func (s *Snapshot) row(i int, kind Kind) ([]int, error) {
	switch {
	case !kind.Valid():
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	case kind.IsFather():
		p, _ := kind.Position()
		return s.father[p].Row(i)
	case kind.IsChild():
		p, _ := kind.Position()
		return s.child[p].Row(i)
	case kind.IsTable():
		r, _ := kind.Rank()
		cols, err := s.ranks.Row(i)
		if err != nil {
			return nil, err
		}
		out := cols[:0]
		for _, j := range cols {
			if v, _ := s.ranks.At(i, j); int(v) == r {
				out = append(out, j)
			}
		}
		return out, nil
	default:
		return s.bits(kind).Row(i)
	}
}

// clear removes kind from row i.
func (s *Snapshot) clear(i int, kind Kind) error {
	switch {
	case kind.IsFather():
		p, _ := kind.Position()
		return s.father[p].ClearRow(i)
	case kind.IsChild():
		p, _ := kind.Position()
		return s.child[p].ClearRow(i)
	case kind.IsTable():
		r, _ := kind.Rank()
		return s.ranks.ClearRowValue(i, float64(r))
	case kind.Valid():
		return s.bits(kind).ClearRow(i)
	default:
		return fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
}
