package table

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/ieml/script"
)

// Builder derives tables and ranks. It is safe for concurrent use.
type Builder struct {
	cache *lru.Cache[string, []*Table]
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder{}
	if o.CacheSize > 0 {
		b.cache, _ = lru.New[string, []*Table](o.CacheSize)
	}

	return b
}

// Build returns the tables of paradigm s.
//
// Complexity: O(Cardinal) cells per table; results are cached by text.
func (b *Builder) Build(s *script.Script) ([]*Table, error) {
	if s == nil || !s.IsParadigm() {
		return nil, fmt.Errorf("build %v: %w", s, ErrNotTabulable)
	}
	key := s.String()
	if b.cache != nil {
		if ts, ok := b.cache.Get(key); ok {
			return append([]*Table(nil), ts...), nil
		}
	}
	ts, err := b.build(s)
	if err != nil {
		return nil, err
	}
	if b.cache != nil {
		b.cache.Add(key, ts)
	}

	return append([]*Table(nil), ts...), nil
}

func (b *Builder) build(s *script.Script) ([]*Table, error) {
	if s.Layer() == 0 {
		return []*Table{oneDim(s)}, nil
	}
	if s.Kind() == script.Additive {
		return b.buildAdditive(s)
	}

	var plural []script.Position
	for _, p := range script.Positions {
		if s.Child(p).IsParadigm() {
			plural = append(plural, p)
		}
	}
	switch len(plural) {
	case 3:
		return []*Table{threeDim(s)}, nil
	case 2:
		return []*Table{twoDim(s, plural[0], plural[1])}, nil
	case 1:
		child := s.Child(plural[0])
		if child.Layer() == 0 {
			return []*Table{oneDim(s)}, nil
		}
		sub, err := b.Build(child)
		if err != nil {
			return nil, err
		}
		out := make([]*Table, len(sub))
		for i, st := range sub {
			out[i] = distribute(s, plural[0], st)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("build %s: %w", s, ErrNotTabulable)
	}
}

// buildAdditive concatenates member tables; singular members share one 1D table.
func (b *Builder) buildAdditive(s *script.Script) ([]*Table, error) {
	var (
		out     []*Table
		singles []*script.Script
	)
	for _, c := range s.Children() {
		if !c.IsParadigm() {
			singles = append(singles, c)
			continue
		}
		ts, err := b.Build(c)
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	}
	if len(singles) > 0 {
		p, err := script.NewAdditive(singles...)
		if err != nil {
			return nil, err
		}
		out = append(out, oneDim(p))
	}

	return out, nil
}

// oneDim lists the expansion of p in a single row headed by p.
func oneDim(p *script.Script) *Table {
	cells := p.Expand()

	return &Table{
		paradigm: p,
		dim:      1,
		shape:    [3]int{1, len(cells), 1},
		headers:  [3][]*script.Script{{p}, nil, nil},
		cells:    cells,
	}
}

// twoDim varies position rp along rows and cp along columns.
func twoDim(s *script.Script, rp, cp script.Position) *Table {
	rv := s.Child(rp).Expand()
	cv := s.Child(cp).Expand()
	t := &Table{
		paradigm: s,
		dim:      2,
		shape:    [3]int{len(rv), len(cv), 1},
		cells:    make([]*script.Script, 0, len(rv)*len(cv)),
	}
	for _, r := range rv {
		t.headers[Rows] = append(t.headers[Rows], substitute(s, rp, r))
	}
	for _, c := range cv {
		t.headers[Columns] = append(t.headers[Columns], substitute(s, cp, c))
	}
	for _, r := range rv {
		for _, c := range cv {
			t.cells = append(t.cells, substitute(substitute(s, rp, r), cp, c))
		}
	}

	return t
}

// threeDim varies substance, attribute and mode along rows, columns and tabs.
func threeDim(s *script.Script) *Table {
	var values [3][]*script.Script
	for i, p := range script.Positions {
		values[i] = s.Child(p).Expand()
	}
	t := &Table{
		paradigm: s,
		dim:      3,
		shape:    [3]int{len(values[0]), len(values[1]), len(values[2])},
		cells:    make([]*script.Script, 0, s.Cardinal()),
	}
	for i, p := range script.Positions {
		for _, v := range values[i] {
			t.headers[i] = append(t.headers[i], substitute(s, p, v))
		}
	}
	for _, a := range values[0] {
		for _, b := range values[1] {
			for _, c := range values[2] {
				t.cells = append(t.cells, script.Must(script.NewMultiplicative(a, b, c)))
			}
		}
	}

	return t
}

// distribute re-composes every header and cell of st into position p of s.
func distribute(s *script.Script, p script.Position, st *Table) *Table {
	wrap := func(x *script.Script) *script.Script { return substitute(s, p, x) }
	t := &Table{
		paradigm: wrap(st.paradigm),
		dim:      st.dim,
		shape:    st.shape,
		cells:    make([]*script.Script, len(st.cells)),
	}
	for a, hs := range st.headers {
		if hs == nil {
			continue
		}
		t.headers[a] = make([]*script.Script, len(hs))
		for i, h := range hs {
			t.headers[a][i] = wrap(h)
		}
	}
	for i, c := range st.cells {
		t.cells[i] = wrap(c)
	}

	return t
}

// substitute returns s with the child at p replaced by v.
func substitute(s *script.Script, p script.Position, v *script.Script) *script.Script {
	children := [3]*script.Script{s.Substance(), s.Attribute(), s.Mode()}
	children[p] = v

	return script.Must(script.NewMultiplicative(children[0], children[1], children[2]))
}
