package dictionary

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ieml/script"
	"github.com/katalvlaran/ieml/table"
)

// Dictionary is one immutable universe snapshot.
type Dictionary struct {
	terms   []*script.Script
	index   map[string]int
	roots   []int         // root indices, in the order given to New
	rootOf  []int         // term index → index of its root
	members map[int][]int // root index → member indices, ascending
}

// New builds the dictionary spanned by roots.
//
// Errors:
//   - ErrNotARootParadigm if a root is nil or singular.
//   - ErrOverlappingRoots if two roots share a singular sequence.
//   - table errors from deriving headers.
func New(roots []*script.Script, opts ...Option) (*Dictionary, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Builder == nil {
		o.Builder = table.NewBuilder()
	}

	owner := make(map[string]int) // member text → position of its root in roots
	all := make(map[string]*script.Script)
	for ri, r := range roots {
		if r == nil || !r.IsParadigm() {
			return nil, fmt.Errorf("root %v: %w", r, ErrNotARootParadigm)
		}
		closure, err := closureOf(r, o.Builder)
		if err != nil {
			return nil, fmt.Errorf("root %s: %w", r, err)
		}
		for _, m := range closure {
			key := m.String()
			if prev, ok := owner[key]; ok && prev != ri {
				return nil, fmt.Errorf("%s belongs to %s and %s: %w",
					key, roots[prev], r, ErrOverlappingRoots)
			}
			owner[key] = ri
			all[key] = m
		}
	}

	d := &Dictionary{
		terms:   make([]*script.Script, 0, len(all)),
		index:   make(map[string]int, len(all)),
		members: make(map[int][]int, len(roots)),
	}
	for _, s := range all {
		d.terms = append(d.terms, s)
	}
	script.Sort(d.terms)
	for i, s := range d.terms {
		d.index[s.String()] = i
	}
	d.rootOf = make([]int, len(d.terms))
	for _, r := range roots {
		d.roots = append(d.roots, d.index[r.String()])
	}
	for i, s := range d.terms {
		ri := d.roots[owner[s.String()]]
		d.rootOf[i] = ri
		d.members[ri] = append(d.members[ri], i)
	}

	return d, nil
}

// closureOf collects the members spanned by root r.
func closureOf(r *script.Script, b *table.Builder) ([]*script.Script, error) {
	seen := map[string]*script.Script{}
	queue := []*script.Script{r}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, ok := seen[p.String()]; ok {
			continue
		}
		seen[p.String()] = p
		if !p.IsParadigm() {
			continue
		}
		if p.Kind() == script.Additive {
			queue = append(queue, p.Children()...)
		}
		tables, err := b.Build(p)
		if err != nil {
			return nil, err
		}
		for _, t := range tables {
			queue = append(queue, t.Paradigm())
			for _, axis := range []table.Axis{table.Rows, table.Columns, table.Tabs} {
				for _, h := range t.Headers(axis) {
					if h.IsParadigm() {
						queue = append(queue, h)
					}
				}
			}
		}
	}
	for _, s := range r.Expand() {
		seen[s.String()] = s
	}
	out := make([]*script.Script, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	script.Sort(out)

	return out, nil
}

// Len returns the number of members.
func (d *Dictionary) Len() int { return len(d.terms) }

// At returns the member at index i.
func (d *Dictionary) At(i int) (*script.Script, error) {
	if i < 0 || i >= len(d.terms) {
		return nil, fmt.Errorf("index %d: %w", i, ErrNotFound)
	}

	return d.terms[i], nil
}

// Terms returns all members in index order.
func (d *Dictionary) Terms() []*script.Script { return slices.Clone(d.terms) }

// Index returns the index of s.
func (d *Dictionary) Index(s *script.Script) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("nil script: %w", ErrNotFound)
	}
	i, ok := d.index[s.String()]
	if !ok {
		return 0, fmt.Errorf("%s: %w", s, ErrNotFound)
	}

	return i, nil
}

// Lookup returns the index of s and whether it is a member.
func (d *Dictionary) Lookup(s *script.Script) (int, bool) {
	i, ok := d.index[s.String()]

	return i, ok
}

// Has reports whether s is a member.
func (d *Dictionary) Has(s *script.Script) bool {
	_, ok := d.index[s.String()]

	return ok
}

// Roots returns the root paradigms in the order they were given.
func (d *Dictionary) Roots() []*script.Script {
	out := make([]*script.Script, len(d.roots))
	for k, i := range d.roots {
		out[k] = d.terms[i]
	}

	return out
}

// RootIndices returns the indices of the roots in the order they were given.
func (d *Dictionary) RootIndices() []int { return slices.Clone(d.roots) }

// IsRoot reports whether s is one of the roots.
func (d *Dictionary) IsRoot(s *script.Script) bool {
	i, ok := d.index[s.String()]

	return ok && d.rootOf[i] == i
}

// RootOf returns the root paradigm s belongs to.
func (d *Dictionary) RootOf(s *script.Script) (*script.Script, error) {
	i, err := d.Index(s)
	if err != nil {
		return nil, err
	}

	return d.terms[d.rootOf[i]], nil
}

// RootIndexOf returns the index of the root owning member i.
func (d *Dictionary) RootIndexOf(i int) (int, error) {
	if i < 0 || i >= len(d.terms) {
		return 0, fmt.Errorf("index %d: %w", i, ErrNotFound)
	}

	return d.rootOf[i], nil
}

// Members returns the members of root, root included, in index order.
func (d *Dictionary) Members(root *script.Script) ([]*script.Script, error) {
	idx, err := d.MemberIndices(root)
	if err != nil {
		return nil, err
	}
	out := make([]*script.Script, len(idx))
	for k, i := range idx {
		out[k] = d.terms[i]
	}

	return out, nil
}

// MemberIndices is the index form of Members.
func (d *Dictionary) MemberIndices(root *script.Script) ([]int, error) {
	i, err := d.Index(root)
	if err != nil {
		return nil, err
	}
	if d.rootOf[i] != i {
		return nil, fmt.Errorf("%s: %w", root, ErrNotARootParadigm)
	}

	return slices.Clone(d.members[i]), nil
}
