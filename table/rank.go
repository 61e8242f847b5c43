package table

import (
	"fmt"

	"github.com/katalvlaran/ieml/script"
)

// Rank classifies paradigm p against the tables of root, on a 1..5 scale:
//
//	1  p is root, one of root's additive members, or a whole table of root.
//	2  p spans several tables of root, or several headers of one table.
//	3  p is exactly one header of one table of root.
//	4  p lies inside a single header h but does not map to one header of h's tables.
//	5  p lies inside a single header h and maps to one header of h's own tables.
//
// Rank looks at most two table levels deep; it is not a general recursion.
func (b *Builder) Rank(p, root *script.Script) (int, error) {
	if p == nil || !p.IsParadigm() {
		return 0, fmt.Errorf("rank %v: %w", p, ErrNotParadigm)
	}
	if root == nil || !root.IsParadigm() {
		return 0, fmt.Errorf("rank root %v: %w", root, ErrNotParadigm)
	}
	if p.Equal(root) {
		return 1, nil
	}
	if root.Kind() == script.Additive {
		for _, c := range root.Children() {
			if c.Equal(p) {
				return 1, nil
			}
		}
	}
	if !root.Includes(p) {
		return 0, fmt.Errorf("rank %s in %s: %w", p, root, ErrNotInRoot)
	}

	set := textSet(p)
	tables, err := b.Build(root)
	if err != nil {
		return 0, err
	}
	hits := intersecting(tables, set)
	if len(hits) != 1 {
		return 2, nil
	}
	t := hits[0]
	if t.paradigm.Equal(p) {
		return 1, nil
	}
	headers := t.coveringHeaders(p)
	if len(headers) != 1 {
		return 2, nil
	}
	h := headers[0]
	if h.Cardinal() == p.Cardinal() {
		return 3, nil
	}

	sub, err := b.Build(h)
	if err != nil {
		return 0, err
	}
	hits = intersecting(sub, set)
	if len(hits) == 1 && (hits[0].paradigm.Equal(p) || len(hits[0].coveringHeaders(p)) == 1) {
		return 5, nil
	}

	return 4, nil
}

func textSet(p *script.Script) map[string]struct{} {
	seqs := p.Expand()
	set := make(map[string]struct{}, len(seqs))
	for _, s := range seqs {
		set[s.String()] = struct{}{}
	}

	return set
}

func intersecting(tables []*Table, set map[string]struct{}) []*Table {
	var out []*Table
	for _, t := range tables {
		if t.intersects(set) {
			out = append(out, t)
		}
	}

	return out
}
