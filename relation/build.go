package relation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ieml/dictionary"
	"github.com/katalvlaran/ieml/matrix"
	"github.com/katalvlaran/ieml/script"
)

// builder carries the state of one snapshot computation.
type builder struct {
	snap  *Snapshot
	dict  *dictionary.Dictionary
	cover *matrix.Bits // term index → indices of its singular sequences
}

// build computes every relation over the closure of roots.
func build(ctx context.Context, roots []Root, o Options) (*Snapshot, error) {
	scripts := make([]*script.Script, len(roots))
	for i, r := range roots {
		scripts[i] = r.Script
	}
	dict, err := dictionary.New(scripts, dictionary.WithBuilder(o.Builder))
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("dictionary built", "roots", len(roots), "terms", dict.Len())

	n := dict.Len()
	snap := &Snapshot{
		dict:        dict,
		builder:     o.Builder,
		siblings:    make(map[Kind]*matrix.Bits, 4),
		inhibitions: make(map[int][]Kind),
	}
	b := &builder{snap: snap, dict: dict}
	if b.cover, err = matrix.NewBits(n); err != nil {
		return nil, err
	}
	if snap.contains, err = matrix.NewBits(n); err != nil {
		return nil, err
	}
	for _, k := range []Kind{Opposed, Associated, Crossed, Twin} {
		if snap.siblings[k], err = matrix.NewBits(n); err != nil {
			return nil, err
		}
	}
	for p := range snap.father {
		if snap.father[p], err = matrix.NewSparse(n); err != nil {
			return nil, err
		}
	}
	if snap.ranks, err = matrix.NewSparse(n); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if o.Parallelism > 0 {
		g.SetLimit(o.Parallelism)
	}
	for _, ri := range dict.RootIndices() {
		root, _ := dict.At(ri)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := b.rootPass(root); err != nil {
				return fmt.Errorf("root %s: %w", root, err)
			}
			o.Logger.Debug("root relations computed", "root", root.String())

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.contained = snap.contains.Transpose()
	for p := range snap.father {
		snap.child[p] = snap.father[p].Transpose()
	}

	for _, r := range roots {
		if len(r.Inhibitions) == 0 {
			continue
		}
		ri, _ := dict.Index(r.Script)
		snap.inhibitions[ri] = append([]Kind(nil), r.Inhibitions...)
		members, err := dict.MemberIndices(r.Script)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			for _, k := range r.Inhibitions {
				if err := snap.clear(m, k); err != nil {
					return nil, err
				}
			}
		}
	}

	return snap, nil
}

// rootPass computes every relation row owned by the members of root.
func (b *builder) rootPass(root *script.Script) error {
	members, err := b.dict.MemberIndices(root)
	if err != nil {
		return err
	}
	terms := make([]*script.Script, len(members))
	for k, i := range members {
		terms[k], _ = b.dict.At(i)
	}
	if err := b.containment(members, terms); err != nil {
		return err
	}
	for k, i := range members {
		if err := b.ancestry(i, terms[k]); err != nil {
			return err
		}
	}
	if err := b.siblings(root, members, terms); err != nil {
		return err
	}

	return b.tableRanks(root, members, terms)
}

// containment fills cover rows and contains rows. b ⊆ a iff the singular
// indices of b are a subset of those of a; the diagonal is always set.
func (b *builder) containment(members []int, terms []*script.Script) error {
	for k, i := range members {
		for _, seq := range terms[k].Expand() {
			j, err := b.dict.Index(seq)
			if err != nil {
				return err
			}
			if err := b.cover.Set(i, j); err != nil {
				return err
			}
		}
	}
	for _, i := range members {
		for _, j := range members {
			ok, err := b.cover.Includes(i, j)
			if err != nil {
				return err
			}
			if ok {
				if err := b.snap.contains.Set(i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// ancestry walks the multiplicative children of s while they are members,
// weighting the member found at depth d by 1/d².
func (b *builder) ancestry(i int, s *script.Script) error {
	if s.Kind() != script.Multiplicative {
		return nil
	}
	for _, p := range script.Positions {
		if err := b.walk(i, p, s.Child(p), 1); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) walk(i int, p script.Position, c *script.Script, depth int) error {
	if c.IsNull() {
		return nil
	}
	j, ok := b.dict.Lookup(c)
	if !ok {
		return nil
	}
	if err := b.snap.father[p].SetMax(i, j, 1/float64(depth*depth)); err != nil {
		return err
	}
	if c.Kind() != script.Multiplicative {
		return nil
	}
	for _, q := range script.Positions {
		if err := b.walk(i, p, c.Child(q), depth+1); err != nil {
			return err
		}
	}

	return nil
}

// opposite swaps substance and attribute.
func opposite(s *script.Script) (*script.Script, error) {
	if s == nil || s.Kind() != script.Multiplicative {
		return nil, ErrNoRemarkableSibling
	}

	return script.NewMultiplicative(s.Attribute(), s.Substance(), s.Mode())
}

// siblings fills the opposed, associated, crossed and twin rows of the
// multiplicative non-root members of root.
func (b *builder) siblings(root *script.Script, members []int, terms []*script.Script) error {
	type cand struct {
		i int
		s *script.Script
	}
	local := make(map[string]cand)
	byPair := make(map[string][]cand) // substance|attribute → candidates
	twins := make(map[[2]int][]int)   // (layer, cardinal) → indices
	var cands []cand
	for k, i := range members {
		s := terms[k]
		if s.Kind() != script.Multiplicative || s.Equal(root) {
			continue
		}
		c := cand{i: i, s: s}
		cands = append(cands, c)
		local[s.String()] = c
		key := s.Substance().String() + "|" + s.Attribute().String()
		byPair[key] = append(byPair[key], c)
		if !s.Substance().IsNull() && s.Substance().Equal(s.Attribute()) {
			tk := [2]int{s.Layer(), s.Cardinal()}
			twins[tk] = append(twins[tk], i)
		}
	}

	link := func(k Kind, i, j int) error {
		if err := b.snap.siblings[k].Set(i, j); err != nil {
			return err
		}

		return b.snap.siblings[k].Set(j, i)
	}

	for _, a := range cands {
		if o, err := opposite(a.s); err == nil {
			if c, ok := local[o.String()]; ok && c.i != a.i {
				if err := link(Opposed, a.i, c.i); err != nil {
					return err
				}
			}
		}

		key := a.s.Substance().String() + "|" + a.s.Attribute().String()
		for _, c := range byPair[key] {
			if c.i != a.i && c.s.Cardinal() == a.s.Cardinal() && !c.s.Mode().Equal(a.s.Mode()) {
				if err := link(Associated, a.i, c.i); err != nil {
					return err
				}
			}
		}

		if a.s.Layer() < 2 {
			continue
		}
		so, err := opposite(a.s.Substance())
		if err != nil {
			continue
		}
		ao, err := opposite(a.s.Attribute())
		if err != nil {
			continue
		}
		for _, c := range byPair[so.String()+"|"+ao.String()] {
			if c.i != a.i && c.s.Cardinal() == a.s.Cardinal() {
				if err := link(Crossed, a.i, c.i); err != nil {
					return err
				}
			}
		}
	}

	for _, clique := range twins {
		for _, i := range clique {
			for _, j := range clique {
				if err := b.snap.siblings[Twin].Set(i, j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// tableRanks records, for every pair of members, the highest rank of a
// paradigm of root containing both.
func (b *builder) tableRanks(root *script.Script, members []int, terms []*script.Script) error {
	for k, i := range members {
		p := terms[k]
		if !p.IsParadigm() {
			continue
		}
		rank, err := b.snap.builder.Rank(p, root)
		if err != nil {
			return fmt.Errorf("rank %s: %w", p, err)
		}
		inside, err := b.snap.contains.Row(i)
		if err != nil {
			return err
		}
		for _, x := range inside {
			for _, y := range inside {
				if x == y {
					continue
				}
				if err := b.snap.ranks.SetMax(x, y, float64(rank)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
