package factorize

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"

	"github.com/katalvlaran/ieml/script"
)

// Factorizer computes minimal factorizations and caches results keyed by the
// sorted input set.
type Factorizer struct {
	opts  Options
	cache *lru.Cache[string, Result]
}

var defaultFactorizer = New()

// New returns a Factorizer configured by opts.
func New(opts ...Option) *Factorizer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Factorizer{opts: o}
	if o.CacheSize > 0 {
		f.cache, _ = lru.New[string, Result](o.CacheSize)
	}

	return f
}

// Factorize returns a script whose expansion equals seqs, using a shared
// default Factorizer.
func Factorize(seqs []*script.Script) (*script.Script, error) {
	return defaultFactorizer.Factorize(seqs)
}

// Factorize returns a script whose expansion equals seqs as a set.
func (f *Factorizer) Factorize(seqs []*script.Script) (*script.Script, error) {
	r, err := f.FactorizeCost(seqs)
	if err != nil {
		return nil, err
	}

	return r.Script, nil
}

// FactorizeCost is Factorize that also reports the cost of the result.
func (f *Factorizer) FactorizeCost(seqs []*script.Script) (Result, error) {
	if len(seqs) == 0 {
		return Result{}, ErrEmpty
	}
	layer := -1
	for i, s := range seqs {
		if s == nil || !s.IsSingular() {
			return Result{}, fmt.Errorf("%w: index %d", ErrNotSingular, i)
		}
		if layer < 0 {
			layer = s.Layer()
		} else if s.Layer() != layer {
			return Result{}, fmt.Errorf("%w: layer %d and %d", ErrMixedLayers, layer, s.Layer())
		}
	}

	set := lo.UniqBy(seqs, func(s *script.Script) string { return s.String() })
	script.Sort(set)

	return f.solve(set), nil
}

// solve factorizes a sorted, de-duplicated, same-layer set of singular
// sequences.
func (f *Factorizer) solve(set []*script.Script) Result {
	if len(set) == 1 {
		return Result{Script: set[0]}
	}
	if set[0].Layer() == 0 {
		return Result{Script: script.Must(script.NewAdditive(set...))}
	}

	key := cacheKey(set)
	if f.cache != nil {
		if r, ok := f.cache.Get(key); ok {
			return r
		}
	}

	r := f.search(set)
	if f.cache != nil {
		f.cache.Add(key, r)
	}

	return r
}

func (f *Factorizer) search(set []*script.Script) Result {
	sp := newSpace(set)
	cands := candidates(sp, defaultMaxCandidates)
	for _, c := range cands {
		var children [3]*script.Script
		c.cost = 1
		for p, ax := range c.axes {
			vals := lo.Map(ax, func(id int, _ int) *script.Script { return sp.vals[p][id] })
			sub := f.solve(vals)
			children[p] = sub.Script
			if len(vals) > 1 {
				c.cost += sub.Cost
			}
		}
		c.term = script.Must(script.NewMultiplicative(children[0], children[1], children[2]))
	}

	e := newEngine(len(set), cands, f.opts.MaxNodes)
	e.run()

	covered := make([]bool, len(set))
	members := make([]*script.Script, 0, len(e.bestPick))
	for _, ci := range e.bestPick {
		c := cands[ci]
		members = append(members, c.term)
		for id, ok := c.cover.NextSet(0); ok; id, ok = c.cover.NextSet(id + 1) {
			covered[id] = true
		}
	}
	for id, s := range set {
		if !covered[id] {
			members = append(members, s)
		}
	}
	if len(members) == 1 {
		return Result{Script: members[0], Cost: e.bestCost}
	}

	return Result{Script: script.Must(script.NewAdditive(members...)), Cost: e.bestCost}
}

func cacheKey(set []*script.Script) string {
	return strings.Join(lo.Map(set, func(s *script.Script, _ int) string { return s.String() }), " ")
}
