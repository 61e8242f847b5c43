package factorize

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/ieml/script"
)

// space indexes a set of same-layer singular sequences by their three
// coordinates.
type space struct {
	seqs   []*script.Script
	vals   [3][]*script.Script // distinct child values per axis, script order
	coords [][3]int            // per sequence, value ids per axis
	index  map[[3]int]int      // coordinates → sequence id
}

func newSpace(seqs []*script.Script) *space {
	sp := &space{
		seqs:   seqs,
		coords: make([][3]int, len(seqs)),
		index:  make(map[[3]int]int, len(seqs)),
	}
	for _, p := range script.Positions {
		ids := make(map[string]int)
		var vals []*script.Script
		for _, s := range seqs {
			c := s.Child(p)
			if _, ok := ids[c.String()]; !ok {
				ids[c.String()] = len(vals)
				vals = append(vals, c)
			}
		}
		script.Sort(vals)
		for i, v := range vals {
			ids[v.String()] = i
		}
		sp.vals[p] = vals
		for i, s := range seqs {
			sp.coords[i][p] = ids[s.Child(p).String()]
		}
	}
	for i, c := range sp.coords {
		sp.index[c] = i
	}

	return sp
}

// box is a candidate product A₀×A₁×A₂ of value ids fully contained in the set.
type box struct {
	axes  [3][]int
	cover *bitset.BitSet
	size  int
	key   string

	term *script.Script
	cost int
}

func boxKey(axes [3][]int) string {
	var sb strings.Builder
	for p, ax := range axes {
		if p > 0 {
			sb.WriteByte('|')
		}
		for i, v := range ax {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return sb.String()
}

// pairKey identifies a box by the two axes other than skip.
func pairKey(axes [3][]int, skip int) string {
	var other [3][]int
	for p := range axes {
		if p != skip {
			other[p] = axes[p]
		}
	}

	return strconv.Itoa(skip) + "#" + boxKey(other)
}

// pool accumulates distinct valid boxes in insertion order.
type pool struct {
	sp    *space
	boxes []*box
	seen  map[string]bool
	limit int
}

// add registers axes as a candidate if it spans at least two sequences, lies
// inside the set and is new. It reports whether a box was added.
func (pl *pool) add(axes [3][]int) bool {
	if len(pl.boxes) >= pl.limit {
		return false
	}
	size := len(axes[0]) * len(axes[1]) * len(axes[2])
	if size < 2 {
		return false
	}
	key := boxKey(axes)
	if pl.seen[key] {
		return false
	}
	cover := bitset.New(uint(len(pl.sp.seqs)))
	for _, a := range axes[0] {
		for _, b := range axes[1] {
			for _, c := range axes[2] {
				id, ok := pl.sp.index[[3]int{a, b, c}]
				if !ok {
					return false
				}
				cover.Set(uint(id))
			}
		}
	}
	pl.seen[key] = true
	pl.boxes = append(pl.boxes, &box{axes: axes, cover: cover, size: size, key: key})

	return true
}

// candidates generates cubes, merges them to a fixpoint, then applies one
// restriction pass. The returned boxes are ordered by size descending, key
// ascending.
func candidates(sp *space, limit int) []*box {
	pl := &pool{sp: sp, seen: make(map[string]bool), limit: limit}

	// cubes
	for p := range 3 {
		type group struct {
			anchor int
			vals   []int
		}
		groups := make(map[string]*group)
		var order []string
		for i, c := range sp.coords {
			k := pairKey(point(c), p)
			g, ok := groups[k]
			if !ok {
				g = &group{anchor: i}
				groups[k] = g
				order = append(order, k)
			}
			g.vals = append(g.vals, c[p])
		}
		slices.Sort(order)
		for _, k := range order {
			g := groups[k]
			if len(g.vals) < 2 {
				continue
			}
			axes := point(sp.coords[g.anchor])
			axes[p] = sortedUnique(g.vals)
			pl.add(axes)
		}
	}

	// merges
	for changed := true; changed; {
		changed = false
		for p := range 3 {
			groups := make(map[string][]*box)
			var order []string
			for _, b := range pl.boxes {
				k := pairKey(b.axes, p)
				if _, ok := groups[k]; !ok {
					order = append(order, k)
				}
				groups[k] = append(groups[k], b)
			}
			slices.Sort(order)
			for _, k := range order {
				g := groups[k]
				if len(g) < 2 {
					continue
				}
				var union []int
				for _, b := range g {
					union = append(union, b.axes[p]...)
				}
				axes := g[0].axes
				axes[p] = sortedUnique(union)
				if pl.add(axes) {
					changed = true
				}
			}
		}
	}

	// restrictions
	base := slices.Clone(pl.boxes)
	for _, a := range base {
		for _, b := range base {
			if a == b || a.cover.IntersectionCardinality(b.cover) == 0 {
				continue
			}
			for p := range 3 {
				if len(a.axes[p]) < 2 {
					continue
				}
				rest := minus(a.axes[p], b.axes[p])
				if len(rest) == 0 || len(rest) == len(a.axes[p]) {
					continue
				}
				axes := a.axes
				axes[p] = rest
				pl.add(axes)
			}
		}
	}

	slices.SortFunc(pl.boxes, func(x, y *box) int {
		if x.size != y.size {
			return y.size - x.size
		}

		return strings.Compare(x.key, y.key)
	})

	return pl.boxes
}

// point returns the one-element axes of a single coordinate.
func point(c [3]int) [3][]int {
	return [3][]int{{c[0]}, {c[1]}, {c[2]}}
}

func sortedUnique(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)

	return slices.Compact(out)
}

// minus returns the elements of a (sorted) not present in b (sorted).
func minus(a, b []int) []int {
	var out []int
	for _, v := range a {
		if _, found := slices.BinarySearch(b, v); !found {
			out = append(out, v)
		}
	}

	return out
}
