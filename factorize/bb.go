// SPDX-License-Identifier: MIT

// Package factorize: branch-and-bound exact partition of a sequence set.
//
// The engine picks a set of pairwise disjoint candidate boxes plus leftover
// sequences so that every sequence is covered exactly once, at minimum cost.
//
// Rationale:
//  1. Inputs are frozen before the search: per-element candidate lists and a
//     candidate compatibility bitset (disjoint covers) are precomputed once.
//  2. Seeding: a greedy pass (largest candidates first, each taken when it is
//     disjoint from the current cover) installs the incumbent upper bound.
//  3. Search: DFS on the uncovered element with the fewest live candidates.
//     Children are tried by most remaining compatible candidates, then size,
//     then index; the branch leaving the pivot alone (cost 1) is always last.
//  4. Bound: LB = cost + ceil(uncovered / maxSize). Every further member costs
//     at least 1 and covers at most maxSize elements, so LB ≤ OPT.
//     Prune whenever LB ≥ UB.
//  5. Budget: MaxNodes caps the number of visited nodes; once reached, the
//     incumbent is returned. The result is still an exact cover.
//
// Complexity:
//   - Worst case exponential in the number of candidates.
//   - Per node: O(n + k) to find the pivot and live candidates (k candidates).
//   - Memory: O(k²/64) for the compatibility bitsets + O(n) per recursion level.

package factorize

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// bbEngine holds the immutable inputs and the mutable incumbent of one
// exact-cover search.
type bbEngine struct {
	n       int
	cands   []*box
	byElem  [][]int          // element → candidates covering it, candidate order
	compat  []*bitset.BitSet // candidate → disjoint candidates
	maxSize int

	maxNodes int
	nodes    int

	bestCost int
	bestPick []int
	pick     []int
}

func newEngine(n int, cands []*box, maxNodes int) *bbEngine {
	e := &bbEngine{
		n:        n,
		cands:    cands,
		byElem:   make([][]int, n),
		compat:   make([]*bitset.BitSet, len(cands)),
		maxSize:  1,
		maxNodes: maxNodes,
	}
	for i, c := range cands {
		for id, ok := c.cover.NextSet(0); ok; id, ok = c.cover.NextSet(id + 1) {
			e.byElem[id] = append(e.byElem[id], i)
		}
		if c.size > e.maxSize {
			e.maxSize = c.size
		}
		e.compat[i] = bitset.New(uint(len(cands)))
	}
	for i := range cands {
		for j := i + 1; j < len(cands); j++ {
			if cands[i].cover.IntersectionCardinality(cands[j].cover) == 0 {
				e.compat[i].Set(uint(j))
				e.compat[j].Set(uint(i))
			}
		}
	}

	return e
}

// seed installs a greedy incumbent: candidates in order, each taken when it
// is disjoint from what is already covered; the rest are left uncovered.
func (e *bbEngine) seed() {
	covered := bitset.New(uint(e.n))
	cost := 0
	var pick []int
	for i, c := range e.cands {
		if covered.IntersectionCardinality(c.cover) != 0 {
			continue
		}
		covered.InPlaceUnion(c.cover)
		cost += c.cost
		pick = append(pick, i)
	}
	e.bestCost = cost + e.n - int(covered.Count())
	e.bestPick = pick
}

// lowerBound is admissible: every remaining member costs at least 1 and
// covers at most maxSize elements.
func (e *bbEngine) lowerBound(cost, uncovered int) int {
	return cost + (uncovered+e.maxSize-1)/e.maxSize
}

func (e *bbEngine) run() {
	e.seed()
	e.dfs(bitset.New(uint(e.n)), 0)
}

func (e *bbEngine) dfs(covered *bitset.BitSet, cost int) {
	if e.maxNodes > 0 && e.nodes >= e.maxNodes {
		return
	}
	e.nodes++

	uncovered := e.n - int(covered.Count())
	if uncovered == 0 {
		if cost < e.bestCost {
			e.bestCost = cost
			e.bestPick = slices.Clone(e.pick)
		}

		return
	}
	if e.lowerBound(cost, uncovered) >= e.bestCost {
		return
	}

	alive := bitset.New(uint(len(e.cands)))
	for i, c := range e.cands {
		if covered.IntersectionCardinality(c.cover) == 0 {
			alive.Set(uint(i))
		}
	}

	// branch on the uncovered element with the fewest live candidates
	pivot, options := -1, []int(nil)
	for id := range e.n {
		if covered.Test(uint(id)) {
			continue
		}
		var live []int
		for _, ci := range e.byElem[id] {
			if alive.Test(uint(ci)) {
				live = append(live, ci)
			}
		}
		if pivot < 0 || len(live) < len(options) {
			pivot, options = id, live
		}
		if len(options) == 0 {
			break
		}
	}

	score := make(map[int]uint, len(options))
	for _, ci := range options {
		score[ci] = e.compat[ci].IntersectionCardinality(alive)
	}
	slices.SortStableFunc(options, func(a, b int) int {
		if score[a] != score[b] {
			if score[a] > score[b] {
				return -1
			}

			return 1
		}
		if e.cands[a].size != e.cands[b].size {
			return e.cands[b].size - e.cands[a].size
		}

		return a - b
	})

	for _, ci := range options {
		next := covered.Union(e.cands[ci].cover)
		e.pick = append(e.pick, ci)
		e.dfs(next, cost+e.cands[ci].cost)
		e.pick = e.pick[:len(e.pick)-1]
	}

	next := covered.Clone()
	next.Set(uint(pivot))
	e.dfs(next, cost+1)
}
