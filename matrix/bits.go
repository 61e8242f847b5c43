// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/bits-and-blooms/bitset"
)

// Bits is an n×n boolean relation stored as one bitset per row.
type Bits struct {
	n    int
	rows []*bitset.BitSet
}

// NewBits creates an empty n×n boolean relation.
// Complexity: O(n) allocations, O(n²/64) words once rows fill up.
func NewBits(n int) (*Bits, error) {
	if n < 0 {
		return nil, ErrBadShape
	}
	rows := make([]*bitset.BitSet, n)
	for i := range rows {
		rows[i] = bitset.New(uint(n))
	}

	return &Bits{n: n, rows: rows}, nil
}

// Size returns n.
func (b *Bits) Size() int { return b.n }

func (b *Bits) check(method string, i, j int) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return indexErrorf(method, i, j)
	}

	return nil
}

// Set marks (i, j).
func (b *Bits) Set(i, j int) error {
	if err := b.check("Bits.Set", i, j); err != nil {
		return err
	}
	b.rows[i].Set(uint(j))

	return nil
}

// Clear unmarks (i, j).
func (b *Bits) Clear(i, j int) error {
	if err := b.check("Bits.Clear", i, j); err != nil {
		return err
	}
	b.rows[i].Clear(uint(j))

	return nil
}

// Test reports whether (i, j) is marked.
func (b *Bits) Test(i, j int) (bool, error) {
	if err := b.check("Bits.Test", i, j); err != nil {
		return false, err
	}

	return b.rows[i].Test(uint(j)), nil
}

// Row returns the marked columns of row i in ascending order.
// Complexity: O(n/64 + k) for k marked columns.
func (b *Bits) Row(i int) ([]int, error) {
	if i < 0 || i >= b.n {
		return nil, indexErrorf("Bits.Row", i, 0)
	}
	out := make([]int, 0, b.rows[i].Count())
	for j, ok := b.rows[i].NextSet(0); ok; j, ok = b.rows[i].NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out, nil
}

// RowCount returns the number of marked columns in row i.
func (b *Bits) RowCount(i int) int {
	if i < 0 || i >= b.n {
		return 0
	}

	return int(b.rows[i].Count())
}

// ClearRow unmarks every column of row i.
func (b *Bits) ClearRow(i int) error {
	if i < 0 || i >= b.n {
		return indexErrorf("Bits.ClearRow", i, 0)
	}
	b.rows[i].ClearAll()

	return nil
}

// Transpose returns a new relation with (j, i) marked for every marked (i, j).
// Complexity: O(n²/64 + m) for m marked pairs.
func (b *Bits) Transpose() *Bits {
	t, _ := NewBits(b.n)
	for i, row := range b.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			t.rows[j].Set(uint(i))
		}
	}

	return t
}

// Clone returns a deep copy.
func (b *Bits) Clone() *Bits {
	c := &Bits{n: b.n, rows: make([]*bitset.BitSet, b.n)}
	for i, row := range b.rows {
		c.rows[i] = row.Clone()
	}

	return c
}

// IsSymmetric reports whether (i, j) marked implies (j, i) marked.
func (b *Bits) IsSymmetric() bool {
	for i, row := range b.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if !b.rows[j].Test(uint(i)) {
				return false
			}
		}
	}

	return true
}

// Count returns the number of marked pairs.
func (b *Bits) Count() int {
	total := 0
	for _, row := range b.rows {
		total += int(row.Count())
	}

	return total
}

// Includes reports whether row i has every column marked in row j.
// Complexity: O(n/64).
func (b *Bits) Includes(i, j int) (bool, error) {
	if err := b.check("Bits.Includes", i, j); err != nil {
		return false, err
	}

	return b.rows[i].IsSuperSet(b.rows[j]), nil
}
