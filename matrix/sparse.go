// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"slices"
)

// Sparse is an n×n weighted relation; absent entries read as zero.
type Sparse struct {
	n    int
	rows []map[int]float64
}

// NewSparse creates an empty n×n weighted relation.
func NewSparse(n int) (*Sparse, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &Sparse{n: n, rows: make([]map[int]float64, n)}, nil
}

// Size returns n.
func (s *Sparse) Size() int { return s.n }

func (s *Sparse) check(method string, i, j int) error {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return indexErrorf(method, i, j)
	}

	return nil
}

// Set stores w at (i, j); a zero weight removes the entry.
func (s *Sparse) Set(i, j int, w float64) error {
	if err := s.check("Sparse.Set", i, j); err != nil {
		return err
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidWeight
	}
	if w == 0 {
		delete(s.rows[i], j)

		return nil
	}
	if s.rows[i] == nil {
		s.rows[i] = make(map[int]float64)
	}
	s.rows[i][j] = w

	return nil
}

// SetMax stores w at (i, j) unless a larger weight is already there.
func (s *Sparse) SetMax(i, j int, w float64) error {
	cur, err := s.At(i, j)
	if err != nil {
		return err
	}
	if w <= cur {
		return nil
	}

	return s.Set(i, j, w)
}

// At returns the weight at (i, j).
func (s *Sparse) At(i, j int) (float64, error) {
	if err := s.check("Sparse.At", i, j); err != nil {
		return 0, err
	}

	return s.rows[i][j], nil
}

// Row returns the columns of row i holding a non-zero weight, ascending.
func (s *Sparse) Row(i int) ([]int, error) {
	if i < 0 || i >= s.n {
		return nil, indexErrorf("Sparse.Row", i, 0)
	}
	out := make([]int, 0, len(s.rows[i]))
	for j := range s.rows[i] {
		out = append(out, j)
	}
	slices.Sort(out)

	return out, nil
}

// ClearRow removes every entry of row i.
func (s *Sparse) ClearRow(i int) error {
	if i < 0 || i >= s.n {
		return indexErrorf("Sparse.ClearRow", i, 0)
	}
	s.rows[i] = nil

	return nil
}

// ClearRowValue removes the entries of row i equal to w.
func (s *Sparse) ClearRowValue(i int, w float64) error {
	if i < 0 || i >= s.n {
		return indexErrorf("Sparse.ClearRowValue", i, 0)
	}
	for j, v := range s.rows[i] {
		if v == w {
			delete(s.rows[i], j)
		}
	}

	return nil
}

// Transpose returns a new relation with (j, i) = (i, j).
func (s *Sparse) Transpose() *Sparse {
	t, _ := NewSparse(s.n)
	for i, row := range s.rows {
		for j, w := range row {
			if t.rows[j] == nil {
				t.rows[j] = make(map[int]float64)
			}
			t.rows[j][i] = w
		}
	}

	return t
}

// Count returns the number of stored entries.
func (s *Sparse) Count() int {
	total := 0
	for _, row := range s.rows {
		total += len(row)
	}

	return total
}
