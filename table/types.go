package table

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ieml/script"
)

// Sentinel errors for table building and ranking.
var (
	// ErrNotTabulable is returned for scripts without plural positions.
	ErrNotTabulable = errors.New("table: script has no plural position")

	// ErrNotParadigm is returned when Rank receives a singular sequence.
	ErrNotParadigm = errors.New("table: script is not a paradigm")

	// ErrNotInRoot is returned when the ranked paradigm is not part of the root.
	ErrNotInRoot = errors.New("table: paradigm is not contained in root")

	// ErrOutOfRange indicates cell coordinates outside the table shape.
	ErrOutOfRange = errors.New("table: coordinates out of range")
)

// Axis names a table dimension.
type Axis int

const (
	// Rows is the first axis.
	Rows Axis = iota
	// Columns is the second axis.
	Columns
	// Tabs is the third axis.
	Tabs
)

// Table is an immutable paradigm table. Cells are stored row-major:
// cells[(r*cols+c)*tabs+t].
type Table struct {
	paradigm *script.Script
	dim      int
	shape    [3]int
	headers  [3][]*script.Script
	cells    []*script.Script
}

// Paradigm returns the script the table represents.
func (t *Table) Paradigm() *script.Script { return t.paradigm }

// Dimension returns 1, 2 or 3.
func (t *Table) Dimension() int { return t.dim }

// Shape returns the number of rows, columns and tabs. A 1D table has one
// row holding every cell.
func (t *Table) Shape() (rows, cols, tabs int) { return t.shape[0], t.shape[1], t.shape[2] }

// Headers returns a copy of the headers along axis a.
func (t *Table) Headers(a Axis) []*script.Script {
	if a < Rows || a > Tabs {
		return nil
	}
	out := make([]*script.Script, len(t.headers[a]))
	copy(out, t.headers[a])

	return out
}

// RowHeaders is shorthand for Headers(Rows).
func (t *Table) RowHeaders() []*script.Script { return t.Headers(Rows) }

// ColHeaders is shorthand for Headers(Columns).
func (t *Table) ColHeaders() []*script.Script { return t.Headers(Columns) }

// TabHeaders is shorthand for Headers(Tabs).
func (t *Table) TabHeaders() []*script.Script { return t.Headers(Tabs) }

// At returns the cell at (row, col, tab).
func (t *Table) At(row, col, tab int) (*script.Script, error) {
	if row < 0 || row >= t.shape[0] || col < 0 || col >= t.shape[1] || tab < 0 || tab >= t.shape[2] {
		return nil, fmt.Errorf("Table.At(%d,%d,%d): %w", row, col, tab, ErrOutOfRange)
	}

	return t.cells[(row*t.shape[1]+col)*t.shape[2]+tab], nil
}

// Cells returns a copy of all cells in row-major order.
func (t *Table) Cells() []*script.Script {
	out := make([]*script.Script, len(t.cells))
	copy(out, t.cells)

	return out
}

// Len returns the number of cells.
func (t *Table) Len() int { return len(t.cells) }

// intersects reports whether any cell text is in set.
func (t *Table) intersects(set map[string]struct{}) bool {
	for _, c := range t.cells {
		if _, ok := set[c.String()]; ok {
			return true
		}
	}

	return false
}

// coveringHeaders returns the headers, on any axis, that include p. A header
// equal to the table's own paradigm never counts.
func (t *Table) coveringHeaders(p *script.Script) []*script.Script {
	var out []*script.Script
	for _, axis := range t.headers {
		for _, h := range axis {
			if h.Equal(t.paradigm) {
				continue
			}
			if h.Includes(p) {
				out = append(out, h)
			}
		}
	}

	return out
}
