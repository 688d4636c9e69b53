// Package dlx implements Donald Knuth's dancing-links search for exact-cover
// problems. A Matrix is built from column declarations and appended rows;
// Solutions enumerates every row subset covering all primary columns exactly
// once. Rows forced with UseRow appear in every solution.
package dlx

import (
	"context"
	"fmt"
	"iter"
	"slices"
)

// ColumnKind distinguishes mandatory constraint columns from optional ones.
type ColumnKind int

const (
	// Primary columns must be covered exactly once by every solution.
	Primary ColumnKind = iota
	// Secondary columns may stay uncovered, but never covered twice.
	Secondary
)

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	row                   int
}

type column struct {
	node
	size    int
	index   int
	kind    ColumnKind
	covered bool
}

// Stats counts search effort by depth: Nodes[d] is the number of candidate
// rows tried at depth d, Updates[d] the number of link updates performed
// there. Counters accumulate across successive Solutions calls.
type Stats struct {
	Nodes   []int
	Updates []int
}

// Matrix is a sparse exact-cover instance. Columns are declared once at
// construction; rows are appended afterwards and are immutable once added.
// The search restores all links when a Solutions sequence ends or is
// abandoned, so Solutions may be invoked again for a fresh enumeration.
type Matrix struct {
	root    column // head of the primary column ring
	cols    []*column
	rowHead []*node
	labels  []any
	forced  []int
	stats   Stats
	level   int
}

// NewMatrix declares the column set. Column i gets kind kinds[i]; indices are
// assigned in declaration order and never change.
func NewMatrix(kinds []ColumnKind) *Matrix {
	m := &Matrix{}
	m.root.left = &m.root.node
	m.root.right = &m.root.node
	m.root.col = &m.root
	m.cols = make([]*column, len(kinds))
	for i, k := range kinds {
		c := &column{index: i, kind: k}
		c.col = c
		c.up = &c.node
		c.down = &c.node
		if k == Primary {
			c.left = m.root.left
			c.right = &m.root.node
			m.root.left.right = &c.node
			m.root.left = &c.node
		} else {
			// secondary columns stay outside the header ring
			c.left = &c.node
			c.right = &c.node
		}
		m.cols[i] = c
	}
	return m
}

// Columns reports the number of declared columns.
func (m *Matrix) Columns() int { return len(m.cols) }

// Rows reports the number of appended rows.
func (m *Matrix) Rows() int { return len(m.rowHead) }

// AppendRow adds one row covering the given columns and returns its index.
// The label is opaque to the engine and can be retrieved with RowLabel.
// Duplicate or out-of-range columns are rejected.
func (m *Matrix) AppendRow(cols []int, label any) (int, error) {
	if len(cols) == 0 {
		return 0, fmt.Errorf("dlx: row %d covers no columns", len(m.rowHead))
	}
	sorted := slices.Clone(cols)
	slices.Sort(sorted)
	for i, ci := range sorted {
		if ci < 0 || ci >= len(m.cols) {
			return 0, fmt.Errorf("dlx: row %d: column %d out of range [0,%d)", len(m.rowHead), ci, len(m.cols))
		}
		if i > 0 && sorted[i-1] == ci {
			return 0, fmt.Errorf("dlx: row %d covers column %d twice", len(m.rowHead), ci)
		}
	}

	row := len(m.rowHead)
	var first, prev *node
	for _, ci := range sorted {
		c := m.cols[ci]
		n := &node{col: c, row: row}
		// vertical insert at the bottom of the column
		n.down = &c.node
		n.up = c.node.up
		c.node.up.down = n
		c.node.up = n
		c.size++
		// horizontal ring for the nodes of the row
		if first == nil {
			first = n
			n.left = n
			n.right = n
		} else {
			n.left = prev
			n.right = prev.right
			prev.right.left = n
			prev.right = n
		}
		prev = n
	}
	m.rowHead = append(m.rowHead, first)
	m.labels = append(m.labels, label)
	return row, nil
}

// AppendRows adds many unlabeled rows and returns their indices in
// submission order.
func (m *Matrix) AppendRows(rows [][]int) ([]int, error) {
	idx := make([]int, 0, len(rows))
	for _, cols := range rows {
		i, err := m.AppendRow(cols, nil)
		if err != nil {
			return nil, err
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// RowLabel returns the label given to AppendRow, or nil.
func (m *Matrix) RowLabel(row int) any {
	if row < 0 || row >= len(m.labels) {
		return nil
	}
	return m.labels[row]
}

// ForcedRows returns the indices forced so far, in the order they were used.
func (m *Matrix) ForcedRows() []int { return slices.Clone(m.forced) }

// UseRow forces a row into every solution: its columns are covered up front,
// removing it and all conflicting rows from further choice. Forcing a row
// whose columns overlap an already forced row is an error, and the matrix is
// left untouched.
func (m *Matrix) UseRow(row int) error {
	if row < 0 || row >= len(m.rowHead) {
		return fmt.Errorf("dlx: use row %d: out of range [0,%d)", row, len(m.rowHead))
	}
	head := m.rowHead[row]
	for n := head; ; {
		if n.col.covered {
			return fmt.Errorf("dlx: use row %d: column %d already covered", row, n.col.index)
		}
		n = n.right
		if n == head {
			break
		}
	}
	for n := head; ; {
		m.cover(n.col)
		n = n.right
		if n == head {
			break
		}
	}
	m.forced = append(m.forced, row)
	return nil
}

// Stats returns a copy of the accumulated per-level counters.
func (m *Matrix) Stats() Stats {
	return Stats{
		Nodes:   slices.Clone(m.stats.Nodes),
		Updates: slices.Clone(m.stats.Updates),
	}
}

// Solutions returns the lazy, finite sequence of solutions. Each yielded
// slice is a fresh, sorted set of row indices and includes the forced rows.
// Stopping early restores the matrix, so the caller may start another
// enumeration by calling Solutions again; the two sequences do not share a
// cursor. The sequence ends early if ctx is canceled.
func (m *Matrix) Solutions(ctx context.Context) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		chosen := make([]int, 0, 32)
		m.search(ctx, &chosen, yield)
		m.level = 0
	}
}

// search tries every row of the smallest primary column, recursing until the
// header ring is empty. It reports whether enumeration should stop; covers
// are unwound on every exit path so the matrix is always restored.
func (m *Matrix) search(ctx context.Context, chosen *[]int, yield func([]int) bool) bool {
	if ctx.Err() != nil {
		return true
	}
	depth := len(*chosen)
	m.level = depth
	if m.root.right == &m.root.node {
		sol := make([]int, 0, len(m.forced)+depth)
		sol = append(sol, m.forced...)
		sol = append(sol, *chosen...)
		slices.Sort(sol)
		return !yield(sol)
	}

	c := m.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	m.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		m.bumpNodes()
		*chosen = append(*chosen, r.row)
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		stopped := m.search(ctx, chosen, yield)
		m.level = depth
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
		*chosen = (*chosen)[:depth]
		if stopped {
			m.uncover(c)
			return true
		}
	}
	m.uncover(c)
	return false
}

// chooseColumn picks the primary column with the fewest remaining rows.
func (m *Matrix) chooseColumn() *column {
	var best *column
	for n := m.root.right; n != &m.root.node; n = n.right {
		c := n.col
		if best == nil || c.size < best.size {
			best = c
			if c.size == 0 {
				break
			}
		}
	}
	return best
}

func (m *Matrix) cover(c *column) {
	c.covered = true
	if c.kind == Primary {
		c.right.left = c.left
		c.left.right = c.right
	}
	for i := c.down; i != &c.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
			m.bumpUpdates()
		}
	}
}

func (m *Matrix) uncover(c *column) {
	for i := c.up; i != &c.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
			m.bumpUpdates()
		}
	}
	if c.kind == Primary {
		c.right.left = &c.node
		c.left.right = &c.node
	}
	c.covered = false
}

func (m *Matrix) bumpNodes() {
	for len(m.stats.Nodes) <= m.level {
		m.stats.Nodes = append(m.stats.Nodes, 0)
	}
	m.stats.Nodes[m.level]++
}

func (m *Matrix) bumpUpdates() {
	for len(m.stats.Updates) <= m.level {
		m.stats.Updates = append(m.stats.Updates, 0)
	}
	m.stats.Updates[m.level]++
}
